package test

import (
	"context"
	"sync"

	"github.com/nedcgroup/backoffice/internal/adapter/backend"
	"github.com/nedcgroup/backoffice/internal/domain/model"
)

// BackendCall is one recorded backend invocation.
type BackendCall struct {
	Method string
	Token  string
	ID     string
}

// BackendStub implements backend.Client with overridable functions and a call log.
// Unset functions return empty results.
type BackendStub struct {
	LoginFn                   func(context.Context, string, string) (string, error)
	ListCompaniesFn           func(context.Context, string, model.CompanyQuery) (*model.CompanyList, error)
	GetCompanyFn              func(context.Context, string, string) (*model.Company, error)
	CreateCompanyFn           func(context.Context, string, model.Company) (*model.Company, error)
	UpdateCompanyFn           func(context.Context, string, model.Company) (*model.Company, error)
	DeleteCompanyFn           func(context.Context, string, string) error
	SetCompanyStatusFn        func(context.Context, string, string, bool) (*model.Company, error)
	ResetCompanyPasswordFn    func(context.Context, string, string) error
	ResetCompanyPinFn         func(context.Context, string, string) error
	ListOrdersFn              func(context.Context, string, model.Operator, string) ([]model.Order, error)
	GetOrderFn                func(context.Context, string, model.Operator, string) (*model.Order, error)
	DeleteOrderFn             func(context.Context, string, model.Operator, string) error
	GenerateOperatorInvoiceFn func(context.Context, string, model.InvoiceRequest) (*model.Invoice, error)
	ListInvoicesFn            func(context.Context, string, model.InvoiceStatus) ([]model.Invoice, error)
	GetInvoiceFn              func(context.Context, string, string) (*model.Invoice, error)
	GenerateInvoiceFn         func(context.Context, string, model.InvoiceRequest) (*model.Invoice, error)
	ListPaymentsFn            func(context.Context, string, string) ([]model.PaymentHistory, error)
	CreatePaymentFn           func(context.Context, string, model.PaymentHistory) (*model.PaymentHistory, error)
	UpdatePaymentFn           func(context.Context, string, model.PaymentHistory) (*model.PaymentHistory, error)
	DeletePaymentFn           func(context.Context, string, string) error
	ListAdminsFn              func(context.Context, string) ([]model.Admin, error)
	CreateAdminFn             func(context.Context, string, model.Admin) (*model.Admin, error)
	UpdateAdminFn             func(context.Context, string, model.Admin) (*model.Admin, error)
	DeleteAdminFn             func(context.Context, string, string) error

	mu    sync.Mutex
	calls []BackendCall
}

var _ backend.Client = (*BackendStub)(nil)

func (s *BackendStub) record(method, token, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, BackendCall{Method: method, Token: token, ID: id})
}

// Calls returns a copy of the recorded invocations.
func (s *BackendStub) Calls() []BackendCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]BackendCall(nil), s.calls...)
}

// CallsTo returns the recorded invocations of one method.
func (s *BackendStub) CallsTo(method string) []BackendCall {
	var out []BackendCall
	for _, c := range s.Calls() {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

func (s *BackendStub) Login(ctx context.Context, email, password string) (string, error) {
	s.record("Login", "", email)
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return "token", nil
}

func (s *BackendStub) ListCompanies(ctx context.Context, token string, q model.CompanyQuery) (*model.CompanyList, error) {
	s.record("ListCompanies", token, "")
	if s.ListCompaniesFn != nil {
		return s.ListCompaniesFn(ctx, token, q)
	}
	return &model.CompanyList{}, nil
}

func (s *BackendStub) GetCompany(ctx context.Context, token, id string) (*model.Company, error) {
	s.record("GetCompany", token, id)
	if s.GetCompanyFn != nil {
		return s.GetCompanyFn(ctx, token, id)
	}
	return &model.Company{ID: id}, nil
}

func (s *BackendStub) CreateCompany(ctx context.Context, token string, company model.Company) (*model.Company, error) {
	s.record("CreateCompany", token, company.ID)
	if s.CreateCompanyFn != nil {
		return s.CreateCompanyFn(ctx, token, company)
	}
	return &company, nil
}

func (s *BackendStub) UpdateCompany(ctx context.Context, token string, company model.Company) (*model.Company, error) {
	s.record("UpdateCompany", token, company.ID)
	if s.UpdateCompanyFn != nil {
		return s.UpdateCompanyFn(ctx, token, company)
	}
	return &company, nil
}

func (s *BackendStub) DeleteCompany(ctx context.Context, token, id string) error {
	s.record("DeleteCompany", token, id)
	if s.DeleteCompanyFn != nil {
		return s.DeleteCompanyFn(ctx, token, id)
	}
	return nil
}

func (s *BackendStub) SetCompanyStatus(ctx context.Context, token, id string, active bool) (*model.Company, error) {
	s.record("SetCompanyStatus", token, id)
	if s.SetCompanyStatusFn != nil {
		return s.SetCompanyStatusFn(ctx, token, id, active)
	}
	return &model.Company{ID: id, Active: active}, nil
}

func (s *BackendStub) ResetCompanyPassword(ctx context.Context, token, id string) error {
	s.record("ResetCompanyPassword", token, id)
	if s.ResetCompanyPasswordFn != nil {
		return s.ResetCompanyPasswordFn(ctx, token, id)
	}
	return nil
}

func (s *BackendStub) ResetCompanyPin(ctx context.Context, token, id string) error {
	s.record("ResetCompanyPin", token, id)
	if s.ResetCompanyPinFn != nil {
		return s.ResetCompanyPinFn(ctx, token, id)
	}
	return nil
}

func (s *BackendStub) ListOrders(ctx context.Context, token string, operator model.Operator, companyID string) ([]model.Order, error) {
	s.record("ListOrders", token, string(operator))
	if s.ListOrdersFn != nil {
		return s.ListOrdersFn(ctx, token, operator, companyID)
	}
	return nil, nil
}

func (s *BackendStub) GetOrder(ctx context.Context, token string, operator model.Operator, id string) (*model.Order, error) {
	s.record("GetOrder", token, id)
	if s.GetOrderFn != nil {
		return s.GetOrderFn(ctx, token, operator, id)
	}
	return &model.Order{ID: id, Operator: operator}, nil
}

func (s *BackendStub) DeleteOrder(ctx context.Context, token string, operator model.Operator, id string) error {
	s.record("DeleteOrder", token, id)
	if s.DeleteOrderFn != nil {
		return s.DeleteOrderFn(ctx, token, operator, id)
	}
	return nil
}

func (s *BackendStub) GenerateOperatorInvoice(ctx context.Context, token string, req model.InvoiceRequest) (*model.Invoice, error) {
	s.record("GenerateOperatorInvoice", token, req.CompanyID)
	if s.GenerateOperatorInvoiceFn != nil {
		return s.GenerateOperatorInvoiceFn(ctx, token, req)
	}
	return &model.Invoice{CompanyID: req.CompanyID, Status: model.InvoiceStatusSuccess}, nil
}

func (s *BackendStub) ListInvoices(ctx context.Context, token string, status model.InvoiceStatus) ([]model.Invoice, error) {
	s.record("ListInvoices", token, string(status))
	if s.ListInvoicesFn != nil {
		return s.ListInvoicesFn(ctx, token, status)
	}
	return nil, nil
}

func (s *BackendStub) GetInvoice(ctx context.Context, token, id string) (*model.Invoice, error) {
	s.record("GetInvoice", token, id)
	if s.GetInvoiceFn != nil {
		return s.GetInvoiceFn(ctx, token, id)
	}
	return &model.Invoice{ID: id}, nil
}

func (s *BackendStub) GenerateInvoice(ctx context.Context, token string, req model.InvoiceRequest) (*model.Invoice, error) {
	s.record("GenerateInvoice", token, req.CompanyID)
	if s.GenerateInvoiceFn != nil {
		return s.GenerateInvoiceFn(ctx, token, req)
	}
	return &model.Invoice{CompanyID: req.CompanyID, Status: model.InvoiceStatusSuccess}, nil
}

func (s *BackendStub) ListPayments(ctx context.Context, token, companyID string) ([]model.PaymentHistory, error) {
	s.record("ListPayments", token, companyID)
	if s.ListPaymentsFn != nil {
		return s.ListPaymentsFn(ctx, token, companyID)
	}
	return nil, nil
}

func (s *BackendStub) CreatePayment(ctx context.Context, token string, payment model.PaymentHistory) (*model.PaymentHistory, error) {
	s.record("CreatePayment", token, payment.CompanyID)
	if s.CreatePaymentFn != nil {
		return s.CreatePaymentFn(ctx, token, payment)
	}
	return &payment, nil
}

func (s *BackendStub) UpdatePayment(ctx context.Context, token string, payment model.PaymentHistory) (*model.PaymentHistory, error) {
	s.record("UpdatePayment", token, payment.ID)
	if s.UpdatePaymentFn != nil {
		return s.UpdatePaymentFn(ctx, token, payment)
	}
	return &payment, nil
}

func (s *BackendStub) DeletePayment(ctx context.Context, token, id string) error {
	s.record("DeletePayment", token, id)
	if s.DeletePaymentFn != nil {
		return s.DeletePaymentFn(ctx, token, id)
	}
	return nil
}

func (s *BackendStub) ListAdmins(ctx context.Context, token string) ([]model.Admin, error) {
	s.record("ListAdmins", token, "")
	if s.ListAdminsFn != nil {
		return s.ListAdminsFn(ctx, token)
	}
	return nil, nil
}

func (s *BackendStub) CreateAdmin(ctx context.Context, token string, admin model.Admin) (*model.Admin, error) {
	s.record("CreateAdmin", token, admin.ID)
	if s.CreateAdminFn != nil {
		return s.CreateAdminFn(ctx, token, admin)
	}
	return &admin, nil
}

func (s *BackendStub) UpdateAdmin(ctx context.Context, token string, admin model.Admin) (*model.Admin, error) {
	s.record("UpdateAdmin", token, admin.ID)
	if s.UpdateAdminFn != nil {
		return s.UpdateAdminFn(ctx, token, admin)
	}
	return &admin, nil
}

func (s *BackendStub) DeleteAdmin(ctx context.Context, token, id string) error {
	s.record("DeleteAdmin", token, id)
	if s.DeleteAdminFn != nil {
		return s.DeleteAdminFn(ctx, token, id)
	}
	return nil
}
