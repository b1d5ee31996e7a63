// Package handlerstest provides a configurable facade for handler tests.
package handlerstest

import (
	"context"

	"github.com/nedcgroup/backoffice/internal/domain/model"
	"github.com/nedcgroup/backoffice/internal/listview"
	"github.com/nedcgroup/backoffice/internal/pkg/session"
	"github.com/nedcgroup/backoffice/internal/usecase"
)

// BackofficeFacadeStub implements every handler facade via function overrides.
// Unset functions return small, successful defaults.
type BackofficeFacadeStub struct {
	LoginFn  func(ctx context.Context, email, password string) (string, error)
	LogoutFn func(ctx context.Context, id session.Identity)

	CompaniesFn            func(ctx context.Context, id session.Identity, q usecase.ListQuery) (*usecase.CompanyListing, error)
	CompanyFn              func(ctx context.Context, id session.Identity, companyID, operator string, q usecase.ListQuery) (*usecase.CompanyDetail, error)
	CreateCompanyFn        func(ctx context.Context, id session.Identity, company model.Company) (*model.Company, error)
	UpdateCompanyFn        func(ctx context.Context, id session.Identity, company model.Company) (*model.Company, error)
	DeleteCompanyFn        func(ctx context.Context, id session.Identity, companyID string) error
	SetCompanyStatusFn     func(ctx context.Context, id session.Identity, companyID string, active bool) (*model.Company, error)
	ResetCompanyPasswordFn func(ctx context.Context, id session.Identity, companyID string) error
	ResetCompanyPinFn      func(ctx context.Context, id session.Identity, companyID string) error

	OrdersFn                  func(ctx context.Context, id session.Identity, operator, companyID string, q usecase.ListQuery) (*usecase.OrderListing, error)
	OrderFn                   func(ctx context.Context, id session.Identity, operator, orderID string) (*model.Order, error)
	DeleteOrderFn             func(ctx context.Context, id session.Identity, operator, orderID string) error
	GenerateOperatorInvoiceFn func(ctx context.Context, id session.Identity, operator, companyID string, period model.DateRange) (*model.Invoice, error)

	InvoicesFn        func(ctx context.Context, id session.Identity, q usecase.ListQuery) (*usecase.InvoiceListing, error)
	InvoiceFn         func(ctx context.Context, id session.Identity, invoiceID string) (*model.Invoice, error)
	GenerateInvoiceFn func(ctx context.Context, id session.Identity, companyID string, period model.DateRange) (*model.Invoice, error)

	PaymentsFn      func(ctx context.Context, id session.Identity, companyID string) ([]model.PaymentHistory, error)
	PaymentFn       func(ctx context.Context, id session.Identity, companyID, paymentID string) (*model.PaymentHistory, error)
	CreatePaymentFn func(ctx context.Context, id session.Identity, payment model.PaymentHistory) (*model.PaymentHistory, error)
	UpdatePaymentFn func(ctx context.Context, id session.Identity, payment model.PaymentHistory) (*model.PaymentHistory, error)
	DeletePaymentFn func(ctx context.Context, id session.Identity, paymentID string) error

	AdminsFn      func(ctx context.Context, id session.Identity, q usecase.ListQuery) (*usecase.AdminListing, error)
	AdminFn       func(ctx context.Context, id session.Identity, adminID string) (*model.Admin, error)
	CreateAdminFn func(ctx context.Context, id session.Identity, admin model.Admin) (*model.Admin, error)
	UpdateAdminFn func(ctx context.Context, id session.Identity, admin model.Admin) (*model.Admin, error)
	DeleteAdminFn func(ctx context.Context, id session.Identity, adminID string) error

	ActivityFn func(ctx context.Context) ([]model.AuditEntry, error)
	HealthFn   func(ctx context.Context) error
}

func (s *BackofficeFacadeStub) Login(ctx context.Context, email, password string) (string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return "token", nil
}

func (s *BackofficeFacadeStub) Logout(ctx context.Context, id session.Identity) {
	if s.LogoutFn != nil {
		s.LogoutFn(ctx, id)
	}
}

func (s *BackofficeFacadeStub) Companies(ctx context.Context, id session.Identity, q usecase.ListQuery) (*usecase.CompanyListing, error) {
	if s.CompaniesFn != nil {
		return s.CompaniesFn(ctx, id, q)
	}
	return &usecase.CompanyListing{Query: q, Page: listview.Paginate([]model.Company{}, 1, 10)}, nil
}

func (s *BackofficeFacadeStub) Company(ctx context.Context, id session.Identity, companyID, operator string, q usecase.ListQuery) (*usecase.CompanyDetail, error) {
	if s.CompanyFn != nil {
		return s.CompanyFn(ctx, id, companyID, operator, q)
	}
	return &usecase.CompanyDetail{
		Company:    model.Company{ID: companyID},
		Operator:   model.OperatorComviq,
		OrderQuery: q,
		OrdersPage: listview.Paginate([]model.Order{}, 1, 10),
	}, nil
}

func (s *BackofficeFacadeStub) CreateCompany(ctx context.Context, id session.Identity, company model.Company) (*model.Company, error) {
	if s.CreateCompanyFn != nil {
		return s.CreateCompanyFn(ctx, id, company)
	}
	if company.ID == "" {
		company.ID = "new"
	}
	return &company, nil
}

func (s *BackofficeFacadeStub) UpdateCompany(ctx context.Context, id session.Identity, company model.Company) (*model.Company, error) {
	if s.UpdateCompanyFn != nil {
		return s.UpdateCompanyFn(ctx, id, company)
	}
	return &company, nil
}

func (s *BackofficeFacadeStub) DeleteCompany(ctx context.Context, id session.Identity, companyID string) error {
	if s.DeleteCompanyFn != nil {
		return s.DeleteCompanyFn(ctx, id, companyID)
	}
	return nil
}

func (s *BackofficeFacadeStub) SetCompanyStatus(ctx context.Context, id session.Identity, companyID string, active bool) (*model.Company, error) {
	if s.SetCompanyStatusFn != nil {
		return s.SetCompanyStatusFn(ctx, id, companyID, active)
	}
	return &model.Company{ID: companyID, Active: active}, nil
}

func (s *BackofficeFacadeStub) ResetCompanyPassword(ctx context.Context, id session.Identity, companyID string) error {
	if s.ResetCompanyPasswordFn != nil {
		return s.ResetCompanyPasswordFn(ctx, id, companyID)
	}
	return nil
}

func (s *BackofficeFacadeStub) ResetCompanyPin(ctx context.Context, id session.Identity, companyID string) error {
	if s.ResetCompanyPinFn != nil {
		return s.ResetCompanyPinFn(ctx, id, companyID)
	}
	return nil
}

func (s *BackofficeFacadeStub) Orders(ctx context.Context, id session.Identity, operator, companyID string, q usecase.ListQuery) (*usecase.OrderListing, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, id, operator, companyID, q)
	}
	op, err := model.ParseOperator(operator)
	if err != nil {
		return nil, err
	}
	return &usecase.OrderListing{Operator: op, CompanyID: companyID, Query: q, Page: listview.Paginate([]model.Order{}, 1, 10)}, nil
}

func (s *BackofficeFacadeStub) Order(ctx context.Context, id session.Identity, operator, orderID string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id, operator, orderID)
	}
	op, err := model.ParseOperator(operator)
	if err != nil {
		return nil, err
	}
	return &model.Order{ID: orderID, Operator: op}, nil
}

func (s *BackofficeFacadeStub) DeleteOrder(ctx context.Context, id session.Identity, operator, orderID string) error {
	if s.DeleteOrderFn != nil {
		return s.DeleteOrderFn(ctx, id, operator, orderID)
	}
	return nil
}

func (s *BackofficeFacadeStub) GenerateOperatorInvoice(ctx context.Context, id session.Identity, operator, companyID string, period model.DateRange) (*model.Invoice, error) {
	if s.GenerateOperatorInvoiceFn != nil {
		return s.GenerateOperatorInvoiceFn(ctx, id, operator, companyID, period)
	}
	return &model.Invoice{CompanyID: companyID, From: period.From, To: period.To, Status: model.InvoiceStatusSuccess}, nil
}

func (s *BackofficeFacadeStub) Invoices(ctx context.Context, id session.Identity, q usecase.ListQuery) (*usecase.InvoiceListing, error) {
	if s.InvoicesFn != nil {
		return s.InvoicesFn(ctx, id, q)
	}
	return &usecase.InvoiceListing{Query: q, Page: listview.Paginate([]model.Invoice{}, 1, 10)}, nil
}

func (s *BackofficeFacadeStub) Invoice(ctx context.Context, id session.Identity, invoiceID string) (*model.Invoice, error) {
	if s.InvoiceFn != nil {
		return s.InvoiceFn(ctx, id, invoiceID)
	}
	return &model.Invoice{ID: invoiceID, Status: model.InvoiceStatusSuccess}, nil
}

func (s *BackofficeFacadeStub) GenerateInvoice(ctx context.Context, id session.Identity, companyID string, period model.DateRange) (*model.Invoice, error) {
	if s.GenerateInvoiceFn != nil {
		return s.GenerateInvoiceFn(ctx, id, companyID, period)
	}
	return &model.Invoice{CompanyID: companyID, From: period.From, To: period.To, Status: model.InvoiceStatusSuccess}, nil
}

func (s *BackofficeFacadeStub) Payments(ctx context.Context, id session.Identity, companyID string) ([]model.PaymentHistory, error) {
	if s.PaymentsFn != nil {
		return s.PaymentsFn(ctx, id, companyID)
	}
	return nil, nil
}

func (s *BackofficeFacadeStub) Payment(ctx context.Context, id session.Identity, companyID, paymentID string) (*model.PaymentHistory, error) {
	if s.PaymentFn != nil {
		return s.PaymentFn(ctx, id, companyID, paymentID)
	}
	return &model.PaymentHistory{ID: paymentID, CompanyID: companyID}, nil
}

func (s *BackofficeFacadeStub) CreatePayment(ctx context.Context, id session.Identity, payment model.PaymentHistory) (*model.PaymentHistory, error) {
	if s.CreatePaymentFn != nil {
		return s.CreatePaymentFn(ctx, id, payment)
	}
	return &payment, nil
}

func (s *BackofficeFacadeStub) UpdatePayment(ctx context.Context, id session.Identity, payment model.PaymentHistory) (*model.PaymentHistory, error) {
	if s.UpdatePaymentFn != nil {
		return s.UpdatePaymentFn(ctx, id, payment)
	}
	return &payment, nil
}

func (s *BackofficeFacadeStub) DeletePayment(ctx context.Context, id session.Identity, paymentID string) error {
	if s.DeletePaymentFn != nil {
		return s.DeletePaymentFn(ctx, id, paymentID)
	}
	return nil
}

func (s *BackofficeFacadeStub) Admins(ctx context.Context, id session.Identity, q usecase.ListQuery) (*usecase.AdminListing, error) {
	if s.AdminsFn != nil {
		return s.AdminsFn(ctx, id, q)
	}
	return &usecase.AdminListing{Query: q, Page: listview.Paginate([]model.Admin{}, 1, 10)}, nil
}

func (s *BackofficeFacadeStub) Admin(ctx context.Context, id session.Identity, adminID string) (*model.Admin, error) {
	if s.AdminFn != nil {
		return s.AdminFn(ctx, id, adminID)
	}
	return &model.Admin{ID: adminID, Role: model.AdminRoleAdmin}, nil
}

func (s *BackofficeFacadeStub) CreateAdmin(ctx context.Context, id session.Identity, admin model.Admin) (*model.Admin, error) {
	if s.CreateAdminFn != nil {
		return s.CreateAdminFn(ctx, id, admin)
	}
	return &admin, nil
}

func (s *BackofficeFacadeStub) UpdateAdmin(ctx context.Context, id session.Identity, admin model.Admin) (*model.Admin, error) {
	if s.UpdateAdminFn != nil {
		return s.UpdateAdminFn(ctx, id, admin)
	}
	return &admin, nil
}

func (s *BackofficeFacadeStub) DeleteAdmin(ctx context.Context, id session.Identity, adminID string) error {
	if s.DeleteAdminFn != nil {
		return s.DeleteAdminFn(ctx, id, adminID)
	}
	return nil
}

func (s *BackofficeFacadeStub) Activity(ctx context.Context) ([]model.AuditEntry, error) {
	if s.ActivityFn != nil {
		return s.ActivityFn(ctx)
	}
	return nil, nil
}

func (s *BackofficeFacadeStub) Health(ctx context.Context) error {
	if s.HealthFn != nil {
		return s.HealthFn(ctx)
	}
	return nil
}
