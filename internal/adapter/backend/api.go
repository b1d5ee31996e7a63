package backend

import (
	"context"

	"github.com/nedcgroup/backoffice/internal/domain/model"
)

// Client exposes the backend operations used by the back-office.
type Client interface {
	Login(ctx context.Context, email, password string) (string, error)

	ListCompanies(ctx context.Context, token string, q model.CompanyQuery) (*model.CompanyList, error)
	GetCompany(ctx context.Context, token, id string) (*model.Company, error)
	CreateCompany(ctx context.Context, token string, company model.Company) (*model.Company, error)
	UpdateCompany(ctx context.Context, token string, company model.Company) (*model.Company, error)
	DeleteCompany(ctx context.Context, token, id string) error
	SetCompanyStatus(ctx context.Context, token, id string, active bool) (*model.Company, error)
	ResetCompanyPassword(ctx context.Context, token, id string) error
	ResetCompanyPin(ctx context.Context, token, id string) error

	ListOrders(ctx context.Context, token string, operator model.Operator, companyID string) ([]model.Order, error)
	GetOrder(ctx context.Context, token string, operator model.Operator, id string) (*model.Order, error)
	DeleteOrder(ctx context.Context, token string, operator model.Operator, id string) error
	GenerateOperatorInvoice(ctx context.Context, token string, req model.InvoiceRequest) (*model.Invoice, error)

	ListInvoices(ctx context.Context, token string, status model.InvoiceStatus) ([]model.Invoice, error)
	GetInvoice(ctx context.Context, token, id string) (*model.Invoice, error)
	GenerateInvoice(ctx context.Context, token string, req model.InvoiceRequest) (*model.Invoice, error)

	ListPayments(ctx context.Context, token, companyID string) ([]model.PaymentHistory, error)
	CreatePayment(ctx context.Context, token string, payment model.PaymentHistory) (*model.PaymentHistory, error)
	UpdatePayment(ctx context.Context, token string, payment model.PaymentHistory) (*model.PaymentHistory, error)
	DeletePayment(ctx context.Context, token, id string) error

	ListAdmins(ctx context.Context, token string) ([]model.Admin, error)
	CreateAdmin(ctx context.Context, token string, admin model.Admin) (*model.Admin, error)
	UpdateAdmin(ctx context.Context, token string, admin model.Admin) (*model.Admin, error)
	DeleteAdmin(ctx context.Context, token, id string) error
}

var _ Client = (*HTTPClient)(nil)
