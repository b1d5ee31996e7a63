package handlers

import (
	"context"

	"github.com/nedcgroup/backoffice/internal/domain/model"
	"github.com/nedcgroup/backoffice/internal/pkg/session"
	"github.com/nedcgroup/backoffice/internal/usecase"
)

// AuthFacade describes sign-in capabilities required by handlers.
type AuthFacade interface {
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, id session.Identity)
}

// CompanyFacade encapsulates company pages and actions.
type CompanyFacade interface {
	Companies(ctx context.Context, id session.Identity, q usecase.ListQuery) (*usecase.CompanyListing, error)
	Company(ctx context.Context, id session.Identity, companyID, operator string, q usecase.ListQuery) (*usecase.CompanyDetail, error)
	CreateCompany(ctx context.Context, id session.Identity, company model.Company) (*model.Company, error)
	UpdateCompany(ctx context.Context, id session.Identity, company model.Company) (*model.Company, error)
	DeleteCompany(ctx context.Context, id session.Identity, companyID string) error
	SetCompanyStatus(ctx context.Context, id session.Identity, companyID string, active bool) (*model.Company, error)
	ResetCompanyPassword(ctx context.Context, id session.Identity, companyID string) error
	ResetCompanyPin(ctx context.Context, id session.Identity, companyID string) error
}

// OrderFacade encapsulates per-operator order pages and actions.
type OrderFacade interface {
	Orders(ctx context.Context, id session.Identity, operator, companyID string, q usecase.ListQuery) (*usecase.OrderListing, error)
	Order(ctx context.Context, id session.Identity, operator, orderID string) (*model.Order, error)
	DeleteOrder(ctx context.Context, id session.Identity, operator, orderID string) error
	GenerateOperatorInvoice(ctx context.Context, id session.Identity, operator, companyID string, period model.DateRange) (*model.Invoice, error)
}

// InvoiceFacade provides invoice operations.
type InvoiceFacade interface {
	Invoices(ctx context.Context, id session.Identity, q usecase.ListQuery) (*usecase.InvoiceListing, error)
	Invoice(ctx context.Context, id session.Identity, invoiceID string) (*model.Invoice, error)
	GenerateInvoice(ctx context.Context, id session.Identity, companyID string, period model.DateRange) (*model.Invoice, error)
}

// PaymentFacade provides payment history operations.
type PaymentFacade interface {
	Payments(ctx context.Context, id session.Identity, companyID string) ([]model.PaymentHistory, error)
	Payment(ctx context.Context, id session.Identity, companyID, paymentID string) (*model.PaymentHistory, error)
	CreatePayment(ctx context.Context, id session.Identity, payment model.PaymentHistory) (*model.PaymentHistory, error)
	UpdatePayment(ctx context.Context, id session.Identity, payment model.PaymentHistory) (*model.PaymentHistory, error)
	DeletePayment(ctx context.Context, id session.Identity, paymentID string) error
}

// AdminFacade manages back-office accounts.
type AdminFacade interface {
	Admins(ctx context.Context, id session.Identity, q usecase.ListQuery) (*usecase.AdminListing, error)
	Admin(ctx context.Context, id session.Identity, adminID string) (*model.Admin, error)
	CreateAdmin(ctx context.Context, id session.Identity, admin model.Admin) (*model.Admin, error)
	UpdateAdmin(ctx context.Context, id session.Identity, admin model.Admin) (*model.Admin, error)
	DeleteAdmin(ctx context.Context, id session.Identity, adminID string) error
}

// ActivityFacade exposes the audit trail and service health.
type ActivityFacade interface {
	Activity(ctx context.Context) ([]model.AuditEntry, error)
	Health(ctx context.Context) error
}

// Facade aggregates the full set of operations used across handlers.
type Facade interface {
	AuthFacade
	CompanyFacade
	OrderFacade
	InvoiceFacade
	PaymentFacade
	AdminFacade
	ActivityFacade
}
