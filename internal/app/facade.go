package app

import (
	"context"
	"time"

	"github.com/nedcgroup/backoffice/internal/domain/model"
	"github.com/nedcgroup/backoffice/internal/pkg/session"
	"github.com/nedcgroup/backoffice/internal/usecase"
)

// Audited action names.
const (
	ActionLogin         = "login"
	ActionLogout        = "logout"
	ActionCreate        = "create"
	ActionUpdate        = "update"
	ActionDelete        = "delete"
	ActionToggleStatus  = "toggle-status"
	ActionResetPassword = "reset-password"
	ActionResetPin      = "reset-pin"
	ActionGenerate      = "generate"
)

// Audited entity names.
const (
	EntitySession = "session"
	EntityCompany = "company"
	EntityOrder   = "order"
	EntityInvoice = "invoice"
	EntityPayment = "payment"
	EntityAdmin   = "admin"
)

const activityLimit = 100

// BackofficeFacade is the single entry point of the HTTP layer and the pruner.
// Every mutating call is recorded in the audit trail.
type BackofficeFacade struct {
	auth      *usecase.AuthUseCase
	companies *usecase.CompanyUseCase
	orders    *usecase.OrderUseCase
	invoices  *usecase.InvoiceUseCase
	payments  *usecase.PaymentUseCase
	admins    *usecase.AdminUseCase
	audits    *usecase.AuditUseCase
}

// NewBackofficeFacade wires the use cases together.
func NewBackofficeFacade(
	auth *usecase.AuthUseCase,
	companies *usecase.CompanyUseCase,
	orders *usecase.OrderUseCase,
	invoices *usecase.InvoiceUseCase,
	payments *usecase.PaymentUseCase,
	admins *usecase.AdminUseCase,
	audits *usecase.AuditUseCase,
) *BackofficeFacade {
	return &BackofficeFacade{
		auth:      auth,
		companies: companies,
		orders:    orders,
		invoices:  invoices,
		payments:  payments,
		admins:    admins,
		audits:    audits,
	}
}

func (f *BackofficeFacade) record(ctx context.Context, id session.Identity, action, entity, entityID string, err error) {
	f.audits.Record(ctx, usecase.AuditAction{Admin: id.Admin, Action: action, Entity: entity, EntityID: entityID}, err)
}

func (f *BackofficeFacade) Login(ctx context.Context, email, password string) (string, error) {
	token, err := f.auth.Login(ctx, email, password)
	f.record(ctx, session.Identity{Admin: email}, ActionLogin, EntitySession, "", err)
	return token, err
}

func (f *BackofficeFacade) Logout(ctx context.Context, id session.Identity) {
	f.record(ctx, id, ActionLogout, EntitySession, "", nil)
}

func (f *BackofficeFacade) Companies(ctx context.Context, id session.Identity, q usecase.ListQuery) (*usecase.CompanyListing, error) {
	return f.companies.List(ctx, id.Token, q)
}

func (f *BackofficeFacade) Company(ctx context.Context, id session.Identity, companyID, operator string, q usecase.ListQuery) (*usecase.CompanyDetail, error) {
	return f.companies.Detail(ctx, id.Token, companyID, operator, q)
}

func (f *BackofficeFacade) CreateCompany(ctx context.Context, id session.Identity, company model.Company) (*model.Company, error) {
	created, err := f.companies.Create(ctx, id.Token, company)
	entityID := ""
	if created != nil {
		entityID = created.ID
	}
	f.record(ctx, id, ActionCreate, EntityCompany, entityID, err)
	return created, err
}

func (f *BackofficeFacade) UpdateCompany(ctx context.Context, id session.Identity, company model.Company) (*model.Company, error) {
	updated, err := f.companies.Update(ctx, id.Token, company)
	f.record(ctx, id, ActionUpdate, EntityCompany, company.ID, err)
	return updated, err
}

func (f *BackofficeFacade) DeleteCompany(ctx context.Context, id session.Identity, companyID string) error {
	err := f.companies.Delete(ctx, id.Token, companyID)
	f.record(ctx, id, ActionDelete, EntityCompany, companyID, err)
	return err
}

func (f *BackofficeFacade) SetCompanyStatus(ctx context.Context, id session.Identity, companyID string, active bool) (*model.Company, error) {
	updated, err := f.companies.SetStatus(ctx, id.Token, companyID, active)
	f.record(ctx, id, ActionToggleStatus, EntityCompany, companyID, err)
	return updated, err
}

func (f *BackofficeFacade) ResetCompanyPassword(ctx context.Context, id session.Identity, companyID string) error {
	err := f.companies.ResetPassword(ctx, id.Token, companyID)
	f.record(ctx, id, ActionResetPassword, EntityCompany, companyID, err)
	return err
}

func (f *BackofficeFacade) ResetCompanyPin(ctx context.Context, id session.Identity, companyID string) error {
	err := f.companies.ResetPin(ctx, id.Token, companyID)
	f.record(ctx, id, ActionResetPin, EntityCompany, companyID, err)
	return err
}

func (f *BackofficeFacade) Orders(ctx context.Context, id session.Identity, operator, companyID string, q usecase.ListQuery) (*usecase.OrderListing, error) {
	return f.orders.List(ctx, id.Token, operator, companyID, q)
}

func (f *BackofficeFacade) Order(ctx context.Context, id session.Identity, operator, orderID string) (*model.Order, error) {
	return f.orders.Detail(ctx, id.Token, operator, orderID)
}

func (f *BackofficeFacade) DeleteOrder(ctx context.Context, id session.Identity, operator, orderID string) error {
	err := f.orders.Delete(ctx, id.Token, operator, orderID)
	f.record(ctx, id, ActionDelete, EntityOrder, operator+"/"+orderID, err)
	return err
}

func (f *BackofficeFacade) GenerateOperatorInvoice(ctx context.Context, id session.Identity, operator, companyID string, period model.DateRange) (*model.Invoice, error) {
	invoice, err := f.orders.GenerateInvoice(ctx, id.Token, operator, companyID, period)
	f.record(ctx, id, ActionGenerate, EntityInvoice, operator+"/"+companyID, err)
	return invoice, err
}

func (f *BackofficeFacade) Invoices(ctx context.Context, id session.Identity, q usecase.ListQuery) (*usecase.InvoiceListing, error) {
	return f.invoices.List(ctx, id.Token, q)
}

func (f *BackofficeFacade) Invoice(ctx context.Context, id session.Identity, invoiceID string) (*model.Invoice, error) {
	return f.invoices.Detail(ctx, id.Token, invoiceID)
}

func (f *BackofficeFacade) GenerateInvoice(ctx context.Context, id session.Identity, companyID string, period model.DateRange) (*model.Invoice, error) {
	invoice, err := f.invoices.Generate(ctx, id.Token, companyID, period)
	f.record(ctx, id, ActionGenerate, EntityInvoice, companyID, err)
	return invoice, err
}

func (f *BackofficeFacade) Payments(ctx context.Context, id session.Identity, companyID string) ([]model.PaymentHistory, error) {
	return f.payments.List(ctx, id.Token, companyID)
}

func (f *BackofficeFacade) Payment(ctx context.Context, id session.Identity, companyID, paymentID string) (*model.PaymentHistory, error) {
	return f.payments.Get(ctx, id.Token, companyID, paymentID)
}

// CreatePayment registers a payment entered by the signed-in admin.
func (f *BackofficeFacade) CreatePayment(ctx context.Context, id session.Identity, payment model.PaymentHistory) (*model.PaymentHistory, error) {
	payment.EnteredBy = id.Admin
	created, err := f.payments.Create(ctx, id.Token, payment)
	f.record(ctx, id, ActionCreate, EntityPayment, payment.CompanyID, err)
	return created, err
}

// UpdatePayment saves a correction; the signed-in admin becomes its author.
func (f *BackofficeFacade) UpdatePayment(ctx context.Context, id session.Identity, payment model.PaymentHistory) (*model.PaymentHistory, error) {
	payment.EnteredBy = id.Admin
	updated, err := f.payments.Update(ctx, id.Token, payment)
	f.record(ctx, id, ActionUpdate, EntityPayment, payment.ID, err)
	return updated, err
}

func (f *BackofficeFacade) DeletePayment(ctx context.Context, id session.Identity, paymentID string) error {
	err := f.payments.Delete(ctx, id.Token, paymentID)
	f.record(ctx, id, ActionDelete, EntityPayment, paymentID, err)
	return err
}

func (f *BackofficeFacade) Admins(ctx context.Context, id session.Identity, q usecase.ListQuery) (*usecase.AdminListing, error) {
	return f.admins.List(ctx, id.Token, q)
}

func (f *BackofficeFacade) Admin(ctx context.Context, id session.Identity, adminID string) (*model.Admin, error) {
	return f.admins.Get(ctx, id.Token, adminID)
}

func (f *BackofficeFacade) CreateAdmin(ctx context.Context, id session.Identity, admin model.Admin) (*model.Admin, error) {
	created, err := f.admins.Create(ctx, id.Token, admin)
	f.record(ctx, id, ActionCreate, EntityAdmin, admin.Email, err)
	return created, err
}

func (f *BackofficeFacade) UpdateAdmin(ctx context.Context, id session.Identity, admin model.Admin) (*model.Admin, error) {
	updated, err := f.admins.Update(ctx, id.Token, admin)
	f.record(ctx, id, ActionUpdate, EntityAdmin, admin.ID, err)
	return updated, err
}

func (f *BackofficeFacade) DeleteAdmin(ctx context.Context, id session.Identity, adminID string) error {
	err := f.admins.Delete(ctx, id.Token, adminID)
	f.record(ctx, id, ActionDelete, EntityAdmin, adminID, err)
	return err
}

func (f *BackofficeFacade) Activity(ctx context.Context) ([]model.AuditEntry, error) {
	return f.audits.Recent(ctx, activityLimit)
}

func (f *BackofficeFacade) PruneAudit(ctx context.Context, retention time.Duration) (int64, error) {
	return f.audits.Prune(ctx, retention)
}

func (f *BackofficeFacade) Health(ctx context.Context) error {
	return f.audits.Health(ctx)
}
