package usecase

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/nedcgroup/backoffice/internal/adapter/backend"
	"github.com/nedcgroup/backoffice/internal/config"
	"github.com/nedcgroup/backoffice/internal/domain/model"
	"github.com/nedcgroup/backoffice/internal/listview"
)

// InvoiceListing is one rendered page of invoices plus the companies that can be billed.
type InvoiceListing struct {
	Query     ListQuery
	Page      listview.Page[model.Invoice]
	Companies []model.Company
}

// InvoiceUseCase lists and generates invoices.
type InvoiceUseCase struct {
	client   backend.Client
	pageSize int
}

// NewInvoiceUseCase constructs InvoiceUseCase.
func NewInvoiceUseCase(client backend.Client, cfg *config.Config) *InvoiceUseCase {
	return &InvoiceUseCase{client: client, pageSize: cfg.PageSize}
}

// ParseInvoiceStatus maps the status filter; anything else means all invoices.
func ParseInvoiceStatus(raw string) model.InvoiceStatus {
	switch status := model.InvoiceStatus(strings.ToLower(strings.TrimSpace(raw))); status {
	case model.InvoiceStatusSuccess, model.InvoiceStatusFailed:
		return status
	default:
		return ""
	}
}

func invoiceFields(i model.Invoice) []string {
	return []string{i.ID, i.CompanyName, i.CompanyID}
}

// List loads invoices and companies in parallel.
func (u *InvoiceUseCase) List(ctx context.Context, token string, q ListQuery) (*InvoiceListing, error) {
	status := ParseInvoiceStatus(q.Status)
	q.Status = string(status)
	q.Search = strings.TrimSpace(q.Search)

	var (
		invoices  []model.Invoice
		companies []model.Company
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoices, err = u.client.ListInvoices(gctx, token, status)
		return err
	})
	g.Go(func() error {
		var err error
		companies, err = fetchCompanies(gctx, u.client, token, model.CompanyQuery{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	filtered := listview.Filter(invoices, listview.Criteria[model.Invoice]{Query: q.Search, Fields: invoiceFields})
	page := listview.Paginate(filtered, q.Page, u.pageSize)
	q.Page = page.Number

	return &InvoiceListing{Query: q, Page: page, Companies: companies}, nil
}

// Detail loads a single invoice.
func (u *InvoiceUseCase) Detail(ctx context.Context, token, id string) (*model.Invoice, error) {
	id, err := requireID(id, "invoice")
	if err != nil {
		return nil, err
	}
	return u.client.GetInvoice(ctx, token, id)
}

// Generate bills every operator of a company for the period.
func (u *InvoiceUseCase) Generate(ctx context.Context, token, companyID string, period model.DateRange) (*model.Invoice, error) {
	companyID, err := requireID(companyID, "company")
	if err != nil {
		return nil, err
	}
	if err := period.Validate(); err != nil {
		return nil, err
	}
	return u.client.GenerateInvoice(ctx, token, model.InvoiceRequest{CompanyID: companyID, Period: period})
}
