package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nedcgroup/backoffice/internal/domain/model"
)

// ListInvoices returns invoices, optionally restricted to one status.
func (c *HTTPClient) ListInvoices(ctx context.Context, token string, status model.InvoiceStatus) ([]model.Invoice, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", string(status))
	}
	var invoices []model.Invoice
	if err := c.do(ctx, http.MethodGet, token, c.endpoint(query, "invoices"), nil, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// GetInvoice loads a single invoice.
func (c *HTTPClient) GetInvoice(ctx context.Context, token, id string) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := c.do(ctx, http.MethodGet, token, c.endpoint(nil, "invoices", id), nil, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// GenerateInvoice bills all operators of a company for a period.
func (c *HTTPClient) GenerateInvoice(ctx context.Context, token string, req model.InvoiceRequest) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := c.do(ctx, http.MethodPost, token, c.endpoint(nil, "invoices"), newInvoiceRequest(req), &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}
