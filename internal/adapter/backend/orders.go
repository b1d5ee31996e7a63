package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nedcgroup/backoffice/internal/domain/model"
)

const dateLayout = "2006-01-02"

type invoiceRequest struct {
	CompanyID string `json:"companyId"`
	From      string `json:"from"`
	To        string `json:"to"`
}

func newInvoiceRequest(req model.InvoiceRequest) invoiceRequest {
	return invoiceRequest{
		CompanyID: req.CompanyID,
		From:      req.Period.From.Format(dateLayout),
		To:        req.Period.To.Format(dateLayout),
	}
}

// ListOrders returns the orders of one operator, optionally for a single company.
func (c *HTTPClient) ListOrders(ctx context.Context, token string, operator model.Operator, companyID string) ([]model.Order, error) {
	query := url.Values{}
	if companyID != "" {
		query.Set("companyId", companyID)
	}
	var orders []model.Order
	if err := c.do(ctx, http.MethodGet, token, c.endpoint(query, "orders", string(operator)), nil, &orders); err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].Operator == "" {
			orders[i].Operator = operator
		}
	}
	return orders, nil
}

// GetOrder loads a single order of an operator.
func (c *HTTPClient) GetOrder(ctx context.Context, token string, operator model.Operator, id string) (*model.Order, error) {
	var order model.Order
	if err := c.do(ctx, http.MethodGet, token, c.endpoint(nil, "orders", string(operator), id), nil, &order); err != nil {
		return nil, err
	}
	if order.Operator == "" {
		order.Operator = operator
	}
	return &order, nil
}

// DeleteOrder removes an order of an operator.
func (c *HTTPClient) DeleteOrder(ctx context.Context, token string, operator model.Operator, id string) error {
	return c.do(ctx, http.MethodDelete, token, c.endpoint(nil, "orders", string(operator), id), nil, nil)
}

// GenerateOperatorInvoice bills a company's orders of one operator for a period.
func (c *HTTPClient) GenerateOperatorInvoice(ctx context.Context, token string, req model.InvoiceRequest) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := c.do(ctx, http.MethodPost, token, c.endpoint(nil, "orders", string(req.Operator), "invoice"), newInvoiceRequest(req), &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}
