package backend

import (
	"context"
	"net/http"

	"github.com/nedcgroup/backoffice/internal/domain/model"
)

// ListPayments returns the payment history of a company.
func (c *HTTPClient) ListPayments(ctx context.Context, token, companyID string) ([]model.PaymentHistory, error) {
	var payments []model.PaymentHistory
	if err := c.do(ctx, http.MethodGet, token, c.endpoint(nil, "companies", companyID, "payments"), nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// CreatePayment registers a payment for payment.CompanyID.
func (c *HTTPClient) CreatePayment(ctx context.Context, token string, payment model.PaymentHistory) (*model.PaymentHistory, error) {
	var created model.PaymentHistory
	if err := c.do(ctx, http.MethodPost, token, c.endpoint(nil, "companies", payment.CompanyID, "payments"), payment, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdatePayment corrects a registered payment.
func (c *HTTPClient) UpdatePayment(ctx context.Context, token string, payment model.PaymentHistory) (*model.PaymentHistory, error) {
	var updated model.PaymentHistory
	if err := c.do(ctx, http.MethodPut, token, c.endpoint(nil, "payments", payment.ID), payment, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeletePayment removes a payment.
func (c *HTTPClient) DeletePayment(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, token, c.endpoint(nil, "payments", id), nil, nil)
}
