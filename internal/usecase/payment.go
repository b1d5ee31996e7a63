package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/nedcgroup/backoffice/internal/adapter/backend"
	domainErrors "github.com/nedcgroup/backoffice/internal/domain/errors"
	"github.com/nedcgroup/backoffice/internal/domain/model"
)

// PaymentUseCase manages a company's payment history.
type PaymentUseCase struct {
	client backend.Client
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(client backend.Client) *PaymentUseCase {
	return &PaymentUseCase{client: client}
}

func sortPayments(payments []model.PaymentHistory) []model.PaymentHistory {
	sort.SliceStable(payments, func(i, j int) bool { return payments[i].Date.After(payments[j].Date) })
	return payments
}

// List returns the payments of a company, newest first.
func (u *PaymentUseCase) List(ctx context.Context, token, companyID string) ([]model.PaymentHistory, error) {
	companyID, err := requireID(companyID, "company")
	if err != nil {
		return nil, err
	}
	payments, err := u.client.ListPayments(ctx, token, companyID)
	if err != nil {
		return nil, err
	}
	return sortPayments(payments), nil
}

// Get finds one payment of a company.
func (u *PaymentUseCase) Get(ctx context.Context, token, companyID, id string) (*model.PaymentHistory, error) {
	id, err := requireID(id, "payment")
	if err != nil {
		return nil, err
	}
	payments, err := u.List(ctx, token, companyID)
	if err != nil {
		return nil, err
	}
	for i := range payments {
		if payments[i].ID == id {
			return &payments[i], nil
		}
	}
	return nil, fmt.Errorf("payment %s: %w", id, domainErrors.ErrNotFound)
}

// Create registers a payment.
func (u *PaymentUseCase) Create(ctx context.Context, token string, payment model.PaymentHistory) (*model.PaymentHistory, error) {
	payment.ID = ""
	if err := ValidatePayment(&payment); err != nil {
		return nil, err
	}
	return u.client.CreatePayment(ctx, token, payment)
}

// Update corrects a registered payment.
func (u *PaymentUseCase) Update(ctx context.Context, token string, payment model.PaymentHistory) (*model.PaymentHistory, error) {
	id, err := requireID(payment.ID, "payment")
	if err != nil {
		return nil, err
	}
	payment.ID = id
	if err := ValidatePayment(&payment); err != nil {
		return nil, err
	}
	return u.client.UpdatePayment(ctx, token, payment)
}

// Delete removes a payment.
func (u *PaymentUseCase) Delete(ctx context.Context, token, id string) error {
	id, err := requireID(id, "payment")
	if err != nil {
		return err
	}
	return u.client.DeletePayment(ctx, token, id)
}
