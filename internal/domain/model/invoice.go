package model

import (
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/nedcgroup/backoffice/internal/domain/errors"
)

// InvoiceStatus reports whether invoice generation succeeded at the backend.
type InvoiceStatus string

const (
	InvoiceStatusSuccess InvoiceStatus = "success"
	InvoiceStatusFailed  InvoiceStatus = "failed"
)

// Invoice summarises billed orders of a company for a period.
type Invoice struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"companyId"`
	CompanyName string          `json:"companyName"`
	From        time.Time       `json:"from"`
	To          time.Time       `json:"to"`
	Status      InvoiceStatus   `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// DateRange is an inclusive period used for invoice generation.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Validate requires both bounds and From not after To.
func (r DateRange) Validate() error {
	if r.From.IsZero() || r.To.IsZero() {
		return domainErrors.ErrInvalidDateRange
	}
	if r.From.After(r.To) {
		return domainErrors.ErrInvalidDateRange
	}
	return nil
}

// InvoiceRequest asks the backend to generate an invoice.
type InvoiceRequest struct {
	CompanyID string
	Operator  Operator
	Period    DateRange
}
