package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentHistory is a payment registered against a company's credit.
type PaymentHistory struct {
	ID        string          `json:"id"`
	CompanyID string          `json:"companyId"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	EnteredBy string          `json:"enteredBy"`
	Note      string          `json:"note,omitempty"`
}
