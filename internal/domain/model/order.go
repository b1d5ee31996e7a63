package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a voucher sold through a company for one operator.
type Order struct {
	ID            string          `json:"id"`
	Operator      Operator        `json:"operator"`
	CompanyID     string          `json:"companyId"`
	VoucherNumber string          `json:"voucherNumber"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	OrderDate     time.Time       `json:"orderDate"`
	ExpireDate    time.Time       `json:"expireDate"`
	SerialNumber  string          `json:"serialNumber"`
}

// OperatorOrders groups the orders of a company for a single operator.
type OperatorOrders struct {
	Operator Operator
	Orders   []Order
}

// Total sums the order amounts.
func (o OperatorOrders) Total() decimal.Decimal {
	total := decimal.Zero
	for _, order := range o.Orders {
		total = total.Add(order.Amount)
	}
	return total
}
