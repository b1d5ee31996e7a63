package dto

import (
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/nedcgroup/backoffice/internal/domain/errors"
	"github.com/nedcgroup/backoffice/internal/domain/model"
)

// DateLayout is the format of date inputs.
const DateLayout = time.DateOnly

// PaymentForm registers or corrects a payment.
type PaymentForm struct {
	Amount string `form:"amount" binding:"required"`
	Date   string `form:"date" binding:"required"`
	Note   string `form:"note"`
}

// PaymentFormFrom prefills the form with an existing payment.
func PaymentFormFrom(p model.PaymentHistory) PaymentForm {
	form := PaymentForm{Amount: p.Amount.String(), Note: p.Note}
	if !p.Date.IsZero() {
		form.Date = p.Date.Format(DateLayout)
	}
	return form
}

// Model converts the form into a payment of companyID.
func (f PaymentForm) Model(id, companyID string) (model.PaymentHistory, error) {
	amount, err := parseAmount(f.Amount, "amount")
	if err != nil {
		return model.PaymentHistory{}, err
	}
	date, err := parseDate(f.Date, "date")
	if err != nil {
		return model.PaymentHistory{}, err
	}
	return model.PaymentHistory{
		ID:        id,
		CompanyID: companyID,
		Amount:    amount,
		Date:      date,
		Note:      strings.TrimSpace(f.Note),
	}, nil
}

// PeriodForm requests invoice generation for a company.
type PeriodForm struct {
	CompanyID  string `form:"company_id" binding:"required"`
	From       string `form:"from" binding:"required"`
	To         string `form:"to" binding:"required"`
	RedirectTo string `form:"redirectTo"`
}

// Period parses and validates the requested date range.
func (f PeriodForm) Period() (model.DateRange, error) {
	from, err := parseDate(f.From, "from")
	if err != nil {
		return model.DateRange{}, err
	}
	to, err := parseDate(f.To, "to")
	if err != nil {
		return model.DateRange{}, err
	}
	period := model.DateRange{From: from, To: to}
	if err := period.Validate(); err != nil {
		return model.DateRange{}, err
	}
	return period, nil
}

func parseDate(raw, what string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a date like 2024-01-31", domainErrors.ErrInvalidInput, what)
	}
	return t, nil
}
