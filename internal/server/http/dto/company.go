package dto

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	domainErrors "github.com/nedcgroup/backoffice/internal/domain/errors"
	"github.com/nedcgroup/backoffice/internal/domain/model"
)

// CompanyForm is the create and edit form of a company.
type CompanyForm struct {
	Name          string `form:"name" binding:"required"`
	CompanyNumber string `form:"company_number"`
	ManagerEmail  string `form:"manager_email" binding:"required,email"`
	CreditLimit   string `form:"credit_limit"`
	Address       string `form:"address"`
	PostalCode    string `form:"postal_code"`
	City          string `form:"city"`
	OrgNumber     string `form:"org_number"`
	Phone         string `form:"phone"`
	Username      string `form:"username"`
	Active        bool   `form:"active"`
}

// CompanyFormFrom prefills the form with an existing company.
func CompanyFormFrom(c model.Company) CompanyForm {
	return CompanyForm{
		Name:          c.Name,
		CompanyNumber: c.CompanyNumber,
		ManagerEmail:  c.ManagerEmail,
		CreditLimit:   c.CreditLimit.String(),
		Address:       c.Address,
		PostalCode:    c.PostalCode,
		City:          c.City,
		OrgNumber:     c.OrgNumber,
		Phone:         c.Phone,
		Username:      c.Credentials.Username,
		Active:        c.Active,
	}
}

// Model converts the form into a company with the given id.
func (f CompanyForm) Model(id string) (model.Company, error) {
	limit, err := parseAmount(f.CreditLimit, "credit limit")
	if err != nil {
		return model.Company{}, err
	}
	return model.Company{
		ID:            id,
		Name:          f.Name,
		CompanyNumber: f.CompanyNumber,
		ManagerEmail:  f.ManagerEmail,
		CreditLimit:   limit,
		Address:       f.Address,
		PostalCode:    f.PostalCode,
		City:          f.City,
		OrgNumber:     f.OrgNumber,
		Phone:         f.Phone,
		Active:        f.Active,
		Credentials:   model.Credentials{Username: f.Username},
	}, nil
}

// StatusForm carries the requested company status.
type StatusForm struct {
	Active     bool   `form:"active"`
	RedirectTo string `form:"redirectTo"`
}

func parseAmount(raw, what string) (decimal.Decimal, error) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if raw == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s is not a number", domainErrors.ErrInvalidInput, what)
	}
	return amount, nil
}
