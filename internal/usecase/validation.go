package usecase

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	domainErrors "github.com/nedcgroup/backoffice/internal/domain/errors"
	"github.com/nedcgroup/backoffice/internal/domain/model"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domainErrors.ErrInvalidInput, fmt.Sprintf(format, args...))
}

var validate = validator.New()

// ValidateEmail reports whether value is a bare e-mail address, using the
// same rule as the form bindings.
func ValidateEmail(value string) bool {
	return validate.Var(value, "required,email") == nil
}

func requireID(id, what string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", invalid("%s id is required", what)
	}
	return id, nil
}

// ValidateCompany checks the locally verifiable company fields.
func ValidateCompany(c *model.Company) error {
	c.Name = strings.TrimSpace(c.Name)
	c.ManagerEmail = strings.TrimSpace(c.ManagerEmail)
	if c.Name == "" {
		return invalid("company name is required")
	}
	if !ValidateEmail(c.ManagerEmail) {
		return invalid("manager e-mail %q is not valid", c.ManagerEmail)
	}
	if c.CreditLimit.IsNegative() {
		return invalid("credit limit must not be negative")
	}
	return nil
}

// ValidatePayment checks a payment before it is sent to the backend.
func ValidatePayment(p *model.PaymentHistory) error {
	p.CompanyID = strings.TrimSpace(p.CompanyID)
	p.Note = strings.TrimSpace(p.Note)
	if p.CompanyID == "" {
		return invalid("company id is required")
	}
	if !p.Amount.IsPositive() {
		return invalid("payment amount must be positive")
	}
	if p.Date.IsZero() {
		return invalid("payment date is required")
	}
	return nil
}

// ValidateAdmin checks an admin account; a password is only mandatory on creation.
func ValidateAdmin(a *model.Admin, creating bool) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Email = strings.TrimSpace(a.Email)
	if a.Name == "" {
		return invalid("admin name is required")
	}
	if !ValidateEmail(a.Email) {
		return invalid("admin e-mail %q is not valid", a.Email)
	}
	switch a.Role {
	case "":
		a.Role = model.AdminRoleAdmin
	case model.AdminRoleAdmin, model.AdminRoleSuper:
	default:
		return invalid("unknown admin role %q", a.Role)
	}
	if creating && a.Password == "" {
		return invalid("password is required for a new admin")
	}
	return nil
}
