package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/nedcgroup/backoffice/internal/domain/model"
)

type statusRequest struct {
	Active bool `json:"isActive"`
}

type credentialsPayload struct {
	Username string `json:"username"`
}

// companyPayload holds the fields an admin may write. Balance and revealed
// credentials are owned by the backend.
type companyPayload struct {
	Name          string             `json:"name"`
	CompanyNumber string             `json:"companyNumber"`
	ManagerEmail  string             `json:"managerEmail"`
	CreditLimit   decimal.Decimal    `json:"creditLimit"`
	Address       string             `json:"address"`
	PostalCode    string             `json:"postalCode"`
	City          string             `json:"city"`
	OrgNumber     string             `json:"orgNumber"`
	Phone         string             `json:"phone"`
	Active        bool               `json:"isActive"`
	Credentials   credentialsPayload `json:"credentials"`
}

func newCompanyPayload(c model.Company) companyPayload {
	return companyPayload{
		Name:          c.Name,
		CompanyNumber: c.CompanyNumber,
		ManagerEmail:  c.ManagerEmail,
		CreditLimit:   c.CreditLimit,
		Address:       c.Address,
		PostalCode:    c.PostalCode,
		City:          c.City,
		OrgNumber:     c.OrgNumber,
		Phone:         c.Phone,
		Active:        c.Active,
		Credentials:   credentialsPayload{Username: c.Credentials.Username},
	}
}

// ListCompanies forwards the initial search, status and page to the backend.
func (c *HTTPClient) ListCompanies(ctx context.Context, token string, q model.CompanyQuery) (*model.CompanyList, error) {
	query := url.Values{}
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	switch q.Status {
	case "active":
		query.Set("isActive", "true")
	case "inactive":
		query.Set("isActive", "false")
	}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}

	var list model.CompanyList
	if err := c.do(ctx, http.MethodGet, token, c.endpoint(query, "companies"), nil, &list); err != nil {
		return nil, err
	}
	if list.Total < len(list.Companies) {
		list.Total = len(list.Companies)
	}
	return &list, nil
}

// GetCompany loads a single company.
func (c *HTTPClient) GetCompany(ctx context.Context, token, id string) (*model.Company, error) {
	var company model.Company
	if err := c.do(ctx, http.MethodGet, token, c.endpoint(nil, "companies", id), nil, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// CreateCompany registers a new company.
func (c *HTTPClient) CreateCompany(ctx context.Context, token string, company model.Company) (*model.Company, error) {
	var created model.Company
	if err := c.do(ctx, http.MethodPost, token, c.endpoint(nil, "companies"), newCompanyPayload(company), &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCompany replaces the editable fields of a company.
func (c *HTTPClient) UpdateCompany(ctx context.Context, token string, company model.Company) (*model.Company, error) {
	var updated model.Company
	if err := c.do(ctx, http.MethodPut, token, c.endpoint(nil, "companies", company.ID), newCompanyPayload(company), &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCompany removes a company.
func (c *HTTPClient) DeleteCompany(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, token, c.endpoint(nil, "companies", id), nil, nil)
}

// SetCompanyStatus activates or deactivates a company and returns its new state.
// Older backends only accept the call as GET with a JSON body.
func (c *HTTPClient) SetCompanyStatus(ctx context.Context, token, id string, active bool) (*model.Company, error) {
	method := http.MethodPatch
	if c.legacyStatusGET {
		method = http.MethodGet
	}
	var updated model.Company
	if err := c.do(ctx, method, token, c.endpoint(nil, "companies", id, "status"), statusRequest{Active: active}, &updated); err != nil {
		return nil, err
	}
	if updated.ID == "" {
		updated.ID = id
		updated.Active = active
	}
	return &updated, nil
}

// ResetCompanyPassword asks the backend to issue new store credentials.
func (c *HTTPClient) ResetCompanyPassword(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodPost, token, c.endpoint(nil, "companies", id, "reset-password"), nil, nil)
}

// ResetCompanyPin asks the backend to issue a new store PIN.
func (c *HTTPClient) ResetCompanyPin(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodPost, token, c.endpoint(nil, "companies", id, "reset-pin"), nil, nil)
}
