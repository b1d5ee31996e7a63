package model

import "github.com/shopspring/decimal"

// Credentials is the login subset of a company account. Password and Pin are
// only populated when the backend reveals them.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Pin      string `json:"pin,omitempty"`
}

// Company describes a reseller store.
type Company struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	CompanyNumber string          `json:"companyNumber"`
	ManagerEmail  string          `json:"managerEmail"`
	CreditLimit   decimal.Decimal `json:"creditLimit"`
	Balance       decimal.Decimal `json:"balance"`
	Address       string          `json:"address"`
	PostalCode    string          `json:"postalCode"`
	City          string          `json:"city"`
	OrgNumber     string          `json:"orgNumber"`
	Phone         string          `json:"phone"`
	Active        bool            `json:"isActive"`
	Credentials   Credentials     `json:"credentials"`
}

// CompanyQuery carries list parameters forwarded to the backend.
type CompanyQuery struct {
	Search string
	Status string
	Page   int
}

// CompanyList is a backend page of companies.
type CompanyList struct {
	Companies []Company `json:"data"`
	Total     int       `json:"total"`
}
