package usecase

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/nedcgroup/backoffice/internal/adapter/backend"
	"github.com/nedcgroup/backoffice/internal/config"
	"github.com/nedcgroup/backoffice/internal/domain/model"
	"github.com/nedcgroup/backoffice/internal/listview"
)

// ListQuery carries the search, status filter and page of a list view.
type ListQuery struct {
	Search string
	Status string
	Page   int
}

// CompanyListing is one rendered page of the companies list.
type CompanyListing struct {
	Query ListQuery
	Page  listview.Page[model.Company]
}

// CompanyDetail is everything the company page shows.
type CompanyDetail struct {
	Company  model.Company
	Orders   []model.OperatorOrders
	Payments []model.PaymentHistory
	// Operator is the selected orders tab and OrdersPage its filtered page.
	Operator   model.Operator
	OrderQuery ListQuery
	OrdersPage listview.Page[model.Order]
}

// CompanyUseCase loads and mutates companies.
type CompanyUseCase struct {
	client   backend.Client
	pageSize int
}

// NewCompanyUseCase constructs CompanyUseCase.
func NewCompanyUseCase(client backend.Client, cfg *config.Config) *CompanyUseCase {
	return &CompanyUseCase{client: client, pageSize: cfg.PageSize}
}

func companyFields(c model.Company) []string {
	return []string{c.Name, c.CompanyNumber, c.ManagerEmail, c.City, c.OrgNumber, c.Credentials.Username}
}

func companyActive(c model.Company) bool { return c.Active }

func orderFields(o model.Order) []string {
	return []string{o.ID, o.VoucherNumber, o.SerialNumber, o.Description}
}

// maxBackendPages bounds how many backend pages a single list view walks.
const maxBackendPages = 100

// fetchCompanies walks the backend's pages until it has every company the
// backend reports in total. A page that adds nothing new ends the walk.
func fetchCompanies(ctx context.Context, client backend.Client, token string, q model.CompanyQuery) ([]model.Company, error) {
	var (
		companies []model.Company
		seen      = make(map[string]struct{})
	)
	for page := 1; page <= maxBackendPages; page++ {
		q.Page = page
		list, err := client.ListCompanies(ctx, token, q)
		if err != nil {
			return nil, err
		}
		added := 0
		for _, c := range list.Companies {
			if c.ID != "" {
				if _, ok := seen[c.ID]; ok {
					continue
				}
				seen[c.ID] = struct{}{}
			}
			companies = append(companies, c)
			added++
		}
		if added == 0 || len(companies) >= list.Total {
			break
		}
	}
	return companies, nil
}

// List fetches every company matching the search and status, then filters
// and paginates them locally.
func (u *CompanyUseCase) List(ctx context.Context, token string, q ListQuery) (*CompanyListing, error) {
	q.Search = strings.TrimSpace(q.Search)
	q.Status = listview.NormalizeStatus(q.Status)

	backendQuery := model.CompanyQuery{Search: q.Search}
	if q.Status != listview.StatusAll {
		backendQuery.Status = q.Status
	}
	companies, err := fetchCompanies(ctx, u.client, token, backendQuery)
	if err != nil {
		return nil, err
	}

	filtered := listview.Filter(companies, listview.Criteria[model.Company]{
		Query:  q.Search,
		Status: q.Status,
		Fields: companyFields,
		Active: companyActive,
	})
	page := listview.Paginate(filtered, q.Page, u.pageSize)
	q.Page = page.Number

	return &CompanyListing{Query: q, Page: page}, nil
}

// Detail loads the company, the orders of every operator and the payment
// history in parallel. The first failure aborts the whole page.
func (u *CompanyUseCase) Detail(ctx context.Context, token, id string, operator string, q ListQuery) (*CompanyDetail, error) {
	id, err := requireID(id, "company")
	if err != nil {
		return nil, err
	}
	selected := model.OperatorComviq
	if operator != "" {
		if selected, err = model.ParseOperator(operator); err != nil {
			return nil, err
		}
	}

	detail := &CompanyDetail{
		Orders:   make([]model.OperatorOrders, len(model.Operators)),
		Operator: selected,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		company, err := u.client.GetCompany(gctx, token, id)
		if err != nil {
			return err
		}
		detail.Company = *company
		return nil
	})
	for i, op := range model.Operators {
		g.Go(func() error {
			orders, err := u.client.ListOrders(gctx, token, op, id)
			if err != nil {
				return err
			}
			detail.Orders[i] = model.OperatorOrders{Operator: op, Orders: orders}
			return nil
		})
	}
	g.Go(func() error {
		payments, err := u.client.ListPayments(gctx, token, id)
		if err != nil {
			return err
		}
		detail.Payments = sortPayments(payments)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	q.Search = strings.TrimSpace(q.Search)
	var current []model.Order
	for _, group := range detail.Orders {
		if group.Operator == selected {
			current = group.Orders
		}
	}
	filtered := listview.Filter(current, listview.Criteria[model.Order]{Query: q.Search, Fields: orderFields})
	detail.OrdersPage = listview.Paginate(filtered, q.Page, u.pageSize)
	q.Page = detail.OrdersPage.Number
	detail.OrderQuery = q

	return detail, nil
}

// Create registers a new company.
func (u *CompanyUseCase) Create(ctx context.Context, token string, company model.Company) (*model.Company, error) {
	company.ID = ""
	if err := ValidateCompany(&company); err != nil {
		return nil, err
	}
	return u.client.CreateCompany(ctx, token, company)
}

// Update saves the editable fields of an existing company.
func (u *CompanyUseCase) Update(ctx context.Context, token string, company model.Company) (*model.Company, error) {
	id, err := requireID(company.ID, "company")
	if err != nil {
		return nil, err
	}
	company.ID = id
	if err := ValidateCompany(&company); err != nil {
		return nil, err
	}
	return u.client.UpdateCompany(ctx, token, company)
}

// Delete removes a company.
func (u *CompanyUseCase) Delete(ctx context.Context, token, id string) error {
	id, err := requireID(id, "company")
	if err != nil {
		return err
	}
	return u.client.DeleteCompany(ctx, token, id)
}

// SetStatus asks the backend to (de)activate a company and returns the state it confirmed.
func (u *CompanyUseCase) SetStatus(ctx context.Context, token, id string, active bool) (*model.Company, error) {
	id, err := requireID(id, "company")
	if err != nil {
		return nil, err
	}
	return u.client.SetCompanyStatus(ctx, token, id, active)
}

// ResetPassword has the backend issue new store credentials.
func (u *CompanyUseCase) ResetPassword(ctx context.Context, token, id string) error {
	id, err := requireID(id, "company")
	if err != nil {
		return err
	}
	return u.client.ResetCompanyPassword(ctx, token, id)
}

// ResetPin has the backend issue a new store PIN.
func (u *CompanyUseCase) ResetPin(ctx context.Context, token, id string) error {
	id, err := requireID(id, "company")
	if err != nil {
		return err
	}
	return u.client.ResetCompanyPin(ctx, token, id)
}
