package usecase

import (
	"context"
	"strings"

	"github.com/nedcgroup/backoffice/internal/adapter/backend"
	"github.com/nedcgroup/backoffice/internal/config"
	"github.com/nedcgroup/backoffice/internal/domain/model"
	"github.com/nedcgroup/backoffice/internal/listview"
)

// OrderListing is one rendered page of an operator's orders.
type OrderListing struct {
	Operator  model.Operator
	CompanyID string
	Query     ListQuery
	Page      listview.Page[model.Order]
}

// OrderUseCase encapsulates per-operator order handling.
type OrderUseCase struct {
	client   backend.Client
	pageSize int
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(client backend.Client, cfg *config.Config) *OrderUseCase {
	return &OrderUseCase{client: client, pageSize: cfg.PageSize}
}

// List returns the orders of one operator, optionally for a single company.
func (u *OrderUseCase) List(ctx context.Context, token, operator, companyID string, q ListQuery) (*OrderListing, error) {
	op, err := model.ParseOperator(operator)
	if err != nil {
		return nil, err
	}
	companyID = strings.TrimSpace(companyID)

	orders, err := u.client.ListOrders(ctx, token, op, companyID)
	if err != nil {
		return nil, err
	}

	q.Search = strings.TrimSpace(q.Search)
	q.Status = listview.StatusAll
	filtered := listview.Filter(orders, listview.Criteria[model.Order]{Query: q.Search, Fields: orderFields})
	page := listview.Paginate(filtered, q.Page, u.pageSize)
	q.Page = page.Number

	return &OrderListing{Operator: op, CompanyID: companyID, Query: q, Page: page}, nil
}

// Detail loads a single order.
func (u *OrderUseCase) Detail(ctx context.Context, token, operator, id string) (*model.Order, error) {
	op, err := model.ParseOperator(operator)
	if err != nil {
		return nil, err
	}
	if id, err = requireID(id, "order"); err != nil {
		return nil, err
	}
	return u.client.GetOrder(ctx, token, op, id)
}

// Delete removes a single order.
func (u *OrderUseCase) Delete(ctx context.Context, token, operator, id string) error {
	op, err := model.ParseOperator(operator)
	if err != nil {
		return err
	}
	if id, err = requireID(id, "order"); err != nil {
		return err
	}
	return u.client.DeleteOrder(ctx, token, op, id)
}

// GenerateInvoice bills a company's orders of one operator for the period.
func (u *OrderUseCase) GenerateInvoice(ctx context.Context, token, operator, companyID string, period model.DateRange) (*model.Invoice, error) {
	op, err := model.ParseOperator(operator)
	if err != nil {
		return nil, err
	}
	if companyID, err = requireID(companyID, "company"); err != nil {
		return nil, err
	}
	if err := period.Validate(); err != nil {
		return nil, err
	}
	return u.client.GenerateOperatorInvoice(ctx, token, model.InvoiceRequest{CompanyID: companyID, Operator: op, Period: period})
}
