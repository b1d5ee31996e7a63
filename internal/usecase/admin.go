package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/nedcgroup/backoffice/internal/adapter/backend"
	"github.com/nedcgroup/backoffice/internal/config"
	domainErrors "github.com/nedcgroup/backoffice/internal/domain/errors"
	"github.com/nedcgroup/backoffice/internal/domain/model"
	"github.com/nedcgroup/backoffice/internal/listview"
)

// AdminListing is one rendered page of admin accounts.
type AdminListing struct {
	Query ListQuery
	Page  listview.Page[model.Admin]
}

// AdminUseCase manages back-office accounts.
type AdminUseCase struct {
	client   backend.Client
	pageSize int
}

// NewAdminUseCase constructs AdminUseCase.
func NewAdminUseCase(client backend.Client, cfg *config.Config) *AdminUseCase {
	return &AdminUseCase{client: client, pageSize: cfg.PageSize}
}

func adminFields(a model.Admin) []string {
	return []string{a.Name, a.Email, a.Company, string(a.Role)}
}

// List fetches all admins and pages them locally.
func (u *AdminUseCase) List(ctx context.Context, token string, q ListQuery) (*AdminListing, error) {
	admins, err := u.client.ListAdmins(ctx, token)
	if err != nil {
		return nil, err
	}
	q.Search = strings.TrimSpace(q.Search)
	q.Status = listview.StatusAll
	filtered := listview.Filter(admins, listview.Criteria[model.Admin]{Query: q.Search, Fields: adminFields})
	page := listview.Paginate(filtered, q.Page, u.pageSize)
	q.Page = page.Number
	return &AdminListing{Query: q, Page: page}, nil
}

// Get finds one admin in the full list; the backend has no single-admin endpoint.
func (u *AdminUseCase) Get(ctx context.Context, token, id string) (*model.Admin, error) {
	id, err := requireID(id, "admin")
	if err != nil {
		return nil, err
	}
	admins, err := u.client.ListAdmins(ctx, token)
	if err != nil {
		return nil, err
	}
	for i := range admins {
		if admins[i].ID == id {
			return &admins[i], nil
		}
	}
	return nil, fmt.Errorf("admin %s: %w", id, domainErrors.ErrNotFound)
}

// Create adds an admin account.
func (u *AdminUseCase) Create(ctx context.Context, token string, admin model.Admin) (*model.Admin, error) {
	admin.ID = ""
	if err := ValidateAdmin(&admin, true); err != nil {
		return nil, err
	}
	return u.client.CreateAdmin(ctx, token, admin)
}

// Update changes an admin account; an empty password keeps the current one.
func (u *AdminUseCase) Update(ctx context.Context, token string, admin model.Admin) (*model.Admin, error) {
	id, err := requireID(admin.ID, "admin")
	if err != nil {
		return nil, err
	}
	admin.ID = id
	if err := ValidateAdmin(&admin, false); err != nil {
		return nil, err
	}
	return u.client.UpdateAdmin(ctx, token, admin)
}

// Delete removes an admin account.
func (u *AdminUseCase) Delete(ctx context.Context, token, id string) error {
	id, err := requireID(id, "admin")
	if err != nil {
		return err
	}
	return u.client.DeleteAdmin(ctx, token, id)
}
