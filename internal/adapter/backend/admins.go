package backend

import (
	"context"
	"net/http"

	"github.com/nedcgroup/backoffice/internal/domain/model"
)

// ListAdmins returns every back-office account.
func (c *HTTPClient) ListAdmins(ctx context.Context, token string) ([]model.Admin, error) {
	var admins []model.Admin
	if err := c.do(ctx, http.MethodGet, token, c.endpoint(nil, "admins"), nil, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

// CreateAdmin registers a new account.
func (c *HTTPClient) CreateAdmin(ctx context.Context, token string, admin model.Admin) (*model.Admin, error) {
	var created model.Admin
	if err := c.do(ctx, http.MethodPost, token, c.endpoint(nil, "admins"), admin, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateAdmin changes an account.
func (c *HTTPClient) UpdateAdmin(ctx context.Context, token string, admin model.Admin) (*model.Admin, error) {
	var updated model.Admin
	if err := c.do(ctx, http.MethodPut, token, c.endpoint(nil, "admins", admin.ID), admin, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteAdmin removes an account.
func (c *HTTPClient) DeleteAdmin(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, token, c.endpoint(nil, "admins", id), nil, nil)
}
