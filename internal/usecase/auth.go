package usecase

import (
	"context"
	"strings"

	"github.com/nedcgroup/backoffice/internal/adapter/backend"
	domainErrors "github.com/nedcgroup/backoffice/internal/domain/errors"
)

// AuthUseCase exchanges admin credentials for a backend bearer token.
type AuthUseCase struct {
	client backend.Client
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(client backend.Client) *AuthUseCase {
	return &AuthUseCase{client: client}
}

// Login validates the form locally and returns the token issued by the backend.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", invalid("e-mail and password are required")
	}
	if !ValidateEmail(email) {
		return "", invalid("e-mail %q is not valid", email)
	}

	token, err := u.client.Login(ctx, email, password)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", domainErrors.ErrUnauthorized
	}
	return token, nil
}
