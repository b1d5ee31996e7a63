package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/nedcgroup/backoffice/internal/domain/errors"
	testhelpers "github.com/nedcgroup/backoffice/internal/test"
)

func TestAuthUseCaseLoginSuccess(t *testing.T) {
	stub := &testhelpers.BackendStub{LoginFn: func(_ context.Context, email, password string) (string, error) {
		if email != "eva@nedc.se" || password != "secret" {
			t.Fatalf("unexpected credentials %q/%q", email, password)
		}
		return "bearer", nil
	}}
	uc := NewAuthUseCase(stub)

	token, err := uc.Login(context.Background(), "  eva@nedc.se ", "secret")
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if token != "bearer" {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthUseCaseLoginRejectsInvalidForm(t *testing.T) {
	stub := &testhelpers.BackendStub{}
	uc := NewAuthUseCase(stub)

	cases := [][2]string{{"", "secret"}, {"eva@nedc.se", ""}, {"not-an-email", "secret"}}
	for _, c := range cases {
		if _, err := uc.Login(context.Background(), c[0], c[1]); !errors.Is(err, domainErrors.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %q/%q, got %v", c[0], c[1], err)
		}
	}
	if calls := stub.CallsTo("Login"); len(calls) != 0 {
		t.Fatalf("backend must not be called for invalid forms, got %d calls", len(calls))
	}
}

func TestAuthUseCaseLoginPropagatesBackendError(t *testing.T) {
	uc := NewAuthUseCase(&testhelpers.BackendStub{LoginFn: func(context.Context, string, string) (string, error) {
		return "", domainErrors.ErrUnauthorized
	}})
	if _, err := uc.Login(context.Background(), "eva@nedc.se", "wrong"); !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	uc = NewAuthUseCase(&testhelpers.BackendStub{LoginFn: func(context.Context, string, string) (string, error) {
		return "", nil
	}})
	if _, err := uc.Login(context.Background(), "eva@nedc.se", "pw"); !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for empty token, got %v", err)
	}
}
