package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/nedcgroup/backoffice/internal/config"
	domainErrors "github.com/nedcgroup/backoffice/internal/domain/errors"
	"github.com/nedcgroup/backoffice/internal/domain/model"
	testhelpers "github.com/nedcgroup/backoffice/internal/test"
)

func january() model.DateRange {
	return model.DateRange{
		From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestOrderUseCaseListRejectsUnknownOperator(t *testing.T) {
	stub := &testhelpers.BackendStub{}
	uc := NewOrderUseCase(stub, &config.Config{PageSize: 10})

	if _, err := uc.List(context.Background(), "tok", "tele2", "", ListQuery{}); err != domainErrors.ErrInvalidOperator {
		t.Fatalf("expected invalid operator error, got %v", err)
	}
	if len(stub.Calls()) != 0 {
		t.Fatalf("backend must not be called for unknown operator")
	}
}

func TestOrderUseCaseListSearches(t *testing.T) {
	stub := &testhelpers.BackendStub{ListOrdersFn: func(_ context.Context, _ string, op model.Operator, companyID string) ([]model.Order, error) {
		if op != model.OperatorHalebop || companyID != "c1" {
			t.Fatalf("unexpected arguments: %s %s", op, companyID)
		}
		return []model.Order{
			{ID: "1", VoucherNumber: "HB-100"},
			{ID: "2", VoucherNumber: "HB-200"},
			{ID: "3", SerialNumber: "sn-100"},
		}, nil
	}}
	uc := NewOrderUseCase(stub, &config.Config{PageSize: 10})

	listing, err := uc.List(context.Background(), "tok", "HALEBOP", " c1 ", ListQuery{Search: "100"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if listing.Operator != model.OperatorHalebop || listing.Page.Total != 2 {
		t.Fatalf("unexpected listing: %+v", listing)
	}
}

func TestOrderUseCaseDeleteTargetsOneOrder(t *testing.T) {
	stub := &testhelpers.BackendStub{}
	uc := NewOrderUseCase(stub, &config.Config{PageSize: 10})

	if err := uc.Delete(context.Background(), "tok", "lyca", "o7"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	calls := stub.CallsTo("DeleteOrder")
	if len(calls) != 1 || calls[0].ID != "o7" || calls[0].Token != "tok" {
		t.Fatalf("expected exactly one delete of o7, got %+v", calls)
	}

	if err := uc.Delete(context.Background(), "tok", "lyca", ""); err == nil {
		t.Fatal("expected error for empty id")
	}
}

func TestOrderUseCaseDetail(t *testing.T) {
	uc := NewOrderUseCase(&testhelpers.BackendStub{}, &config.Config{PageSize: 10})
	order, err := uc.Detail(context.Background(), "tok", "comviq", "o1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Operator != model.OperatorComviq || order.ID != "o1" {
		t.Fatalf("unexpected order %+v", order)
	}
}

func TestOrderUseCaseGenerateInvoice(t *testing.T) {
	var got model.InvoiceRequest
	stub := &testhelpers.BackendStub{GenerateOperatorInvoiceFn: func(_ context.Context, _ string, req model.InvoiceRequest) (*model.Invoice, error) {
		got = req
		return &model.Invoice{ID: "inv"}, nil
	}}
	uc := NewOrderUseCase(stub, &config.Config{PageSize: 10})

	if _, err := uc.GenerateInvoice(context.Background(), "tok", "telia", "c1", january()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Operator != model.OperatorTelia || got.CompanyID != "c1" || got.Period != january() {
		t.Fatalf("unexpected request %+v", got)
	}

	reversed := model.DateRange{From: january().To, To: january().From}
	if _, err := uc.GenerateInvoice(context.Background(), "tok", "telia", "c1", reversed); err != domainErrors.ErrInvalidDateRange {
		t.Fatalf("expected invalid date range, got %v", err)
	}
	if n := len(stub.CallsTo("GenerateOperatorInvoice")); n != 1 {
		t.Fatalf("expected one backend call, got %d", n)
	}
}
