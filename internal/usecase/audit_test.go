package usecase

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/nedcgroup/backoffice/internal/domain/model"
	testhelpers "github.com/nedcgroup/backoffice/internal/test"
)

func TestAuditUseCaseRecordsOutcome(t *testing.T) {
	repo := &testhelpers.AuditRepositoryStub{}
	uc := NewAuditUseCase(repo, slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil)))
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	action := AuditAction{Admin: "eva@nedc.se", Action: "delete", Entity: "company", EntityID: "c1"}
	uc.Record(context.Background(), action, nil)
	uc.Record(context.Background(), action, errors.New("backend error: 500"))

	entries := repo.Snapshot()
	if len(entries) != 2 {
		t.Fatalf("expected two entries, got %d", len(entries))
	}
	if entries[0].Outcome != model.AuditOutcomeOK || entries[0].At != fixed || entries[0].ID.String() == "" {
		t.Fatalf("unexpected first entry %+v", entries[0])
	}
	if entries[1].Outcome != model.AuditOutcomeFailed || entries[1].Detail != "backend error: 500" {
		t.Fatalf("unexpected second entry %+v", entries[1])
	}
	if entries[0].ID == entries[1].ID {
		t.Fatal("expected unique entry ids")
	}
}

func TestAuditUseCaseRecordFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	repo := &testhelpers.AuditRepositoryStub{RecordErr: errors.New("db down")}
	uc := NewAuditUseCase(repo, slog.New(slog.NewJSONHandler(&buf, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	uc.Record(ctx, AuditAction{Action: "create", Entity: "admin"}, nil)

	if !strings.Contains(buf.String(), "failed to record audit entry") || !strings.Contains(buf.String(), "db down") {
		t.Fatalf("expected warning to be logged, got %q", buf.String())
	}
}

func TestAuditUseCaseRecentAndPrune(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	repo := &testhelpers.AuditRepositoryStub{Entries: []model.AuditEntry{
		{Action: "old", At: now.Add(-48 * time.Hour)},
		{Action: "new", At: now.Add(-time.Hour)},
	}}
	uc := NewAuditUseCase(repo, slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil)))
	uc.now = func() time.Time { return now }

	recent, err := uc.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recent) != 2 || recent[0].Action != "new" {
		t.Fatalf("expected newest first, got %+v", recent)
	}

	removed, err := uc.Prune(context.Background(), 24*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 1 || len(repo.Snapshot()) != 1 {
		t.Fatalf("expected one entry pruned, removed=%d left=%d", removed, len(repo.Snapshot()))
	}
}

func TestAuditUseCaseHealth(t *testing.T) {
	repo := &testhelpers.AuditRepositoryStub{}
	uc := NewAuditUseCase(repo, slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil)))
	if err := uc.Health(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo.PingErr = errors.New("db down")
	if err := uc.Health(context.Background()); err == nil {
		t.Fatal("expected ping failure to surface")
	}
}
