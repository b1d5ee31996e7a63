package repository

import (
	"context"
	"time"

	"github.com/nedcgroup/backoffice/internal/domain/model"
)

// AuditRepository persists the trail of mutating back-office actions.
type AuditRepository interface {
	Record(ctx context.Context, entry model.AuditEntry) error
	ListRecent(ctx context.Context, limit int) ([]model.AuditEntry, error)
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
	Ping(ctx context.Context) error
}

// NopAuditRepository is used when no database is configured.
type NopAuditRepository struct{}

func (NopAuditRepository) Record(context.Context, model.AuditEntry) error { return nil }

func (NopAuditRepository) ListRecent(context.Context, int) ([]model.AuditEntry, error) {
	return nil, nil
}

func (NopAuditRepository) PruneBefore(context.Context, time.Time) (int64, error) { return 0, nil }

func (NopAuditRepository) Ping(context.Context) error { return nil }
