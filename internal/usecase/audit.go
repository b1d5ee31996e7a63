package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nedcgroup/backoffice/internal/domain/model"
	"github.com/nedcgroup/backoffice/internal/domain/repository"
)

const auditWriteTimeout = 3 * time.Second

// AuditAction describes one mutating action to be recorded.
type AuditAction struct {
	Admin    string
	Action   string
	Entity   string
	EntityID string
	Detail   string
}

// AuditUseCase keeps the local trail of mutating actions. Recording is best
// effort: failures are logged and never surface to the caller.
type AuditUseCase struct {
	entries repository.AuditRepository
	logger  *slog.Logger
	now     func() time.Time
}

// NewAuditUseCase constructs AuditUseCase.
func NewAuditUseCase(entries repository.AuditRepository, logger *slog.Logger) *AuditUseCase {
	return &AuditUseCase{entries: entries, logger: logger, now: time.Now}
}

// Record stores the outcome of action; actionErr is the error the action returned.
func (u *AuditUseCase) Record(ctx context.Context, action AuditAction, actionErr error) {
	entry := model.AuditEntry{
		ID:       uuid.New(),
		Admin:    action.Admin,
		Action:   action.Action,
		Entity:   action.Entity,
		EntityID: action.EntityID,
		Outcome:  model.AuditOutcomeOK,
		Detail:   action.Detail,
		At:       u.now().UTC(),
	}
	if actionErr != nil {
		entry.Outcome = model.AuditOutcomeFailed
		entry.Detail = actionErr.Error()
	}

	// The action already happened; a cancelled request must not drop its record.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditWriteTimeout)
	defer cancel()

	if err := u.entries.Record(writeCtx, entry); err != nil {
		u.logger.Warn("failed to record audit entry",
			slog.String("action", entry.Action),
			slog.String("entity", entry.Entity),
			slog.String("entity_id", entry.EntityID),
			slog.String("error", err.Error()),
		)
	}
}

// Recent returns the latest entries, newest first.
func (u *AuditUseCase) Recent(ctx context.Context, limit int) ([]model.AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	return u.entries.ListRecent(ctx, limit)
}

// Prune deletes entries older than retention.
func (u *AuditUseCase) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	return u.entries.PruneBefore(ctx, u.now().Add(-retention).UTC())
}

// Health reports whether the audit store is reachable.
func (u *AuditUseCase) Health(ctx context.Context) error {
	return u.entries.Ping(ctx)
}
