package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nedcgroup/backoffice/internal/domain/model"
	"github.com/nedcgroup/backoffice/internal/domain/repository"
)

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage keeps the audit trail in PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type auditRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Audit returns the audit repository backed by this storage.
func (s *Storage) Audit() repository.AuditRepository {
	return &auditRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS audit_entries (
            id UUID PRIMARY KEY,
            admin TEXT NOT NULL,
            action TEXT NOT NULL,
            entity TEXT NOT NULL,
            entity_id TEXT NOT NULL DEFAULT '',
            outcome TEXT NOT NULL,
            detail TEXT NOT NULL DEFAULT '',
            at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_audit_entries_at ON audit_entries(at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// --- AuditRepository implementation ---

func (r *auditRepository) Record(ctx context.Context, entry model.AuditEntry) error {
	const query = `INSERT INTO audit_entries (id, admin, action, entity, entity_id, outcome, detail, at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.storage.pool.Exec(ctx, query,
		entry.ID.String(), entry.Admin, entry.Action, entry.Entity, entry.EntityID,
		string(entry.Outcome), entry.Detail, entry.At,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

func (r *auditRepository) ListRecent(ctx context.Context, limit int) ([]model.AuditEntry, error) {
	const query = `SELECT id, admin, action, entity, entity_id, outcome, detail, at
                   FROM audit_entries ORDER BY at DESC LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.AuditEntry
	for rows.Next() {
		var (
			e       model.AuditEntry
			id      string
			outcome string
		)
		if err := rows.Scan(&id, &e.Admin, &e.Action, &e.Entity, &e.EntityID, &outcome, &e.Detail, &e.At); err != nil {
			return nil, err
		}
		if e.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse audit entry id: %w", err)
		}
		e.Outcome = model.AuditOutcome(outcome)
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *auditRepository) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	const query = `DELETE FROM audit_entries WHERE at < $1`
	tag, err := r.storage.pool.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune audit entries: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *auditRepository) Ping(ctx context.Context) error {
	return r.storage.HealthCheck(ctx)
}
