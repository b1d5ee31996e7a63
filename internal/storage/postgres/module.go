package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/nedcgroup/backoffice/internal/config"
	"github.com/nedcgroup/backoffice/internal/domain/repository"
)

// Module wires the audit repository: PostgreSQL when a DSN is configured,
// a no-op repository otherwise.
var Module = fx.Provide(newAuditRepository)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type auditParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Ctx       context.Context
	Config    *config.Config
	Logger    *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func newAuditRepository(p auditParams) (repository.AuditRepository, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Info("audit trail disabled: no database configured")
		return repository.NopAuditRepository{}, nil
	}
	storage, err := newStorage(storageParams{Ctx: p.Ctx, Config: p.Config, Logger: p.Logger})
	if err != nil {
		return nil, err
	}
	registerLifecycle(p.Lifecycle, storage)
	return storage.Audit(), nil
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
