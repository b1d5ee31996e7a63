package di

import (
	"go.uber.org/fx"

	"github.com/nedcgroup/backoffice/internal/adapter/backend"
	"github.com/nedcgroup/backoffice/internal/app"
	"github.com/nedcgroup/backoffice/internal/config"
	"github.com/nedcgroup/backoffice/internal/logger"
	"github.com/nedcgroup/backoffice/internal/pkg/metrics"
	"github.com/nedcgroup/backoffice/internal/pkg/session"
	"github.com/nedcgroup/backoffice/internal/server/http/handlers"
	"github.com/nedcgroup/backoffice/internal/server/http/router"
	"github.com/nedcgroup/backoffice/internal/storage/postgres"
	"github.com/nedcgroup/backoffice/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		session.Module,
		metrics.Module,
		postgres.Module,
		backend.Module,
		usecase.Module,
		fx.Provide(func(f *app.BackofficeFacade) handlers.Facade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
