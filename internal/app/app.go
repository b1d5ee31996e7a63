package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/nedcgroup/backoffice/internal/config"
	"github.com/nedcgroup/backoffice/internal/worker"
)

// Module wires the facade, the HTTP server, the audit pruner and their lifecycle.
var Module = fx.Options(
	fx.Provide(
		NewBackofficeFacade,
		newHTTPServer,
		newAuditPruner,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:              p.Config.RunAddress,
		Handler:           p.Router,
		ReadHeaderTimeout: p.Config.RequestTimeout,
	}
}

type prunerParams struct {
	fx.In

	Facade *BackofficeFacade
	Config *config.Config
	Logger *slog.Logger
}

func newAuditPruner(p prunerParams) *worker.AuditPruner {
	return worker.NewAuditPruner(
		p.Facade,
		p.Config.AuditPruneInterval,
		p.Config.AuditRetention,
		p.Logger,
	)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Pruner     *worker.AuditPruner
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting backoffice",
				slog.String("addr", p.Server.Addr),
				slog.String("api", p.Config.APIBaseURL),
			)
			// The start context expires once startup completes.
			p.Pruner.Start(context.WithoutCancel(ctx))
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Pruner.Stop()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("backoffice stopped")
			return nil
		},
	})
}
