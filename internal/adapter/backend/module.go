package backend

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/nedcgroup/backoffice/internal/config"
	"github.com/nedcgroup/backoffice/internal/pkg/metrics"
)

// Module exposes the backend client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

func newClient(p clientParams) (Client, error) {
	client, err := NewHTTPClient(p.Config.APIBaseURL, p.Logger, Options{
		Timeout:         p.Config.RequestTimeout,
		LegacyStatusGET: p.Config.LegacyStatusGET,
		Metrics:         p.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}
