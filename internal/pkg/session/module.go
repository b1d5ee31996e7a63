package session

import (
	"go.uber.org/fx"

	"github.com/nedcgroup/backoffice/internal/config"
)

// Module provides the cookie session manager via fx.
var Module = fx.Provide(newManager)

type managerParams struct {
	fx.In

	Config *config.Config
}

func newManager(p managerParams) (*Manager, error) {
	return NewManager(p.Config.SessionSecret, Options{TTL: p.Config.SessionTTL, Secure: p.Config.SecureCookie})
}
