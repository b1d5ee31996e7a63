package router

import "go.uber.org/fx"

// Module provides the gin engine serving every back-office page.
var Module = fx.Provide(Setup)
