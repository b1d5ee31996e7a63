package logger

import "go.uber.org/fx"

// Module provides the JSON slog logger configured by LOG_LEVEL.
var Module = fx.Provide(New)
