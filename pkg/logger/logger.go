// Package logger provides the shared zap-based logger construction used by
// binaries and services.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New constructs a production SugaredLogger tagged with the service name.
// Logs go to stderr so binaries that write payload bytes to stdout stay
// clean. Falls back to a no-op logger if construction fails.
func New(service string) *zap.SugaredLogger {
	config := zap.NewProductionConfig()
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.InitialFields = map[string]any{"service": service}

	log, err := config.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}

	return log.Sugar()
}
