// Package logger builds the *zap.Logger instances used by the
// price display service.
package logger

import (
	"fmt"

	"github.com/blendle/zapdriver"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewDevelopment returns a new *zap.Logger that supports Google
// Stackdriver's structured logging, enabled at DebugLevel and above.
func NewDevelopment(service string) (*zap.Logger, error) {
	return newLoggerFromConfig(zapdriver.NewDevelopmentConfig(), service)
}

// NewProduction returns a new *zap.Logger that supports Google
// Stackdriver's structured logging, enabled at InfoLevel and above.
func NewProduction(service string) (*zap.Logger, error) {
	return newLoggerFromConfig(zapdriver.NewProductionConfig(), service)
}

func newLoggerFromConfig(cfg zap.Config, service string) (*zap.Logger, error) {
	cfg.OutputPaths = []string{"stdout"}
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.InitialFields = map[string]interface{}{
		"service": service,
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("config build: %w", err)
	}

	return log, nil
}
