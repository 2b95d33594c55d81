package priceapi

import (
	"context"
	"errors"
	"os"
	"syscall"
	"time"

	"github.com/oklog/run"
	"go.uber.org/zap"

	"github.com/purposeinplay/go-moneydisplay/httpserver"
)

const shutdownTimeout = 30 * time.Second

// ListenAndServe runs the price API until the process receives an
// interrupt or termination signal, then drains the server.
func ListenAndServe(log *zap.Logger, cfg Config) error {
	server := httpserver.New(
		log,
		NewHandler(log, cfg.AllowedOrigins),
		httpserver.WithAddress(cfg.Address),
		httpserver.WithServerTimeouts(
			cfg.WriteTimeout,
			cfg.ReadTimeout,
			cfg.IdleTimeout,
			cfg.ReadHeaderTimeout,
		),
	)

	var group run.Group

	group.Add(server.ListenAndServe, func(error) {
		shutdownErr := server.Shutdown(shutdownTimeout)
		if shutdownErr != nil {
			log.Error("server shutdown", zap.Error(shutdownErr))
		}
	})

	group.Add(run.SignalHandler(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	))

	err := group.Run()

	var signalErr run.SignalError
	if errors.As(err, &signalErr) {
		log.Info("received shutdown signal", zap.Error(err))

		return nil
	}

	return err
}
