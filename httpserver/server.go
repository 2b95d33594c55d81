// Package httpserver handles the setup and shutdown of an HTTP
// server for an http.Handler.
package httpserver

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

const defaultAddr = ":8080"

// Server wraps an http.Server with structured logging and a
// coordinated shutdown sequence.
type Server struct {
	// underlying http server
	httpServer *http.Server

	log *zap.Logger

	// closed once the server stopped serving, so Shutdown and the
	// serve methods can wait on each other.
	done chan struct{}

	// only close the done channel once.
	closeDoneOnce sync.Once
}

// New builds a server for the handler with the defaults in place,
// then applies the given options. The default address is ":8080".
func New(log *zap.Logger, handler http.Handler, options ...Option) *Server {
	server := &Server{
		httpServer: &http.Server{
			Handler: handler,
			Addr:    defaultAddr,
		},
		log:  log,
		done: make(chan struct{}),
	}

	for _, o := range options {
		log.Debug("applying server option", zap.Stringer("option", o))

		o.apply(server)
	}

	return server
}

// Addr returns the address the server listens on.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Shutdown is a wrapper over http.Server.Shutdown() that also closes
// the Server done channel and bounds the shutdown duration.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	defer s.closeDoneOnce.Do(func() {
		close(s.done)
	})

	err := s.httpServer.Shutdown(ctx)
	if err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

// Serve accepts incoming connections on the provided listener and
// blocks until Shutdown is called.
func (s *Server) Serve(ln net.Listener) error {
	return s.handleShutdown(s.httpServer.Serve(ln))
}

// ListenAndServe listens on the configured address and blocks until
// Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.log.Info("starting server", zap.String("address", s.httpServer.Addr))

	return s.handleShutdown(s.httpServer.ListenAndServe())
}

func (s *Server) handleShutdown(err error) error {
	s.log.Debug("listener shutdown, waiting for connections to drain")

	// wait until the Shutdown() method returns.
	<-s.done

	s.log.Debug("server connections are drained")

	if err != http.ErrServerClosed {
		return err
	}

	return nil
}
