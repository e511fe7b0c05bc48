package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/altair-config/internal/config"
	"github.com/MKhiriev/altair-config/internal/logger"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	httpServer, err := newHTTPServer(handler, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &server{
		httpServer:      httpServer,
		shutdownTimeout: cfg.RequestTimeout,
		logger:          logger,
	}, nil
}

func (s *server) Addr() string {
	return s.httpServer.listener.Addr().String()
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// unblock the shutdown goroutine when Serve returns on its own
		defer cancel()
		s.logger.Info().Str("address", s.Addr()).Msg("Launching HTTP server")
		return s.httpServer.RunServer()
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancelShutdown()

		return s.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
