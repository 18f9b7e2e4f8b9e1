package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/kaichu/lineage-calc/internal/config"
)

// HTTPService adapts an http.Server to the Service interface with graceful
// shutdown.
type HTTPService struct {
	server *http.Server
	grace  time.Duration
	logger *zap.Logger
}

// NewHTTPService builds an HTTPService for the given handler and listener
// configuration.
//
// Precondition: handler and logger must be non-nil.
func NewHTTPService(cfg config.HTTPConfig, handler http.Handler, logger *zap.Logger) *HTTPService {
	return &HTTPService{
		server: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		grace:  cfg.ShutdownGrace,
		logger: logger,
	}
}

// Start begins serving and blocks until the listener closes.
//
// Postcondition: Returns nil after a graceful Stop, or the listener error.
func (s *HTTPService) Start() error {
	s.logger.Info("http listener starting", zap.String("addr", s.server.Addr))
	err := s.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop shuts the server down, giving in-flight requests the configured
// grace period.
func (s *HTTPService) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), s.grace)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Warn("http shutdown incomplete", zap.Error(err))
	}
}
