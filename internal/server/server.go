// Package server is the HTTP adapter: it maps routes onto the store queries
// and the creation service, and owns the listener lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/pokedex/internal/service"
	"github.com/mesh-intelligence/pokedex/internal/sqlite"
	"github.com/mesh-intelligence/pokedex/pkg/types"
)

// Server serves the pokedex HTTP API.
type Server struct {
	engine  *gin.Engine
	server  *http.Server
	store   *sqlite.Store
	creator *service.Creator
	log     *logrus.Logger
	cfg     types.Config
}

// New builds the router with middleware and routes registered. The store
// must already be cleaned; New does not serve until Run is called.
func New(cfg types.Config, store *sqlite.Store, creator *service.Creator, log *logrus.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(requestID())
	engine.Use(requestLog(log))
	engine.Use(gin.Recovery())

	s := &Server{
		engine:  engine,
		store:   store,
		creator: creator,
		log:     log,
		cfg:     cfg,
	}
	s.registerRoutes()
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on the configured address until the context is cancelled or a
// SIGINT/SIGTERM arrives, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         s.cfg.ListenAddr,
		Handler:      s.engine,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", s.cfg.ListenAddr).Info("starting http server")
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-quit:
		s.log.Info("signal received, shutting down")
	case <-ctx.Done():
		s.log.Info("context cancelled, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
