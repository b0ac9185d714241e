package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rovshanmuradov/solana-api/internal/config"
	"github.com/rovshanmuradov/solana-api/internal/server/handlers"
)

// Server owns the router and the HTTP lifecycle. Handlers are stateless;
// the only shared dependency is the logger.
type Server struct {
	cfg    *config.Config
	logger *zap.Logger
	router *chi.Mux
}

func New(cfg *config.Config, logger *zap.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger,
		router: chi.NewRouter(),
	}

	s.setupMiddleware()
	s.registerRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(time.Duration(s.cfg.RequestTimeout) * time.Second))
	s.router.Use(requestLogger(s.logger))
}

func (s *Server) registerRoutes() {
	s.router.Get("/health", handlers.Health())

	s.router.Post("/keypair", handlers.GenerateKeypair(s.logger))
	s.router.Post("/message/sign", handlers.SignMessage(s.logger))
	s.router.Post("/message/verify", handlers.VerifyMessage(s.logger))
	s.router.Post("/token/create", handlers.CreateToken(s.logger))
	s.router.Post("/token/mint", handlers.MintToken(s.logger))
	s.router.Post("/send/sol", handlers.SendSol(s.logger))
	s.router.Post("/send/token", handlers.SendToken(s.logger))
}

// Router exposes the configured router, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then drains in-flight requests within
// the configured shutdown timeout.
func (s *Server) Start(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.cfg.ListenAddr(),
		Handler:      s.router,
		ReadTimeout:  time.Duration(s.cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeout) * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("service listening", zap.String("address", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(s.cfg.ShutdownTimeout)*time.Second,
		)
		defer cancel()

		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
