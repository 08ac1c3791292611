package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobportal-auth/internal/auth"
	"jobportal-auth/internal/config"
	"jobportal-auth/internal/cookies"
	"jobportal-auth/internal/identity"
	"jobportal-auth/internal/middlewares"
	"jobportal-auth/internal/session"
	"jobportal-auth/internal/storage"
	"jobportal-auth/internal/version"
)

type Server struct {
	cfg          *config.Config
	logger       *slog.Logger
	appCtx       *middlewares.AppContext
	httpServer   *http.Server
	debugServer  *http.Server
	flowSessions *auth.FlowSessionManager
	database     *storage.DatabaseProvider
	cancel       context.CancelFunc
}

func New(cfg *config.Config) (*Server, error) {
	logger := setupLogger(cfg)

	logger.Info("Starting auth service",
		"version", version.GetFullVersion(),
		"environment", cfg.Server.Environment,
	)

	ctx, cancel := context.WithCancel(context.Background())

	policy := cookies.Resolve(logger, cfg.Auth.BaseURL, cfg.Auth.UseSecureCookies, cfg.Server.Environment).
		WithFlowName(cfg.Sessions.FlowName)

	codec, err := session.NewCodec(cfg.Auth.Secret, cfg.Auth.SessionMaxAge)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create session codec: %w", err)
	}

	var database *storage.DatabaseProvider
	var db storage.StorageProvider
	if cfg.Sessions.Store == "postgres" {
		database, err = storage.NewDatabaseProvider(ctx, *cfg.Storage)
		if err != nil {
			logger.Error("failed to initialize database provider", "error", err)
			cancel()
			return nil, err
		}

		logger.Debug("Running database migrations")
		if err := database.RunMigrations(ctx); err != nil {
			logger.Error("failed to run database migrations", "error", err)
			database.Close()
			cancel()
			return nil, err
		}
		logger.Debug("Database Migrations Completed")

		db = database
	}

	flowSessions, err := auth.NewFlowSessionManager(logger, cfg, policy, db)
	if err != nil {
		if database != nil {
			database.Close()
		}
		cancel()
		return nil, err
	}

	var oauthProvider middlewares.OAuthProvider
	if cfg.Google != nil {
		google, err := auth.NewGoogleProvider(ctx, *cfg.Google, cfg.Auth.BaseURL)
		if err != nil {
			logger.Error("failed to initialize google provider", "error", err)
			_ = flowSessions.Close()
			if database != nil {
				database.Close()
			}
			cancel()
			return nil, err
		}
		oauthProvider = google
	} else {
		logger.Info("Google sign-in disabled: no google configuration")
	}

	identityClient := identity.NewClient(cfg.Identity, logger)

	appCtx := middlewares.NewAppContext(ctx, cfg, logger, policy, codec, flowSessions, oauthProvider, identityClient, db)

	router := setupRouter(appCtx, flowSessions)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var debugServer *http.Server
	if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
		debugServer = &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Server.Debug.Host, cfg.Server.Debug.Port),
			Handler:           setupDebugRouter(),
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	return &Server{
		cfg:          cfg,
		logger:       logger,
		appCtx:       appCtx,
		httpServer:   httpServer,
		debugServer:  debugServer,
		flowSessions: flowSessions,
		database:     database,
		cancel:       cancel,
	}, nil
}

func (s *Server) Start() error {
	go func() {
		s.logger.Info("Server Started", "port", s.cfg.Server.Port, "base_url", s.cfg.Auth.BaseURL)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server failed to start", "error", err)
			s.cancel()
		}
	}()

	if s.debugServer != nil {
		go func() {
			s.logger.Info("Metrics server starting", "address", s.debugServer.Addr)
			if err := s.debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("Metrics server failed to start", "error", err)
				s.cancel()
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		s.logger.Info("Shutdown signal received")
	case <-s.appCtx.Done():
		s.logger.Info("Context canceled")
	}

	return s.Shutdown()
}

func (s *Server) Shutdown() error {
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	defer s.cancel()

	s.logger.Info("Shutting Down Server")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
		return err
	}

	if s.debugServer != nil {
		if err := s.debugServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Debug server forced to shutdown", "error", err)
		}
	}

	if err := s.flowSessions.Close(); err != nil {
		s.logger.Warn("Failed to close flow session store", "error", err)
	}

	if s.database != nil {
		s.database.Close()
	}

	s.logger.Info("Server Exited")
	return nil
}
