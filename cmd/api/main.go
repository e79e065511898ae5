package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"loyalty-pass-service/config"
	"loyalty-pass-service/internal/adapter/credentials"
	httpHandler "loyalty-pass-service/internal/adapter/http/handler"
	"loyalty-pass-service/internal/adapter/metrics"
	"loyalty-pass-service/internal/adapter/pkpass"
	"loyalty-pass-service/internal/adapter/storage/memory"
	"loyalty-pass-service/internal/core/ports"
	"loyalty-pass-service/internal/service"
	"loyalty-pass-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("LPS_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Loyalty Pass Service")

	// Signing material and template live on disk; a missing file only
	// disables pass generation.
	fs := afero.NewOsFs()
	creds := credentials.Load(fs, cfg.Pass, log)
	templates := pkpass.NewTemplateLoader(fs, cfg.Pass.TemplateDir)
	if err := templates.Ping(context.Background()); err != nil {
		log.Warn().Err(err).Str("dir", cfg.Pass.TemplateDir).Msg("pass template unavailable")
	}

	m := metrics.New()
	repo := memory.NewLoyaltyRepo()

	// Initialize business services
	loyaltySvc := service.NewLoyaltyService(repo, m, log)
	passSvc := service.NewPassService(creds, templates, pkpass.NewSigner(), m, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		LoyaltySvc:     loyaltySvc,
		PassGen:        passSvc,
		HealthCheckers: []ports.HealthChecker{credentials.NewHealthCheck(creds), templates},
		Metrics:        m,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		stop()
		log.Fatal().Err(err).Msg("Server stopped with error")
	}

	log.Info().Msg("Server exited")
}
