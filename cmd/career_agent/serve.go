package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/career-advisor/internal/analysis"
	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/db"
	"github.com/jonathan/career-advisor/internal/logger"
	"github.com/jonathan/career-advisor/internal/matching"
	"github.com/jonathan/career-advisor/internal/prediction"
	"github.com/jonathan/career-advisor/internal/server"
	"github.com/jonathan/career-advisor/internal/server/ratelimit"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the prediction, resume analysis, job recommendation, learning path and dashboard endpoints under /api.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default: PORT or 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := appConfig
	if servePort != 0 {
		cfg.Port = servePort
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to create JWT config: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	predictor, err := loadPredictor(ctx, cfg)
	if err != nil {
		return err
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	var limiter *ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		limiter = ratelimit.NewLimiter(ratelimit.NewConfig(true, cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}

	srv, err := server.New(
		server.Config{Port: cfg.Port, CORSOrigins: cfg.CORSOrigins},
		server.Deps{
			DB:          database,
			Catalog:     cat,
			Analyzer:    analysis.NewAnalyzer(cat, nil),
			Engine:      matching.NewEngine(cat),
			Predictor:   predictor,
			Tokens:      server.NewTokenVerifier(jwtConfig).AsTokenValidator(),
			RateLimiter: limiter,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(ctx)
}

// loadPredictor loads the configured model, if any. With WatchModel set a missing or
// broken file is tolerated and the model is picked up once a valid file appears.
func loadPredictor(ctx context.Context, cfg config.Config) (*prediction.Predictor, error) {
	predictor := prediction.NewPredictor(nil)
	if cfg.ModelPath == "" {
		logger.Warn().Msg("MODEL_PATH not set, predictions are unavailable")
		return predictor, nil
	}

	model, err := prediction.ForestLoader(cfg.ModelPath)
	switch {
	case err == nil:
		predictor.Swap(model)
		logger.Info().Str("path", cfg.ModelPath).Msg("model loaded")
	case cfg.WatchModel:
		logger.Warn().Err(err).Str("path", cfg.ModelPath).Msg("model not loaded yet, waiting for file")
	default:
		return nil, err
	}

	if cfg.WatchModel {
		go func() {
			if err := predictor.Watch(ctx, cfg.ModelPath, prediction.ForestLoader); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error().Err(err).Msg("model watcher stopped")
			}
		}()
	}

	return predictor, nil
}
