package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"greatcircle-service/internal/adapters/distance"
	"greatcircle-service/internal/adapters/repositories"
	"greatcircle-service/internal/api"
	"greatcircle-service/internal/config"
	"greatcircle-service/internal/platform/db"
	"greatcircle-service/internal/platform/obs"
	"greatcircle-service/internal/ports"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
)

// main is the application composition root.
// It wires concrete adapters (Postgres or in-memory places, haversine provider)
// behind ports and starts the HTTP server.
func main() {
	if err := run(); err != nil {
		logger := obs.NewLogger(os.Stderr, config.DefaultLogLevel)
		logger.Fatal().Err(err).Msg("server exited")
	}
}

// run serves until the process is signalled. Resources are released before it returns.
func run() error {
	loaded, dotenvErr := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := obs.NewLogger(os.Stdout, cfg.LogLevel)
	if dotenvErr != nil {
		logger.Warn().Err(dotenvErr).Msg("could not read .env file")
	} else if !loaded {
		logger.Info().Msg("No .env file found (using environment variables)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx)

	repo, closeRepo, err := openPlaceRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	n, err := repositories.SeedFromJSON(ctx, repo, cfg.SeedPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logger.Warn().Str("seed_path", cfg.SeedPath).Msg("seed file not found; starting without seeded places")
	case err != nil:
		return err
	default:
		logger.Info().Int("places", n).Str("seed_path", cfg.SeedPath).Msg("places seeded")
	}

	provider, err := distance.NewHaversineDistanceProvider(repo, cfg.DefaultRadiusMeters)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	router := api.NewRouter(logger, repo, provider, reg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Float64("default_radius_m", provider.DefaultRadius()).Msg("Server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		logger.Info().Msg("server stopped")
	}
	return nil
}

// openPlaceRepository returns a Postgres repository when DATABASE_URL is set
// and an in-memory one otherwise.
func openPlaceRepository(ctx context.Context, cfg config.Config) (ports.PlaceRepository, func(), error) {
	if cfg.DatabaseURL == "" {
		zerolog.Ctx(ctx).Info().Msg("DATABASE_URL not set; using in-memory place repository")
		return repositories.NewMemoryPlaceRepository(), func() {}, nil
	}

	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	if err := repositories.InitSchema(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("open place repository: %w", err)
	}

	return repositories.NewPostgresPlaceRepository(conn), closer(conn), nil
}

func closer(conn *sql.DB) func() {
	return func() { _ = conn.Close() }
}
