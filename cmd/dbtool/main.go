package main

import (
	"context"
	"database/sql"
	"fmt"
	"greatcircle-service/internal/adapters/repositories"
	"greatcircle-service/internal/config"
	"greatcircle-service/internal/platform/db"
	"greatcircle-service/internal/platform/obs"
	"os"

	"github.com/rs/zerolog"
)

// dbtool initializes the places schema in Postgres and loads the seed file.
func main() {
	logger := obs.NewLogger(os.Stdout, config.Get("LOG_LEVEL", config.DefaultLogLevel))

	if loaded, err := config.LoadDotEnv(); err != nil {
		logger.Warn().Err(err).Msg("could not read .env file")
	} else if !loaded {
		logger.Info().Msg("No .env file found (using environment variables)")
	}

	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		logger.Fatal().Msg("DATABASE_URL is required")
	}

	ctx := logger.WithContext(context.Background())

	conn, err := db.Open(ctx, databaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("open database")
	}
	defer conn.Close()

	seedPath := config.Get("SEED_PATH", config.DefaultSeedPath)
	if err := initAndSeed(ctx, conn, seedPath); err != nil {
		logger.Error().Err(err).Msg("init and seed failed")
		conn.Close()
		os.Exit(1)
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, seedPath string) error {
	logger := zerolog.Ctx(ctx)

	logger.Info().Msg("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	logger.Info().Msg("Schema ready.")

	logger.Info().Str("seed_path", seedPath).Msg("Seeding database...")
	n, err := repositories.SeedFromJSON(ctx, repositories.NewPostgresPlaceRepository(conn), seedPath)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	logger.Info().Int("places", n).Msg("Seeding complete.")

	return nil
}
