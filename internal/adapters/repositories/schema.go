package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"greatcircle-service/internal/domain"
	"greatcircle-service/internal/ports"
	"os"
)

const schema = `
CREATE TABLE IF NOT EXISTS places (
	name TEXT PRIMARY KEY,
	lat  DOUBLE PRECISION NOT NULL CHECK (lat BETWEEN -90 AND 90),
	lon  DOUBLE PRECISION NOT NULL CHECK (lon BETWEEN -180 AND 180)
);
`

// InitSchema creates the places table if it does not exist.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// LoadSeed reads a JSON array of places from path and validates each entry.
func LoadSeed(path string) ([]domain.Place, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load seed %q: %w", path, err)
	}

	var places []domain.Place
	if err := json.Unmarshal(b, &places); err != nil {
		return nil, fmt.Errorf("load seed %q: decode: %w", path, err)
	}

	for i, p := range places {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("load seed %q: entry %d (%q): %w", path, i, p.Name, err)
		}
	}
	return places, nil
}

// SeedFromJSON loads the seed file and upserts its places into repo.
func SeedFromJSON(ctx context.Context, repo ports.PlaceRepository, path string) (int, error) {
	places, err := LoadSeed(path)
	if err != nil {
		return 0, err
	}

	if err := repo.PutPlaces(ctx, places); err != nil {
		return 0, fmt.Errorf("seed places: %w", err)
	}
	return len(places), nil
}
