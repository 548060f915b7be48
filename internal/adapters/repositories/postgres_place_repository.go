package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"greatcircle-service/internal/domain"
	"greatcircle-service/internal/platform/obs"
	"strings"
)

// PostgresPlaceRepository stores named places in the places table.
type PostgresPlaceRepository struct {
	DB *sql.DB
}

func NewPostgresPlaceRepository(db *sql.DB) *PostgresPlaceRepository {
	return &PostgresPlaceRepository{DB: db}
}

func (s *PostgresPlaceRepository) ListPlaces(ctx context.Context) (_ []domain.Place, err error) {
	defer obs.Time(ctx, "places.ListPlaces")(&err)

	if s.DB == nil {
		return nil, errors.New("place repository: db is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT name, lat, lon FROM places ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("list places: query places table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Place, 0)
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("list places: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list places: row iteration: %w", err)
	}

	return out, nil
}

// Fetch stored coordinates for the given place names.
func (s *PostgresPlaceRepository) GetPlaces(
	ctx context.Context,
	names []string,
) (_ map[string]domain.Place, err error) {
	defer obs.Time(ctx, "places.GetPlaces")(&err)

	if s.DB == nil {
		return nil, errors.New("place repository: db is nil")
	}

	uniq := uniqueNames(names)
	if len(uniq) == 0 {
		return map[string]domain.Place{}, nil
	}

	q := `
	SELECT name, lat, lon
    FROM places
    WHERE name = ANY($1::text[]);
	`

	rows, err := s.DB.QueryContext(ctx, q, uniq)
	if err != nil {
		return nil, fmt.Errorf("get places: query places table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]domain.Place, len(uniq))
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("get places: %w", err)
		}
		out[p.Name] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get places: row iteration: %w", err)
	}

	return out, nil
}

// Store name -> coordinate mappings, replacing existing rows.
func (s *PostgresPlaceRepository) PutPlaces(ctx context.Context, places []domain.Place) (err error) {
	defer obs.Time(ctx, "places.PutPlaces")(&err)

	if s.DB == nil {
		return errors.New("place repository: db is nil")
	}

	if len(places) == 0 {
		return nil
	}

	for _, p := range places {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("put places name=%q: %w", p.Name, err)
		}
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("put places: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO places (name, lat, lon)
    VALUES ($1, $2, $3)
	ON CONFLICT (name) DO UPDATE
	SET lat = EXCLUDED.lat,
		lon = EXCLUDED.lon;
	`)
	if err != nil {
		return fmt.Errorf("put places: db prepare: %w", err)
	}
	defer stmt.Close()

	for _, p := range places {
		name := normalizeName(p.Name)
		if _, err := stmt.ExecContext(ctx, name, p.Location.Lat, p.Location.Lon); err != nil {
			return fmt.Errorf("put places name=%q: %w", name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("put places commit: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanPlace re-validates stored rows so a bad row cannot yield a silently wrong distance.
func scanPlace(rows rowScanner) (domain.Place, error) {
	var name string
	var lat, lon float64
	if err := rows.Scan(&name, &lat, &lon); err != nil {
		return domain.Place{}, fmt.Errorf("scan rows: %w", err)
	}

	loc, err := domain.NewCoordinates(lat, lon)
	if err != nil {
		return domain.Place{}, fmt.Errorf("stored place %q: %w", name, err)
	}
	return domain.Place{Name: name, Location: loc}, nil
}

// normalizeName collapses whitespace so lookups and stored keys agree.
func normalizeName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func uniqueNames(names []string) []string {
	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(names))
	for _, n := range names {
		n = normalizeName(n)
		if n == "" {
			continue
		}

		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		uniq = append(uniq, n)
	}
	return uniq
}
