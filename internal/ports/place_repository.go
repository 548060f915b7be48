package ports

import (
	"context"
	"errors"
	"greatcircle-service/internal/domain"
)

// ErrPlaceNotFound is returned when a named endpoint has no stored coordinates.
var ErrPlaceNotFound = errors.New("place not found")

// Port: a boundary for storing and retrieving named places.
type PlaceRepository interface {
	// Retrieve all places ordered by name.
	ListPlaces(ctx context.Context) ([]domain.Place, error)
	// Retrieve the places with the given names. Unknown names are absent from the result.
	GetPlaces(ctx context.Context, names []string) (map[string]domain.Place, error)
	// Insert or replace places by name.
	PutPlaces(ctx context.Context, places []domain.Place) error
}
