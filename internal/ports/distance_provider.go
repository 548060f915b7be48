package ports

import (
	"context"
	"greatcircle-service/internal/domain"
)

// One end of a distance query: explicit coordinates or the name of a stored place.
// Exactly one of the two must be set.
type Endpoint struct {
	Coordinates *domain.Coordinates
	Place       string
}

// A single great-circle distance lookup. A nil RadiusMeters selects the
// provider's default sphere.
type DistanceQuery struct {
	From         Endpoint
	To           Endpoint
	RadiusMeters *float64
}

// Great-circle distance between two resolved coordinates.
type DistanceResult struct {
	From         domain.Coordinates
	To           domain.Coordinates
	RadiusMeters float64
	CentralAngle float64
	Meters       float64
	Kilometers   float64
	Miles        float64
}

// Contract for computing the distance between two endpoints.
type DistanceProvider interface {
	// Return the great-circle distance between the query's endpoints.
	GetDistance(ctx context.Context, q DistanceQuery) (DistanceResult, error)
}
