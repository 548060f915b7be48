package domain

import (
	"fmt"
	"math"
)

const (
	// Mean radius of the Earth in meters.
	EarthRadiusMeters  = 6371000.0
	MetersPerKilometer = 1000.0
	MetersPerMile      = 1609.344
)

// Distance is the great-circle distance between two points on a sphere.
//
// A Distance is validated once at construction and never mutated afterwards,
// so every accessor is a pure function of the same inputs and the value is
// safe to share between goroutines.
type Distance struct {
	from   Coordinates
	to     Coordinates
	radius float64
}

// NewDistance measures on a sphere with the Earth's mean radius.
func NewDistance(from, to Coordinates) (Distance, error) {
	return NewDistanceWithRadius(from, to, EarthRadiusMeters)
}

// NewDistanceWithRadius measures on a sphere of the given radius in meters.
func NewDistanceWithRadius(from, to Coordinates, radius float64) (Distance, error) {
	if err := from.Validate(); err != nil {
		return Distance{}, fmt.Errorf("new distance: from: %w", err)
	}
	if err := to.Validate(); err != nil {
		return Distance{}, fmt.Errorf("new distance: to: %w", err)
	}
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return Distance{}, fmt.Errorf("new distance: %w: radius=%v must be a finite positive number", ErrInvalidRadius, radius)
	}

	return Distance{from: from, to: to, radius: radius}, nil
}

// NewDistanceFromPairs builds a Distance from positional [lat, lon] pairs.
// The radius is optional; omitting it selects EarthRadiusMeters. An explicit
// radius, zero included, is validated like any other.
func NewDistanceFromPairs(from, to []float64, radius ...float64) (Distance, error) {
	f, err := CoordinatesFromPair(from)
	if err != nil {
		return Distance{}, fmt.Errorf("new distance: from: %w", err)
	}
	t, err := CoordinatesFromPair(to)
	if err != nil {
		return Distance{}, fmt.Errorf("new distance: to: %w", err)
	}
	switch len(radius) {
	case 0:
		return NewDistanceWithRadius(f, t, EarthRadiusMeters)
	case 1:
		return NewDistanceWithRadius(f, t, radius[0])
	default:
		return Distance{}, fmt.Errorf("new distance: %w: expected at most one radius, got %d", ErrInvalidRadius, len(radius))
	}
}

func (d Distance) From() Coordinates { return d.from }
func (d Distance) To() Coordinates   { return d.to }

// Radius of the sphere in meters.
func (d Distance) Radius() float64 { return d.radius }

func (d Distance) LatitudeFrom() float64  { return degreesToRadians(d.from.Lat) }
func (d Distance) LongitudeFrom() float64 { return degreesToRadians(d.from.Lon) }
func (d Distance) LatitudeTo() float64    { return degreesToRadians(d.to.Lat) }
func (d Distance) LongitudeTo() float64   { return degreesToRadians(d.to.Lon) }

// CentralAngle returns the angle in radians, within [0, π], subtended at the
// sphere's center by the two points.
//
// The haversine form stays well conditioned for nearby points, where the
// spherical law of cosines loses precision to cancellation. sqrt(a) is
// clamped to 1 because rounding can push it just past the asin domain for
// antipodal points.
func (d Distance) CentralAngle() float64 {
	latFrom := d.LatitudeFrom()
	latTo := d.LatitudeTo()
	deltaLat := latTo - latFrom
	deltaLon := d.LongitudeTo() - d.LongitudeFrom()

	sinLat := math.Sin(deltaLat / 2)
	sinLon := math.Sin(deltaLon / 2)
	a := sinLat*sinLat + math.Cos(latFrom)*math.Cos(latTo)*sinLon*sinLon

	return 2 * math.Asin(math.Min(1, math.Sqrt(a)))
}

func (d Distance) Meters() float64 { return d.CentralAngle() * d.radius }

func (d Distance) Kilometers() float64 { return d.Meters() / MetersPerKilometer }

func (d Distance) Miles() float64 { return d.Meters() / MetersPerMile }

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
