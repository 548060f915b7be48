package distance

import (
	"context"
	"errors"
	"fmt"
	"greatcircle-service/internal/domain"
	"greatcircle-service/internal/platform/obs"
	"greatcircle-service/internal/ports"
	"math"
	"strings"
)

// HaversineDistanceProvider implements DistanceProvider on a spherical model.
//
// It coordinates:
//   - Endpoint validation
//   - Place name normalization and a single batched place lookup
//   - The haversine computation in domain.Distance
//
// The provider holds no mutable state and is safe for concurrent use.
type HaversineDistanceProvider struct {
	places        ports.PlaceRepository
	defaultRadius float64
}

// NewHaversineDistanceProvider returns a provider that resolves place names
// through places. A zero defaultRadius selects the Earth's mean radius.
// places may be nil when only coordinate endpoints will be queried.
func NewHaversineDistanceProvider(
	places ports.PlaceRepository,
	defaultRadius float64,
) (*HaversineDistanceProvider, error) {
	if defaultRadius == 0 {
		defaultRadius = domain.EarthRadiusMeters
	}
	if math.IsNaN(defaultRadius) || math.IsInf(defaultRadius, 0) || defaultRadius < 0 {
		return nil, fmt.Errorf("new haversine provider: %w: default radius=%v", domain.ErrInvalidRadius, defaultRadius)
	}

	return &HaversineDistanceProvider{
		places:        places,
		defaultRadius: defaultRadius,
	}, nil
}

// DefaultRadius is the sphere radius used when a query leaves it unset.
func (h *HaversineDistanceProvider) DefaultRadius() float64 { return h.defaultRadius }

// normalize ensures consistent lookup keys by collapsing whitespace.
func (h *HaversineDistanceProvider) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func (h *HaversineDistanceProvider) GetDistance(
	ctx context.Context,
	q ports.DistanceQuery,
) (_ ports.DistanceResult, err error) {
	defer obs.Time(ctx, "haversine.GetDistance")(&err)

	from, err := h.checkEndpoint("from", q.From)
	if err != nil {
		return ports.DistanceResult{}, fmt.Errorf("get distance: %w", err)
	}
	to, err := h.checkEndpoint("to", q.To)
	if err != nil {
		return ports.DistanceResult{}, fmt.Errorf("get distance: %w", err)
	}

	if err := h.resolve(ctx, &from, &to); err != nil {
		return ports.DistanceResult{}, fmt.Errorf("get distance: %w", err)
	}

	radius := h.defaultRadius
	if q.RadiusMeters != nil {
		radius = *q.RadiusMeters
	}

	d, err := domain.NewDistanceWithRadius(*from.Coordinates, *to.Coordinates, radius)
	if err != nil {
		return ports.DistanceResult{}, fmt.Errorf("get distance: %w", err)
	}

	return ports.DistanceResult{
		From:         d.From(),
		To:           d.To(),
		RadiusMeters: d.Radius(),
		CentralAngle: d.CentralAngle(),
		Meters:       d.Meters(),
		Kilometers:   d.Kilometers(),
		Miles:        d.Miles(),
	}, nil
}

// checkEndpoint enforces that exactly one of coordinates or place name is set
// and returns the endpoint with its place name normalized.
func (h *HaversineDistanceProvider) checkEndpoint(field string, e ports.Endpoint) (ports.Endpoint, error) {
	e.Place = h.normalize(e.Place)

	switch {
	case e.Coordinates != nil && e.Place != "":
		return ports.Endpoint{}, &domain.CoordinateError{Field: field, Value: e.Place, Reason: "set either coordinates or a place name, not both"}
	case e.Coordinates == nil && e.Place == "":
		return ports.Endpoint{}, &domain.CoordinateError{Field: field, Reason: "coordinates or a place name is required"}
	}
	return e, nil
}

// resolve fills in coordinates for named endpoints with one repository call.
func (h *HaversineDistanceProvider) resolve(ctx context.Context, endpoints ...*ports.Endpoint) error {
	needed := make([]string, 0, len(endpoints))
	for _, e := range endpoints {
		if e.Coordinates == nil {
			needed = append(needed, e.Place)
		}
	}

	if len(needed) == 0 {
		return nil
	}

	if h.places == nil {
		return errors.New("resolve places: no place repository configured")
	}

	found, err := h.places.GetPlaces(ctx, needed)
	if err != nil {
		return fmt.Errorf("resolve places: %w", err)
	}

	for _, e := range endpoints {
		if e.Coordinates != nil {
			continue
		}
		p, ok := found[e.Place]
		if !ok {
			return fmt.Errorf("resolve places: %w: %q", ports.ErrPlaceNotFound, e.Place)
		}
		loc := p.Location
		e.Coordinates = &loc
	}

	return nil
}
