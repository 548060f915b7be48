package distance

import (
	"context"
	"errors"
	"math"
	"testing"

	"greatcircle-service/internal/adapters/repositories"
	"greatcircle-service/internal/domain"
	"greatcircle-service/internal/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingPlaceRepository struct {
	ports.PlaceRepository
	calls int
}

func (f *failingPlaceRepository) GetPlaces(ctx context.Context, names []string) (map[string]domain.Place, error) {
	f.calls++
	return nil, errors.New("connection refused")
}

type countingPlaceRepository struct {
	*repositories.MemoryPlaceRepository
	calls int
	names []string
}

func (c *countingPlaceRepository) GetPlaces(ctx context.Context, names []string) (map[string]domain.Place, error) {
	c.calls++
	c.names = append(c.names, names...)
	return c.MemoryPlaceRepository.GetPlaces(ctx, names)
}

func newTestProvider(t *testing.T) (*HaversineDistanceProvider, *countingPlaceRepository) {
	t.Helper()

	repo := &countingPlaceRepository{MemoryPlaceRepository: repositories.NewMemoryPlaceRepository()}
	require.NoError(t, repo.PutPlaces(context.Background(), []domain.Place{
		{Name: "Land's End", Location: domain.Coordinates{Lat: 50.0657, Lon: 5.7132}},
		{Name: "John O'Groats", Location: domain.Coordinates{Lat: 58.6373, Lon: 3.0689}},
	}))

	provider, err := NewHaversineDistanceProvider(repo, 0)
	require.NoError(t, err)
	return provider, repo
}

func coords(lat, lon float64) *domain.Coordinates {
	return &domain.Coordinates{Lat: lat, Lon: lon}
}

func radius(r float64) *float64 { return &r }

func TestHaversineProviderCoordinates(t *testing.T) {
	provider, repo := newTestProvider(t)

	res, err := provider.GetDistance(context.Background(), ports.DistanceQuery{
		From: ports.Endpoint{Coordinates: coords(50.0657, 5.7132)},
		To:   ports.Endpoint{Coordinates: coords(58.6373, 3.0689)},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.EarthRadiusMeters, res.RadiusMeters)
	assert.InDelta(t, 968205.897, res.Meters, 0.01)
	assert.InDelta(t, 968.206, res.Kilometers, 0.001)
	assert.InDelta(t, 601.615, res.Miles, 0.001)
	assert.InDelta(t, res.Meters/res.RadiusMeters, res.CentralAngle, 1e-15)
	assert.Zero(t, repo.calls, "coordinate endpoints must not hit the repository")
}

func TestHaversineProviderPlaces(t *testing.T) {
	provider, repo := newTestProvider(t)

	res, err := provider.GetDistance(context.Background(), ports.DistanceQuery{
		From: ports.Endpoint{Place: "  Land's   End "},
		To:   ports.Endpoint{Place: "John O'Groats"},
	})
	require.NoError(t, err)

	assert.InDelta(t, 968205.897, res.Meters, 0.01)
	assert.Equal(t, domain.Coordinates{Lat: 50.0657, Lon: 5.7132}, res.From)
	assert.Equal(t, 1, repo.calls, "both names resolve in one lookup")
	assert.ElementsMatch(t, []string{"Land's End", "John O'Groats"}, repo.names)
}

func TestHaversineProviderMixedEndpointsAndRadius(t *testing.T) {
	provider, _ := newTestProvider(t)

	res, err := provider.GetDistance(context.Background(), ports.DistanceQuery{
		From:         ports.Endpoint{Place: "Land's End"},
		To:           ports.Endpoint{Coordinates: coords(58.6373, 3.0689)},
		RadiusMeters: radius(2 * domain.EarthRadiusMeters),
	})
	require.NoError(t, err)
	assert.InDelta(t, 2*968205.897, res.Meters, 0.02)
}

func TestHaversineProviderCustomDefaultRadius(t *testing.T) {
	provider, err := NewHaversineDistanceProvider(nil, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, provider.DefaultRadius())

	res, err := provider.GetDistance(context.Background(), ports.DistanceQuery{
		From: ports.Endpoint{Coordinates: coords(0, 0)},
		To:   ports.Endpoint{Coordinates: coords(0, 180)},
	})
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, res.Meters, 1e-12)
}

func TestHaversineProviderErrors(t *testing.T) {
	provider, _ := newTestProvider(t)

	tests := []struct {
		name    string
		query   ports.DistanceQuery
		wantErr error
	}{
		{
			name:    "missing from",
			query:   ports.DistanceQuery{To: ports.Endpoint{Place: "Land's End"}},
			wantErr: domain.ErrInvalidCoordinate,
		},
		{
			name: "both coordinates and place",
			query: ports.DistanceQuery{
				From: ports.Endpoint{Coordinates: coords(1, 1), Place: "Land's End"},
				To:   ports.Endpoint{Place: "John O'Groats"},
			},
			wantErr: domain.ErrInvalidCoordinate,
		},
		{
			name: "out of range coordinate",
			query: ports.DistanceQuery{
				From: ports.Endpoint{Coordinates: coords(95, 1)},
				To:   ports.Endpoint{Coordinates: coords(1, 1)},
			},
			wantErr: domain.ErrInvalidCoordinate,
		},
		{
			name: "unknown place",
			query: ports.DistanceQuery{
				From: ports.Endpoint{Place: "Atlantis"},
				To:   ports.Endpoint{Place: "Land's End"},
			},
			wantErr: ports.ErrPlaceNotFound,
		},
		{
			name: "negative radius",
			query: ports.DistanceQuery{
				From:         ports.Endpoint{Coordinates: coords(1, 1)},
				To:           ports.Endpoint{Coordinates: coords(2, 2)},
				RadiusMeters: radius(-1),
			},
			wantErr: domain.ErrInvalidRadius,
		},
		{
			name: "explicit zero radius",
			query: ports.DistanceQuery{
				From:         ports.Endpoint{Coordinates: coords(0, 0)},
				To:           ports.Endpoint{Coordinates: coords(0, 1)},
				RadiusMeters: radius(0),
			},
			wantErr: domain.ErrInvalidRadius,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := provider.GetDistance(context.Background(), tt.query)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHaversineProviderRepositoryFailure(t *testing.T) {
	repo := &failingPlaceRepository{}
	provider, err := NewHaversineDistanceProvider(repo, 0)
	require.NoError(t, err)

	_, err = provider.GetDistance(context.Background(), ports.DistanceQuery{
		From: ports.Endpoint{Place: "Land's End"},
		To:   ports.Endpoint{Coordinates: coords(1, 1)},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.NotErrorIs(t, err, ports.ErrPlaceNotFound)
	assert.Equal(t, 1, repo.calls)
}

func TestHaversineProviderWithoutRepository(t *testing.T) {
	provider, err := NewHaversineDistanceProvider(nil, 0)
	require.NoError(t, err)

	_, err = provider.GetDistance(context.Background(), ports.DistanceQuery{
		From: ports.Endpoint{Place: "Land's End"},
		To:   ports.Endpoint{Coordinates: coords(1, 1)},
	})
	assert.Error(t, err)
}

func TestNewHaversineProviderRejectsBadRadius(t *testing.T) {
	for _, r := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := NewHaversineDistanceProvider(nil, r)
		assert.ErrorIs(t, err, domain.ErrInvalidRadius, "radius %v", r)
	}
}
