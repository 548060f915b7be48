package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinatesFromPair(t *testing.T) {
	c, err := CoordinatesFromPair([]float64{50.0657, 5.7132})
	require.NoError(t, err)
	assert.Equal(t, landsEnd, c)
	assert.Equal(t, []float64{50.0657, 5.7132}, c.Pair())

	for _, pair := range [][]float64{nil, {}, {1}, {1, 2, 3}} {
		_, err := CoordinatesFromPair(pair)
		assert.ErrorIs(t, err, ErrInvalidCoordinate, "pair %v", pair)
	}
}

func TestCoordinatesValidateBounds(t *testing.T) {
	for _, c := range []Coordinates{
		{Lat: 90, Lon: 180},
		{Lat: -90, Lon: -180},
		{Lat: 0, Lon: 0},
	} {
		assert.NoError(t, c.Validate(), "coordinates %v", c)
	}

	_, err := NewCoordinates(0, 181)
	var ce *CoordinateError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "lon", ce.Field)
	assert.Equal(t, 181.0, ce.Value)
}

func TestCoordinatesJSON(t *testing.T) {
	t.Run("round trip as array", func(t *testing.T) {
		b, err := json.Marshal(landsEnd)
		require.NoError(t, err)
		assert.JSONEq(t, `[50.0657, 5.7132]`, string(b))

		var c Coordinates
		require.NoError(t, json.Unmarshal(b, &c))
		assert.Equal(t, landsEnd, c)
	})

	tests := []struct {
		name  string
		input string
		field string
	}{
		{"one element", `[50.0657]`, "pair"},
		{"three elements", `[1, 2, 3]`, "pair"},
		{"empty array", `[]`, "pair"},
		{"string element", `[50.0657, "east"]`, "lon"},
		{"null element", `[null, 5.7132]`, "lat"},
		{"object instead of pair", `{"lat": 1, "lon": 2}`, ""},
		{"latitude out of range", `[123, 5]`, "lat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Coordinates
			err := json.Unmarshal([]byte(tt.input), &c)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCoordinate)

			var ce *CoordinateError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.field, ce.Field)
			assert.Equal(t, Coordinates{}, c)
		})
	}
}

func TestPlaceValidate(t *testing.T) {
	assert.NoError(t, Place{Name: "Land's End", Location: landsEnd}.Validate())
	assert.Error(t, Place{Name: "  ", Location: landsEnd}.Validate())
	assert.ErrorIs(t, Place{Name: "Nowhere", Location: Coordinates{Lat: 100}}.Validate(), ErrInvalidCoordinate)
}
