package domain

import (
	"bytes"
	"encoding/json"
	"math"
)

// Immutable geographic coordinates (latitude, longitude) in degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// NewCoordinates validates lat/lon and returns the coordinate.
func NewCoordinates(lat, lon float64) (Coordinates, error) {
	c := Coordinates{Lat: lat, Lon: lon}
	if err := c.Validate(); err != nil {
		return Coordinates{}, err
	}
	return c, nil
}

// CoordinatesFromPair reads a positional [lat, lon] pair.
func CoordinatesFromPair(pair []float64) (Coordinates, error) {
	if len(pair) != 2 {
		return Coordinates{}, &CoordinateError{
			Field:  "pair",
			Value:  len(pair),
			Reason: "expected exactly 2 elements [lat, lon]",
		}
	}
	return NewCoordinates(pair[0], pair[1])
}

// Validate reports whether both components are finite and within range.
func (c Coordinates) Validate() error {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) {
		return &CoordinateError{Field: "lat", Value: c.Lat, Reason: "must be a finite number"}
	}
	if math.IsNaN(c.Lon) || math.IsInf(c.Lon, 0) {
		return &CoordinateError{Field: "lon", Value: c.Lon, Reason: "must be a finite number"}
	}
	if c.Lat < -90 || c.Lat > 90 {
		return &CoordinateError{Field: "lat", Value: c.Lat, Reason: "must be within [-90, 90]"}
	}
	if c.Lon < -180 || c.Lon > 180 {
		return &CoordinateError{Field: "lon", Value: c.Lon, Reason: "must be within [-180, 180]"}
	}
	return nil
}

// Return coordinates as [lat, lon].
func (c Coordinates) Pair() []float64 { return []float64{c.Lat, c.Lon} }

func (c Coordinates) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Pair())
}

// UnmarshalJSON accepts only a two-element numeric array. Anything else is
// reported as a *CoordinateError rather than coerced to zero.
func (c *Coordinates) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return &CoordinateError{Reason: "expected a [lat, lon] array"}
	}
	if len(raw) != 2 {
		return &CoordinateError{
			Field:  "pair",
			Value:  len(raw),
			Reason: "expected exactly 2 elements [lat, lon]",
		}
	}

	pair := make([]float64, 2)
	for i, r := range raw {
		field := "lat"
		if i == 1 {
			field = "lon"
		}
		if bytes.Equal(bytes.TrimSpace(r), []byte("null")) {
			return &CoordinateError{Field: field, Value: nil, Reason: "must be a number"}
		}
		if err := json.Unmarshal(r, &pair[i]); err != nil {
			return &CoordinateError{Field: field, Value: string(r), Reason: "must be a number"}
		}
	}

	parsed, err := CoordinatesFromPair(pair)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
