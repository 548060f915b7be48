package domain

import (
	"errors"
	"strings"
)

// A named reference point that distance queries can use instead of raw coordinates.
type Place struct {
	Name     string      `json:"name"`
	Location Coordinates `json:"location"`
}

// Validate checks that the place has a name and a valid location.
func (p Place) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("place name must be non-empty")
	}
	return p.Location.Validate()
}
