package dto

import "greatcircle-service/internal/domain"

// Each endpoint is given either as a [lat, lon] pair or as a stored place name.
type DistanceRequest struct {
	From         *domain.Coordinates `json:"from" validate:"required_without=FromPlace,excluded_with=FromPlace"`
	FromPlace    string              `json:"from_place" validate:"omitempty,max=200"`
	To           *domain.Coordinates `json:"to" validate:"required_without=ToPlace,excluded_with=ToPlace"`
	ToPlace      string              `json:"to_place" validate:"omitempty,max=200"`
	RadiusMeters *float64            `json:"radius_meters"`
}

type DistanceResponse struct {
	From         domain.Coordinates `json:"from"`
	To           domain.Coordinates `json:"to"`
	RadiusMeters float64            `json:"radius_meters"`
	CentralAngle float64            `json:"central_angle"`
	Meters       float64            `json:"meters"`
	Kilometers   float64            `json:"kilometers"`
	Miles        float64            `json:"miles"`
}
