package dto

import "greatcircle-service/internal/domain"

type PlaceResponse struct {
	Name     string             `json:"name"`
	Location domain.Coordinates `json:"location"`
}

type ListPlacesResponse struct {
	Places []PlaceResponse `json:"places"`
}
