package handlers

import (
	"greatcircle-service/internal/api/dto"
	"greatcircle-service/internal/ports"
	"net/http"

	"github.com/rs/zerolog"
)

// PlaceHandler exposes read-only place retrieval endpoints.
type PlaceHandler struct {
	Repo ports.PlaceRepository
}

func (h *PlaceHandler) List(w http.ResponseWriter, r *http.Request) {
	places, err := h.Repo.ListPlaces(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("list places failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPlacesResponse{
		Places: make([]dto.PlaceResponse, 0, len(places)),
	}
	for _, p := range places {
		res.Places = append(res.Places, dto.PlaceResponse{
			Name:     p.Name,
			Location: p.Location,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
