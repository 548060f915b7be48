package handlers

import (
	"encoding/json"
	"errors"
	"greatcircle-service/internal/api/dto"
	"greatcircle-service/internal/domain"
	"greatcircle-service/internal/ports"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Outcome labels recorded for each distance request.
const (
	OutcomeOK           = "ok"
	OutcomeInvalidInput = "invalid_input"
	OutcomeNotFound     = "not_found"
	OutcomeError        = "error"
)

const maxBodyBytes = 1 << 16

type DistanceHandler struct {
	Provider ports.DistanceProvider
	// Optional; counts requests by outcome.
	Requests *prometheus.CounterVec

	validator *requestValidator
}

func NewDistanceHandler(provider ports.DistanceProvider, requests *prometheus.CounterVec) *DistanceHandler {
	return &DistanceHandler{
		Provider:  provider,
		Requests:  requests,
		validator: newRequestValidator(),
	}
}

// Distance computes the great-circle distance for one pair of endpoints.
func (h *DistanceHandler) Distance(w http.ResponseWriter, r *http.Request) {
	var req dto.DistanceRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		h.observe(OutcomeInvalidInput)
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
		case errors.Is(err, domain.ErrInvalidCoordinate):
			writeError(w, r, http.StatusBadRequest, err.Error())
		default:
			writeError(w, r, http.StatusBadRequest, "invalid json body")
		}
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.observe(OutcomeInvalidInput)
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if msgs := h.validator.Struct(req); len(msgs) > 0 {
		h.observe(OutcomeInvalidInput)
		writeError(w, r, http.StatusBadRequest, "invalid request", msgs...)
		return
	}

	res, err := h.Provider.GetDistance(r.Context(), ports.DistanceQuery{
		From:         ports.Endpoint{Coordinates: req.From, Place: req.FromPlace},
		To:           ports.Endpoint{Coordinates: req.To, Place: req.ToPlace},
		RadiusMeters: req.RadiusMeters,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCoordinate), errors.Is(err, domain.ErrInvalidRadius):
			h.observe(OutcomeInvalidInput)
			writeError(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, ports.ErrPlaceNotFound):
			h.observe(OutcomeNotFound)
			writeError(w, r, http.StatusNotFound, err.Error())
		default:
			h.observe(OutcomeError)
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("get distance failed")
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	h.observe(OutcomeOK)
	writeJSON(w, r, http.StatusOK, dto.DistanceResponse{
		From:         res.From,
		To:           res.To,
		RadiusMeters: res.RadiusMeters,
		CentralAngle: res.CentralAngle,
		Meters:       res.Meters,
		Kilometers:   res.Kilometers,
		Miles:        res.Miles,
	})
}

func (h *DistanceHandler) observe(outcome string) {
	if h.Requests != nil {
		h.Requests.WithLabelValues(outcome).Inc()
	}
}
