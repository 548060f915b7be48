package handlers

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/rs/zerolog"
)

// ErrResponse is the JSON body of every non-2xx response.
type ErrResponse struct {
	HTTPStatusCode int `json:"-"`

	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string, details ...string) {
	if err := render.Render(w, r, &ErrResponse{HTTPStatusCode: status, Error: msg, Details: details}); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("render error response failed")
	}
}
