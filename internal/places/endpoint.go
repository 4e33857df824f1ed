package places

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog/log"
)

type Autocompleter interface {
	Autocomplete(ctx context.Context, input string) ([]Prediction, error)
}

type Endpoint struct {
	svc Autocompleter
}

func NewEndpoint(svc Autocompleter) *Endpoint {
	return &Endpoint{
		svc: svc,
	}
}

func (e *Endpoint) Autocomplete(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	input := r.URL.Query().Get("input")
	if input == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "input is required"})
		return
	}
	predictions, err := e.svc.Autocomplete(r.Context(), input)
	if err != nil {
		log.Err(err).Msg("places autocomplete failed")
		respond(w, http.StatusBadGateway, map[string]string{"error": "places upstream failed"})
		return
	}
	if predictions == nil {
		predictions = []Prediction{}
	}
	respond(w, http.StatusOK, map[string][]Prediction{"predictions": predictions})
}

func respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Err(err).Msg("error while writing response")
	}
}
