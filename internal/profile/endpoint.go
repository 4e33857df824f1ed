package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/beanmeet/beanmeet-api/internal/middleware"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog/log"
)

type Manager interface {
	Get(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
}

type Endpoint struct {
	svc Manager
}

func NewEndpoint(svc Manager) *Endpoint {
	return &Endpoint{
		svc: svc,
	}
}

func (e *Endpoint) GetProfile(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, err := uuid.Parse(ps.ByName("userId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "bad user id")
		return
	}
	p, err := e.svc.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			respondError(w, http.StatusNotFound, "profile not found")
			return
		}
		log.Err(err).Msg("internal error fetching profile")
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// UpsertProfile writes the caller's own profile; the authenticated user id
// wins over whatever the body claims.
func (e *Endpoint) UpsertProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var p Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if userID, ok := middleware.UserIDFromContext(r.Context()); ok {
		p.UserID = userID
	}
	if err := e.svc.Upsert(r.Context(), &p); err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Err(err).Msg("internal error upserting profile")
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, &p)
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		log.Err(err).Msg("error while writing error response")
	}
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Err(err).Msg("error while writing response")
	}
}
