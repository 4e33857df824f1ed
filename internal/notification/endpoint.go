package notification

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog/log"
)

type ScheduleManager interface {
	ScheduleReminders(ctx context.Context, req *ScheduleRequest) (*ScheduleResult, error)
	CancelMeeting(ctx context.Context, matchID uuid.UUID) (int64, error)
}

type Endpoint struct {
	svc ScheduleManager
}

func NewEndpoint(svc ScheduleManager) *Endpoint {
	return &Endpoint{
		svc: svc,
	}
}

type scheduleResponse struct {
	Success bool `json:"success"`
	ScheduleResult
}

type cancelRequest struct {
	MatchID string `json:"match_id"`
}

type cancelResponse struct {
	Success   bool  `json:"success"`
	Cancelled int64 `json:"cancelled"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (e *Endpoint) ScheduleReminders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := &ScheduleRequest{}
	if !readJSON(w, r, req) {
		return
	}
	res, err := e.svc.ScheduleReminders(r.Context(), req)
	if err != nil {
		writeScheduleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, &scheduleResponse{Success: true, ScheduleResult: *res})
}

func (e *Endpoint) CancelMeeting(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := &cancelRequest{}
	if !readJSON(w, r, req) {
		return
	}
	matchID, err := uuid.Parse(req.MatchID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, &errorResponse{Error: "bad match_id"})
		return
	}
	cancelled, err := e.svc.CancelMeeting(r.Context(), matchID)
	if err != nil {
		log.Err(err).Msg("internal error cancelling meeting")
		writeJSON(w, http.StatusInternalServerError, &errorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, &cancelResponse{Success: true, Cancelled: cancelled})
}

func writeScheduleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidRequest) || errors.Is(err, ErrBadMeetingTime):
		log.Warn().Err(err).Msg("rejecting schedule request")
		writeJSON(w, http.StatusBadRequest, &errorResponse{Error: err.Error()})
	case errors.Is(err, pgx.ErrNoRows):
		writeJSON(w, http.StatusNotFound, &errorResponse{Error: "match not found"})
	default:
		log.Err(err).Msg("internal error scheduling reminders")
		writeJSON(w, http.StatusInternalServerError, &errorResponse{Error: "internal error"})
	}
}

func readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("error while reading req")
		w.WriteHeader(http.StatusBadRequest)
		return false
	}
	if err = json.Unmarshal(b, dst); err != nil {
		log.Err(err).Msg("error while unmarshalling")
		writeJSON(w, http.StatusBadRequest, &errorResponse{Error: "invalid json"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Err(err).Msg("error while writing response")
	}
}
