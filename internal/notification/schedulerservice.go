package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/beanmeet/beanmeet-api/internal/metrics"
	"github.com/beanmeet/beanmeet-api/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	"github.com/rs/zerolog/log"
)

var ErrInvalidRequest = fmt.Errorf("invalid schedule request")

type ScheduleStore interface {
	GetMatch(ctx context.Context, matchID uuid.UUID) (*storage.Match, error)
	GetDisplayName(ctx context.Context, userID uuid.UUID) (string, error)
	InsertScheduledOnConflictNothing(ctx context.Context, sn *storage.ScheduledNotification, tx *storage.WrappedTx) (int64, error)
	DeleteUnsentByMatch(ctx context.Context, matchID uuid.UUID) (int64, error)
}

type ScheduleRequest struct {
	MatchID     string `json:"match_id"`
	UserA       string `json:"user_a"`
	UserB       string `json:"user_b"`
	MeetingDate string `json:"meeting_date"`
	StartTime   string `json:"start_time"`
	CafeName    string `json:"cafe_name"`
}

func (r *ScheduleRequest) validate() error {
	if r.MatchID == "" || r.UserA == "" || r.UserB == "" || r.MeetingDate == "" || r.StartTime == "" {
		return fmt.Errorf("%w: match_id, user_a, user_b, meeting_date and start_time are required", ErrInvalidRequest)
	}
	return nil
}

type ScheduleResult struct {
	Scheduled int `json:"scheduled"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

type SchedulerService struct {
	store        ScheduleStore
	txCreator    *storage.WrappedTxCreator
	fallbackZone *time.Location
}

func NewSchedulerService(store ScheduleStore, txCreator *storage.WrappedTxCreator, fallbackZone *time.Location) *SchedulerService {
	return &SchedulerService{
		store:        store,
		txCreator:    txCreator,
		fallbackZone: fallbackZone,
	}
}

// ScheduleReminders plans the 24h/1h/15m reminders for both participants of a
// confirmed match and upserts them. Re-invocation is a no-op per
// (match, user, type) thanks to the unique key, and a single failed row never
// fails the batch.
func (s *SchedulerService) ScheduleReminders(ctx context.Context, req *ScheduleRequest) (*ScheduleResult, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	matchID, err := uuid.Parse(req.MatchID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad match_id", ErrInvalidRequest)
	}
	userA, err := uuid.Parse(req.UserA)
	if err != nil {
		return nil, fmt.Errorf("%w: bad user_a", ErrInvalidRequest)
	}
	userB, err := uuid.Parse(req.UserB)
	if err != nil {
		return nil, fmt.Errorf("%w: bad user_b", ErrInvalidRequest)
	}

	match, err := s.store.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	zoneName := ""
	if match.Timezone.Status == pgtype.Present {
		zoneName = match.Timezone.String
	}
	meetingAt, err := MeetingInstant(req.MeetingDate, req.StartTime, zoneName, s.fallbackZone)
	if err != nil {
		return nil, err
	}

	nameA := s.displayName(ctx, userA)
	nameB := s.displayName(ctx, userB)

	now := time.Now().UTC()
	planned := PlanReminders(meetingAt, now)

	res := &ScheduleResult{
		// reminders already in the past are skipped for both users
		Skipped: (len(offsets) - len(planned)) * 2,
	}
	recipients := []struct {
		userID      uuid.UUID
		partnerName string
	}{
		{userA, nameB},
		{userB, nameA},
	}
	for _, rcpt := range recipients {
		for _, p := range planned {
			sn := &storage.ScheduledNotification{
				ID:      uuid.New(),
				MatchID: matchID,
				UserID:  rcpt.userID,
				Type:    p.Type.String(),
				Title:   reminderTitle(p.Type),
				Body:    reminderBody(p.Type, rcpt.partnerName, req.CafeName, req.StartTime),
				ScheduledAt: pgtype.Timestamp{
					Time:   p.At,
					Status: pgtype.Present,
				},
				Metadata: reminderMetadata(matchID, req.CafeName, meetingAt),
			}
			if s.upsertReminder(ctx, sn) {
				res.Scheduled++
			} else {
				res.Failed++
			}
		}
	}
	metrics.RemindersScheduled.Add(float64(res.Scheduled))
	return res, nil
}

// upsertReminder reports success for duplicates too; the caller only cares
// that the row exists afterwards.
func (s *SchedulerService) upsertReminder(ctx context.Context, sn *storage.ScheduledNotification) bool {
	tx, err := s.txCreator.NewTx(ctx, pgx.TxOptions{})
	if err != nil {
		log.Err(err).Str("match", sn.MatchID.String()).Msg("could not open tx for reminder upsert")
		return false
	}
	affected, err := s.store.InsertScheduledOnConflictNothing(ctx, sn, tx)
	if err != nil {
		log.Err(err).Str("match", sn.MatchID.String()).Str("type", sn.Type).Msg("could not upsert reminder")
		if errRollback := tx.Rollback(ctx); errRollback != nil {
			log.Err(errRollback).Msg("error rolling back reminder upsert")
		}
		return false
	}
	if err = tx.Commit(ctx); err != nil {
		log.Err(err).Str("match", sn.MatchID.String()).Str("type", sn.Type).Msg("error committing reminder upsert")
		return false
	}
	if affected == 0 {
		log.Debug().Str("match", sn.MatchID.String()).Str("type", sn.Type).Msg("reminder already scheduled")
	}
	return true
}

// CancelMeeting deletes the pending reminders of a cancelled meeting. Sent
// rows are kept. A meeting with no rows cancels zero and is not an error.
func (s *SchedulerService) CancelMeeting(ctx context.Context, matchID uuid.UUID) (int64, error) {
	return s.store.DeleteUnsentByMatch(ctx, matchID)
}

func (s *SchedulerService) displayName(ctx context.Context, userID uuid.UUID) string {
	name, err := s.store.GetDisplayName(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("user", userID.String()).Msg("could not fetch display name, using placeholder")
		return ""
	}
	return name
}

func reminderMetadata(matchID uuid.UUID, cafeName string, meetingAt time.Time) pgtype.JSONB {
	b, err := json.Marshal(map[string]string{
		"match_id":   matchID.String(),
		"cafe_name":  cafeName,
		"meeting_at": meetingAt.Format(time.RFC3339),
	})
	if err != nil {
		return pgtype.JSONB{Status: pgtype.Null}
	}
	return pgtype.JSONB{Bytes: b, Status: pgtype.Present}
}
