package notification

import (
	"context"
	"strings"
	"time"

	"github.com/beanmeet/beanmeet-api/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/rs/zerolog/log"
	"go.uber.org/atomic"
)

type UpcomingStore interface {
	ListConfirmedByDates(ctx context.Context, dates []string) ([]*storage.Match, error)
	InsertNotification(ctx context.Context, n *storage.Notification) error
}

// UpcomingService announces confirmed matches starting three hours out. Each
// tick covers the half-open window (lastTick+lead, now+lead], so a match is
// picked up by exactly one tick no matter how its start time aligns with the
// tick cadence.
type UpcomingService struct {
	store        UpcomingStore
	fallbackZone *time.Location
	lead         time.Duration
	interval     time.Duration
	lastTick     time.Time
	stopped      *atomic.Bool
	done         chan struct{}
}

func NewUpcomingService(store UpcomingStore, fallbackZone *time.Location, lead, interval time.Duration) *UpcomingService {
	us := &UpcomingService{
		store:        store,
		fallbackZone: fallbackZone,
		lead:         lead,
		interval:     interval,
		lastTick:     time.Now().UTC(),
		stopped:      atomic.NewBool(false),
		done:         make(chan struct{}),
	}
	us.poll()
	return us
}

func (us *UpcomingService) Stop() {
	if us.stopped.CompareAndSwap(false, true) {
		close(us.done)
	}
}

func (us *UpcomingService) poll() {
	ticker := time.NewTicker(us.interval)
	go func() {
		defer ticker.Stop()
		for us.stopped.Load() == false {
			select {
			case <-us.done:
				return
			case now := <-ticker.C:
				us.runOnce(context.Background(), now.UTC())
			}
		}
	}()
}

func (us *UpcomingService) runOnce(ctx context.Context, now time.Time) {
	windowStart := us.lastTick.Add(us.lead)
	windowEnd := now.Add(us.lead)

	matches, err := us.store.ListConfirmedByDates(ctx, candidateDates(windowEnd))
	if err != nil {
		log.Err(err).Msg("could not list confirmed matches for upcoming poll")
		return
	}
	// lastTick only advances on a successful list, so a window lost to a
	// transient error is swept up by the next tick.
	us.lastTick = now
	for _, m := range matches {
		zoneName := ""
		if m.Timezone.Status == pgtype.Present {
			zoneName = m.Timezone.String
		}
		meetingAt, err := MeetingInstant(m.MeetingDate, m.StartTime, zoneName, us.fallbackZone)
		if err != nil {
			log.Warn().Err(err).Str("match", m.ID.String()).Msg("skipping match with unparsable meeting time")
			continue
		}
		if !inWindow(meetingAt, windowStart, windowEnd) {
			continue
		}
		us.announce(ctx, m, meetingAt)
	}
}

func (us *UpcomingService) announce(ctx context.Context, m *storage.Match, meetingAt time.Time) {
	cafe := CafeName(m.MeetingLocation.String)
	body := "Your coffee chat starts in 3 hours"
	if cafe != "" {
		body = body + " at " + cafe
	}
	body += "."
	for _, userID := range []uuid.UUID{m.UserA, m.UserB} {
		n := &storage.Notification{
			ID:       uuid.New(),
			UserID:   userID,
			Title:    "Coffee chat in 3 hours",
			Body:     body,
			Metadata: reminderMetadata(m.ID, cafe, meetingAt),
		}
		if err := us.store.InsertNotification(ctx, n); err != nil {
			log.Err(err).Str("match", m.ID.String()).Str("user", userID.String()).
				Msg("could not insert upcoming match notification")
		}
	}
}

// inWindow is half-open on the left so adjacent poll windows never overlap.
func inWindow(meetingAt, windowStart, windowEnd time.Time) bool {
	return meetingAt.After(windowStart) && !meetingAt.After(windowEnd)
}

// candidateDates widens the calendar-date prefilter by a day in each
// direction, since a zone's local date can sit on either side of the UTC one.
func candidateDates(windowEnd time.Time) []string {
	return []string{
		windowEnd.AddDate(0, 0, -1).Format(meetingDateLayout),
		windowEnd.Format(meetingDateLayout),
		windowEnd.AddDate(0, 0, 1).Format(meetingDateLayout),
	}
}

// CafeName strips the delimiter-separated payload the mobile client appends
// to the stored meeting location.
func CafeName(location string) string {
	name, _, _ := strings.Cut(location, "|")
	return strings.TrimSpace(name)
}
