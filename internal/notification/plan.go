package notification

import (
	"fmt"
	"time"
)

var ErrBadMeetingTime = fmt.Errorf("meeting date/time cannot be parsed")

const (
	meetingDateLayout = "2006-01-02"
	startTimeLayout   = "15:04"
)

// MeetingInstant resolves a match's wall-clock date and start time to an
// absolute UTC instant. The zone name comes from the match row; an empty name
// falls back to the configured default zone. An unknown zone name or a
// malformed date/time yields ErrBadMeetingTime.
func MeetingInstant(meetingDate, startTime, zoneName string, fallback *time.Location) (time.Time, error) {
	loc := fallback
	if zoneName != "" {
		var err error
		loc, err = time.LoadLocation(zoneName)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: unknown timezone %q", ErrBadMeetingTime, zoneName)
		}
	}
	layout := meetingDateLayout + " " + startTimeLayout
	localClock := meetingDate + " " + startTime
	t, err := time.ParseInLocation(layout, localClock, loc)
	if err != nil {
		// some clients send seconds
		t, err = time.ParseInLocation(layout+":05", localClock, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrBadMeetingTime, localClock)
		}
	}
	return t.UTC(), nil
}

type PlannedReminder struct {
	Type Type
	At   time.Time
}

// PlanReminders computes the reminder instants for a meeting and drops any
// that are not strictly in the future relative to now. Results are ordered
// earliest first.
func PlanReminders(meetingAt, now time.Time) []PlannedReminder {
	planned := make([]PlannedReminder, 0, len(offsets))
	for _, o := range offsets {
		at := meetingAt.Add(-o.lead)
		if !at.After(now) {
			continue
		}
		planned = append(planned, PlannedReminder{Type: o.t, At: at})
	}
	return planned
}
