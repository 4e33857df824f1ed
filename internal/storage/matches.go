package storage

import (
	"context"

	"github.com/google/uuid"
)

func (crdbp *CRDBPersistence) GetMatch(ctx context.Context, matchID uuid.UUID) (*Match, error) {
	match := &Match{}
	r := crdbp.connPool.QueryRow(ctx,
		"SELECT id, user_a, user_b, meeting_date, start_time, meeting_location, timezone, status "+
			"FROM matching WHERE id = $1", matchID)
	errScan := r.Scan(&match.ID, &match.UserA, &match.UserB, &match.MeetingDate,
		&match.StartTime, &match.MeetingLocation, &match.Timezone, &match.Status)
	if errScan != nil {
		return nil, errScan
	}
	return match, nil
}

// ListConfirmedByDates narrows by calendar date only; the caller resolves each
// match's wall clock in its own timezone and filters by instant.
func (crdbp *CRDBPersistence) ListConfirmedByDates(ctx context.Context, dates []string) ([]*Match, error) {
	rows, err := crdbp.connPool.Query(ctx,
		"SELECT id, user_a, user_b, meeting_date, start_time, meeting_location, timezone, status "+
			"FROM matching WHERE status = 'confirmed' AND meeting_date = ANY($1)", dates)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var matches []*Match
	for rows.Next() {
		match := &Match{}
		errScan := rows.Scan(&match.ID, &match.UserA, &match.UserB, &match.MeetingDate,
			&match.StartTime, &match.MeetingLocation, &match.Timezone, &match.Status)
		if errScan != nil {
			return nil, errScan
		}
		matches = append(matches, match)
	}
	return matches, rows.Err()
}
