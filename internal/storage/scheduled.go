package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

func (crdbp *CRDBPersistence) InsertScheduledOnConflictNothing(ctx context.Context, sn *ScheduledNotification, tx *WrappedTx) (int64, error) {
	v, errExec := tx.Tx.Exec(ctx,
		"INSERT INTO scheduled_notifications(id, match_id, user_id, notification_type, title, body, scheduled_at, metadata) "+
			"VALUES ($1, $2, $3, $4, $5, $6, $7, $8) "+
			"ON CONFLICT(match_id, user_id, notification_type) DO NOTHING",
		sn.ID,
		sn.MatchID,
		sn.UserID,
		sn.Type,
		sn.Title,
		sn.Body,
		sn.ScheduledAt,
		sn.Metadata,
	)
	if errExec != nil {
		return -1, errExec
	}
	return v.RowsAffected(), nil
}

// DeleteUnsentByMatch removes pending rows only. Sent rows stay behind as an
// audit trail.
func (crdbp *CRDBPersistence) DeleteUnsentByMatch(ctx context.Context, matchID uuid.UUID) (int64, error) {
	v, errExec := crdbp.connPool.Exec(ctx,
		"DELETE FROM scheduled_notifications WHERE match_id = $1 AND sent = false", matchID)
	if errExec != nil {
		return -1, errExec
	}
	return v.RowsAffected(), nil
}

func (crdbp *CRDBPersistence) ListDueScheduled(ctx context.Context, due time.Time, limit int) ([]*ScheduledNotification, error) {
	rows, err := crdbp.connPool.Query(ctx,
		"SELECT id, match_id, user_id, notification_type, title, body, scheduled_at, metadata, sent "+
			"FROM scheduled_notifications WHERE sent = false AND scheduled_at <= $1 "+
			"ORDER BY scheduled_at LIMIT $2",
		pgtype.Timestamp{
			Time:   due.UTC(),
			Status: pgtype.Present,
		}, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*ScheduledNotification
	for rows.Next() {
		sn := &ScheduledNotification{}
		errScan := rows.Scan(&sn.ID, &sn.MatchID, &sn.UserID, &sn.Type, &sn.Title,
			&sn.Body, &sn.ScheduledAt, &sn.Metadata, &sn.Sent)
		if errScan != nil {
			return nil, errScan
		}
		out = append(out, sn)
	}
	return out, rows.Err()
}

func (crdbp *CRDBPersistence) GetScheduledForUpdate(ctx context.Context, id uuid.UUID, tx pgx.Tx) (*ScheduledNotification, error) {
	sn := &ScheduledNotification{}
	r := tx.QueryRow(ctx,
		"SELECT id, match_id, user_id, notification_type, title, body, scheduled_at, metadata, sent "+
			"FROM scheduled_notifications WHERE id = $1 FOR UPDATE", id)
	errScan := r.Scan(&sn.ID, &sn.MatchID, &sn.UserID, &sn.Type, &sn.Title,
		&sn.Body, &sn.ScheduledAt, &sn.Metadata, &sn.Sent)
	if errScan != nil {
		return nil, errScan
	}
	return sn, nil
}

func (crdbp *CRDBPersistence) MarkScheduledSent(ctx context.Context, id uuid.UUID, tx pgx.Tx) error {
	_, errExec := tx.Exec(ctx,
		"UPDATE scheduled_notifications SET sent = true WHERE id = $1", id)
	return errExec
}
