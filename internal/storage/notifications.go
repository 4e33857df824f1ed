package storage

import (
	"context"
)

func (crdbp *CRDBPersistence) InsertNotification(ctx context.Context, n *Notification) error {
	_, errExec := crdbp.connPool.Exec(ctx,
		"INSERT INTO notifications(id, user_id, title, body, metadata) VALUES ($1, $2, $3, $4, $5)",
		n.ID,
		n.UserID,
		n.Title,
		n.Body,
		n.Metadata,
	)
	return errExec
}
