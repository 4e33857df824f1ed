package storage

import (
	"context"

	"github.com/google/uuid"
)

func (crdbp *CRDBPersistence) InsertUserOnConflictNothing(ctx context.Context, user *User) (int64, error) {
	v, errExec := crdbp.connPool.Exec(ctx,
		"INSERT INTO users(id, email, password_hash, display_name) "+
			"VALUES ($1, $2, $3, $4) ON CONFLICT(email) DO NOTHING",
		user.ID,
		user.Email,
		user.PasswordHash,
		user.DisplayName,
	)
	if errExec != nil {
		return -1, errExec
	}
	return v.RowsAffected(), nil
}

func (crdbp *CRDBPersistence) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	user := &User{}
	r := crdbp.connPool.QueryRow(ctx,
		"SELECT id, email, password_hash, display_name, created_at FROM users WHERE email = $1", email)
	errScan := r.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.DisplayName, &user.CreatedAt)
	if errScan != nil {
		return nil, errScan
	}
	return user, nil
}

// GetDisplayName prefers the profile display name over the one captured at
// registration. Returns an empty string when the user has neither.
func (crdbp *CRDBPersistence) GetDisplayName(ctx context.Context, userID uuid.UUID) (string, error) {
	var name string
	r := crdbp.connPool.QueryRow(ctx,
		"SELECT COALESCE(p.display_name, u.display_name, '') "+
			"FROM users u LEFT JOIN profiles p ON p.user_id = u.id WHERE u.id = $1", userID)
	errScan := r.Scan(&name)
	if errScan != nil {
		return "", errScan
	}
	return name, nil
}
