package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
)

func (crdbp *CRDBPersistence) UpsertProfile(ctx context.Context, profile *Profile) error {
	_, errExec := crdbp.connPool.Exec(ctx,
		"INSERT INTO profiles(user_id, display_name, headline, company, city, timezone, updated_at) "+
			"VALUES ($1, $2, $3, $4, $5, $6, $7) "+
			"ON CONFLICT(user_id) DO UPDATE SET "+
			"display_name = excluded.display_name, headline = excluded.headline, "+
			"company = excluded.company, city = excluded.city, timezone = excluded.timezone, "+
			"updated_at = excluded.updated_at",
		profile.UserID,
		profile.DisplayName,
		profile.Headline,
		profile.Company,
		profile.City,
		profile.Timezone,
		pgtype.Timestamp{
			Time:   time.Now().UTC(),
			Status: pgtype.Present,
		},
	)
	return errExec
}

func (crdbp *CRDBPersistence) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	profile := &Profile{}
	r := crdbp.connPool.QueryRow(ctx,
		"SELECT user_id, display_name, headline, company, city, timezone, updated_at "+
			"FROM profiles WHERE user_id = $1", userID)
	errScan := r.Scan(&profile.UserID, &profile.DisplayName, &profile.Headline,
		&profile.Company, &profile.City, &profile.Timezone, &profile.UpdatedAt)
	if errScan != nil {
		return nil, errScan
	}
	return profile, nil
}
