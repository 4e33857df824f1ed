package storage

import (
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	DisplayName  pgtype.Text
	CreatedAt    pgtype.Timestamp
}

type Profile struct {
	UserID      uuid.UUID
	DisplayName pgtype.Text
	Headline    pgtype.Text
	Company     pgtype.Text
	City        pgtype.Text
	Timezone    pgtype.Text
	UpdatedAt   pgtype.Timestamp
}

type Match struct {
	ID              uuid.UUID
	UserA           uuid.UUID
	UserB           uuid.UUID
	MeetingDate     string
	StartTime       string
	MeetingLocation pgtype.Text
	Timezone        pgtype.Text
	Status          string
}

type ScheduledNotification struct {
	ID          uuid.UUID
	MatchID     uuid.UUID
	UserID      uuid.UUID
	Type        string
	Title       string
	Body        string
	ScheduledAt pgtype.Timestamp
	Metadata    pgtype.JSONB
	Sent        bool
	CreatedAt   pgtype.Timestamp
}

type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Body      string
	Metadata  pgtype.JSONB
	CreatedAt pgtype.Timestamp
}
