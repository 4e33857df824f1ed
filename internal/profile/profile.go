package profile

import (
	"context"
	"fmt"

	"github.com/beanmeet/beanmeet-api/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
)

var ErrInvalidInput = fmt.Errorf("invalid profile input")

type Store interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*storage.Profile, error)
	UpsertProfile(ctx context.Context, profile *storage.Profile) error
}

type Profile struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Headline    string `json:"headline,omitempty"`
	Company     string `json:"company,omitempty"`
	City        string `json:"city,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
	}
}

func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	p, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return fromStorage(p), nil
}

func (s *Service) Upsert(ctx context.Context, p *Profile) error {
	userID, err := uuid.Parse(p.UserID)
	if err != nil {
		return fmt.Errorf("%w: bad user_id", ErrInvalidInput)
	}
	if p.DisplayName == "" {
		return fmt.Errorf("%w: display_name is required", ErrInvalidInput)
	}
	return s.store.UpsertProfile(ctx, &storage.Profile{
		UserID:      userID,
		DisplayName: text(p.DisplayName),
		Headline:    text(p.Headline),
		Company:     text(p.Company),
		City:        text(p.City),
		Timezone:    text(p.Timezone),
	})
}

func fromStorage(p *storage.Profile) *Profile {
	return &Profile{
		UserID:      p.UserID.String(),
		DisplayName: p.DisplayName.String,
		Headline:    p.Headline.String,
		Company:     p.Company.String,
		City:        p.City.String,
		Timezone:    p.Timezone.String,
	}
}

func text(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Status: pgtype.Null}
	}
	return pgtype.Text{String: s, Status: pgtype.Present}
}
