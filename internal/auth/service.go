package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/beanmeet/beanmeet-api/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type UserStore interface {
	InsertUserOnConflictNothing(ctx context.Context, user *storage.User) (int64, error)
	GetUserByEmail(ctx context.Context, email string) (*storage.User, error)
}

type User struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name,omitempty"`
}

type Service struct {
	store    UserStore
	tokenSvc TokenService
}

func NewService(store UserStore, tokenSvc TokenService) *Service {
	return &Service{
		store:    store,
		tokenSvc: tokenSvc,
	}
}

func (s *Service) Register(ctx context.Context, email, password, displayName string) (*User, error) {
	if !emailRe.MatchString(email) {
		return nil, fmt.Errorf("%w: bad email", ErrInvalidInput)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &storage.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hashed),
		DisplayName: pgtype.Text{
			String: displayName,
			Status: pgtype.Present,
		},
	}
	affected, err := s.store.InsertUserOnConflictNothing(ctx, user)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrConflict
	}
	log.Info().Str("user", user.ID.String()).Msg("registered new user")
	return &User{ID: user.ID, Email: email, DisplayName: displayName}, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*User, string, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", ErrUnauthorized
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrUnauthorized
	}
	token, err := s.tokenSvc.GenerateToken(user.ID.String(), user.Email)
	if err != nil {
		return nil, "", err
	}
	return &User{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName.String,
	}, token, nil
}
