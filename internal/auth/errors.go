package auth

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("user already exists")
	ErrUnauthorized = errors.New("unauthorized")
)
