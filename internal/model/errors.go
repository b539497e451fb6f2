package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound = errors.New("not found")
	ErrExists   = errors.New("already exists")

	ErrBadRequest = errors.New("incorrect request")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)

func NewError(model string, err error) error {
	return fmt.Errorf("%s: %w", strings.ToLower(model), err)
}

// ConflictError is a uniqueness violation that knows which column and value
// collided, so the response detail can name them.
type ConflictError struct {
	Entity string
	Column string
	Value  string
}

func (e *ConflictError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s %s", e.Entity, ErrExists)
	}
	return fmt.Sprintf("%s with %s=%q %s", e.Entity, e.Column, e.Value, ErrExists)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrExists
}
