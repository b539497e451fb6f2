package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/protomem/club-manager/internal/database"
	"github.com/protomem/club-manager/internal/model"
	"github.com/protomem/club-manager/internal/password"
	"github.com/protomem/club-manager/internal/token"
)

// UserStore is the persistence surface the auth service needs.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (model.User, error)
	Insert(ctx context.Context, dto database.InsertUserDTO) (model.ID, error)
	UpdateRefreshToken(ctx context.Context, id model.ID, refreshToken string) error
}

type Auth struct {
	logger *slog.Logger
	users  UserStore
	tokens *token.Manager
}

func NewAuth(logger *slog.Logger, users UserStore, tokens *token.Manager) *Auth {
	return &Auth{
		logger: logger.With("service", "auth"),
		users:  users,
		tokens: tokens,
	}
}

type SignUpDTO struct {
	Username string
	Password string
	Email    *string
}

// SignUp hashes the password and inserts a new user. A uniqueness violation
// surfaces as model.ErrExists (with the offending column), anything else as
// model.ErrBadRequest.
func (s *Auth) SignUp(ctx context.Context, dto SignUpDTO) (model.ID, error) {
	hash, err := password.Hash(dto.Password)
	if err != nil {
		return model.ID{}, err
	}

	id, err := s.users.Insert(ctx, database.InsertUserDTO{
		Username: dto.Username,
		Password: hash,
		Email:    dto.Email,
	})
	if err != nil {
		if errors.Is(err, model.ErrExists) {
			return model.ID{}, err
		}

		s.logger.Warn("sign up failed", "error", err)

		return model.ID{}, model.ErrBadRequest
	}

	return id, nil
}

// SignIn authenticates by username and password and issues a fresh token
// pair, persisting the new refresh token on the user.
func (s *Auth) SignIn(ctx context.Context, username, plaintext string) (token.Pair, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return token.Pair{}, model.ErrInvalidCredentials
		}
		return token.Pair{}, err
	}

	if !password.Verify(plaintext, user.Password) {
		return token.Pair{}, model.ErrInvalidCredentials
	}

	return s.issuePair(ctx, user)
}

// Refresh exchanges a refresh token for a new pair. The presented token must
// equal the stored one byte-for-byte; a superseded token is rejected.
func (s *Auth) Refresh(ctx context.Context, refreshToken string) (token.Pair, error) {
	user, err := s.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return token.Pair{}, err
	}

	return s.issuePair(ctx, user)
}

// ValidateAccessToken resolves the user carried by an access token.
func (s *Auth) ValidateAccessToken(ctx context.Context, accessToken string) (model.User, error) {
	return s.userFromToken(ctx, accessToken)
}

// ValidateRefreshToken resolves the user carried by a refresh token and
// checks the token against the one stored on the user record.
func (s *Auth) ValidateRefreshToken(ctx context.Context, refreshToken string) (model.User, error) {
	user, err := s.userFromToken(ctx, refreshToken)
	if err != nil {
		return model.User{}, err
	}

	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return model.User{}, model.ErrInvalidToken
	}

	return user, nil
}

func (s *Auth) issuePair(ctx context.Context, user model.User) (token.Pair, error) {
	pair, err := s.tokens.NewPair(user.Username)
	if err != nil {
		return token.Pair{}, err
	}

	if err := s.users.UpdateRefreshToken(ctx, user.ID, pair.RefreshToken); err != nil {
		if errors.Is(err, model.ErrExists) {
			return token.Pair{}, model.ErrBadRequest
		}
		return token.Pair{}, err
	}

	return pair, nil
}

func (s *Auth) userFromToken(ctx context.Context, tokenString string) (model.User, error) {
	username, err := s.tokens.Parse(tokenString)
	if err != nil {
		if errors.Is(err, token.ErrExpired) {
			return model.User{}, model.ErrTokenExpired
		}
		return model.User{}, fmt.Errorf("%w: %w", model.ErrInvalidToken, err)
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.ErrInvalidToken
		}
		return model.User{}, err
	}

	return user, nil
}
