package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/protomem/club-manager/internal/database"
	"github.com/protomem/club-manager/internal/model"
	"github.com/protomem/club-manager/internal/password"
	"github.com/protomem/club-manager/internal/token"
)

type fakeUserStore struct {
	users map[string]model.User // keyed by username
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]model.User)}
}

func (s *fakeUserStore) GetByUsername(_ context.Context, username string) (model.User, error) {
	user, exists := s.users[username]
	if !exists {
		return model.User{}, model.NewError("user", model.ErrNotFound)
	}
	return user, nil
}

func (s *fakeUserStore) Insert(_ context.Context, dto database.InsertUserDTO) (model.ID, error) {
	if _, exists := s.users[dto.Username]; exists {
		return model.ID{}, &model.ConflictError{Entity: "user", Column: "username", Value: dto.Username}
	}
	for _, user := range s.users {
		if dto.Email != nil && user.Email != nil && *user.Email == *dto.Email {
			return model.ID{}, &model.ConflictError{Entity: "user", Column: "email", Value: *dto.Email}
		}
	}

	user := model.User{
		ID:       uuid.New(),
		Username: dto.Username,
		Password: dto.Password,
		Email:    dto.Email,
	}
	s.users[dto.Username] = user

	return user.ID, nil
}

func (s *fakeUserStore) UpdateRefreshToken(_ context.Context, id model.ID, refreshToken string) error {
	for username, user := range s.users {
		if user.ID == id {
			user.RefreshToken = &refreshToken
			s.users[username] = user
			return nil
		}
	}
	return model.NewError("user", model.ErrNotFound)
}

func newTestAuth(store UserStore, accessTTL, refreshTTL time.Duration) *Auth {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := token.NewManager("test-secret", accessTTL, refreshTTL)
	return NewAuth(logger, store, tokens)
}

func TestAuth_SignUp(t *testing.T) {
	store := newFakeUserStore()
	auth := newTestAuth(store, 15*time.Minute, 24*time.Hour)
	ctx := context.Background()

	email := "bob@example.com"
	if _, err := auth.SignUp(ctx, SignUpDTO{Username: "bob", Password: "pa55word!", Email: &email}); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	user := store.users["bob"]
	if user.Password == "pa55word!" {
		t.Fatal("password must be stored hashed")
	}
	if !password.Verify("pa55word!", user.Password) {
		t.Fatal("stored hash must verify against the plaintext")
	}
}

func TestAuth_SignUp_Duplicate(t *testing.T) {
	store := newFakeUserStore()
	auth := newTestAuth(store, 15*time.Minute, 24*time.Hour)
	ctx := context.Background()

	if _, err := auth.SignUp(ctx, SignUpDTO{Username: "bob", Password: "pa55word!"}); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	_, err := auth.SignUp(ctx, SignUpDTO{Username: "bob", Password: "other-pass"})
	if !errors.Is(err, model.ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}

	var conflict *model.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %T", err)
	}
	if conflict.Column != "username" || conflict.Value != "bob" {
		t.Fatalf("conflict = %+v", conflict)
	}
}

func TestAuth_SignIn(t *testing.T) {
	store := newFakeUserStore()
	auth := newTestAuth(store, 15*time.Minute, 24*time.Hour)
	ctx := context.Background()

	if _, err := auth.SignUp(ctx, SignUpDTO{Username: "bob", Password: "pa55word!"}); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	pair, err := auth.SignIn(ctx, "bob", "pa55word!")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected a full token pair, got %+v", pair)
	}

	stored := store.users["bob"].RefreshToken
	if stored == nil || *stored != pair.RefreshToken {
		t.Fatal("refresh token must be persisted on the user")
	}
}

func TestAuth_SignIn_BadCredentials(t *testing.T) {
	store := newFakeUserStore()
	auth := newTestAuth(store, 15*time.Minute, 24*time.Hour)
	ctx := context.Background()

	if _, err := auth.SignUp(ctx, SignUpDTO{Username: "bob", Password: "pa55word!"}); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	if _, err := auth.SignIn(ctx, "bob", "wrong"); !errors.Is(err, model.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := auth.SignIn(ctx, "nobody", "pa55word!"); !errors.Is(err, model.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuth_Refresh_RotatesToken(t *testing.T) {
	store := newFakeUserStore()
	auth := newTestAuth(store, 15*time.Minute, 24*time.Hour)
	ctx := context.Background()

	if _, err := auth.SignUp(ctx, SignUpDTO{Username: "bob", Password: "pa55word!"}); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	first, err := auth.SignIn(ctx, "bob", "pa55word!")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	// Token payloads carry second-granularity timestamps; make sure the next
	// pair differs from the first.
	time.Sleep(1100 * time.Millisecond)

	second, err := auth.Refresh(ctx, first.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if second.RefreshToken == first.RefreshToken {
		t.Fatal("refresh must issue a new refresh token")
	}

	// The superseded token is locked out even though its signature is valid.
	if _, err := auth.Refresh(ctx, first.RefreshToken); !errors.Is(err, model.ErrInvalidToken) {
		t.Fatalf("replayed token: expected ErrInvalidToken, got %v", err)
	}

	// The current token still works.
	if _, err := auth.Refresh(ctx, second.RefreshToken); err != nil {
		t.Fatalf("current token: %v", err)
	}
}

func TestAuth_Refresh_Expired(t *testing.T) {
	store := newFakeUserStore()
	auth := newTestAuth(store, 15*time.Minute, -time.Minute)
	ctx := context.Background()

	if _, err := auth.SignUp(ctx, SignUpDTO{Username: "bob", Password: "pa55word!"}); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	pair, err := auth.SignIn(ctx, "bob", "pa55word!")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	if _, err := auth.Refresh(ctx, pair.RefreshToken); !errors.Is(err, model.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestAuth_Refresh_Garbage(t *testing.T) {
	store := newFakeUserStore()
	auth := newTestAuth(store, 15*time.Minute, 24*time.Hour)

	if _, err := auth.Refresh(context.Background(), "not-a-jwt"); !errors.Is(err, model.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuth_ValidateAccessToken(t *testing.T) {
	store := newFakeUserStore()
	auth := newTestAuth(store, 15*time.Minute, 24*time.Hour)
	ctx := context.Background()

	if _, err := auth.SignUp(ctx, SignUpDTO{Username: "bob", Password: "pa55word!"}); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	pair, err := auth.SignIn(ctx, "bob", "pa55word!")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	user, err := auth.ValidateAccessToken(ctx, pair.AccessToken)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if user.Username != "bob" {
		t.Fatalf("username = %q, want %q", user.Username, "bob")
	}

	// A token for a user that no longer exists is rejected.
	delete(store.users, "bob")
	if _, err := auth.ValidateAccessToken(ctx, pair.AccessToken); !errors.Is(err, model.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
