package service

import (
	"context"
	"errors"
	"testing"

	"ledgerkeep/internal/domain"
	"ledgerkeep/internal/logger"
)

type fakeUserStore struct {
	users  map[string]*domain.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*domain.User), nextID: 1}
}

func (f *fakeUserStore) FetchUserByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := f.users[username]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserStore) InsertUser(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := f.users[user.Username]; ok {
		return nil, domain.ErrConflict
	}
	stored := *user
	stored.UserID = f.nextID
	f.nextID++
	f.users[user.Username] = &stored
	return &stored, nil
}

func newTestAuthService() (*AuthService, *fakeUserStore) {
	users := newFakeUserStore()
	return NewAuthService(users, "unit-test-secret", logger.NewWithWriter(discard{})), users
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, users := newTestAuthService()

	user, err := svc.Register(context.Background(), &domain.User{
		Username: "owner@example.com",
		Password: "Sup3rSecret!",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Password != "" {
		t.Error("plaintext password must be cleared")
	}
	stored := users.users["owner@example.com"]
	if stored.PasswordHash == "" || stored.PasswordHash == "Sup3rSecret!" {
		t.Error("stored password must be a hash")
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc, _ := newTestAuthService()
	_, err := svc.Register(context.Background(), &domain.User{Username: "a@b.com", Password: "short"})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLoginRoundTrip(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), &domain.User{
		Username: "owner@example.com",
		Password: "Sup3rSecret!",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	token, err := svc.Login(context.Background(), "Owner@Example.com", "Sup3rSecret!")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	claims, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims["username"] != "owner@example.com" {
		t.Errorf("username claim = %v", claims["username"])
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestAuthService()
	if _, err := svc.Register(context.Background(), &domain.User{
		Username: "owner@example.com",
		Password: "Sup3rSecret!",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := svc.Login(context.Background(), "owner@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newTestAuthService()
	if _, err := svc.Login(context.Background(), "ghost@example.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	svc, _ := newTestAuthService()
	if _, err := svc.ParseToken("not.a.token"); err == nil {
		t.Error("expected parse failure")
	}
}

func TestParseTokenRejectsForeignSecret(t *testing.T) {
	svcA, _ := newTestAuthService()
	users := newFakeUserStore()
	svcB := NewAuthService(users, "different-secret", logger.NewWithWriter(discard{}))

	if _, err := svcA.Register(context.Background(), &domain.User{
		Username: "owner@example.com",
		Password: "Sup3rSecret!",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	token, err := svcA.Login(context.Background(), "owner@example.com", "Sup3rSecret!")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if _, err := svcB.ParseToken(token); err == nil {
		t.Error("token signed with another secret must be rejected")
	}
}
