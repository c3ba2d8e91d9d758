package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/nkurunziza/erinda/internal/app/models"
	"github.com/nkurunziza/erinda/internal/app/models/dto"
	"github.com/nkurunziza/erinda/internal/pkg/apperrors"
	"github.com/nkurunziza/erinda/internal/pkg/auth"
)

func newTestAuthService(store *fakeUserStore) (AuthService, *auth.JWTService) {
	jwtSvc := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: time.Minute,
		TokenIssuer: "test",
	})
	return NewAuthService(store, jwtSvc, zerolog.Nop()), jwtSvc
}

func TestRegisterHashesPasswordAndDefaultsRole(t *testing.T) {
	store := &fakeUserStore{}
	svc, _ := newTestAuthService(store)

	user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "plaintext",
	})
	if err != nil {
		t.Fatalf("register error: %v", err)
	}

	if user.Role != models.RoleUser {
		t.Fatalf("expected default role user, got %q", user.Role)
	}
	if user.Password == "plaintext" {
		t.Fatalf("password stored in clear")
	}
	if !auth.CheckPassword(user.Password, "plaintext") {
		t.Fatalf("stored hash does not verify")
	}
	if user.ID == 0 {
		t.Fatalf("expected store-assigned id")
	}
}

func TestRegisterRejectsDuplicateIdentity(t *testing.T) {
	store := &fakeUserStore{}
	svc, _ := newTestAuthService(store)

	req := &dto.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "pw"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first register error: %v", err)
	}

	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, apperrors.ErrIdentityTaken) {
		t.Fatalf("expected ErrIdentityTaken, got %v", err)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc, _ := newTestAuthService(&fakeUserStore{})

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice", Email: "a@example.com", Password: "pw", Role: "mayor",
	})
	if !errors.Is(err, apperrors.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestRegisterParsesDateOfBirth(t *testing.T) {
	svc, _ := newTestAuthService(&fakeUserStore{})

	user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice", Email: "a@example.com", Password: "pw", DateOfBirth: "1991-03-02",
	})
	if err != nil {
		t.Fatalf("register error: %v", err)
	}
	if user.DateOfBirth == nil || user.DateOfBirth.Year() != 1991 {
		t.Fatalf("date of birth not parsed: %v", user.DateOfBirth)
	}

	_, err = svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "bob", Email: "b@example.com", Password: "pw", DateOfBirth: "02/03/1991",
	})
	if !errors.Is(err, apperrors.ErrInvalidDateOfBirth) {
		t.Fatalf("expected ErrInvalidDateOfBirth, got %v", err)
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	store := &fakeUserStore{}
	svc, jwtSvc := newTestAuthService(store)

	if _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice", Email: "a@example.com", Password: "pw", Role: "guard",
	}); err != nil {
		t.Fatalf("register error: %v", err)
	}

	token, err := svc.Login(context.Background(), "alice", "pw")
	if err != nil {
		t.Fatalf("login error: %v", err)
	}

	claims, err := jwtSvc.Verify(token)
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}
	if claims.Username != "alice" || claims.Role != "guard" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	store := &fakeUserStore{}
	svc, _ := newTestAuthService(store)

	if _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice", Email: "a@example.com", Password: "pw",
	}); err != nil {
		t.Fatalf("register error: %v", err)
	}

	_, unknownErr := svc.Login(context.Background(), "nobody", "pw")
	_, wrongErr := svc.Login(context.Background(), "alice", "wrong")

	if !errors.Is(unknownErr, apperrors.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, apperrors.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
	}
	// Same error either way; usernames cannot be probed via login
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatalf("login failures must be indistinguishable: %q vs %q", unknownErr, wrongErr)
	}
}

func TestGetCurrentUser(t *testing.T) {
	store := &fakeUserStore{}
	svc, _ := newTestAuthService(store)

	created, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice", Email: "a@example.com", Password: "pw",
	})
	if err != nil {
		t.Fatalf("register error: %v", err)
	}

	got, err := svc.GetCurrentUser(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get current user error: %v", err)
	}
	if got.Username != "alice" {
		t.Fatalf("unexpected user: %+v", got)
	}

	if _, err := svc.GetCurrentUser(context.Background(), 999); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
