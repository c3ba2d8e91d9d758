package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: time.Minute,
		TokenIssuer: "test-issuer",
	})

	token, err := svc.Issue(42, "nkurunziza", "guard")
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "nkurunziza" || claims.Role != "guard" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Issuer != "test-issuer" {
		t.Fatalf("expected issuer test-issuer, got %q", claims.Issuer)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: -time.Minute,
	})

	token, err := svc.Issue(1, "bob", "user")
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestWrongSecretRejected(t *testing.T) {
	issuer := NewJWTService(JWTConfig{SecretKey: "secret-a", TokenExpiry: time.Minute})
	verifier := NewJWTService(JWTConfig{SecretKey: "secret-b", TokenExpiry: time.Minute})

	token, err := issuer.Issue(1, "bob", "user")
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "test-secret", TokenExpiry: time.Minute})

	token, err := svc.Issue(1, "bob", "user")
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token parts, got %d", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	if _, err := svc.Verify(tampered); err == nil {
		t.Fatalf("expected tampered token to be rejected")
	}
}

func TestVerifyEmptyToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "test-secret", TokenExpiry: time.Minute})
	if _, err := svc.Verify(""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat for empty header")
	}

	got, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil || got != "abc.def.ghi" {
		t.Fatalf("expected bearer token extracted, got %q err %v", got, err)
	}

	// Only the Bearer scheme is accepted
	if _, err := ExtractBearerToken("abc.def.ghi"); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat for raw token, got %v", err)
	}
	if _, err := ExtractBearerToken("Basic abc.def.ghi"); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat for non-bearer scheme, got %v", err)
	}
	if _, err := ExtractBearerToken("Bearer "); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat for empty bearer token, got %v", err)
	}
}
