package services

import (
	"errors"
	"testing"
	"time"

	"github.com/heroforce/heroforce/internal/models"
)

func TestTokenServiceIssueAndVerifyRoundTrip(t *testing.T) {
	tokens := NewTokenService("test-secret-key", time.Hour)
	user := models.User{
		ID:    "3a41d1de-6f24-4b2d-a2a8-8f1f0f7cb001",
		Email: "bruce@example.com",
		Role:  models.RoleAdmin,
	}

	tokenValue, err := tokens.Issue(&user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	claims, err := tokens.Verify(tokenValue)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if claims.UserID != user.ID || claims.Subject != user.ID {
		t.Fatalf("expected subject %q, got uid=%q sub=%q", user.ID, claims.UserID, claims.Subject)
	}
	if claims.Email != user.Email || claims.Role != models.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokenServiceRejectsExpiredToken(t *testing.T) {
	tokens := NewTokenService("test-secret-key", -time.Minute)
	// NewTokenService clamps non-positive TTLs, so build an expired token
	// through a service whose TTL elapsed.
	expired := &TokenService{secretKey: []byte("test-secret-key"), ttl: -time.Minute}

	tokenValue, err := expired.Issue(&models.User{ID: "user-1", Email: "a@b.com", Role: models.RoleHero})
	if err != nil {
		t.Fatalf("issue expired token: %v", err)
	}

	if _, err := tokens.Verify(tokenValue); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenServiceRejectsForeignSecret(t *testing.T) {
	issuer := NewTokenService("secret-one", time.Hour)
	verifier := NewTokenService("secret-two", time.Hour)

	tokenValue, err := issuer.Issue(&models.User{ID: "user-1", Email: "a@b.com", Role: models.RoleHero})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := verifier.Verify(tokenValue); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign secret, got %v", err)
	}
}

func TestTokenServiceRejectsGarbage(t *testing.T) {
	tokens := NewTokenService("test-secret-key", time.Hour)
	if _, err := tokens.Verify("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for garbage input, got %v", err)
	}
}
