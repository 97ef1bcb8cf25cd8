package util

import (
	"testing"
	"time"
)

func TestJWTManagerGenerateAndParse(t *testing.T) {
	manager := NewJWTManager("top-secret", time.Minute)

	token, expiresAt, err := manager.Generate("email_abc", "user@example.com", "Test User")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token to be non-empty")
	}
	if expiresAt.Before(time.Now()) {
		t.Fatalf("expected expiry in the future")
	}

	claims, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if claims.UserID != "email_abc" {
		t.Fatalf("expected user id email_abc, got %s", claims.UserID)
	}
	if claims.Email != "user@example.com" {
		t.Fatalf("expected email claim to round-trip, got %s", claims.Email)
	}
	if claims.DisplayName != "Test User" {
		t.Fatalf("expected display name claim to round-trip, got %s", claims.DisplayName)
	}
}

func TestJWTManagerParseExpiredToken(t *testing.T) {
	manager := NewJWTManager("secret", time.Millisecond)
	token, _, err := manager.Generate("google_xyz", "google.user@example.com", "Google User")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	time.Sleep(2 * time.Millisecond)

	if _, err := manager.Parse(token); err == nil {
		t.Fatalf("expected parse error for expired token")
	}
}

func TestJWTManagerParseWrongSecret(t *testing.T) {
	token, _, err := NewJWTManager("secret-a", time.Minute).Generate("email_1", "a@example.com", "")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if _, err := NewJWTManager("secret-b", time.Minute).Parse(token); err == nil {
		t.Fatalf("expected parse error for token signed with a different secret")
	}
}
