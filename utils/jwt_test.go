package utils

import (
	"testing"
	"time"
)

func TestGenerateAndParseJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT("buyer@example.com")
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	claims, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("ParseJWT() error = %v", err)
	}
	if claims.Email != "buyer@example.com" {
		t.Errorf("email claim = %q, want buyer@example.com", claims.Email)
	}
	if claims.Issuer != "foodlane" {
		t.Errorf("issuer = %q, want foodlane", claims.Issuer)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 71*time.Hour || ttl > 73*time.Hour {
		t.Errorf("default expiry %v away, want about 72h", ttl)
	}
}

func TestJWTConfigurableTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_TTL_HOURS", "2")

	token, err := GenerateJWT("buyer@example.com")
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}
	claims, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("ParseJWT() error = %v", err)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 1*time.Hour || ttl > 3*time.Hour {
		t.Errorf("expiry %v away, want about 2h", ttl)
	}
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateJWT("buyer@example.com")
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	t.Setenv("JWT_SECRET", "another-secret")
	if _, err := ParseJWT(token); err == nil {
		t.Error("ParseJWT() accepted a token signed with a different secret")
	}
}
