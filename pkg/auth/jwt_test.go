package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iamasit07/5-in-a-row/backend/internal/config"
	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
)

func setConfig(t *testing.T, secret string, ttl time.Duration) {
	t.Helper()
	prev := config.AppConfig
	config.AppConfig = &config.Config{JWTSecret: secret, MatchTokenTTL: ttl}
	t.Cleanup(func() { config.AppConfig = prev })
}

func TestMatchTokenRoundTrip(t *testing.T) {
	setConfig(t, "test-secret", time.Hour)

	token, err := GenerateMatchToken("abc123", domain.ColorWhite)
	if err != nil {
		t.Fatalf("GenerateMatchToken: %v", err)
	}
	claims, err := ValidateMatchToken(token)
	if err != nil {
		t.Fatalf("ValidateMatchToken: %v", err)
	}
	if claims.MatchID != "abc123" || claims.Color != domain.ColorWhite {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if claims.ID == "" {
		t.Fatalf("expected a token id")
	}
}

func TestMatchTokenRejectsWrongSecret(t *testing.T) {
	setConfig(t, "secret-one", time.Hour)
	token, err := GenerateMatchToken("abc123", domain.ColorBlack)
	if err != nil {
		t.Fatalf("GenerateMatchToken: %v", err)
	}

	config.AppConfig.JWTSecret = "secret-two"
	if _, err := ValidateMatchToken(token); err == nil {
		t.Fatalf("token signed with another secret must be rejected")
	}
}

func TestMatchTokenRejectsExpired(t *testing.T) {
	setConfig(t, "test-secret", -time.Minute)
	token, err := GenerateMatchToken("abc123", domain.ColorBlack)
	if err != nil {
		t.Fatalf("GenerateMatchToken: %v", err)
	}
	if _, err := ValidateMatchToken(token); err == nil {
		t.Fatalf("expired token must be rejected")
	}
}

func TestMatchTokenRejectsOtherAlgorithm(t *testing.T) {
	setConfig(t, "test-secret", time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &MatchClaims{MatchID: "abc123", Color: domain.ColorBlack})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	if _, err := ValidateMatchToken(signed); err == nil {
		t.Fatalf("unsigned token must be rejected")
	}
}
