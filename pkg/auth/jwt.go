package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iamasit07/5-in-a-row/backend/internal/config"
	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
)

var ErrInvalidToken = errors.New("invalid match token")

// MatchClaims binds a client to one match and the color it plays.
type MatchClaims struct {
	MatchID string       `json:"match_id"`
	Color   domain.Color `json:"color"`
	jwt.RegisteredClaims
}

// GenerateMatchToken creates the HS256 token handed out on match creation.
func GenerateMatchToken(matchID string, color domain.Color) (string, error) {
	secret := config.AppConfig.JWTSecret
	ttl := config.AppConfig.MatchTokenTTL

	claims := &MatchClaims{
		MatchID: matchID,
		Color:   color,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        GenerateToken(),
			Subject:   matchID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateMatchToken validates a match token and returns its claims
func ValidateMatchToken(tokenString string) (*MatchClaims, error) {
	secret := config.AppConfig.JWTSecret

	token, err := jwt.ParseWithClaims(tokenString, &MatchClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*MatchClaims); ok && token.Valid && claims.MatchID != "" {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
