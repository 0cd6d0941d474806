package httputil

import (
	"errors"
	"net/http"
	"strings"
)

const TokenQueryParam = "token"

var ErrNoToken = errors.New("no match token found in header or query")

// GetTokenFromRequest extracts the match token from the Authorization header,
// falling back to the query string for websocket upgrades.
func GetTokenFromRequest(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		// Support "Bearer <token>" format
		if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
			return strings.TrimSpace(token), nil
		}
		return authHeader, nil
	}

	if token := r.URL.Query().Get(TokenQueryParam); token != "" {
		return token, nil
	}

	return "", ErrNoToken
}
