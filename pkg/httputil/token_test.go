package httputil

import (
	"errors"
	"net/http/httptest"
	"testing"
)

func TestGetTokenFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		target string
		header string
		want   string
	}{
		{"bearer header", "/api/matches/x/moves", "Bearer abc", "abc"},
		{"raw header", "/api/matches/x/moves", "abc", "abc"},
		{"query fallback", "/ws?token=xyz", "", "xyz"},
		{"header wins", "/ws?token=xyz", "Bearer abc", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			got, err := GetTokenFromRequest(r)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetTokenFromRequestMissing(t *testing.T) {
	r := httptest.NewRequest("GET", "/ws", nil)
	if _, err := GetTokenFromRequest(r); !errors.Is(err, ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
}
