package websocket

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/iamasit07/5-in-a-row/backend/internal/config"
	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
	"github.com/iamasit07/5-in-a-row/backend/internal/service/decision"
	"github.com/iamasit07/5-in-a-row/backend/internal/service/match"
	"github.com/iamasit07/5-in-a-row/backend/pkg/auth"
)

type testServer struct {
	url     string
	matches *match.Manager
	conns   *ConnectionManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	prev := config.AppConfig
	config.AppConfig = &config.Config{JWTSecret: "ws-secret", MatchTokenTTL: time.Hour}
	t.Cleanup(func() { config.AppConfig = prev })

	matches := match.NewManager(decision.NewService(nil, 0, 2*time.Second))
	conns := NewConnectionManager()
	matches.SetNotifier(conns)

	router := gin.New()
	router.GET("/ws", NewHandler(conns, matches).HandleWebSocket)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		url:     "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws",
		matches: matches,
		conns:   conns,
	}
}

func (s *testServer) dial(t *testing.T) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(s.url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) domain.ServerMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg domain.ServerMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	return msg
}

func TestWebSocketMatchFlow(t *testing.T) {
	s := newTestServer(t)
	m, err := s.matches.CreateMatch(context.Background(), domain.Normal, domain.ColorBlack)
	if err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}
	token, err := auth.GenerateMatchToken(m.ID, domain.ColorBlack)
	if err != nil {
		t.Fatalf("GenerateMatchToken: %v", err)
	}

	conn := s.dial(t)
	if err := conn.WriteJSON(domain.ClientMessage{Type: "init", Token: token}); err != nil {
		t.Fatalf("write init: %v", err)
	}
	state := readMessage(t, conn)
	if state.Type != "match_state" || state.MatchID != m.ID || state.YourColor != "black" {
		t.Fatalf("unexpected state message %+v", state)
	}

	if err := conn.WriteJSON(domain.ClientMessage{Type: "make_move", Row: 7, Col: 7}); err != nil {
		t.Fatalf("write move: %v", err)
	}
	human := readMessage(t, conn)
	if human.Type != "move_made" || human.Player != "black" || *human.Move != (domain.Position{Row: 7, Col: 7}) {
		t.Fatalf("unexpected human move message %+v", human)
	}
	reply := readMessage(t, conn)
	if reply.Type != "move_made" || reply.Player != "white" || reply.CurrentTurn != "black" {
		t.Fatalf("unexpected engine move message %+v", reply)
	}

	if err := conn.WriteJSON(domain.ClientMessage{Type: "make_move", Row: 7, Col: 7}); err != nil {
		t.Fatalf("write move: %v", err)
	}
	if msg := readMessage(t, conn); msg.Type != "error" {
		t.Fatalf("expected an error for an occupied cell, got %+v", msg)
	}
}

func TestWebSocketRejectsBadToken(t *testing.T) {
	s := newTestServer(t)
	conn := s.dial(t)

	if err := conn.WriteJSON(domain.ClientMessage{Type: "init", Token: "not-a-token"}); err != nil {
		t.Fatalf("write init: %v", err)
	}
	msg := readMessage(t, conn)
	if msg.Type != "error" {
		t.Fatalf("expected error, got %+v", msg)
	}
	if s.conns.Count() != 0 {
		t.Fatalf("rejected socket must not be registered")
	}
}

func TestSendMessageWithoutConnection(t *testing.T) {
	cm := NewConnectionManager()
	if err := cm.SendMessage("nobody", domain.ServerMessage{Type: "move_made"}); err != nil {
		t.Fatalf("sending to an unwatched match should be a no-op, got %v", err)
	}
}
