package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/5-in-a-row/backend/internal/config"
	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
	"github.com/iamasit07/5-in-a-row/backend/internal/service/match"
	"github.com/iamasit07/5-in-a-row/backend/pkg/auth"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

type Handler struct {
	ConnManager *ConnectionManager
	Matches     *match.Manager
	Upgrader    websocket.Upgrader
}

func NewHandler(cm *ConnectionManager, mm *match.Manager) *Handler {
	return &Handler{
		ConnManager: cm,
		Matches:     mm,
		Upgrader: websocket.Upgrader{
			CheckOrigin:     checkOrigin,
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || config.AppConfig == nil {
		return true
	}
	for _, allowed := range config.AppConfig.AllowedOrigins {
		if allowed == origin {
			return true
		}
	}
	return false
}

// HandleWebSocket upgrades the request; authentication happens on the
// first message.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Str("component", "ws").Err(err).Msg("upgrade failed")
		return
	}

	h.handleConnection(conn)
}

func (h *Handler) handleConnection(conn *websocket.Conn) {
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// 1. Wait for init with a match token
	_, data, err := conn.ReadMessage()
	if err != nil {
		log.Debug().Str("component", "ws").Err(err).Msg("read error during init")
		conn.Close()
		return
	}

	var message domain.ClientMessage
	if err := json.Unmarshal(data, &message); err != nil || message.Type != "init" || message.Token == "" {
		conn.WriteJSON(domain.ErrorMessage{Type: "error", Message: "Expected init message with token"})
		conn.Close()
		return
	}

	claims, err := auth.ValidateMatchToken(message.Token)
	if err != nil {
		conn.WriteJSON(domain.ErrorMessage{Type: "error", Message: "Invalid or expired match token"})
		conn.Close()
		return
	}

	m, err := h.Matches.GetMatch(claims.MatchID)
	if err != nil {
		conn.WriteJSON(domain.ErrorMessage{Type: "error", Message: "Match not found"})
		conn.Close()
		return
	}

	matchID := m.ID
	h.ConnManager.AddConnection(matchID, conn)
	log.Info().Str("component", "ws").Str("match_id", matchID).Msg("connection initialized")

	defer func() {
		log.Info().Str("component", "ws").Str("match_id", matchID).Msg("connection closed")
		h.ConnManager.RemoveConnectionIfMatching(matchID, conn)
	}()

	// 2. Keep-alive pinger
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := h.ConnManager.Ping(matchID, conn); err != nil {
					return
				}
			}
		}
	}()

	h.sendState(m)

	// 3. Main message loop
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Str("component", "ws").Str("match_id", matchID).Err(err).Msg("unexpected close")
			}
			return
		}

		var msg domain.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.sendError(matchID, "Invalid message format")
			continue
		}

		h.processMessage(m, claims.Color, msg)
	}
}

func (h *Handler) processMessage(m *match.Match, color domain.Color, msg domain.ClientMessage) {
	switch msg.Type {
	case "make_move":
		if color != m.HumanColor {
			h.sendError(m.ID, domain.ErrNotYourTurn.Error())
			return
		}
		// move_made and game_over are pushed by the match through the manager
		if _, err := m.HandleMove(context.Background(), domain.Position{Row: msg.Row, Col: msg.Col}); err != nil {
			h.sendError(m.ID, err.Error())
		}

	case "get_state":
		h.sendState(m)

	default:
		h.sendError(m.ID, "Unknown message type")
	}
}

func (h *Handler) sendState(m *match.Match) {
	st := m.Snapshot()
	msg := domain.ServerMessage{
		Type:        "match_state",
		MatchID:     st.MatchID,
		Opponent:    st.Opponent,
		YourColor:   st.HumanColor.String(),
		Board:       st.Board,
		Winner:      st.Winner,
		Reason:      st.Reason,
		WinningLine: st.WinningLine,
	}
	if st.Status == domain.StatusActive {
		msg.CurrentTurn = st.CurrentTurn.String()
	}
	h.ConnManager.SendMessage(m.ID, msg)
}

func (h *Handler) sendError(matchID, message string) {
	h.ConnManager.SendMessage(matchID, domain.ServerMessage{Type: "error", Message: message})
}
