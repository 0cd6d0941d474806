package match

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
	"github.com/iamasit07/5-in-a-row/backend/internal/service/decision"
)

const (
	ReasonFive = "five_in_a_row"
	ReasonDraw = "draw"
)

// Match is one human-vs-engine game held in memory.
type Match struct {
	ID           string
	Tier         domain.Tier
	HumanColor   domain.Color
	BotName      string
	Game         *domain.Game
	Reason       string
	CreatedAt    time.Time
	LastActivity time.Time
	FinishedAt   time.Time
	mu           sync.Mutex
	manager      *Manager
}

// State is the client-facing view of a match.
type State struct {
	MatchID     string              `json:"matchId"`
	Tier        domain.Tier         `json:"tier"`
	Opponent    string              `json:"opponent"`
	HumanColor  domain.Color        `json:"humanColor"`
	CurrentTurn domain.Color        `json:"currentTurn"`
	Status      domain.GameStatus   `json:"status"`
	Winner      string              `json:"winner,omitempty"`
	Reason      string              `json:"reason,omitempty"`
	WinningLine *domain.WinningLine `json:"winningLine,omitempty"`
	Board       [][]int             `json:"board"`
	History     []domain.Position   `json:"history"`
}

// MoveResult reports a human move and the engine reply it triggered.
type MoveResult struct {
	Human  domain.Position  `json:"human"`
	Engine *domain.Position `json:"engine,omitempty"`
	State  State            `json:"state"`
}

func (m *Match) EngineColor() domain.Color {
	return m.HumanColor.Opponent()
}

func (m *Match) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Match) snapshotLocked() State {
	st := State{
		MatchID:     m.ID,
		Tier:        m.Tier,
		Opponent:    m.BotName,
		HumanColor:  m.HumanColor,
		CurrentTurn: m.Game.CurrentTurn,
		Status:      m.Game.Status,
		Reason:      m.Reason,
		WinningLine: m.Game.WinningLine,
		Board:       m.Game.Board.Ints(),
		History:     m.Game.HistoryCopy(),
	}
	switch m.Game.Status {
	case domain.StatusWon:
		st.Winner = m.Game.Winner.String()
	case domain.StatusDraw:
		st.Winner = ReasonDraw
	}
	return st
}

// lastSeen is the latest of the last move and the finish time.
func (m *Match) lastSeen() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	last := m.LastActivity
	if m.Game.IsFinished() && m.FinishedAt.After(last) {
		last = m.FinishedAt
	}
	return last
}

func (m *Match) IsFinished() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Game.IsFinished()
}

// HandleMove applies the human move and, if the game goes on, lets the
// engine answer before returning.
func (m *Match) HandleMove(ctx context.Context, pos domain.Position) (MoveResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.Game.MakeMove(m.HumanColor, pos); err != nil {
		return MoveResult{}, fmt.Errorf("match %s: %w", m.ID, err)
	}
	m.LastActivity = time.Now()
	m.broadcastMove(m.HumanColor, pos)

	result := MoveResult{Human: pos}
	if m.Game.IsFinished() {
		m.finish()
		result.State = m.snapshotLocked()
		return result, nil
	}

	reply, err := m.engineMoveLocked(ctx)
	if err != nil {
		return MoveResult{}, err
	}
	result.Engine = reply
	result.State = m.snapshotLocked()
	return result, nil
}

// engineMoveLocked plays the engine's turn. Caller must hold m.mu.
func (m *Match) engineMoveLocked(ctx context.Context) (*domain.Position, error) {
	if m.Game.IsFinished() || m.Game.CurrentTurn != m.EngineColor() {
		return nil, nil
	}

	res, err := m.manager.decider.Decide(ctx, decision.Request{
		Board:   m.Game.Board,
		History: m.Game.HistoryCopy(),
		Color:   m.EngineColor(),
		Tier:    m.Tier,
		Hash:    m.Game.Hash,
	})
	if err != nil {
		return nil, fmt.Errorf("match %s: engine: %w", m.ID, err)
	}
	if !res.OK {
		return nil, nil
	}

	if err := m.Game.MakeMove(m.EngineColor(), res.Move); err != nil {
		return nil, fmt.Errorf("match %s: engine move %s: %w", m.ID, res.Move, err)
	}
	m.LastActivity = time.Now()
	m.broadcastMove(m.EngineColor(), res.Move)

	log.Debug().
		Str("component", "match").
		Str("match_id", m.ID).
		Str("move", res.Move.String()).
		Str("stage", string(res.Stage)).
		Bool("cached", res.Cached).
		Msg("engine moved")

	if m.Game.IsFinished() {
		m.finish()
	}
	move := res.Move
	return &move, nil
}

func (m *Match) finish() {
	m.FinishedAt = time.Now()
	m.Reason = ReasonDraw
	winner := ReasonDraw
	if m.Game.Status == domain.StatusWon {
		m.Reason = ReasonFive
		winner = m.Game.Winner.String()
	}

	log.Info().
		Str("component", "match").
		Str("match_id", m.ID).
		Str("winner", winner).
		Int("moves", m.Game.MoveCount()).
		Dur("duration", m.FinishedAt.Sub(m.CreatedAt)).
		Msg("match finished")

	m.notify(domain.ServerMessage{
		Type:        "game_over",
		MatchID:     m.ID,
		Winner:      winner,
		Reason:      m.Reason,
		Board:       m.Game.Board.Ints(),
		WinningLine: m.Game.WinningLine,
	})
}

func (m *Match) broadcastMove(color domain.Color, pos domain.Position) {
	move := pos
	msg := domain.ServerMessage{
		Type:    "move_made",
		MatchID: m.ID,
		Move:    &move,
		Player:  color.String(),
		Board:   m.Game.Board.Ints(),
	}
	if !m.Game.IsFinished() {
		msg.CurrentTurn = m.Game.CurrentTurn.String()
	}
	m.notify(msg)
}

func (m *Match) notify(msg domain.ServerMessage) {
	n := m.manager.notifier()
	if n == nil {
		return
	}
	if err := n.SendMessage(m.ID, msg); err != nil {
		log.Debug().Str("component", "match").Str("match_id", m.ID).Err(err).Msg("notify failed")
	}
}
