package match

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
	"github.com/iamasit07/5-in-a-row/backend/internal/service/decision"
	"github.com/iamasit07/5-in-a-row/backend/pkg/uid"
)

// Decider produces engine moves.
type Decider interface {
	Decide(ctx context.Context, req decision.Request) (decision.Result, error)
}

// Notifier pushes server messages to whoever watches a match.
type Notifier interface {
	SendMessage(matchID string, message domain.ServerMessage) error
}

// Manager owns the active matches.
type Manager struct {
	matches map[string]*Match
	mu      sync.RWMutex
	decider Decider

	notifierMu sync.RWMutex
	notif      Notifier
}

func NewManager(decider Decider) *Manager {
	return &Manager{
		matches: make(map[string]*Match),
		decider: decider,
	}
}

// SetNotifier wires the push channel once the transport exists.
func (mm *Manager) SetNotifier(n Notifier) {
	mm.notifierMu.Lock()
	defer mm.notifierMu.Unlock()
	mm.notif = n
}

func (mm *Manager) notifier() Notifier {
	mm.notifierMu.RLock()
	defer mm.notifierMu.RUnlock()
	return mm.notif
}

// CreateMatch starts a match against the engine at tier. When the human
// takes white the engine opens before this returns.
func (mm *Manager) CreateMatch(ctx context.Context, tier domain.Tier, humanColor domain.Color) (*Match, error) {
	if !tier.Valid() {
		return nil, fmt.Errorf("create match: %w", domain.ErrUnknownTier)
	}
	if !humanColor.Valid() {
		return nil, fmt.Errorf("create match: %w", domain.ErrInvalidColor)
	}

	now := time.Now()
	m := &Match{
		ID:           uid.GenerateMatchID(),
		Tier:         tier,
		HumanColor:   humanColor,
		BotName:      domain.GetBotName(tier),
		Game:         domain.NewGame(),
		CreatedAt:    now,
		LastActivity: now,
		manager:      mm,
	}

	m.mu.Lock()
	_, err := m.engineMoveLocked(ctx)
	m.mu.Unlock()
	if err != nil {
		return nil, err
	}

	mm.mu.Lock()
	mm.matches[m.ID] = m
	mm.mu.Unlock()

	log.Info().
		Str("component", "match").
		Str("match_id", m.ID).
		Str("tier", tier.String()).
		Str("human", humanColor.String()).
		Msg("match created")
	return m, nil
}

func (mm *Manager) GetMatch(id string) (*Match, error) {
	mm.mu.RLock()
	defer mm.mu.RUnlock()

	m, ok := mm.matches[id]
	if !ok {
		return nil, fmt.Errorf("match %s: %w", id, domain.ErrMatchNotFound)
	}
	return m, nil
}

func (mm *Manager) RemoveMatch(id string) error {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	if _, ok := mm.matches[id]; !ok {
		return fmt.Errorf("match %s: %w", id, domain.ErrMatchNotFound)
	}
	delete(mm.matches, id)
	log.Debug().Str("component", "match").Str("match_id", id).Msg("match removed")
	return nil
}

func (mm *Manager) Count() int {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	return len(mm.matches)
}

// CleanupOldMatches drops matches with no activity for longer than idle,
// finished or not. It returns how many were removed. The manager lock is
// never held while waiting on a match's own lock.
func (mm *Manager) CleanupOldMatches(idle time.Duration) int {
	mm.mu.RLock()
	candidates := make([]*Match, 0, len(mm.matches))
	for _, m := range mm.matches {
		candidates = append(candidates, m)
	}
	mm.mu.RUnlock()

	now := time.Now()
	stale := make([]*Match, 0)
	for _, m := range candidates {
		if now.Sub(m.lastSeen()) > idle {
			stale = append(stale, m)
		}
	}
	if len(stale) == 0 {
		return 0
	}

	count := 0
	mm.mu.Lock()
	for _, m := range stale {
		// a match replaced under the same id since the scan stays
		if mm.matches[m.ID] == m {
			delete(mm.matches, m.ID)
			count++
		}
	}
	mm.mu.Unlock()

	if count > 0 {
		log.Info().Str("component", "match").Int("removed", count).Msg("stale matches cleaned up")
	}
	return count
}
