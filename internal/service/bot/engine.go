package bot

import (
	"context"
	"math/rand"
	"time"

	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
)

// Stage names the step of the decision chain that produced a move.
type Stage string

const (
	StageWin           Stage = "win"
	StageBlockWin      Stage = "block_win"
	StageFour          Stage = "four"
	StageBlockFour     Stage = "block_four"
	StageBlockThree    Stage = "block_open_three"
	StageOpeningRandom Stage = "opening_random"
	StageOpeningBook   Stage = "opening_book"
	StageSearch        Stage = "search"
	StageProximity     Stage = "proximity"
	StageRandom        Stage = "random"
	StageNone          Stage = "none"
)

// Decision carries the chosen move and how it was found.
type Decision struct {
	Move     domain.Position
	OK       bool
	Stage    Stage
	Score    float64
	Nodes    int
	Searched int
	TimedOut bool
	Phase    GamePhase
	Elapsed  time.Duration
}

// Engine plays one color at one tier. It keeps no state between calls other
// than its random source, so it must not be shared across goroutines.
type Engine struct {
	tier  domain.Tier
	color domain.Color
	cfg   TierConfig
	rng   *rand.Rand
	steps []step
}

type Option func(*Engine)

// WithRand replaces the random source used by the randomized tiers.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// NewEngine builds the engine for tier acting as color. Normal, Hard and
// Expert reject a color that is neither black nor white; Beginner and Easy
// accept it and degrade to random play.
func NewEngine(tier domain.Tier, color domain.Color, opts ...Option) (*Engine, error) {
	cfg, ok := ConfigFor(tier)
	if !ok {
		return nil, domain.ErrUnknownTier
	}
	if cfg.ValidateColor && !color.Valid() {
		return nil, domain.ErrInvalidColor
	}

	e := &Engine{
		tier:  tier,
		color: color,
		cfg:   cfg,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.steps = buildSteps(&e.cfg)
	return e, nil
}

func (e *Engine) Tier() domain.Tier   { return e.tier }
func (e *Engine) Color() domain.Color { return e.color }
func (e *Engine) Config() TierConfig  { return e.cfg }

// Deterministic reports whether identical inputs always give the same move.
func (e *Engine) Deterministic() bool {
	return e.cfg.RandomOpeningWindow == 0 && !e.cfg.ProximityFallback && e.cfg.Heuristics
}

// Decide returns the engine's move, or false when the board has no empty
// cell left.
func (e *Engine) Decide(ctx context.Context, board domain.Board, history []domain.Position) (domain.Position, bool) {
	d := e.Analyze(ctx, board, history)
	return d.Move, d.OK
}

// Analyze runs the decision chain and reports which stage answered. The
// caller's board is never modified.
func (e *Engine) Analyze(ctx context.Context, board domain.Board, history []domain.Position) Decision {
	start := time.Now()
	if e.cfg.Timeout > 0 {
		if _, has := ctx.Deadline(); !has {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
			defer cancel()
		}
	}

	t := &turn{
		board:     board,
		moveCount: len(history),
		stones:    domain.StoneCount(&board),
		color:     e.color,
	}
	t.phase = e.cfg.PhaseOf(t.moveCount)

	decision := Decision{Stage: StageNone, Phase: t.phase}
	if t.stones == domain.Size*domain.Size {
		decision.Elapsed = time.Since(start)
		return decision
	}

	for _, s := range e.steps {
		if d, ok := s(ctx, e, t); ok {
			decision = d
			decision.OK = true
			decision.Phase = t.phase
			break
		}
	}

	if !decision.OK {
		// every tier ends in a stage that always answers on a non-full board;
		// this only guards against a misconfigured table
		if pos, ok := randomMove(&t.board, e.rng); ok {
			decision = Decision{Move: pos, OK: true, Stage: StageRandom, Phase: t.phase}
		}
	}
	decision.Elapsed = time.Since(start)
	return decision
}

// Decide is the one-shot form: build the engine for tier and color and ask
// it for a move.
func Decide(ctx context.Context, board domain.Board, history []domain.Position, color domain.Color, tier domain.Tier) (domain.Position, bool, error) {
	engine, err := NewEngine(tier, color)
	if err != nil {
		return domain.Position{}, false, err
	}
	pos, ok := engine.Decide(ctx, board, history)
	return pos, ok, nil
}
