package bot

import (
	"context"

	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
)

// turn is the per-call view of the position. board is a private copy that
// stages may use as scratch space.
type turn struct {
	board     domain.Board
	moveCount int
	stones    int
	color     domain.Color
	phase     GamePhase
}

// step is one guarded strategy of the decision chain.
type step func(ctx context.Context, e *Engine, t *turn) (Decision, bool)

func found(pos domain.Position, ok bool, stage Stage) (Decision, bool) {
	if !ok {
		return Decision{}, false
	}
	return Decision{Move: pos, Stage: stage}, true
}

func buildSteps(cfg *TierConfig) []step {
	steps := []step{winStep}
	if cfg.BlockWins {
		steps = append(steps, blockWinStep)
	}
	if cfg.ForcedFours {
		steps = append(steps, fourStep, blockFourStep)
	}
	if cfg.OpenThreeBlock {
		steps = append(steps, blockOpenThreeStep)
	}
	if cfg.RandomOpeningWindow > 0 {
		steps = append(steps, randomOpeningStep)
	}
	if cfg.OpeningBook {
		steps = append(steps, openingBookStep)
	}
	if cfg.Heuristics {
		steps = append(steps, searchStep)
	}
	if cfg.ProximityFallback {
		steps = append(steps, proximityStep)
	}
	return append(steps, randomStep)
}

func winStep(_ context.Context, _ *Engine, t *turn) (Decision, bool) {
	pos, ok := FindWinningMove(&t.board, t.color)
	return found(pos, ok, StageWin)
}

func blockWinStep(_ context.Context, _ *Engine, t *turn) (Decision, bool) {
	if !t.color.Valid() {
		return Decision{}, false
	}
	pos, ok := FindWinningMove(&t.board, t.color.Opponent())
	return found(pos, ok, StageBlockWin)
}

func fourStep(_ context.Context, _ *Engine, t *turn) (Decision, bool) {
	pos, _, ok := FindFour(&t.board, t.color)
	return found(pos, ok, StageFour)
}

func blockFourStep(_ context.Context, _ *Engine, t *turn) (Decision, bool) {
	pos, _, ok := FindFour(&t.board, t.color.Opponent())
	return found(pos, ok, StageBlockFour)
}

func blockOpenThreeStep(_ context.Context, _ *Engine, t *turn) (Decision, bool) {
	pos, ok := FindOpenThreeBlock(&t.board, t.color.Opponent())
	return found(pos, ok, StageBlockThree)
}

// randomOpeningStep plays near the center on the engine's first move.
func randomOpeningStep(_ context.Context, e *Engine, t *turn) (Decision, bool) {
	if t.moveCount >= e.cfg.OpeningMoves {
		return Decision{}, false
	}
	pos, ok := randomCenterMove(&t.board, e.cfg.RandomOpeningWindow, e.rng)
	return found(pos, ok, StageOpeningRandom)
}

func openingBookStep(_ context.Context, e *Engine, t *turn) (Decision, bool) {
	pos, ok := OpeningBookMove(&t.board, t.moveCount, e.cfg.OpeningMoves)
	return found(pos, ok, StageOpeningBook)
}

func searchStep(ctx context.Context, e *Engine, t *turn) (Decision, bool) {
	result, ok := searchRoot(ctx, &e.cfg, t.board, t.color, t.phase, t.stones)
	if !ok {
		return Decision{}, false
	}
	return Decision{
		Move:     result.Move.Pos,
		Stage:    StageSearch,
		Score:    result.Final,
		Nodes:    result.Nodes,
		Searched: result.Searched,
		TimedOut: result.TimedOut,
	}, true
}

func proximityStep(_ context.Context, e *Engine, t *turn) (Decision, bool) {
	if !t.color.Valid() {
		return Decision{}, false
	}
	pos, ok := proximityMove(&t.board, t.color, e.rng)
	return found(pos, ok, StageProximity)
}

func randomStep(_ context.Context, e *Engine, t *turn) (Decision, bool) {
	pos, ok := randomMove(&t.board, e.rng)
	return found(pos, ok, StageRandom)
}
