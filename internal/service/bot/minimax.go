package bot

import (
	"context"
	"math"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
)

const (
	MINIMAX_WIN  = 1000000.0
	MINIMAX_LOSS = -1000000.0
	MINIMAX_DRAW = 0.0
)

// searcher runs one alpha-beta search. It is not shared between goroutines;
// parallel root evaluation gives every subtree its own searcher and board.
// The deadline is checked on every node.
type searcher struct {
	ctx     context.Context
	cfg     *TierConfig
	self    domain.Color
	phase   GamePhase
	nodes   int
	expired bool
}

func newSearcher(ctx context.Context, cfg *TierConfig, self domain.Color, phase GamePhase) *searcher {
	return &searcher{ctx: ctx, cfg: cfg, self: self, phase: phase}
}

func (s *searcher) timeUp() bool {
	if s.expired {
		return true
	}
	s.nodes++
	if s.ctx.Err() != nil {
		s.expired = true
	}
	return s.expired
}

// minimax returns the value of board for the engine with depth plies left.
// Exhausted leaves are neutral (0); only forced wins and losses found inside
// the horizon move the value.
func (s *searcher) minimax(board *domain.Board, depth int, stones int, alpha, beta float64, isMaximizing bool) float64 {
	if depth == 0 || s.timeUp() {
		return MINIMAX_DRAW
	}

	mover := s.self
	if !isMaximizing {
		mover = s.self.Opponent()
	}
	cell := mover.Cell()

	moves := s.cfg.RankMoves(board, mover, s.phase, stones)
	if len(moves) == 0 {
		return MINIMAX_DRAW
	}

	// Check for an immediate win before truncating to the breadth cap
	for _, m := range moves {
		if domain.MakesFive(board, m.Pos.Row, m.Pos.Col, cell) {
			if isMaximizing {
				return MINIMAX_WIN + float64(depth) // Prefer quicker wins
			}
			return MINIMAX_LOSS - float64(depth) // Prefer delaying losses
		}
	}

	if k := s.cfg.breadthAt(depth); len(moves) > k {
		moves = moves[:k]
	}

	if isMaximizing {
		maxEval := math.Inf(-1)
		for _, m := range moves {
			board[m.Pos.Row][m.Pos.Col] = cell
			eval := s.minimax(board, depth-1, stones+1, alpha, beta, false)
			board[m.Pos.Row][m.Pos.Col] = domain.Empty

			maxEval = max(maxEval, eval)
			alpha = max(alpha, eval)
			if beta <= alpha || s.expired {
				break // Beta cutoff
			}
		}
		return maxEval
	}

	minEval := math.Inf(1)
	for _, m := range moves {
		board[m.Pos.Row][m.Pos.Col] = cell
		eval := s.minimax(board, depth-1, stones+1, alpha, beta, true)
		board[m.Pos.Row][m.Pos.Col] = domain.Empty

		minEval = min(minEval, eval)
		beta = min(beta, eval)
		if beta <= alpha || s.expired {
			break // Alpha cutoff
		}
	}
	return minEval
}

// SearchResult is the outcome of a gated root search.
type SearchResult struct {
	Move     ScoredMove
	Final    float64
	Searched int
	Nodes    int
	TimedOut bool
}

// searchRoot ranks the root candidates, looks ahead on those whose heuristic
// score clears the tier threshold and returns the one maximising
// heuristic + future*weight.
func searchRoot(ctx context.Context, cfg *TierConfig, board domain.Board, color domain.Color, phase GamePhase, stones int) (SearchResult, bool) {
	ranked := cfg.RankMoves(&board, color, phase, stones)
	if len(ranked) == 0 {
		return SearchResult{}, false
	}
	if cfg.Breadth > 0 && len(ranked) > cfg.Breadth {
		ranked = ranked[:cfg.Breadth]
	}

	finals := make([]float64, len(ranked))
	searched := make([]bool, len(ranked))
	var nodes atomic.Int64
	var timedOut atomic.Bool

	evaluate := func(i int) {
		m := ranked[i]
		finals[i] = m.Score
		if cfg.SearchDepth <= 0 || m.Score <= cfg.SearchThreshold {
			return
		}
		// subtrees still queued when the deadline passes keep their heuristic
		if ctx.Err() != nil {
			timedOut.Store(true)
			return
		}
		child := board
		child[m.Pos.Row][m.Pos.Col] = color.Cell()
		s := newSearcher(ctx, cfg, color, phase)
		future := s.minimax(&child, cfg.SearchDepth, stones+1, math.Inf(-1), math.Inf(1), false)
		finals[i] = m.Score + future*cfg.FutureWeight
		searched[i] = true
		nodes.Add(int64(s.nodes))
		if s.expired {
			timedOut.Store(true)
		}
	}

	if cfg.ParallelSearch && len(ranked) > 1 {
		g := new(errgroup.Group)
		g.SetLimit(runtime.NumCPU())
		for i := range ranked {
			i := i
			g.Go(func() error {
				evaluate(i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range ranked {
			evaluate(i)
		}
	}

	best := 0
	count := 0
	for i := range ranked {
		if searched[i] {
			count++
		}
		if finals[i] > finals[best] {
			best = i
		}
	}

	return SearchResult{
		Move:     ranked[best],
		Final:    finals[best],
		Searched: count,
		Nodes:    int(nodes.Load()),
		TimedOut: timedOut.Load(),
	}, true
}
