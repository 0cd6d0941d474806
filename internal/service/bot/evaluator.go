package bot

import (
	"sort"

	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
)

// ScoredMove is a candidate with its single-ply heuristic score.
type ScoredMove struct {
	Pos   domain.Position `json:"pos"`
	Score float64         `json:"score"`
}

// ScoreMove is the single-ply heuristic value of color playing pos. The
// board must have pos empty; it is used as scratch space and restored.
func (c *TierConfig) ScoreMove(board *domain.Board, pos domain.Position, color domain.Color, phase GamePhase, stones int) float64 {
	offense, defense, tactical := c.evaluatePatterns(board, pos, color)
	pw := c.phaseWeights(phase)

	positional := c.centerBonus(pos) +
		c.territoryScore(board, pos, color) +
		c.proximityBonus(board, pos, color)

	return offense*pw.Offense +
		defense*pw.Defense +
		tactical +
		positional*pw.Positional +
		c.endgameBonus(board, pos, color, stones)
}

// candidates lists the empty cells worth considering: those near an existing
// stone, or the center on an empty board.
func (c *TierConfig) candidates(board *domain.Board) []domain.Position {
	radius := c.CandidateRadius
	if radius <= 0 {
		radius = 2
	}
	var cells []domain.Position
	for r := 0; r < domain.Size; r++ {
		for col := 0; col < domain.Size; col++ {
			if board[r][col] != domain.Empty {
				continue
			}
			pos := domain.Position{Row: r, Col: col}
			if hasNeighbor(board, pos, radius) {
				cells = append(cells, pos)
			}
		}
	}
	if len(cells) > 0 {
		return cells
	}
	if board.IsEmptyAt(domain.Center, domain.Center) && domain.StoneCount(board) == 0 {
		return []domain.Position{{Row: domain.Center, Col: domain.Center}}
	}
	return domain.EmptyPositions(board)
}

// RankMoves scores every candidate for color and sorts them best first. Ties
// go to the cell nearer the center, then to row-major order.
func (c *TierConfig) RankMoves(board *domain.Board, color domain.Color, phase GamePhase, stones int) []ScoredMove {
	cells := c.candidates(board)
	moves := make([]ScoredMove, 0, len(cells))
	for _, pos := range cells {
		moves = append(moves, ScoredMove{Pos: pos, Score: c.ScoreMove(board, pos, color, phase, stones)})
	}
	sortMoves(moves)
	return moves
}

func sortMoves(moves []ScoredMove) {
	sort.Slice(moves, func(i, j int) bool {
		a, b := moves[i], moves[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		da, db := centerDistance(a.Pos), centerDistance(b.Pos)
		if da != db {
			return da < db
		}
		if a.Pos.Row != b.Pos.Row {
			return a.Pos.Row < b.Pos.Row
		}
		return a.Pos.Col < b.Pos.Col
	})
}
