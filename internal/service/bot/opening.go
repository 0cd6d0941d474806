package bot

import (
	"math/rand"

	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
)

// openingOffsets is walked in order relative to the center; the first empty
// cell is played.
var openingOffsets = [...][2]int{
	{0, 0},
	{0, 1}, {1, 0}, {1, 1}, {-1, -1},
	{1, -1}, {-1, 1}, {0, -1}, {-1, 0},
	{2, 0}, {0, 2}, {-2, 0}, {0, -2},
	{2, 2}, {-2, -2}, {2, -2}, {-2, 2},
}

// OpeningBookMove returns the book reply while fewer than moveLimit moves
// have been played.
func OpeningBookMove(board *domain.Board, moveCount, moveLimit int) (domain.Position, bool) {
	if moveCount >= moveLimit {
		return domain.Position{}, false
	}
	for _, off := range openingOffsets {
		pos := domain.Position{Row: domain.Center + off[0], Col: domain.Center + off[1]}
		if board.IsEmptyAt(pos.Row, pos.Col) {
			return pos, true
		}
	}
	return domain.Position{}, false
}

// randomCenterMove picks uniformly among empty cells in the square window of
// the given half-width around the center.
func randomCenterMove(board *domain.Board, window int, rng *rand.Rand) (domain.Position, bool) {
	var cells []domain.Position
	for r := domain.Center - window; r <= domain.Center+window; r++ {
		for c := domain.Center - window; c <= domain.Center+window; c++ {
			if board.IsEmptyAt(r, c) {
				cells = append(cells, domain.Position{Row: r, Col: c})
			}
		}
	}
	return pick(cells, rng)
}

// proximityMove picks uniformly among empty cells touching an opponent stone.
func proximityMove(board *domain.Board, color domain.Color, rng *rand.Rand) (domain.Position, bool) {
	opp := color.Opponent().Cell()
	var cells []domain.Position
	for _, pos := range domain.EmptyPositions(board) {
		near := false
		forEachInRadius(pos, 1, func(p domain.Position) {
			if board[p.Row][p.Col] == opp {
				near = true
			}
		})
		if near {
			cells = append(cells, pos)
		}
	}
	return pick(cells, rng)
}

func randomMove(board *domain.Board, rng *rand.Rand) (domain.Position, bool) {
	return pick(domain.EmptyPositions(board), rng)
}

func pick(cells []domain.Position, rng *rand.Rand) (domain.Position, bool) {
	if len(cells) == 0 {
		return domain.Position{}, false
	}
	return cells[rng.Intn(len(cells))], true
}
