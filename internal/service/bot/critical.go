package bot

import "github.com/iamasit07/5-in-a-row/backend/internal/domain"

// FindWinningMove returns the first empty cell, in row-major order, where a
// stone of color completes five.
func FindWinningMove(board *domain.Board, color domain.Color) (domain.Position, bool) {
	if !color.Valid() {
		return domain.Position{}, false
	}
	cell := color.Cell()
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if board[r][c] == domain.Empty && domain.MakesFive(board, r, c, cell) {
				return domain.Position{Row: r, Col: c}, true
			}
		}
	}
	return domain.Position{}, false
}

// FindFour returns the empty cell where color would make a run of exactly
// four that can still become five next move. Open fours (both ends free) are
// preferred over closed ones; within each kind the scan is row-major. open
// reports which kind was found.
func FindFour(board *domain.Board, color domain.Color) (pos domain.Position, open bool, ok bool) {
	if !color.Valid() {
		return domain.Position{}, false, false
	}
	cell := color.Cell()
	closed, haveClosed := domain.Position{}, false
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if board[r][c] != domain.Empty {
				continue
			}
			switch fourEnds(board, r, c, cell) {
			case 2:
				return domain.Position{Row: r, Col: c}, true, true
			case 1:
				if !haveClosed {
					closed, haveClosed = domain.Position{Row: r, Col: c}, true
				}
			}
		}
	}
	return closed, false, haveClosed
}

// fourEnds places cell at (row, col) and returns the most free ends any run
// of exactly four through it has; 0 when no such run exists.
func fourEnds(board *domain.Board, row, col int, cell domain.Cell) int {
	board[row][col] = cell
	defer func() { board[row][col] = domain.Empty }()

	best := 0
	for _, dir := range domain.Directions {
		if domain.CountBidirectional(board, row, col, dir.DRow, dir.DCol, cell) != 4 {
			continue
		}
		fwd := domain.CountRun(board, row, col, dir.DRow, dir.DCol, cell)
		bwd := domain.CountRun(board, row, col, -dir.DRow, -dir.DCol, cell)
		free := 0
		if board.IsEmptyAt(row+dir.DRow*(fwd+1), col+dir.DCol*(fwd+1)) {
			free++
		}
		if board.IsEmptyAt(row-dir.DRow*(bwd+1), col-dir.DCol*(bwd+1)) {
			free++
		}
		best = max(best, free)
	}
	return best
}

// FindOpenThreeBlock looks for a run of exactly three stones of color with
// both ends empty and returns the end closest to the center.
func FindOpenThreeBlock(board *domain.Board, color domain.Color) (domain.Position, bool) {
	if !color.Valid() {
		return domain.Position{}, false
	}
	cell := color.Cell()
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if board[r][c] != cell {
				continue
			}
			for _, dir := range domain.Directions {
				// only start from the backward end so each run is seen once
				if board.At(r-dir.DRow, c-dir.DCol) == cell {
					continue
				}
				if domain.CountRun(board, r, c, dir.DRow, dir.DCol, cell) != 2 {
					continue
				}
				if !domain.IsOpen(board, r, c, dir.DRow, dir.DCol) {
					continue
				}
				before := domain.Position{Row: r - dir.DRow, Col: c - dir.DCol}
				after := domain.Position{Row: r + 3*dir.DRow, Col: c + 3*dir.DCol}
				if centerDistance(after) < centerDistance(before) {
					return after, true
				}
				return before, true
			}
		}
	}
	return domain.Position{}, false
}
