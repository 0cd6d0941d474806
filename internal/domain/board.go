package domain

import "fmt"

// Board is a fixed 15x15 grid. It is an array value, so assigning or passing
// a Board copies it and hypothetical branches never share cells.
type Board [Size][Size]Cell

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func (p Position) Valid() bool {
	return IsValidPosition(p.Row, p.Col)
}

// Direction is a forward axis vector; the backward sense is its negation.
type Direction struct {
	DRow int
	DCol int
}

var (
	Horizontal        = Direction{0, 1}
	Vertical          = Direction{1, 0}
	DiagonalDownRight = Direction{1, 1}
	DiagonalDownLeft  = Direction{1, -1}
)

var Directions = [4]Direction{Horizontal, Vertical, DiagonalDownRight, DiagonalDownLeft}

func (d Direction) Reverse() Direction {
	return Direction{-d.DRow, -d.DCol}
}

// WinningLine holds the five collinear stones of a completed five, ordered
// from the backward end of the run.
type WinningLine [ToWin]Position

func NewBoard() Board {
	return Board{}
}

func IsValidPosition(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

func (b *Board) At(row, col int) Cell {
	if !IsValidPosition(row, col) {
		return Empty
	}
	return b[row][col]
}

func (b *Board) IsEmptyAt(row, col int) bool {
	return IsValidPosition(row, col) && b[row][col] == Empty
}

// Place returns a copy of board with (row, col) overwritten by color. It does
// not check occupancy; out-of-range coordinates return the board unchanged.
func Place(board Board, row, col int, color Color) Board {
	if IsValidPosition(row, col) {
		board[row][col] = color.Cell()
	}
	return board
}

// CountRun counts stones of cell walking away from (row, col), not counting
// the anchor itself.
func CountRun(board *Board, row, col, dRow, dCol int, cell Cell) int {
	count := 0
	r, c := row+dRow, col+dCol
	for IsValidPosition(r, c) && board[r][c] == cell {
		count++
		r += dRow
		c += dCol
	}
	return count
}

func CountBidirectional(board *Board, row, col, dRow, dCol int, cell Cell) int {
	return CountRun(board, row, col, dRow, dCol, cell) + CountRun(board, row, col, -dRow, -dCol, cell) + 1
}

// IsOpen reports whether both cells just past the ends of the run through
// (row, col) are on the board and empty. The run's color is taken from the
// anchor cell.
func IsOpen(board *Board, row, col, dRow, dCol int) bool {
	cell := board.At(row, col)
	fwd := CountRun(board, row, col, dRow, dCol, cell)
	bwd := CountRun(board, row, col, -dRow, -dCol, cell)
	return board.IsEmptyAt(row+dRow*(fwd+1), col+dCol*(fwd+1)) &&
		board.IsEmptyAt(row-dRow*(bwd+1), col-dCol*(bwd+1))
}

// FindWinningLine returns the five-cell line through pos if the stone there is
// part of a run of five or more.
func FindWinningLine(board *Board, pos Position) (WinningLine, bool) {
	var line WinningLine
	cell := board.At(pos.Row, pos.Col)
	if cell == Empty {
		return line, false
	}

	for _, dir := range Directions {
		if CountBidirectional(board, pos.Row, pos.Col, dir.DRow, dir.DCol, cell) < ToWin {
			continue
		}
		// anchor the window at the backward end of the run so pos is inside it
		bwd := CountRun(board, pos.Row, pos.Col, -dir.DRow, -dir.DCol, cell)
		if bwd > ToWin-1 {
			bwd = ToWin - 1
		}
		startRow := pos.Row - dir.DRow*bwd
		startCol := pos.Col - dir.DCol*bwd
		for i := 0; i < ToWin; i++ {
			line[i] = Position{Row: startRow + dir.DRow*i, Col: startCol + dir.DCol*i}
		}
		return line, true
	}
	return line, false
}

// MakesFive reports whether placing cell at (row, col) would complete a run
// of at least five. The board is left untouched.
func MakesFive(board *Board, row, col int, cell Cell) bool {
	for _, dir := range Directions {
		if CountBidirectional(board, row, col, dir.DRow, dir.DCol, cell) >= ToWin {
			return true
		}
	}
	return false
}

func EmptyPositions(board *Board) []Position {
	positions := make([]Position, 0, Size*Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if board[r][c] == Empty {
				positions = append(positions, Position{Row: r, Col: c})
			}
		}
	}
	return positions
}

func StoneCount(board *Board) int {
	count := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if board[r][c] != Empty {
				count++
			}
		}
	}
	return count
}

func IsBoardFull(board *Board) bool {
	return StoneCount(board) == Size*Size
}

// Ints converts the board to a plain grid for JSON transport.
func (b *Board) Ints() [][]int {
	grid := make([][]int, Size)
	for r := range grid {
		grid[r] = make([]int, Size)
		for c := range grid[r] {
			grid[r][c] = int(b[r][c])
		}
	}
	return grid
}

func BoardFromInts(grid [][]int) (Board, error) {
	var board Board
	if len(grid) != Size {
		return board, fmt.Errorf("%w: board must have %d rows, got %d", ErrInvalidBoard, Size, len(grid))
	}
	for r, row := range grid {
		if len(row) != Size {
			return board, fmt.Errorf("%w: row %d must have %d columns, got %d", ErrInvalidBoard, r, Size, len(row))
		}
		for c, v := range row {
			cell := Cell(v)
			if cell != Empty && cell != Black && cell != White {
				return board, fmt.Errorf("%w: cell value %d at (%d,%d)", ErrInvalidBoard, v, r, c)
			}
			board[r][c] = cell
		}
	}
	return board, nil
}
