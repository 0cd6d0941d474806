package domain

// ValidateMove is the legality gate callers run before Place: the position
// must be on the board and the cell empty.
func ValidateMove(board *Board, pos Position) error {
	if !pos.Valid() {
		return ErrOutOfRange
	}
	if board[pos.Row][pos.Col] != Empty {
		return ErrCellOccupied
	}
	return nil
}
