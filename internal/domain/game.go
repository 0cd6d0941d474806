package domain

type Game struct {
	Board       Board
	History     []Position
	CurrentTurn Color
	Status      GameStatus
	Winner      Color
	WinningLine *WinningLine
	// Hash is the Zobrist hash of Board, kept in step with every move.
	Hash        uint64
}

// NewGame starts an empty game; black always moves first.
func NewGame() *Game {
	return &Game{
		Board:       NewBoard(),
		History:     []Position{},
		CurrentTurn: ColorBlack,
		Status:      StatusActive,
	}
}

func (g *Game) MoveCount() int {
	return len(g.History)
}

func (g *Game) MakeMove(color Color, pos Position) error {
	if g.Status != StatusActive {
		return ErrGameFinished
	}
	if color != g.CurrentTurn {
		return ErrNotYourTurn
	}
	if err := ValidateMove(&g.Board, pos); err != nil {
		return err
	}

	g.Board = Place(g.Board, pos.Row, pos.Col, color)
	g.Hash = UpdateHash(g.Hash, pos.Row, pos.Col, color.Cell())
	g.History = append(g.History, pos)

	if line, won := FindWinningLine(&g.Board, pos); won {
		g.Status = StatusWon
		g.Winner = color
		g.WinningLine = &line
		return nil
	}

	if IsBoardFull(&g.Board) {
		g.Status = StatusDraw
		return nil
	}

	g.CurrentTurn = color.Opponent()
	return nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}

// HistoryCopy returns the move list detached from the game so callers can
// hand it to the engine while the game keeps evolving.
func (g *Game) HistoryCopy() []Position {
	history := make([]Position, len(g.History))
	copy(history, g.History)
	return history
}
