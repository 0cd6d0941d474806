package domain

import (
	"fmt"
	"strings"
)

// Cell is the state of a single board intersection.
type Cell int8

const (
	Empty Cell = 0
	Black Cell = 1
	White Cell = 2
)

func (c Cell) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// Color is the side a player (or the engine) acts as. Unlike Cell it has no
// empty value; the zero Color is invalid.
type Color int8

const (
	ColorBlack Color = 1
	ColorWhite Color = 2
)

func (c Color) Valid() bool {
	return c == ColorBlack || c == ColorWhite
}

func (c Color) Opponent() Color {
	if c == ColorBlack {
		return ColorWhite
	}
	return ColorBlack
}

// Cell returns the board cell value stones of this color occupy.
func (c Color) Cell() Cell {
	return Cell(c)
}

func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorWhite:
		return "white"
	default:
		return fmt.Sprintf("color(%d)", int8(c))
	}
}

func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b", "1":
		return ColorBlack, nil
	case "white", "w", "2":
		return ColorWhite, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, ErrInvalidColor
	}
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Tier selects one of the five engine strengths.
type Tier int

const (
	Beginner Tier = iota
	Easy
	Normal
	Hard
	Expert
)

var Tiers = []Tier{Beginner, Easy, Normal, Hard, Expert}

var tierNames = map[Tier]string{
	Beginner: "beginner",
	Easy:     "easy",
	Normal:   "normal",
	Hard:     "hard",
	Expert:   "expert",
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tier(%d)", int(t))
}

func (t Tier) Valid() bool {
	_, ok := tierNames[t]
	return ok
}

func ParseTier(s string) (Tier, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for tier, name := range tierNames {
		if name == s {
			return tier, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTier, s)
}

func (t Tier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, ErrUnknownTier
	}
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(text []byte) error {
	parsed, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

var BotNames = map[Tier]string{
	Beginner: "Pebble",
	Easy:     "Alice",
	Normal:   "Bob",
	Hard:     "Charles",
	Expert:   "Diana",
}

func GetBotName(tier Tier) string {
	if name, ok := BotNames[tier]; ok {
		return name
	}
	return "BOT"
}

const (
	Size   = 15
	Center = Size / 2
	ToWin  = 5
)

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove   Error = "invalid move"
	ErrInvalidBoard  Error = "invalid board"
	ErrCellOccupied  Error = "cell is occupied"
	ErrOutOfRange    Error = "position out of range"
	ErrNotYourTurn   Error = "not your turn"
	ErrGameFinished  Error = "game is finished"
	ErrInvalidColor  Error = "invalid color: must be black or white"
	ErrUnknownTier   Error = "unknown tier"
	ErrMatchNotFound Error = "match not found"
)
