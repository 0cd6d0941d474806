package bot

import (
	"math/rand"
	"testing"

	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
)

func TestOpeningBookMove(t *testing.T) {
	board := domain.NewBoard()
	pos, ok := OpeningBookMove(&board, 0, 4)
	if !ok || pos != (domain.Position{Row: 7, Col: 7}) {
		t.Fatalf("expected center, got %v (ok=%v)", pos, ok)
	}

	board = domain.Place(board, 7, 7, domain.ColorBlack)
	pos, ok = OpeningBookMove(&board, 1, 4)
	if !ok || pos != (domain.Position{Row: 7, Col: 8}) {
		t.Fatalf("expected (7,8), got %v (ok=%v)", pos, ok)
	}

	if _, ok := OpeningBookMove(&board, 4, 4); ok {
		t.Fatalf("book must stop once the move limit is reached")
	}
}

func TestOpeningBookFallsThroughWhenCovered(t *testing.T) {
	board := domain.NewBoard()
	for _, off := range openingOffsets {
		board = domain.Place(board, domain.Center+off[0], domain.Center+off[1], domain.ColorWhite)
	}
	if pos, ok := OpeningBookMove(&board, 0, 4); ok {
		t.Fatalf("expected no book move, got %v", pos)
	}
}

func TestRandomCenterMoveStaysInWindow(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	board := domain.NewBoard()
	for i := 0; i < 50; i++ {
		pos, ok := randomCenterMove(&board, 2, rng)
		if !ok {
			t.Fatalf("expected a move")
		}
		if abs(pos.Row-domain.Center) > 2 || abs(pos.Col-domain.Center) > 2 {
			t.Fatalf("move %v outside the 5x5 window", pos)
		}
	}
}

func TestProximityMoveTouchesOpponent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	board := placeAll(domain.NewBoard(), domain.ColorWhite, domain.Position{Row: 0, Col: 0})
	for i := 0; i < 20; i++ {
		pos, ok := proximityMove(&board, domain.ColorBlack, rng)
		if !ok {
			t.Fatalf("expected a move")
		}
		if pos.Row > 1 || pos.Col > 1 {
			t.Fatalf("move %v does not touch the white stone", pos)
		}
	}

	empty := domain.NewBoard()
	if _, ok := proximityMove(&empty, domain.ColorBlack, rng); ok {
		t.Fatalf("no opponent stones means no proximity move")
	}
}
