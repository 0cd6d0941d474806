package bot

import (
	"testing"

	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
)

func TestFindWinningMove(t *testing.T) {
	board := placeAll(domain.NewBoard(), domain.ColorBlack,
		domain.Position{Row: 2, Col: 2}, domain.Position{Row: 3, Col: 3},
		domain.Position{Row: 4, Col: 4}, domain.Position{Row: 5, Col: 5})

	pos, ok := FindWinningMove(&board, domain.ColorBlack)
	if !ok || pos != (domain.Position{Row: 1, Col: 1}) {
		t.Fatalf("expected (1,1), got %v (ok=%v)", pos, ok)
	}
	if _, ok := FindWinningMove(&board, domain.ColorWhite); ok {
		t.Fatalf("white has no winning move")
	}
	if _, ok := FindWinningMove(&board, domain.Color(0)); ok {
		t.Fatalf("invalid color must never report a win")
	}
}

func TestFindFour(t *testing.T) {
	board := placeAll(domain.NewBoard(), domain.ColorWhite, row(5, 4, 5, 6)...)
	pos, open, ok := FindFour(&board, domain.ColorWhite)
	if !ok || !open || pos != (domain.Position{Row: 5, Col: 3}) {
		t.Fatalf("expected open four at (5,3), got %v (open=%v ok=%v)", pos, open, ok)
	}

	// capped on one side the three still makes a closed four
	capped := placeAll(board, domain.ColorBlack, domain.Position{Row: 5, Col: 3})
	pos, open, ok = FindFour(&capped, domain.ColorWhite)
	if !ok || open || pos != (domain.Position{Row: 5, Col: 7}) {
		t.Fatalf("expected closed four at (5,7), got %v (open=%v ok=%v)", pos, open, ok)
	}

	dead := placeAll(capped, domain.ColorBlack, domain.Position{Row: 5, Col: 8})
	if pos, _, ok := FindFour(&dead, domain.ColorWhite); ok {
		t.Fatalf("a four with no free end cannot become five, got %v", pos)
	}

	if _, _, ok := FindFour(&board, domain.Color(0)); ok {
		t.Fatalf("invalid color must never report a four")
	}
}

func TestFindFourPrefersOpenOverEarlierClosed(t *testing.T) {
	// closed three in row 1 scans first, open three in row 9 comes later
	board := placeAll(domain.NewBoard(), domain.ColorBlack, row(1, 1, 2, 3)...)
	board = placeAll(board, domain.ColorWhite, domain.Position{Row: 1, Col: 0})
	board = placeAll(board, domain.ColorBlack, row(9, 6, 7, 8)...)

	pos, open, ok := FindFour(&board, domain.ColorBlack)
	if !ok || !open || pos != (domain.Position{Row: 9, Col: 5}) {
		t.Fatalf("expected open four at (9,5), got %v (open=%v ok=%v)", pos, open, ok)
	}
}

func TestFindOpenThreeBlockPrefersCenterSide(t *testing.T) {
	board := placeAll(domain.NewBoard(), domain.ColorBlack, row(2, 2, 3, 4)...)
	pos, ok := FindOpenThreeBlock(&board, domain.ColorBlack)
	if !ok {
		t.Fatalf("expected an open three")
	}
	if pos != (domain.Position{Row: 2, Col: 5}) {
		t.Fatalf("expected the end nearer the center (2,5), got %v", pos)
	}

	closed := placeAll(board, domain.ColorWhite, domain.Position{Row: 2, Col: 5})
	if pos, ok := FindOpenThreeBlock(&closed, domain.ColorBlack); ok {
		t.Fatalf("closed three must not be reported, got %v", pos)
	}
}

func TestFindOpenThreeBlockVertical(t *testing.T) {
	board := placeAll(domain.NewBoard(), domain.ColorWhite,
		domain.Position{Row: 9, Col: 10}, domain.Position{Row: 10, Col: 10}, domain.Position{Row: 11, Col: 10})
	pos, ok := FindOpenThreeBlock(&board, domain.ColorWhite)
	if !ok || pos != (domain.Position{Row: 8, Col: 10}) {
		t.Fatalf("expected (8,10), got %v (ok=%v)", pos, ok)
	}
}
