package domain

import "testing"

func TestNewBoardIsEmptyAndIndependent(t *testing.T) {
	a := NewBoard()
	b := NewBoard()
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if a[r][c] != Empty {
				t.Fatalf("expected empty cell at (%d,%d), got %v", r, c, a[r][c])
			}
		}
	}

	a[3][3] = Black
	if b[3][3] != Empty {
		t.Fatalf("boards from separate NewBoard calls share cells")
	}
}

func TestIsValidPosition(t *testing.T) {
	tests := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{14, 14, true},
		{7, 7, true},
		{-1, 0, false},
		{0, -1, false},
		{15, 0, false},
		{0, 15, false},
	}
	for _, tt := range tests {
		if got := IsValidPosition(tt.row, tt.col); got != tt.want {
			t.Errorf("IsValidPosition(%d,%d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestPlaceCopiesAndOverwrites(t *testing.T) {
	original := NewBoard()
	first := Place(original, 4, 5, ColorBlack)
	if original[4][5] != Empty {
		t.Fatalf("Place mutated its input board")
	}
	if first[4][5] != Black {
		t.Fatalf("expected black at (4,5), got %v", first[4][5])
	}

	second := Place(first, 4, 5, ColorWhite)
	if second[4][5] != White {
		t.Fatalf("expected second placement to overwrite with white, got %v", second[4][5])
	}
	if first[4][5] != Black {
		t.Fatalf("overwrite leaked into the earlier board")
	}
}

func TestPlaceOutOfRangeLeavesBoardUnchanged(t *testing.T) {
	board := Place(NewBoard(), 1, 1, ColorBlack)
	got := Place(board, 15, 3, ColorWhite)
	if got != board {
		t.Fatalf("out-of-range placement changed the board")
	}
	got = Place(board, -1, -1, ColorWhite)
	if got != board {
		t.Fatalf("negative placement changed the board")
	}
}

func TestCountRunAndBidirectional(t *testing.T) {
	board := NewBoard()
	for c := 3; c <= 6; c++ {
		board = Place(board, 7, c, ColorWhite)
	}

	if got := CountRun(&board, 7, 3, 0, 1, White); got != 3 {
		t.Fatalf("forward run from (7,3) = %d, want 3", got)
	}
	if got := CountRun(&board, 7, 3, 0, -1, White); got != 0 {
		t.Fatalf("backward run from (7,3) = %d, want 0", got)
	}
	if got := CountBidirectional(&board, 7, 5, 0, 1, White); got != 4 {
		t.Fatalf("bidirectional run through (7,5) = %d, want 4", got)
	}
	if got := CountBidirectional(&board, 7, 5, 1, 0, White); got != 1 {
		t.Fatalf("vertical run through (7,5) = %d, want 1", got)
	}
}

func TestCountRunStopsAtEdge(t *testing.T) {
	board := NewBoard()
	for c := 0; c < 3; c++ {
		board = Place(board, 0, c, ColorBlack)
	}
	if got := CountRun(&board, 0, 2, 0, -1, Black); got != 2 {
		t.Fatalf("run toward edge = %d, want 2", got)
	}
}

func TestIsOpen(t *testing.T) {
	board := NewBoard()
	for c := 5; c <= 7; c++ {
		board = Place(board, 7, c, ColorBlack)
	}
	if !IsOpen(&board, 7, 6, 0, 1) {
		t.Fatalf("expected three in the middle of row 7 to be open")
	}

	blocked := Place(board, 7, 8, ColorWhite)
	if IsOpen(&blocked, 7, 6, 0, 1) {
		t.Fatalf("expected run blocked by white to be closed")
	}

	edge := NewBoard()
	for c := 0; c < 3; c++ {
		edge = Place(edge, 2, c, ColorBlack)
	}
	if IsOpen(&edge, 2, 1, 0, 1) {
		t.Fatalf("expected run touching the edge to be closed")
	}
}

func TestFindWinningLine(t *testing.T) {
	t.Run("no line", func(t *testing.T) {
		board := NewBoard()
		for c := 0; c < 4; c++ {
			board = Place(board, 0, c, ColorBlack)
		}
		if _, ok := FindWinningLine(&board, Position{0, 2}); ok {
			t.Fatalf("four stones must not produce a winning line")
		}
		if _, ok := FindWinningLine(&board, Position{9, 9}); ok {
			t.Fatalf("empty cell must not produce a winning line")
		}
	})

	t.Run("diagonal five", func(t *testing.T) {
		board := NewBoard()
		for i := 0; i < 5; i++ {
			board = Place(board, 2+i, 10-i, ColorWhite)
		}
		anchor := Position{4, 8}
		line, ok := FindWinningLine(&board, anchor)
		if !ok {
			t.Fatalf("expected a winning line")
		}
		assertLine(t, &board, line, anchor, White)
	})

	t.Run("six in a row still yields five", func(t *testing.T) {
		board := NewBoard()
		for c := 4; c <= 9; c++ {
			board = Place(board, 11, c, ColorBlack)
		}
		for c := 4; c <= 9; c++ {
			anchor := Position{11, c}
			line, ok := FindWinningLine(&board, anchor)
			if !ok {
				t.Fatalf("expected a winning line through %v", anchor)
			}
			assertLine(t, &board, line, anchor, Black)
		}
	})
}

func assertLine(t *testing.T, board *Board, line WinningLine, anchor Position, cell Cell) {
	t.Helper()
	dRow := line[1].Row - line[0].Row
	dCol := line[1].Col - line[0].Col
	contains := false
	for i, p := range line {
		if board.At(p.Row, p.Col) != cell {
			t.Fatalf("line cell %v is %v, want %v", p, board.At(p.Row, p.Col), cell)
		}
		if p.Row != line[0].Row+dRow*i || p.Col != line[0].Col+dCol*i {
			t.Fatalf("line %v is not collinear", line)
		}
		if p == anchor {
			contains = true
		}
	}
	if !contains {
		t.Fatalf("line %v does not contain %v", line, anchor)
	}
}

func TestBoardIntsRoundTrip(t *testing.T) {
	board := Place(Place(NewBoard(), 1, 2, ColorBlack), 3, 4, ColorWhite)
	decoded, err := BoardFromInts(board.Ints())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != board {
		t.Fatalf("decoded board differs from original")
	}

	if _, err := BoardFromInts([][]int{{0}}); err == nil {
		t.Fatalf("expected error for wrong dimensions")
	}
	bad := board.Ints()
	bad[0][0] = 7
	if _, err := BoardFromInts(bad); err == nil {
		t.Fatalf("expected error for invalid cell value")
	}
}

func TestHashTracksStones(t *testing.T) {
	empty := NewBoard()
	if Hash(&empty) != 0 {
		t.Fatalf("empty board must hash to zero")
	}

	board := Place(empty, 7, 7, ColorBlack)
	incremental := UpdateHash(Hash(&empty), 7, 7, Black)
	if Hash(&board) != incremental {
		t.Fatalf("incremental hash mismatch")
	}

	white := Place(empty, 7, 7, ColorWhite)
	if Hash(&white) == Hash(&board) {
		t.Fatalf("expected color to change the hash")
	}
	if UpdateHash(incremental, 7, 7, Black) != 0 {
		t.Fatalf("toggling the same stone twice must restore the hash")
	}
}
