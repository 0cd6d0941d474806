package bot

import "github.com/iamasit07/5-in-a-row/backend/internal/domain"

type PatternKind int

const (
	PatternNone PatternKind = iota
	PatternOne
	PatternClosedTwo
	PatternOpenTwo
	PatternClosedThree
	PatternOpenThree
	PatternFour
	PatternFive
)

func (k PatternKind) String() string {
	switch k {
	case PatternOne:
		return "one"
	case PatternClosedTwo:
		return "closed_two"
	case PatternOpenTwo:
		return "open_two"
	case PatternClosedThree:
		return "closed_three"
	case PatternOpenThree:
		return "open_three"
	case PatternFour:
		return "four"
	case PatternFive:
		return "five"
	default:
		return "none"
	}
}

// LinePattern describes the run through a candidate along one direction.
type LinePattern struct {
	Kind        PatternKind
	Length      int
	Open        bool
	GappedFour  bool
	GappedThree bool
}

// PatternReport is the per-direction classification of a hypothetical stone.
type PatternReport struct {
	Lines [4]LinePattern
	// Threats counts directions holding a live run of three or more.
	Threats int
	// GappedThreats counts directions whose threat only exists through a gap.
	GappedThreats int
}

func (r PatternReport) Best() PatternKind {
	best := PatternNone
	for _, line := range r.Lines {
		if line.Kind > best {
			best = line.Kind
		}
	}
	return best
}

func (r PatternReport) IsFork() bool {
	return r.Threats >= 2
}

// AnalyzePlacement classifies what a stone of color at pos would produce in
// every direction. The board is restored before returning.
func AnalyzePlacement(board *domain.Board, pos domain.Position, color domain.Color, complex bool) PatternReport {
	cell := color.Cell()
	prev := board[pos.Row][pos.Col]
	board[pos.Row][pos.Col] = cell
	defer func() { board[pos.Row][pos.Col] = prev }()

	var report PatternReport
	for i, dir := range domain.Directions {
		line := classifyLine(board, pos, dir, cell)
		if complex && line.Kind < PatternFive {
			line.GappedFour, line.GappedThree = gappedThreats(board, pos, dir, cell, line.Length)
		}
		report.Lines[i] = line
		if line.Length >= 3 && line.Kind != PatternNone {
			report.Threats++
		} else if line.GappedFour || line.GappedThree {
			report.GappedThreats++
		}
	}
	return report
}

// classifyLine assumes the stone is already on the board.
func classifyLine(board *domain.Board, pos domain.Position, dir domain.Direction, cell domain.Cell) LinePattern {
	length := domain.CountBidirectional(board, pos.Row, pos.Col, dir.DRow, dir.DCol, cell)
	line := LinePattern{Length: length}
	if length >= domain.ToWin {
		line.Kind = PatternFive
		return line
	}
	// a run that cannot grow to five along this line is worth nothing
	if !hasRoom(board, pos, dir, cell) {
		return line
	}
	line.Open = domain.IsOpen(board, pos.Row, pos.Col, dir.DRow, dir.DCol)

	switch length {
	case 4:
		line.Kind = PatternFour
	case 3:
		line.Kind = PatternClosedThree
		if line.Open {
			line.Kind = PatternOpenThree
		}
	case 2:
		line.Kind = PatternClosedTwo
		if line.Open {
			line.Kind = PatternOpenTwo
		}
	default:
		line.Kind = PatternOne
	}
	return line
}

// hasRoom reports whether own stones and empty cells around pos along dir
// span at least five cells.
func hasRoom(board *domain.Board, pos domain.Position, dir domain.Direction, cell domain.Cell) bool {
	span := 1
	for _, d := range [2]domain.Direction{dir, dir.Reverse()} {
		r, c := pos.Row+d.DRow, pos.Col+d.DCol
		for domain.IsValidPosition(r, c) && span < domain.ToWin {
			v := board[r][c]
			if v != cell && v != domain.Empty {
				break
			}
			span++
			r += d.DRow
			c += d.DCol
		}
	}
	return span >= domain.ToWin
}

// gappedThreats scans every five-cell window through pos along dir that holds
// no opposing stone. Four stones around a one-cell gap form a gapped four;
// three stones spread over four or five cells form a gapped three.
func gappedThreats(board *domain.Board, pos domain.Position, dir domain.Direction, cell domain.Cell, runLength int) (four, three bool) {
	for start := -(domain.ToWin - 1); start <= 0; start++ {
		stones, first, last := 0, -1, -1
		blocked := false
		for i := 0; i < domain.ToWin; i++ {
			r := pos.Row + dir.DRow*(start+i)
			c := pos.Col + dir.DCol*(start+i)
			if !domain.IsValidPosition(r, c) {
				blocked = true
				break
			}
			v := board[r][c]
			if v == cell {
				stones++
				if first < 0 {
					first = i
				}
				last = i
			} else if v != domain.Empty {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		spread := last - first + 1
		if stones == 4 && spread > 4 && runLength < 4 {
			four = true
		}
		if stones == 3 && spread > 3 && runLength < 3 {
			three = true
		}
	}
	return four, three
}

func (c *TierConfig) patternScore(report PatternReport) float64 {
	score := 0.0
	w := c.Patterns
	for _, line := range report.Lines {
		switch line.Kind {
		case PatternFive:
			score += w.Five
		case PatternFour:
			score += w.Four
		case PatternOpenThree:
			score += w.OpenThree
		case PatternClosedThree:
			score += w.ClosedThree
		case PatternOpenTwo:
			score += w.OpenTwo
		case PatternClosedTwo:
			score += w.ClosedTwo
		case PatternOne:
			score += w.One
		}
	}
	return score
}

func (c *TierConfig) complexScore(report PatternReport) float64 {
	if !c.ComplexPatterns {
		return 0
	}
	score := 0.0
	for _, line := range report.Lines {
		if line.GappedFour {
			score += c.GappedFourBonus
		} else if line.GappedThree {
			score += c.GappedThreeBonus
		}
	}
	if report.Threats+report.GappedThreats >= 3 || (report.Threats >= 1 && report.GappedThreats >= 1) {
		score += c.MultiThreatBonus
	}
	return score
}

// evaluatePatterns returns the offense, defense and fork/complex terms for a
// candidate: what color gains by playing pos and what the opponent would gain
// there.
func (c *TierConfig) evaluatePatterns(board *domain.Board, pos domain.Position, color domain.Color) (offense, defense, tactical float64) {
	own := AnalyzePlacement(board, pos, color, c.ComplexPatterns)
	opp := AnalyzePlacement(board, pos, color.Opponent(), c.ComplexPatterns)

	offense = c.patternScore(own)
	defense = c.patternScore(opp) * c.DefenseFactor

	if c.ForkDetection {
		if own.IsFork() {
			tactical += c.ForkBonus
		}
		if opp.IsFork() {
			tactical += c.ForkBlockBonus
		}
	}
	tactical += c.complexScore(own)
	tactical += c.complexScore(opp) * c.DefenseFactor
	return offense, defense, tactical
}
