package bot

import "github.com/iamasit07/5-in-a-row/backend/internal/domain"

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func centerDistance(pos domain.Position) int {
	return abs(pos.Row-domain.Center) + abs(pos.Col-domain.Center)
}

func chebyshev(a, b domain.Position) int {
	return max(abs(a.Row-b.Row), abs(a.Col-b.Col))
}

// centerBonus decays linearly with Manhattan distance from the center and
// vanishes outside the tier radius.
func (c *TierConfig) centerBonus(pos domain.Position) float64 {
	d := centerDistance(pos)
	if c.CenterRadius <= 0 || d > c.CenterRadius {
		return 0
	}
	return c.CenterWeight * float64(c.CenterRadius+1-d) / float64(c.CenterRadius+1)
}

// territoryScore counts own stones in the square window around pos. With
// WeightedTerritory nearer stones count more.
func (c *TierConfig) territoryScore(board *domain.Board, pos domain.Position, color domain.Color) float64 {
	if !c.Territory || c.TerritoryRadius <= 0 {
		return 0
	}
	own := color.Cell()
	total := 0.0
	forEachInRadius(pos, c.TerritoryRadius, func(p domain.Position) {
		if board[p.Row][p.Col] != own {
			return
		}
		if c.WeightedTerritory {
			total += 1 / float64(chebyshev(pos, p))
		} else {
			total++
		}
	})
	return total * c.TerritoryWeight
}

// proximityBonus rewards contact with opponent stones, more so when own
// stones are also close.
func (c *TierConfig) proximityBonus(board *domain.Board, pos domain.Position, color domain.Color) float64 {
	if !c.Proximity || c.ProximityRadius <= 0 {
		return 0
	}
	own, opp := color.Cell(), color.Opponent().Cell()
	oppNear, ownNear := 0, 0
	forEachInRadius(pos, c.ProximityRadius, func(p domain.Position) {
		switch board[p.Row][p.Col] {
		case opp:
			oppNear++
		case own:
			ownNear++
		}
	})
	bonus := float64(oppNear) * c.ProximityWeight
	if oppNear > 0 && ownNear > 0 {
		bonus *= c.ProximityOwnMultiplier
	}
	return bonus
}

// endgameBonus applies once the board is crowded: the fewer moves color still
// needs to finish a five through pos, the larger the bonus.
func (c *TierConfig) endgameBonus(board *domain.Board, pos domain.Position, color domain.Color, stones int) float64 {
	if !c.EndgameOptimization {
		return 0
	}
	if float64(stones)/float64(domain.Size*domain.Size) <= c.EndgameOccupancy {
		return 0
	}
	need := movesToFive(board, pos, color.Cell())
	if need <= 0 {
		return 0
	}
	return c.EndgameWeight / float64(need)
}

// movesToFive returns how many more stones (beyond one at pos) color needs to
// complete the most advanced five-window through pos, or -1 if every window
// is blocked.
func movesToFive(board *domain.Board, pos domain.Position, cell domain.Cell) int {
	best := -1
	for _, dir := range domain.Directions {
		for start := -(domain.ToWin - 1); start <= 0; start++ {
			stones := 0
			ok := true
			for i := 0; i < domain.ToWin; i++ {
				r := pos.Row + dir.DRow*(start+i)
				col := pos.Col + dir.DCol*(start+i)
				if !domain.IsValidPosition(r, col) {
					ok = false
					break
				}
				v := board[r][col]
				if r == pos.Row && col == pos.Col {
					stones++
					continue
				}
				if v == cell {
					stones++
				} else if v != domain.Empty {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			need := domain.ToWin - stones
			if best < 0 || need < best {
				best = need
			}
		}
	}
	return best
}

func forEachInRadius(pos domain.Position, radius int, fn func(domain.Position)) {
	for r := pos.Row - radius; r <= pos.Row+radius; r++ {
		for col := pos.Col - radius; col <= pos.Col+radius; col++ {
			if (r == pos.Row && col == pos.Col) || !domain.IsValidPosition(r, col) {
				continue
			}
			fn(domain.Position{Row: r, Col: col})
		}
	}
}

// hasNeighbor reports whether any stone lies within radius of pos.
func hasNeighbor(board *domain.Board, pos domain.Position, radius int) bool {
	for r := max(0, pos.Row-radius); r <= min(domain.Size-1, pos.Row+radius); r++ {
		for col := max(0, pos.Col-radius); col <= min(domain.Size-1, pos.Col+radius); col++ {
			if board[r][col] != domain.Empty {
				return true
			}
		}
	}
	return false
}
