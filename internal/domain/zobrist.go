package domain

// zobristKeys holds one random key per (cell, color). The table is seeded
// deterministically so hashes are stable across processes, which lets them
// key a shared cache.
var zobristKeys = buildZobristKeys()

func buildZobristKeys() [Size * Size * 2]uint64 {
	var keys [Size * Size * 2]uint64
	rng := splitmix64{state: 0x9e3779b97f4a7c15 ^ uint64(Size)}
	for i := range keys {
		keys[i] = rng.next()
	}
	return keys
}

func stoneKey(row, col int, cell Cell) uint64 {
	idx := (row*Size + col) * 2
	if cell == White {
		idx++
	}
	return zobristKeys[idx]
}

func Hash(board *Board) uint64 {
	var hash uint64
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if cell := board[r][c]; cell != Empty {
				hash ^= stoneKey(r, c, cell)
			}
		}
	}
	return hash
}

// UpdateHash toggles a single stone in or out of hash.
func UpdateHash(hash uint64, row, col int, cell Cell) uint64 {
	if cell == Empty {
		return hash
	}
	return hash ^ stoneKey(row, col, cell)
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
