package bot

import (
	"time"

	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
)

// GamePhase is derived from the number of moves played so far.
type GamePhase int

const (
	PhaseEarly GamePhase = iota
	PhaseMid
	PhaseLate
)

func (p GamePhase) String() string {
	switch p {
	case PhaseEarly:
		return "early"
	case PhaseMid:
		return "mid"
	default:
		return "late"
	}
}

// PatternWeights are the base scores of each run classification.
type PatternWeights struct {
	Five        float64
	Four        float64
	OpenThree   float64
	ClosedThree float64
	OpenTwo     float64
	ClosedTwo   float64
	One         float64
}

// PhaseWeights scale the offense, defense and positional sub-scores.
type PhaseWeights struct {
	Offense    float64
	Defense    float64
	Positional float64
}

var flatPhases = [3]PhaseWeights{
	PhaseEarly: {1, 1, 1},
	PhaseMid:   {1, 1, 1},
	PhaseLate:  {1, 1, 1},
}

// TierConfig is the full policy of one tier. Records are handed out by value
// so callers cannot alter the shared table.
type TierConfig struct {
	Tier domain.Tier

	// search
	SearchDepth     int
	Breadth         int
	MinBreadth      int
	BreadthStep     int
	SearchThreshold float64
	FutureWeight    float64
	ParallelSearch  bool
	Timeout         time.Duration

	// radii
	CandidateRadius int
	CenterRadius    int
	TerritoryRadius int
	ProximityRadius int

	// stages and feature flags
	ValidateColor       bool
	BlockWins           bool
	ForcedFours         bool
	OpenThreeBlock      bool
	Heuristics          bool
	ForkDetection       bool
	ComplexPatterns     bool
	Proximity           bool
	ProximityFallback   bool
	Territory           bool
	WeightedTerritory   bool
	EndgameOptimization bool
	PhaseAdaptive       bool
	OpeningBook         bool
	RandomOpeningWindow int

	// phase thresholds and opening length, in moves
	OpeningMoves int
	MidPhaseAt   int
	LatePhaseAt  int

	// weights
	Patterns               PatternWeights
	DefenseFactor          float64
	ForkBonus              float64
	ForkBlockBonus         float64
	GappedFourBonus        float64
	GappedThreeBonus       float64
	MultiThreatBonus       float64
	CenterWeight           float64
	TerritoryWeight        float64
	ProximityWeight        float64
	ProximityOwnMultiplier float64
	EndgameOccupancy       float64
	EndgameWeight          float64
	Phases                 [3]PhaseWeights
}

var tierTable = [...]TierConfig{
	domain.Beginner: {
		Tier:                domain.Beginner,
		RandomOpeningWindow: 1,
		OpeningMoves:        2,
		MidPhaseAt:          10,
		LatePhaseAt:         30,
		Phases:              flatPhases,
	},
	domain.Easy: {
		Tier:                domain.Easy,
		BlockWins:           true,
		ProximityFallback:   true,
		RandomOpeningWindow: 2,
		OpeningMoves:        2,
		MidPhaseAt:          10,
		LatePhaseAt:         30,
		ProximityRadius:     1,
		Phases:              flatPhases,
	},
	domain.Normal: {
		Tier:            domain.Normal,
		SearchDepth:     1,
		Breadth:         10,
		MinBreadth:      6,
		SearchThreshold: 500,
		FutureWeight:    1,
		Timeout:         2 * time.Second,
		CandidateRadius: 2,
		CenterRadius:    3,
		ProximityRadius: 1,
		ValidateColor:   true,
		BlockWins:       true,
		ForcedFours:     true,
		Heuristics:      true,
		Proximity:       true,
		OpeningBook:     true,
		OpeningMoves:    4,
		MidPhaseAt:      10,
		LatePhaseAt:     30,
		Patterns: PatternWeights{
			Five: 100000, Four: 10000,
			OpenThree: 1000, ClosedThree: 100,
			OpenTwo: 100, ClosedTwo: 10,
			One: 1,
		},
		DefenseFactor:          0.9,
		CenterWeight:           30,
		ProximityWeight:        15,
		ProximityOwnMultiplier: 1.2,
		Phases:                 flatPhases,
	},
	domain.Hard: {
		Tier:            domain.Hard,
		SearchDepth:     3,
		Breadth:         12,
		MinBreadth:      6,
		BreadthStep:     2,
		SearchThreshold: 300,
		FutureWeight:    1,
		ParallelSearch:  true,
		Timeout:         5 * time.Second,
		CandidateRadius: 2,
		CenterRadius:    4,
		TerritoryRadius: 2,
		ProximityRadius: 2,
		ValidateColor:   true,
		BlockWins:       true,
		ForcedFours:     true,
		OpenThreeBlock:  true,
		Heuristics:      true,
		ForkDetection:   true,
		Proximity:       true,
		Territory:       true,
		OpeningBook:     true,
		OpeningMoves:    3,
		MidPhaseAt:      8,
		LatePhaseAt:     40,
		Patterns: PatternWeights{
			Five: 100000, Four: 12000,
			OpenThree: 1500, ClosedThree: 150,
			OpenTwo: 120, ClosedTwo: 12,
			One: 1,
		},
		DefenseFactor:          1.0,
		ForkBonus:              5000,
		ForkBlockBonus:         4000,
		CenterWeight:           40,
		TerritoryWeight:        8,
		ProximityWeight:        20,
		ProximityOwnMultiplier: 1.5,
		Phases:                 flatPhases,
	},
	domain.Expert: {
		Tier:                domain.Expert,
		SearchDepth:         4,
		Breadth:             14,
		MinBreadth:          5,
		BreadthStep:         3,
		SearchThreshold:     200,
		FutureWeight:        1,
		ParallelSearch:      true,
		Timeout:             10 * time.Second,
		CandidateRadius:     2,
		CenterRadius:        5,
		TerritoryRadius:     3,
		ProximityRadius:     2,
		ValidateColor:       true,
		BlockWins:           true,
		ForcedFours:         true,
		OpenThreeBlock:      true,
		Heuristics:          true,
		ForkDetection:       true,
		ComplexPatterns:     true,
		Proximity:           true,
		Territory:           true,
		WeightedTerritory:   true,
		EndgameOptimization: true,
		PhaseAdaptive:       true,
		OpeningBook:         true,
		OpeningMoves:        2,
		MidPhaseAt:          12,
		LatePhaseAt:         50,
		Patterns: PatternWeights{
			Five: 100000, Four: 15000,
			OpenThree: 2000, ClosedThree: 200,
			OpenTwo: 150, ClosedTwo: 15,
			One: 2,
		},
		DefenseFactor:          1.1,
		ForkBonus:              6000,
		ForkBlockBonus:         5000,
		GappedFourBonus:        8000,
		GappedThreeBonus:       800,
		MultiThreatBonus:       3000,
		CenterWeight:           50,
		TerritoryWeight:        10,
		ProximityWeight:        25,
		ProximityOwnMultiplier: 1.5,
		EndgameOccupancy:       0.35,
		EndgameWeight:          2000,
		Phases: [3]PhaseWeights{
			PhaseEarly: {Offense: 0.9, Defense: 1.1, Positional: 1.5},
			PhaseMid:   {Offense: 1.0, Defense: 1.0, Positional: 1.0},
			PhaseLate:  {Offense: 1.2, Defense: 0.9, Positional: 0.6},
		},
	},
}

// ConfigFor returns a copy of the policy record for tier.
func ConfigFor(tier domain.Tier) (TierConfig, bool) {
	if !tier.Valid() {
		return TierConfig{}, false
	}
	return tierTable[tier], true
}

func (c *TierConfig) PhaseOf(moveCount int) GamePhase {
	switch {
	case moveCount < c.MidPhaseAt:
		return PhaseEarly
	case moveCount < c.LatePhaseAt:
		return PhaseMid
	default:
		return PhaseLate
	}
}

func (c *TierConfig) phaseWeights(phase GamePhase) PhaseWeights {
	if !c.PhaseAdaptive {
		return PhaseWeights{1, 1, 1}
	}
	return c.Phases[phase]
}

// breadthAt is the number of candidates expanded at a node with the given
// remaining depth. Nodes closer to the leaves get fewer.
func (c *TierConfig) breadthAt(remaining int) int {
	k := c.Breadth - (c.SearchDepth-remaining+1)*c.BreadthStep
	if k < c.MinBreadth {
		k = c.MinBreadth
	}
	return k
}
