package bot

import (
	"math/rand"

	"swedishkings/internal/domain"
)

// Fixed strategy constants carried over from the reference ruleset.
const (
	// WildPenalty discounts wild-using plays in the stop-opponent formula.
	WildPenalty = 5
	// MinHandForWildPassRule is the smallest hand size at which the
	// wildcard-ratio pass rule applies.
	MinHandForWildPassRule = 12
	// SurplusAceMinimum is how many aces justify spending one on a pass.
	SurplusAceMinimum = 2
	// LowDoubleMinWilds gates the lowest-natural-plus-wild pass override.
	LowDoubleMinWilds = 3

	fallingBehindMarginThreePlayer = 5
	fallingBehindMarginHeadsUp     = 3
)

// Tuning holds the per-game randomized thresholds. They are rolled once at
// game start and stay fixed for the whole game, so a seeded generator makes
// every decision reproducible.
type Tuning struct {
	// StopOpponentThreshold: opponents at or below this hand size trigger
	// aggressive blocking. 3 or 4.
	StopOpponentThreshold int
	// WildPassRatio: a candidate play consuming more than this fraction of
	// the hand's wildcards forces a pass. 0.40 or 0.50.
	WildPassRatio float64
	// CheapRankThreshold: non-wild plays below this rank are preferred by
	// the cheap-play override. 6 through 10.
	CheapRankThreshold int
	// FallingBehindMargin: hand-size deficit against the leader that
	// switches the engine into shedding mode. Mode-dependent.
	FallingBehindMargin int
}

// NewTuning rolls the per-game thresholds for the given mode.
func NewTuning(mode domain.Mode, rng *rand.Rand) Tuning {
	t := Tuning{
		StopOpponentThreshold: 3,
		WildPassRatio:         0.40,
		CheapRankThreshold:    6 + rng.Intn(5),
		FallingBehindMargin:   fallingBehindMarginThreePlayer,
	}
	if rng.Intn(2) == 1 {
		t.StopOpponentThreshold = 4
	}
	if rng.Intn(2) == 1 {
		t.WildPassRatio = 0.50
	}
	if mode == domain.ModeHeadsUp {
		t.FallingBehindMargin = fallingBehindMarginHeadsUp
	}
	return t
}
