package bot

import "swedishkings/internal/domain"

// Move is the decision a Brain returns for one turn.
type Move struct {
	Pass bool
	Play domain.Play
}

// Tier identifies the rung of the priority ladder that produced a decision.
type Tier int

const (
	TierNone Tier = iota
	TierOpener
	TierWinning
	TierPenultimate
	TierStopOpponent
	TierFallingBehind
	TierConfident
	TierConservative
)

// Rule identifies the strategic override that adjusted a ladder decision.
type Rule int

const (
	RuleNone Rule = iota
	// RuleWildRatioPass forces a pass when a play would burn too large a
	// fraction of the hand's wildcards.
	RuleWildRatioPass
	// RuleSecondLowestSwap keeps the true lowest card in reserve when
	// opening a round while holding an ace.
	RuleSecondLowestSwap
	// RuleLowestNaturalPlay converts a pass into playing the lowest natural
	// rank, filling with wilds when the quantity demands it.
	RuleLowestNaturalPlay
	// RuleBelowJackPlay converts a pass into any non-wild play below jack.
	RuleBelowJackPlay
	// RuleSurplusAce spends a spare ace rather than passing.
	RuleSurplusAce
	// RuleLowDoubleWild answers a passed-on double with lowest-natural+wild
	// when wilds are plentiful.
	RuleLowDoubleWild
	// RuleCheapNonWild prefers a cheap non-wild play over a wild-using or
	// higher-ranked choice.
	RuleCheapNonWild
)

// PassReason is the diagnostic attached to a pass decision.
type PassReason string

const (
	ReasonNone             PassReason = ""
	ReasonNoValidPlays     PassReason = "no_valid"
	ReasonConfidentHold    PassReason = "confident"
	ReasonConservativeHold PassReason = "conservative"
	ReasonFallingBehind    PassReason = "falling_behind"
	ReasonStopOpponent     PassReason = "stop_opponent"
	ReasonNoOpenerPlay     PassReason = "no_opener_play"
	ReasonIllegalWin       PassReason = "invalid_win_forced_pass"
	ReasonHighWildUsage    PassReason = "high_wild_usage"
	ReasonInternalError    PassReason = "internal_error"
)

// Decision captures how a move was chosen as structured data. Any
// human-readable explanation is derived from it, never parsed back out.
type Decision struct {
	Tier       Tier
	Rule       Rule
	Pass       bool
	PassReason PassReason
	UsesWilds  bool
	// AceStartSwap marks a tier 5/6 choice that swapped away from the
	// lowest single while opening a round with an ace in hand.
	AceStartSwap bool
	// RankPlusThree marks the conservative tier's special last+3 candidate.
	RankPlusThree bool
	// LowerPenultimate marks the penultimate tier's lower-rank fallback.
	LowerPenultimate bool
}

// Brain is the interface all computer strategies implement.
type Brain interface {
	CalculateMove(game *domain.Game, playerIdx int) (Move, Decision, error)
}
