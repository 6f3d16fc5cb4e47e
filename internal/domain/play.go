package domain

import "errors"

// Combination validation failures. All are user-recoverable: state is left
// untouched and the actor may retry.
var (
	ErrEmptySelection      = errors.New("no cards selected")
	ErrAllWildSelection    = errors.New("cannot play only wild cards")
	ErrMixedRank           = errors.New("selected cards must share one rank (or be wildcards)")
	ErrIllegalWinningCombo = errors.New("final hand cannot contain aces or wildcards")
)

// Play is a validated combination submitted as one turn's action. RankValue
// is defined by the non-wild cards; wilds only pad the quantity.
type Play struct {
	Cards     []Card
	RankValue int
	Quantity  int
	UsesWilds bool
	// PlayerIndex records who made the play once it is on the table.
	PlayerIndex int
}

// ValidateCombination checks that a card set forms a legal combination:
// non-empty, at least one natural card, and all naturals sharing one rank.
func ValidateCombination(cards []Card) (Play, error) {
	if len(cards) == 0 {
		return Play{}, ErrEmptySelection
	}
	naturals := make([]Card, 0, len(cards))
	for _, c := range cards {
		if !c.Wild {
			naturals = append(naturals, c)
		}
	}
	if len(naturals) == 0 {
		return Play{}, ErrAllWildSelection
	}
	rankValue := naturals[0].Value
	for _, c := range naturals {
		if c.Value != rankValue {
			return Play{}, ErrMixedRank
		}
	}
	return Play{
		Cards:     append([]Card(nil), cards...),
		RankValue: rankValue,
		Quantity:  len(cards),
		UsesWilds: len(naturals) < len(cards),
	}, nil
}

// Beats reports whether candidate legally beats last. With no previous play
// this round any valid combination is acceptable; otherwise the rank must
// strictly exceed and the quantity must at least match.
func Beats(candidate Play, last *Play) bool {
	if last == nil {
		return true
	}
	return candidate.RankValue > last.RankValue && candidate.Quantity >= last.Quantity
}

// IsWinningPlayLegal reports whether a combination that would empty the
// acting player's hand may be played: the closing combination must be free of
// aces and wildcards.
func IsWinningPlayLegal(p Play) bool {
	for _, c := range p.Cards {
		if c.Value == AceValue || c.Wild {
			return false
		}
	}
	return true
}

// EndsRound reports whether the play ends the round outright (aces).
func (p Play) EndsRound() bool {
	return p.RankValue == AceValue
}
