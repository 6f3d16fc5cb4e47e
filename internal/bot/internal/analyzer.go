package internal

import "swedishkings/internal/domain"

// The engine's "lowest card" and "second lowest card" decisions all read the
// same ascending-sorted natural view, rather than re-deriving sort order at
// each call site.

// NaturalsAscending returns the non-wild cards of the hand in the canonical
// ascending sort order.
func NaturalsAscending(hand []domain.Card) []domain.Card {
	naturals := make([]domain.Card, 0, len(hand))
	for _, c := range hand {
		if !c.Wild {
			naturals = append(naturals, c)
		}
	}
	domain.SortHand(naturals)
	return naturals
}

// LowestNatural returns the lowest non-wild card, if any.
func LowestNatural(hand []domain.Card) (domain.Card, bool) {
	naturals := NaturalsAscending(hand)
	if len(naturals) == 0 {
		return domain.Card{}, false
	}
	return naturals[0], true
}

// SecondLowestNatural returns the second lowest non-wild card, if any.
func SecondLowestNatural(hand []domain.Card) (domain.Card, bool) {
	naturals := NaturalsAscending(hand)
	if len(naturals) < 2 {
		return domain.Card{}, false
	}
	return naturals[1], true
}

// HighestNatural returns the highest non-wild card, if any.
func HighestNatural(hand []domain.Card) (domain.Card, bool) {
	naturals := NaturalsAscending(hand)
	if len(naturals) == 0 {
		return domain.Card{}, false
	}
	return naturals[len(naturals)-1], true
}

// NaturalsByRank groups the hand's non-wild cards by rank value, each group
// in canonical order.
func NaturalsByRank(hand []domain.Card) map[int][]domain.Card {
	groups := make(map[int][]domain.Card)
	for _, c := range NaturalsAscending(hand) {
		groups[c.Value] = append(groups[c.Value], c)
	}
	return groups
}

// DistinctNaturalRanks counts the distinct non-wild rank values in the hand.
func DistinctNaturalRanks(hand []domain.Card) int {
	return len(NaturalsByRank(hand))
}

// Wilds returns the hand's wild cards in canonical order.
func Wilds(hand []domain.Card) []domain.Card {
	sorted := append([]domain.Card(nil), hand...)
	domain.SortHand(sorted)
	wilds := make([]domain.Card, 0, len(sorted))
	for _, c := range sorted {
		if c.Wild {
			wilds = append(wilds, c)
		}
	}
	return wilds
}

// CountRank counts cards of the given natural rank symbol in the hand.
func CountRank(hand []domain.Card, rank string) int {
	n := 0
	for _, c := range hand {
		if c.Rank == rank {
			n++
		}
	}
	return n
}
