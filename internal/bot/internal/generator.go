package internal

import (
	"sort"
	"strings"

	"swedishkings/internal/domain"
)

// FindValidPlays returns every legal play reachable from the hand against the
// last played combination. For each distinct natural rank above the last rank
// (any rank when leading), every quantity from the required minimum up to
// naturals-plus-wilds is emitted, filling with wild cards in hand order. Wild
// substitution is counted, not permuted: which physical wild fills a slot
// never changes legality or scoring.
//
// Before the game's first play the results are filtered to plays containing
// the opener card.
func FindValidPlays(hand []domain.Card, last *domain.Play, gameStarted bool) []domain.Play {
	if len(hand) == 0 {
		return nil
	}
	sorted := append([]domain.Card(nil), hand...)
	domain.SortHand(sorted)

	var wilds []domain.Card
	byRank := make(map[int][]domain.Card)
	for _, c := range sorted {
		if c.Wild {
			wilds = append(wilds, c)
			continue
		}
		byRank[c.Value] = append(byRank[c.Value], c)
	}

	lastRank := -1
	minQuantity := 1
	if last != nil {
		lastRank = last.RankValue
		minQuantity = last.Quantity
	}

	ranks := make([]int, 0, len(byRank))
	for r := range byRank {
		ranks = append(ranks, r)
	}
	sort.Ints(ranks)

	var plays []domain.Play
	for _, rank := range ranks {
		if last != nil && rank <= lastRank {
			continue
		}
		naturals := byRank[rank]
		maxQuantity := len(naturals) + len(wilds)
		for quantity := minQuantity; quantity <= maxQuantity; quantity++ {
			naturalsUsed := quantity
			if naturalsUsed > len(naturals) {
				naturalsUsed = len(naturals)
			}
			wildsNeeded := quantity - naturalsUsed

			cards := make([]domain.Card, 0, quantity)
			cards = append(cards, naturals[:naturalsUsed]...)
			cards = append(cards, wilds[:wildsNeeded]...)

			play := domain.Play{
				Cards:     cards,
				RankValue: rank,
				Quantity:  quantity,
				UsesWilds: wildsNeeded > 0,
			}
			if domain.Beats(play, last) {
				plays = append(plays, play)
			}
		}
	}

	if !gameStarted && last == nil {
		filtered := plays[:0]
		for _, p := range plays {
			if domain.ContainsOpener(p.Cards) {
				filtered = append(filtered, p)
			}
		}
		plays = filtered
	}
	return plays
}

// PlayID is a stable identity for a play: its sorted card IDs joined. Used to
// compare a chosen play against enumeration results.
func PlayID(p domain.Play) string {
	ids := make([]string, len(p.Cards))
	for i, c := range p.Cards {
		ids[i] = c.ID
	}
	sort.Strings(ids)
	return strings.Join(ids, "|")
}
