package domain

import "math/rand"

// HeadsUpHandSize is the fixed per-player deal in heads-up mode.
const HeadsUpHandSize = 17

// Deal distributes the whole deck one card at a time round-robin across n
// hands, then sorts each hand. Used for the three-player table where the
// 54-card deck is consumed entirely.
func Deal(deck []Card, n int) [][]Card {
	hands := make([][]Card, n)
	for i, c := range deck {
		hands[i%n] = append(hands[i%n], c)
	}
	for _, h := range hands {
		SortHand(h)
	}
	return hands
}

// DealHeadsUp deals the heads-up variant: the opener is removed before the
// shuffle, 17 cards go to each player alternately, then the opener is handed
// to a randomly chosen player. The remaining 19 cards are returned as the
// unused pile and never re-enter play.
func DealHeadsUp(deck []Card, rng *rand.Rand) (hands [2][]Card, unused []Card) {
	rest := make([]Card, 0, len(deck)-1)
	var opener Card
	for _, c := range deck {
		if c.IsOpener() {
			opener = c
			continue
		}
		rest = append(rest, c)
	}
	Shuffle(rest, rng)

	idx := 0
	for i := 0; i < HeadsUpHandSize; i++ {
		for p := 0; p < 2; p++ {
			hands[p] = append(hands[p], rest[idx])
			idx++
		}
	}
	lucky := rng.Intn(2)
	hands[lucky] = append(hands[lucky], opener)
	unused = append(unused, rest[idx:]...)

	for p := range hands {
		SortHand(hands[p])
	}
	return hands, unused
}
