package domain

import (
	"fmt"
	"math/rand"
	"sort"
)

// Suit identifies one of the four French suits. Jokers carry SuitNone.
type Suit string

const (
	SuitHearts   Suit = "hearts"
	SuitDiamonds Suit = "diamonds"
	SuitClubs    Suit = "clubs"
	SuitSpades   Suit = "spades"
	SuitNone     Suit = ""
)

// Rank symbols as they appear on the card face.
const (
	RankJoker = "Joker"
)

// Rank values. Jokers have no comparable value; they only ever substitute.
const (
	JackValue  = 11
	QueenValue = 12
	KingValue  = 13
	AceValue   = 14

	// RoyalValueThreshold is the lowest rank value considered "royal".
	RoyalValueThreshold = 11

	// DeckSize is the fixed card count of a Swedish Kings deck:
	// 44 natural + 8 wild numerals + 2 jokers.
	DeckSize = 54
)

// Card is a single immutable playing card.
type Card struct {
	ID    string
	Suit  Suit
	Rank  string
	Value int
	Wild  bool
}

// rankValues maps rank symbols to their numeric value.
var rankValues = map[string]int{
	"2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9, "10": 10,
	"J": JackValue, "Q": QueenValue, "K": KingValue, "A": AceValue, RankJoker: 0,
}

// wildRanks are the rank symbols that substitute for any natural rank.
var wildRanks = map[string]bool{"2": true, "3": true, RankJoker: true}

var suits = []Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades}

// naturalRanks in ascending value order, 4 through Ace.
var naturalRanks = []string{"4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// suitOrder is the fixed suit precedence used for hand sorting. The AI's
// lowest/second-lowest card lookups depend on this ordering being stable.
var suitOrder = map[Suit]int{
	SuitHearts:   1,
	SuitDiamonds: 2,
	SuitClubs:    3,
	SuitSpades:   4,
	SuitNone:     5,
}

// NewCard builds a card for the given suit and rank symbol.
func NewCard(suit Suit, rank string) Card {
	id := fmt.Sprintf("%s-%s", rank, suit)
	if rank == RankJoker {
		id = RankJoker
	}
	return Card{
		ID:    id,
		Suit:  suit,
		Rank:  rank,
		Value: rankValues[rank],
		Wild:  wildRanks[rank],
	}
}

// NewDeck returns the fixed 54-card Swedish Kings deck in deterministic
// composition and order. Randomization happens only in Shuffle.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range suits {
		for _, r := range naturalRanks {
			deck = append(deck, NewCard(s, r))
		}
		deck = append(deck, NewCard(s, "2"))
		deck = append(deck, NewCard(s, "3"))
	}
	for i := 1; i <= 2; i++ {
		joker := NewCard(SuitNone, RankJoker)
		joker.ID = fmt.Sprintf("%s-%d", RankJoker, i)
		deck = append(deck, joker)
	}
	return deck
}

// Shuffle permutes the deck in place using the supplied generator.
func Shuffle(deck []Card, rng *rand.Rand) {
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
}

// SortHand orders a hand ascending by rank value, then by suit precedence.
// Wilds with no suit sort last among equal values.
func SortHand(hand []Card) {
	sort.SliceStable(hand, func(i, j int) bool {
		if hand[i].Value != hand[j].Value {
			return hand[i].Value < hand[j].Value
		}
		return suitOrder[hand[i].Suit] < suitOrder[hand[j].Suit]
	})
}

// IsOpener reports whether the card is the designated starting card, the
// four of hearts. The first combination of every game must contain it.
func (c Card) IsOpener() bool {
	return c.Rank == "4" && c.Suit == SuitHearts
}

// ContainsOpener reports whether any card in the set is the opener.
func ContainsOpener(cards []Card) bool {
	for _, c := range cards {
		if c.IsOpener() {
			return true
		}
	}
	return false
}

// CountWilds returns the number of wild cards in the set.
func CountWilds(cards []Card) int {
	n := 0
	for _, c := range cards {
		if c.Wild {
			n++
		}
	}
	return n
}

// RemoveCards returns hand without the given cards, matched by ID.
func RemoveCards(hand []Card, played []Card) []Card {
	removed := make(map[string]bool, len(played))
	for _, c := range played {
		removed[c.ID] = true
	}
	out := make([]Card, 0, len(hand))
	for _, c := range hand {
		if !removed[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

// RankName returns the spoken name of a rank value for reasoning text.
func RankName(value int) string {
	switch value {
	case 4:
		return "FOUR"
	case 5:
		return "FIVE"
	case 6:
		return "SIX"
	case 7:
		return "SEVEN"
	case 8:
		return "EIGHT"
	case 9:
		return "NINE"
	case 10:
		return "TEN"
	case JackValue:
		return "JACK"
	case QueenValue:
		return "QUEEN"
	case KingValue:
		return "KING"
	case AceValue:
		return "ACE"
	default:
		return "UNKNOWN"
	}
}

// Display renders the card the way the original client did, e.g. "4♥".
func (c Card) Display() string {
	if c.Rank == RankJoker {
		return RankJoker
	}
	symbols := map[Suit]string{SuitHearts: "♥", SuitDiamonds: "♦", SuitClubs: "♣", SuitSpades: "♠"}
	return c.Rank + symbols[c.Suit]
}
