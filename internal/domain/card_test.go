package domain

import (
	"math/rand"
	"testing"
)

func TestNewDeckComposition(t *testing.T) {
	deck := NewDeck()
	if len(deck) != DeckSize {
		t.Fatalf("expected %d cards, got %d", DeckSize, len(deck))
	}

	seen := make(map[string]bool)
	naturals, wilds, jokers := 0, 0, 0
	for _, c := range deck {
		if seen[c.ID] {
			t.Errorf("duplicate card id %q", c.ID)
		}
		seen[c.ID] = true
		switch {
		case c.Rank == RankJoker:
			jokers++
			if !c.Wild || c.Suit != SuitNone || c.Value != 0 {
				t.Errorf("malformed joker: %+v", c)
			}
		case c.Wild:
			wilds++
		default:
			naturals++
			if c.Value < 4 || c.Value > AceValue {
				t.Errorf("natural card %q outside 4..14: %d", c.ID, c.Value)
			}
		}
	}
	if naturals != 44 {
		t.Errorf("expected 44 natural cards, got %d", naturals)
	}
	if wilds != 8 {
		t.Errorf("expected 8 wild numerals, got %d", wilds)
	}
	if jokers != 2 {
		t.Errorf("expected 2 jokers, got %d", jokers)
	}
}

func TestSortHandOrder(t *testing.T) {
	hand := []Card{
		NewCard(SuitSpades, "9"),
		NewCard(SuitNone, RankJoker),
		NewCard(SuitHearts, "9"),
		NewCard(SuitClubs, "4"),
		NewCard(SuitDiamonds, "A"),
		NewCard(SuitHearts, "2"),
	}
	SortHand(hand)

	// Joker (value 0) first, then 2, then naturals ascending, hearts before
	// spades within rank 9.
	wantIDs := []string{"Joker", "2-hearts", "4-clubs", "9-hearts", "9-spades", "A-diamonds"}
	for i, want := range wantIDs {
		if hand[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, hand[i].ID)
		}
	}
}

func TestShuffleKeepsAllCards(t *testing.T) {
	deck := NewDeck()
	Shuffle(deck, rand.New(rand.NewSource(7)))
	if len(deck) != DeckSize {
		t.Fatalf("shuffle changed deck size to %d", len(deck))
	}
	seen := make(map[string]bool)
	for _, c := range deck {
		seen[c.ID] = true
	}
	if len(seen) != DeckSize {
		t.Errorf("shuffle lost cards: %d unique ids", len(seen))
	}
}

func TestRemoveCards(t *testing.T) {
	hand := []Card{NewCard(SuitHearts, "5"), NewCard(SuitClubs, "5"), NewCard(SuitHearts, "K")}
	out := RemoveCards(hand, []Card{NewCard(SuitClubs, "5")})
	if len(out) != 2 {
		t.Fatalf("expected 2 cards left, got %d", len(out))
	}
	for _, c := range out {
		if c.ID == "5-clubs" {
			t.Errorf("removed card still present")
		}
	}
}
