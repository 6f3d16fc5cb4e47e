package domain

import (
	"errors"
	"testing"
)

func TestValidateCombination(t *testing.T) {
	tests := []struct {
		name    string
		cards   []Card
		wantErr error
		rank    int
		qty     int
		wilds   bool
	}{
		{
			name:    "Empty selection",
			cards:   nil,
			wantErr: ErrEmptySelection,
		},
		{
			name:    "All wilds",
			cards:   []Card{NewCard(SuitHearts, "2"), NewCard(SuitNone, RankJoker)},
			wantErr: ErrAllWildSelection,
		},
		{
			name:    "Mixed ranks",
			cards:   []Card{NewCard(SuitHearts, "5"), NewCard(SuitClubs, "6")},
			wantErr: ErrMixedRank,
		},
		{
			name:  "Single natural",
			cards: []Card{NewCard(SuitHearts, "9")},
			rank:  9, qty: 1,
		},
		{
			name:  "Pair with wild",
			cards: []Card{NewCard(SuitHearts, "K"), NewCard(SuitSpades, "3")},
			rank:  KingValue, qty: 2, wilds: true,
		},
		{
			name: "Triple same rank plus joker",
			cards: []Card{
				NewCard(SuitHearts, "7"), NewCard(SuitClubs, "7"), NewCard(SuitNone, RankJoker),
			},
			rank: 7, qty: 3, wilds: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			play, err := ValidateCombination(tt.cards)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if play.RankValue != tt.rank || play.Quantity != tt.qty || play.UsesWilds != tt.wilds {
				t.Errorf("got rank=%d qty=%d wilds=%v, want rank=%d qty=%d wilds=%v",
					play.RankValue, play.Quantity, play.UsesWilds, tt.rank, tt.qty, tt.wilds)
			}
		})
	}
}

func TestBeats(t *testing.T) {
	last := &Play{RankValue: 6, Quantity: 2}
	tests := []struct {
		name      string
		candidate Play
		last      *Play
		want      bool
	}{
		{"Anything beats empty table", Play{RankValue: 4, Quantity: 1}, nil, true},
		{"Higher rank same quantity", Play{RankValue: 7, Quantity: 2}, last, true},
		{"Higher rank more quantity", Play{RankValue: 7, Quantity: 3}, last, true},
		{"Higher rank too few cards", Play{RankValue: 8, Quantity: 1}, last, false},
		{"Equal rank", Play{RankValue: 6, Quantity: 3}, last, false},
		{"Lower rank any quantity", Play{RankValue: 5, Quantity: 4}, last, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Beats(tt.candidate, tt.last); got != tt.want {
				t.Errorf("Beats() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsWinningPlayLegal(t *testing.T) {
	tests := []struct {
		name  string
		cards []Card
		want  bool
	}{
		{"Clean pair", []Card{NewCard(SuitHearts, "8"), NewCard(SuitClubs, "8")}, true},
		{"Contains ace", []Card{NewCard(SuitHearts, "A")}, false},
		{"Contains wild", []Card{NewCard(SuitHearts, "K"), NewCard(SuitSpades, "2")}, false},
		{"Contains joker", []Card{NewCard(SuitHearts, "5"), NewCard(SuitNone, RankJoker)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			play, err := ValidateCombination(tt.cards)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := IsWinningPlayLegal(play); got != tt.want {
				t.Errorf("IsWinningPlayLegal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEndsRound(t *testing.T) {
	ace, err := ValidateCombination([]Card{NewCard(SuitHearts, "A"), NewCard(SuitClubs, "A")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ace.EndsRound() {
		t.Errorf("ace pair should end the round")
	}
	king, _ := ValidateCombination([]Card{NewCard(SuitHearts, "K")})
	if king.EndsRound() {
		t.Errorf("king should not end the round")
	}
}
