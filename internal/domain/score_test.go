package domain

import "testing"

func TestHandStrength(t *testing.T) {
	tests := []struct {
		name string
		hand []Card
		want int
	}{
		{"Empty hand", nil, 0},
		{"Low naturals score zero", []Card{NewCard(SuitHearts, "4"), NewCard(SuitClubs, "7")}, 0},
		{"Single ace", []Card{NewCard(SuitHearts, "A")}, 10},
		{"Joker outranks low wilds", []Card{NewCard(SuitNone, RankJoker)}, 5},
		{"Low wild", []Card{NewCard(SuitHearts, "2")}, 4},
		{
			// 8+8 base, pair bonus 10+ceil(13/2)=17.
			name: "Pair of kings",
			hand: []Card{NewCard(SuitHearts, "K"), NewCard(SuitClubs, "K")},
			want: 33,
		},
		{
			// 3x10 base 9, pair 10+5=15, triple 15+10=25.
			name: "Triple tens",
			hand: []Card{NewCard(SuitHearts, "10"), NewCard(SuitClubs, "10"), NewCard(SuitSpades, "10")},
			want: 58,
		},
		{
			// Quad nines: base 4x2, pair 10+5, triple 15+9, quad 15+ceil(13.5)=15+14.
			name: "Quad nines",
			hand: []Card{
				NewCard(SuitHearts, "9"), NewCard(SuitDiamonds, "9"),
				NewCard(SuitClubs, "9"), NewCard(SuitSpades, "9"),
			},
			want: 8 + 15 + 24 + 29,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HandStrength(tt.hand); got != tt.want {
				t.Errorf("HandStrength() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAvgStrength(t *testing.T) {
	if got := AvgStrength(nil); got != 0 {
		t.Errorf("empty hand average = %f, want 0", got)
	}
	hand := []Card{NewCard(SuitHearts, "A"), NewCard(SuitClubs, "4")}
	if got := AvgStrength(hand); got != 5 {
		t.Errorf("AvgStrength() = %f, want 5", got)
	}
}
