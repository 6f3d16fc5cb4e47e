package bot

import (
	"testing"

	"swedishkings/internal/domain"
)

func card(suit domain.Suit, rank string) domain.Card {
	return domain.NewCard(suit, rank)
}

func fixedTuning() Tuning {
	return Tuning{
		StopOpponentThreshold: 3,
		WildPassRatio:         0.40,
		CheapRankThreshold:    6,
		FallingBehindMargin:   5,
	}
}

// newGame builds a started game with the given hands seated in order. Mode
// follows the hand count.
func newGame(last *domain.Play, hands ...[]domain.Card) *domain.Game {
	mode := domain.ModeThreePlayer
	if len(hands) == 2 {
		mode = domain.ModeHeadsUp
	}
	g := domain.NewGame(mode)
	for i, h := range hands {
		g.Players[i].Hand = h
	}
	g.IsGameStarted = true
	g.LastPlayedHand = last
	return g
}

func lowCards(n int) []domain.Card {
	suits := []domain.Suit{domain.SuitHearts, domain.SuitDiamonds, domain.SuitClubs, domain.SuitSpades}
	ranks := []string{"4", "5", "6", "7"}
	out := make([]domain.Card, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, card(suits[i%4], ranks[(i/4)%4]))
	}
	return out
}

func TestForcedOpener(t *testing.T) {
	hand := []domain.Card{card(domain.SuitHearts, "4"), card(domain.SuitClubs, "9"), card(domain.SuitSpades, "J")}
	g := newGame(nil, hand, lowCards(8), lowCards(8))
	g.IsGameStarted = false

	move, decision, err := NewLadderBot(fixedTuning()).CalculateMove(g, 0)
	if err != nil {
		t.Fatalf("CalculateMove: %v", err)
	}
	if move.Pass {
		t.Fatal("opener holder must play")
	}
	if decision.Tier != TierOpener {
		t.Errorf("tier = %v, want TierOpener", decision.Tier)
	}
	if !domain.ContainsOpener(move.Play.Cards) {
		t.Error("first play does not contain the 4 of hearts")
	}
}

func TestWinningTier(t *testing.T) {
	hand := []domain.Card{card(domain.SuitClubs, "K"), card(domain.SuitHearts, "K")}
	last := &domain.Play{RankValue: 9, Quantity: 1, PlayerIndex: 1}
	g := newGame(last, hand, lowCards(8), lowCards(8))

	move, decision, err := NewLadderBot(fixedTuning()).CalculateMove(g, 0)
	if err != nil {
		t.Fatalf("CalculateMove: %v", err)
	}
	if move.Pass || decision.Tier != TierWinning {
		t.Fatalf("move=%+v tier=%v, want winning play", move, decision.Tier)
	}
	if move.Play.Quantity != 2 || move.Play.RankValue != 13 {
		t.Errorf("play = %dx rank %d, want 2x rank 13", move.Play.Quantity, move.Play.RankValue)
	}
}

func TestPenultimateHigherRankWithWilds(t *testing.T) {
	hand := []domain.Card{
		card(domain.SuitClubs, "9"), card(domain.SuitHearts, "9"),
		card(domain.SuitClubs, "K"), card(domain.SuitClubs, "2"),
	}
	last := &domain.Play{RankValue: 5, Quantity: 1, PlayerIndex: 1}
	g := newGame(last, hand, lowCards(8), lowCards(8))

	move, decision, err := NewLadderBot(fixedTuning()).CalculateMove(g, 0)
	if err != nil {
		t.Fatalf("CalculateMove: %v", err)
	}
	if decision.Tier != TierPenultimate || decision.LowerPenultimate {
		t.Fatalf("decision = %+v, want higher-rank penultimate", decision)
	}
	// King plus the wild leaves the pair of nines for the follow-up.
	if move.Play.RankValue != 13 || move.Play.Quantity != 2 || !move.Play.UsesWilds {
		t.Errorf("play = %dx rank %d wilds=%t, want 2x rank 13 with wild", move.Play.Quantity, move.Play.RankValue, move.Play.UsesWilds)
	}
}

func TestPenultimateLowerRankFallback(t *testing.T) {
	hand := []domain.Card{
		card(domain.SuitClubs, "5"), card(domain.SuitHearts, "5"),
		card(domain.SuitClubs, "9"),
	}
	last := &domain.Play{RankValue: 4, Quantity: 2, PlayerIndex: 1}
	g := newGame(last, hand, lowCards(8), lowCards(8))

	move, decision, err := NewLadderBot(fixedTuning()).CalculateMove(g, 0)
	if err != nil {
		t.Fatalf("CalculateMove: %v", err)
	}
	if decision.Tier != TierPenultimate || !decision.LowerPenultimate {
		t.Fatalf("decision = %+v, want lower-rank penultimate", decision)
	}
	if move.Play.RankValue != 5 || move.Play.Quantity != 2 {
		t.Errorf("play = %dx rank %d, want 2x rank 5", move.Play.Quantity, move.Play.RankValue)
	}
}

func TestStopOpponentPrefersHighNonWild(t *testing.T) {
	hand := []domain.Card{
		card(domain.SuitClubs, "5"),
		card(domain.SuitClubs, "9"), card(domain.SuitHearts, "9"),
		card(domain.SuitClubs, "K"), card(domain.SuitClubs, "2"),
	}
	last := &domain.Play{RankValue: 8, Quantity: 1, PlayerIndex: 1}
	// Player 1 is down to three cards.
	g := newGame(last, hand, lowCards(3), lowCards(8))

	move, decision, err := NewLadderBot(fixedTuning()).CalculateMove(g, 0)
	if err != nil {
		t.Fatalf("CalculateMove: %v", err)
	}
	if decision.Tier != TierStopOpponent {
		t.Fatalf("tier = %v, want TierStopOpponent", decision.Tier)
	}
	// The wild-free king scores above every wild-using alternative.
	if move.Play.RankValue != 13 || move.Play.Quantity != 1 || move.Play.UsesWilds {
		t.Errorf("play = %dx rank %d wilds=%t, want 1x rank 13 without wilds", move.Play.Quantity, move.Play.RankValue, move.Play.UsesWilds)
	}
}

func TestConfidentPicksCheapestFiltered(t *testing.T) {
	hand := []domain.Card{
		card(domain.SuitDiamonds, "J"),
		card(domain.SuitSpades, "Q"),
		card(domain.SuitHearts, "K"), card(domain.SuitClubs, "K"),
	}
	last := &domain.Play{RankValue: 10, Quantity: 1, PlayerIndex: 1}
	g := newGame(last, hand, lowCards(6), lowCards(6))

	move, decision, err := NewLadderBot(fixedTuning()).CalculateMove(g, 0)
	if err != nil {
		t.Fatalf("CalculateMove: %v", err)
	}
	if decision.Tier != TierConfident || decision.Rule != RuleNone {
		t.Fatalf("decision = %+v, want plain confident", decision)
	}
	if move.Play.RankValue != 11 || move.Play.Quantity != 1 {
		t.Errorf("play = %dx rank %d, want the jack single", move.Play.Quantity, move.Play.RankValue)
	}
}

func TestNoValidPlaysPasses(t *testing.T) {
	hand := []domain.Card{card(domain.SuitClubs, "5")}
	last := &domain.Play{RankValue: 9, Quantity: 1, PlayerIndex: 1}
	g := newGame(last, hand, lowCards(8), lowCards(8))

	move, decision, err := NewLadderBot(fixedTuning()).CalculateMove(g, 0)
	if err != nil {
		t.Fatalf("CalculateMove: %v", err)
	}
	if !move.Pass || decision.PassReason != ReasonNoValidPlays {
		t.Errorf("move=%+v reason=%q, want pass with no_valid", move, decision.PassReason)
	}
}

func TestFinalSafetyBlocksAceFinish(t *testing.T) {
	hand := []domain.Card{card(domain.SuitClubs, "A")}
	last := &domain.Play{RankValue: 9, Quantity: 1, PlayerIndex: 1}
	g := newGame(last, hand, lowCards(8), lowCards(8))

	move, decision, err := NewLadderBot(fixedTuning()).CalculateMove(g, 0)
	if err != nil {
		t.Fatalf("CalculateMove: %v", err)
	}
	if !move.Pass || decision.PassReason != ReasonIllegalWin {
		t.Errorf("move=%+v reason=%q, want forced pass on ace finish", move, decision.PassReason)
	}
}

func TestFallingBehindMatchesQuantity(t *testing.T) {
	hand := []domain.Card{
		card(domain.SuitClubs, "6"), card(domain.SuitHearts, "6"),
		card(domain.SuitClubs, "8"), card(domain.SuitHearts, "8"), card(domain.SuitSpades, "8"),
		card(domain.SuitClubs, "10"), card(domain.SuitHearts, "J"),
		card(domain.SuitClubs, "Q"), card(domain.SuitHearts, "Q"),
	}
	last := &domain.Play{RankValue: 5, Quantity: 2, PlayerIndex: 1}
	// Nine cards against a four-card leader trips the margin of five.
	g := newGame(last, hand, lowCards(4), lowCards(10))

	move, decision, err := NewLadderBot(fixedTuning()).CalculateMove(g, 0)
	if err != nil {
		t.Fatalf("CalculateMove: %v", err)
	}
	if decision.Tier != TierFallingBehind {
		t.Fatalf("tier = %v, want TierFallingBehind", decision.Tier)
	}
	if move.Play.RankValue != 6 || move.Play.Quantity != 2 || move.Play.UsesWilds {
		t.Errorf("play = %dx rank %d wilds=%t, want the pair of sixes", move.Play.Quantity, move.Play.RankValue, move.Play.UsesWilds)
	}
}
