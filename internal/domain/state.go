package domain

// Mode selects the table layout for a game.
type Mode string

const (
	// ModeThreePlayer seats one human against two computer opponents.
	ModeThreePlayer Mode = "three_player"
	// ModeHeadsUp seats one human against a single computer opponent.
	ModeHeadsUp Mode = "heads_up"
)

// PlayerCount returns the number of seats for the mode.
func (m Mode) PlayerCount() int {
	if m == ModeHeadsUp {
		return 2
	}
	return 3
}

// Player holds the state for one participant. The human always sits at
// index 0; LastReasoning is populated for computer players only.
type Player struct {
	ID            int
	Name          string
	Hand          []Card
	IsComputer    bool
	LastReasoning string
}

// Game is the authoritative mutable state for one game instance. It is owned
// by exactly one logical actor at a time; the engine only ever prompts the
// current player, so no locking happens here.
type Game struct {
	Mode               Mode
	Players            []*Player
	CurrentPlayerIndex int
	LastPlayedHand     *Play
	PassedPlayers      map[int]bool
	IsGameStarted      bool
	IsGameOver         bool
	Winner             int
	TurnCount          int
	// PlayedCardTally counts non-wild cards seen on the table, by rank.
	PlayedCardTally map[string]int
	// Unused is the heads-up remainder pile; never re-enters play.
	Unused []Card
}

// NewGame returns an empty game shell for the given mode. Hands are dealt and
// the starter chosen by the app service.
func NewGame(mode Mode) *Game {
	g := &Game{
		Mode:               mode,
		CurrentPlayerIndex: -1,
		PassedPlayers:      make(map[int]bool),
		PlayedCardTally:    make(map[string]int),
		Winner:             -1,
	}
	for i := 0; i < mode.PlayerCount(); i++ {
		g.Players = append(g.Players, &Player{ID: i + 1, IsComputer: i != 0})
	}
	return g
}

// HasPassed reports whether the player sat out the rest of this round.
func (g *Game) HasPassed(playerIdx int) bool {
	return g.PassedPlayers[playerIdx]
}

// ResetRound clears the per-round state and hands the lead to the winner.
func (g *Game) ResetRound(winnerIdx int) {
	g.PassedPlayers = make(map[int]bool)
	g.LastPlayedHand = nil
	g.CurrentPlayerIndex = winnerIdx
}

// RoundOver reports whether all but one player has passed.
func (g *Game) RoundOver() bool {
	return len(g.PassedPlayers) >= len(g.Players)-1
}

// TrackPlayed adds a play's natural cards to the table tally.
func (g *Game) TrackPlayed(p Play) {
	for _, c := range p.Cards {
		if !c.Wild {
			g.PlayedCardTally[c.Rank]++
		}
	}
}

// OpenerHolder returns the index of the player holding the 4♥, or -1.
func (g *Game) OpenerHolder() int {
	for i, pl := range g.Players {
		if ContainsOpener(pl.Hand) {
			return i
		}
	}
	return -1
}
