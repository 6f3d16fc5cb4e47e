package server

import (
	"swedishkings/internal/app"
)

// PlayerView exposes one seat. Only the viewer's own hand is included; other
// seats carry just the count.
type PlayerView struct {
	Index      int       `json:"index"`
	Name       string    `json:"name"`
	Hand       []CardDTO `json:"hand,omitempty"`
	HandCount  int       `json:"handCount"`
	IsComputer bool      `json:"isComputer"`
	Passed     bool      `json:"passed"`
	Reasoning  string    `json:"reasoning,omitempty"`
}

// GameView is the read-only snapshot sent to the browser.
type GameView struct {
	SessionID   string         `json:"sessionId"`
	GameID      int            `json:"gameId"`
	Mode        string         `json:"mode"`
	Started     bool           `json:"started"`
	Over        bool           `json:"over"`
	Winner      int            `json:"winner"`
	Turn        int            `json:"turn"`
	Current     int            `json:"current"`
	LastPlay    *PlayView      `json:"lastPlay,omitempty"`
	Players     []PlayerView   `json:"players"`
	Tally       map[string]int `json:"tally"`
	UnusedCount int            `json:"unusedCount"`
}

// BuildGameView projects a match for one viewer seat.
func BuildGameView(m *app.Match, viewer int, sessionID string) *GameView {
	if m == nil {
		return &GameView{SessionID: sessionID, Winner: -1}
	}
	g := m.Game
	players := make([]PlayerView, 0, len(g.Players))
	for i, pl := range g.Players {
		view := PlayerView{
			Index:      i,
			Name:       pl.Name,
			HandCount:  len(pl.Hand),
			IsComputer: pl.IsComputer,
			Passed:     g.HasPassed(i),
			Reasoning:  pl.LastReasoning,
		}
		if i == viewer {
			for _, c := range pl.Hand {
				view.Hand = append(view.Hand, cardToDTO(c))
			}
		}
		players = append(players, view)
	}
	view := &GameView{
		SessionID:   sessionID,
		GameID:      m.GameID,
		Mode:        string(g.Mode),
		Started:     g.IsGameStarted,
		Over:        g.IsGameOver,
		Winner:      g.Winner,
		Turn:        g.TurnCount,
		Current:     g.CurrentPlayerIndex,
		Players:     players,
		Tally:       g.PlayedCardTally,
		UnusedCount: len(g.Unused),
	}
	if g.LastPlayedHand != nil {
		view.LastPlay = playToView(*g.LastPlayedHand)
	}
	return view
}
