package server

import (
	"swedishkings/internal/app"
	"swedishkings/internal/domain"
)

// ClientMessage is one websocket frame from the browser.
type ClientMessage struct {
	Type       string   `json:"type"`
	ActionID   string   `json:"actionId,omitempty"`
	Mode       string   `json:"mode,omitempty"`
	PlayerName string   `json:"playerName,omitempty"`
	CardIDs    []string `json:"cardIds,omitempty"`
}

// ServerMessage is one websocket frame to the browser.
type ServerMessage struct {
	Type   string     `json:"type"`
	State  *GameView  `json:"state,omitempty"`
	Events []Event    `json:"events,omitempty"`
	Error  *ErrorView `json:"error,omitempty"`
}

type ErrorView struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Event mirrors an app event for the wire.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

type CardDTO struct {
	ID    string `json:"id"`
	Suit  string `json:"suit"`
	Rank  string `json:"rank"`
	Value int    `json:"value"`
	Wild  bool   `json:"wild"`
}

type PlayView struct {
	PlayerIndex int       `json:"playerIndex"`
	Cards       []CardDTO `json:"cards"`
	Rank        int       `json:"rank"`
	Quantity    int       `json:"quantity"`
	UsesWilds   bool      `json:"usesWilds"`
}

func cardToDTO(c domain.Card) CardDTO {
	return CardDTO{ID: c.ID, Suit: string(c.Suit), Rank: c.Rank, Value: c.Value, Wild: c.Wild}
}

func playToView(p domain.Play) *PlayView {
	cards := make([]CardDTO, 0, len(p.Cards))
	for _, c := range p.Cards {
		cards = append(cards, cardToDTO(c))
	}
	return &PlayView{
		PlayerIndex: p.PlayerIndex,
		Cards:       cards,
		Rank:        p.RankValue,
		Quantity:    p.Quantity,
		UsesWilds:   p.UsesWilds,
	}
}

// buildEvents converts app events into their wire form. Play payloads carry
// the full card list so the table can animate them.
func buildEvents(events []app.Event) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		switch p := e.Payload.(type) {
		case app.PlayMadePayload:
			out = append(out, Event{Type: string(e.Kind), Data: map[string]any{
				"playerIndex": p.PlayerIndex,
				"playerName":  p.PlayerName,
				"play":        playToView(p.Play),
				"nextIndex":   p.NextIndex,
				"reasoning":   p.Reasoning,
			}})
		default:
			out = append(out, Event{Type: string(e.Kind), Data: e.Payload})
		}
	}
	return out
}

// errorCode maps app errors to stable wire codes.
func errorCode(err error) string {
	switch err {
	case app.ErrGameOver:
		return "game_over"
	case app.ErrGameNotStarted:
		return "not_started"
	case app.ErrNotYourTurn:
		return "not_your_turn"
	case app.ErrAlreadyPassed:
		return "already_passed"
	case app.ErrCannotPassAsLeader:
		return "cannot_pass_as_leader"
	case app.ErrFirstPlayNeedsOpener:
		return "first_play_needs_opener"
	case app.ErrDoesNotBeat:
		return "does_not_beat"
	case app.ErrUnknownCard:
		return "unknown_card"
	case domain.ErrIllegalWinningCombo:
		return "illegal_winning_combo"
	case domain.ErrEmptySelection, domain.ErrAllWildSelection, domain.ErrMixedRank:
		return "invalid_combination"
	default:
		return "apply_failed"
	}
}
