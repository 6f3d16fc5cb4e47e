package app

import "swedishkings/internal/domain"

// EventKind identifies app events emitted toward the presentation layer.
type EventKind string

const (
	EventGameStarted EventKind = "game_start"
	EventPlayMade    EventKind = "play"
	EventTurnPassed  EventKind = "pass"
	EventRoundEnded  EventKind = "round_end"
	EventGameEnded   EventKind = "game_end"
)

// Event is one state transition the UI may react to.
type Event struct {
	Kind    EventKind
	Payload any
}

type GameStartedPayload struct {
	GameID     int
	Mode       domain.Mode
	StarterIdx int
	Players    []string
}

type PlayMadePayload struct {
	PlayerIndex int
	PlayerName  string
	Play        domain.Play
	NextIndex   int
	Reasoning   string
}

type TurnPassedPayload struct {
	PlayerIndex int
	PlayerName  string
	NextIndex   int
	Reasoning   string
}

// RoundEndedPayload reports who takes the lead for the next round. Reason is
// "ace" when an ace closed the round, "all_passed" otherwise.
type RoundEndedPayload struct {
	WinnerIndex int
	Reason      string
}

type GameEndedPayload struct {
	WinnerIndex int
	WinnerName  string
}
