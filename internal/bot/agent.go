package bot

import "swedishkings/internal/domain"

// Agent is an autonomous computer player: an identity plus a strategy.
type Agent struct {
	PlayerIndex int
	Name        string
	Strategy    Brain
}

// NewAgent seats a ladder strategy at the given index.
func NewAgent(playerIndex int, name string, tuning Tuning) *Agent {
	return &Agent{
		PlayerIndex: playerIndex,
		Name:        name,
		Strategy:    NewLadderBot(tuning),
	}
}

// Play asks the agent for its move. Strategy errors degrade to a pass so the
// game stays playable.
func (a *Agent) Play(game *domain.Game) (Move, Decision) {
	move, decision, err := a.Strategy.CalculateMove(game, a.PlayerIndex)
	if err != nil {
		return Move{Pass: true}, Decision{Pass: true, PassReason: ReasonInternalError}
	}
	return move, decision
}
