// Package app contains the game use-cases: starting a game, applying human
// actions, and stepping computer opponents. It owns turn order and round
// resolution; card legality itself lives in domain.
package app

import (
	"errors"
	"math/rand"
	"strings"
	"time"

	"swedishkings/internal/bot"
	"swedishkings/internal/domain"
	"swedishkings/internal/gamelog"
)

// Service operates on match state. The injected rng drives dealing, opponent
// naming and per-game threshold rolls, so a seeded generator makes a whole
// game reproducible.
type Service struct {
	rng *rand.Rand
	log *gamelog.Log
}

// NewService constructs a Service with the provided rng and log, or
// time-seeded / fresh defaults.
func NewService(rng *rand.Rand, log *gamelog.Log) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = gamelog.New()
	}
	return &Service{rng: rng, log: log}
}

// Log exposes the turn log for export.
func (s *Service) Log() *gamelog.Log { return s.log }

var (
	ErrGameOver             = errors.New("game is already over")
	ErrGameNotStarted       = errors.New("game has not started")
	ErrNotYourTurn          = errors.New("not your turn")
	ErrAlreadyPassed        = errors.New("already passed this round")
	ErrCannotPassAsLeader   = errors.New("cannot pass when leading the round")
	ErrFirstPlayNeedsOpener = errors.New("first play of the game must include the 4 of hearts")
	ErrDoesNotBeat          = errors.New("selection does not beat the last play")
	ErrUnknownCard          = errors.New("selected card not in hand")
	ErrNotComputerTurn      = errors.New("current player is not a computer")
)

// Match binds one game's state to its per-game tuning and seated agents.
type Match struct {
	GameID int
	Game   *domain.Game
	Tuning bot.Tuning
	Agents map[int]*bot.Agent
}

// StartGame deals a fresh game for the mode, seats computer opponents with
// drawn names and rolled thresholds, and hands the first turn to whoever
// holds the 4 of hearts.
func (s *Service) StartGame(mode domain.Mode, humanName string) (*Match, []Event, error) {
	if humanName == "" {
		humanName = "You"
	}
	g := domain.NewGame(mode)
	deck := domain.NewDeck()
	switch mode {
	case domain.ModeHeadsUp:
		hands, unused := domain.DealHeadsUp(deck, s.rng)
		g.Players[0].Hand = hands[0]
		g.Players[1].Hand = hands[1]
		g.Unused = unused
	default:
		domain.Shuffle(deck, s.rng)
		hands := domain.Deal(deck, len(g.Players))
		for i, h := range hands {
			g.Players[i].Hand = h
		}
	}

	g.Players[0].Name = humanName
	tuning := bot.NewTuning(mode, s.rng)
	m := &Match{
		GameID: s.log.NextGameID(),
		Game:   g,
		Tuning: tuning,
		Agents: make(map[int]*bot.Agent),
	}
	names := bot.DrawNames(s.rng, len(g.Players)-1)
	for i := 1; i < len(g.Players); i++ {
		g.Players[i].Name = names[i-1]
		m.Agents[i] = bot.NewAgent(i, names[i-1], tuning)
	}

	starter := g.OpenerHolder()
	if starter < 0 {
		starter = 0
	}
	g.CurrentPlayerIndex = starter

	s.log.Append(gamelog.Entry{
		GameID:             m.GameID,
		PlayerIndex:        starter,
		PlayerName:         g.Players[starter].Name,
		Action:             gamelog.ActionGameStart,
		HandSizeBefore:     len(g.Players[starter].Hand),
		Winner:             -1,
		StopThreshold:      tuning.StopOpponentThreshold,
		WildPassThreshold:  tuning.WildPassRatio,
		CheapRankThreshold: tuning.CheapRankThreshold,
	})

	playerNames := make([]string, len(g.Players))
	for i, pl := range g.Players {
		playerNames[i] = pl.Name
	}
	events := []Event{{
		Kind: EventGameStarted,
		Payload: GameStartedPayload{
			GameID:     m.GameID,
			Mode:       mode,
			StarterIdx: starter,
			Players:    playerNames,
		},
	}}
	return m, events, nil
}

// PlayCards validates and applies a human play given by card IDs from the
// player's hand.
func (s *Service) PlayCards(m *Match, playerIdx int, cardIDs []string) ([]Event, error) {
	g := m.Game
	if g.IsGameOver {
		return nil, ErrGameOver
	}
	if g.CurrentPlayerIndex != playerIdx {
		return nil, ErrNotYourTurn
	}
	if g.HasPassed(playerIdx) {
		return nil, ErrAlreadyPassed
	}

	cards, err := pickCards(g.Players[playerIdx].Hand, cardIDs)
	if err != nil {
		return nil, err
	}
	play, err := domain.ValidateCombination(cards)
	if err != nil {
		return nil, err
	}
	play.PlayerIndex = playerIdx

	if !g.IsGameStarted {
		if !domain.ContainsOpener(play.Cards) {
			return nil, ErrFirstPlayNeedsOpener
		}
	} else if !domain.Beats(play, g.LastPlayedHand) {
		return nil, ErrDoesNotBeat
	}
	if len(g.Players[playerIdx].Hand) == play.Quantity && !domain.IsWinningPlayLegal(play) {
		return nil, domain.ErrIllegalWinningCombo
	}

	return s.applyPlay(m, playerIdx, play, "human", ""), nil
}

// PassTurn applies a human pass. Passing is only legal as a response: the
// round opener and the owner of the standing play must act.
func (s *Service) PassTurn(m *Match, playerIdx int) ([]Event, error) {
	g := m.Game
	if g.IsGameOver {
		return nil, ErrGameOver
	}
	if g.CurrentPlayerIndex != playerIdx {
		return nil, ErrNotYourTurn
	}
	if g.HasPassed(playerIdx) {
		return nil, ErrAlreadyPassed
	}
	if !g.IsGameStarted {
		return nil, ErrGameNotStarted
	}
	if g.LastPlayedHand == nil || g.LastPlayedHand.PlayerIndex == playerIdx {
		return nil, ErrCannotPassAsLeader
	}
	return s.applyPass(m, playerIdx, "human", ""), nil
}

// StepBot runs one decision for the current computer player and applies it.
func (s *Service) StepBot(m *Match) ([]Event, error) {
	g := m.Game
	if g.IsGameOver {
		return nil, ErrGameOver
	}
	idx := g.CurrentPlayerIndex
	agent, ok := m.Agents[idx]
	if !ok {
		return nil, ErrNotComputerTurn
	}

	move, decision := agent.Play(g)
	var playPtr *domain.Play
	if !move.Pass {
		playPtr = &move.Play
	}
	reason := bot.ReasonText(decision, playPtr)
	g.Players[idx].LastReasoning = reason

	if move.Pass {
		return s.applyPass(m, idx, decision.StyleTag(), reason), nil
	}

	play := move.Play
	play.PlayerIndex = idx
	// The strategy already vetoes illegal winning plays; re-check here so a
	// misbehaving Brain can never end the game with an ace or wild.
	if len(g.Players[idx].Hand) == play.Quantity && !domain.IsWinningPlayLegal(play) {
		forced := bot.Decision{Pass: true, PassReason: bot.ReasonIllegalWin}
		reason = bot.ReasonText(forced, nil)
		g.Players[idx].LastReasoning = reason
		return s.applyPass(m, idx, forced.StyleTag(), reason), nil
	}
	return s.applyPlay(m, idx, play, decision.StyleTag(), reason), nil
}

func (s *Service) applyPlay(m *Match, playerIdx int, play domain.Play, style, reason string) []Event {
	g := m.Game
	pl := g.Players[playerIdx]
	g.TurnCount++
	s.logTurn(m, playerIdx, gamelog.ActionPlay, &play, style, reason)

	pl.Hand = domain.RemoveCards(pl.Hand, play.Cards)
	g.IsGameStarted = true
	last := play
	g.LastPlayedHand = &last
	g.TrackPlayed(play)

	var tail []Event
	switch {
	case len(pl.Hand) == 0:
		tail = s.endGame(m, playerIdx)
	case play.EndsRound():
		tail = s.endRound(m, playerIdx, "ace")
	case g.RoundOver():
		tail = s.endRound(m, playerIdx, "all_passed")
	default:
		s.advanceTurn(g)
	}

	events := []Event{{
		Kind: EventPlayMade,
		Payload: PlayMadePayload{
			PlayerIndex: playerIdx,
			PlayerName:  pl.Name,
			Play:        play,
			NextIndex:   g.CurrentPlayerIndex,
			Reasoning:   reason,
		},
	}}
	return append(events, tail...)
}

func (s *Service) applyPass(m *Match, playerIdx int, style, reason string) []Event {
	g := m.Game
	g.TurnCount++
	s.logTurn(m, playerIdx, gamelog.ActionPass, nil, style, reason)
	g.PassedPlayers[playerIdx] = true

	var tail []Event
	if g.RoundOver() && g.LastPlayedHand != nil {
		tail = s.endRound(m, g.LastPlayedHand.PlayerIndex, "all_passed")
	} else {
		s.advanceTurn(g)
	}

	events := []Event{{
		Kind: EventTurnPassed,
		Payload: TurnPassedPayload{
			PlayerIndex: playerIdx,
			PlayerName:  g.Players[playerIdx].Name,
			NextIndex:   g.CurrentPlayerIndex,
			Reasoning:   reason,
		},
	}}
	return append(events, tail...)
}

func (s *Service) endRound(m *Match, winnerIdx int, reason string) []Event {
	g := m.Game
	s.logTurn(m, winnerIdx, gamelog.ActionRoundEnd, nil, "", reason)
	g.ResetRound(winnerIdx)
	return []Event{{
		Kind:    EventRoundEnded,
		Payload: RoundEndedPayload{WinnerIndex: winnerIdx, Reason: reason},
	}}
}

func (s *Service) endGame(m *Match, winnerIdx int) []Event {
	g := m.Game
	g.IsGameOver = true
	g.Winner = winnerIdx
	g.LastPlayedHand = nil
	s.log.Append(gamelog.Entry{
		GameID:      m.GameID,
		Turn:        g.TurnCount,
		PlayerIndex: winnerIdx,
		PlayerName:  g.Players[winnerIdx].Name,
		Action:      gamelog.ActionGameEnd,
		Winner:      winnerIdx,
	})
	return []Event{{
		Kind: EventGameEnded,
		Payload: GameEndedPayload{
			WinnerIndex: winnerIdx,
			WinnerName:  g.Players[winnerIdx].Name,
		},
	}}
}

// advanceTurn hands the turn to the next unpassed player clockwise. If every
// seat is marked passed the round is stale; the last play's owner takes the
// lead of a fresh round.
func (s *Service) advanceTurn(g *domain.Game) {
	n := len(g.Players)
	next := g.CurrentPlayerIndex
	for i := 0; i < n; i++ {
		next = (next + 1) % n
		if !g.HasPassed(next) {
			g.CurrentPlayerIndex = next
			return
		}
	}
	if g.LastPlayedHand != nil {
		g.ResetRound(g.LastPlayedHand.PlayerIndex)
	}
}

func (s *Service) logTurn(m *Match, playerIdx int, action gamelog.Action, play *domain.Play, style, reason string) {
	g := m.Game
	pl := g.Players[playerIdx]
	e := gamelog.Entry{
		GameID:         m.GameID,
		Turn:           g.TurnCount,
		PlayerIndex:    playerIdx,
		PlayerName:     pl.Name,
		Action:         action,
		HandSizeBefore: len(pl.Hand),
		PassedBefore:   passedList(g),
		Style:          style,
		Reason:         reason,
		Winner:         -1,
	}
	if g.LastPlayedHand != nil {
		e.LastPlayRank = g.LastPlayedHand.RankValue
		e.LastPlayQty = g.LastPlayedHand.Quantity
	}
	if play != nil {
		displays := make([]string, len(play.Cards))
		for i, c := range play.Cards {
			displays[i] = c.Display()
		}
		e.Cards = strings.Join(displays, ";")
		e.Rank = play.RankValue
		e.Quantity = play.Quantity
		e.UsedWilds = play.UsesWilds
	}
	s.log.Append(e)
}

func passedList(g *domain.Game) []int {
	var out []int
	for i := range g.Players {
		if g.HasPassed(i) {
			out = append(out, i)
		}
	}
	return out
}

func pickCards(hand []domain.Card, ids []string) ([]domain.Card, error) {
	byID := make(map[string]domain.Card, len(hand))
	for _, c := range hand {
		byID[c.ID] = c
	}
	seen := make(map[string]bool, len(ids))
	cards := make([]domain.Card, 0, len(ids))
	for _, id := range ids {
		c, ok := byID[id]
		if !ok || seen[id] {
			return nil, ErrUnknownCard
		}
		seen[id] = true
		cards = append(cards, c)
	}
	return cards, nil
}
