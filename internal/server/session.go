package server

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"swedishkings/internal/app"
	"swedishkings/internal/domain"
)

// Session is the single-table game session: one human browser connection
// playing against in-process computer opponents. All mutation happens under
// the session lock.
type Session struct {
	mu        sync.Mutex
	id        string
	svc       *app.Service
	match     *app.Match
	conn      *websocket.Conn
	actionIDs map[string]bool
	botDelay  time.Duration
	// defaultMode is used when start_game names no mode.
	defaultMode domain.Mode
}

var (
	sessionOnce sync.Once
	sessionInst *Session
)

// GetSession returns the process-wide session, creating it on first call.
// Later calls ignore the arguments.
func GetSession(svc *app.Service, defaultMode domain.Mode, botDelay time.Duration) *Session {
	sessionOnce.Do(func() {
		sessionInst = &Session{
			id:          uuid.NewString(),
			svc:         svc,
			actionIDs:   make(map[string]bool),
			botDelay:    botDelay,
			defaultMode: defaultMode,
		}
	})
	return sessionInst
}

// HandleConnection reads client frames until the connection drops. A new
// connection replaces the previous one; the match survives reconnects.
func (s *Session) HandleConnection(conn *websocket.Conn) {
	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError("bad_request", "invalid json")
			continue
		}
		s.handleMessage(msg)
	}
}

func (s *Session) handleMessage(msg ClientMessage) {
	switch msg.Type {
	case "join_session", "request_state":
		s.sendState(nil)
	case "new_game":
		s.startGame(msg.Mode, msg.PlayerName)
	case "play":
		s.humanAction(msg.ActionID, func() ([]app.Event, error) {
			return s.svc.PlayCards(s.match, 0, msg.CardIDs)
		})
	case "pass":
		s.humanAction(msg.ActionID, func() ([]app.Event, error) {
			return s.svc.PassTurn(s.match, 0)
		})
	default:
		s.sendError("unknown_type", "unknown message type")
	}
}

func (s *Session) startGame(mode, playerName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.defaultMode
	switch mode {
	case string(domain.ModeHeadsUp):
		m = domain.ModeHeadsUp
	case string(domain.ModeThreePlayer):
		m = domain.ModeThreePlayer
	case "":
	default:
		s.sendErrorLocked("bad_mode", "unknown game mode")
		return
	}

	match, events, err := s.svc.StartGame(m, playerName)
	if err != nil {
		s.sendErrorLocked("start_failed", err.Error())
		return
	}
	s.match = match
	s.actionIDs = make(map[string]bool)
	s.sendStateLocked(buildEvents(events))
	s.runBotsLocked()
}

// humanAction applies one validated human action. Replayed action ids resend
// the current state instead of acting twice.
func (s *Session) humanAction(actionID string, act func() ([]app.Event, error)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.match == nil {
		s.sendErrorLocked("not_started", "no game in progress")
		return
	}
	if actionID == "" {
		s.sendErrorLocked("missing_action_id", "actionId required")
		return
	}
	if s.actionIDs[actionID] {
		s.sendStateLocked(nil)
		return
	}
	s.actionIDs[actionID] = true

	events, err := act()
	if err != nil {
		s.sendErrorLocked(errorCode(err), err.Error())
		return
	}
	s.sendStateLocked(buildEvents(events))
	s.runBotsLocked()
}

// runBotsLocked steps computer players until the turn returns to the human
// or the game ends, pacing each move by the configured delay.
func (s *Session) runBotsLocked() {
	for {
		g := s.match.Game
		if g.IsGameOver {
			return
		}
		if _, ok := s.match.Agents[g.CurrentPlayerIndex]; !ok {
			return
		}
		if s.botDelay > 0 {
			time.Sleep(s.botDelay)
		}
		events, err := s.svc.StepBot(s.match)
		if err != nil {
			log.Printf("bot step error: %v", err)
			return
		}
		s.sendStateLocked(buildEvents(events))
	}
}

func (s *Session) sendState(events []Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendStateLocked(events)
}

func (s *Session) sendStateLocked(events []Event) {
	if s.conn == nil {
		return
	}
	msg := ServerMessage{
		Type:   "state",
		State:  BuildGameView(s.match, 0, s.id),
		Events: events,
	}
	if err := s.conn.WriteJSON(msg); err != nil {
		log.Printf("ws write: %v", err)
	}
}

func (s *Session) sendError(code, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendErrorLocked(code, message)
}

func (s *Session) sendErrorLocked(code, message string) {
	if s.conn == nil {
		return
	}
	msg := ServerMessage{
		Type:  "error",
		Error: &ErrorView{Code: code, Message: message},
	}
	if err := s.conn.WriteJSON(msg); err != nil {
		log.Printf("ws write: %v", err)
	}
}

// Snapshot returns the current view without a websocket round-trip.
func (s *Session) Snapshot() *GameView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return BuildGameView(s.match, 0, s.id)
}
