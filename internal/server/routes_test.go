package server

import (
	"encoding/json"
	"math/rand"
	"net/http/httptest"
	"strings"
	"testing"

	"swedishkings/internal/app"
	"swedishkings/internal/domain"
	"swedishkings/internal/gamelog"
)

func testSession(t *testing.T) *Session {
	t.Helper()
	return &Session{
		id:          "test-session",
		svc:         app.NewService(rand.New(rand.NewSource(1)), gamelog.New()),
		actionIDs:   make(map[string]bool),
		defaultMode: domain.ModeThreePlayer,
	}
}

func TestHealthEndpoint(t *testing.T) {
	h := Routes(testSession(t), t.TempDir())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/api/health", nil))
	if rec.Code != 200 || rec.Body.String() != "ok" {
		t.Fatalf("health = %d %q", rec.Code, rec.Body.String())
	}
}

func TestStateEndpointBeforeAndAfterStart(t *testing.T) {
	s := testSession(t)
	h := Routes(s, t.TempDir())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/api/state", nil))
	var view GameView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Started || len(view.Players) != 0 {
		t.Errorf("pre-start view = %+v, want empty shell", view)
	}

	match, _, err := s.svc.StartGame(domain.ModeThreePlayer, "Alex")
	if err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	s.match = match

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/api/state", nil))
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(view.Players) != 3 {
		t.Fatalf("got %d players, want 3", len(view.Players))
	}
	if len(view.Players[0].Hand) != 18 {
		t.Errorf("viewer hand = %d cards, want 18", len(view.Players[0].Hand))
	}
	for _, pl := range view.Players[1:] {
		if len(pl.Hand) != 0 {
			t.Errorf("opponent %d hand leaked to viewer", pl.Index)
		}
		if pl.HandCount != 18 {
			t.Errorf("opponent %d count = %d, want 18", pl.Index, pl.HandCount)
		}
	}
}

func TestLogsCSVEndpoint(t *testing.T) {
	s := testSession(t)
	match, _, err := s.svc.StartGame(domain.ModeHeadsUp, "")
	if err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	s.match = match

	h := Routes(s, t.TempDir())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/api/logs.csv", nil))
	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "GameID,Turn,") {
		t.Errorf("missing csv header: %q", body)
	}
	if !strings.Contains(body, "game_start") {
		t.Error("csv missing the game_start row")
	}
}

func TestBuildGameViewHidesNothingForNilMatch(t *testing.T) {
	view := BuildGameView(nil, 0, "sid")
	if view.SessionID != "sid" || view.Winner != -1 {
		t.Errorf("nil-match view = %+v", view)
	}
}
