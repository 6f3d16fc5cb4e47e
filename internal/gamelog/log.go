// Package gamelog accumulates structured per-turn records across games and
// projects them to a flat CSV table. The engine only appends; export is a
// pure formatting pass.
package gamelog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Action identifies the kind of a log entry.
type Action string

const (
	ActionGameStart Action = "game_start"
	ActionPlay      Action = "play"
	ActionPass      Action = "pass"
	ActionRoundEnd  Action = "round_end"
	ActionGameEnd   Action = "game_end"
)

// Entry is one recorded turn or lifecycle event.
type Entry struct {
	GameID      int
	Turn        int
	PlayerIndex int
	PlayerName  string
	Action      Action

	// Pre-action context.
	HandSizeBefore int
	PassedBefore   []int
	LastPlayRank   int // 0 when no last play
	LastPlayQty    int

	// Action-specific fields.
	Cards     string // card displays joined by ';'
	Rank      int
	Quantity  int
	UsedWilds bool
	Style     string
	Reason    string
	Winner    int // -1 when not applicable

	// Per-game tuning, recorded on game_start.
	StopThreshold      int
	WildPassThreshold  float64
	CheapRankThreshold int
}

// Log is an append-only record list spanning games.
type Log struct {
	mu          sync.Mutex
	entries     []Entry
	gameCounter int
}

// New returns an empty log.
func New() *Log {
	return &Log{}
}

// NextGameID advances and returns the game counter.
func (l *Log) NextGameID() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gameCounter++
	return l.gameCounter
}

// Append records one entry.
func (l *Log) Append(e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, e)
}

// Entries returns a snapshot of all recorded entries.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.entries...)
}

// csvHeaders matches the original export table, one column per field.
var csvHeaders = []string{
	"GameID", "Turn", "PlayerIndex", "PlayerName", "Action", "CardsPlayed",
	"Rank", "Quantity", "UsedWilds", "AIPlayStyle", "HandSizeBefore",
	"PassedListBefore", "LastPlayRank", "LastPlayQty", "Reason", "Winner",
	"StopThreshold", "WildPassThreshold", "CheapRankThreshold",
}

// WriteCSV projects the whole log as delimited text.
func (l *Log) WriteCSV(w io.Writer) error {
	entries := l.Entries()
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders); err != nil {
		return err
	}
	for _, e := range entries {
		passed := make([]string, len(e.PassedBefore))
		for i, p := range e.PassedBefore {
			passed[i] = fmt.Sprintf("%d", p)
		}
		record := []string{
			fmt.Sprintf("%d", e.GameID),
			fmt.Sprintf("%d", e.Turn),
			fmt.Sprintf("%d", e.PlayerIndex),
			e.PlayerName,
			string(e.Action),
			e.Cards,
			blankIfZero(e.Rank),
			blankIfZero(e.Quantity),
			fmt.Sprintf("%t", e.UsedWilds),
			e.Style,
			fmt.Sprintf("%d", e.HandSizeBefore),
			strings.Join(passed, ";"),
			blankIfZero(e.LastPlayRank),
			blankIfZero(e.LastPlayQty),
			e.Reason,
			blankIfNegative(e.Winner),
			blankIfZero(e.StopThreshold),
			blankIfZeroFloat(e.WildPassThreshold),
			blankIfZero(e.CheapRankThreshold),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func blankIfZero(v int) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%d", v)
}

func blankIfNegative(v int) string {
	if v < 0 {
		return ""
	}
	return fmt.Sprintf("%d", v)
}

func blankIfZeroFloat(v float64) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%.2f", v)
}
