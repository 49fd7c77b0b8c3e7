package manager

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// MatchRecord is the result of one finished match.
type MatchRecord struct {
	MatchID string         `json:"match_id"`
	Scores  map[string]int `json:"scores"`
	Winner  string         `json:"winner,omitempty"` // empty on a tie
}

// SessionStats is a copy of the running tally.
type SessionStats struct {
	Matches   int            `json:"matches"`
	Ties      int            `json:"ties"`
	HighScore int            `json:"high_score"`
	Wins      map[string]int `json:"wins"`
}

// StateManager keeps the tally of finished matches for the lifetime of the
// process. It is not safe for concurrent use; the game serializes access.
type StateManager struct {
	highScore int
	ties      int
	wins      map[string]int
	history   []MatchRecord
}

func NewStateManager() *StateManager {
	return &StateManager{
		wins:    make(map[string]int),
		history: make([]MatchRecord, 0),
	}
}

func (sm *StateManager) Record(rec MatchRecord) {
	rec.Scores = maps.Clone(rec.Scores)
	sm.history = append(sm.history, rec)

	if rec.Winner == "" {
		sm.ties++
	} else {
		sm.wins[rec.Winner]++
	}
	for _, score := range rec.Scores {
		if score > sm.highScore {
			sm.highScore = score
		}
	}
}

func (sm *StateManager) Stats() SessionStats {
	return SessionStats{
		Matches:   len(sm.history),
		Ties:      sm.ties,
		HighScore: sm.highScore,
		Wins:      maps.Clone(sm.wins),
	}
}

func (sm *StateManager) History() []MatchRecord {
	return slices.Clone(sm.history)
}
