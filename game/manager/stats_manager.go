package manager

import (
	"fmt"
	"sort"
	"time"

	"snake-arcade/game/types"
)

// SessionStore persists finished sessions in the order they were played.
type SessionStore interface {
	AppendSession(rec types.SessionRecord) error
	Sessions() ([]types.SessionRecord, error)
}

// Summary aggregates the recorded sessions
type Summary struct {
	GamesPlayed     int
	AverageScore    float64
	MedianScore     float64
	MaxScore        int
	MaxApples       int
	AverageDuration time.Duration
}

// StatsManager keeps the session history in memory and mirrors it to a SessionStore.
type StatsManager struct {
	store    SessionStore
	sessions []types.SessionRecord
}

// NewStatsManager loads existing history from store. A nil store keeps history in memory only.
func NewStatsManager(store SessionStore) (*StatsManager, error) {
	sm := &StatsManager{store: store, sessions: make([]types.SessionRecord, 0)}
	if store == nil {
		return sm, nil
	}
	sessions, err := store.Sessions()
	if err != nil {
		return sm, fmt.Errorf("load sessions: %w", err)
	}
	sm.sessions = append(sm.sessions, sessions...)
	return sm, nil
}

// AddSession records a finished session
func (sm *StatsManager) AddSession(rec types.SessionRecord) error {
	sm.sessions = append(sm.sessions, rec)
	if sm.store == nil {
		return nil
	}
	if err := sm.store.AppendSession(rec); err != nil {
		return fmt.Errorf("append session %s: %w", rec.ID, err)
	}
	return nil
}

// Recent returns up to n most recent sessions, oldest first
func (sm *StatsManager) Recent(n int) []types.SessionRecord {
	start := 0
	if n >= 0 && len(sm.sessions) > n {
		start = len(sm.sessions) - n
	}
	out := make([]types.SessionRecord, len(sm.sessions)-start)
	copy(out, sm.sessions[start:])
	return out
}

func (sm *StatsManager) Summary() Summary {
	var s Summary
	s.GamesPlayed = len(sm.sessions)
	if s.GamesPlayed == 0 {
		return s
	}

	var totalScore int
	var totalDuration time.Duration
	scores := make([]int, 0, len(sm.sessions))
	for _, rec := range sm.sessions {
		totalScore += rec.Score
		totalDuration += rec.Duration()
		scores = append(scores, rec.Score)
		if rec.Score > s.MaxScore {
			s.MaxScore = rec.Score
		}
		if rec.ApplesEaten > s.MaxApples {
			s.MaxApples = rec.ApplesEaten
		}
	}
	s.AverageScore = float64(totalScore) / float64(s.GamesPlayed)
	s.AverageDuration = totalDuration / time.Duration(s.GamesPlayed)

	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		s.MedianScore = float64(scores[mid-1]+scores[mid]) / 2
	} else {
		s.MedianScore = float64(scores[mid])
	}
	return s
}
