package manager

import (
	"fmt"
	"strconv"
	"strings"

	"snake-arcade/game/types"
	"snake-arcade/monitoring"
)

// KeyValueStore is the single key/value persistence the high score lives in.
type KeyValueStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// StateManager holds the high score and persists it as text under
// types.HighScoreKey. It only ever moves upward.
type StateManager struct {
	store     KeyValueStore
	highScore int
}

func NewStateManager(store KeyValueStore) *StateManager {
	sm := &StateManager{store: store}
	sm.Load()
	return sm
}

// Load merges the stored high score into the known one. Missing, unreadable
// or unparseable values leave the known score untouched, so it never drops.
func (sm *StateManager) Load() int {
	if sm.store == nil {
		return sm.highScore
	}
	raw, ok, err := sm.store.Get(types.HighScoreKey)
	if err != nil {
		monitoring.Logf("high score: load failed: %v", err)
		return sm.highScore
	}
	if !ok {
		return sm.highScore
	}
	score, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || score < 0 {
		monitoring.Logf("high score: ignoring unparseable value %q", raw)
		return sm.highScore
	}
	if score > sm.highScore {
		sm.highScore = score
	}
	return sm.highScore
}

// Save stores score if it beats the known high score.
func (sm *StateManager) Save(score int) (bool, error) {
	if score <= sm.highScore {
		return false, nil
	}
	sm.highScore = score
	if sm.store == nil {
		return true, nil
	}
	if err := sm.store.Set(types.HighScoreKey, strconv.Itoa(score)); err != nil {
		return true, fmt.Errorf("save high score: %w", err)
	}
	return true, nil
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}
