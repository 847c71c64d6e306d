package storage

import (
	"snake-arcade/game/types"
)

// MemoryStore keeps everything in process memory.
type MemoryStore struct {
	values   map[string]string
	sessions []types.SessionRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values:   make(map[string]string),
		sessions: make([]types.SessionRecord, 0),
	}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.values[key] = value
	return nil
}

func (m *MemoryStore) AppendSession(rec types.SessionRecord) error {
	m.sessions = append(m.sessions, rec)
	return nil
}

func (m *MemoryStore) Sessions() ([]types.SessionRecord, error) {
	out := make([]types.SessionRecord, len(m.sessions))
	copy(out, m.sessions)
	return out, nil
}

func (m *MemoryStore) Close() error {
	return nil
}
