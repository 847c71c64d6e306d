package storage

import (
	"fmt"

	"snake-arcade/game/types"
)

// Store persists the high score key and the session history.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	AppendSession(rec types.SessionRecord) error
	Sessions() ([]types.SessionRecord, error)
	Close() error
}

const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Open returns the store for driver at path
func Open(driver, path string) (Store, error) {
	switch driver {
	case DriverJSON:
		return OpenJSON(path)
	case DriverSQLite:
		return OpenSQLite(path)
	case DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
