package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"snake-arcade/game/types"
	"snake-arcade/monitoring"
)

const DefaultJSONPath = "data/snake.json"

type jsonFile struct {
	Values   map[string]string     `json:"values"`
	Sessions []types.SessionRecord `json:"sessions"`
}

// JSONStore keeps the data in a single JSON file, rewritten on every change.
type JSONStore struct {
	path string
	data jsonFile
}

// OpenJSON loads path if it exists. A corrupt file is moved to path+".corrupt"
// and the store starts empty.
func OpenJSON(path string) (*JSONStore, error) {
	if path == "" {
		path = DefaultJSONPath
	}
	s := &JSONStore{
		path: path,
		data: jsonFile{Values: make(map[string]string), Sessions: make([]types.SessionRecord, 0)},
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var loaded jsonFile
	if err := json.Unmarshal(raw, &loaded); err != nil {
		backup := path + ".corrupt"
		if rerr := os.Rename(path, backup); rerr != nil {
			return nil, fmt.Errorf("move aside corrupt %s: %w", path, rerr)
		}
		monitoring.Logf("storage: %s is not valid JSON, moved to %s and starting empty: %v", path, backup, err)
		return s, nil
	}
	if loaded.Values != nil {
		s.data.Values = loaded.Values
	}
	if loaded.Sessions != nil {
		s.data.Sessions = loaded.Sessions
	}
	return s, nil
}

func (s *JSONStore) Get(key string) (string, bool, error) {
	v, ok := s.data.Values[key]
	return v, ok, nil
}

func (s *JSONStore) Set(key, value string) error {
	s.data.Values[key] = value
	return s.save()
}

func (s *JSONStore) AppendSession(rec types.SessionRecord) error {
	s.data.Sessions = append(s.data.Sessions, rec)
	return s.save()
}

func (s *JSONStore) Sessions() ([]types.SessionRecord, error) {
	out := make([]types.SessionRecord, len(s.data.Sessions))
	copy(out, s.data.Sessions)
	return out, nil
}

func (s *JSONStore) Close() error {
	return nil
}

// save writes to a temp file and renames it over the old one
func (s *JSONStore) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
