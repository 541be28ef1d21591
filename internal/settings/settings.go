package settings

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

const fileName = "scoreboard.json"

// Settings is the persisted admin state.
type Settings struct {
	GameID int64 `json:"gameId"`
}

// FSStore persists settings as a JSON file under basePath.
type FSStore struct {
	basePath string
}

// NewFSStore constructs a settings store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

func (s *FSStore) path() string {
	return filepath.Join(s.basePath, fileName)
}

// Load reads the persisted settings. A missing file yields zero settings.
func (s *FSStore) Load() (Settings, error) {
	if s == nil {
		return Settings{}, errors.New("settings store not configured")
	}
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}, nil
		}
		return Settings{}, err
	}
	var out Settings
	if err := json.Unmarshal(data, &out); err != nil {
		return Settings{}, err
	}
	return out, nil
}

// Save writes the settings atomically.
func (s *FSStore) Save(settings Settings) error {
	if s == nil {
		return errors.New("settings store not configured")
	}
	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	target := s.path()
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

// Reset clears the persisted selection. Boot starts with no game selected so
// a stale selection never drives the display after a restart.
func (s *FSStore) Reset() error {
	return s.Save(Settings{})
}
