package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/stillness/internal/logger"
	"github.com/julianstephens/stillness/internal/models"
)

// JSONStore keeps the whole aggregate in a single pretty-printed JSON file.
type JSONStore struct {
	path string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.Save(models.DefaultState())
}

// Load reads the aggregate from disk. An absent file is a fresh installation
// and a malformed one is treated the same way: both yield the default state.
// Unmarshalling over the default value merges stored fields field-by-field,
// so fields added in a schema upgrade keep their defaults.
func (s *JSONStore) Load() (models.AppState, error) {
	state := models.DefaultState()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return state, nil
		}
		return state, fmt.Errorf("failed to read storage: %w", err)
	}

	if err := json.Unmarshal(data, &state); err != nil {
		logger.Warn("Persisted state is malformed, falling back to defaults", "path", s.path, "error", err)
		return models.DefaultState(), nil
	}

	return state, nil
}

func (s *JSONStore) Save(state models.AppState) error {
	state.Version = models.StateVersion

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

// Reset removes the state file; the next Load yields the default aggregate.
func (s *JSONStore) Reset() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to reset storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
