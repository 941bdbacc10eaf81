package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/orbitlabs/missionctl/internal/domain"
)

// SettingsStore implements domain.SettingsRepository using a JSON file.
type SettingsStore struct {
	path string
}

// NewSettings creates a new SettingsStore for the given file path.
func NewSettings(path string) *SettingsStore {
	return &SettingsStore{path: path}
}

// Load returns the stored settings. Absent or malformed records fall back to
// the built-in defaults; malformed fields are normalized.
func (s *SettingsStore) Load() (domain.Settings, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DefaultSettings(), nil
		}
		return domain.DefaultSettings(), fmt.Errorf("read settings record: %w", err)
	}

	var settings domain.Settings
	if err := json.Unmarshal(content, &settings); err != nil {
		return domain.DefaultSettings(), nil
	}
	return settings.Normalized(), nil
}

// Save persists the settings via a temp file rename for atomicity.
func (s *SettingsStore) Save(settings domain.Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	content, err := json.MarshalIndent(settings.Normalized(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Ensure SettingsStore implements SettingsRepository.
var _ domain.SettingsRepository = (*SettingsStore)(nil)
