package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"runcalc/internal/config"
)

// SettingsKey is the kv key the settings blob is stored under
const SettingsKey = "running-calculator:settings"

// LoadSettings returns the saved settings merged over base.
// Fields missing from the blob keep their base value. A missing, corrupt or
// invalid blob yields base unchanged.
func (s *Store) LoadSettings(base config.Settings) (config.Settings, error) {
	raw, err := s.GetValue(SettingsKey)
	if errors.Is(err, ErrNotFound) {
		s.logger.Printf("Store: LoadSettings (no saved settings)")
		return base, nil
	}
	if err != nil {
		return base, fmt.Errorf("reading settings: %w", err)
	}

	merged := base.Clone()
	if err := json.Unmarshal([]byte(raw), &merged); err != nil {
		s.logger.Printf("Store: LoadSettings failed to parse: %v", err)
		return base, nil
	}
	if err := merged.Validate(); err != nil {
		s.logger.Printf("Store: LoadSettings ignoring saved settings: %v", err)
		return base, nil
	}

	s.logger.Printf("Store: LoadSettings -> %s", raw)
	return merged, nil
}

// SaveSettings validates and persists the settings blob
func (s *Store) SaveSettings(settings config.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := s.SetValue(SettingsKey, string(raw)); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	s.logger.Printf("Store: SaveSettings -> %s", raw)
	return nil
}

// ResetSettings deletes the saved blob
func (s *Store) ResetSettings() error {
	if err := s.DeleteValue(SettingsKey); err != nil {
		return fmt.Errorf("deleting settings: %w", err)
	}
	s.logger.Printf("Store: ResetSettings")
	return nil
}
