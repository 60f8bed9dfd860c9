package service

import (
	"fmt"
	"io"
	"log"
	"math"
	"strconv"
	"strings"

	"runcalc/internal/analysis"
	"runcalc/internal/config"
	"runcalc/internal/store"
)

// SettingsStore persists the settings blob
type SettingsStore interface {
	LoadSettings(base config.Settings) (config.Settings, error)
	SaveSettings(settings config.Settings) error
	ResetSettings() error
}

// HistoryStore persists prediction runs
type HistoryStore interface {
	RecordPredictions(set analysis.PredictionSet, refMeters, refSeconds float64, unit analysis.Unit) (int64, error)
	ListPredictionRuns(limit int) ([]store.PredictionRun, error)
	GetPredictionRun(id int64) (*store.PredictionRun, error)
	DeletePredictionRuns() error
}

// Store is everything the calculator service persists. *store.Store satisfies it.
type Store interface {
	SettingsStore
	HistoryStore
}

// CalculatorService turns raw user input into formatted calculator results,
// filling gaps from the runner's saved settings
type CalculatorService struct {
	store    Store
	base     config.Settings
	settings config.Settings
	logger   *log.Logger
}

// NewCalculatorService loads saved settings over base. A nil logger discards output.
func NewCalculatorService(st Store, base config.Settings, logger *log.Logger) (*CalculatorService, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	settings, err := st.LoadSettings(base)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	logger.Printf("CalculatorService: start unit=%s mas=%v reference=%v", settings.Unit, config.Float(settings.MAS), settings.HasReference())
	return &CalculatorService{
		store:    st,
		base:     base.Clone(),
		settings: settings,
		logger:   logger,
	}, nil
}

// Settings returns a copy of the current settings
func (c *CalculatorService) Settings() config.Settings {
	return c.settings.Clone()
}

// UpdateSettings merges and persists a partial update
func (c *CalculatorService) UpdateSettings(patch config.SettingsPatch) (config.Settings, error) {
	next, err := c.settings.Apply(patch)
	if err != nil {
		return c.Settings(), err
	}
	return c.saveSettings(next)
}

// SetSetting assigns one key from its string form and persists the result
func (c *CalculatorService) SetSetting(key, value string) (config.Settings, error) {
	next, err := c.settings.Set(key, value)
	if err != nil {
		return c.Settings(), err
	}
	c.logger.Printf("CalculatorService: set %s=%q", key, value)
	return c.saveSettings(next)
}

// SetSettings assigns several keys from their string forms and persists the result
func (c *CalculatorService) SetSettings(values map[string]string) (config.Settings, error) {
	next, err := c.settings.SetAll(values)
	if err != nil {
		return c.Settings(), err
	}
	c.logger.Printf("CalculatorService: set %d settings", len(values))
	return c.saveSettings(next)
}

// ResetSettings drops saved settings and returns to the configured defaults
func (c *CalculatorService) ResetSettings() (config.Settings, error) {
	if err := c.store.ResetSettings(); err != nil {
		return c.Settings(), err
	}
	c.settings = c.base.Clone()
	return c.Settings(), nil
}

func (c *CalculatorService) saveSettings(next config.Settings) (config.Settings, error) {
	if err := c.store.SaveSettings(next); err != nil {
		return c.Settings(), fmt.Errorf("saving settings: %w", err)
	}
	c.settings = next
	return c.Settings(), nil
}

// unit resolves a per-request unit override against the saved preference
func (c *CalculatorService) unit(override analysis.Unit) analysis.Unit {
	if override == analysis.UnitKm || override == analysis.UnitMile {
		return override
	}
	return c.settings.Unit
}

// masOrSaved parses an explicit MAS, falling back to the saved value.
// ok is false when neither is available.
func (c *CalculatorService) masOrSaved(input string) (float64, bool, error) {
	if strings.TrimSpace(input) == "" {
		if c.settings.MAS == nil {
			return 0, false, nil
		}
		return *c.settings.MAS, true, nil
	}
	mas, err := parsePositive("mas", input)
	if err != nil {
		return 0, false, err
	}
	return mas, true, nil
}

// parsePositive parses a finite, strictly positive number
func parsePositive(field, input string) (float64, error) {
	value := strings.TrimSpace(input)
	n, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, invalid(field, value, "not a number")
	}
	if !(n > 0) {
		return 0, invalid(field, value, "must be positive")
	}
	return n, nil
}

// parseOptionalPositive parses input, or returns fallback when input is empty
func parseOptionalPositive(field, input string, fallback *float64) (float64, bool, error) {
	if strings.TrimSpace(input) == "" {
		if fallback == nil {
			return 0, false, nil
		}
		return *fallback, true, nil
	}
	n, err := parsePositive(field, input)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

// orDefault returns input, or def when input is blank
func orDefault(input, def string) string {
	if strings.TrimSpace(input) == "" {
		return def
	}
	return strings.TrimSpace(input)
}

// capitalizeFirst capitalizes the first letter of a string
func capitalizeFirst(s string) string {
	if len(s) == 0 {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-32) + s[1:]
	}
	return s
}
