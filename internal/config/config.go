package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"runcalc/internal/analysis"
)

// EnvPrefix prefixes environment overrides, e.g. RUNCALC_DISPLAY_UNIT=mile
const EnvPrefix = "RUNCALC"

// Config represents the application configuration
type Config struct {
	Athlete AthleteConfig `json:"athlete" mapstructure:"athlete"`
	Display DisplayConfig `json:"display" mapstructure:"display"`
	Storage StorageConfig `json:"storage" mapstructure:"storage"`
	Log     LogConfig     `json:"log" mapstructure:"log"`
}

// AthleteConfig holds athlete-specific defaults. Zero means not set.
type AthleteConfig struct {
	RestingHR float64 `json:"resting_hr" mapstructure:"resting_hr"`
	MaxHR     float64 `json:"max_hr" mapstructure:"max_hr"`
	MASKmh    float64 `json:"mas_kmh" mapstructure:"mas_kmh"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	Unit     string `json:"unit" mapstructure:"unit"`
	Language string `json:"language" mapstructure:"language"`
	Theme    string `json:"theme" mapstructure:"theme"`
}

// StorageConfig locates the settings database
type StorageConfig struct {
	DBPath string `json:"db_path" mapstructure:"db_path"`
}

// LogConfig controls the rotating log file. File "-" logs to stderr.
type LogConfig struct {
	File       string `json:"file" mapstructure:"file"`
	MaxSizeMB  int    `json:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int    `json:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int    `json:"max_age_days" mapstructure:"max_age_days"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	dir, err := GetConfigDir()
	if err != nil {
		dir = "."
	}
	return Config{
		Display: DisplayConfig{
			Unit:     string(analysis.UnitKm),
			Language: string(LanguageEnglish),
			Theme:    string(ThemeSystem),
		},
		Storage: StorageConfig{
			DBPath: filepath.Join(dir, "runcalc.db"),
		},
		Log: LogConfig{
			File:       filepath.Join(dir, "runcalc.log"),
			MaxSizeMB:  5,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// NewViper returns a viper instance seeded with defaults and env overrides.
// path may be empty to use ~/.runcalc/config.json.
func NewViper(path string) (*viper.Viper, error) {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := DefaultConfig()
	v.SetDefault("athlete.resting_hr", d.Athlete.RestingHR)
	v.SetDefault("athlete.max_hr", d.Athlete.MaxHR)
	v.SetDefault("athlete.mas_kmh", d.Athlete.MASKmh)
	v.SetDefault("display.unit", d.Display.Unit)
	v.SetDefault("display.language", d.Display.Language)
	v.SetDefault("display.theme", d.Display.Theme)
	v.SetDefault("storage.db_path", d.Storage.DBPath)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age_days", d.Log.MaxAgeDays)

	return v, nil
}

// BindFlags maps command-line flags onto config keys. Only flags present in the set are bound.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"unit":     "display.unit",
		"db":       "storage.db_path",
		"log-file": "log.file",
	}
	for name, key := range bindings {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads the configuration file into cfg, layered over defaults and env.
// A missing file is not fatal: the defaults are returned along with ErrNoConfig.
func Load(v *viper.Viper) (*Config, error) {
	var missing bool
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		missing = true
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if missing {
		return &cfg, ErrNoConfig
	}
	return &cfg, nil
}

// Save writes the configuration to path (default ~/.runcalc/config.json)
func Save(cfg *Config, path string) error {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample(path string) error {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	example.Athlete = AthleteConfig{
		RestingHR: 50,
		MaxHR:     185,
		MASKmh:    16,
	}

	return Save(&example, path)
}

// Validate checks display values and the heart-rate pair
func (c *Config) Validate() error {
	if _, ok := analysis.ParseUnit(c.Display.Unit); c.Display.Unit != "" && !ok {
		return fmt.Errorf("display.unit must be \"km\" or \"mile\", got %q", c.Display.Unit)
	}
	if c.Display.Language != "" && !Language(c.Display.Language).Valid() {
		return fmt.Errorf("display.language must be \"en\" or \"fr\", got %q", c.Display.Language)
	}
	if c.Display.Theme != "" && !Theme(c.Display.Theme).Valid() {
		return fmt.Errorf("display.theme must be \"light\", \"dark\" or \"system\", got %q", c.Display.Theme)
	}

	if c.Athlete.RestingHR < 0 || c.Athlete.MaxHR < 0 || c.Athlete.MASKmh < 0 {
		return errors.New("athlete values must not be negative")
	}
	// Validate resting_hr < max_hr when both are set
	if c.Athlete.RestingHR > 0 && c.Athlete.MaxHR > 0 && c.Athlete.RestingHR >= c.Athlete.MaxHR {
		return fmt.Errorf("athlete.resting_hr (%v) must be less than athlete.max_hr (%v)", c.Athlete.RestingHR, c.Athlete.MaxHR)
	}

	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".runcalc"), nil
}
