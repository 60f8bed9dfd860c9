package config

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"runcalc/internal/analysis"
)

// Language is the display language preference
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageFrench  Language = "fr"
)

// Valid reports whether l is a supported language
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageFrench
}

// Theme is the color theme preference
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Valid reports whether t is a supported theme
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeSystem
}

// ErrInvalidSettings is returned when a settings value is out of range
var ErrInvalidSettings = errors.New("invalid settings")

// Settings is the runner's saved preferences and baselines.
// Nil pointers mean "not set". Field names match the persisted JSON blob.
type Settings struct {
	Language          Language      `json:"language"`
	Unit              analysis.Unit `json:"unit"`
	MAS               *float64      `json:"mas"` // km/h
	Theme             Theme         `json:"theme"`
	RefDistanceMeters *float64      `json:"refDistanceMeters"`
	RefTimeSeconds    *float64      `json:"refTimeSeconds"`
	MaxHR             *float64      `json:"maxHr"`
	RestingHR         *float64      `json:"restingHr"`
}

// SettingsPatch is a partial update. Nil fields are left unchanged; clear a field with Set.
type SettingsPatch struct {
	Language          *Language
	Unit              *analysis.Unit
	MAS               *float64
	Theme             *Theme
	RefDistanceMeters *float64
	RefTimeSeconds    *float64
	MaxHR             *float64
	RestingHR         *float64
}

// DefaultSettings returns English, km, system theme and no baselines
func DefaultSettings() Settings {
	return Settings{
		Language: LanguageEnglish,
		Unit:     analysis.UnitKm,
		Theme:    ThemeSystem,
	}
}

// SettingsFromConfig seeds settings from the static config file
func SettingsFromConfig(cfg Config) Settings {
	s := DefaultSettings()
	if u, ok := analysis.ParseUnit(cfg.Display.Unit); ok {
		s.Unit = u
	}
	if l := Language(cfg.Display.Language); l.Valid() {
		s.Language = l
	}
	if t := Theme(cfg.Display.Theme); t.Valid() {
		s.Theme = t
	}
	s.MAS = positive(cfg.Athlete.MASKmh)
	s.MaxHR = positive(cfg.Athlete.MaxHR)
	s.RestingHR = positive(cfg.Athlete.RestingHR)
	return s
}

// Validate checks every set field
func (s Settings) Validate() error {
	if !s.Language.Valid() {
		return fmt.Errorf("%w: language must be \"en\" or \"fr\", got %q", ErrInvalidSettings, s.Language)
	}
	if s.Unit != analysis.UnitKm && s.Unit != analysis.UnitMile {
		return fmt.Errorf("%w: unit must be \"km\" or \"mile\", got %q", ErrInvalidSettings, s.Unit)
	}
	if !s.Theme.Valid() {
		return fmt.Errorf("%w: theme must be \"light\", \"dark\" or \"system\", got %q", ErrInvalidSettings, s.Theme)
	}

	fields := []struct {
		name  string
		value *float64
	}{
		{"mas", s.MAS},
		{"ref_distance", s.RefDistanceMeters},
		{"ref_time", s.RefTimeSeconds},
		{"max_hr", s.MaxHR},
		{"resting_hr", s.RestingHR},
	}
	for _, f := range fields {
		if f.value != nil && !(*f.value > 0 && !math.IsInf(*f.value, 0)) {
			return fmt.Errorf("%w: %s must be a positive number, got %v", ErrInvalidSettings, f.name, *f.value)
		}
	}

	if s.MaxHR != nil && s.RestingHR != nil && *s.RestingHR >= *s.MaxHR {
		return fmt.Errorf("%w: resting_hr (%v) must be less than max_hr (%v)", ErrInvalidSettings, *s.RestingHR, *s.MaxHR)
	}
	return nil
}

// Apply merges a patch into a copy of s and validates the result
func (s Settings) Apply(p SettingsPatch) (Settings, error) {
	out := s
	if p.Language != nil {
		out.Language = *p.Language
	}
	if p.Unit != nil {
		out.Unit = *p.Unit
	}
	if p.Theme != nil {
		out.Theme = *p.Theme
	}
	if p.MAS != nil {
		out.MAS = clone(p.MAS)
	}
	if p.RefDistanceMeters != nil {
		out.RefDistanceMeters = clone(p.RefDistanceMeters)
	}
	if p.RefTimeSeconds != nil {
		out.RefTimeSeconds = clone(p.RefTimeSeconds)
	}
	if p.MaxHR != nil {
		out.MaxHR = clone(p.MaxHR)
	}
	if p.RestingHR != nil {
		out.RestingHR = clone(p.RestingHR)
	}
	if err := out.Validate(); err != nil {
		return s, err
	}
	return out, nil
}

// settingKeys maps the user-facing keys accepted by Set
var settingKeys = map[string]func(*Settings, string) error{
	"language": func(s *Settings, v string) error {
		s.Language = Language(strings.ToLower(v))
		return nil
	},
	"unit": func(s *Settings, v string) error {
		u, ok := analysis.ParseUnit(v)
		if !ok {
			return fmt.Errorf("%w: unit must be \"km\" or \"mile\", got %q", ErrInvalidSettings, v)
		}
		s.Unit = u
		return nil
	},
	"theme": func(s *Settings, v string) error {
		s.Theme = Theme(strings.ToLower(v))
		return nil
	},
	"mas": func(s *Settings, v string) error {
		return setNumber(&s.MAS, "mas", v)
	},
	"max_hr": func(s *Settings, v string) error {
		return setNumber(&s.MaxHR, "max_hr", v)
	},
	"resting_hr": func(s *Settings, v string) error {
		return setNumber(&s.RestingHR, "resting_hr", v)
	},
	"ref_distance": func(s *Settings, v string) error {
		if v == "" {
			s.RefDistanceMeters = nil
			return nil
		}
		if d, ok := analysis.FindDistance(analysis.PredictionDistances, strings.ToLower(v)); ok {
			s.RefDistanceMeters = &d.Meters
			return nil
		}
		return setNumber(&s.RefDistanceMeters, "ref_distance", v)
	},
	"ref_time": func(s *Settings, v string) error {
		if v == "" {
			s.RefTimeSeconds = nil
			return nil
		}
		seconds := analysis.ParseDuration(v)
		if math.IsNaN(seconds) {
			return fmt.Errorf("%w: ref_time must be h:mm:ss or mm:ss, got %q", ErrInvalidSettings, v)
		}
		s.RefTimeSeconds = &seconds
		return nil
	},
}

// SettingKeys lists the keys accepted by Set, sorted
func SettingKeys() []string {
	keys := make([]string, 0, len(settingKeys))
	for k := range settingKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set assigns one key from its string form. An empty value clears optional fields.
// ref_distance accepts a distance ID ("5k") or meters; ref_time accepts h:mm:ss or mm:ss.
func (s Settings) Set(key, value string) (Settings, error) {
	return s.SetAll(map[string]string{key: value})
}

// SetAll assigns several keys as Set does and validates the combined result once,
// so related fields such as max_hr and resting_hr can change together.
func (s Settings) SetAll(values map[string]string) (Settings, error) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := s
	for _, key := range keys {
		setter, ok := settingKeys[strings.ToLower(strings.TrimSpace(key))]
		if !ok {
			return s, fmt.Errorf("%w: unknown key %q (valid: %s)", ErrInvalidSettings, key, strings.Join(SettingKeys(), ", "))
		}
		if err := setter(&out, strings.TrimSpace(values[key])); err != nil {
			return s, err
		}
	}
	if err := out.Validate(); err != nil {
		return s, err
	}
	return out, nil
}

// Value returns the string form of a key as accepted by Set, or "" when unset
func (s Settings) Value(key string) string {
	number := func(p *float64) string {
		if p == nil {
			return ""
		}
		return strconv.FormatFloat(*p, 'f', -1, 64)
	}

	switch strings.ToLower(strings.TrimSpace(key)) {
	case "language":
		return string(s.Language)
	case "unit":
		return string(s.Unit)
	case "theme":
		return string(s.Theme)
	case "mas":
		return number(s.MAS)
	case "max_hr":
		return number(s.MaxHR)
	case "resting_hr":
		return number(s.RestingHR)
	case "ref_distance":
		if s.RefDistanceMeters != nil {
			for _, d := range analysis.PredictionDistances {
				if d.Meters == *s.RefDistanceMeters {
					return d.ID
				}
			}
		}
		return number(s.RefDistanceMeters)
	case "ref_time":
		if s.RefTimeSeconds == nil {
			return ""
		}
		return analysis.FormatDuration(*s.RefTimeSeconds)
	}
	return ""
}

// Clone returns a copy that shares no pointers with s
func (s Settings) Clone() Settings {
	out := s
	for _, p := range []**float64{&out.MAS, &out.RefDistanceMeters, &out.RefTimeSeconds, &out.MaxHR, &out.RestingHR} {
		if *p != nil {
			*p = clone(*p)
		}
	}
	return out
}

// HasReference reports whether a reference performance is saved
func (s Settings) HasReference() bool {
	return s.RefDistanceMeters != nil && s.RefTimeSeconds != nil
}

// Float returns the value of an optional field, or 0 when unset
func Float(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func setNumber(dst **float64, name, v string) error {
	if v == "" {
		*dst = nil
		return nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%w: %s must be a number, got %q", ErrInvalidSettings, name, v)
	}
	*dst = &n
	return nil
}

func positive(v float64) *float64 {
	if v > 0 {
		return &v
	}
	return nil
}

func clone(p *float64) *float64 {
	v := *p
	return &v
}
