package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"runcalc/internal/config"
	"runcalc/internal/service"
)

var settingLabels = map[string]string{
	"language":     "Language",
	"unit":         "Unit",
	"theme":        "Theme",
	"mas":          "MAS (km/h)",
	"max_hr":       "Max HR",
	"resting_hr":   "Resting HR",
	"ref_distance": "Ref distance",
	"ref_time":     "Ref time",
}

var settingPlaceholders = map[string]string{
	"language":     "en | fr",
	"unit":         "km | mile",
	"theme":        "light | dark | system",
	"mas":          "16",
	"max_hr":       "185",
	"resting_hr":   "50",
	"ref_distance": "5k",
	"ref_time":     "20:00",
}

// settingsOrder is the display order of the settings form
var settingsOrder = []string{"unit", "language", "theme", "mas", "max_hr", "resting_hr", "ref_distance", "ref_time"}

// SettingsChangedMsg is sent after settings are saved or reset
type SettingsChangedMsg struct {
	Settings config.Settings
}

// SettingsModel edits the saved settings
type SettingsModel struct {
	svc    *service.CalculatorService
	form   form
	saved  config.Settings
	status string
	err    error
}

// NewSettingsModel creates a settings form loaded with the current values
func NewSettingsModel(svc *service.CalculatorService) SettingsModel {
	fields := make([]field, 0, len(settingsOrder))
	for _, key := range settingsOrder {
		fields = append(fields, newField(key, settingLabels[key], settingPlaceholders[key]))
	}
	m := SettingsModel{svc: svc, form: newForm(fields...)}
	m.load(svc.Settings())
	return m
}

func (m *SettingsModel) load(s config.Settings) {
	m.saved = s
	for _, key := range settingsOrder {
		m.form.setValue(key, s.Value(key))
	}
}

// Init initializes the settings screen
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Editing reports whether keys are going to an input
func (m SettingsModel) Editing() bool {
	return m.form.editing
}

// Update handles messages
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.form.editing {
		var cmd tea.Cmd
		m.form, cmd, _ = m.form.update(key, nil)
		return m, cmd
	}

	switch key.String() {
	case "e", "enter":
		m.status, m.err = "", nil
		cmd := m.form.start(nil)
		return m, cmd
	case "s":
		return m.save()
	case "R":
		settings, err := m.svc.ResetSettings()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.load(settings)
		m.status, m.err = "Settings reset to defaults", nil
		return m, settingsChanged(settings)
	case "esc":
		m.load(m.saved)
		m.status, m.err = "", nil
	}
	return m, nil
}

// save applies every changed field at once
func (m SettingsModel) save() (tea.Model, tea.Cmd) {
	values := make(map[string]string)
	var changed []string
	for _, key := range settingsOrder {
		value := m.form.value(key)
		if value == m.saved.Value(key) {
			continue
		}
		values[key] = value
		changed = append(changed, settingLabels[key])
	}

	if len(values) == 0 {
		m.status, m.err = "No changes", nil
		return m, nil
	}
	settings, err := m.svc.SetSettings(values)
	if err != nil {
		m.status, m.err = "", err
		return m, nil
	}
	m.load(settings)
	m.status, m.err = "Saved: "+strings.Join(changed, ", "), nil
	return m, settingsChanged(settings)
}

func settingsChanged(s config.Settings) tea.Cmd {
	return func() tea.Msg { return SettingsChangedMsg{Settings: s} }
}

// View renders the settings screen
func (m SettingsModel) View() string {
	var sections []string
	sections = append(sections, cardTitleStyle.Render("Settings"))
	sections = append(sections, m.form.view(nil, nil))
	sections = append(sections, "")

	switch {
	case m.err != nil:
		sections = append(sections, errorStyle.Render("  "+m.err.Error()))
	case m.status != "":
		sections = append(sections, successStyle.Render("  "+m.status))
	}

	sections = append(sections, mutedStyle.Render("  Leave a baseline empty to clear it. The interface is English only; language is saved as a preference."))
	sections = append(sections, statusStyle.Render("e: edit  s: save  esc: discard edits  R: reset"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
