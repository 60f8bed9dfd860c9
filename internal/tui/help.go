package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Editing reports whether keys are going to an input
func (m HelpModel) Editing() bool {
	return false
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	sections = append(sections, m.renderSection("Navigation", []keyHelp{
		{"1-7", "Switch calculator"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	}))

	sections = append(sections, m.renderSection("Forms", []keyHelp{
		{"e / enter", "Start editing"},
		{"tab / down", "Next field"},
		{"shift+tab / up", "Previous field"},
		{"esc / enter", "Stop editing"},
		{"u", "Toggle km / miles on this screen"},
	}))

	sections = append(sections, m.renderSection("Calculators", []keyHelp{
		{"m", "Splits: mode  Zones: model  Predict: Daniels / Riegel"},
		{"r / ← →", "Intervals: recovery"},
		{"s", "Predict: save to history  Settings: save"},
		{"x", "History: clear (press twice)"},
		{"R", "Settings: reset to defaults"},
	}))

	sections = append(sections, m.renderTermsHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderTermsHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render("Terms"))
	lines = append(lines, "")

	terms := []struct {
		name string
		desc string
	}{
		{"MAS", "Maximal aerobic speed, the slowest speed that elicits VO2max (km/h)."},
		{"VDOT", "Daniels' fitness index derived from a race performance."},
		{"Riegel", "T2 = T1 × (D2 / D1)^1.06, a simple endurance fatigue model."},
		{"Karvonen", "Target HR = resting + % × (max - resting)."},
		{"RPE / Borg", "Perceived exertion scales, 1-10 and 6-20."},
	}

	for _, t := range terms {
		lines = append(lines, "  "+helpKeyStyle.Render(t.name))
		lines = append(lines, "  "+mutedStyle.Render(t.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
