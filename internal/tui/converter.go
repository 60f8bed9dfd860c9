package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"runcalc/internal/service"
)

// ConverterModel converts between pace and speed as the runner types
type ConverterModel struct {
	svc   *service.CalculatorService
	form  form
	units unitToggle
	pace  *service.Conversion
	speed *service.Conversion
	errs  map[string]string
}

// NewConverterModel creates a new converter model
func NewConverterModel(svc *service.CalculatorService) ConverterModel {
	m := ConverterModel{
		svc: svc,
		form: newForm(
			newField("pace", "Pace", "5:00"),
			newField("speed", "Speed", "12"),
		),
	}
	m.relabel()
	return m
}

// relabel shows the effective unit in the field labels
func (m *ConverterModel) relabel() {
	unit := m.units.unit(m.svc.Settings().Unit)
	m.form.fields[0].label = "Pace (" + unit.PaceLabel() + ")"
	m.form.fields[1].label = "Speed (" + unit.SpeedLabel() + ")"
}

// Init initializes the converter
func (m ConverterModel) Init() tea.Cmd {
	return nil
}

// Editing reports whether keys are going to an input
func (m ConverterModel) Editing() bool {
	return m.form.editing
}

// Update handles messages
func (m ConverterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.form.editing {
		var cmd tea.Cmd
		var changed bool
		m.form, cmd, changed = m.form.update(key, nil)
		if changed {
			m.recalculate()
		}
		return m, cmd
	}

	switch key.String() {
	case "e", "enter":
		cmd := m.form.start(nil)
		return m, cmd
	case "u":
		m.units = m.units.toggle(m.svc.Settings().Unit)
		m.relabel()
		m.recalculate()
	}
	return m, nil
}

func (m *ConverterModel) recalculate() {
	unit := m.units.unit(m.svc.Settings().Unit)
	m.errs = map[string]string{}
	m.pace, m.speed = nil, nil

	if v := m.form.value("pace"); v != "" {
		conv, err := m.svc.ConvertPace(v, unit)
		if err != nil {
			m.errs["pace"] = err.Error()
		}
		m.pace = conv
	}
	if v := m.form.value("speed"); v != "" {
		conv, err := m.svc.ConvertSpeed(v, unit)
		if err != nil {
			m.errs["speed"] = err.Error()
		}
		m.speed = conv
	}
}

// View renders the converter
func (m ConverterModel) View() string {
	saved := m.svc.Settings().Unit

	var sections []string
	sections = append(sections, cardTitleStyle.Render("Pace / Speed Converter"))
	sections = append(sections, RenderMetric("Unit", m.units.label(saved)))
	sections = append(sections, "")

	sections = append(sections, m.form.view(nil, m.errs))
	sections = append(sections, "")

	sections = append(sections, renderSectionHeader("Results", 50))
	if m.pace == nil && m.speed == nil {
		sections = append(sections, mutedStyle.Render("  Enter a pace or a speed."))
	}
	if m.pace != nil {
		sections = append(sections, RenderMetric("  "+m.pace.Pace, m.pace.Speed+"  ("+m.pace.OtherSpeed+")"))
	}
	if m.speed != nil {
		sections = append(sections, RenderMetric("  "+m.speed.Speed, m.speed.Pace))
	}

	sections = append(sections, statusStyle.Render(strings.Join([]string{
		"e: edit", "tab: next field", "u: toggle km/mi", "esc: done",
	}, "  ")))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
