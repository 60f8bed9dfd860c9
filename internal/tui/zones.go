package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"runcalc/internal/analysis"
	"runcalc/internal/service"
)

var zoneModelFields = map[analysis.ZoneModel][]string{
	analysis.ZoneModelMAS:       {"mas"},
	analysis.ZoneModelDaniels:   {"mas"},
	analysis.ZoneModelHeartRate: {"max_hr", "resting_hr"},
}

// ZonesModel shows training zones for the selected model
type ZonesModel struct {
	svc   *service.CalculatorService
	model int // index into analysis.ZoneModels
	form  form
	units unitToggle
	data  *service.ZonesData
	errs  map[string]string
	err   error
}

// NewZonesModel creates a new zones model. Empty inputs fall back to saved values.
func NewZonesModel(svc *service.CalculatorService) ZonesModel {
	settings := svc.Settings()
	m := ZonesModel{
		svc: svc,
		form: newForm(
			newField("mas", "MAS (km/h)", placeholder(settings.MAS, "16")),
			newField("max_hr", "Max HR", placeholder(settings.MaxHR, "185")),
			newField("resting_hr", "Resting HR", placeholder(settings.RestingHR, "50")),
		),
	}
	m.recalculate()
	return m
}

// placeholder shows a saved value, or an example when nothing is saved
func placeholder(saved *float64, example string) string {
	if saved != nil {
		return "saved: " + strconv.FormatFloat(*saved, 'f', -1, 64)
	}
	return example
}

// Init initializes the zones screen
func (m ZonesModel) Init() tea.Cmd {
	return nil
}

// Editing reports whether keys are going to an input
func (m ZonesModel) Editing() bool {
	return m.form.editing
}

func (m ZonesModel) current() analysis.ZoneModel {
	return analysis.ZoneModels[m.model]
}

// Update handles messages
func (m ZonesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	visible := zoneModelFields[m.current()]
	if m.form.editing {
		var cmd tea.Cmd
		var changed bool
		m.form, cmd, changed = m.form.update(key, visible)
		if changed {
			m.recalculate()
		}
		return m, cmd
	}

	switch key.String() {
	case "e", "enter":
		if len(visible) > 0 {
			cmd := m.form.start(visible)
			return m, cmd
		}
	case "m", "right", "l":
		m.model = (m.model + 1) % len(analysis.ZoneModels)
		m.recalculate()
	case "left", "h":
		m.model = (m.model + len(analysis.ZoneModels) - 1) % len(analysis.ZoneModels)
		m.recalculate()
	case "u":
		m.units = m.units.toggle(m.svc.Settings().Unit)
		m.recalculate()
	}
	return m, nil
}

func (m *ZonesModel) recalculate() {
	m.data, m.err, m.errs = nil, nil, nil

	data, err := m.svc.Zones(service.ZoneRequest{
		Model:     m.current(),
		MAS:       m.form.value("mas"),
		MaxHR:     m.form.value("max_hr"),
		RestingHR: m.form.value("resting_hr"),
		Unit:      m.units.unit(m.svc.Settings().Unit),
	})
	if field := service.FieldOf(err); field != "" {
		m.errs = map[string]string{field: err.Error()}
		return
	}
	m.data, m.err = data, err
}

// View renders the zones screen
func (m ZonesModel) View() string {
	saved := m.svc.Settings().Unit

	var sections []string
	sections = append(sections, cardTitleStyle.Render("Training Zones"))
	sections = append(sections, m.renderModelTabs())
	sections = append(sections, "")
	if !m.current().Ordinal() {
		sections = append(sections, RenderMetric("Unit", m.units.label(saved)))
	}
	if visible := zoneModelFields[m.current()]; len(visible) > 0 {
		sections = append(sections, m.form.view(visible, m.errs))
	}
	sections = append(sections, "")

	switch {
	case m.err != nil:
		sections = append(sections, errorStyle.Render("  "+m.err.Error()))
		sections = append(sections, mutedStyle.Render("  Enter values above or save them in Settings."))
	case m.data != nil:
		sections = append(sections, m.renderZones())
	}

	sections = append(sections, statusStyle.Render("e: edit  m or ←/→: model  u: toggle km/mi  esc: done"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ZonesModel) renderModelTabs() string {
	var tabs []string
	for i, model := range analysis.ZoneModels {
		if i == m.model {
			tabs = append(tabs, navActiveStyle.Render("["+model.Label()+"]"))
		} else {
			tabs = append(tabs, navInactiveStyle.Render(" "+model.Label()+" "))
		}
	}
	return strings.Join(tabs, " ")
}

func (m ZonesModel) renderZones() string {
	var lines []string
	if m.data.Reference != "" {
		lines = append(lines, renderSectionHeader(m.data.Reference, 60))
	}

	for _, z := range m.data.Zones {
		var ranges string
		switch {
		case z.HeartRate != "":
			ranges = fmt.Sprintf("%-10s %s", z.Intensity, z.HeartRate)
		case z.Speed != "":
			ranges = fmt.Sprintf("%-10s %-16s %s", z.Intensity, z.Speed, z.Pace)
		default:
			ranges = z.Intensity
		}
		lines = append(lines, fmt.Sprintf("%s %-3s %-18s %s", renderSwatch(z.Color), z.ID, z.Name, ranges))
		lines = append(lines, mutedStyle.Render("       "+z.Description))
	}
	return strings.Join(lines, "\n")
}
