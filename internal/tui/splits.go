package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"runcalc/internal/service"
)

var splitModeFields = map[service.SplitMode][]string{
	service.SplitByPace:   {"pace"},
	service.SplitByMAS:    {"mas", "mas_percent"},
	service.SplitByTarget: {"target_time", "target_distance"},
}

// SplitsModel projects split times from a pace, a share of MAS or a goal time
type SplitsModel struct {
	svc   *service.CalculatorService
	mode  service.SplitMode
	form  form
	units unitToggle
	data  *service.SplitsData
	errs  map[string]string
	err   error
}

// NewSplitsModel creates a new splits model, prefilling MAS from settings
func NewSplitsModel(svc *service.CalculatorService) SplitsModel {
	m := SplitsModel{
		svc: svc,
		form: newForm(
			newField("pace", "Pace (mm:ss)", "4:30"),
			newField("mas", "MAS (km/h)", "16"),
			newField("mas_percent", "% of MAS", service.DefaultMASPercent),
			newField("target_time", "Target time", "20:00"),
			newField("target_distance", "Distance", service.DefaultTargetDistanceID),
		),
	}
	if mas := svc.Settings().MAS; mas != nil {
		m.form.setValue("mas", strconv.FormatFloat(*mas, 'f', -1, 64))
	}
	m.form.setValue("mas_percent", service.DefaultMASPercent)
	m.form.setValue("target_distance", service.DefaultTargetDistanceID)
	m.recalculate()
	return m
}

// Init initializes the splits screen
func (m SplitsModel) Init() tea.Cmd {
	return nil
}

// Editing reports whether keys are going to an input
func (m SplitsModel) Editing() bool {
	return m.form.editing
}

// Update handles messages
func (m SplitsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	visible := splitModeFields[m.mode]
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
		cmd := m.form.start(visible)
		return m, cmd
	case "m":
		m.mode = (m.mode + 1) % 3
		m.form.focusKey(splitModeFields[m.mode][0])
		m.recalculate()
	case "u":
		m.units = m.units.toggle(m.svc.Settings().Unit)
		m.recalculate()
	}
	return m, nil
}

func (m *SplitsModel) recalculate() {
	m.data, m.err, m.errs = nil, nil, nil

	req := service.SplitRequest{
		Mode:             m.mode,
		Pace:             m.form.value("pace"),
		MAS:              m.form.value("mas"),
		MASPercent:       m.form.value("mas_percent"),
		TargetTime:       m.form.value("target_time"),
		TargetDistanceID: m.form.value("target_distance"),
		Unit:             m.units.unit(m.svc.Settings().Unit),
	}
	if (m.mode == service.SplitByPace && req.Pace == "") || (m.mode == service.SplitByTarget && req.TargetTime == "") {
		return
	}

	data, err := m.svc.Splits(req)
	if field := service.FieldOf(err); field != "" {
		m.errs = map[string]string{field: err.Error()}
		return
	}
	m.data, m.err = data, err
}

// View renders the splits screen
func (m SplitsModel) View() string {
	saved := m.svc.Settings().Unit

	var sections []string
	sections = append(sections, cardTitleStyle.Render("Split Times"))
	sections = append(sections, RenderMetric("Mode", modeLabel(m.mode)))
	sections = append(sections, RenderMetric("Unit", m.units.label(saved)))
	sections = append(sections, "")
	sections = append(sections, m.form.view(splitModeFields[m.mode], m.errs))
	sections = append(sections, "")

	switch {
	case m.err != nil:
		sections = append(sections, errorStyle.Render("  "+m.err.Error()))
	case m.data != nil:
		sections = append(sections, m.renderSplits())
	default:
		sections = append(sections, mutedStyle.Render("  Enter a value to see splits."))
	}

	sections = append(sections, statusStyle.Render("e: edit  m: mode  u: toggle km/mi  esc: done"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m SplitsModel) renderSplits() string {
	var lines []string
	lines = append(lines, renderSectionHeader(fmt.Sprintf("%s  %s", m.data.Pace, m.data.Speed), 50))
	lines = append(lines, tableHeaderStyle.Render(fmt.Sprintf("  %-15s  %10s", "Distance", "Time")))
	for _, s := range m.data.Splits {
		lines = append(lines, fmt.Sprintf("  %-15s  %10s", s.Label, s.Time))
	}
	return strings.Join(lines, "\n")
}

func modeLabel(mode service.SplitMode) string {
	switch mode {
	case service.SplitByMAS:
		return "% of MAS"
	case service.SplitByTarget:
		return "Target time"
	}
	return "Pace"
}
