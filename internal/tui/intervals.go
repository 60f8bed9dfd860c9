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

// scheduleRows caps the timeline shown under the totals
const scheduleRows = 12

// IntervalsModel computes an interval session from MAS
type IntervalsModel struct {
	svc      *service.CalculatorService
	form     form
	units    unitToggle
	recovery int // index into analysis.RecoveryOptions
	data     *service.IntervalData
	errs     map[string]string
	err      error
}

// NewIntervalsModel creates a new intervals model with the calculator defaults
func NewIntervalsModel(svc *service.CalculatorService) IntervalsModel {
	m := IntervalsModel{
		svc:      svc,
		recovery: analysis.DefaultRecoveryIndex,
		form: newForm(
			newField("mas", "MAS (km/h)", "16"),
			newField("mas_percent", "% of MAS", service.DefaultMASPercent),
			newField("rep_distance", "Rep distance", service.DefaultRepDistanceID),
			newField("reps", "Reps", service.DefaultReps),
		),
	}
	if mas := svc.Settings().MAS; mas != nil {
		m.form.setValue("mas", strconv.FormatFloat(*mas, 'f', -1, 64))
	}
	m.form.setValue("mas_percent", service.DefaultMASPercent)
	m.form.setValue("rep_distance", service.DefaultRepDistanceID)
	m.form.setValue("reps", service.DefaultReps)
	m.recalculate()
	return m
}

// Init initializes the intervals screen
func (m IntervalsModel) Init() tea.Cmd {
	return nil
}

// Editing reports whether keys are going to an input
func (m IntervalsModel) Editing() bool {
	return m.form.editing
}

// Update handles messages
func (m IntervalsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
	case "r", "right", "l":
		m.recovery = (m.recovery + 1) % len(analysis.RecoveryOptions)
		m.recalculate()
	case "R", "left", "h":
		m.recovery = (m.recovery + len(analysis.RecoveryOptions) - 1) % len(analysis.RecoveryOptions)
		m.recalculate()
	case "u":
		m.units = m.units.toggle(m.svc.Settings().Unit)
		m.recalculate()
	}
	return m, nil
}

func (m *IntervalsModel) recalculate() {
	m.data, m.err, m.errs = nil, nil, nil

	data, err := m.svc.Interval(service.IntervalRequest{
		MAS:           m.form.value("mas"),
		MASPercent:    m.form.value("mas_percent"),
		RepDistanceID: m.form.value("rep_distance"),
		Reps:          m.form.value("reps"),
		Recovery:      analysis.RecoveryOptions[m.recovery].Label,
		Unit:          m.units.unit(m.svc.Settings().Unit),
	})
	if field := service.FieldOf(err); field != "" {
		m.errs = map[string]string{field: err.Error()}
		return
	}
	m.data, m.err = data, err
}

// View renders the intervals screen
func (m IntervalsModel) View() string {
	saved := m.svc.Settings().Unit

	var sections []string
	sections = append(sections, cardTitleStyle.Render("Interval Session"))
	sections = append(sections, RenderMetric("Unit", m.units.label(saved)))
	sections = append(sections, "")
	sections = append(sections, m.form.view(nil, m.errs))
	sections = append(sections, fieldLabelStyle.Render("  Recovery")+navActiveStyle.Render("◀ "+analysis.RecoveryOptions[m.recovery].Label+" ▶"))
	sections = append(sections, "")

	switch {
	case m.err != nil:
		sections = append(sections, errorStyle.Render("  "+m.err.Error()))
	case m.data != nil:
		sections = append(sections, m.renderSession())
	}

	sections = append(sections, statusStyle.Render("e: edit  r/←/→: recovery  u: toggle km/mi  esc: done"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m IntervalsModel) renderSession() string {
	d := m.data
	var lines []string

	lines = append(lines, renderSectionHeader(fmt.Sprintf("%d × %s", d.Reps, d.RepDistance), 50))
	lines = append(lines, RenderMetric("  Rep time", d.RepTime))
	lines = append(lines, RenderMetric("  Pace", d.RepPace))
	lines = append(lines, RenderMetric("  Speed", d.Speed))
	lines = append(lines, RenderMetric("  Work time", d.TotalWork))
	lines = append(lines, RenderMetric("  Distance", d.TotalDistance))
	lines = append(lines, RenderMetric("  Session time", d.TotalElapsed))
	lines = append(lines, "")

	lines = append(lines, tableHeaderStyle.Render(fmt.Sprintf("  %-4s  %8s  %8s  %s", "Rep", "Start", "End", "Then")))
	for i, rep := range d.Schedule {
		if i == scheduleRows {
			lines = append(lines, mutedStyle.Render(fmt.Sprintf("  … %d more", len(d.Schedule)-scheduleRows)))
			break
		}
		recovery := rep.Recovery
		if recovery == "" {
			recovery = "done"
		}
		lines = append(lines, fmt.Sprintf("  %-4d  %8s  %8s  %s", rep.Index, rep.Start, rep.End, recovery))
	}
	return strings.Join(lines, "\n")
}
