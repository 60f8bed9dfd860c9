package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"runcalc/internal/analysis"
	"runcalc/internal/service"
)

// predictionsChrome is the height taken by the title, form and footer
const predictionsChrome = 14

// PredictionsModel is the race predictions screen model
type PredictionsModel struct {
	svc      *service.CalculatorService
	model    analysis.PredictionModel
	form     form
	units    unitToggle
	data     *service.PredictionsData
	viewport viewport.Model
	errs     map[string]string
	err      error
	status   string
	width    int
	height   int
	ready    bool
}

// NewPredictionsModel creates a new predictions model, prefilled from the saved reference
func NewPredictionsModel(svc *service.CalculatorService, width, height int) PredictionsModel {
	settings := svc.Settings()
	m := PredictionsModel{
		svc: svc,
		form: newForm(
			newField("distance", "Distance", service.DefaultReferenceDistance),
			newField("time", "Time", "20:00"),
		),
		width:  width,
		height: height,
	}
	m.form.setValue("distance", orDefault(settings.Value("ref_distance"), service.DefaultReferenceDistance))
	m.form.setValue("time", settings.Value("ref_time"))

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, max(height-predictionsChrome, 5))
		m.ready = true
	}
	m.recalculate()
	return m
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

// Init initializes the predictions screen
func (m PredictionsModel) Init() tea.Cmd {
	return nil
}

// Editing reports whether keys are going to an input
func (m PredictionsModel) Editing() bool {
	return m.form.editing
}

type predictionsSavedMsg struct {
	runID int64
	err   error
}

func (m PredictionsModel) savePredictions() tea.Msg {
	data, err := m.svc.Predictions(m.request(true))
	if err != nil {
		return predictionsSavedMsg{err: err}
	}
	return predictionsSavedMsg{runID: data.RunID}
}

// Update handles messages
func (m PredictionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case predictionsSavedMsg:
		if msg.err != nil {
			m.status = errorStyle.Render("  Save failed: " + msg.err.Error())
		} else {
			m.status = successStyle.Render(fmt.Sprintf("  Saved to history (#%d)", msg.runID))
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(msg.Height-predictionsChrome, 5))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(msg.Height-predictionsChrome, 5)
		}
		m.viewport.SetContent(m.renderContent())
		return m, nil

	case tea.KeyMsg:
		if m.form.editing {
			var cmd tea.Cmd
			var changed bool
			m.form, cmd, changed = m.form.update(msg, nil)
			if changed {
				m.recalculate()
			}
			return m, cmd
		}

		switch msg.String() {
		case "e", "enter":
			cmd := m.form.start(nil)
			return m, cmd
		case "m":
			if m.model == analysis.ModelDaniels {
				m.model = analysis.ModelRiegel
			} else {
				m.model = analysis.ModelDaniels
			}
			m.recalculate()
			return m, nil
		case "u":
			m.units = m.units.toggle(m.svc.Settings().Unit)
			m.recalculate()
			return m, nil
		case "s":
			if m.data != nil {
				return m, m.savePredictions
			}
			return m, nil
		}
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m PredictionsModel) request(record bool) service.PredictionRequest {
	return service.PredictionRequest{
		Model:      m.model,
		DistanceID: m.form.value("distance"),
		Time:       m.form.value("time"),
		Unit:       m.units.unit(m.svc.Settings().Unit),
		Record:     record,
	}
}

func (m *PredictionsModel) recalculate() {
	m.data, m.err, m.errs, m.status = nil, nil, nil, ""

	if m.form.value("time") != "" {
		data, err := m.svc.Predictions(m.request(false))
		if field := service.FieldOf(err); field != "" {
			m.errs = map[string]string{field: err.Error()}
		} else {
			m.data, m.err = data, err
		}
	}
	if m.ready {
		m.viewport.SetContent(m.renderContent())
	}
}

// View renders the predictions screen
func (m PredictionsModel) View() string {
	var sections []string

	sections = append(sections, cardTitleStyle.Render("Race Time Predictions"))
	sections = append(sections, RenderMetric("Model", m.model.Label()))
	sections = append(sections, RenderMetric("Unit", m.units.label(m.svc.Settings().Unit)))
	sections = append(sections, "")
	sections = append(sections, m.form.view(nil, m.errs))

	if m.err != nil {
		sections = append(sections, errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err)))
	}
	if m.ready {
		sections = append(sections, m.viewport.View())
	}
	if m.status != "" {
		sections = append(sections, m.status)
	}

	footer := statusStyle.Render("e: edit  m: model  s: save  u: toggle km/mi  j/k: scroll")
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m PredictionsModel) renderContent() string {
	if m.data == nil {
		return m.renderEmptyState()
	}

	var sections []string

	sections = append(sections, "")
	sections = append(sections, m.renderVDOTInfo())
	sections = append(sections, m.renderPredictionsTable())
	if chart := RenderPaceChart(m.data.Predictions, m.data.Unit, m.width-10); chart != "" {
		sections = append(sections, chart)
		sections = append(sections, "")
	}
	sections = append(sections, m.renderAboutSection())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m PredictionsModel) renderEmptyState() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, mutedStyle.Render("  Enter a recent race distance and time."))
	lines = append(lines, mutedStyle.Render("  Save a reference performance in Settings to prefill it."))
	lines = append(lines, "")

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m PredictionsModel) renderVDOTInfo() string {
	var lines []string

	lines = append(lines, mutedStyle.Render("  Based on: "+m.data.Reference))
	if m.data.VDOTText != "" {
		vdotStyle := lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
		lines = append(lines, "  VDOT: "+vdotStyle.Render(m.data.VDOTText))
		lines = append(lines, mutedStyle.Render("  Equivalent MAS: "+m.data.EquivalentMAS))
	}
	lines = append(lines, "")

	return strings.Join(lines, "\n")
}

func (m PredictionsModel) renderPredictionsTable() string {
	var lines []string

	lines = append(lines, renderSectionHeader("Predicted Times", 55))

	header := fmt.Sprintf("  %-15s  %12s  %14s  %s", "Distance", "Predicted", "Pace", "Confidence")
	lines = append(lines, tableHeaderStyle.Render(header))

	for _, pred := range m.data.Predictions {
		lines = append(lines, m.formatPredictionRow(pred))
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m PredictionsModel) formatPredictionRow(pred service.PredictionDisplay) string {
	row := fmt.Sprintf("  %-15s  %12s  %14s  ", pred.Distance, pred.Time, pred.Pace)
	if pred.IsReference {
		return referenceRowStyle.Render(row + "reference")
	}
	return row + renderConfidence(pred.Confidence)
}

func (m PredictionsModel) renderAboutSection() string {
	var lines []string

	lines = append(lines, renderSectionHeader("About These Predictions", 55))

	if m.model == analysis.ModelRiegel {
		lines = append(lines, mutedStyle.Render("  Riegel: T2 = T1 × (D2 / D1)^1.06."))
	} else {
		lines = append(lines, mutedStyle.Render("  Predictions use Jack Daniels' VDOT methodology."))
	}
	lines = append(lines, mutedStyle.Render("  Confidence drops as the target distance moves away from the reference."))
	lines = append(lines, "")

	lines = append(lines, fmt.Sprintf("    %s - up to 4× the reference distance", renderConfidence("High")))
	lines = append(lines, fmt.Sprintf("    %s - more than 4× the reference distance", renderConfidence("Medium")))
	lines = append(lines, fmt.Sprintf("    %s - invalid reference", renderConfidence("Low")))
	lines = append(lines, "")

	return strings.Join(lines, "\n")
}
