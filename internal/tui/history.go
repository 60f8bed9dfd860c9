package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"runcalc/internal/service"
)

// HistoryModel lists saved prediction runs
type HistoryModel struct {
	svc      *service.CalculatorService
	entries  []service.HistoryEntry
	viewport viewport.Model
	loading  bool
	confirm  bool
	err      error
	width    int
	height   int
	ready    bool
}

// NewHistoryModel creates a new history model
func NewHistoryModel(svc *service.CalculatorService, width, height int) HistoryModel {
	m := HistoryModel{
		svc:     svc,
		loading: true,
		width:   width,
		height:  height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, max(height-8, 5))
		m.ready = true
	}

	return m
}

// Init loads the saved runs
func (m HistoryModel) Init() tea.Cmd {
	return m.loadHistory
}

// Editing reports whether keys are going to an input
func (m HistoryModel) Editing() bool {
	return false
}

type historyLoadedMsg struct {
	entries []service.HistoryEntry
	err     error
}

func (m HistoryModel) loadHistory() tea.Msg {
	entries, err := m.svc.History(service.HistoryLimit)
	return historyLoadedMsg{entries: entries, err: err}
}

func (m HistoryModel) clearHistory() tea.Msg {
	if err := m.svc.ClearHistory(); err != nil {
		return historyLoadedMsg{err: err}
	}
	return m.loadHistory()
}

// Update handles messages
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.entries = msg.entries
		if m.ready {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(msg.Height-8, 5))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(msg.Height-8, 5)
		}
		m.viewport.SetContent(m.renderContent())

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			m.confirm = false
			return m, m.loadHistory
		case "x":
			if m.confirm {
				m.confirm = false
				m.loading = true
				return m, m.clearHistory
			}
			m.confirm = len(m.entries) > 0
			return m, nil
		default:
			m.confirm = false
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the history screen
func (m HistoryModel) View() string {
	if m.loading {
		return "\n  Loading history..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	footer := statusStyle.Render("  j/k or arrows: scroll  r: refresh  x: clear")
	if m.confirm {
		footer = warningStyle.Render("  Press x again to delete all saved predictions")
	}

	return lipgloss.JoinVertical(lipgloss.Left, cardTitleStyle.Render("Prediction History"), m.viewport.View(), footer)
}

func (m HistoryModel) renderContent() string {
	if len(m.entries) == 0 {
		return mutedStyle.Render("  No saved predictions. Press s on the predictions screen to save one.")
	}

	var sections []string
	for _, e := range m.entries {
		title := fmt.Sprintf("#%d %s  %s  %s", e.ID, e.When, e.Model, e.Reference)
		if e.VDOT != "" {
			title += "  VDOT " + e.VDOT
		}
		sections = append(sections, renderSectionHeader(title, 60))

		var cells []string
		for _, p := range e.Predictions {
			cell := fmt.Sprintf("%s %s", p.Distance, p.Time)
			if p.IsReference {
				cell = referenceRowStyle.Render(cell)
			}
			cells = append(cells, cell)
		}
		sections = append(sections, "  "+strings.Join(cells, mutedStyle.Render(" · ")))
		sections = append(sections, "")
	}
	return strings.Join(sections, "\n")
}
