package tui

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"runcalc/internal/service"
)

// Screen identifiers
type Screen int

const (
	ScreenConverter Screen = iota
	ScreenSplits
	ScreenZones
	ScreenIntervals
	ScreenPredictions
	ScreenHistory
	ScreenSettings
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	converter   ConverterModel
	splits      SplitsModel
	zones       ZonesModel
	intervals   IntervalsModel
	predictions PredictionsModel
	history     HistoryModel
	settings    SettingsModel
	help        HelpModel

	// Services
	svc    *service.CalculatorService
	logger *log.Logger

	// Window dimensions
	width  int
	height int

	// Status message
	status string
}

// NewApp creates a new App with all dependencies
func NewApp(svc *service.CalculatorService, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	applyTheme(svc.Settings().Theme)
	a := &App{
		screen:   ScreenConverter,
		svc:      svc,
		logger:   logger,
		settings: NewSettingsModel(svc),
		history:  NewHistoryModel(svc, 0, 0),
		help:     NewHelpModel(),
	}
	a.rebuildCalculators()
	return a
}

// rebuildCalculators recreates the screens that prefill from settings
func (a *App) rebuildCalculators() {
	a.converter = NewConverterModel(a.svc)
	a.splits = NewSplitsModel(a.svc)
	a.zones = NewZonesModel(a.svc)
	a.intervals = NewIntervalsModel(a.svc)
	a.predictions = NewPredictionsModel(a.svc, a.width, a.height)
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.converter.Init()
}

// editing reports whether the current screen has a focused input
func (a *App) editing() bool {
	switch a.screen {
	case ScreenConverter:
		return a.converter.Editing()
	case ScreenSplits:
		return a.splits.Editing()
	case ScreenZones:
		return a.zones.Editing()
	case ScreenIntervals:
		return a.intervals.Editing()
	case ScreenPredictions:
		return a.predictions.Editing()
	case ScreenSettings:
		return a.settings.Editing()
	}
	return false
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		a.status = ""
		// Global keybindings (unless typing into a field)
		if !a.editing() {
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case "1":
				a.screen = ScreenConverter
				return a, nil
			case "2":
				a.screen = ScreenSplits
				return a, nil
			case "3":
				a.screen = ScreenZones
				return a, nil
			case "4":
				a.screen = ScreenIntervals
				return a, nil
			case "5":
				a.screen = ScreenPredictions
				return a, nil
			case "6":
				a.screen = ScreenHistory
				a.history = NewHistoryModel(a.svc, a.width, a.height)
				return a, a.history.Init()
			case "7":
				a.screen = ScreenSettings
				return a, nil
			case "?":
				if a.screen != ScreenHelp {
					a.prevScreen = a.screen
					a.screen = ScreenHelp
				}
				return a, nil
			case "esc":
				if a.screen == ScreenHelp {
					a.screen = a.prevScreen
					return a, nil
				}
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Both scrolling screens size their viewports from the window
		var m tea.Model
		m, _ = a.predictions.Update(msg)
		a.predictions = m.(PredictionsModel)
		m, _ = a.history.Update(msg)
		a.history = m.(HistoryModel)
		return a, nil

	case SettingsChangedMsg:
		applyTheme(msg.Settings.Theme)
		a.rebuildCalculators()
		a.status = "Settings saved"
		a.logger.Printf("App: settings changed unit=%s theme=%s", msg.Settings.Unit, msg.Settings.Theme)
		return a, nil
	}

	// Delegate to current screen
	var cmd tea.Cmd
	var m tea.Model
	switch a.screen {
	case ScreenConverter:
		m, cmd = a.converter.Update(msg)
		a.converter = m.(ConverterModel)
	case ScreenSplits:
		m, cmd = a.splits.Update(msg)
		a.splits = m.(SplitsModel)
	case ScreenZones:
		m, cmd = a.zones.Update(msg)
		a.zones = m.(ZonesModel)
	case ScreenIntervals:
		m, cmd = a.intervals.Update(msg)
		a.intervals = m.(IntervalsModel)
	case ScreenPredictions:
		m, cmd = a.predictions.Update(msg)
		a.predictions = m.(PredictionsModel)
	case ScreenHistory:
		m, cmd = a.history.Update(msg)
		a.history = m.(HistoryModel)
	case ScreenSettings:
		m, cmd = a.settings.Update(msg)
		a.settings = m.(SettingsModel)
	case ScreenHelp:
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenConverter:
		content = a.converter.View()
	case ScreenSplits:
		content = a.splits.View()
	case ScreenZones:
		content = a.zones.View()
	case ScreenIntervals:
		content = a.intervals.View()
	case ScreenPredictions:
		content = a.predictions.View()
	case ScreenHistory:
		content = a.history.View()
	case ScreenSettings:
		content = a.settings.View()
	case ScreenHelp:
		content = a.help.View()
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("Running Calculator")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Convert", ScreenConverter},
		{"2", "Splits", ScreenSplits},
		{"3", "Zones", ScreenZones},
		{"4", "Intervals", ScreenIntervals},
		{"5", "Predict", ScreenPredictions},
		{"6", "History", ScreenHistory},
		{"7", "Settings", ScreenSettings},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	if a.status != "" {
		return statusStyle.Render(a.status)
	}
	return ""
}
