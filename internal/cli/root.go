package cli

import (
	"errors"
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"runcalc/internal/analysis"
	"runcalc/internal/config"
	"runcalc/internal/service"
	"runcalc/internal/store"
	"runcalc/internal/tui"
)

// rootOptions holds the persistent flags shared by every command
type rootOptions struct {
	configPath string
	unit       string
	dbPath     string
	logFile    string
}

// Execute runs the command tree against os.Args
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the runcalc command tree. Without a subcommand it starts the TUI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "runcalc",
		Short:         "Running calculators: pace, splits, zones, intervals and race predictions",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.runcalc/config.json)")
	root.PersistentFlags().StringVar(&opts.unit, "unit", "", "unit for this run: km or mile (default from settings)")
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "settings database (default ~/.runcalc/runcalc.db)")
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "log file, - for stderr (default ~/.runcalc/runcalc.log)")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newConvertCmd(opts))
	root.AddCommand(newSplitsCmd(opts))
	root.AddCommand(newZonesCmd(opts))
	root.AddCommand(newIntervalCmd(opts))
	root.AddCommand(newPredictCmd(opts))
	root.AddCommand(newSettingsCmd(opts))
	root.AddCommand(newHistoryCmd(opts))
	root.AddCommand(newInitCmd(opts))
	return root
}

// app is the wired set of collaborators one command runs against
type app struct {
	cfg    *config.Config
	store  *store.Store
	svc    *service.CalculatorService
	logger *log.Logger
	unit   analysis.Unit // per-run override, empty for the saved unit
	logs   io.Closer
}

// loadApp reads config, opens the log and the database, and builds the service
func loadApp(cmd *cobra.Command, opts *rootOptions) (*app, error) {
	unit, err := parseUnitFlag(opts.unit)
	if err != nil {
		return nil, err
	}

	v, err := config.NewViper(opts.configPath)
	if err != nil {
		return nil, err
	}
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return nil, err
	}
	cfg, err := config.Load(v)
	if err != nil && !errors.Is(err, config.ErrNoConfig) {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, logs := newLogger(cfg.Log, cmd.ErrOrStderr())
	logger.Printf("CLI: %s config=%s db=%s", cmd.CommandPath(), v.ConfigFileUsed(), cfg.Storage.DBPath)

	st, err := store.Open(cfg.Storage.DBPath, logger)
	if err != nil {
		logs.Close()
		return nil, err
	}

	svc, err := service.NewCalculatorService(st, config.SettingsFromConfig(*cfg), logger)
	if err != nil {
		st.Close()
		logs.Close()
		return nil, err
	}

	return &app{cfg: cfg, store: st, svc: svc, logger: logger, unit: unit, logs: logs}, nil
}

// Close releases the database and the log file
func (a *app) Close() error {
	err := a.store.Close()
	if cerr := a.logs.Close(); err == nil {
		err = cerr
	}
	return err
}

func parseUnitFlag(value string) (analysis.Unit, error) {
	if value == "" {
		return "", nil
	}
	u, ok := analysis.ParseUnit(value)
	if !ok {
		return "", fmt.Errorf("--unit must be km or mile, got %q", value)
	}
	return u, nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// newLogger writes to a rotating file, to stderr for "-", or nowhere when unset
func newLogger(cfg config.LogConfig, stderr io.Writer) (*log.Logger, io.Closer) {
	noop := closerFunc(func() error { return nil })
	switch cfg.File {
	case "":
		return log.New(io.Discard, "", 0), noop
	case "-":
		return log.New(stderr, "", log.LstdFlags), noop
	}

	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
	return log.New(file, "", log.LstdFlags), file
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}
}

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	a, err := loadApp(cmd, opts)
	if err != nil {
		return err
	}
	defer a.Close()

	p := tea.NewProgram(tui.NewApp(a.svc, a.logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
