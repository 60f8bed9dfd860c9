package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"runcalc/internal/config"
)

func newSettingsCmd(opts *rootOptions) *cobra.Command {
	settings := &cobra.Command{
		Use:   "settings",
		Short: "Show or change saved settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showSettings(cmd, opts)
		},
	}

	settings.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print every setting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showSettings(cmd, opts)
		},
	})

	settings.AddCommand(&cobra.Command{
		Use:   "set <key> <value> | <key>=<value>",
		Short: "Change one setting. An empty value clears a baseline.",
		Long:  "Change one setting. Keys: " + strings.Join(config.SettingKeys(), ", ") + ".",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value, err := settingArgs(args)
			if err != nil {
				return err
			}
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			s, err := a.svc.SetSetting(key, value)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, displayValue(s.Value(key)))
			return nil
		},
	})

	settings.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Forget saved settings and return to the config file defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			s, err := a.svc.ResetSettings()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "settings reset")
			writeSettings(cmd.OutOrStdout(), s)
			return nil
		},
	})
	return settings
}

// settingArgs accepts "key value" and "key=value"
func settingArgs(args []string) (string, string, error) {
	if len(args) == 2 {
		return args[0], args[1], nil
	}
	key, value, ok := strings.Cut(args[0], "=")
	if !ok {
		return "", "", errors.New("expected <key> <value> or <key>=<value>")
	}
	return key, value, nil
}

func showSettings(cmd *cobra.Command, opts *rootOptions) error {
	a, err := loadApp(cmd, opts)
	if err != nil {
		return err
	}
	defer a.Close()

	writeSettings(cmd.OutOrStdout(), a.svc.Settings())
	return nil
}

func writeSettings(out io.Writer, s config.Settings) {
	for _, key := range config.SettingKeys() {
		_, _ = fmt.Fprintf(out, "%-12s %s\n", key, displayValue(s.Value(key)))
	}
}

func displayValue(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var limit int
	var clearAll bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved prediction runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			if clearAll {
				if err := a.svc.ClearHistory(); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(out, "history cleared")
				return nil
			}

			entries, err := a.svc.History(limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(out, "no saved predictions")
				return nil
			}
			for _, e := range entries {
				vdot := e.VDOT
				if vdot == "" {
					vdot = "-"
				}
				_, _ = fmt.Fprintf(out, "%d\t%s\t%s\t%s\tVDOT %s\n", e.ID, e.When, e.Model, e.Reference, vdot)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "runs to list (default 20)")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "delete every saved run")

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Print the predictions of one saved run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("run id must be a positive whole number, got %q", args[0])
			}
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			run, err := a.svc.HistoryRun(id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "run %d, %s\n", run.ID, run.When)
			_, _ = fmt.Fprintf(out, "%s from %s\n", run.Model, run.Reference)
			if run.VDOT != "" {
				_, _ = fmt.Fprintf(out, "VDOT %s\n", run.VDOT)
			}
			_, _ = fmt.Fprintln(out)
			for _, p := range run.Predictions {
				marker := " "
				if p.IsReference {
					marker = "*"
				}
				_, _ = fmt.Fprintf(out, "%s %-15s  %10s  %16s  %s\n", marker, p.Distance, p.Time, p.Pace, p.Confidence)
			}
			return nil
		},
	})
	return cmd
}

func newInitCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write an example config file if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.CreateExample(opts.configPath); err != nil {
				return fmt.Errorf("creating example config: %w", err)
			}
			path := opts.configPath
			if path == "" {
				dir, err := config.GetConfigDir()
				if err != nil {
					return err
				}
				path = filepath.Join(dir, "config.json")
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "config: %s\n", path)
			return nil
		},
	}
}
