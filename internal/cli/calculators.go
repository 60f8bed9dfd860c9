package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"runcalc/internal/analysis"
	"runcalc/internal/service"
	"runcalc/internal/tui"
)

// chartWidth is the plot width of predict --chart
const chartWidth = 60

func newConvertCmd(opts *rootOptions) *cobra.Command {
	var pace, speed string

	cmd := &cobra.Command{
		Use:   "convert --pace <mm:ss> | --speed <value>",
		Short: "Convert between pace and speed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if (pace == "") == (speed == "") {
				return errors.New("give exactly one of --pace or --speed")
			}
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			var conv *service.Conversion
			if pace != "" {
				conv, err = a.svc.ConvertPace(pace, a.unit)
			} else {
				conv, err = a.svc.ConvertSpeed(speed, a.unit)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "pace   %s\n", conv.Pace)
			_, _ = fmt.Fprintf(out, "speed  %s (%s)\n", conv.Speed, conv.OtherSpeed)
			return nil
		},
	}
	cmd.Flags().StringVar(&pace, "pace", "", "pace per unit, mm:ss or minutes")
	cmd.Flags().StringVar(&speed, "speed", "", "speed in km/h, or mph with --unit mile")
	return cmd
}

func newSplitsCmd(opts *rootOptions) *cobra.Command {
	var mode, pace, mas, percent, target, distance string

	cmd := &cobra.Command{
		Use:   "splits",
		Short: "Project split times over the standard distances",
		Long: "Project split times at constant speed. The speed comes from a pace (--mode pace),\n" +
			"a share of MAS (--mode mas) or a goal time over a distance (--mode target).",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, ok := service.ParseSplitMode(mode)
			if !ok {
				return fmt.Errorf("--mode must be pace, mas or target, got %q", mode)
			}
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			data, err := a.svc.Splits(service.SplitRequest{
				Mode:             m,
				Pace:             pace,
				MAS:              mas,
				MASPercent:       percent,
				TargetTime:       target,
				TargetDistanceID: distance,
				Unit:             a.unit,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s  %s\n\n", data.Pace, data.Speed)
			for _, s := range data.Splits {
				_, _ = fmt.Fprintf(out, "%-15s  %10s\n", s.Label, s.Time)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "pace", "pace, mas or target")
	cmd.Flags().StringVar(&pace, "pace", "", "pace per unit (mode pace)")
	cmd.Flags().StringVar(&mas, "mas", "", "MAS in km/h (mode mas, default saved MAS)")
	cmd.Flags().StringVar(&percent, "percent", "", "percent of MAS (mode mas, default "+service.DefaultMASPercent+")")
	cmd.Flags().StringVar(&target, "time", "", "goal time h:mm:ss or mm:ss (mode target)")
	cmd.Flags().StringVar(&distance, "distance", "", "goal distance id (mode target, default "+service.DefaultTargetDistanceID+")")
	return cmd
}

func newZonesCmd(opts *rootOptions) *cobra.Command {
	var model, mas, maxHR, restingHR string

	cmd := &cobra.Command{
		Use:   "zones",
		Short: "Show training zones",
		Long:  "Show training zones for one model: mas, daniels, hr, rpe or borg.\nEmpty reference values fall back to saved settings.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			zm, ok := analysis.ParseZoneModel(model)
			if !ok {
				return fmt.Errorf("--model must be mas, daniels, hr, rpe or borg, got %q", model)
			}
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			data, err := a.svc.Zones(service.ZoneRequest{
				Model:     zm,
				MAS:       mas,
				MaxHR:     maxHR,
				RestingHR: restingHR,
				Unit:      a.unit,
			})
			if err != nil {
				return err
			}
			writeZones(cmd.OutOrStdout(), data)
			return nil
		},
	}
	cmd.Flags().StringVar(&model, "model", "mas", "mas, daniels, hr, rpe or borg")
	cmd.Flags().StringVar(&mas, "mas", "", "MAS in km/h (default saved MAS)")
	cmd.Flags().StringVar(&maxHR, "max-hr", "", "max heart rate (default saved)")
	cmd.Flags().StringVar(&restingHR, "resting-hr", "", "resting heart rate (default saved)")
	return cmd
}

func writeZones(out io.Writer, data *service.ZonesData) {
	if data.Reference != "" {
		_, _ = fmt.Fprintf(out, "%s\n\n", data.Reference)
	}
	for _, z := range data.Zones {
		switch {
		case z.HeartRate != "":
			_, _ = fmt.Fprintf(out, "%-3s %-18s %-10s %s\n", z.ID, z.Name, z.Intensity, z.HeartRate)
		case z.Speed != "":
			_, _ = fmt.Fprintf(out, "%-3s %-18s %-10s %-16s %s\n", z.ID, z.Name, z.Intensity, z.Speed, z.Pace)
		default:
			_, _ = fmt.Fprintf(out, "%-3s %-18s %s\n", z.ID, z.Name, z.Intensity)
		}
	}
}

func newIntervalCmd(opts *rootOptions) *cobra.Command {
	var mas, percent, distance, reps, recovery string
	var schedule bool

	cmd := &cobra.Command{
		Use:   "interval",
		Short: "Compute an interval session at a percentage of MAS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			data, err := a.svc.Interval(service.IntervalRequest{
				MAS:           mas,
				MASPercent:    percent,
				RepDistanceID: distance,
				Reps:          reps,
				Recovery:      recovery,
				Unit:          a.unit,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%d × %s, %s recovery\n\n", data.Reps, data.RepDistance, data.Recovery)
			_, _ = fmt.Fprintf(out, "rep time      %s\n", data.RepTime)
			_, _ = fmt.Fprintf(out, "pace          %s\n", data.RepPace)
			_, _ = fmt.Fprintf(out, "speed         %s\n", data.Speed)
			_, _ = fmt.Fprintf(out, "work time     %s\n", data.TotalWork)
			_, _ = fmt.Fprintf(out, "distance      %s\n", data.TotalDistance)
			_, _ = fmt.Fprintf(out, "session time  %s\n", data.TotalElapsed)

			if schedule {
				_, _ = fmt.Fprintf(out, "\n%-4s  %8s  %8s  %s\n", "Rep", "Start", "End", "Then")
				for _, rep := range data.Schedule {
					then := rep.Recovery
					if then == "" {
						then = "done"
					}
					_, _ = fmt.Fprintf(out, "%-4d  %8s  %8s  %s\n", rep.Index, rep.Start, rep.End, then)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mas, "mas", "", "MAS in km/h (default saved MAS)")
	cmd.Flags().StringVar(&percent, "percent", "", "percent of MAS (default "+service.DefaultMASPercent+")")
	cmd.Flags().StringVar(&distance, "distance", "", "rep distance id or meters (default "+service.DefaultRepDistanceID+")")
	cmd.Flags().StringVar(&reps, "reps", "", "number of reps, 1-50 (default "+service.DefaultReps+")")
	cmd.Flags().StringVar(&recovery, "recovery", "", "recovery between reps: a preset such as \"90 s\", seconds or mm:ss (default 1 min)")
	cmd.Flags().BoolVar(&schedule, "schedule", false, "print the rep-by-rep timeline")
	return cmd
}

func newPredictCmd(opts *rootOptions) *cobra.Command {
	var model, distance, timeInput string
	var chart, save bool

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict race times from a reference performance",
		Long:  "Predict race times with the Daniels VDOT or Riegel model.\nWithout --distance and --time the saved reference performance is used.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pm, ok := analysis.ParsePredictionModel(model)
			if !ok {
				return fmt.Errorf("--model must be daniels or riegel, got %q", model)
			}
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			data, err := a.svc.Predictions(service.PredictionRequest{
				Model:      pm,
				DistanceID: distance,
				Time:       timeInput,
				Unit:       a.unit,
				Record:     save,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s from %s\n", data.ModelLabel, data.Reference)
			if data.VDOTText != "" {
				_, _ = fmt.Fprintf(out, "VDOT %s, vVO2max %s\n", data.VDOTText, data.EquivalentMAS)
			}
			_, _ = fmt.Fprintln(out)
			_, _ = fmt.Fprintf(out, "  %-15s  %10s  %16s  %s\n", "Distance", "Time", "Pace", "Confidence")
			for _, p := range data.Predictions {
				marker := " "
				if p.IsReference {
					marker = "*"
				}
				_, _ = fmt.Fprintf(out, "%s %-15s  %10s  %16s  %s\n", marker, p.Distance, p.Time, p.Pace, p.Confidence)
			}

			if chart {
				_, _ = fmt.Fprintf(out, "\n%s\n", tui.RenderPaceChart(data.Predictions, data.Unit, chartWidth))
			}
			if data.RunID > 0 {
				_, _ = fmt.Fprintf(out, "\nsaved as run %d\n", data.RunID)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&model, "model", "daniels", "daniels or riegel")
	cmd.Flags().StringVar(&distance, "distance", "", "reference distance id (5k, 10k, half) or meters (default saved)")
	cmd.Flags().StringVar(&timeInput, "time", "", "reference time h:mm:ss or mm:ss (default saved)")
	cmd.Flags().BoolVar(&chart, "chart", false, "plot pace against distance")
	cmd.Flags().BoolVar(&save, "save", true, "record the run in history")
	return cmd
}
