package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"runcalc/internal/analysis"
)

// IntervalRequest is the raw input of the interval calculator.
// Empty fields take the calculator defaults and the saved MAS.
type IntervalRequest struct {
	MAS           string
	MASPercent    string
	RepDistanceID string // an IntervalDistances ID or meters
	Reps          string
	Recovery      string // a preset label, seconds, or mm:ss
	Unit          analysis.Unit
}

// IntervalRepDisplay is one formatted row of the session timeline
type IntervalRepDisplay struct {
	Index    int
	Start    string
	End      string
	Recovery string // empty after the final rep
}

// IntervalData is a formatted interval session
type IntervalData struct {
	Unit          analysis.Unit
	RepDistance   string
	RepTime       string
	RepPace       string
	Speed         string
	Reps          int
	Recovery      string
	TotalWork     string
	TotalDistance string
	TotalElapsed  string
	Schedule      []IntervalRepDisplay
	Result        analysis.IntervalResult
}

// Interval computes rep time and session totals at a percentage of MAS
func (c *CalculatorService) Interval(req IntervalRequest) (*IntervalData, error) {
	u := c.unit(req.Unit)

	mas, ok, err := c.masOrSaved(req.MAS)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, undefined("no MAS entered or saved")
	}

	in := analysis.IntervalInput{MASKmh: mas}

	percentInput := orDefault(req.MASPercent, DefaultMASPercent)
	if in.MASPercent, err = parsePositive("mas_percent", percentInput); err != nil {
		return nil, err
	}

	distanceInput := orDefault(req.RepDistanceID, DefaultRepDistanceID)
	if in.RepDistanceMeters, err = parseRepDistance(distanceInput); err != nil {
		return nil, err
	}

	repsInput := orDefault(req.Reps, DefaultReps)
	if in.Reps, err = strconv.Atoi(repsInput); err != nil {
		return nil, invalid("reps", repsInput, "not a whole number")
	}

	recoveryInput := strings.TrimSpace(req.Recovery)
	if in.RecoverySeconds, err = parseRecovery(recoveryInput); err != nil {
		return nil, err
	}

	if field := analysis.ValidateInterval(in); field != analysis.IntervalFieldNone {
		values := map[analysis.IntervalField]string{
			analysis.IntervalFieldMAS:         req.MAS,
			analysis.IntervalFieldMASPercent:  percentInput,
			analysis.IntervalFieldRepDistance: distanceInput,
			analysis.IntervalFieldReps:        repsInput,
			analysis.IntervalFieldRecovery:    recoveryInput,
		}
		return nil, invalid(field.String(), values[field], "out of range")
	}

	result, _ := analysis.ComputeInterval(in, u)
	data := &IntervalData{
		Unit:          u,
		RepDistance:   analysis.FormatDistance(in.RepDistanceMeters),
		RepTime:       analysis.FormatDuration(result.RepTimeSeconds),
		RepPace:       formatPace(result.RepPaceSeconds, u),
		Speed:         analysis.FormatSpeed(result.SpeedKmh, u),
		Reps:          result.Reps,
		Recovery:      formatRecovery(result.RecoverySeconds),
		TotalWork:     analysis.FormatDuration(result.TotalWorkSeconds),
		TotalDistance: analysis.FormatDistance(result.TotalDistanceMeters),
		TotalElapsed:  analysis.FormatDuration(result.TotalElapsedSeconds),
		Result:        result,
	}
	for _, rep := range result.Schedule() {
		row := IntervalRepDisplay{
			Index: rep.Index,
			Start: analysis.FormatClock(rep.StartSeconds),
			End:   analysis.FormatClock(rep.EndSeconds),
		}
		if rep.RecoverySeconds > 0 {
			row.Recovery = formatRecovery(rep.RecoverySeconds)
		}
		data.Schedule = append(data.Schedule, row)
	}
	return data, nil
}

// parseRepDistance accepts an interval catalog ID ("400m", "1k") or meters
func parseRepDistance(input string) (float64, error) {
	if d, ok := analysis.FindDistance(analysis.IntervalDistances, input); ok {
		return d.Meters, nil
	}
	return parsePositive("rep_distance", input)
}

// parseRecovery accepts a preset label ("90 s"), seconds ("90") or mm:ss ("1:30").
// Empty selects the default preset.
func parseRecovery(input string) (float64, error) {
	if input == "" {
		return analysis.RecoveryOptions[analysis.DefaultRecoveryIndex].Seconds, nil
	}
	for _, opt := range analysis.RecoveryOptions {
		if strings.EqualFold(opt.Label, input) {
			return opt.Seconds, nil
		}
	}
	if strings.Contains(input, ":") {
		seconds := analysis.ParseDuration(input)
		if !(seconds >= 0) {
			return 0, invalid("recovery", input, "use mm:ss or seconds")
		}
		return seconds, nil
	}
	seconds, err := strconv.ParseFloat(input, 64)
	if err != nil || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, invalid("recovery", input, "use mm:ss or seconds")
	}
	return seconds, nil
}

func formatRecovery(seconds float64) string {
	for _, opt := range analysis.RecoveryOptions {
		if opt.Seconds == seconds {
			return opt.Label
		}
	}
	if seconds < 60 {
		return fmt.Sprintf("%.0f s", seconds)
	}
	return analysis.FormatClock(seconds)
}
