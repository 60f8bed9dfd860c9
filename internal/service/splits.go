package service

import (
	"strings"

	"runcalc/internal/analysis"
)

// SplitMode selects how the split calculator derives its speed
type SplitMode int

const (
	SplitByPace SplitMode = iota
	SplitByMAS
	SplitByTarget
)

func (m SplitMode) String() string {
	switch m {
	case SplitByMAS:
		return "mas"
	case SplitByTarget:
		return "target"
	}
	return "pace"
}

// ParseSplitMode parses "pace", "mas" and "target"
func ParseSplitMode(s string) (SplitMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pace":
		return SplitByPace, true
	case "mas", "vma":
		return SplitByMAS, true
	case "target", "time":
		return SplitByTarget, true
	}
	return 0, false
}

// SplitRequest is the raw input of the split calculator. Only the fields of
// the selected mode are read.
type SplitRequest struct {
	Mode             SplitMode
	Pace             string // SplitByPace
	MAS              string // SplitByMAS; empty uses the saved MAS
	MASPercent       string // SplitByMAS; empty is 100
	TargetTime       string // SplitByTarget
	TargetDistanceID string // SplitByTarget; empty is 5k
	Unit             analysis.Unit
}

// SplitDisplay is one formatted split row
type SplitDisplay struct {
	DistanceID  string
	Label       string
	Time        string
	TimeSeconds float64
}

// SplitsData is the split table for one speed
type SplitsData struct {
	Mode        SplitMode
	Unit        analysis.Unit
	PaceSeconds float64
	Pace        string
	Speed       string
	Splits      []SplitDisplay
}

// Splits projects times over the standard distances
func (c *CalculatorService) Splits(req SplitRequest) (*SplitsData, error) {
	u := c.unit(req.Unit)

	splits, err := c.projectSplits(req, u)
	if err != nil {
		return nil, err
	}
	if len(splits) == 0 {
		return nil, undefined("no speed for these inputs")
	}

	first := splits[0]
	speedKmh := analysis.MsToKmh(first.Distance.Meters / first.TimeSeconds)

	data := &SplitsData{
		Mode:        req.Mode,
		Unit:        u,
		PaceSeconds: first.PaceSeconds,
		Pace:        formatPace(first.PaceSeconds, u),
		Speed:       analysis.FormatSpeed(speedKmh, u),
		Splits:      make([]SplitDisplay, 0, len(splits)),
	}
	for _, s := range splits {
		data.Splits = append(data.Splits, SplitDisplay{
			DistanceID:  s.Distance.ID,
			Label:       s.Distance.Label,
			Time:        analysis.FormatDuration(s.TimeSeconds),
			TimeSeconds: s.TimeSeconds,
		})
	}
	return data, nil
}

func (c *CalculatorService) projectSplits(req SplitRequest, u analysis.Unit) ([]analysis.SplitResult, error) {
	switch req.Mode {
	case SplitByPace:
		value := strings.TrimSpace(req.Pace)
		pace := analysis.ParsePace(value)
		if !(pace > 0) {
			return nil, invalid("pace", value, "use mm:ss or minutes")
		}
		return analysis.SplitsFromPace(pace, u), nil

	case SplitByMAS:
		mas, ok, err := c.masOrSaved(req.MAS)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, undefined("no MAS entered or saved")
		}
		percent, err := parsePositive("mas_percent", orDefault(req.MASPercent, DefaultMASPercent))
		if err != nil {
			return nil, err
		}
		return analysis.SplitsFromMASPercent(mas, percent, u), nil

	case SplitByTarget:
		value := strings.TrimSpace(req.TargetTime)
		target := analysis.ParseDuration(value)
		if !(target > 0) {
			return nil, invalid("target_time", value, "use h:mm:ss or mm:ss")
		}
		id := orDefault(req.TargetDistanceID, DefaultTargetDistanceID)
		d, ok := analysis.FindDistance(analysis.StandardDistances, id)
		if !ok {
			return nil, invalid("target_distance", id, "unknown distance")
		}
		return analysis.SplitsFromTargetTime(target, d.Meters, u), nil
	}
	return nil, invalid("mode", req.Mode.String(), "unknown split mode")
}
