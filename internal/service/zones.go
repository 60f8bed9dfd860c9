package service

import (
	"fmt"

	"runcalc/internal/analysis"
)

// ZoneRequest selects a zone model. Empty reference fields use saved settings.
type ZoneRequest struct {
	Model     analysis.ZoneModel
	MAS       string
	MaxHR     string
	RestingHR string
	Unit      analysis.Unit
}

// ZoneDisplay is one formatted training zone
type ZoneDisplay struct {
	ID          string
	Name        string
	Description string
	Color       string
	Intensity   string // "55-65%" or "RPE 7"
	Speed       string // speed models only
	Pace        string // speed models only
	HeartRate   string // heart rate model only
}

// ZonesData holds the zones of one model for the runner
type ZonesData struct {
	Model     analysis.ZoneModel
	Unit      analysis.Unit
	Reference string // what the zones are scaled by, empty for ordinal scales
	Zones     []ZoneDisplay
}

// Zones computes the selected model's bands from the runner's reference values
func (c *CalculatorService) Zones(req ZoneRequest) (*ZonesData, error) {
	u := c.unit(req.Unit)
	data := &ZonesData{Model: req.Model, Unit: u}

	var in analysis.ZoneInput
	switch req.Model {
	case analysis.ZoneModelMAS, analysis.ZoneModelDaniels:
		mas, source, err := c.zoneMAS(req.MAS)
		if err != nil {
			return nil, err
		}
		in = analysis.ZoneInput{Model: req.Model, MASKmh: mas}
		data.Reference = fmt.Sprintf("MAS %s%s", analysis.FormatSpeed(mas, u), source)

	case analysis.ZoneModelHeartRate:
		maxHR, ok, err := parseOptionalPositive("max_hr", req.MaxHR, c.settings.MaxHR)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, undefined("no max heart rate entered or saved")
		}
		restingHR, ok, err := parseOptionalPositive("resting_hr", req.RestingHR, c.settings.RestingHR)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, undefined("no resting heart rate entered or saved")
		}
		in = analysis.HeartRateInput(maxHR, restingHR)
		data.Reference = fmt.Sprintf("HR %.0f-%.0f bpm", restingHR, maxHR)

	case analysis.ZoneModelRPE, analysis.ZoneModelBorg:
		in = analysis.ZoneInput{Model: req.Model}

	default:
		return nil, invalid("model", req.Model.String(), "unknown zone model")
	}

	zones, ok := analysis.ComputeZones(in, u)
	if !ok {
		return nil, undefined(fmt.Sprintf("%s zones need max heart rate above resting", req.Model.Label()))
	}

	data.Zones = make([]ZoneDisplay, 0, len(zones))
	for _, z := range zones {
		data.Zones = append(data.Zones, newZoneDisplay(z, req.Model, u))
	}
	return data, nil
}

// zoneMAS resolves MAS from input, then settings, then the vVO2max of the
// saved reference performance
func (c *CalculatorService) zoneMAS(input string) (float64, string, error) {
	mas, ok, err := c.masOrSaved(input)
	if err != nil {
		return 0, "", err
	}
	if ok {
		return mas, "", nil
	}
	if c.settings.HasReference() {
		vdot := analysis.CalculateVDOT(*c.settings.RefDistanceMeters, *c.settings.RefTimeSeconds)
		if vdot > 0 {
			return analysis.EquivalentMAS(vdot), fmt.Sprintf(" (from VDOT %.1f)", vdot), nil
		}
	}
	return 0, "", undefined("no MAS entered or saved")
}

func newZoneDisplay(z analysis.ComputedZone, model analysis.ZoneModel, u analysis.Unit) ZoneDisplay {
	d := ZoneDisplay{
		ID:          z.ID,
		Name:        z.Name,
		Description: z.Description,
		Color:       z.Color,
	}

	switch model {
	case analysis.ZoneModelMAS, analysis.ZoneModelDaniels:
		d.Intensity = fmt.Sprintf("%.0f-%.0f%%", z.MinPercent, z.MaxPercent)
		d.Speed = fmt.Sprintf("%.1f-%.1f %s",
			analysis.ConvertSpeed(z.MinSpeedKmh, analysis.UnitKm, u),
			analysis.ConvertSpeed(z.MaxSpeedKmh, analysis.UnitKm, u),
			u.SpeedLabel())
		d.Pace = fmt.Sprintf("%s-%s %s",
			analysis.FormatPace(z.MinPaceSeconds), analysis.FormatPace(z.MaxPaceSeconds), u.PaceLabel())
	case analysis.ZoneModelHeartRate:
		d.Intensity = fmt.Sprintf("%.0f-%.0f%%", z.MinPercent, z.MaxPercent)
		d.HeartRate = fmt.Sprintf("%d-%d bpm", z.MinBpm, z.MaxBpm)
	case analysis.ZoneModelRPE:
		d.Intensity = fmt.Sprintf("RPE %d", z.Level)
	case analysis.ZoneModelBorg:
		d.Intensity = fmt.Sprintf("Borg %d", z.Level)
	}
	return d
}
