package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"runcalc/internal/analysis"
	"runcalc/internal/store"
)

// PredictionRequest is the raw input of the race predictor.
// Empty distance and time fall back to the saved reference performance.
type PredictionRequest struct {
	Model      analysis.PredictionModel
	DistanceID string // a PredictionDistances ID or meters
	Time       string // h:mm:ss or mm:ss
	Unit       analysis.Unit
	Record     bool // save the run to history
}

// PredictionDisplay is a formatted prediction row
type PredictionDisplay struct {
	DistanceID  string
	Distance    string
	Time        string
	Pace        string
	Confidence  string
	IsReference bool
	TimeSeconds float64
	PaceSeconds float64
}

// PredictionsData contains all data for the predictions view
type PredictionsData struct {
	Model         analysis.PredictionModel
	ModelLabel    string
	Unit          analysis.Unit
	Reference     string // "5 km in 20:00"
	VDOT          float64
	VDOTText      string // "49.8 (Advanced Recreational)", empty for Riegel
	EquivalentMAS string // empty for Riegel
	Predictions   []PredictionDisplay
	RunID         int64 // 0 unless recorded
}

// HistoryEntry is a formatted saved prediction run
type HistoryEntry struct {
	ID          int64
	When        string
	Model       string
	Reference   string
	VDOT        string
	Predictions []PredictionDisplay
}

// Predictions predicts race times at every target distance from one reference performance
func (c *CalculatorService) Predictions(req PredictionRequest) (*PredictionsData, error) {
	u := c.unit(req.Unit)

	ref, err := c.referenceDistance(req.DistanceID)
	if err != nil {
		return nil, err
	}
	refSeconds, err := c.referenceTime(req.Time)
	if err != nil {
		return nil, err
	}

	set := analysis.Predict(req.Model, ref.Meters, refSeconds, u)
	if len(set.Predictions) == 0 {
		return nil, undefined("no predictions for this performance")
	}

	data := &PredictionsData{
		Model:       set.Model,
		ModelLabel:  set.Model.Label(),
		Unit:        u,
		Reference:   fmt.Sprintf("%s in %s", ref.Label, analysis.FormatDuration(refSeconds)),
		VDOT:        set.VDOT,
		Predictions: predictionDisplays(set.Predictions, u),
	}
	if set.VDOT > 0 {
		data.VDOTText = fmt.Sprintf("%.1f (%s)", set.VDOT, analysis.GetVDOTLabel(set.VDOT))
		data.EquivalentMAS = analysis.FormatSpeed(analysis.EquivalentMAS(set.VDOT), u)
	}

	if req.Record {
		id, err := c.store.RecordPredictions(set, ref.Meters, refSeconds, u)
		if err != nil {
			return nil, fmt.Errorf("recording predictions: %w", err)
		}
		data.RunID = id
	}
	c.logger.Printf("CalculatorService: Predictions model=%s ref=%s time=%.0f vdot=%.2f run=%d",
		set.Model, ref.ID, refSeconds, set.VDOT, data.RunID)
	return data, nil
}

// referenceDistance resolves the reference distance from input, then settings, then 5 km.
// Input and saved values may be a catalog ID or meters.
func (c *CalculatorService) referenceDistance(input string) (analysis.Distance, error) {
	value := strings.TrimSpace(input)
	if value != "" {
		if d, ok := analysis.FindDistance(analysis.PredictionDistances, strings.ToLower(value)); ok {
			return d, nil
		}
		meters, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return analysis.Distance{}, invalid("distance", value, "unknown distance")
		}
		if !(meters > 0) || math.IsInf(meters, 0) {
			return analysis.Distance{}, invalid("distance", value, "must be positive")
		}
		return referenceMeters(meters), nil
	}
	if c.settings.RefDistanceMeters != nil {
		return referenceMeters(*c.settings.RefDistanceMeters), nil
	}
	d, _ := analysis.FindDistance(analysis.PredictionDistances, DefaultReferenceDistance)
	return d, nil
}

// referenceMeters names a distance after its catalog entry, or after its length when off-catalog
func referenceMeters(meters float64) analysis.Distance {
	for _, d := range analysis.PredictionDistances {
		if math.Abs(d.Meters-meters) <= ReferenceMatchMeters {
			return d
		}
	}
	label := analysis.FormatDistance(meters)
	return analysis.Distance{ID: label, Label: label, Meters: meters}
}

// referenceTime parses a duration, falling back to the saved reference time
func (c *CalculatorService) referenceTime(input string) (float64, error) {
	value := strings.TrimSpace(input)
	if value == "" {
		if c.settings.RefTimeSeconds == nil {
			return 0, undefined("no reference time entered or saved")
		}
		return *c.settings.RefTimeSeconds, nil
	}
	seconds := analysis.ParseDuration(value)
	if math.IsNaN(seconds) {
		return 0, invalid("time", value, "use h:mm:ss or mm:ss")
	}
	if !(seconds > 0) {
		return 0, invalid("time", value, "must be positive")
	}
	return seconds, nil
}

// History returns saved prediction runs, newest first
func (c *CalculatorService) History(limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = HistoryLimit
	}
	runs, err := c.store.ListPredictionRuns(limit)
	if err != nil {
		return nil, fmt.Errorf("listing prediction runs: %w", err)
	}

	entries := make([]HistoryEntry, 0, len(runs))
	for _, run := range runs {
		entries = append(entries, newHistoryEntry(run))
	}
	return entries, nil
}

// HistoryRun returns one saved prediction run by ID
func (c *CalculatorService) HistoryRun(id int64) (*HistoryEntry, error) {
	run, err := c.store.GetPredictionRun(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("prediction run %d: %w", id, err)
		}
		return nil, fmt.Errorf("loading prediction run %d: %w", id, err)
	}
	entry := newHistoryEntry(*run)
	return &entry, nil
}

// ClearHistory deletes every saved prediction run
func (c *CalculatorService) ClearHistory() error {
	return c.store.DeletePredictionRuns()
}

func newHistoryEntry(run store.PredictionRun) HistoryEntry {
	entry := HistoryEntry{
		ID:          run.ID,
		When:        run.CreatedAt.Local().Format(time.DateTime),
		Model:       capitalizeFirst(run.Model),
		Reference:   fmt.Sprintf("%s in %s", analysis.FormatDistance(run.RefMeters), analysis.FormatDuration(run.RefSeconds)),
		Predictions: predictionDisplays(run.Results, run.Unit),
	}
	if model, ok := analysis.ParsePredictionModel(run.Model); ok {
		entry.Model = model.Label()
	}
	if run.VDOT > 0 {
		entry.VDOT = fmt.Sprintf("%.1f", run.VDOT)
	}
	return entry
}

func predictionDisplays(results []analysis.PredictionResult, u analysis.Unit) []PredictionDisplay {
	displays := make([]PredictionDisplay, 0, len(results))
	for _, p := range results {
		displays = append(displays, PredictionDisplay{
			DistanceID:  p.DistanceID,
			Distance:    p.Label,
			Time:        analysis.FormatDuration(p.TimeSeconds),
			Pace:        formatPace(p.PaceSeconds, u),
			Confidence:  capitalizeFirst(p.Confidence),
			IsReference: p.IsReference,
			TimeSeconds: p.TimeSeconds,
			PaceSeconds: p.PaceSeconds,
		})
	}
	return displays
}
