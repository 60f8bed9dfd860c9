package analysis

import (
	"math"
	"strings"
)

// PredictionModel selects the race prediction engine
type PredictionModel int

const (
	ModelDaniels PredictionModel = iota
	ModelRiegel
)

func (m PredictionModel) String() string {
	if m == ModelRiegel {
		return "riegel"
	}
	return "daniels"
}

// Label returns a human-readable model name
func (m PredictionModel) Label() string {
	if m == ModelRiegel {
		return "Riegel"
	}
	return "Daniels VDOT"
}

// ParsePredictionModel parses "daniels" (or "vdot") and "riegel"
func ParsePredictionModel(s string) (PredictionModel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daniels", "vdot", "jd":
		return ModelDaniels, true
	case "riegel":
		return ModelRiegel, true
	}
	return 0, false
}

// PredictionResult represents a predicted race time for one target distance
type PredictionResult struct {
	Label           string
	DistanceID      string
	Meters          float64
	TimeSeconds     float64
	PaceSeconds     float64 // seconds per km or per mile
	IsReference     bool    // target matches the reference distance
	Confidence      string  // "high", "medium", "low"
	ConfidenceScore float64 // 0.0 to 1.0
}

// PredictionSet is the output of one model for one reference performance
type PredictionSet struct {
	Model       PredictionModel
	VDOT        float64 // 0 for Riegel
	Predictions []PredictionResult
}

// Predict runs the selected model over PredictionDistances
func Predict(model PredictionModel, refMeters, refSeconds float64, unit Unit) PredictionSet {
	if model == ModelRiegel {
		return PredictionSet{
			Model:       ModelRiegel,
			Predictions: GenerateRiegelPredictions(refMeters, refSeconds, unit),
		}
	}
	vdot, predictions := GeneratePredictions(refMeters, refSeconds, unit)
	return PredictionSet{Model: ModelDaniels, VDOT: vdot, Predictions: predictions}
}

// GeneratePredictions produces VDOT race time predictions for all target distances.
// Returns a zero VDOT and no predictions when the reference performance is invalid.
func GeneratePredictions(refMeters, refSeconds float64, unit Unit) (float64, []PredictionResult) {
	vdot := CalculateVDOT(refMeters, refSeconds)
	if vdot <= 0 {
		return 0, nil
	}

	predictions := make([]PredictionResult, 0, len(PredictionDistances))
	for _, target := range PredictionDistances {
		timeSeconds := PredictTime(target.Meters, vdot)
		predictions = append(predictions, newPrediction(target, refMeters, timeSeconds, unit))
	}
	return vdot, predictions
}

// GenerateRiegelPredictions produces Riegel race time predictions for all target distances
func GenerateRiegelPredictions(refMeters, refSeconds float64, unit Unit) []PredictionResult {
	if !(refMeters > 0) || !(refSeconds > 0) {
		return nil
	}

	predictions := make([]PredictionResult, 0, len(PredictionDistances))
	for _, target := range PredictionDistances {
		timeSeconds := RiegelPredict(refMeters, refSeconds, target.Meters)
		predictions = append(predictions, newPrediction(target, refMeters, timeSeconds, unit))
	}
	return predictions
}

func newPrediction(target Distance, refMeters, timeSeconds float64, unit Unit) PredictionResult {
	score, label := CalculateConfidence(refMeters, target.Meters)
	return PredictionResult{
		Label:           target.Label,
		DistanceID:      target.ID,
		Meters:          target.Meters,
		TimeSeconds:     timeSeconds,
		PaceSeconds:     (timeSeconds / target.Meters) * MetersPerUnit(unit),
		IsReference:     matchesDistance(target.Meters, refMeters),
		Confidence:      label,
		ConfidenceScore: math.Round(score*100) / 100,
	}
}

// CalculateConfidence scores a prediction by how far it extrapolates from the
// reference distance. Returns a score from 0.0 to 1.0 and its label.
func CalculateConfidence(refMeters, targetMeters float64) (float64, string) {
	if !(refMeters > 0) || !(targetMeters > 0) {
		return 0, "low"
	}

	score := 1.0

	ratio := targetMeters / refMeters
	if ratio < 1 {
		ratio = 1 / ratio // symmetric for shorter predictions
	}

	switch {
	case ratio > 4:
		score *= 0.7 // e.g. 5K to marathon
	case ratio > 2:
		score *= 0.85
	case ratio > 1.5:
		score *= 0.95
	}

	var label string
	switch {
	case score >= 0.85:
		label = "high"
	case score >= 0.65:
		label = "medium"
	default:
		label = "low"
	}

	return score, label
}
