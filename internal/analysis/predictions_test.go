package analysis

import (
	"math"
	"testing"
)

func TestCalculateConfidence(t *testing.T) {
	tests := []struct {
		name      string
		refMeters float64
		target    float64
		wantScore float64
		wantLabel string
	}{
		{"same distance", Distance5K, Distance5K, 1.0, "high"},
		{"5K to 10K is exactly 2x", Distance5K, Distance10K, 0.95, "high"},
		{"5K to 3K", Distance5K, Distance3K, 0.95, "high"},
		{"5K to 1500m", Distance5K, Distance1500m, 0.85, "high"},
		{"10K to half", Distance10K, DistanceHalfMara, 0.85, "high"},
		{"5K to half", Distance5K, DistanceHalfMara, 0.7, "medium"},
		{"5K to marathon", Distance5K, DistanceMarathon, 0.7, "medium"},
		{"marathon to 1500m", DistanceMarathon, Distance1500m, 0.7, "medium"},
		{"invalid reference", 0, Distance5K, 0, "low"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, label := CalculateConfidence(tt.refMeters, tt.target)
			if math.Abs(score-tt.wantScore) > 1e-9 {
				t.Errorf("score = %v, want %v", score, tt.wantScore)
			}
			if label != tt.wantLabel {
				t.Errorf("label = %v, want %v", label, tt.wantLabel)
			}
		})
	}
}

func TestGeneratePredictions(t *testing.T) {
	vdot, predictions := GeneratePredictions(Distance5K, 1200, UnitKm)

	if vdot < 49.5 || vdot > 50.5 {
		t.Errorf("VDOT = %v, want 49.5-50.5", vdot)
	}
	if len(predictions) != len(PredictionDistances) {
		t.Fatalf("got %d predictions, want %d", len(predictions), len(PredictionDistances))
	}

	want := map[string]float64{
		"1500m":    324.84,
		"1mi":      351.01,
		"3k":       695.12,
		"5k":       1200.0,
		"10k":      2487.85,
		"half":     5509.68,
		"marathon": 11477.19,
	}

	prev := 0.0
	for _, p := range predictions {
		if w, ok := want[p.DistanceID]; ok && math.Abs(p.TimeSeconds-w) > 1 {
			t.Errorf("%s = %v (%s), want %v", p.DistanceID, p.TimeSeconds, FormatDuration(p.TimeSeconds), w)
		}
		if !(p.TimeSeconds > prev) {
			t.Errorf("%s not slower than the shorter distance", p.DistanceID)
		}
		prev = p.TimeSeconds

		if wantPace := p.TimeSeconds / p.Meters * 1000; math.Abs(p.PaceSeconds-wantPace) > 1e-9 {
			t.Errorf("%s pace = %v, want %v", p.DistanceID, p.PaceSeconds, wantPace)
		}
		if p.IsReference != (p.DistanceID == "5k") {
			t.Errorf("%s IsReference = %v", p.DistanceID, p.IsReference)
		}
	}
}

func TestGeneratePredictions_Invalid(t *testing.T) {
	vdot, predictions := GeneratePredictions(Distance5K, 0, UnitKm)
	if vdot != 0 || predictions != nil {
		t.Errorf("got %v, %v; want 0, nil", vdot, predictions)
	}
	if got := GenerateRiegelPredictions(0, 1200, UnitKm); got != nil {
		t.Errorf("GenerateRiegelPredictions(0) = %v, want nil", got)
	}
}

func TestPredict(t *testing.T) {
	daniels := Predict(ModelDaniels, Distance5K, 1200, UnitMile)
	if daniels.Model != ModelDaniels || daniels.VDOT == 0 {
		t.Errorf("Daniels set = %+v", daniels)
	}

	riegel := Predict(ModelRiegel, Distance5K, 1200, UnitMile)
	if riegel.Model != ModelRiegel || riegel.VDOT != 0 {
		t.Errorf("Riegel set model = %v, vdot = %v", riegel.Model, riegel.VDOT)
	}
	if len(riegel.Predictions) != len(PredictionDistances) {
		t.Fatalf("got %d Riegel predictions", len(riegel.Predictions))
	}

	for _, p := range riegel.Predictions {
		if p.IsReference && p.TimeSeconds != 1200 {
			t.Errorf("Riegel reference row = %v, want exactly 1200", p.TimeSeconds)
		}
		if p.DistanceID == "10k" && math.Abs(p.TimeSeconds-1200*math.Pow(2, 1.06)) > 1e-9 {
			t.Errorf("Riegel 10k = %v", p.TimeSeconds)
		}
		if wantPace := p.TimeSeconds / p.Meters * MetersPerMile; math.Abs(p.PaceSeconds-wantPace) > 1e-9 {
			t.Errorf("%s mile pace = %v, want %v", p.DistanceID, p.PaceSeconds, wantPace)
		}
	}
}

func TestParsePredictionModel(t *testing.T) {
	tests := []struct {
		in     string
		want   PredictionModel
		wantOK bool
	}{
		{"daniels", ModelDaniels, true},
		{"VDOT", ModelDaniels, true},
		{"riegel", ModelRiegel, true},
		{"cameron", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParsePredictionModel(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParsePredictionModel(%q) = %v, %v", tt.in, got, ok)
		}
	}
}
