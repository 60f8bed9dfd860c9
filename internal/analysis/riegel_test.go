package analysis

import (
	"math"
	"testing"
)

func TestRiegelPredict(t *testing.T) {
	tests := []struct {
		name      string
		refMeters float64
		refTime   float64
		target    float64
		want      float64
		tolerance float64
	}{
		{"5K 20:00 to 10K", Distance5K, 1200, Distance10K, 1200 * math.Pow(2, 1.06), 1e-9},
		{"5K 20:00 to 10K about 41:42", Distance5K, 1200, Distance10K, 2502, 2},
		{"10K to 5K is faster than half the time", Distance10K, 2500, Distance5K, 2500 / math.Pow(2, 1.06), 1e-9},
		{"half to marathon", DistanceHalfMara, 5400, DistanceMarathon, 5400 * math.Pow(2, 1.06), 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RiegelPredict(tt.refMeters, tt.refTime, tt.target)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("RiegelPredict() = %v, want %v (±%v)", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestRiegelPredict_SelfDistance(t *testing.T) {
	for _, d := range PredictionDistances {
		for _, seconds := range []float64{61.3, 1200, 11449} {
			if got := RiegelPredict(d.Meters, seconds, d.Meters); got != seconds {
				t.Errorf("RiegelPredict(%v, %v, %v) = %v, want exact reference", d.Meters, seconds, d.Meters, got)
			}
		}
	}
}

func TestRiegelPredict_InvalidInput(t *testing.T) {
	cases := [][3]float64{
		{0, 1200, Distance10K},
		{Distance5K, 0, Distance10K},
		{Distance5K, 1200, 0},
		{-1, 1200, Distance10K},
	}
	for _, c := range cases {
		if got := RiegelPredict(c[0], c[1], c[2]); got != 0 {
			t.Errorf("RiegelPredict(%v) = %v, want 0", c, got)
		}
	}
}
