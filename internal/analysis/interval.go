package analysis

import "math"

// Interval input bounds
const (
	MaxIntervalReps       = 50
	MaxIntervalMASPercent = 200
)

// RecoveryOption is a preset recovery duration between repetitions
type RecoveryOption struct {
	Label   string
	Seconds float64
}

// RecoveryOptions are the recovery presets offered by the interval calculator
var RecoveryOptions = []RecoveryOption{
	{"30 s", 30},
	{"45 s", 45},
	{"1 min", 60},
	{"90 s", 90},
	{"2 min", 120},
	{"3 min", 180},
	{"4 min", 240},
	{"5 min", 300},
}

// DefaultRecoveryIndex selects "1 min"
const DefaultRecoveryIndex = 2

// IntervalInput describes an interval session
type IntervalInput struct {
	MASKmh            float64
	MASPercent        float64 // work intensity, (0, 200]
	RepDistanceMeters float64
	Reps              int // [1, 50]
	RecoverySeconds   float64
}

// IntervalField identifies the input that failed validation
type IntervalField int

const (
	IntervalFieldNone IntervalField = iota
	IntervalFieldMAS
	IntervalFieldMASPercent
	IntervalFieldRepDistance
	IntervalFieldReps
	IntervalFieldRecovery
)

func (f IntervalField) String() string {
	switch f {
	case IntervalFieldMAS:
		return "mas"
	case IntervalFieldMASPercent:
		return "mas_percent"
	case IntervalFieldRepDistance:
		return "rep_distance"
	case IntervalFieldReps:
		return "reps"
	case IntervalFieldRecovery:
		return "recovery"
	}
	return ""
}

// IntervalResult holds per-repetition and session totals
type IntervalResult struct {
	RepTimeSeconds      float64
	RepPaceSeconds      float64 // seconds per unit
	SpeedKmh            float64
	TotalWorkSeconds    float64 // excludes recovery
	TotalDistanceMeters float64
	TotalElapsedSeconds float64 // work plus recovery between reps
	Reps                int
	RecoverySeconds     float64
}

// IntervalRep is one repetition of the session timeline
type IntervalRep struct {
	Index           int // 1-based
	StartSeconds    float64
	EndSeconds      float64
	RecoverySeconds float64 // 0 after the final rep
}

// ValidateInterval returns the first invalid field, or IntervalFieldNone
func ValidateInterval(in IntervalInput) IntervalField {
	switch {
	case !(in.MASKmh > 0) || math.IsInf(in.MASKmh, 0):
		return IntervalFieldMAS
	case !(in.MASPercent > 0) || in.MASPercent > MaxIntervalMASPercent:
		return IntervalFieldMASPercent
	case !(in.RepDistanceMeters > 0) || math.IsInf(in.RepDistanceMeters, 0):
		return IntervalFieldRepDistance
	case in.Reps < 1 || in.Reps > MaxIntervalReps:
		return IntervalFieldReps
	case !(in.RecoverySeconds >= 0) || math.IsInf(in.RecoverySeconds, 0):
		return IntervalFieldRecovery
	}
	return IntervalFieldNone
}

// ComputeInterval derives rep time, pace and session totals.
// ok is false when any input is out of range; use ValidateInterval to find which.
func ComputeInterval(in IntervalInput, unit Unit) (IntervalResult, bool) {
	if ValidateInterval(in) != IntervalFieldNone {
		return IntervalResult{}, false
	}

	speedKmh := in.MASKmh * (in.MASPercent / 100)
	speedMs := KmhToMs(speedKmh)

	repTime := in.RepDistanceMeters / speedMs
	totalWork := repTime * float64(in.Reps)

	return IntervalResult{
		RepTimeSeconds:      repTime,
		RepPaceSeconds:      MetersPerUnit(unit) / speedMs,
		SpeedKmh:            speedKmh,
		TotalWorkSeconds:    totalWork,
		TotalDistanceMeters: in.RepDistanceMeters * float64(in.Reps),
		TotalElapsedSeconds: totalWork + in.RecoverySeconds*float64(in.Reps-1),
		Reps:                in.Reps,
		RecoverySeconds:     in.RecoverySeconds,
	}, true
}

// Schedule lays the session out rep by rep. No recovery follows the final rep.
func (r IntervalResult) Schedule() []IntervalRep {
	reps := make([]IntervalRep, 0, r.Reps)
	var t float64
	for i := 1; i <= r.Reps; i++ {
		rep := IntervalRep{
			Index:        i,
			StartSeconds: t,
			EndSeconds:   t + r.RepTimeSeconds,
		}
		if i < r.Reps {
			rep.RecoverySeconds = r.RecoverySeconds
		}
		t = rep.EndSeconds + rep.RecoverySeconds
		reps = append(reps, rep)
	}
	return reps
}
