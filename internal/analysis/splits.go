package analysis

import "math"

// SplitResult is the projected time and pace at one catalog distance
type SplitResult struct {
	Distance    Distance
	TimeSeconds float64
	PaceSeconds float64 // seconds per km or per mile
}

// ProjectSplits projects constant-speed times over StandardDistances.
// speedMs is in meters per second; a non-positive speed yields no splits.
// Every entry mode goes through here so rounding is identical regardless of input.
func ProjectSplits(speedMs float64, unit Unit) []SplitResult {
	if !(speedMs > 0) || math.IsInf(speedMs, 0) {
		return nil
	}
	paceSeconds := MetersPerUnit(unit) / speedMs

	splits := make([]SplitResult, 0, len(StandardDistances))
	for _, d := range StandardDistances {
		splits = append(splits, SplitResult{
			Distance:    d,
			TimeSeconds: d.Meters / speedMs,
			PaceSeconds: paceSeconds,
		})
	}
	return splits
}

// SplitsFromPace projects splits from a pace in seconds per unit
func SplitsFromPace(paceSeconds float64, unit Unit) []SplitResult {
	if !(paceSeconds > 0) {
		return nil
	}
	return ProjectSplits(MetersPerUnit(unit)/paceSeconds, unit)
}

// SplitsFromMASPercent projects splits at a percentage of MAS (km/h)
func SplitsFromMASPercent(masKmh, percent float64, unit Unit) []SplitResult {
	speedKmh := masKmh * (percent / 100)
	if !(masKmh > 0) || !(speedKmh > 0) {
		return nil
	}
	return ProjectSplits(KmhToMs(speedKmh), unit)
}

// SplitsFromTargetTime projects splits from a goal time over a distance in meters
func SplitsFromTargetTime(targetSeconds, distanceMeters float64, unit Unit) []SplitResult {
	if !(targetSeconds > 0) || !(distanceMeters > 0) {
		return nil
	}
	return ProjectSplits(distanceMeters/targetSeconds, unit)
}
