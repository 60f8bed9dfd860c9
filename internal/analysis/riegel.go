package analysis

import "math"

// RiegelExponent is the empirical fatigue factor of T2 = T1 * (D2/D1)^1.06
const RiegelExponent = 1.06

// RiegelPredict predicts the time for targetMeters from a reference performance.
// Returns 0 when any input is not positive.
func RiegelPredict(refMeters, refSeconds, targetMeters float64) float64 {
	if !(refMeters > 0) || !(refSeconds > 0) || !(targetMeters > 0) {
		return 0
	}
	return refSeconds * math.Pow(targetMeters/refMeters, RiegelExponent)
}
