package analysis

import (
	"math"
)

// Daniels-Gilbert equations (Oxygen Power, 1979):
//
//	oxygen cost   = -4.60 + 0.182258*S + 0.000104*S^2         S in m/min
//	utilization   = 0.8 + 0.1894393*e^(-0.012778*T) + 0.2989558*e^(-0.1932605*T)   T in min
//	VDOT          = oxygen cost / utilization
const (
	costIntercept = -4.60
	costLinear    = 0.182258
	costQuadratic = 0.000104

	utilBase     = 0.8
	utilFastCoef = 0.1894393
	utilFastRate = 0.012778
	utilSlowCoef = 0.2989558
	utilSlowRate = 0.1932605
)

// PredictTime search bounds. 64 halvings of the bracket reach float64 resolution.
const (
	vdotSearchMinSeconds = 30
	vdotSearchMaxSeconds = 86400
	vdotSearchIterations = 64
)

// oxygenCost returns the VO2 (ml/kg/min) of running at speedMPerMin
func oxygenCost(speedMPerMin float64) float64 {
	return costIntercept + costLinear*speedMPerMin + costQuadratic*speedMPerMin*speedMPerMin
}

// fractionalUtilization returns the sustainable fraction of VO2max for a race of timeMin
func fractionalUtilization(timeMin float64) float64 {
	return utilBase +
		utilFastCoef*math.Exp(-utilFastRate*timeMin) +
		utilSlowCoef*math.Exp(-utilSlowRate*timeMin)
}

// CalculateVDOT derives VDOT from a race result
// distanceMeters: the race distance in meters
// timeSeconds: the finish time in seconds
// Returns 0 when either input is not positive.
//
// For a fixed distance the result is strictly decreasing in time: the cost term
// falls with speed while T*|dU/dT| stays below 0.18, well under U >= 0.8.
func CalculateVDOT(distanceMeters, timeSeconds float64) float64 {
	if !(distanceMeters > 0) || !(timeSeconds > 0) {
		return 0
	}
	timeMin := timeSeconds / 60
	speed := distanceMeters / timeMin
	return oxygenCost(speed) / fractionalUtilization(timeMin)
}

// PredictTime predicts race time in seconds for a distance given a VDOT.
// There is no closed form, so it bisects time over [30s, 24h].
// Returns 0 when either input is not positive.
func PredictTime(distanceMeters, vdot float64) float64 {
	if !(distanceMeters > 0) || !(vdot > 0) {
		return 0
	}

	lo, hi := float64(vdotSearchMinSeconds), float64(vdotSearchMaxSeconds)
	for i := 0; i < vdotSearchIterations; i++ {
		mid := (lo + hi) / 2
		if CalculateVDOT(distanceMeters, mid) > vdot {
			lo = mid // too fast, true time is slower
		} else {
			hi = mid
		}
	}

	return (lo + hi) / 2
}

// EquivalentMAS returns the velocity at VO2max in km/h for a VDOT, i.e. the speed
// whose oxygen cost equals the VDOT. Returns 0 when vdot is not positive.
func EquivalentMAS(vdot float64) float64 {
	if !(vdot > 0) {
		return 0
	}
	// positive root of costQuadratic*S^2 + costLinear*S + (costIntercept - vdot) = 0
	c := costIntercept - vdot
	disc := costLinear*costLinear - 4*costQuadratic*c
	speedMPerMin := (-costLinear + math.Sqrt(disc)) / (2 * costQuadratic)
	return speedMPerMin * 60 / 1000
}

// GetVDOTLabel returns a human-readable fitness level for a VDOT value
func GetVDOTLabel(vdot float64) string {
	switch {
	case vdot >= 75:
		return "Elite"
	case vdot >= 65:
		return "Highly Competitive"
	case vdot >= 55:
		return "Competitive"
	case vdot >= 45:
		return "Advanced Recreational"
	case vdot >= 38:
		return "Intermediate"
	case vdot >= 30:
		return "Beginner"
	default:
		return "Novice"
	}
}
