package analysis

import "strings"

// Unit selects the distance unit paces and speeds are expressed in
type Unit string

const (
	UnitKm   Unit = "km"
	UnitMile Unit = "mile"
)

// Unit conversions
const (
	KmPerMile     = 1.60934
	MetersPerKm   = 1000.0
	MetersPerMile = 1609.34
)

// ParseUnit accepts "km", "mile" and "mi"
func ParseUnit(s string) (Unit, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "km":
		return UnitKm, true
	case "mile", "mi", "miles":
		return UnitMile, true
	}
	return "", false
}

// KmPerUnit returns 1 for km and 1.60934 for miles
func KmPerUnit(u Unit) float64 {
	if u == UnitMile {
		return KmPerMile
	}
	return 1
}

// MetersPerUnit returns the number of meters in one pace unit
func MetersPerUnit(u Unit) float64 {
	if u == UnitMile {
		return MetersPerMile
	}
	return MetersPerKm
}

// SpeedLabel returns "km/h" or "mph"
func (u Unit) SpeedLabel() string {
	if u == UnitMile {
		return "mph"
	}
	return "km/h"
}

// PaceLabel returns "min/km" or "min/mi"
func (u Unit) PaceLabel() string {
	if u == UnitMile {
		return "min/mi"
	}
	return "min/km"
}

// ShortLabel returns "km" or "mi"
func (u Unit) ShortLabel() string {
	if u == UnitMile {
		return "mi"
	}
	return "km"
}

// SpeedToPace converts a speed in km/h to pace in seconds per unit.
// Returns 0 when speed is not positive.
func SpeedToPace(speed float64, u Unit) float64 {
	if !(speed > 0) {
		return 0
	}
	return (KmPerUnit(u) / speed) * 3600
}

// PaceToSpeed converts pace in seconds per unit to speed in km/h.
// Returns 0 when pace is not positive.
func PaceToSpeed(paceSeconds float64, u Unit) float64 {
	if !(paceSeconds > 0) {
		return 0
	}
	return (KmPerUnit(u) / paceSeconds) * 3600
}

// ConvertSpeed converts a speed between km/h and mph
func ConvertSpeed(speed float64, from, to Unit) float64 {
	if from == to {
		return speed
	}
	if from == UnitKm {
		return speed / KmPerMile
	}
	return speed * KmPerMile
}

// KmhToMs converts km/h to m/s
func KmhToMs(kmh float64) float64 {
	return kmh / 3.6
}

// MsToKmh converts m/s to km/h
func MsToKmh(ms float64) float64 {
	return ms * 3.6
}
