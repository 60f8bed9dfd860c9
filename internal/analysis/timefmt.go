package analysis

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Placeholder is rendered in place of a time that cannot be shown
const Placeholder = "—"

// FormatClock formats seconds as mm:ss, truncating fractional seconds.
// Non-positive input renders "00:00".
func FormatClock(totalSeconds float64) string {
	if !(totalSeconds > 0) || math.IsInf(totalSeconds, 0) {
		return "00:00"
	}
	minutes := int(totalSeconds / 60)
	seconds := int(math.Mod(totalSeconds, 60))
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// FormatPace formats a pace in seconds per unit as mm:ss, rounded to the nearest second
func FormatPace(paceSeconds float64) string {
	if !(paceSeconds > 0) || math.IsInf(paceSeconds, 0) {
		return Placeholder
	}
	total := int(math.Round(paceSeconds))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FormatDuration formats seconds as h:mm:ss, or mm:ss when under an hour
func FormatDuration(totalSeconds float64) string {
	if !(totalSeconds > 0) || math.IsInf(totalSeconds, 0) {
		return Placeholder
	}
	total := int(math.Round(totalSeconds))
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatSpeed formats a km/h speed in the given unit ("12.0 km/h", "7.5 mph")
func FormatSpeed(speedKmh float64, u Unit) string {
	return fmt.Sprintf("%.1f %s", ConvertSpeed(speedKmh, UnitKm, u), u.SpeedLabel())
}

// FormatDistance formats meters as "400 m", "2 km" or "1.5 km"
func FormatDistance(meters float64) string {
	if meters >= 1000 {
		if math.Mod(meters, 1000) == 0 {
			return fmt.Sprintf("%.0f km", meters/1000)
		}
		return fmt.Sprintf("%.1f km", meters/1000)
	}
	return fmt.Sprintf("%d m", int(math.Round(meters)))
}

// ParsePace parses "mm:ss" into seconds. A bare number is read as minutes,
// so "5" and "5.5" are 300 and 330 seconds. Returns NaN if invalid.
func ParsePace(value string) float64 {
	parts := strings.Split(strings.TrimSpace(value), ":")
	switch len(parts) {
	case 1:
		minutes, ok := parseSegment(parts[0])
		if !ok {
			return math.NaN()
		}
		return minutes * 60
	case 2:
		minutes, okM := parseSegment(parts[0])
		seconds, okS := parseSegment(parts[1])
		if !okM || !okS || seconds >= 60 {
			return math.NaN()
		}
		return minutes*60 + seconds
	}
	return math.NaN()
}

// ParseDuration parses "h:mm:ss" or "mm:ss" into seconds.
// A bare number is not a duration. Returns NaN if invalid.
func ParseDuration(value string) float64 {
	parts := strings.Split(strings.TrimSpace(value), ":")
	nums := make([]float64, len(parts))
	for i, p := range parts {
		n, ok := parseSegment(p)
		if !ok {
			return math.NaN()
		}
		nums[i] = n
	}

	switch len(nums) {
	case 3:
		h, m, s := nums[0], nums[1], nums[2]
		if m >= 60 || s >= 60 {
			return math.NaN()
		}
		return h*3600 + m*60 + s
	case 2:
		m, s := nums[0], nums[1]
		if s >= 60 {
			return math.NaN()
		}
		return m*60 + s
	}
	return math.NaN()
}

// parseSegment parses one colon-separated segment as a finite, non-negative number
func parseSegment(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0, false
	}
	return n, true
}
