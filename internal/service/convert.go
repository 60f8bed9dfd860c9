package service

import (
	"fmt"
	"math"
	"strings"

	"runcalc/internal/analysis"
)

// Conversion is a pace and its equivalent speed in one unit
type Conversion struct {
	Unit        analysis.Unit
	PaceSeconds float64
	SpeedKmh    float64
	Pace        string // "05:00 min/km"
	Speed       string // "12.00 km/h"
	OtherSpeed  string // the same speed in the other unit
}

// ConvertPace converts a pace ("5:00" or "5" minutes) per unit into a speed
func (c *CalculatorService) ConvertPace(input string, unit analysis.Unit) (*Conversion, error) {
	u := c.unit(unit)
	value := strings.TrimSpace(input)

	pace := analysis.ParsePace(value)
	if math.IsNaN(pace) {
		return nil, invalid("pace", value, "use mm:ss or minutes")
	}
	if !(pace > 0) {
		return nil, invalid("pace", value, "must be positive")
	}

	return newConversion(pace, analysis.PaceToSpeed(pace, u), u), nil
}

// ConvertSpeed converts a speed, in km/h or mph depending on unit, into a pace
func (c *CalculatorService) ConvertSpeed(input string, unit analysis.Unit) (*Conversion, error) {
	u := c.unit(unit)
	speed, err := parsePositive("speed", input)
	if err != nil {
		return nil, err
	}

	kmh := analysis.ConvertSpeed(speed, u, analysis.UnitKm)
	return newConversion(analysis.SpeedToPace(kmh, u), kmh, u), nil
}

func newConversion(paceSeconds, speedKmh float64, u analysis.Unit) *Conversion {
	return &Conversion{
		Unit:        u,
		PaceSeconds: paceSeconds,
		SpeedKmh:    speedKmh,
		Pace:        fmt.Sprintf("%s %s", analysis.FormatClock(paceSeconds), u.PaceLabel()),
		Speed:       formatSpeed2(speedKmh, u),
		OtherSpeed:  formatSpeed2(speedKmh, otherUnit(u)),
	}
}

// formatSpeed2 formats a km/h speed in u with two decimals
func formatSpeed2(speedKmh float64, u analysis.Unit) string {
	return fmt.Sprintf("%.2f %s", analysis.ConvertSpeed(speedKmh, analysis.UnitKm, u), u.SpeedLabel())
}

func otherUnit(u analysis.Unit) analysis.Unit {
	if u == analysis.UnitMile {
		return analysis.UnitKm
	}
	return analysis.UnitMile
}

// formatPace renders "mm:ss min/unit"
func formatPace(paceSeconds float64, u analysis.Unit) string {
	return fmt.Sprintf("%s %s", analysis.FormatPace(paceSeconds), u.PaceLabel())
}
