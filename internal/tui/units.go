package tui

import (
	"runcalc/internal/analysis"
)

// unitToggle is a screen-local unit choice. The zero value follows the saved unit.
type unitToggle struct {
	override analysis.Unit
}

// unit returns the effective unit given the saved preference
func (t unitToggle) unit(saved analysis.Unit) analysis.Unit {
	if t.override != "" {
		return t.override
	}
	return saved
}

// toggle flips between km and mile relative to the effective unit
func (t unitToggle) toggle(saved analysis.Unit) unitToggle {
	if t.unit(saved) == analysis.UnitMile {
		return unitToggle{override: analysis.UnitKm}
	}
	return unitToggle{override: analysis.UnitMile}
}

// label renders "km" or "mi", marked when it differs from the saved unit
func (t unitToggle) label(saved analysis.Unit) string {
	u := t.unit(saved)
	if u != saved {
		return u.ShortLabel() + " (this screen)"
	}
	return u.ShortLabel()
}
