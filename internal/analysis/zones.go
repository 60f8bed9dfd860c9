package analysis

import (
	"math"
	"strings"
)

// ZoneModel selects one of the training zone models
type ZoneModel int

const (
	ZoneModelMAS ZoneModel = iota
	ZoneModelDaniels
	ZoneModelHeartRate
	ZoneModelRPE
	ZoneModelBorg
)

// ZoneModels lists every model in display order
var ZoneModels = []ZoneModel{ZoneModelMAS, ZoneModelDaniels, ZoneModelHeartRate, ZoneModelRPE, ZoneModelBorg}

func (m ZoneModel) String() string {
	switch m {
	case ZoneModelMAS:
		return "mas"
	case ZoneModelDaniels:
		return "daniels"
	case ZoneModelHeartRate:
		return "hr"
	case ZoneModelRPE:
		return "rpe"
	case ZoneModelBorg:
		return "borg"
	}
	return "unknown"
}

// Label returns a human-readable model name
func (m ZoneModel) Label() string {
	switch m {
	case ZoneModelMAS:
		return "% MAS"
	case ZoneModelDaniels:
		return "Daniels"
	case ZoneModelHeartRate:
		return "Heart Rate"
	case ZoneModelRPE:
		return "RPE"
	case ZoneModelBorg:
		return "Borg"
	}
	return "Unknown"
}

// Ordinal reports whether the model is a perceived-exertion scale with no numeric range
func (m ZoneModel) Ordinal() bool {
	return m == ZoneModelRPE || m == ZoneModelBorg
}

// ParseZoneModel parses a model name as produced by String
func ParseZoneModel(s string) (ZoneModel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mas", "vma":
		return ZoneModelMAS, true
	case "daniels":
		return ZoneModelDaniels, true
	case "hr", "heartrate", "karvonen":
		return ZoneModelHeartRate, true
	case "rpe":
		return ZoneModelRPE, true
	case "borg":
		return ZoneModelBorg, true
	}
	return 0, false
}

// ZoneDefinition is one static band of a zone model
type ZoneDefinition struct {
	ID          string
	Name        string
	Description string
	MinPercent  float64
	MaxPercent  float64
	Level       int // RPE/Borg only
	Color       string
}

// ComputedZone is a ZoneDefinition with ranges derived from the runner's reference value.
// Speed and pace fields are set for MAS and Daniels, bpm fields for heart rate.
type ComputedZone struct {
	ZoneDefinition
	MinSpeedKmh    float64
	MaxSpeedKmh    float64
	MinPaceSeconds float64 // pace at MaxSpeedKmh
	MaxPaceSeconds float64 // pace at MinSpeedKmh
	MinBpm         int
	MaxBpm         int
}

// ZoneInput carries what a zone model needs. Build it with the constructors below.
type ZoneInput struct {
	Model     ZoneModel
	MASKmh    float64
	MaxHR     float64
	RestingHR float64
}

// MASInput builds a % MAS zone input
func MASInput(masKmh float64) ZoneInput {
	return ZoneInput{Model: ZoneModelMAS, MASKmh: masKmh}
}

// DanielsInput builds a Daniels zone input
func DanielsInput(masKmh float64) ZoneInput {
	return ZoneInput{Model: ZoneModelDaniels, MASKmh: masKmh}
}

// HeartRateInput builds a Karvonen zone input
func HeartRateInput(maxHR, restingHR float64) ZoneInput {
	return ZoneInput{Model: ZoneModelHeartRate, MaxHR: maxHR, RestingHR: restingHR}
}

// RPEInput builds an RPE scale input
func RPEInput() ZoneInput { return ZoneInput{Model: ZoneModelRPE} }

// BorgInput builds a Borg scale input
func BorgInput() ZoneInput { return ZoneInput{Model: ZoneModelBorg} }

// ZoneDefinitions returns a copy of the static table for a model
func ZoneDefinitions(model ZoneModel) []ZoneDefinition {
	var defs []ZoneDefinition
	switch model {
	case ZoneModelMAS:
		defs = masZoneDefinitions
	case ZoneModelDaniels:
		defs = danielsZoneDefinitions
	case ZoneModelHeartRate:
		defs = heartRateZoneDefinitions
	case ZoneModelRPE:
		defs = rpeZoneDefinitions
	case ZoneModelBorg:
		defs = borgZoneDefinitions
	}
	out := make([]ZoneDefinition, len(defs))
	copy(out, defs)
	return out
}

// ComputeZones derives the bands of the input's model.
// ok is false when the model is undefined for the input (no MAS, or
// heart rates not satisfying maxHR > restingHR > 0).
func ComputeZones(in ZoneInput, unit Unit) ([]ComputedZone, bool) {
	switch in.Model {
	case ZoneModelMAS, ZoneModelDaniels:
		if !(in.MASKmh > 0) || math.IsInf(in.MASKmh, 0) {
			return nil, false
		}
		return speedZones(ZoneDefinitions(in.Model), in.MASKmh, unit), true
	case ZoneModelHeartRate:
		if !(in.RestingHR > 0) || !(in.MaxHR > in.RestingHR) {
			return nil, false
		}
		return heartRateZones(in.MaxHR, in.RestingHR), true
	case ZoneModelRPE, ZoneModelBorg:
		defs := ZoneDefinitions(in.Model)
		zones := make([]ComputedZone, len(defs))
		for i, def := range defs {
			zones[i] = ComputedZone{ZoneDefinition: def}
		}
		return zones, true
	}
	return nil, false
}

// TrainingZonesFromVDOT computes Daniels zones against the vVO2max implied by a VDOT
func TrainingZonesFromVDOT(vdot float64, unit Unit) ([]ComputedZone, bool) {
	return ComputeZones(DanielsInput(EquivalentMAS(vdot)), unit)
}

// speedZones scales each band by MAS. The faster edge of a band is the shorter pace,
// so min pace comes from max speed.
func speedZones(defs []ZoneDefinition, masKmh float64, unit Unit) []ComputedZone {
	metersPerUnit := MetersPerUnit(unit)
	zones := make([]ComputedZone, len(defs))
	for i, def := range defs {
		minSpeed := masKmh * (def.MinPercent / 100)
		maxSpeed := masKmh * (def.MaxPercent / 100)
		zones[i] = ComputedZone{
			ZoneDefinition: def,
			MinSpeedKmh:    minSpeed,
			MaxSpeedKmh:    maxSpeed,
			MinPaceSeconds: metersPerUnit / KmhToMs(maxSpeed),
			MaxPaceSeconds: metersPerUnit / KmhToMs(minSpeed),
		}
	}
	return zones
}

// heartRateZones applies the Karvonen formula: resting + percent * (max - resting)
func heartRateZones(maxHR, restingHR float64) []ComputedZone {
	hrr := maxHR - restingHR
	defs := ZoneDefinitions(ZoneModelHeartRate)
	zones := make([]ComputedZone, len(defs))
	for i, def := range defs {
		zones[i] = ComputedZone{
			ZoneDefinition: def,
			MinBpm:         int(math.Round(restingHR + (def.MinPercent/100)*hrr)),
			MaxBpm:         int(math.Round(restingHR + (def.MaxPercent/100)*hrr)),
		}
	}
	return zones
}
