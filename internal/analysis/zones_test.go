package analysis

import (
	"math"
	"testing"
)

func TestComputeZones_MAS(t *testing.T) {
	zones, ok := ComputeZones(MASInput(18), UnitKm)
	if !ok {
		t.Fatal("ComputeZones(MAS 18) not ok")
	}
	if len(zones) != 5 {
		t.Fatalf("got %d zones, want 5", len(zones))
	}

	z5 := zones[4]
	if math.Abs(z5.MinSpeedKmh-17.1) > 1e-9 || math.Abs(z5.MaxSpeedKmh-18.9) > 1e-9 {
		t.Errorf("zone 5 speeds = %v-%v, want 17.1-18.9", z5.MinSpeedKmh, z5.MaxSpeedKmh)
	}
	// min pace comes from the max speed
	if want := 1000 / KmhToMs(18.9); math.Abs(z5.MinPaceSeconds-want) > 1e-9 {
		t.Errorf("zone 5 min pace = %v, want %v", z5.MinPaceSeconds, want)
	}
	if want := 1000 / KmhToMs(17.1); math.Abs(z5.MaxPaceSeconds-want) > 1e-9 {
		t.Errorf("zone 5 max pace = %v, want %v", z5.MaxPaceSeconds, want)
	}
}

func TestComputeZones_Ordering(t *testing.T) {
	for _, model := range []ZoneModel{ZoneModelMAS, ZoneModelDaniels} {
		for _, unit := range []Unit{UnitKm, UnitMile} {
			zones, ok := ComputeZones(ZoneInput{Model: model, MASKmh: 16.5}, unit)
			if !ok {
				t.Fatalf("%v not ok", model)
			}
			for i, z := range zones {
				if !(z.MinPaceSeconds < z.MaxPaceSeconds) {
					t.Errorf("%v zone %s: min pace %v not below max pace %v", model, z.ID, z.MinPaceSeconds, z.MaxPaceSeconds)
				}
				if i > 0 && !(zones[i-1].MinPercent < z.MinPercent) {
					t.Errorf("%v zone %s not in ascending intensity order", model, z.ID)
				}
			}
		}
	}
}

func TestComputeZones_HeartRate(t *testing.T) {
	zones, ok := ComputeZones(HeartRateInput(190, 60), UnitKm)
	if !ok {
		t.Fatal("ComputeZones(HR 190/60) not ok")
	}

	tests := []struct {
		id      string
		wantMin int
		wantMax int
	}{
		{"1", 125, 138},
		{"3", 151, 164},
		{"5", 177, 190},
	}
	for _, tt := range tests {
		for _, z := range zones {
			if z.ID != tt.id {
				continue
			}
			if z.MinBpm != tt.wantMin || z.MaxBpm != tt.wantMax {
				t.Errorf("zone %s = %d-%d bpm, want %d-%d", tt.id, z.MinBpm, z.MaxBpm, tt.wantMin, tt.wantMax)
			}
		}
	}

	for i, z := range zones {
		if z.MinBpm > z.MaxBpm {
			t.Errorf("zone %s min bpm above max", z.ID)
		}
		if i > 0 && zones[i-1].MaxBpm != z.MinBpm {
			t.Errorf("zone %s does not start where zone %s ends", z.ID, zones[i-1].ID)
		}
	}
}

func TestComputeZones_Undefined(t *testing.T) {
	tests := []struct {
		name string
		in   ZoneInput
	}{
		{"no MAS", MASInput(0)},
		{"negative MAS for Daniels", DanielsInput(-3)},
		{"max equals resting", HeartRateInput(60, 60)},
		{"max below resting", HeartRateInput(50, 60)},
		{"no resting", HeartRateInput(190, 0)},
		{"unknown model", ZoneInput{Model: ZoneModel(99), MASKmh: 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zones, ok := ComputeZones(tt.in, UnitKm)
			if ok || zones != nil {
				t.Errorf("ComputeZones() = %v, %v; want nil, false", zones, ok)
			}
		})
	}
}

func TestComputeZones_Ordinal(t *testing.T) {
	rpe, ok := ComputeZones(RPEInput(), UnitKm)
	if !ok || len(rpe) != 10 {
		t.Fatalf("RPE zones = %d, %v; want 10, true", len(rpe), ok)
	}
	borg, ok := ComputeZones(BorgInput(), UnitKm)
	if !ok || len(borg) != 15 {
		t.Fatalf("Borg zones = %d, %v; want 15, true", len(borg), ok)
	}
	if borg[0].Level != 6 || borg[len(borg)-1].Level != 20 {
		t.Errorf("Borg levels = %d-%d, want 6-20", borg[0].Level, borg[len(borg)-1].Level)
	}
	if !ZoneModelBorg.Ordinal() || ZoneModelMAS.Ordinal() {
		t.Error("unexpected Ordinal()")
	}
}

func TestZoneDefinitions_ReturnsCopy(t *testing.T) {
	defs := ZoneDefinitions(ZoneModelMAS)
	defs[0].Name = "changed"
	if ZoneDefinitions(ZoneModelMAS)[0].Name == "changed" {
		t.Error("ZoneDefinitions exposed the static table")
	}
}

func TestParseZoneModel(t *testing.T) {
	for _, m := range ZoneModels {
		got, ok := ParseZoneModel(m.String())
		if !ok || got != m {
			t.Errorf("ParseZoneModel(%q) = %v, %v", m.String(), got, ok)
		}
	}
	if _, ok := ParseZoneModel("zone2"); ok {
		t.Error("ParseZoneModel accepted unknown model")
	}
}

func TestTrainingZonesFromVDOT(t *testing.T) {
	zones, ok := TrainingZonesFromVDOT(50, UnitKm)
	if !ok {
		t.Fatal("TrainingZonesFromVDOT(50) not ok")
	}
	var interval ComputedZone
	for _, z := range zones {
		if z.ID == "I" {
			interval = z
		}
	}
	if math.Abs(interval.MaxSpeedKmh-EquivalentMAS(50)) > 1e-9 {
		t.Errorf("I zone top speed = %v, want vVO2max %v", interval.MaxSpeedKmh, EquivalentMAS(50))
	}

	if _, ok := TrainingZonesFromVDOT(0, UnitKm); ok {
		t.Error("TrainingZonesFromVDOT(0) should be undefined")
	}
}
