package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runcalc/internal/analysis"
	"runcalc/internal/config"
)

func splitTime(t *testing.T, data *SplitsData, id string) string {
	t.Helper()
	for _, s := range data.Splits {
		if s.DistanceID == id {
			return s.Time
		}
	}
	t.Fatalf("no split %s", id)
	return ""
}

func TestSplits_ModesAgree(t *testing.T) {
	svc := setupTestService(t, func(s *config.Settings) { s.MAS = floatPtr(15) })

	requests := map[string]SplitRequest{
		"pace":        {Mode: SplitByPace, Pace: "4:00"},
		"saved mas":   {Mode: SplitByMAS},
		"entered mas": {Mode: SplitByMAS, MAS: "20", MASPercent: "75"},
		"target":      {Mode: SplitByTarget, TargetTime: "20:00"},
		"target 10k":  {Mode: SplitByTarget, TargetTime: "40:00", TargetDistanceID: "10k"},
	}

	for name, req := range requests {
		t.Run(name, func(t *testing.T) {
			data, err := svc.Splits(req)
			require.NoError(t, err)
			require.Len(t, data.Splits, len(analysis.StandardDistances))

			assert.Equal(t, "04:00 min/km", data.Pace)
			assert.Equal(t, "15.0 km/h", data.Speed)
			assert.Equal(t, "01:36", splitTime(t, data, "400m"))
			assert.Equal(t, "20:00", splitTime(t, data, "5k"))
			assert.Equal(t, "2:48:47", splitTime(t, data, "marathon"))
		})
	}
}

func TestSplits_Errors(t *testing.T) {
	svc := setupTestService(t, nil)

	tests := []struct {
		name  string
		req   SplitRequest
		field string
	}{
		{"bad pace", SplitRequest{Mode: SplitByPace, Pace: "4:75"}, "pace"},
		{"bad mas", SplitRequest{Mode: SplitByMAS, MAS: "x"}, "mas"},
		{"zero percent", SplitRequest{Mode: SplitByMAS, MAS: "18", MASPercent: "0"}, "mas_percent"},
		{"bare target", SplitRequest{Mode: SplitByTarget, TargetTime: "20"}, "target_time"},
		{"unknown distance", SplitRequest{Mode: SplitByTarget, TargetTime: "20:00", TargetDistanceID: "7k"}, "target_distance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Splits(tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, tt.field, FieldOf(err))
		})
	}

	t.Run("no mas", func(t *testing.T) {
		_, err := svc.Splits(SplitRequest{Mode: SplitByMAS})
		assert.ErrorIs(t, err, ErrUndefined)
	})
}

func TestParseSplitMode(t *testing.T) {
	for _, m := range []SplitMode{SplitByPace, SplitByMAS, SplitByTarget} {
		got, ok := ParseSplitMode(m.String())
		assert.True(t, ok)
		assert.Equal(t, m, got)
	}
	_, ok := ParseSplitMode("speed")
	assert.False(t, ok)
}

func TestZones_MAS(t *testing.T) {
	svc := setupTestService(t, func(s *config.Settings) { s.MAS = floatPtr(18) })

	data, err := svc.Zones(ZoneRequest{Model: analysis.ZoneModelMAS})
	require.NoError(t, err)
	require.Len(t, data.Zones, 5)

	assert.Equal(t, "MAS 18.0 km/h", data.Reference)
	z1 := data.Zones[0]
	assert.Equal(t, "55-65%", z1.Intensity)
	assert.Equal(t, "9.9-11.7 km/h", z1.Speed)
	assert.Equal(t, "05:08-06:04 min/km", z1.Pace)
	assert.Empty(t, z1.HeartRate)
}

func TestZones_DanielsFromReference(t *testing.T) {
	svc := setupTestService(t, func(s *config.Settings) {
		s.RefDistanceMeters = floatPtr(5000)
		s.RefTimeSeconds = floatPtr(1200)
	})

	data, err := svc.Zones(ZoneRequest{Model: analysis.ZoneModelDaniels})
	require.NoError(t, err)
	require.Len(t, data.Zones, 5)
	assert.Contains(t, data.Reference, "(from VDOT 49.8)")
	assert.Equal(t, "E", data.Zones[0].ID)
}

func TestZones_HeartRate(t *testing.T) {
	svc := setupTestService(t, func(s *config.Settings) {
		s.MaxHR = floatPtr(190)
		s.RestingHR = floatPtr(60)
	})

	data, err := svc.Zones(ZoneRequest{Model: analysis.ZoneModelHeartRate})
	require.NoError(t, err)
	require.Len(t, data.Zones, 5)
	assert.Equal(t, "HR 60-190 bpm", data.Reference)
	assert.Equal(t, "125-138 bpm", data.Zones[0].HeartRate)
	assert.Equal(t, "177-190 bpm", data.Zones[4].HeartRate)

	t.Run("entered values override settings", func(t *testing.T) {
		data, err := svc.Zones(ZoneRequest{Model: analysis.ZoneModelHeartRate, MaxHR: "200", RestingHR: "50"})
		require.NoError(t, err)
		assert.Equal(t, "HR 50-200 bpm", data.Reference)
	})

	t.Run("resting above max", func(t *testing.T) {
		_, err := svc.Zones(ZoneRequest{Model: analysis.ZoneModelHeartRate, MaxHR: "150", RestingHR: "160"})
		assert.ErrorIs(t, err, ErrUndefined)
	})
}

func TestZones_Undefined(t *testing.T) {
	svc := setupTestService(t, nil)

	for _, model := range []analysis.ZoneModel{analysis.ZoneModelMAS, analysis.ZoneModelDaniels, analysis.ZoneModelHeartRate} {
		t.Run(model.String(), func(t *testing.T) {
			_, err := svc.Zones(ZoneRequest{Model: model})
			assert.ErrorIs(t, err, ErrUndefined)
		})
	}
}

func TestZones_Ordinal(t *testing.T) {
	svc := setupTestService(t, nil)

	rpe, err := svc.Zones(ZoneRequest{Model: analysis.ZoneModelRPE})
	require.NoError(t, err)
	require.Len(t, rpe.Zones, 10)
	assert.Equal(t, "RPE 7", rpe.Zones[6].Intensity)
	assert.Empty(t, rpe.Reference)

	borg, err := svc.Zones(ZoneRequest{Model: analysis.ZoneModelBorg})
	require.NoError(t, err)
	require.Len(t, borg.Zones, 15)
	assert.Equal(t, "Borg 6", borg.Zones[0].Intensity)
}

func TestInterval_Defaults(t *testing.T) {
	svc := setupTestService(t, func(s *config.Settings) { s.MAS = floatPtr(18) })

	data, err := svc.Interval(IntervalRequest{})
	require.NoError(t, err)

	assert.Equal(t, "400 m", data.RepDistance)
	assert.Equal(t, 10, data.Reps)
	assert.Equal(t, "1 min", data.Recovery)
	assert.Equal(t, "01:20", data.RepTime)
	assert.Equal(t, "03:20 min/km", data.RepPace)
	assert.Equal(t, "18.0 km/h", data.Speed)
	assert.Equal(t, "13:20", data.TotalWork)
	assert.Equal(t, "4 km", data.TotalDistance)
	assert.Equal(t, "22:20", data.TotalElapsed)

	require.Len(t, data.Schedule, 10)
	assert.Equal(t, IntervalRepDisplay{Index: 1, Start: "00:00", End: "01:20", Recovery: "1 min"}, data.Schedule[0])
	assert.Empty(t, data.Schedule[9].Recovery)
}

func TestInterval_Inputs(t *testing.T) {
	svc := setupTestService(t, nil)

	data, err := svc.Interval(IntervalRequest{MAS: "20", MASPercent: "90", RepDistanceID: "1k", Reps: "6", Recovery: "2:00"})
	require.NoError(t, err)
	assert.Equal(t, "03:20", data.RepTime)
	assert.Equal(t, "2 min", data.Recovery)
	assert.Equal(t, "6 km", data.TotalDistance)

	data, err = svc.Interval(IntervalRequest{MAS: "18", RepDistanceID: "250", Reps: "1", Recovery: "45"})
	require.NoError(t, err)
	assert.Equal(t, "250 m", data.RepDistance)
	assert.Equal(t, "45 s", data.Recovery)
	assert.Equal(t, data.TotalWork, data.TotalElapsed, "a single rep has no recovery")
}

func TestInterval_Errors(t *testing.T) {
	svc := setupTestService(t, func(s *config.Settings) { s.MAS = floatPtr(18) })

	tests := []struct {
		name  string
		req   IntervalRequest
		field string
	}{
		{"percent above 200", IntervalRequest{MASPercent: "250"}, "mas_percent"},
		{"unknown distance", IntervalRequest{RepDistanceID: "far"}, "rep_distance"},
		{"too many reps", IntervalRequest{Reps: "51"}, "reps"},
		{"zero reps", IntervalRequest{Reps: "0"}, "reps"},
		{"fractional reps", IntervalRequest{Reps: "2.5"}, "reps"},
		{"negative recovery", IntervalRequest{Recovery: "-30"}, "recovery"},
		{"bad recovery", IntervalRequest{Recovery: "soon"}, "recovery"},
		{"NaN recovery", IntervalRequest{Recovery: "NaN"}, "recovery"},
		{"infinite recovery", IntervalRequest{Recovery: "Inf"}, "recovery"},
		{"infinite mas", IntervalRequest{MAS: "+Inf"}, "mas"},
		{"infinite percent", IntervalRequest{MASPercent: "Inf"}, "mas_percent"},
		{"infinite distance", IntervalRequest{RepDistanceID: "Inf"}, "rep_distance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Interval(tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, tt.field, FieldOf(err))
		})
	}

	t.Run("no mas", func(t *testing.T) {
		empty := setupTestService(t, nil)
		_, err := empty.Interval(IntervalRequest{})
		assert.ErrorIs(t, err, ErrUndefined)
	})
}
