package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runcalc/internal/analysis"
	"runcalc/internal/config"
	"runcalc/internal/store"
)

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.Open(store.MemoryPath, nil)
	require.NoError(t, err, "opening test database")
	t.Cleanup(func() { s.Close() })
	return s
}

func setupTestService(t *testing.T, mutate func(*config.Settings)) *CalculatorService {
	t.Helper()

	base := config.DefaultSettings()
	if mutate != nil {
		mutate(&base)
	}
	svc, err := NewCalculatorService(setupTestStore(t), base, nil)
	require.NoError(t, err)
	return svc
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestNewCalculatorService_LoadsSavedSettings(t *testing.T) {
	st := setupTestStore(t)

	svc, err := NewCalculatorService(st, config.DefaultSettings(), nil)
	require.NoError(t, err)
	_, err = svc.SetSetting("mas", "18")
	require.NoError(t, err)
	_, err = svc.SetSetting("unit", "mile")
	require.NoError(t, err)

	reopened, err := NewCalculatorService(st, config.DefaultSettings(), nil)
	require.NoError(t, err)
	settings := reopened.Settings()
	require.NotNil(t, settings.MAS)
	assert.Equal(t, 18.0, *settings.MAS)
	assert.Equal(t, analysis.UnitMile, settings.Unit)
}

func TestSettings_ReturnsCopy(t *testing.T) {
	svc := setupTestService(t, func(s *config.Settings) { s.MAS = floatPtr(16) })

	got := svc.Settings()
	*got.MAS = 99
	assert.Equal(t, 16.0, *svc.Settings().MAS)
}

func TestUpdateSettings(t *testing.T) {
	svc := setupTestService(t, nil)

	unit := analysis.UnitMile
	got, err := svc.UpdateSettings(config.SettingsPatch{Unit: &unit, MaxHR: floatPtr(190), RestingHR: floatPtr(60)})
	require.NoError(t, err)
	assert.Equal(t, analysis.UnitMile, got.Unit)

	_, err = svc.UpdateSettings(config.SettingsPatch{RestingHR: floatPtr(200)})
	assert.ErrorIs(t, err, config.ErrInvalidSettings)
	assert.Equal(t, 60.0, *svc.Settings().RestingHR, "rejected update leaves settings unchanged")
}

func TestSetSettings(t *testing.T) {
	svc := setupTestService(t, func(s *config.Settings) {
		s.MaxHR, s.RestingHR = floatPtr(190), floatPtr(60)
	})

	got, err := svc.SetSettings(map[string]string{"max_hr": "55", "resting_hr": "40"})
	require.NoError(t, err)
	assert.Equal(t, 55.0, *got.MaxHR)
	assert.Equal(t, 40.0, *got.RestingHR)

	_, err = svc.SetSettings(map[string]string{"mas": "18", "resting_hr": "70"})
	assert.ErrorIs(t, err, config.ErrInvalidSettings)
	assert.Nil(t, svc.Settings().MAS, "rejected batch saves nothing")
}

func TestSetSetting_Invalid(t *testing.T) {
	svc := setupTestService(t, nil)

	_, err := svc.SetSetting("unit", "yard")
	assert.Error(t, err)
	assert.Equal(t, analysis.UnitKm, svc.Settings().Unit)
}

func TestResetSettings(t *testing.T) {
	svc := setupTestService(t, func(s *config.Settings) { s.MAS = floatPtr(16) })

	_, err := svc.SetSetting("mas", "20")
	require.NoError(t, err)

	got, err := svc.ResetSettings()
	require.NoError(t, err)
	assert.Equal(t, 16.0, *got.MAS)
}

func TestConvertPace(t *testing.T) {
	svc := setupTestService(t, nil)

	got, err := svc.ConvertPace("5:00", "")
	require.NoError(t, err)
	assert.Equal(t, analysis.UnitKm, got.Unit)
	assert.InDelta(t, 12.0, got.SpeedKmh, 1e-9)
	assert.Equal(t, "05:00 min/km", got.Pace)
	assert.Equal(t, "12.00 km/h", got.Speed)
	assert.Equal(t, "7.46 mph", got.OtherSpeed)

	got, err = svc.ConvertPace("5", "")
	require.NoError(t, err)
	assert.InDelta(t, 300.0, got.PaceSeconds, 1e-9)
}

func TestConvertSpeed_Mile(t *testing.T) {
	svc := setupTestService(t, nil)

	got, err := svc.ConvertSpeed("10", analysis.UnitMile)
	require.NoError(t, err)
	assert.Equal(t, analysis.UnitMile, got.Unit)
	assert.InDelta(t, 16.0934, got.SpeedKmh, 1e-9)
	assert.InDelta(t, 360.0, got.PaceSeconds, 1e-9)
	assert.Equal(t, "06:00 min/mi", got.Pace)
	assert.Equal(t, "10.00 mph", got.Speed)
	assert.Equal(t, "16.09 km/h", got.OtherSpeed)
}

func TestConvert_InvalidInput(t *testing.T) {
	svc := setupTestService(t, nil)

	tests := []struct {
		name  string
		call  func() error
		field string
	}{
		{"pace text", func() error { _, err := svc.ConvertPace("abc", ""); return err }, "pace"},
		{"pace empty", func() error { _, err := svc.ConvertPace("", ""); return err }, "pace"},
		{"pace zero", func() error { _, err := svc.ConvertPace("0:00", ""); return err }, "pace"},
		{"speed text", func() error { _, err := svc.ConvertSpeed("fast", ""); return err }, "speed"},
		{"speed negative", func() error { _, err := svc.ConvertSpeed("-3", ""); return err }, "speed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, tt.field, FieldOf(err))
		})
	}
}

func TestCapitalizeFirst(t *testing.T) {
	assert.Equal(t, "High", capitalizeFirst("high"))
	assert.Equal(t, "Riegel", capitalizeFirst("Riegel"))
	assert.Equal(t, "", capitalizeFirst(""))
}
