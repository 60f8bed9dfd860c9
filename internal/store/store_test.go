package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runcalc/internal/analysis"
	"runcalc/internal/config"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(MemoryPath, nil)
	require.NoError(t, err, "opening test database")
	t.Cleanup(func() { s.Close() })
	return s
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "runcalc.db")

	s, err := Open(path, nil)
	require.NoError(t, err)
	require.NoError(t, s.SetValue("k", "v"))
	require.NoError(t, s.Close())

	// Reopening keeps data and reruns migrations harmlessly
	s, err = Open(path, nil)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.GetValue("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestKV(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.GetValue("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.SetValue("a", "1"))
	require.NoError(t, s.SetValue("a", "2"))
	got, err := s.GetValue("a")
	require.NoError(t, err)
	assert.Equal(t, "2", got)

	require.NoError(t, s.DeleteValue("a"))
	require.NoError(t, s.DeleteValue("a"))
	_, err = s.GetValue("a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSettings(t *testing.T) {
	t.Run("missing blob returns base", func(t *testing.T) {
		s := setupTestStore(t)
		base := config.DefaultSettings()
		base.MAS = floatPtr(16)

		got, err := s.LoadSettings(base)
		require.NoError(t, err)
		assert.Equal(t, base, got)
	})

	t.Run("round trip", func(t *testing.T) {
		s := setupTestStore(t)
		want := config.DefaultSettings()
		want.Unit = analysis.UnitMile
		want.MaxHR, want.RestingHR = floatPtr(190), floatPtr(60)
		want.RefDistanceMeters, want.RefTimeSeconds = floatPtr(5000), floatPtr(1200)

		require.NoError(t, s.SaveSettings(want))
		got, err := s.LoadSettings(config.DefaultSettings())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("partial blob merges over base", func(t *testing.T) {
		s := setupTestStore(t)
		require.NoError(t, s.SetValue(SettingsKey, `{"unit":"mile","mas":null}`))

		base := config.DefaultSettings()
		base.MAS = floatPtr(16)
		base.MaxHR = floatPtr(185)

		got, err := s.LoadSettings(base)
		require.NoError(t, err)
		assert.Equal(t, analysis.UnitMile, got.Unit)
		assert.Nil(t, got.MAS, "explicit null overrides the base value")
		require.NotNil(t, got.MaxHR)
		assert.Equal(t, 185.0, *got.MaxHR)
		assert.Equal(t, 16.0, *base.MAS, "base must not be modified")
	})

	t.Run("blob values do not alias base", func(t *testing.T) {
		s := setupTestStore(t)
		require.NoError(t, s.SetValue(SettingsKey, `{"mas":18}`))

		base := config.DefaultSettings()
		base.MAS = floatPtr(16)

		got, err := s.LoadSettings(base)
		require.NoError(t, err)
		assert.Equal(t, 18.0, *got.MAS)
		assert.Equal(t, 16.0, *base.MAS)
	})

	t.Run("corrupt blob falls back to base", func(t *testing.T) {
		s := setupTestStore(t)
		require.NoError(t, s.SetValue(SettingsKey, `{not json`))

		got, err := s.LoadSettings(config.DefaultSettings())
		require.NoError(t, err)
		assert.Equal(t, config.DefaultSettings(), got)
	})

	t.Run("invalid blob falls back to base", func(t *testing.T) {
		s := setupTestStore(t)
		require.NoError(t, s.SetValue(SettingsKey, `{"maxHr":50,"restingHr":60}`))

		got, err := s.LoadSettings(config.DefaultSettings())
		require.NoError(t, err)
		assert.Nil(t, got.MaxHR)
	})

	t.Run("save rejects invalid settings", func(t *testing.T) {
		s := setupTestStore(t)
		bad := config.DefaultSettings()
		bad.Unit = "yard"
		assert.ErrorIs(t, s.SaveSettings(bad), config.ErrInvalidSettings)

		_, err := s.GetValue(SettingsKey)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("reset", func(t *testing.T) {
		s := setupTestStore(t)
		require.NoError(t, s.SaveSettings(config.DefaultSettings()))
		require.NoError(t, s.ResetSettings())
		_, err := s.GetValue(SettingsKey)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPredictionRuns(t *testing.T) {
	s := setupTestStore(t)

	daniels := analysis.Predict(analysis.ModelDaniels, analysis.Distance5K, 1200, analysis.UnitKm)
	riegel := analysis.Predict(analysis.ModelRiegel, analysis.Distance10K, 2500, analysis.UnitMile)

	firstID, err := s.RecordPredictions(daniels, analysis.Distance5K, 1200, analysis.UnitKm)
	require.NoError(t, err)
	secondID, err := s.RecordPredictions(riegel, analysis.Distance10K, 2500, analysis.UnitMile)
	require.NoError(t, err)
	assert.Greater(t, secondID, firstID)

	t.Run("list newest first", func(t *testing.T) {
		runs, err := s.ListPredictionRuns(10)
		require.NoError(t, err)
		require.Len(t, runs, 2)

		assert.Equal(t, secondID, runs[0].ID)
		assert.Equal(t, "riegel", runs[0].Model)
		assert.Zero(t, runs[0].VDOT)
		assert.Equal(t, analysis.UnitMile, runs[0].Unit)

		assert.Equal(t, "daniels", runs[1].Model)
		assert.InDelta(t, daniels.VDOT, runs[1].VDOT, 1e-9)
		assert.False(t, runs[1].CreatedAt.IsZero())
	})

	t.Run("results are stored in distance order", func(t *testing.T) {
		run, err := s.GetPredictionRun(firstID)
		require.NoError(t, err)
		require.Len(t, run.Results, len(analysis.PredictionDistances))

		for i, p := range run.Results {
			want := daniels.Predictions[i]
			assert.Equal(t, want.DistanceID, p.DistanceID)
			assert.InDelta(t, want.TimeSeconds, p.TimeSeconds, 1e-9)
			assert.Equal(t, want.IsReference, p.IsReference)
			assert.Equal(t, want.Confidence, p.Confidence)
		}
	})

	t.Run("limit", func(t *testing.T) {
		runs, err := s.ListPredictionRuns(1)
		require.NoError(t, err)
		assert.Len(t, runs, 1)
	})

	t.Run("missing run", func(t *testing.T) {
		_, err := s.GetPredictionRun(9999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete cascades", func(t *testing.T) {
		require.NoError(t, s.DeletePredictionRuns())
		runs, err := s.ListPredictionRuns(10)
		require.NoError(t, err)
		assert.Empty(t, runs)

		var n int
		require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM prediction_results`).Scan(&n))
		assert.Zero(t, n)
	})
}
