package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runcalc/internal/service"
	"runcalc/internal/store"
)

type testEnv struct {
	dir     string
	config  string
	db      string
	logFile string
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	return testEnv{
		dir:     dir,
		config:  filepath.Join(dir, "config.json"),
		db:      filepath.Join(dir, "runcalc.db"),
		logFile: filepath.Join(dir, "runcalc.log"),
	}
}

func (e testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", e.config, "--db", e.db, "--log-file", e.logFile}, args...))
	err := root.Execute()
	return out.String(), err
}

func (e testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()

	out, err := e.run(t, args...)
	require.NoError(t, err, "runcalc %v", args)
	return out
}

func TestConvertCmd(t *testing.T) {
	env := setupTestEnv(t)

	out := env.mustRun(t, "convert", "--pace", "5:00")
	assert.Contains(t, out, "pace   05:00 min/km")
	assert.Contains(t, out, "speed  12.00 km/h")

	out = env.mustRun(t, "--unit", "mile", "convert", "--speed", "10")
	assert.Contains(t, out, "06:00 min/mi")
	assert.Contains(t, out, "10.00 mph (16.09 km/h)")
}

func TestConvertCmd_Errors(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.run(t, "convert")
	assert.ErrorContains(t, err, "exactly one")

	_, err = env.run(t, "convert", "--pace", "5:00", "--speed", "12")
	assert.ErrorContains(t, err, "exactly one")

	_, err = env.run(t, "convert", "--pace", "5:75")
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = env.run(t, "--unit", "furlong", "convert", "--pace", "5:00")
	assert.ErrorContains(t, err, "--unit")
}

func TestSplitsCmd(t *testing.T) {
	env := setupTestEnv(t)

	out := env.mustRun(t, "splits", "--mode", "mas", "--mas", "15")
	assert.Contains(t, out, "04:00 min/km")
	assert.Contains(t, out, "2:48:47")

	out = env.mustRun(t, "splits", "--mode", "target", "--time", "20:00", "--distance", "5k")
	assert.Contains(t, out, "04:00 min/km")

	_, err := env.run(t, "splits", "--mode", "fartlek")
	assert.ErrorContains(t, err, "--mode")
}

func TestZonesCmd(t *testing.T) {
	env := setupTestEnv(t)

	out := env.mustRun(t, "zones", "--model", "hr", "--max-hr", "190", "--resting-hr", "60")
	assert.Contains(t, out, "151-164 bpm")

	_, err := env.run(t, "zones", "--model", "hr")
	assert.ErrorIs(t, err, service.ErrUndefined)

	out = env.mustRun(t, "zones", "--model", "borg")
	assert.Contains(t, out, "Borg")
}

func TestIntervalCmd(t *testing.T) {
	env := setupTestEnv(t)

	out := env.mustRun(t, "interval", "--mas", "18", "--reps", "3", "--schedule")
	assert.Contains(t, out, "3 × 400 m, 1 min recovery")
	assert.Contains(t, out, "rep time      01:20")
	assert.Contains(t, out, "done")

	_, err := env.run(t, "interval", "--mas", "18", "--reps", "51")
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestPredictCmd_RecordsHistory(t *testing.T) {
	env := setupTestEnv(t)

	out := env.mustRun(t, "predict", "--distance", "5k", "--time", "20:00", "--chart")
	assert.Contains(t, out, "Daniels VDOT from 5 km in 20:00")
	assert.Contains(t, out, "49.8 (Advanced Recreational)")
	assert.Contains(t, out, "* 5 km")
	assert.Contains(t, out, "41:28")
	assert.Contains(t, out, "pace (min/km)")
	assert.Contains(t, out, "saved as run 1")

	out = env.mustRun(t, "predict", "--model", "riegel", "--distance", "5k", "--time", "20:00", "--save=false")
	assert.Contains(t, out, "41:42")
	assert.NotContains(t, out, "VDOT")
	assert.NotContains(t, out, "saved as run")

	out = env.mustRun(t, "history")
	assert.Contains(t, out, "5 km in 20:00")
	assert.Contains(t, out, "VDOT 49.8")

	out = env.mustRun(t, "history", "show", "1")
	assert.Contains(t, out, "Daniels VDOT from 5 km in 20:00")
	assert.Contains(t, out, "VDOT 49.8")
	assert.Contains(t, out, "* 5 km")
	assert.Contains(t, out, "41:28")

	_, err := env.run(t, "history", "show", "7")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = env.run(t, "history", "show", "first")
	assert.ErrorContains(t, err, "run id")

	assert.Contains(t, env.mustRun(t, "history", "--clear"), "history cleared")
	assert.Contains(t, env.mustRun(t, "history"), "no saved predictions")
}

func TestPredictCmd_SavedReference(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.run(t, "predict")
	assert.ErrorIs(t, err, service.ErrUndefined)

	env.mustRun(t, "settings", "set", "ref_distance", "10k")
	env.mustRun(t, "settings", "set", "ref_time=41:21")

	out := env.mustRun(t, "predict", "--save=false")
	assert.Contains(t, out, "10 km in 41:21")
}

func TestSettingsCmd(t *testing.T) {
	env := setupTestEnv(t)

	out := env.mustRun(t, "settings")
	assert.Contains(t, out, "unit         km")
	assert.Contains(t, out, "mas          (not set)")

	assert.Contains(t, env.mustRun(t, "settings", "set", "mas", "18"), "mas = 18")
	assert.Contains(t, env.mustRun(t, "settings", "show"), "mas          18")

	// saved MAS is the interval default
	assert.Contains(t, env.mustRun(t, "interval"), "rep time      01:20")

	_, err := env.run(t, "settings", "set", "resting_hr", "200", "extra")
	assert.Error(t, err)

	_, err = env.run(t, "settings", "set", "speed", "12")
	assert.ErrorContains(t, err, "unknown key")

	out = env.mustRun(t, "settings", "reset")
	assert.Contains(t, out, "settings reset")
	assert.Contains(t, out, "mas          (not set)")
}

func TestConfigFileAndEnv(t *testing.T) {
	env := setupTestEnv(t)

	require.NoError(t, os.WriteFile(env.config, []byte(`{"athlete": {"mas_kmh": 16}, "display": {"unit": "mile"}}`), 0600))
	out := env.mustRun(t, "settings", "show")
	assert.Contains(t, out, "mas          16")
	assert.Contains(t, out, "unit         mile")

	t.Setenv("RUNCALC_DISPLAY_THEME", "dark")
	assert.Contains(t, env.mustRun(t, "settings", "show"), "theme        dark")

	require.NoError(t, os.WriteFile(env.config, []byte(`{"display": {"unit": "furlong"}}`), 0600))
	_, err := env.run(t, "settings", "show")
	assert.ErrorContains(t, err, "display.unit")
}

func TestInitCmd(t *testing.T) {
	env := setupTestEnv(t)

	out := env.mustRun(t, "init")
	assert.Contains(t, out, env.config)
	assert.FileExists(t, env.config)

	out = env.mustRun(t, "settings", "show")
	assert.Contains(t, out, "max_hr       185")
	assert.FileExists(t, env.logFile)
}
