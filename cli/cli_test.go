package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pfeifer.dev/colprev/params"
	ms "pfeifer.dev/colprev/settings"
)

func useTempParams(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old := params.ParamsPath
	t.Cleanup(func() {
		params.SetParamsPath(old)
		ms.Settings.Default()
	})
	return dir
}

func run(t *testing.T, args ...string) (bool, error) {
	t.Helper()
	startDaemon := false
	err := newCommand(&startDaemon).Run(context.Background(), append([]string{"colprev"}, args...))
	return startDaemon, err
}

func persisted(t *testing.T) ms.CollisionPreventionSettings {
	t.Helper()
	data, err := params.GetParam(params.COLLISION_PREVENTION_SETTINGS)
	require.NoError(t, err)
	s := ms.CollisionPreventionSettings{}
	s.Default()
	require.NoError(t, s.Unmarshal(data))
	return s
}

func TestDefaultActionStartsDaemon(t *testing.T) {
	dir := useTempParams(t)

	startDaemon, err := run(t, "--params-dir", dir)
	require.NoError(t, err)
	assert.True(t, startDaemon)
	assert.Equal(t, dir, params.ParamsPath)
}

func TestSettingsCommandPersistsFlags(t *testing.T) {
	dir := useTempParams(t)

	startDaemon, err := run(t, "--params-dir", dir, "settings",
		"--distance", "1.5",
		"--staleness-window", "300",
		"--max-sensors", "2",
		"--log-level", "debug",
	)
	require.NoError(t, err)
	assert.False(t, startDaemon)

	s := persisted(t)
	assert.Equal(t, float32(1.5), s.CollisionPreventionDistance)
	assert.Equal(t, 300, s.StalenessWindowMs)
	assert.Equal(t, 2, s.MaxSensorInstances)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, float32(5), s.BinResolutionDeg, "untouched settings keep their defaults")
}

func TestSettingsCommandDefaults(t *testing.T) {
	dir := useTempParams(t)

	_, err := run(t, "--params-dir", dir, "settings", "--distance", "2")
	require.NoError(t, err)
	require.Equal(t, float32(2), persisted(t).CollisionPreventionDistance)

	_, err = run(t, "--params-dir", dir, "settings", "--defaults")
	require.NoError(t, err)
	defaults := persisted(t)
	assert.False(t, defaults.Enabled())
}

func TestSettingsCommandRejectsInvalidValues(t *testing.T) {
	dir := useTempParams(t)

	_, err := run(t, "--params-dir", dir, "settings", "--interference-threshold", "2")
	require.Error(t, err)

	_, err = params.GetParam(params.COLLISION_PREVENTION_SETTINGS)
	assert.Error(t, err, "nothing was saved")
}

func TestSettingsCommandWithoutChangesDoesNotSave(t *testing.T) {
	dir := useTempParams(t)

	_, err := run(t, "--params-dir", dir, "settings")
	require.NoError(t, err)

	_, err = params.GetParam(params.COLLISION_PREVENTION_SETTINGS)
	assert.Error(t, err)
}
