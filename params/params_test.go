package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempParams(t *testing.T) string {
	t.Helper()
	old := ParamsPath
	dir := filepath.Join(t.TempDir(), "params", "d")
	SetParamsPath(dir)
	t.Cleanup(func() { SetParamsPath(old) })
	EnsureParamDirectories()
	return dir
}

func TestPutGetParam(t *testing.T) {
	dir := useTempParams(t)

	require.NoError(t, PutParam("CollisionPreventionSettings", []byte(`{"a":1}`)))

	data, err := GetParam("CollisionPreventionSettings")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")

	exists, err := Exists(filepath.Join(filepath.Dir(dir), ".lock"))
	require.NoError(t, err)
	assert.False(t, exists, "lock file is released")
}

func TestPutParamOverwrites(t *testing.T) {
	useTempParams(t)

	require.NoError(t, PutParam("Value", []byte("one")))
	require.NoError(t, PutParam("Value", []byte("two")))

	data, err := GetParam("Value")
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}

func TestGetParams(t *testing.T) {
	useTempParams(t)

	require.NoError(t, PutParam("b", []byte("1")))
	require.NoError(t, PutParam("a", []byte("2")))

	names, err := GetParams()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestRemoveParam(t *testing.T) {
	useTempParams(t)

	require.NoError(t, PutParam("Value", []byte("one")))
	require.NoError(t, RemoveParam("Value"))
	require.NoError(t, RemoveParam("Value"), "removing a missing param is not an error")

	_, err := GetParam("Value")
	assert.Error(t, err)
}

func TestExists(t *testing.T) {
	dir := useTempParams(t)

	exists, err := Exists(dir)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = Exists(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, exists)
}
