package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.config")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFileHappyPath(t *testing.T) {
	path := writeTempConfig(t, "scene.txt out.png 6 320 240 16 1 2 1 3 2 0 0.02\n")

	got, err := LoadFile(path, Default())
	require.NoError(t, err)

	want := Configuration{
		InputScene:           "scene.txt",
		OutputImage:          "out.png",
		Depth:                6,
		Width:                320,
		Height:               240,
		AntialiasingSamples:  16,
		AdaptiveAntialiasing: true,
		ShadowSamples:        2,
		DOF:                  true,
		DOFSamples:           3,
		ReflectionSamples:    2,
		Window:               false,
		Epsilon:              0.02,
		Workers:              0,
	}

	assert.Equal(t, want, got)
}

func TestLoadFilePartialKeepsBaseTail(t *testing.T) {
	base := Default()
	base.Epsilon = 0.5
	base.Window = false

	path := writeTempConfig(t, "other.txt render.png 4\n")

	got, err := LoadFile(path, base)
	require.NoError(t, err)

	assert.Equal(t, "other.txt", got.InputScene)
	assert.Equal(t, "render.png", got.OutputImage)
	assert.Equal(t, 4, got.Depth)
	assert.Equal(t, 0.5, got.Epsilon, "trailing fields should keep base's value")
	assert.False(t, got.Window, "trailing fields should keep base's value")
}

func TestLoadFileMalformedFieldErrors(t *testing.T) {
	path := writeTempConfig(t, "scene.txt out.png not-a-number\n")

	_, err := LoadFile(path, Default())
	assert.Error(t, err)
}

func TestLoadFileMissingFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.config"), Default())
	assert.Error(t, err)
}
