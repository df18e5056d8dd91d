package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/render"
)

const sampleConfig = `
[camera]
z = -2.5
smooth = true

[object]
auto_rotate = false
distance = 7.5

[light]
x = 0.5

[display]
wireframe = false
fill_color = "#ff8000"

[projection]
fov = 60.0
`

func TestConfigApplyOnlySetFields(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	s := New()
	cfg.Apply(s)

	assert.Equal(t, math3d.Point(0, 0, -2.5), s.Camera)
	assert.True(t, s.SmoothMotion)
	assert.False(t, s.AutoRotate)
	assert.Equal(t, 7.5, s.Distance)
	assert.Equal(t, math3d.Point(0.5, 0, -1), s.Light)
	assert.False(t, s.Wireframe)
	assert.Equal(t, render.RGB(255, 128, 0), s.FillColor)
	assert.Equal(t, 60.0, s.FOV)

	// Untouched fields keep their defaults
	def := New()
	assert.Equal(t, def.RotSpeed, s.RotSpeed)
	assert.Equal(t, def.Filled, s.Filled)
	assert.Equal(t, def.WireColor, s.WireColor)
	assert.Equal(t, def.Near, s.Near)
	assert.Equal(t, def.Far, s.Far)
	assert.Equal(t, def.Yaw, s.Yaw)
}

func TestConfigApplyClamps(t *testing.T) {
	cfg, err := ParseConfig([]byte("[object]\ndistance = 500.0\nspeed = 0.0\n"))
	require.NoError(t, err)

	s := New()
	cfg.Apply(s)
	assert.Equal(t, MaxDistance, s.Distance)
	assert.Equal(t, MinRotSpeed, s.RotSpeed)
}

func TestConfigApplyUnparsedColor(t *testing.T) {
	bad, good := "teal-ish", "#00ff00"
	cfg := &Config{Display: DisplayConfig{FillColor: &bad, WireColor: &good}}

	s := New()
	cfg.Apply(s)
	assert.Equal(t, render.ColorBlue, s.FillColor)
	assert.Equal(t, render.RGB(0, 255, 0), s.WireColor)
}

func TestConfigEmpty(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)

	s := New()
	cfg.Apply(s)
	assert.Equal(t, New().Frame(), s.Frame())
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "[camera\nx = 1.0"},
		{"unknown key", "[camera]\nroll = 1.0\n"},
		{"unknown table", "[texture]\npath = \"a.png\"\n"},
		{"bad colour", "[display]\nfill_color = \"blue\"\n"},
		{"wrong type", "[display]\nfilled = \"yes\"\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tc.data))
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Object.Distance)
	assert.Equal(t, 7.5, *cfg.Object.Distance)
	assert.Nil(t, cfg.Object.Speed)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
