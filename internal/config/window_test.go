package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, "PygameQuick Window", cfg.Title)
	assert.Equal(t, RGB{41, 41, 41}, cfg.Background)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Width = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidWindow)

	cfg = Default()
	cfg.Background = RGB{0, 256, 0}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidWindow)
}

func TestLoadFileOverlaysBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "window.toml")
	require.NoError(t, os.WriteFile(path, []byte("title = \"demo\"\nbackground = [1, 2, 3]\n"), 0o644))

	cfg, err := LoadFile(path, Default())
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Title)
	assert.Equal(t, RGB{1, 2, 3}, cfg.Background)
	assert.Equal(t, 800, cfg.Width)
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "window.toml")
	require.NoError(t, os.WriteFile(path, []byte("fullscreen = true\n"), 0o644))

	_, err := LoadFile(path, Default())
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvWidth, "100")
	t.Setenv(EnvHeight, "50")
	t.Setenv(EnvTitle, "env title")
	t.Setenv(EnvBackground, "#ff8000")

	cfg, err := FromEnv(Default())
	require.NoError(t, err)
	assert.Equal(t, Window{Width: 100, Height: 50, Title: "env title", Background: RGB{255, 128, 0}}, cfg)
}

func TestFromEnvBadWidth(t *testing.T) {
	t.Setenv(EnvWidth, "wide")
	_, err := FromEnv(Default())
	assert.Error(t, err)
}

func TestParseRGB(t *testing.T) {
	c, err := ParseRGB(" 10, 20 ,30 ")
	require.NoError(t, err)
	assert.Equal(t, RGB{10, 20, 30}, c)

	_, err = ParseRGB("1,2")
	assert.Error(t, err)
	_, err = ParseRGB("#12345")
	assert.Error(t, err)
}

func TestLoadValidates(t *testing.T) {
	t.Setenv(EnvHeight, "-1")
	_, err := Load("")
	assert.ErrorIs(t, err, ErrInvalidWindow)
}
