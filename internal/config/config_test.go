package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, Defaults(), cfg)
	assert.Len(t, cfg.Yaws, 12)
	assert.Equal(t, 500*time.Millisecond, cfg.SettleDelay)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spherecap.yml")
	body := `
tilts: [0]
yaws: [0, 180]
capture_dir: shed_sweep
settle_delay: 250ms
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []int{0}, cfg.Tilts)
	assert.Equal(t, []int{0, 180}, cfg.Yaws)
	assert.Equal(t, "shed_sweep", cfg.CaptureDir)
	assert.Equal(t, 250*time.Millisecond, cfg.SettleDelay)

	// Untouched keys keep their defaults.
	assert.Equal(t, "stitched.jpg", cfg.Output)
	assert.Equal(t, time.Second, cfg.FrameWait)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("tilts: [not-a-number"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yml")
	cfg := Defaults()
	cfg.CaptureDir = "elsewhere"
	require.NoError(t, Save(cfg, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "elsewhere", got.CaptureDir)
	assert.Equal(t, cfg.Tilts, got.Tilts)
}
