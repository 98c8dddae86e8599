package store

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"rov-photosphere/internal/pose"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrame(w, h int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestStore_PathScheme(t *testing.T) {
	s := New("captures")
	assert.Equal(t, filepath.Join("captures", "tilt-30_yaw90.jpg"),
		s.Path(pose.Pose{Tilt: -30, Yaw: 90}))
	assert.Equal(t, filepath.Join("captures", "tilt0_yaw0.jpg"),
		s.Path(pose.Pose{}))
}

func TestStore_PutGetRoundTrip(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.EnsureDir())

	p := pose.Pose{Tilt: 0, Yaw: 90}
	require.NoError(t, s.Put(p, testFrame(8, 6, color.RGBA{200, 10, 10, 255})))

	got, ok := s.Get(p)
	require.True(t, ok)
	assert.Equal(t, 8, got.Bounds().Dx())
	assert.Equal(t, 6, got.Bounds().Dy())
}

func TestStore_GetMissingIsAbsence(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.EnsureDir())

	_, ok := s.Get(pose.Pose{Tilt: 30, Yaw: 180})
	assert.False(t, ok, "never-captured pose reads back as absent")
}

func TestStore_GetUndecodableIsAbsence(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.EnsureDir())

	p := pose.Pose{Tilt: 0, Yaw: 0}
	require.NoError(t, os.WriteFile(s.Path(p), []byte("not a jpeg"), 0o644))

	_, ok := s.Get(p)
	assert.False(t, ok)
}

func TestStore_PutOverwrites(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.EnsureDir())

	p := pose.Pose{Tilt: 0, Yaw: 30}
	require.NoError(t, s.Put(p, testFrame(4, 4, color.RGBA{255, 255, 255, 255})))
	require.NoError(t, s.Put(p, testFrame(10, 2, color.RGBA{0, 0, 0, 255})))

	got, ok := s.Get(p)
	require.True(t, ok)
	assert.Equal(t, 10, got.Bounds().Dx(), "latest capture wins")
	assert.Equal(t, 2, got.Bounds().Dy())
}

func TestStore_EnsureDirIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "captures")
	s := New(dir)
	require.NoError(t, s.EnsureDir())
	require.NoError(t, s.EnsureDir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestManifest_RoundTrip(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.EnsureDir())

	m := NewManifest()
	require.NotEmpty(t, m.Session)
	m.Record(pose.Pose{Tilt: 0, Yaw: 0})
	m.Record(pose.Pose{Tilt: 0, Yaw: 90})
	require.NoError(t, s.WriteManifest(m))

	got, ok := s.ReadManifest()
	require.True(t, ok)
	assert.Equal(t, m.Session, got.Session)
	assert.Equal(t, []pose.Pose{{Tilt: 0, Yaw: 0}, {Tilt: 0, Yaw: 90}}, got.Captured)
}

func TestManifest_MissingIsAbsence(t *testing.T) {
	s := New(t.TempDir())
	_, ok := s.ReadManifest()
	assert.False(t, ok)
}
