package stitch

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"rov-photosphere/internal/pose"
	"rov-photosphere/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestHconcat(t *testing.T) {
	red := solid(3, 2, color.RGBA{255, 0, 0, 255})
	blue := solid(5, 2, color.RGBA{0, 0, 255, 255})

	out := Hconcat([]image.Image{red, blue})
	require.Equal(t, 8, out.Bounds().Dx())
	require.Equal(t, 2, out.Bounds().Dy())

	assert.Equal(t, color.RGBA{255, 0, 0, 255}, out.RGBAAt(2, 1))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, out.RGBAAt(3, 1))
}

func TestHconcat_JaggedHeights(t *testing.T) {
	tall := solid(2, 4, color.RGBA{255, 0, 0, 255})
	short := solid(2, 2, color.RGBA{0, 255, 0, 255})

	out := Hconcat([]image.Image{tall, short})
	assert.Equal(t, 4, out.Bounds().Dy(), "tallest input sets the row height")
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, out.RGBAAt(2, 1))
	assert.Equal(t, color.RGBA{0, 0, 0, 0}, out.RGBAAt(2, 3), "short input leaves a gap, not a crash")
}

func TestVconcat(t *testing.T) {
	top := solid(4, 1, color.RGBA{255, 0, 0, 255})
	bottom := solid(4, 3, color.RGBA{0, 0, 255, 255})

	out := Vconcat([]image.Image{top, bottom})
	require.Equal(t, 4, out.Bounds().Dx())
	require.Equal(t, 4, out.Bounds().Dy())
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, out.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, out.RGBAAt(0, 1))
}

func TestStitch_SingleTiltRow(t *testing.T) {
	// Grid covers three tilts but only tilt 0 has frames: the composite is
	// one row of three frames, with no placeholder rows for the others.
	s := store.New(t.TempDir())
	require.NoError(t, s.EnsureDir())
	grid := pose.NewGrid([]int{-30, 0, 30}, []int{0, 90, 180})

	for _, yaw := range []int{0, 90, 180} {
		require.NoError(t, s.Put(pose.Pose{Tilt: 0, Yaw: yaw},
			solid(6, 4, color.RGBA{100, 100, 100, 255})))
	}

	out, err := Stitch(s, grid)
	require.NoError(t, err)
	assert.Equal(t, 18, out.Bounds().Dx(), "3 frames wide")
	assert.Equal(t, 4, out.Bounds().Dy(), "single row, frame height")
}

func TestStitch_SkipsMissingPosesWithinRow(t *testing.T) {
	s := store.New(t.TempDir())
	require.NoError(t, s.EnsureDir())
	grid := pose.NewGrid([]int{0}, []int{0, 90, 180, 270})

	require.NoError(t, s.Put(pose.Pose{Tilt: 0, Yaw: 0}, solid(5, 3, color.RGBA{1, 1, 1, 255})))
	require.NoError(t, s.Put(pose.Pose{Tilt: 0, Yaw: 270}, solid(5, 3, color.RGBA{2, 2, 2, 255})))

	out, err := Stitch(s, grid)
	require.NoError(t, err)
	assert.Equal(t, 10, out.Bounds().Dx(), "two present frames, no blank filler")
}

func TestStitch_NoFrames(t *testing.T) {
	s := store.New(t.TempDir())
	require.NoError(t, s.EnsureDir())

	_, err := Stitch(s, pose.DefaultGrid())
	assert.ErrorIs(t, err, ErrNoFrames)
}

func TestStitch_RowCountMatchesPopulatedTilts(t *testing.T) {
	s := store.New(t.TempDir())
	require.NoError(t, s.EnsureDir())
	grid := pose.NewGrid([]int{-30, 0, 30}, []int{0, 90})

	require.NoError(t, s.Put(pose.Pose{Tilt: -30, Yaw: 0}, solid(4, 2, color.RGBA{9, 9, 9, 255})))
	require.NoError(t, s.Put(pose.Pose{Tilt: 30, Yaw: 0}, solid(4, 2, color.RGBA{9, 9, 9, 255})))
	require.NoError(t, s.Put(pose.Pose{Tilt: 30, Yaw: 90}, solid(4, 2, color.RGBA{9, 9, 9, 255})))

	out, err := Stitch(s, grid)
	require.NoError(t, err)
	assert.Equal(t, 4, out.Bounds().Dy(), "two populated tilts, two rows")
	assert.Equal(t, 8, out.Bounds().Dx(), "widest row sets composite width")
}

func TestStitchToFile(t *testing.T) {
	s := store.New(t.TempDir())
	require.NoError(t, s.EnsureDir())
	grid := pose.NewGrid([]int{0}, []int{0})
	require.NoError(t, s.Put(pose.Pose{Tilt: 0, Yaw: 0}, solid(4, 4, color.RGBA{50, 50, 50, 255})))

	out := filepath.Join(t.TempDir(), "stitched.jpg")
	composite, err := StitchToFile(s, grid, out)
	require.NoError(t, err)
	require.NotNil(t, composite)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
