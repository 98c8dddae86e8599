package render

import (
	"image"
	"image/color"
	"testing"

	"rov-photosphere/internal/pose"
	"rov-photosphere/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawLine_EndpointsSet(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	red := color.RGBA{255, 0, 0, 255}

	DrawLine(img, geometry.NewPoint2D(1, 1), geometry.NewPoint2D(8, 5), red)
	assert.Equal(t, red, img.RGBAAt(1, 1))
	assert.Equal(t, red, img.RGBAAt(8, 5))
}

func TestDrawLine_ClipsOutOfBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	assert.NotPanics(t, func() {
		DrawLine(img, geometry.NewPoint2D(-5, -5), geometry.NewPoint2D(10, 10), color.RGBA{A: 255})
	})
}

func TestPoseArrow_PointsAlongYaw(t *testing.T) {
	img := PoseArrow(pose.Pose{Tilt: 0, Yaw: 0}, 100, 100)
	require.Equal(t, 100, img.Bounds().Dx())

	// Yaw 0 points right of center along the horizontal axis.
	yellow := color.RGBA{R: 255, G: 213, B: 0, A: 255}
	assert.Equal(t, yellow, img.RGBAAt(80, 50))
	assert.Equal(t, color.RGBA{A: 255}, img.RGBAAt(20, 50), "nothing drawn opposite the heading")
}

func TestMeasureOverlay(t *testing.T) {
	base := image.NewRGBA(image.Rect(0, 0, 20, 20))
	a := geometry.NewPoint2D(2, 2)
	b := geometry.NewPoint2D(15, 2)

	out := MeasureOverlay(base, nil, &a, &b)
	cyan := color.RGBA{R: 0, G: 255, B: 255, A: 255}
	assert.Equal(t, cyan, out.RGBAAt(8, 2), "segment drawn between the clicks")

	armed := geometry.NewPoint2D(10, 10)
	out = MeasureOverlay(base, &armed, nil, nil)
	assert.Equal(t, cyan, out.RGBAAt(10, 10), "armed click marked")
}
