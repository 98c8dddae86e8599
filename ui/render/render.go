// Package render provides the pixel overlay drawing used by the capture
// and measurement views.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"rov-photosphere/internal/pose"
	"rov-photosphere/pkg/geometry"
)

// DrawLine plots a straight segment onto img, clipped to its bounds.
func DrawLine(img *image.RGBA, a, b geometry.Point2D, col color.RGBA) {
	steps := int(math.Max(math.Abs(b.X-a.X), math.Abs(b.Y-a.Y)))
	if steps == 0 {
		setClipped(img, int(a.X), int(a.Y), col)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		setClipped(img, int(a.X+(b.X-a.X)*t), int(a.Y+(b.Y-a.Y)*t), col)
	}
}

// DrawMarker plots a small filled square centered on p.
func DrawMarker(img *image.RGBA, p geometry.Point2D, radius int, col color.RGBA) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			setClipped(img, int(p.X)+dx, int(p.Y)+dy, col)
		}
	}
}

func setClipped(img *image.RGBA, x, y int, col color.RGBA) {
	if (image.Point{x, y}).In(img.Bounds()) {
		img.SetRGBA(x, y, col)
	}
}

// PoseArrow renders the operator instruction card: a black field with a
// yellow arrow pointing along the pose's yaw heading.
func PoseArrow(p pose.Pose, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{A: 255}), image.Point{}, draw.Src)

	center := geometry.NewPoint2D(float64(w)/2, float64(h)/2)
	length := math.Min(float64(w), float64(h)) * 0.4
	angle := float64(p.Yaw) * math.Pi / 180

	// Screen Y grows downward, so a positive yaw sweeps counter-clockwise
	// on screen with the minus sign.
	tip := geometry.NewPoint2D(center.X+length*math.Cos(angle), center.Y-length*math.Sin(angle))
	yellow := color.RGBA{R: 255, G: 213, B: 0, A: 255}

	DrawLine(img, center, tip, yellow)
	barb := length * 0.25
	for _, off := range []float64{math.Pi * 5 / 6, -math.Pi * 5 / 6} {
		end := geometry.NewPoint2D(
			tip.X+barb*math.Cos(angle+off),
			tip.Y-barb*math.Sin(angle+off))
		DrawLine(img, tip, end, yellow)
	}
	DrawMarker(img, center, 2, yellow)
	return img
}

// MeasureOverlay copies base and draws the measurement segment over it:
// the armed first click as a marker, and the completed pair as a line with
// both endpoints marked.
func MeasureOverlay(base image.Image, armed *geometry.Point2D, a, b *geometry.Point2D) *image.RGBA {
	out := image.NewRGBA(base.Bounds())
	draw.Draw(out, out.Bounds(), base, base.Bounds().Min, draw.Src)

	cyan := color.RGBA{R: 0, G: 255, B: 255, A: 255}
	if armed != nil {
		DrawMarker(out, *armed, 3, cyan)
	}
	if a != nil && b != nil {
		DrawLine(out, *a, *b, cyan)
		DrawMarker(out, *a, 3, cyan)
		DrawMarker(out, *b, 3, cyan)
	}
	return out
}
