// Package stitch assembles captured frames into a grid photosphere.
package stitch

import (
	"image"
	"image/draw"
)

// Hconcat places images left to right on a shared top edge. The result is
// as tall as the tallest input; a shorter input leaves black below it, so
// mismatched capture resolutions degrade to a jagged composite instead of
// failing.
func Hconcat(imgs []image.Image) *image.RGBA {
	width, height := 0, 0
	for _, img := range imgs {
		b := img.Bounds()
		width += b.Dx()
		if b.Dy() > height {
			height = b.Dy()
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	x := 0
	for _, img := range imgs {
		b := img.Bounds()
		dst := image.Rect(x, 0, x+b.Dx(), b.Dy())
		draw.Draw(out, dst, img, b.Min, draw.Src)
		x += b.Dx()
	}
	return out
}

// Vconcat stacks images top to bottom on a shared left edge. The result is
// as wide as the widest input.
func Vconcat(imgs []image.Image) *image.RGBA {
	width, height := 0, 0
	for _, img := range imgs {
		b := img.Bounds()
		height += b.Dy()
		if b.Dx() > width {
			width = b.Dx()
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	y := 0
	for _, img := range imgs {
		b := img.Bounds()
		dst := image.Rect(0, y, b.Dx(), y+b.Dy())
		draw.Draw(out, dst, img, b.Min, draw.Src)
		y += b.Dy()
	}
	return out
}
