// Package pano models the wraparound photosphere viewport.
package pano

import (
	"image"
	"image/draw"
	"sync"
)

// Roll returns img circularly shifted left by offset pixels: columns
// offset..w-1 first, then columns 0..offset-1. The offset wraps modulo the
// image width, so 0, w and 2w all reproduce the input; negative offsets
// normalize into range.
func Roll(img image.Image, offset int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return out
	}

	offset %= w
	if offset < 0 {
		offset += w
	}

	// Right part of the source becomes the left part of the view.
	draw.Draw(out, image.Rect(0, 0, w-offset, h), img,
		image.Pt(b.Min.X+offset, b.Min.Y), draw.Src)
	draw.Draw(out, image.Rect(w-offset, 0, w, h), img, b.Min, draw.Src)
	return out
}

// Viewport is the single mutable cell shared between the pointer-input path
// and the render tick. Input events arrive on the UI event goroutine while
// the redraw ticker runs on its own, so access is guarded.
type Viewport struct {
	mu     sync.Mutex
	offset int
}

// SetOffset records the pointer-derived horizontal shift.
func (v *Viewport) SetOffset(px int) {
	v.mu.Lock()
	v.offset = px
	v.mu.Unlock()
}

// Offset returns the current horizontal shift.
func (v *Viewport) Offset() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.offset
}
