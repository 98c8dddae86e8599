// Package viewer displays the stitched photosphere with a wraparound
// horizontal scroll driven by pointer position.
package viewer

import (
	"image"
	"time"

	"rov-photosphere/internal/pano"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// redrawInterval is the fixed render tick. The view redraws every tick
// whether or not the offset moved.
const redrawInterval = 20 * time.Millisecond

// Viewer renders a composite with a circular horizontal shift. Moving the
// pointer across the widget sweeps one full revolution.
type Viewer struct {
	widget.BaseWidget

	src    *image.RGBA
	vp     *pano.Viewport
	raster *fynecanvas.Image
	stopCh chan struct{}
}

var _ desktop.Hoverable = (*Viewer)(nil)

// New creates a viewer for the composite.
func New(src *image.RGBA) *Viewer {
	v := &Viewer{
		src:    src,
		vp:     &pano.Viewport{},
		raster: fynecanvas.NewImageFromImage(src),
		stopCh: make(chan struct{}),
	}
	v.raster.FillMode = fynecanvas.ImageFillContain
	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer implements fyne.Widget.
func (v *Viewer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.raster)
}

// MinSize keeps the viewer usable rather than collapsing to a point.
func (v *Viewer) MinSize() fyne.Size {
	return fyne.NewSize(640, 360)
}

// MouseIn implements desktop.Hoverable.
func (v *Viewer) MouseIn(ev *desktop.MouseEvent) { v.MouseMoved(ev) }

// MouseMoved maps the pointer's horizontal position to a pixel offset into
// the composite. The update is synchronous; the next tick picks it up.
func (v *Viewer) MouseMoved(ev *desktop.MouseEvent) {
	width := v.Size().Width
	if width <= 0 {
		return
	}
	frac := float64(ev.Position.X) / float64(width)
	v.vp.SetOffset(int(frac * float64(v.src.Bounds().Dx())))
}

// MouseOut implements desktop.Hoverable.
func (v *Viewer) MouseOut() {}

// Start begins the fixed-rate redraw loop.
func (v *Viewer) Start() {
	go func() {
		ticker := time.NewTicker(redrawInterval)
		defer ticker.Stop()
		for {
			select {
			case <-v.stopCh:
				return
			case <-ticker.C:
				v.raster.Image = pano.Roll(v.src, v.vp.Offset())
				v.raster.Refresh()
			}
		}
	}()
}

// Stop ends the redraw loop.
func (v *Viewer) Stop() {
	close(v.stopCh)
}

// ShowWindow opens a dedicated viewer window on the given app, wired so
// Escape (or closing the window) stops the redraw loop.
func ShowWindow(a fyne.App, composite *image.RGBA) fyne.Window {
	win := a.NewWindow("Photosphere")
	v := New(composite)

	win.SetContent(v)
	win.Resize(fyne.NewSize(1200, 500))
	win.Canvas().SetOnTypedKey(func(k *fyne.KeyEvent) {
		if k.Name == fyne.KeyEscape {
			win.Close()
		}
	})
	win.SetOnClosed(v.Stop)

	v.Start()
	win.Show()
	return win
}
