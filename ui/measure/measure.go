// Package measure provides the GUI distance-measurement view: two clicks
// on the image define a segment, reported in calibrated units.
package measure

import (
	"fmt"
	"image"

	appstate "rov-photosphere/internal/app"
	"rov-photosphere/internal/measure"
	"rov-photosphere/pkg/geometry"
	"rov-photosphere/ui/render"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// clickArea displays the image at 1:1 scale so tap positions map directly
// to pixel coordinates.
type clickArea struct {
	widget.BaseWidget

	session *measure.Session
	base    image.Image
	raster  *fynecanvas.Image
	onDone  func(measure.Measurement)
}

var _ fyne.Tappable = (*clickArea)(nil)

func newClickArea(session *measure.Session, onDone func(measure.Measurement)) *clickArea {
	c := &clickArea{
		session: session,
		raster:  fynecanvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1))),
		onDone:  onDone,
	}
	c.raster.FillMode = fynecanvas.ImageFillOriginal
	c.ExtendBaseWidget(c)
	return c
}

func (c *clickArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.raster)
}

func (c *clickArea) setImage(img image.Image) {
	c.base = img
	c.session.Reset()
	c.redraw(nil)
}

// Tapped feeds the click into the measurement session and redraws the
// overlay: a marker after the first click, the full segment after the
// second.
func (c *clickArea) Tapped(ev *fyne.PointEvent) {
	if c.base == nil {
		return
	}
	pt := geometry.NewPoint2D(float64(ev.Position.X), float64(ev.Position.Y))
	m, done := c.session.Click(pt)
	if done {
		c.redraw(&m)
		if c.onDone != nil {
			c.onDone(m)
		}
		return
	}
	c.redraw(nil)
}

func (c *clickArea) redraw(m *measure.Measurement) {
	if c.base == nil {
		return
	}
	var armed *geometry.Point2D
	if p, ok := c.session.Pending(); ok {
		armed = &p
	}
	var a, b *geometry.Point2D
	if m != nil {
		a, b = &m.A, &m.B
	}
	c.raster.Image = render.MeasureOverlay(c.base, armed, a, b)
	c.raster.Refresh()
}

// Panel is the measure-mode view.
type Panel struct {
	state   *appstate.State
	area    *clickArea
	result  *widget.Label
	summary *widget.Label
	content fyne.CanvasObject
}

// New builds the measurement panel. The image under measurement is the
// stitched composite once one exists.
func New(state *appstate.State) *Panel {
	p := &Panel{
		state:   state,
		result:  widget.NewLabel("Click two points to measure."),
		summary: widget.NewLabel(""),
	}
	p.area = newClickArea(state.Measure, p.onMeasurement)

	resetBtn := widget.NewButton("Reset Points", func() {
		state.Measure.Reset()
		p.area.redraw(nil)
		p.result.SetText("Click two points to measure.")
	})

	p.content = container.NewBorder(
		nil,
		container.NewVBox(p.result, p.summary, resetBtn),
		nil,
		nil,
		container.NewScroll(p.area),
	)

	state.On(appstate.EventCompositeReady, func(data interface{}) {
		if img, ok := data.(*image.RGBA); ok {
			p.SetImage(img)
		}
	})
	if img := state.GetComposite(); img != nil {
		p.SetImage(img)
	}
	return p
}

// Content returns the panel's root object.
func (p *Panel) Content() fyne.CanvasObject { return p.content }

// SetImage replaces the image under measurement.
func (p *Panel) SetImage(img image.Image) {
	p.area.setImage(img)
}

func (p *Panel) onMeasurement(m measure.Measurement) {
	p.state.Emit(appstate.EventMeasurement, m)
	p.result.SetText(m.String())

	mean, stddev := p.state.Measure.Summary()
	n := len(p.state.Measure.Results())
	p.summary.SetText(fmt.Sprintf("%d reading(s), mean %.2f cm, σ %.2f cm", n, mean, stddev))
}
