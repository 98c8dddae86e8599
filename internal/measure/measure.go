// Package measure implements the two-click distance overlay model.
package measure

import (
	"fmt"

	"rov-photosphere/pkg/geometry"

	"gonum.org/v1/gonum/stat"
)

// DefaultScale is the survey calibration constant in centimeters per pixel,
// valid for the stock lens at the stock working distance. Treat as a
// configurable default rather than a property of the optics.
const DefaultScale = 0.05

// Measurement is one completed two-click reading.
type Measurement struct {
	A, B   geometry.Point2D
	Pixels float64
	Units  float64 // Pixels scaled by the session's cm-per-pixel factor
}

// Session accumulates two-click measurements over one image. Repeated
// readings of the same edge jitter by a few pixels; Mean and StdDev
// summarize the set.
type Session struct {
	scale   float64
	pending *geometry.Point2D
	results []Measurement
}

// NewSession returns a Session using the given cm-per-pixel scale, or
// DefaultScale when scale is zero or negative.
func NewSession(scale float64) *Session {
	if scale <= 0 {
		scale = DefaultScale
	}
	return &Session{scale: scale}
}

// Scale returns the session's cm-per-pixel factor.
func (s *Session) Scale() float64 { return s.scale }

// Click feeds one pointer click. The first click arms the measurement; the
// second completes it and returns it. A completed pair disarms, so clicks
// alternate arm/complete.
func (s *Session) Click(p geometry.Point2D) (Measurement, bool) {
	if s.pending == nil {
		s.pending = &p
		return Measurement{}, false
	}

	a := *s.pending
	s.pending = nil
	px := a.Distance(p)
	m := Measurement{A: a, B: p, Pixels: px, Units: px * s.scale}
	s.results = append(s.results, m)
	return m, true
}

// Pending reports the armed first click, if any.
func (s *Session) Pending() (geometry.Point2D, bool) {
	if s.pending == nil {
		return geometry.Point2D{}, false
	}
	return *s.pending, true
}

// Reset clears the armed click without recording anything.
func (s *Session) Reset() { s.pending = nil }

// Results returns completed measurements in order.
func (s *Session) Results() []Measurement { return s.results }

// Summary returns mean and standard deviation of the recorded distances in
// calibrated units. With fewer than two samples the deviation is zero.
func (s *Session) Summary() (mean, stddev float64) {
	if len(s.results) == 0 {
		return 0, 0
	}
	units := make([]float64, len(s.results))
	for i, m := range s.results {
		units[i] = m.Units
	}
	mean = stat.Mean(units, nil)
	if len(units) > 1 {
		stddev = stat.StdDev(units, nil)
	}
	return mean, stddev
}

func (m Measurement) String() string {
	return fmt.Sprintf("%.1f px = %.2f cm", m.Pixels, m.Units)
}
