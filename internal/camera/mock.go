package camera

import (
	"fmt"
	"image"
	"image/color"
	"time"
)

// MockDevice is a scripted Device for tests. Each call to Next consumes the
// next scripted frame; an exhausted script yields incomplete frames.
type MockDevice struct {
	DeviceID   string
	Label      string
	Frames     []Frame
	OpenErr    error
	nextIdx    int
	opened     bool
	acquiring  bool
	OpenCount  int
	CloseCount int
	BeginCount int
	EndCount   int
}

// MockFrame builds a complete solid-color frame for scripting.
func MockFrame(w, h int, c color.RGBA) Frame {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return Frame{Width: w, Height: h, Complete: true, Image: img}
}

// IncompleteFrame builds a failed-transfer frame for scripting.
func IncompleteFrame() Frame {
	return Frame{Complete: false}
}

func (m *MockDevice) ID() string   { return m.DeviceID }
func (m *MockDevice) Name() string { return m.Label }

func (m *MockDevice) Open() error {
	if m.OpenErr != nil {
		return m.OpenErr
	}
	m.opened = true
	m.OpenCount++
	return nil
}

func (m *MockDevice) BeginAcquisition() error {
	if !m.opened {
		return fmt.Errorf("mock %s: begin before open", m.DeviceID)
	}
	if m.acquiring {
		return fmt.Errorf("mock %s: bracket already open", m.DeviceID)
	}
	m.acquiring = true
	m.BeginCount++
	return nil
}

func (m *MockDevice) Next(time.Duration) (Frame, error) {
	if !m.acquiring {
		return Frame{}, fmt.Errorf("mock %s: next outside bracket", m.DeviceID)
	}
	if m.nextIdx >= len(m.Frames) {
		return IncompleteFrame(), nil
	}
	f := m.Frames[m.nextIdx]
	m.nextIdx++
	return f, nil
}

func (m *MockDevice) EndAcquisition() error {
	if !m.acquiring {
		return fmt.Errorf("mock %s: end without begin", m.DeviceID)
	}
	m.acquiring = false
	m.EndCount++
	return nil
}

func (m *MockDevice) Close() error {
	m.opened = false
	m.acquiring = false
	m.CloseCount++
	return nil
}
