// Package app provides application lifecycle management, shared state, and
// events for the GUI variant.
package app

import (
	"image"
	"sync"

	"rov-photosphere/internal/camera"
	"rov-photosphere/internal/measure"
	"rov-photosphere/internal/pose"
	"rov-photosphere/internal/store"
)

// Mode is the active GUI mode. The modes are mutually exclusive; exactly
// one is active at a time.
type Mode int

const (
	ModeCapture Mode = iota
	ModeMeasure
	ModeViewer
)

func (m Mode) String() string {
	switch m {
	case ModeCapture:
		return "Capture"
	case ModeMeasure:
		return "Measure"
	case ModeViewer:
		return "Viewer"
	default:
		return "Unknown"
	}
}

// EventType identifies application events.
type EventType int

const (
	EventModeChanged EventType = iota
	EventCameraChanged
	EventPoseAdvanced
	EventFrameCaptured
	EventCompositeReady
	EventMeasurement
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the GUI application state: the active camera, capture
// progress through the pose grid, and the stitched composite once built.
type State struct {
	mu sync.RWMutex

	// Capture session
	Grid      *pose.Grid
	Store     *store.Store
	PoseIndex int

	// Camera selection: discovered devices and the exclusively-owned
	// active handle.
	Cameras []camera.Info
	Active  camera.Device

	// Stitch result
	Composite *image.RGBA

	// Measurement session
	Measure *measure.Session

	mode      Mode
	listeners map[EventType][]EventListener
}

// NewState creates the application state around a capture directory.
func NewState(st *store.Store, grid *pose.Grid, scale float64) *State {
	return &State{
		Grid:      grid,
		Store:     st,
		Measure:   measure.NewSession(scale),
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Mode returns the active GUI mode.
func (s *State) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// SetMode switches the active GUI mode.
func (s *State) SetMode(m Mode) {
	s.mu.Lock()
	s.mode = m
	s.mu.Unlock()
	s.Emit(EventModeChanged, m)
}

// CurrentPose returns the pose the stepper is waiting on, or done=true
// when the grid is exhausted.
func (s *State) CurrentPose() (p pose.Pose, done bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.PoseIndex >= s.Grid.Len() {
		return pose.Pose{}, true
	}
	return s.Grid.At(s.PoseIndex), false
}

// AdvancePose steps to the next pose in the grid.
func (s *State) AdvancePose() {
	s.mu.Lock()
	if s.PoseIndex < s.Grid.Len() {
		s.PoseIndex++
	}
	idx := s.PoseIndex
	s.mu.Unlock()
	s.Emit(EventPoseAdvanced, idx)
}

// ResetPoses rewinds the stepper to the first pose.
func (s *State) ResetPoses() {
	s.mu.Lock()
	s.PoseIndex = 0
	s.mu.Unlock()
	s.Emit(EventPoseAdvanced, 0)
}

// SelectCamera switches the active device, tearing the previous handle
// down before opening the new one.
func (s *State) SelectCamera(info camera.Info) error {
	s.mu.Lock()
	current := s.Active
	s.mu.Unlock()

	// Select closes the previous device before opening the new one, so
	// Active is stale either way and must be replaced.
	active, err := camera.Select(current, camera.NewWebcam(info))
	s.mu.Lock()
	s.Active = active
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.Emit(EventCameraChanged, info)
	return nil
}

// CloseCamera releases the active device, if any.
func (s *State) CloseCamera() {
	s.mu.Lock()
	dev := s.Active
	s.Active = nil
	s.mu.Unlock()
	if dev != nil {
		dev.Close()
	}
}

// SetComposite stores the stitch result and announces it.
func (s *State) SetComposite(img *image.RGBA) {
	s.mu.Lock()
	s.Composite = img
	s.mu.Unlock()
	s.Emit(EventCompositeReady, img)
}

// GetComposite returns the stitch result, or nil before the first stitch.
func (s *State) GetComposite() *image.RGBA {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Composite
}
