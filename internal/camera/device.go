// Package camera abstracts the machine-vision capture device. The real
// implementation wraps an OpenCV VideoCapture handle; tests and the UI use
// the same interface against a mock.
package camera

import (
	"errors"
	"image"
	"time"
)

// ErrNoCameras reports that device discovery found no usable hardware.
// This is fatal to a capture session and is never retried.
var ErrNoCameras = errors.New("no camera detected")

// Frame is one acquisition result. Image is always an owned copy: the
// device's internal buffer is only valid until the next driver call, so
// implementations copy before returning.
type Frame struct {
	Width    int
	Height   int
	Complete bool
	Image    image.Image
}

// Device is an exclusively-owned camera handle. A session is strictly
// Open → (BeginAcquisition → Next → EndAcquisition)* → Close; the
// acquisition bracket must be closed on every path, including failed reads,
// to keep the driver in a consistent state for the next pose.
type Device interface {
	// ID is a stable identifier: hardware serial when the driver exposes
	// one, otherwise an ID assigned at discovery time.
	ID() string

	// Name is a human-readable label for selector UIs.
	Name() string

	Open() error
	BeginAcquisition() error

	// Next pulls one frame with a bounded wait. A transfer failure yields
	// Frame{Complete: false}, not an error; errors are reserved for
	// misuse (bracket not open) and driver-level faults.
	Next(wait time.Duration) (Frame, error)

	EndAcquisition() error
	Close() error
}

// Select switches the active device, tearing the previous handle down
// completely before initializing the next. Strict ordering is the only
// guard needed: a session owns one handle at a time on one goroutine.
func Select(current, next Device) (Device, error) {
	if current != nil {
		if err := current.Close(); err != nil {
			return nil, err
		}
	}
	if next == nil {
		return nil, nil
	}
	if err := next.Open(); err != nil {
		return nil, err
	}
	return next, nil
}
