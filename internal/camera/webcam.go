package camera

import (
	"fmt"
	"time"

	"gocv.io/x/gocv"
)

// Webcam drives a camera through OpenCV's VideoCapture. The handle is
// exclusively owned; nothing here is safe for concurrent use.
type Webcam struct {
	id        string
	name      string
	index     int
	cap       *gocv.VideoCapture
	acquiring bool
}

// NewWebcam returns an unopened device for the given driver index.
func NewWebcam(info Info) *Webcam {
	return &Webcam{id: info.ID, name: info.Name, index: info.Index}
}

// ID returns the discovery-assigned identifier.
func (w *Webcam) ID() string { return w.id }

// Name returns the selector label.
func (w *Webcam) Name() string { return w.name }

// Open initializes the capture handle.
func (w *Webcam) Open() error {
	if w.cap != nil {
		return nil
	}
	cap, err := gocv.OpenVideoCapture(w.index)
	if err != nil {
		return fmt.Errorf("open camera %d: %w", w.index, err)
	}
	if !cap.IsOpened() {
		cap.Close()
		return fmt.Errorf("open camera %d: device not ready", w.index)
	}
	w.cap = cap
	return nil
}

// BeginAcquisition opens the acquisition bracket and flushes the driver's
// frame queue so Next returns a current frame, not a stale buffered one.
func (w *Webcam) BeginAcquisition() error {
	if w.cap == nil {
		return fmt.Errorf("camera %s: begin acquisition before open", w.id)
	}
	if w.acquiring {
		return fmt.Errorf("camera %s: acquisition already open", w.id)
	}
	w.cap.Grab(2)
	w.acquiring = true
	return nil
}

// Next pulls one frame, copying it out of the driver buffer before any
// further driver call can invalidate it.
func (w *Webcam) Next(wait time.Duration) (Frame, error) {
	if !w.acquiring {
		return Frame{}, fmt.Errorf("camera %s: next outside acquisition bracket", w.id)
	}

	mat := gocv.NewMat()
	defer mat.Close()

	deadline := time.Now().Add(wait)
	for {
		if w.cap.Read(&mat) && !mat.Empty() {
			break
		}
		if time.Now().After(deadline) {
			return Frame{Complete: false}, nil
		}
		time.Sleep(20 * time.Millisecond)
	}

	img, err := mat.ToImage()
	if err != nil {
		// Undecodable transfer, same handling as an incomplete frame.
		return Frame{Width: mat.Cols(), Height: mat.Rows(), Complete: false}, nil
	}
	return Frame{Width: mat.Cols(), Height: mat.Rows(), Complete: true, Image: img}, nil
}

// EndAcquisition closes the bracket. It must run even when Next reported an
// incomplete frame.
func (w *Webcam) EndAcquisition() error {
	if !w.acquiring {
		return fmt.Errorf("camera %s: end without begin", w.id)
	}
	w.acquiring = false
	return nil
}

// Close releases the capture handle.
func (w *Webcam) Close() error {
	if w.cap == nil {
		return nil
	}
	err := w.cap.Close()
	w.cap = nil
	w.acquiring = false
	return err
}
