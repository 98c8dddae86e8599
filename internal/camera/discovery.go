package camera

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"gocv.io/x/gocv"
)

// Info describes one discovered device. The webcam driver exposes no
// hardware serial, so each discovery run assigns a fresh unique ID; the
// Index is what actually addresses the hardware.
type Info struct {
	ID    string
	Name  string
	Index int
}

// DefaultProbeRange is how many driver indices Discover probes.
const DefaultProbeRange = 4

// Discover probes driver indices 0..maxIndex-1 and returns the devices
// that opened successfully. An empty result is the caller's fatal
// no-camera condition.
func Discover(maxIndex int) []Info {
	if maxIndex <= 0 {
		maxIndex = DefaultProbeRange
	}

	var found []Info
	for idx := 0; idx < maxIndex; idx++ {
		cap, err := gocv.OpenVideoCapture(idx)
		if err != nil {
			continue
		}
		opened := cap.IsOpened()
		cap.Close()
		if !opened {
			continue
		}
		found = append(found, Info{
			ID:    uuid.NewString(),
			Name:  fmt.Sprintf("Camera %d", idx),
			Index: idx,
		})
	}
	log.Printf("camera: discovery found %d device(s)", len(found))
	return found
}
