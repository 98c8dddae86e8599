package stitch

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"log"
	"os"

	"rov-photosphere/internal/pose"
	"rov-photosphere/internal/store"
)

// ErrNoFrames reports that no captured frame existed for any pose, so there
// is nothing to stitch and nothing to view.
var ErrNoFrames = errors.New("no images to stitch")

// Stitch reads every present frame for the grid from the store and
// assembles the photosphere: frames sharing a tilt are concatenated left to
// right in yaw order, the resulting rows top to bottom in tilt order. Tilts
// with zero captured frames are omitted entirely; no blank filler is ever
// inserted for a missing pose.
func Stitch(s *store.Store, grid *pose.Grid) (*image.RGBA, error) {
	var rows []image.Image

	for _, tilt := range grid.Tilts() {
		var frames []image.Image
		for _, p := range grid.AtTilt(tilt) {
			img, ok := s.Get(p)
			if !ok {
				continue
			}
			frames = append(frames, img)
		}
		if len(frames) == 0 {
			continue
		}
		log.Printf("stitch: tilt %d°: %d frames", tilt, len(frames))
		rows = append(rows, Hconcat(frames))
	}

	if len(rows) == 0 {
		return nil, ErrNoFrames
	}
	return Vconcat(rows), nil
}

// StitchToFile stitches and writes the composite to path as JPEG.
func StitchToFile(s *store.Store, grid *pose.Grid, path string) (*image.RGBA, error) {
	composite, err := Stitch(s, grid)
	if err != nil {
		return nil, err
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("write composite %s: %w", path, err)
	}
	defer f.Close()

	if err := jpeg.Encode(f, composite, nil); err != nil {
		return nil, fmt.Errorf("encode composite: %w", err)
	}
	log.Printf("stitch: composite saved to %s (%dx%d)",
		path, composite.Bounds().Dx(), composite.Bounds().Dy())
	return composite, nil
}
