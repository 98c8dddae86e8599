// Package store persists captured frames keyed by rig pose.
package store

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"

	"rov-photosphere/internal/pose"

	_ "image/png"

	_ "golang.org/x/image/tiff"
)

// Store maps poses to JPEG files under a capture directory. Files accumulate
// across runs; re-capturing a pose overwrites its file in place.
type Store struct {
	dir string
}

// New returns a Store rooted at dir. Call EnsureDir before the first Put.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the capture directory.
func (s *Store) Dir() string { return s.dir }

// EnsureDir creates the capture directory if it does not exist.
func (s *Store) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create capture dir %s: %w", s.dir, err)
	}
	return nil
}

// Path returns the deterministic file path for a pose.
func (s *Store) Path(p pose.Pose) string {
	return filepath.Join(s.dir, fmt.Sprintf("tilt%d_yaw%d.jpg", p.Tilt, p.Yaw))
}

// Put writes the frame for a pose, overwriting any earlier capture.
func (s *Store) Put(p pose.Pose, img image.Image) error {
	f, err := os.Create(s.Path(p))
	if err != nil {
		return fmt.Errorf("write frame for %s: %w", p, err)
	}
	defer f.Close()

	if err := jpeg.Encode(f, img, nil); err != nil {
		return fmt.Errorf("encode frame for %s: %w", p, err)
	}
	return nil
}

// Get loads the frame for a pose. A missing or undecodable file is the
// normal "not yet captured" state and reports false, never an error.
func (s *Store) Get(p pose.Pose) (image.Image, bool) {
	f, err := os.Open(s.Path(p))
	if err != nil {
		return nil, false
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, false
	}
	return img, true
}
