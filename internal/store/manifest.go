package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"rov-photosphere/internal/pose"

	"github.com/google/uuid"
)

const manifestFile = "manifest.json"

// Manifest records one capture session: which poses were actually captured
// and when. Since frame files accumulate across runs, the manifest is the
// only record of what the latest session contributed.
type Manifest struct {
	Session  string      `json:"session"`
	Started  time.Time   `json:"started"`
	Captured []pose.Pose `json:"captured"`
}

// NewManifest starts a manifest for a fresh session.
func NewManifest() *Manifest {
	return &Manifest{
		Session: uuid.NewString(),
		Started: time.Now().UTC(),
	}
}

// Record appends a captured pose.
func (m *Manifest) Record(p pose.Pose) {
	m.Captured = append(m.Captured, p)
}

// WriteManifest persists the session manifest into the capture directory.
func (s *Store) WriteManifest(m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, manifestFile), data, 0o644)
}

// ReadManifest loads the manifest of the most recent session, if any.
func (s *Store) ReadManifest() (*Manifest, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, manifestFile))
	if err != nil {
		return nil, false
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, false
	}
	return &m, true
}
