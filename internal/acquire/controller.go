// Package acquire drives a camera through the pose-indexed capture
// sequence, synchronized with a human operator who repositions the rig
// between poses.
package acquire

import (
	"fmt"
	"log"
	"time"

	"rov-photosphere/internal/camera"
	"rov-photosphere/internal/pose"
	"rov-photosphere/internal/store"
)

// Operator is the external party who physically orients the rig. Confirm
// blocks until the operator signals the pose is set; it returns false to
// abandon the remainder of the run.
type Operator interface {
	Confirm(p pose.Pose) bool
}

// Options are the empirical timing knobs. They are pragmatic guards, not
// protocol requirements; tune per rig.
type Options struct {
	// SettleDelay runs after each capture to let transient device state
	// settle before the operator moves the rig again.
	SettleDelay time.Duration

	// FrameWait bounds how long a single frame pull may block.
	FrameWait time.Duration
}

// DefaultOptions mirrors the timing the rig was commissioned with.
func DefaultOptions() Options {
	return Options{
		SettleDelay: 500 * time.Millisecond,
		FrameWait:   time.Second,
	}
}

// Controller owns one capture session: an opened device, the target grid,
// and the store the frames land in. Everything runs on the caller's
// goroutine; the only suspension points are the operator wait and the
// bounded frame pull.
type Controller struct {
	dev  camera.Device
	st   *store.Store
	grid *pose.Grid
	op   Operator
	opts Options
}

// NewController wires a capture session. The device must not be open yet;
// Run owns its whole lifecycle.
func NewController(dev camera.Device, st *store.Store, grid *pose.Grid, op Operator, opts Options) *Controller {
	if opts.SettleDelay == 0 {
		opts.SettleDelay = DefaultOptions().SettleDelay
	}
	if opts.FrameWait == 0 {
		opts.FrameWait = DefaultOptions().FrameWait
	}
	return &Controller{dev: dev, st: st, grid: grid, op: op, opts: opts}
}

// Run executes the session: open the device, then for each pose in grid
// order wait for the operator, capture one frame, and persist it. An
// incomplete frame skips only its pose. The device is closed on every
// return path.
func (c *Controller) Run() (*store.Manifest, error) {
	if err := c.st.EnsureDir(); err != nil {
		return nil, err
	}
	if err := c.dev.Open(); err != nil {
		return nil, fmt.Errorf("init camera %s: %w", c.dev.ID(), err)
	}
	defer func() {
		if err := c.dev.Close(); err != nil {
			log.Printf("acquire: closing camera %s: %v", c.dev.ID(), err)
		}
	}()

	manifest := store.NewManifest()
	log.Printf("acquire: session %s: %d poses on %s",
		manifest.Session, c.grid.Len(), c.dev.Name())

	for _, p := range c.grid.Poses() {
		if !c.op.Confirm(p) {
			log.Printf("acquire: operator stopped at %s", p)
			break
		}
		if err := c.capture(p, manifest); err != nil {
			return manifest, err
		}
		time.Sleep(c.opts.SettleDelay)
	}
	return manifest, nil
}

// capture performs one acquisition bracket for a pose. The bracket is
// closed unconditionally so a failed transfer cannot wedge the device.
func (c *Controller) capture(p pose.Pose, manifest *store.Manifest) error {
	if err := c.dev.BeginAcquisition(); err != nil {
		return fmt.Errorf("begin acquisition at %s: %w", p, err)
	}
	defer func() {
		if err := c.dev.EndAcquisition(); err != nil {
			log.Printf("acquire: end acquisition at %s: %v", p, err)
		}
	}()

	frame, err := c.dev.Next(c.opts.FrameWait)
	if err != nil {
		return fmt.Errorf("pull frame at %s: %w", p, err)
	}
	if !frame.Complete {
		log.Printf("acquire: incomplete frame at %s, skipping pose", p)
		return nil
	}

	if err := c.st.Put(p, frame.Image); err != nil {
		return err
	}
	manifest.Record(p)
	log.Printf("acquire: saved %s (%dx%d)", c.st.Path(p), frame.Width, frame.Height)
	return nil
}
