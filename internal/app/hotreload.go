package app

import (
	"os"
	"path/filepath"
	"syscall"
	"time"
)

// HotReloader watches the running binary and invokes a callback when a
// recompiled version appears on disk. Development convenience only.
type HotReloader struct {
	execPath    string
	baseline    time.Time
	interval    time.Duration
	stopCh      chan struct{}
	onNewBinary func()
}

// NewHotReloader watches the current executable, following symlinks so a
// rebuilt binary behind a stale link is still seen. Returns nil when the
// executable path cannot be determined.
func NewHotReloader(interval time.Duration) *HotReloader {
	execPath, err := os.Executable()
	if err != nil {
		return nil
	}
	if real, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = real
	}
	info, err := os.Stat(execPath)
	if err != nil {
		return nil
	}
	return &HotReloader{
		execPath: execPath,
		baseline: info.ModTime(),
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// OnNewBinary sets the callback for a detected rebuild. It fires from a
// background goroutine.
func (h *HotReloader) OnNewBinary(callback func()) { h.onNewBinary = callback }

// ExecPath returns the watched path.
func (h *HotReloader) ExecPath() string { return h.execPath }

// Start begins watching in a background goroutine.
func (h *HotReloader) Start() {
	go func() {
		ticker := time.NewTicker(h.interval)
		defer ticker.Stop()
		for {
			select {
			case <-h.stopCh:
				return
			case <-ticker.C:
				info, err := os.Stat(h.execPath)
				if err == nil && info.ModTime().After(h.baseline) {
					if h.onNewBinary != nil {
						h.onNewBinary()
					}
					return
				}
			}
		}
	}()
}

// Stop ends the watch.
func (h *HotReloader) Stop() { close(h.stopCh) }

// Restart replaces the current process with a fresh instance of the
// binary, preserving arguments and environment. Does not return on success.
func (h *HotReloader) Restart() error {
	return syscall.Exec(h.execPath, os.Args, os.Environ())
}
