// Command spherecap runs the console capture pipeline: walk the pose grid
// with the operator confirming each rig position on stdin, stitch whatever
// was captured into a photosphere, and open the wraparound viewer.
package main

import (
	"errors"
	"log"
	"os"

	"rov-photosphere/internal/acquire"
	"rov-photosphere/internal/camera"
	"rov-photosphere/internal/config"
	"rov-photosphere/internal/pose"
	"rov-photosphere/internal/stitch"
	"rov-photosphere/internal/store"
	"rov-photosphere/internal/version"
	"rov-photosphere/ui/viewer"

	fyneapp "fyne.io/fyne/v2/app"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("spherecap v%s", version.Version)

	cfg, err := config.Load(config.DefaultFileName)
	if err != nil {
		log.Printf("config: %v, using defaults", err)
		cfg = config.Defaults()
	}

	st := store.New(cfg.CaptureDir)
	grid := pose.NewGrid(cfg.Tilts, cfg.Yaws)

	runCapture(cfg, st, grid)

	composite, err := stitch.StitchToFile(st, grid, cfg.Output)
	if err != nil {
		if errors.Is(err, stitch.ErrNoFrames) {
			log.Println("no images to stitch")
		} else {
			log.Printf("stitch: %v", err)
		}
		return
	}

	log.Println("opening photosphere viewer (move the pointer to look around, ESC to exit)")
	a := fyneapp.New()
	viewer.ShowWindow(a, composite)
	a.Run()
}

// runCapture walks the grid with the first discovered camera. Failures
// here degrade the pipeline rather than aborting it: stitching still runs
// over whatever frames exist from this or earlier sessions.
func runCapture(cfg config.Config, st *store.Store, grid *pose.Grid) {
	infos := camera.Discover(cfg.ProbeRange)
	if len(infos) == 0 {
		log.Printf("capture: %v", camera.ErrNoCameras)
		return
	}

	dev := camera.NewWebcam(infos[0])
	op := acquire.NewConsoleOperator(os.Stdin, os.Stdout)
	ctrl := acquire.NewController(dev, st, grid, op, acquire.Options{
		SettleDelay: cfg.SettleDelay,
		FrameWait:   cfg.FrameWait,
	})

	manifest, err := ctrl.Run()
	if err != nil {
		log.Printf("capture: %v", err)
	}
	if manifest != nil && len(manifest.Captured) > 0 {
		if err := st.WriteManifest(manifest); err != nil {
			log.Printf("capture: write manifest: %v", err)
		}
		log.Printf("capture complete: %d/%d poses", len(manifest.Captured), grid.Len())
	}
}
