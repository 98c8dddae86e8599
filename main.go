// Package main provides the entry point for the ROV Photosphere GUI.
package main

import (
	"log"
	"time"

	"rov-photosphere/internal/app"
	"rov-photosphere/internal/camera"
	"rov-photosphere/internal/config"
	"rov-photosphere/internal/pose"
	"rov-photosphere/internal/store"
	"rov-photosphere/internal/version"
	"rov-photosphere/ui/mainwindow"
	"rov-photosphere/ui/prefs"

	fyneapp "fyne.io/fyne/v2/app"
)

const appTitle = "ROV Photosphere"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.Version)

	cfg, err := config.Load(config.DefaultFileName)
	if err != nil {
		log.Printf("config: %v, using defaults", err)
		cfg = config.Defaults()
	}
	appPrefs := prefs.Load()

	fyneApp := fyneapp.New()
	fyneApp.Settings().SetTheme(&app.Theme{})

	captureDir := appPrefs.String(prefs.KeyCaptureDir, cfg.CaptureDir)
	scale := appPrefs.Float(prefs.KeyMeasureScale, cfg.ScaleCmPx)

	st := store.New(captureDir)
	if err := st.EnsureDir(); err != nil {
		log.Printf("capture dir: %v", err)
	}

	state := app.NewState(st, pose.StepperGrid(), scale)
	state.Cameras = camera.Discover(cfg.ProbeRange)
	if len(state.Cameras) == 0 {
		log.Printf("%v: capture controls will be inert until one is connected", camera.ErrNoCameras)
	}

	win := mainwindow.New(fyneApp, state, appPrefs, cfg.FrameWait, cfg.Output)
	setupHotReload()

	win.ShowAndRun()
}

// setupHotReload logs when a newer binary lands on disk during development.
func setupHotReload() {
	reloader := app.NewHotReloader(2 * time.Second)
	if reloader == nil {
		log.Println("Hot reload: unable to determine executable path")
		return
	}
	log.Printf("Hot reload: watching %s", reloader.ExecPath())
	reloader.OnNewBinary(func() {
		log.Println("Hot reload: newer binary detected; restart to pick it up")
	})
	reloader.Start()
}
