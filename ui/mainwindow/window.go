// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"log"
	"time"

	"rov-photosphere/internal/app"
	"rov-photosphere/internal/camera"
	"rov-photosphere/internal/measure"
	"rov-photosphere/internal/pose"
	capturepanel "rov-photosphere/ui/capture"
	measurepanel "rov-photosphere/ui/measure"
	"rov-photosphere/ui/prefs"
	"rov-photosphere/ui/viewer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MainWindow is the primary application window. The three GUI modes are
// mutually exclusive; the holder swaps the active one.
type MainWindow struct {
	fyne.Window
	app   fyne.App
	state *app.State
	prefs *prefs.Prefs

	capturePanel *capturepanel.Panel
	measurePanel *measurepanel.Panel
	activeViewer *viewer.Viewer

	holder    *fyne.Container
	statusBar *widget.Label
}

// New creates the main window.
func New(fyneApp fyne.App, state *app.State, appPrefs *prefs.Prefs, frameWait time.Duration, outputPath string) *MainWindow {
	win := fyneApp.NewWindow("ROV Photosphere")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  appPrefs,
	}

	mw.capturePanel = capturepanel.New(state, frameWait, outputPath)
	mw.measurePanel = measurepanel.New(state)

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()

	win.Resize(fyne.NewSize(1000, 700))
	return mw
}

// setupUI creates the main layout: mode toolbar, swapped content, status bar.
func (mw *MainWindow) setupUI() {
	mw.statusBar = widget.NewLabel("Ready")
	mw.holder = container.NewStack(mw.capturePanel.Content())

	toolbar := container.NewHBox(
		widget.NewLabel("Mode:"),
		widget.NewButton("Capture", func() { mw.state.SetMode(app.ModeCapture) }),
		widget.NewButton("Measure", func() { mw.state.SetMode(app.ModeMeasure) }),
		widget.NewButton("Viewer", func() { mw.state.SetMode(app.ModeViewer) }),
	)

	content := container.NewBorder(
		toolbar,
		container.NewPadded(mw.statusBar),
		nil,
		nil,
		mw.holder,
	)
	mw.SetContent(content)

	mw.Canvas().SetOnTypedKey(func(k *fyne.KeyEvent) {
		if k.Name == fyne.KeyEscape && mw.state.Mode() == app.ModeViewer {
			mw.state.SetMode(app.ModeCapture)
		}
	})
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	modeMenu := fyne.NewMenu("Mode",
		fyne.NewMenuItem("Capture", func() { mw.state.SetMode(app.ModeCapture) }),
		fyne.NewMenuItem("Measure", func() { mw.state.SetMode(app.ModeMeasure) }),
		fyne.NewMenuItem("Viewer", func() { mw.state.SetMode(app.ModeViewer) }),
	)
	mw.SetMainMenu(fyne.NewMainMenu(modeMenu))
}

// setupEventHandlers wires state events into the UI.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventModeChanged, func(data interface{}) {
		mw.showMode(data.(app.Mode))
	})
	mw.state.On(app.EventFrameCaptured, func(data interface{}) {
		mw.statusBar.SetText(fmt.Sprintf("Captured %s", data.(pose.Pose)))
	})
	mw.state.On(app.EventCameraChanged, func(data interface{}) {
		info := data.(camera.Info)
		mw.statusBar.SetText(fmt.Sprintf("Active camera: %s", info.Name))
		mw.prefs.SetString(prefs.KeyLastCamera, info.Name)
	})
	mw.state.On(app.EventMeasurement, func(data interface{}) {
		mw.statusBar.SetText(data.(measure.Measurement).String())
	})
	mw.state.On(app.EventCompositeReady, func(interface{}) {
		mw.statusBar.SetText("Photosphere stitched")
	})

	mw.SetOnClosed(func() {
		mw.stopViewer()
		mw.state.CloseCamera()
		if err := mw.prefs.Save(); err != nil {
			log.Printf("mainwindow: saving preferences: %v", err)
		}
	})
}

// showMode swaps the active view. Entering viewer mode without a composite
// falls back to capture rather than showing an empty raster.
func (mw *MainWindow) showMode(m app.Mode) {
	mw.stopViewer()

	switch m {
	case app.ModeMeasure:
		mw.holder.Objects = []fyne.CanvasObject{mw.measurePanel.Content()}
	case app.ModeViewer:
		composite := mw.state.GetComposite()
		if composite == nil {
			mw.holder.Objects = []fyne.CanvasObject{mw.capturePanel.Content()}
			mw.holder.Refresh()
			mw.statusBar.SetText("Nothing to view; stitch a photosphere first")
			return
		}
		mw.activeViewer = viewer.New(composite)
		mw.activeViewer.Start()
		mw.holder.Objects = []fyne.CanvasObject{mw.activeViewer}
	default:
		mw.holder.Objects = []fyne.CanvasObject{mw.capturePanel.Content()}
	}

	mw.holder.Refresh()
	mw.statusBar.SetText(fmt.Sprintf("%s mode", m))
}

func (mw *MainWindow) stopViewer() {
	if mw.activeViewer != nil {
		mw.activeViewer.Stop()
		mw.activeViewer = nil
	}
}
