// Package capture provides the GUI capture view: camera selector, pose
// stepper, and per-pose capture controls.
package capture

import (
	"errors"
	"fmt"
	"log"
	"time"

	"rov-photosphere/internal/app"
	"rov-photosphere/internal/stitch"
	"rov-photosphere/internal/store"
	"rov-photosphere/ui/render"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	previewW = 640
	previewH = 480
)

// Panel is the capture-mode view. One image area doubles as the pose
// instruction card and the last-captured-frame preview.
type Panel struct {
	state      *app.State
	frameWait  time.Duration
	outputPath string

	selector    *widget.Select
	view        *fynecanvas.Image
	instruction *widget.Label
	manifest    *store.Manifest

	content fyne.CanvasObject
}

// New builds the capture panel over the discovered cameras.
func New(state *app.State, frameWait time.Duration, outputPath string) *Panel {
	p := &Panel{
		state:       state,
		frameWait:   frameWait,
		outputPath:  outputPath,
		instruction: widget.NewLabel(""),
		manifest:    store.NewManifest(),
	}

	p.view = fynecanvas.NewImageFromImage(render.PoseArrow(state.Grid.At(0), previewW, previewH))
	p.view.FillMode = fynecanvas.ImageFillContain
	p.view.SetMinSize(fyne.NewSize(previewW, previewH))

	names := make([]string, len(state.Cameras))
	for i, info := range state.Cameras {
		names[i] = info.Name
	}
	p.selector = widget.NewSelect(names, p.onCameraSelected)

	captureBtn := widget.NewButton("Capture Image", p.onCapture)
	nextBtn := widget.NewButton("Next Direction", p.onNextPose)
	stitchBtn := widget.NewButton("Stitch Photosphere", p.onStitch)

	p.content = container.NewVBox(
		widget.NewLabel("Select Camera:"),
		p.selector,
		p.view,
		p.instruction,
		captureBtn,
		nextBtn,
		stitchBtn,
	)

	if len(names) > 0 {
		p.selector.SetSelectedIndex(0)
	} else {
		p.instruction.SetText("No camera detected.")
	}
	p.showPose()
	return p
}

// Content returns the panel's root object.
func (p *Panel) Content() fyne.CanvasObject { return p.content }

func (p *Panel) onCameraSelected(name string) {
	for _, info := range p.state.Cameras {
		if info.Name != name {
			continue
		}
		if err := p.state.SelectCamera(info); err != nil {
			log.Printf("capture: switch camera: %v", err)
			p.instruction.SetText(fmt.Sprintf("Camera unavailable: %v", err))
			return
		}
		p.instruction.SetText(fmt.Sprintf("Switched to %s", name))
		return
	}
}

// showPose refreshes the instruction card for the pose the stepper waits on.
func (p *Panel) showPose() {
	pz, done := p.state.CurrentPose()
	if done {
		p.instruction.SetText("Capture complete. Stitch when ready.")
		return
	}
	p.view.Image = render.PoseArrow(pz, previewW, previewH)
	p.view.Refresh()
	p.instruction.SetText(fmt.Sprintf("Set rig to %s, then capture.", pz))
}

// onCapture performs one acquisition bracket at the current pose. The
// bracket is closed on every path so a bad transfer cannot wedge the device.
func (p *Panel) onCapture() {
	pz, done := p.state.CurrentPose()
	if done {
		p.instruction.SetText("All poses captured.")
		return
	}
	dev := p.state.Active
	if dev == nil {
		p.instruction.SetText("Select a camera first.")
		return
	}

	if err := dev.BeginAcquisition(); err != nil {
		p.instruction.SetText(fmt.Sprintf("Acquisition failed: %v", err))
		return
	}
	frame, err := dev.Next(p.frameWait)
	if endErr := dev.EndAcquisition(); endErr != nil {
		log.Printf("capture: end acquisition: %v", endErr)
	}
	if err != nil {
		p.instruction.SetText(fmt.Sprintf("Acquisition failed: %v", err))
		return
	}
	if !frame.Complete {
		log.Printf("capture: incomplete frame at %s, skipping pose", pz)
		p.instruction.SetText("Image incomplete, pose skipped. Advance when ready.")
		return
	}

	if err := p.state.Store.Put(pz, frame.Image); err != nil {
		p.instruction.SetText(fmt.Sprintf("Save failed: %v", err))
		return
	}
	p.manifest.Record(pz)
	p.state.Emit(app.EventFrameCaptured, pz)

	p.view.Image = frame.Image
	p.view.Refresh()
	p.instruction.SetText(fmt.Sprintf("Captured %s (%dx%d). Advance to the next direction.",
		pz, frame.Width, frame.Height))
}

func (p *Panel) onNextPose() {
	p.state.AdvancePose()
	p.showPose()
}

// onStitch assembles everything captured so far and hands the composite to
// the viewer mode.
func (p *Panel) onStitch() {
	composite, err := stitch.StitchToFile(p.state.Store, p.state.Grid, p.outputPath)
	if err != nil {
		if errors.Is(err, stitch.ErrNoFrames) {
			p.instruction.SetText("No images to stitch.")
		} else {
			p.instruction.SetText(fmt.Sprintf("Stitch failed: %v", err))
		}
		return
	}
	if err := p.state.Store.WriteManifest(p.manifest); err != nil {
		log.Printf("capture: write manifest: %v", err)
	}

	p.state.SetComposite(composite)
	p.state.SetMode(app.ModeViewer)
}
