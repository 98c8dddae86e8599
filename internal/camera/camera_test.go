package camera

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockDevice_BracketEnforced(t *testing.T) {
	d := &MockDevice{DeviceID: "cam-a", Frames: []Frame{MockFrame(4, 4, color.RGBA{A: 255})}}

	_, err := d.Next(time.Second)
	assert.Error(t, err, "next before open/begin is misuse")

	require.NoError(t, d.Open())
	require.NoError(t, d.BeginAcquisition())

	f, err := d.Next(time.Second)
	require.NoError(t, err)
	assert.True(t, f.Complete)
	require.NoError(t, d.EndAcquisition())

	assert.Error(t, d.EndAcquisition(), "double end is misuse")
}

func TestMockDevice_ExhaustedScriptIsIncomplete(t *testing.T) {
	d := &MockDevice{DeviceID: "cam-a"}
	require.NoError(t, d.Open())
	require.NoError(t, d.BeginAcquisition())

	f, err := d.Next(time.Second)
	require.NoError(t, err)
	assert.False(t, f.Complete)
	assert.Nil(t, f.Image)
}

func TestSelect_TearsDownBeforeOpening(t *testing.T) {
	old := &MockDevice{DeviceID: "cam-a"}
	require.NoError(t, old.Open())
	next := &MockDevice{DeviceID: "cam-b"}

	active, err := Select(old, next)
	require.NoError(t, err)
	assert.Same(t, next, active.(*MockDevice))
	assert.Equal(t, 1, old.CloseCount, "previous handle released first")
	assert.Equal(t, 1, next.OpenCount)
}

func TestSelect_OpenFailureLeavesNothingActive(t *testing.T) {
	old := &MockDevice{DeviceID: "cam-a"}
	require.NoError(t, old.Open())
	next := &MockDevice{DeviceID: "cam-b", OpenErr: errors.New("driver busy")}

	active, err := Select(old, next)
	assert.Error(t, err)
	assert.Nil(t, active)
	assert.Equal(t, 1, old.CloseCount)
}

func TestSelect_NilCurrent(t *testing.T) {
	next := &MockDevice{DeviceID: "cam-b"}
	active, err := Select(nil, next)
	require.NoError(t, err)
	assert.Same(t, next, active.(*MockDevice))
}
