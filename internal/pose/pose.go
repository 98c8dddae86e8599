// Package pose defines camera rig poses and the fixed capture grid.
package pose

import "fmt"

// Pose is one angular position of the capture rig. The operator physically
// orients the rig to a pose before each capture.
type Pose struct {
	Tilt int // degrees, negative = down
	Yaw  int // degrees, 0..359
}

func (p Pose) String() string {
	return fmt.Sprintf("tilt %d°, yaw %d°", p.Tilt, p.Yaw)
}

// Grid is an ordered, finite, fixed set of poses. Order is significant: it
// determines row (tilt) and column (yaw) composition during stitching.
// A Grid is never mutated after construction.
type Grid struct {
	poses []Pose
}

// NewGrid builds a rectangular tilt-major grid: for each tilt in order,
// every yaw in order.
func NewGrid(tilts, yaws []int) *Grid {
	g := &Grid{poses: make([]Pose, 0, len(tilts)*len(yaws))}
	for _, t := range tilts {
		for _, y := range yaws {
			g.poses = append(g.poses, Pose{Tilt: t, Yaw: y})
		}
	}
	return g
}

// ExplicitGrid wraps a hand-authored pose list.
func ExplicitGrid(poses []Pose) *Grid {
	g := &Grid{poses: make([]Pose, len(poses))}
	copy(g.poses, poses)
	return g
}

// Len returns the number of poses.
func (g *Grid) Len() int { return len(g.poses) }

// At returns the i-th pose in traversal order.
func (g *Grid) At(i int) Pose { return g.poses[i] }

// Poses returns a copy of the traversal order.
func (g *Grid) Poses() []Pose {
	out := make([]Pose, len(g.poses))
	copy(out, g.poses)
	return out
}

// Tilts returns the distinct tilt values in first-seen order.
func (g *Grid) Tilts() []int {
	seen := make(map[int]bool)
	var tilts []int
	for _, p := range g.poses {
		if !seen[p.Tilt] {
			seen[p.Tilt] = true
			tilts = append(tilts, p.Tilt)
		}
	}
	return tilts
}

// AtTilt returns the poses sharing the given tilt, preserving yaw order.
func (g *Grid) AtTilt(tilt int) []Pose {
	var row []Pose
	for _, p := range g.poses {
		if p.Tilt == tilt {
			row = append(row, p)
		}
	}
	return row
}

// Default capture coverage for the console tool: three tilt bands swept
// through a full rotation in 30° steps.
var (
	DefaultTilts = []int{-30, 0, 30}
	DefaultYaws  = []int{0, 30, 60, 90, 120, 150, 180, 210, 240, 270, 300, 330}
)

// DefaultGrid returns the console tool's 36-pose grid.
func DefaultGrid() *Grid {
	return NewGrid(DefaultTilts, DefaultYaws)
}

// StepperGrid returns the GUI tool's 18-pose grid: the same tilt bands over
// a forward half-sweep, small enough to step through with on-screen buttons.
func StepperGrid() *Grid {
	return NewGrid([]int{-30, 0, 30}, []int{0, 30, 60, 90, 120, 150})
}
