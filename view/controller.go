// Package view accumulates zoom and orbit rotation from raw pointer and
// scroll input.
//
// The controller does not depend on any input system; the caller samples the
// pointer once per frame and passes the result to Update.
package view

const (
	// ThresholdX and ThresholdY are the pointer travel, in surface units,
	// required before a rotation step is committed on that axis.
	ThresholdX float32 = 10
	ThresholdY float32 = 10

	// StepX and StepY are the rotation increments per committed step. The X
	// axis moves in radians-scale steps, the Y axis in whole units, and the
	// signs are opposite: dragging left raises X, dragging up lowers Y.
	StepX float32 = 0.05
	StepY float32 = 1.0

	ScrollScale float32 = 10
)

// Input is one frame's worth of pointer and scroll state.
type Input struct {
	PointerX, PointerY float32
	HasPointer         bool
	ButtonDown         bool

	Scroll    float32
	HasScroll bool
}

// Controller holds the accumulated view state. The zero value is ready.
type Controller struct {
	zoom      float32
	rotationX float32
	rotationY float32

	// Position at which the last step was committed on each axis, not the
	// most recent pointer position. It is not reset on release, so a new
	// drag measures from where the previous one last stepped.
	lastX float32
	lastY float32
}

// Update applies one frame of input.
func (c *Controller) Update(in Input) {
	if in.HasScroll {
		c.zoom += in.Scroll / ScrollScale
	}
	if !in.HasPointer || !in.ButtonDown {
		return
	}

	x, y := in.PointerX, in.PointerY
	if abs(c.lastX-x) > ThresholdX {
		if x < c.lastX {
			c.rotationX += StepX
		} else if x > c.lastX {
			c.rotationX -= StepX
		}
		c.lastX = x
	}
	if abs(c.lastY-y) > ThresholdY {
		if y < c.lastY {
			c.rotationY -= StepY
		} else if y > c.lastY {
			c.rotationY += StepY
		}
		c.lastY = y
	}
}

func (c *Controller) Zoom() float32 { return c.zoom }

// Rotate returns the accumulated rotation on the X and Y axes.
func (c *Controller) Rotate() (x, y float32) { return c.rotationX, c.rotationY }

// LastCommitted returns the pointer position of the last committed steps.
func (c *Controller) LastCommitted() (x, y float32) { return c.lastX, c.lastY }

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
