// Package camera provides the orbital camera used to inspect the terrain.
package camera

import "math"

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary   Button = iota // Rotates while dragged
	ButtonMiddle                  // Records the anchor only
	ButtonSecondary               // Resets the view
)

// Default view.
const (
	DefaultRotationX float32 = 45
	DefaultRotationY float32 = 45
	DefaultZoom      float32 = 2.5
)

// State is a snapshot of the camera for one frame. Rotations are in degrees.
type State struct {
	RotationX float32 // Pitch, clamped to [MinPitch, MaxPitch]
	RotationY float32 // Yaw, unbounded
	Zoom      float32 // Distance from the origin
}

// DefaultState returns the reset view.
func DefaultState() State {
	return State{
		RotationX: DefaultRotationX,
		RotationY: DefaultRotationY,
		Zoom:      DefaultZoom,
	}
}

// Controller maps pointer events to an orbital camera around the origin.
// It is driven from the render thread only and does no locking.
type Controller struct {
	state State

	// Constraints
	MinPitch float32
	MaxPitch float32
	MinZoom  float32
	MaxZoom  float32

	// Sensitivity
	DragSensitivity float32 // Degrees per pixel
	ZoomFactor      float32 // Zoom multiplier per wheel tick

	dragging     bool
	lastX, lastY int32
}

// NewController creates a controller at the default view.
func NewController() *Controller {
	return &Controller{
		state:           DefaultState(),
		MinPitch:        -90,
		MaxPitch:        90,
		MinZoom:         0.5,
		MaxZoom:         10,
		DragSensitivity: 0.5,
		ZoomFactor:      0.9,
	}
}

// State returns a copy of the current camera state.
func (c *Controller) State() State {
	return c.state
}

// Press records the pointer anchor for any button. The secondary button also
// resets the view; a drag already in progress continues from the reset view.
func (c *Controller) Press(button Button, x, y int32) {
	c.lastX, c.lastY = x, y
	switch button {
	case ButtonPrimary:
		c.dragging = true
	case ButtonSecondary:
		c.Reset()
	}
}

// Release ends a primary drag.
func (c *Controller) Release(button Button) {
	if button == ButtonPrimary {
		c.dragging = false
	}
}

// Motion rotates the camera by the pointer delta while the primary button is
// held, then moves the anchor to (x, y).
func (c *Controller) Motion(x, y int32) {
	if !c.dragging {
		return
	}
	dx := float32(x - c.lastX)
	dy := float32(y - c.lastY)

	c.state.RotationY += dx * c.DragSensitivity
	c.state.RotationX = clamp(c.state.RotationX+dy*c.DragSensitivity, c.MinPitch, c.MaxPitch)

	c.lastX, c.lastY = x, y
}

// Wheel zooms by ZoomFactor per tick. Positive ticks zoom in, negative out.
func (c *Controller) Wheel(ticks float32) {
	factor := float32(math.Pow(float64(c.ZoomFactor), float64(ticks)))
	c.state.Zoom = clamp(c.state.Zoom*factor, c.MinZoom, c.MaxZoom)
}

// Reset restores the default view without touching the drag anchor.
func (c *Controller) Reset() {
	c.state = DefaultState()
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
