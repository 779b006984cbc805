// Package controls holds the user-adjustable view parameters and the
// actions that change them.
package controls

import (
	"fmt"

	"github.com/Faultbox/terrain-viewer/internal/engine/lighting"
	"github.com/Faultbox/terrain-viewer/internal/engine/water"
)

// Action is a discrete user command.
type Action int

const (
	ActionNone Action = iota
	ActionWaterUp
	ActionWaterDown
	ActionLightLeft  // Light Y decreases
	ActionLightRight // Light Y increases
	ActionLightUp    // Light X increases
	ActionLightDown  // Light X decreases
	ActionRegenerate
	ActionReset
	ActionWireframe
	ActionScreenshot
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:       "none",
	ActionWaterUp:    "water-up",
	ActionWaterDown:  "water-down",
	ActionLightLeft:  "light-left",
	ActionLightRight: "light-right",
	ActionLightUp:    "light-up",
	ActionLightDown:  "light-down",
	ActionRegenerate: "regenerate",
	ActionReset:      "reset",
	ActionWireframe:  "wireframe",
	ActionScreenshot: "screenshot",
	ActionQuit:       "quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Parameter ranges.
const (
	MinWaterLevel float32 = 0
	MaxWaterLevel float32 = 1
	MinLightX     float32 = -90
	MaxLightX     float32 = 90
	MinLightY     float32 = 0
	MaxLightY     float32 = 360
)

// Params are the view parameters read by the frame planner.
type Params struct {
	WaterLevel float32
	Light      lighting.Angles
}

// DefaultParams returns the reset values.
func DefaultParams() Params {
	return Params{
		WaterLevel: water.DefaultLevel,
		Light:      lighting.DefaultAngles(),
	}
}

// Clamp forces p into the accepted ranges.
func Clamp(p Params) Params {
	return Params{
		WaterLevel: clamp(p.WaterLevel, MinWaterLevel, MaxWaterLevel),
		Light: lighting.Angles{
			X: clamp(p.Light.X, MinLightX, MaxLightX),
			Y: clamp(p.Light.Y, MinLightY, MaxLightY),
		},
	}
}

// Controls applies actions to the view parameters. Like the camera it is
// driven from the render thread only.
type Controls struct {
	params Params

	WaterStep float32
	AngleStep float32 // Degrees
}

// New creates controls starting at initial, clamped.
func New(initial Params) *Controls {
	return &Controls{
		params:    Clamp(initial),
		WaterStep: 0.05,
		AngleStep: 5,
	}
}

// Params returns the current parameters.
func (c *Controls) Params() Params {
	return c.params
}

// Apply performs a parameter action and reports whether the parameters
// changed. Other actions are left to the caller.
func (c *Controls) Apply(a Action) bool {
	before := c.params
	p := c.params

	switch a {
	case ActionWaterUp:
		p.WaterLevel += c.WaterStep
	case ActionWaterDown:
		p.WaterLevel -= c.WaterStep
	case ActionLightLeft:
		p.Light.Y -= c.AngleStep
	case ActionLightRight:
		p.Light.Y += c.AngleStep
	case ActionLightUp:
		p.Light.X += c.AngleStep
	case ActionLightDown:
		p.Light.X -= c.AngleStep
	case ActionReset:
		p = DefaultParams()
	default:
		return false
	}

	c.params = Clamp(p)
	return c.params != before
}

// Status formats the parameters for the window title.
func (c *Controls) Status() string {
	p := c.params
	return fmt.Sprintf("water %.2f | light X %.0f° Y %.0f°", p.WaterLevel, p.Light.X, p.Light.Y)
}

// Progress is what the title shows about background terrain production.
type Progress struct {
	Busy    bool
	Percent int
	Err     error
}

// Title joins the production state and the view status. A running request
// takes precedence over the error left by the previous one.
func Title(status string, p Progress) string {
	switch {
	case p.Busy:
		return fmt.Sprintf("generating %d%% | %s", p.Percent, status)
	case p.Err != nil:
		return fmt.Sprintf("error: %v | %s", p.Err, status)
	}
	return status
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
