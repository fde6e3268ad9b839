// Package steer turns rotation controls into a heading frame for the snake head.
package steer

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/shnek/internal/core"
)

// maxStep caps the rotation applied in a single tick (radians).
const maxStep = 10.0

var (
	initialForward = r3.Vec{X: 1}
	initialUp      = r3.Vec{Y: 1}
)

// Orientation is an orthonormal heading frame. Rotation speed ramps up the
// longer any rotation control is held and drops back when all are released.
type Orientation struct {
	forward      r3.Vec
	up           r3.Vec
	timeRotating float64
}

// New creates an orientation facing +X with +Y up.
func New() *Orientation {
	o := &Orientation{}
	o.Reset()
	return o
}

// Reset restores the initial frame and clears the rotation ramp.
func (o *Orientation) Reset() {
	o.forward = initialForward
	o.up = initialUp
	o.timeRotating = 0
}

// Forward returns the unit heading.
func (o *Orientation) Forward() r3.Vec { return o.forward }

// Up returns the unit up vector.
func (o *Orientation) Up() r3.Vec { return o.up }

// Right returns forward x up.
func (o *Orientation) Right() r3.Vec { return r3.Cross(o.forward, o.up) }

// Rotate applies the held rotation controls for a tick of length dt.
func (o *Orientation) Rotate(in core.InputFrame, dt float64) {
	step := math.Min((o.timeRotating*0.5+0.5)*dt, maxStep)

	forward, up, right := o.forward, o.up, o.Right()

	if in.Has(core.ActionRollRight) {
		o.turn(step, forward)
	}
	if in.Has(core.ActionRollLeft) {
		o.turn(-step, forward)
	}
	if in.Has(core.ActionYawLeft) {
		o.turn(step, up)
	}
	if in.Has(core.ActionYawRight) {
		o.turn(-step, up)
	}
	if in.Has(core.ActionPitchDown) {
		o.turn(-step, right)
	}
	if in.Has(core.ActionPitchUp) {
		o.turn(step, right)
	}

	if in.Rotating() {
		o.timeRotating += dt
	} else {
		o.timeRotating = 0
	}

	o.orthonormalize()
}

func (o *Orientation) turn(angle float64, axis r3.Vec) {
	rot := r3.NewRotation(angle, axis)
	o.forward = rot.Rotate(o.forward)
	o.up = rot.Rotate(o.up)
}

// orthonormalize removes drift accumulated by repeated rotations.
func (o *Orientation) orthonormalize() {
	o.forward = core.Normalize(o.forward, initialForward)
	right := core.Normalize(r3.Cross(o.forward, o.up), r3.Vec{Z: 1})
	o.up = r3.Cross(right, o.forward)
}
