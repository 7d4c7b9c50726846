package system

import (
	"math"

	"github.com/younwookim/runner/internal/domain/entity"
)

// InputLatch collects input events between ticks. Event handlers write into
// it; the controller reads it once per tick through Consume, which clears the
// edges and keeps the levels.
type InputLatch struct {
	axis float64

	jumpHeld     bool
	jumpPressed  bool
	jumpReleased bool

	braking       bool
	brakePressed  bool
	brakeReleased bool
}

// SetMove sets the horizontal axis, clamped to [-1, 1]
func (l *InputLatch) SetMove(axis float64) {
	if math.IsNaN(axis) {
		axis = 0
	}
	l.axis = entity.Clamp(axis, -1, 1)
}

// PressJump records a jump press edge. Repeated presses without a release
// are key repeat and are ignored.
func (l *InputLatch) PressJump() {
	if !l.jumpHeld {
		l.jumpPressed = true
	}
	l.jumpHeld = true
}

// ReleaseJump records a jump release edge
func (l *InputLatch) ReleaseJump() {
	if l.jumpHeld {
		l.jumpReleased = true
	}
	l.jumpHeld = false
}

// PressBrake records a brake press edge
func (l *InputLatch) PressBrake() {
	if !l.braking {
		l.brakePressed = true
	}
	l.braking = true
}

// ReleaseBrake records a brake release edge
func (l *InputLatch) ReleaseBrake() {
	if l.braking {
		l.brakeReleased = true
	}
	l.braking = false
}

// Peek returns the intent Consume would return without clearing anything
func (l *InputLatch) Peek() entity.InputIntent {
	return entity.InputIntent{
		MoveAxis:      l.axis,
		JumpPressed:   l.jumpPressed,
		JumpHeld:      l.jumpHeld,
		JumpReleased:  l.jumpReleased,
		BrakePressed:  l.brakePressed,
		BrakeReleased: l.brakeReleased,
		Braking:       l.braking || l.brakePressed,
	}
}

// Consume returns the intent for this tick and clears the edges.
// A brake tapped and released within one tick still brakes for that tick.
func (l *InputLatch) Consume() entity.InputIntent {
	in := l.Peek()
	l.jumpPressed = false
	l.jumpReleased = false
	l.brakePressed = false
	l.brakeReleased = false
	return in
}

// Load overwrites the latch so the next Consume returns in. Replays use it
// to feed recorded intents back through the controller.
func (l *InputLatch) Load(in entity.InputIntent) {
	l.SetMove(in.MoveAxis)
	l.jumpHeld = in.JumpHeld
	l.jumpPressed = in.JumpPressed
	l.jumpReleased = in.JumpReleased
	l.brakePressed = in.BrakePressed
	l.brakeReleased = in.BrakeReleased
	l.braking = in.Braking && !in.BrakeReleased
}

// Reset drops all edges and levels
func (l *InputLatch) Reset() {
	*l = InputLatch{}
}
