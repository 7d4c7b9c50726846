package entity

// Body is an in-memory rigid body state: position and linear velocity.
// The physics package owns the real bodies during play; this one backs
// headless tools and tests that integrate motion themselves.
type Body struct {
	Pos Vec2
	Vel Vec2
}

// NewBody creates a body at rest at the given position
func NewBody(pos Vec2) *Body {
	return &Body{Pos: pos}
}

// Position returns the body origin
func (b *Body) Position() Vec2 {
	return b.Pos
}

// Velocity returns the linear velocity
func (b *Body) Velocity() Vec2 {
	return b.Vel
}

// SetVelocity replaces the linear velocity
func (b *Body) SetVelocity(v Vec2) {
	b.Vel = v
}

// Integrate applies gravity to velocity and velocity to position (semi-implicit Euler).
func (b *Body) Integrate(gravity Vec2, dt float64) {
	b.Vel = b.Vel.Add(gravity.Scale(dt))
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// InputIntent is one frame of edge-resolved input.
// Edges are true only on the frame the transition happened; levels are sustained.
type InputIntent struct {
	MoveAxis      float64 // [-1, 1]
	JumpPressed   bool
	JumpHeld      bool
	JumpReleased  bool
	BrakePressed  bool
	BrakeReleased bool
	Braking       bool // level derived from brake edges
}

// JumpState is the runtime bookkeeping of the jump state machine
type JumpState struct {
	IsJumping      bool
	IsButtonHeld   bool
	HoldElapsed    float64 // seconds since launch
	WasGrounded    bool    // grounded value of the previous frame
	LandingPending bool    // grounded edge seen while still rising
}
