package system

import (
	"errors"
	"fmt"
	"math"

	"github.com/younwookim/runner/internal/domain/entity"
	"github.com/younwookim/runner/internal/infrastructure/config"
)

// ErrMissingCollaborator is returned when a required dependency is nil
var ErrMissingCollaborator = errors.New("missing collaborator")

// Body is read and written by the controller once per tick
type Body interface {
	Position() entity.Vec2
	Velocity() entity.Vec2
	SetVelocity(v entity.Vec2)
}

// TimeSource converts real frame time into game time
type TimeSource interface {
	Scale(realDt float64) float64
}

// ControllerConfig groups the tuning the controller needs
type ControllerConfig struct {
	Movement     config.MovementConfig
	Jump         config.JumpConfig
	GroundSensor config.GroundSensorConfig
}

// ControllerConfigFrom picks the controller sections out of the tuning file
func ControllerConfigFrom(t *config.TuningConfig) ControllerConfig {
	return ControllerConfig{
		Movement:     t.Movement,
		Jump:         t.Jump,
		GroundSensor: t.GroundSensor,
	}
}

// MovementController drives a body from latched input. Each Step runs the
// ground probe, then the horizontal model, then the jump machine, and writes
// both velocity components back in one call.
type MovementController struct {
	movement config.MovementConfig
	body     Body
	sensor   *GroundSensor
	jump     *JumpMachine
	latch    InputLatch

	lastVy     float64
	doubleJump bool
}

// NewMovementController validates cfg and wires the collaborators
func NewMovementController(cfg ControllerConfig, body Body, prober Prober) (*MovementController, error) {
	if err := cfg.Movement.Validate(); err != nil {
		return nil, err
	}
	if body == nil {
		return nil, fmt.Errorf("%w: body", ErrMissingCollaborator)
	}
	sensor, err := NewGroundSensor(cfg.GroundSensor, prober)
	if err != nil {
		return nil, err
	}
	jump, err := NewJumpMachine(cfg.Jump)
	if err != nil {
		return nil, err
	}

	return &MovementController{
		movement: cfg.Movement,
		body:     body,
		sensor:   sensor,
		jump:     jump,
		lastVy:   body.Velocity().Y,
	}, nil
}

// Reconfigure applies new tuning to the running controller. Jump state,
// grounded history, latched input and granted capabilities are kept, so a
// hot reload mid-jump does not end the jump. On error nothing changes.
func (c *MovementController) Reconfigure(cfg ControllerConfig) error {
	if err := cfg.Movement.Validate(); err != nil {
		return err
	}
	if err := cfg.Jump.Validate(); err != nil {
		return err
	}
	if err := c.sensor.Reconfigure(cfg.GroundSensor); err != nil {
		return err
	}
	if err := c.jump.Reconfigure(cfg.Jump); err != nil {
		return err
	}
	c.movement = cfg.Movement
	return nil
}

// Latch returns the input latch event handlers should write into
func (c *MovementController) Latch() *InputLatch {
	return &c.latch
}

// Step runs one frame of dt seconds of game time
func (c *MovementController) Step(dt float64) error {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("invalid frame time %v", dt)
	}
	in := c.latch.Consume()

	grounded, err := c.sensor.Probe(c.body.Position())
	if err != nil {
		return fmt.Errorf("failed to probe ground: %w", err)
	}

	vel := c.body.Velocity()
	vx := StepHorizontal(vel.X, in.MoveAxis, in.Braking, grounded, dt, c.movement)
	vy := c.jump.Step(vel.Y, grounded, in, dt)

	c.body.SetVelocity(entity.Vec2{X: vx, Y: vy})
	c.lastVy = vy
	return nil
}

// Update scales realDt through clock and steps, so slow motion stretches
// both jump arcs and acceleration.
func (c *MovementController) Update(clock TimeSource, realDt float64) error {
	if clock == nil {
		return fmt.Errorf("%w: time source", ErrMissingCollaborator)
	}
	return c.Step(clock.Scale(realDt))
}

// MaxSpeed returns the horizontal speed cap
func (c *MovementController) MaxSpeed() float64 {
	return c.movement.MaxSpeed
}

// Grounded returns the last probe result
func (c *MovementController) Grounded() bool {
	return c.sensor.Grounded()
}

// ProbeGeometry returns the ground probe circle at the body's position
func (c *MovementController) ProbeGeometry() (center entity.Vec2, radius float64) {
	return c.sensor.Geometry(c.body.Position())
}

// JumpState returns a copy of the jump bookkeeping
func (c *MovementController) JumpState() entity.JumpState {
	return c.jump.State()
}

// Phase returns the jump phase as of the last step
func (c *MovementController) Phase() JumpPhase {
	return c.jump.Phase(c.lastVy)
}

// GrantDoubleJump records the double jump capability. It has no effect on
// the jump machine.
func (c *MovementController) GrantDoubleJump() {
	c.doubleJump = true
}

// DoubleJumpGranted reports whether a double jump was granted
func (c *MovementController) DoubleJumpGranted() bool {
	return c.doubleJump
}
