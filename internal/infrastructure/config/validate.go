package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/younwookim/runner/internal/domain/entity"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

func invalid(field string, format string, args ...any) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidConfig, field, fmt.Sprintf(format, args...))
}

func nonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(field, "must be finite, got %v", v)
	}
	if v < 0 {
		return invalid(field, "must be >= 0, got %v", v)
	}
	return nil
}

func positive(field string, v float64) error {
	if err := nonNegative(field, v); err != nil {
		return err
	}
	if v == 0 {
		return invalid(field, "must be > 0")
	}
	return nil
}

// Validate rejects negative or non-finite movement tuning
func (c MovementConfig) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"movement.acceleration", c.Acceleration},
		{"movement.maxSpeed", c.MaxSpeed},
		{"movement.brakeDeceleration", c.BrakeDeceleration},
		{"movement.naturalDeceleration", c.NaturalDeceleration},
	} {
		if err := nonNegative(f.name, f.v); err != nil {
			return err
		}
	}
	return nil
}

// Validate rejects negative jump tuning and a cut multiplier outside [0, 1]
func (c JumpConfig) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"jump.force", c.Force},
		{"jump.holdForce", c.HoldForce},
		{"jump.holdDuration", c.HoldDuration},
		{"jump.cutMultiplier", c.CutMultiplier},
	} {
		if err := nonNegative(f.name, f.v); err != nil {
			return err
		}
	}
	if c.CutMultiplier > 1 {
		return invalid("jump.cutMultiplier", "must be within [0, 1], got %v", c.CutMultiplier)
	}
	return nil
}

// Validate checks the probe geometry and resolves its layer names
func (c GroundSensorConfig) Validate() error {
	if math.IsNaN(c.OffsetX) || math.IsNaN(c.OffsetY) || math.IsInf(c.OffsetX, 0) || math.IsInf(c.OffsetY, 0) {
		return invalid("groundSensor.offset", "must be finite")
	}
	if err := nonNegative("groundSensor.radius", c.Radius); err != nil {
		return err
	}
	mask, err := c.Mask()
	if err != nil {
		return invalid("groundSensor.layers", "%v", err)
	}
	if mask == entity.LayerNone {
		return invalid("groundSensor.layers", "must name at least one layer")
	}
	return nil
}

// Mask resolves the configured layer names
func (c GroundSensorConfig) Mask() (entity.LayerMask, error) {
	return entity.ParseLayerMask(c.Layers)
}

// Offset returns the probe offset as a vector
func (c GroundSensorConfig) Offset() entity.Vec2 {
	return entity.Vec2{X: c.OffsetX, Y: c.OffsetY}
}

// Validate checks the player body description
func (c PlayerConfig) Validate() error {
	if err := positive("player.width", c.Width); err != nil {
		return err
	}
	if err := positive("player.height", c.Height); err != nil {
		return err
	}
	if err := positive("player.mass", c.Mass); err != nil {
		return err
	}
	return nonNegative("player.friction", c.Friction)
}

// Validate checks pickup radii and the slow motion parameters
func (c PickupsConfig) Validate() error {
	if err := positive("pickups.doubleJump.radius", c.DoubleJump.Radius); err != nil {
		return err
	}
	if err := positive("pickups.timeSlower.radius", c.TimeSlower.Radius); err != nil {
		return err
	}
	if err := positive("pickups.timeSlower.scale", c.TimeSlower.Scale); err != nil {
		return err
	}
	if c.TimeSlower.Scale > 1 {
		return invalid("pickups.timeSlower.scale", "must be within (0, 1], got %v", c.TimeSlower.Scale)
	}
	return nonNegative("pickups.timeSlower.duration", c.TimeSlower.Duration)
}

// Validate checks the camera follow settings
func (c CameraConfig) Validate() error {
	if err := nonNegative("camera.followSpeed", c.FollowSpeed); err != nil {
		return err
	}
	return nonNegative("camera.smoothTime", c.SmoothTime)
}

// Validate checks the physics world settings
func (c PhysicsSettings) Validate() error {
	if math.IsNaN(c.Gravity) || math.IsInf(c.Gravity, 0) {
		return invalid("physics.gravity", "must be finite")
	}
	if err := nonNegative("physics.gravityScale", c.GravityScale); err != nil {
		return err
	}
	if c.Iterations < 0 {
		return invalid("physics.iterations", "must be >= 0, got %d", c.Iterations)
	}
	return nil
}

// Validate checks the display settings
func (c DisplayConfig) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return invalid("display.screen", "size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.Framerate <= 0 {
		return invalid("display.framerate", "must be > 0, got %d", c.Framerate)
	}
	return positive("display.pixelsPerUnit", c.PixelsPerUnit)
}

// Validate checks every section. Input bindings are resolved by the input
// system, which knows the key names.
func (c *TuningConfig) Validate() error {
	validators := []interface{ Validate() error }{
		c.Display,
		c.Physics,
		c.Movement,
		c.Jump,
		c.GroundSensor,
		c.Player,
		c.Pickups,
		c.Camera,
	}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the stage layout and its tile mapping
func (c *StageConfig) Validate() error {
	if err := positive("stage.tileSize", c.TileSize); err != nil {
		return err
	}
	if len(c.Layers.Collision) == 0 {
		return invalid("stage.layers.collision", "must have at least one row")
	}
	for key, m := range c.TileMapping {
		if len([]rune(key)) != 1 {
			return invalid("stage.tileMapping", "key %q must be a single character", key)
		}
		switch m.Type {
		case "ground", "danger", "finish", "empty":
		default:
			return invalid("stage.tileMapping", "unknown tile type %q for %q", m.Type, key)
		}
	}
	return nil
}
