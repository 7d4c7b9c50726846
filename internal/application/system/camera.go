package system

import (
	"fmt"
	"math"

	"github.com/younwookim/runner/internal/domain/entity"
	"github.com/younwookim/runner/internal/infrastructure/config"
)

// SpeedSource exposes the horizontal speed cap of the followed body
type SpeedSource interface {
	MaxSpeed() float64
}

// CameraFollow eases a camera position toward its target every frame
type CameraFollow struct {
	cfg   config.CameraConfig
	speed SpeedSource

	pos        entity.Vec2
	fixedY     float64
	smoothVel  entity.Vec2
	lastTarget float64
}

// NewCameraFollow places the camera at start. The vertical position is
// pinned to start.Y unless vertical follow is enabled.
func NewCameraFollow(cfg config.CameraConfig, start, target entity.Vec2, speed SpeedSource) (*CameraFollow, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.UsePlayerSpeed && speed == nil {
		return nil, fmt.Errorf("%w: camera speed source", ErrMissingCollaborator)
	}
	return &CameraFollow{
		cfg:        cfg,
		speed:      speed,
		pos:        start,
		fixedY:     start.Y,
		lastTarget: target.X,
	}, nil
}

// Position returns the camera center
func (c *CameraFollow) Position() entity.Vec2 {
	return c.pos
}

// Update moves the camera for a frame of dt seconds and returns its position
func (c *CameraFollow) Update(target entity.Vec2, dt float64) entity.Vec2 {
	if dt <= 0 {
		return c.pos
	}
	desired := c.desired(target)

	if c.cfg.UseSmoothDamping {
		c.pos.X = entity.SmoothDamp(c.pos.X, desired.X, &c.smoothVel.X, c.cfg.SmoothTime, dt)
		c.pos.Y = entity.SmoothDamp(c.pos.Y, desired.Y, &c.smoothVel.Y, c.cfg.SmoothTime, dt)
		c.lastTarget = target.X
		return c.pos
	}

	c.pos = entity.MoveTowardsVec(c.pos, desired, c.followSpeed(target, dt)*dt)
	return c.pos
}

func (c *CameraFollow) desired(target entity.Vec2) entity.Vec2 {
	d := c.pos
	if c.cfg.FollowHorizontally {
		d.X = target.X + c.cfg.OffsetX
	}
	if c.cfg.FollowVertically {
		d.Y = target.Y + c.cfg.OffsetY
	} else {
		d.Y = c.fixedY
	}
	return d
}

// followSpeed keeps up with the target: never slower than its observed
// speed or its speed cap.
func (c *CameraFollow) followSpeed(target entity.Vec2, dt float64) float64 {
	if !c.cfg.UsePlayerSpeed {
		return c.cfg.FollowSpeed
	}
	observed := math.Abs(target.X-c.lastTarget) / dt
	c.lastTarget = target.X
	return math.Max(observed, c.speed.MaxSpeed())
}
