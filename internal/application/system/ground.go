package system

import (
	"errors"
	"fmt"

	"github.com/younwookim/runner/internal/domain/entity"
	"github.com/younwookim/runner/internal/infrastructure/config"
)

// ErrProbeUnavailable means the ground query could not be answered. The
// grounded state is left untouched rather than guessed.
var ErrProbeUnavailable = errors.New("ground probe unavailable")

// Prober answers circle overlap queries against collision layers
type Prober interface {
	OverlapCircle(center entity.Vec2, radius float64, mask entity.LayerMask) (bool, error)
}

// GroundSensor probes below the body and remembers the previous answer
type GroundSensor struct {
	offset entity.Vec2
	radius float64
	mask   entity.LayerMask
	prober Prober

	grounded    bool
	wasGrounded bool
}

// NewGroundSensor validates cfg and binds the overlap query
func NewGroundSensor(cfg config.GroundSensorConfig, prober Prober) (*GroundSensor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if prober == nil {
		return nil, fmt.Errorf("%w: ground prober", ErrMissingCollaborator)
	}
	mask, err := cfg.Mask()
	if err != nil {
		return nil, err
	}
	return &GroundSensor{
		offset: cfg.Offset(),
		radius: cfg.Radius,
		mask:   mask,
		prober: prober,
	}, nil
}

// Reconfigure replaces the probe shape and layers, keeping the prober and
// the grounded history. On error nothing changes.
func (g *GroundSensor) Reconfigure(cfg config.GroundSensorConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	mask, err := cfg.Mask()
	if err != nil {
		return err
	}
	g.offset = cfg.Offset()
	g.radius = cfg.Radius
	g.mask = mask
	return nil
}

// Probe runs the overlap query for a body at position
func (g *GroundSensor) Probe(position entity.Vec2) (bool, error) {
	hit, err := g.prober.OverlapCircle(position.Add(g.offset), g.radius, g.mask)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrProbeUnavailable, err)
	}
	g.wasGrounded = g.grounded
	g.grounded = hit
	return hit, nil
}

// Grounded returns the result of the last successful probe
func (g *GroundSensor) Grounded() bool {
	return g.grounded
}

// WasGrounded returns the result of the probe before that
func (g *GroundSensor) WasGrounded() bool {
	return g.wasGrounded
}

// Geometry returns the probe circle for a body at position
func (g *GroundSensor) Geometry(position entity.Vec2) (center entity.Vec2, radius float64) {
	return position.Add(g.offset), g.radius
}
