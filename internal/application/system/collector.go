package system

import (
	"fmt"
	"log"

	"github.com/younwookim/runner/internal/domain/entity"
	"github.com/younwookim/runner/internal/ecs"
	"github.com/younwookim/runner/internal/infrastructure/config"
)

// CapabilityGranter accepts capabilities handed out by pickups
type CapabilityGranter interface {
	GrantDoubleJump()
}

// SlowMotion is the time scale service pickups can drive
type SlowMotion interface {
	SlowTime(scale, duration float64) error
}

// PickupRemover drops the physics trigger of a collected pickup
type PickupRemover interface {
	RemovePickup(id entity.EntityID)
}

// Collector applies pickup effects when the player touches a pickup
type Collector struct {
	world   *ecs.World
	cfg     config.PickupsConfig
	granter CapabilityGranter
	slow    SlowMotion
	remover PickupRemover

	collected map[ecs.PickupKind]int
}

// NewCollector wires the pickup effects to their targets
func NewCollector(world *ecs.World, cfg config.PickupsConfig, granter CapabilityGranter, slow SlowMotion, remover PickupRemover) (*Collector, error) {
	switch {
	case world == nil:
		return nil, fmt.Errorf("%w: ecs world", ErrMissingCollaborator)
	case granter == nil:
		return nil, fmt.Errorf("%w: capability granter", ErrMissingCollaborator)
	case slow == nil:
		return nil, fmt.Errorf("%w: slow motion", ErrMissingCollaborator)
	case remover == nil:
		return nil, fmt.Errorf("%w: pickup remover", ErrMissingCollaborator)
	}
	return &Collector{
		world:     world,
		cfg:       cfg,
		granter:   granter,
		slow:      slow,
		remover:   remover,
		collected: make(map[ecs.PickupKind]int),
	}, nil
}

// Collect applies and destroys pickup id. It reports false when the pickup
// is already gone, which happens when one step reports the same contact twice.
func (c *Collector) Collect(id entity.EntityID) (bool, error) {
	pickup, ok := c.world.Pickup[id]
	if !ok {
		return false, nil
	}

	switch pickup.Kind {
	case ecs.PickupDoubleJump:
		c.granter.GrantDoubleJump()
	case ecs.PickupTimeSlower:
		if err := c.slow.SlowTime(c.cfg.TimeSlower.Scale, c.cfg.TimeSlower.Duration); err != nil {
			return false, fmt.Errorf("failed to apply %s: %w", pickup.Kind, err)
		}
	default:
		return false, fmt.Errorf("unknown pickup kind %d", pickup.Kind)
	}

	log.Printf("collector: picked up %s (entity %d)", pickup.Kind, id)
	c.world.DestroyEntity(id)
	c.remover.RemovePickup(id)
	c.collected[pickup.Kind]++
	return true, nil
}

// Collected returns how many pickups of kind were collected
func (c *Collector) Collected(kind ecs.PickupKind) int {
	return c.collected[kind]
}
