package ecs

import (
	"fmt"

	"github.com/younwookim/runner/internal/domain/entity"
	"github.com/younwookim/runner/internal/infrastructure/config"
)

// TriggerSink receives the physics trigger for each spawned pickup
type TriggerSink interface {
	AddPickup(id entity.EntityID, pos entity.Vec2, radius float64) error
}

// SpawnPickups creates pickup entities for the stage spawns and registers
// their triggers. Radii come from the tuning, keyed by kind.
func SpawnPickups(w *World, spawns []entity.PickupSpawn, cfg config.PickupsConfig, sink TriggerSink) error {
	for _, sp := range spawns {
		kind, err := ParsePickupKind(sp.Kind)
		if err != nil {
			return err
		}
		radius := PickupRadius(kind, cfg)

		id := w.CreatePickup(kind, sp.Pos, radius)
		if sink == nil {
			continue
		}
		if err := sink.AddPickup(id, sp.Pos, radius); err != nil {
			w.DestroyEntity(id)
			return fmt.Errorf("failed to spawn %s pickup: %w", kind, err)
		}
	}
	return nil
}

// PickupRadius returns the trigger radius configured for kind
func PickupRadius(kind PickupKind, cfg config.PickupsConfig) float64 {
	if kind == PickupTimeSlower {
		return cfg.TimeSlower.Radius
	}
	return cfg.DoubleJump.Radius
}
