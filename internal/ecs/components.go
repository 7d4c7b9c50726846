package ecs

import (
	"fmt"
	"image/color"

	"github.com/younwookim/runner/internal/domain/entity"
)

// Position is an entity's position in world units
type Position entity.Vec2

// Vec returns the position as a vector
func (p Position) Vec() entity.Vec2 {
	return entity.Vec2(p)
}

// PickupKind names what a collectible does when touched
type PickupKind int

const (
	PickupDoubleJump PickupKind = iota
	PickupTimeSlower
)

// String returns the stage-file name of the kind
func (k PickupKind) String() string {
	switch k {
	case PickupDoubleJump:
		return "double_jump"
	case PickupTimeSlower:
		return "time_slower"
	default:
		return "unknown"
	}
}

// ParsePickupKind resolves a stage-file pickup name
func ParsePickupKind(name string) (PickupKind, error) {
	switch name {
	case "double_jump":
		return PickupDoubleJump, nil
	case "time_slower":
		return PickupTimeSlower, nil
	default:
		return 0, fmt.Errorf("unknown pickup type %q", name)
	}
}

// Pickup is a collectible trigger
type Pickup struct {
	Kind   PickupKind
	Radius float64 // world units
}

// PickupColors maps pickup kinds to their debug colors
var PickupColors = map[PickupKind]color.RGBA{
	PickupDoubleJump: {80, 200, 255, 255},
	PickupTimeSlower: {255, 200, 60, 255},
}
