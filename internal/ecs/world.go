package ecs

import (
	"sort"

	"github.com/younwookim/runner/internal/domain/entity"
)

// EntityID is a unique identifier for an entity (never recycled).
// It is shared with the physics layer so triggers can name their owner.
type EntityID = entity.EntityID

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID

	// Components
	Position map[EntityID]Position
	Pickup   map[EntityID]Pickup

	// Tags
	IsPlayer map[EntityID]struct{}

	// Singleton references
	PlayerID EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:   1, // 0 is "nil"
		Position: make(map[EntityID]Position),
		Pickup:   make(map[EntityID]Pickup),
		IsPlayer: make(map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Position, id)
	delete(w.Pickup, id)
	delete(w.IsPlayer, id)
	if w.PlayerID == id {
		w.PlayerID = 0
	}
}

// Exists checks if an entity has Position component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Position[id]
	return ok
}

// CreatePlayer creates the player entity
func (w *World) CreatePlayer(pos entity.Vec2) EntityID {
	id := w.NewEntity()

	w.Position[id] = Position(pos)
	w.IsPlayer[id] = struct{}{}

	w.PlayerID = id
	return id
}

// CreatePickup creates a collectible entity
func (w *World) CreatePickup(kind PickupKind, pos entity.Vec2, radius float64) EntityID {
	id := w.NewEntity()

	w.Position[id] = Position(pos)
	w.Pickup[id] = Pickup{Kind: kind, Radius: radius}

	return id
}

// GetPlayerPosition returns the player's position
func (w *World) GetPlayerPosition() Position {
	return w.Position[w.PlayerID]
}

// SetPlayerPosition mirrors the physics body position into the world
func (w *World) SetPlayerPosition(pos entity.Vec2) {
	if w.PlayerID == 0 {
		return
	}
	w.Position[w.PlayerID] = Position(pos)
}

// CountPickups returns the number of live pickups
func (w *World) CountPickups() int {
	return len(w.Pickup)
}

// PickupIDs returns live pickup IDs in creation order
func (w *World) PickupIDs() []EntityID {
	ids := make([]EntityID, 0, len(w.Pickup))
	for id := range w.Pickup {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
