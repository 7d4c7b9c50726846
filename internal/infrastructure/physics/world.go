package physics

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/younwookim/runner/internal/domain/entity"
	"github.com/younwookim/runner/internal/infrastructure/config"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeGround
	collisionTypeDanger
	collisionTypeFinish
	collisionTypePickup
)

// ErrSpaceUnavailable is returned by queries against a closed or missing space
var ErrSpaceUnavailable = errors.New("physics space unavailable")

// ContactKind classifies a player contact reported after a step
type ContactKind int

const (
	ContactDanger ContactKind = iota
	ContactFinish
	ContactPickup
)

// String returns the contact kind name
func (k ContactKind) String() string {
	switch k {
	case ContactDanger:
		return "danger"
	case ContactFinish:
		return "finish"
	case ContactPickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// Contact is a player collision that began during the last step
type Contact struct {
	Kind   ContactKind
	Pickup entity.EntityID // set for ContactPickup
}

// World wraps a chipmunk space built from a stage
type World struct {
	space *cp.Space
	stage *entity.Stage

	player  *Body
	pickups map[entity.EntityID]*cp.Shape
	owners  map[*cp.Shape]entity.EntityID

	contacts []Contact
}

// NewWorld builds static collision geometry for the stage
func NewWorld(stage *entity.Stage, settings config.PhysicsSettings) (*World, error) {
	if stage == nil {
		return nil, fmt.Errorf("failed to create physics world: nil stage")
	}

	space := cp.NewSpace()
	if settings.Iterations > 0 {
		space.Iterations = uint(settings.Iterations)
	}
	space.SetGravity(cp.Vector{X: 0, Y: settings.Gravity * settings.GravityScale})

	w := &World{
		space:   space,
		stage:   stage,
		pickups: make(map[entity.EntityID]*cp.Shape),
		owners:  make(map[*cp.Shape]entity.EntityID),
	}
	w.buildTiles()
	w.installHandlers()
	return w, nil
}

// buildTiles merges horizontal runs of equal tiles into single boxes so the
// player does not catch on seams between neighbouring tiles.
func (w *World) buildTiles() {
	s := w.stage
	for ty := 0; ty < s.Height; ty++ {
		for tx := 0; tx < s.Width; {
			tile := s.GetTile(tx, ty)
			layer := entity.LayerForTile(tile.Type)
			if layer == entity.LayerNone {
				tx++
				continue
			}

			end := tx + 1
			for end < s.Width && s.GetTile(end, ty) == tile {
				end++
			}

			minX, minY, _, maxY := s.TileBounds(tx, ty)
			maxX, _, _, _ := s.TileBounds(end, ty)
			shape := cp.NewBox2(w.space.StaticBody, cp.BB{L: minX, B: minY, R: maxX, T: maxY}, 0)
			shape.SetFriction(1)
			shape.SetFilter(cp.ShapeFilter{Group: cp.NO_GROUP, Categories: uint(layer), Mask: cp.ALL_CATEGORIES})
			shape.SetCollisionType(collisionTypeForLayer(layer))
			if !tile.Solid {
				shape.SetSensor(true)
			}
			w.space.AddShape(shape)

			tx = end
		}
	}
}

func collisionTypeForLayer(layer entity.LayerMask) cp.CollisionType {
	switch layer {
	case entity.LayerDanger:
		return collisionTypeDanger
	case entity.LayerFinish:
		return collisionTypeFinish
	default:
		return collisionTypeGround
	}
}

func (w *World) installHandlers() {
	report := func(kind ContactKind) func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		return func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			w.contacts = append(w.contacts, Contact{Kind: kind})
			return true
		}
	}

	w.space.NewCollisionHandler(collisionTypePlayer, collisionTypeDanger).BeginFunc = report(ContactDanger)
	w.space.NewCollisionHandler(collisionTypePlayer, collisionTypeFinish).BeginFunc = report(ContactFinish)

	pickup := w.space.NewCollisionHandler(collisionTypePlayer, collisionTypePickup)
	pickup.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		a, b := arb.Shapes()
		id, ok := w.owners[a]
		if !ok {
			id, ok = w.owners[b]
		}
		if ok {
			w.contacts = append(w.contacts, Contact{Kind: ContactPickup, Pickup: id})
		}
		return false
	}
}

// AddPlayer creates the dynamic player body at pos. Rotation is locked.
func (w *World) AddPlayer(pos entity.Vec2, cfg config.PlayerConfig) (*Body, error) {
	if w.space == nil {
		return nil, ErrSpaceUnavailable
	}
	if w.player != nil {
		return nil, fmt.Errorf("failed to add player: already present")
	}

	body := cp.NewBody(cfg.Mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	shape := cp.NewBox(body, cfg.Width, cfg.Height, 0)
	shape.SetFriction(cfg.Friction)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypePlayer)
	shape.SetFilter(cp.ShapeFilter{Group: cp.NO_GROUP, Categories: uint(entity.LayerPlayer), Mask: cp.ALL_CATEGORIES})

	w.space.AddBody(body)
	w.space.AddShape(shape)

	w.player = &Body{body: body}
	return w.player, nil
}

// Player returns the player body, or nil before AddPlayer
func (w *World) Player() *Body {
	return w.player
}

// AddPickup places a circular trigger owned by id
func (w *World) AddPickup(id entity.EntityID, pos entity.Vec2, radius float64) error {
	if w.space == nil {
		return ErrSpaceUnavailable
	}
	if _, exists := w.pickups[id]; exists {
		return fmt.Errorf("failed to add pickup %d: already present", id)
	}

	shape := cp.NewCircle(w.space.StaticBody, radius, cp.Vector{X: pos.X, Y: pos.Y})
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypePickup)
	shape.SetFilter(cp.ShapeFilter{Group: cp.NO_GROUP, Categories: uint(entity.LayerPickup), Mask: cp.ALL_CATEGORIES})
	w.space.AddShape(shape)

	w.pickups[id] = shape
	w.owners[shape] = id
	return nil
}

// RemovePickup removes the trigger owned by id. Unknown ids are ignored.
func (w *World) RemovePickup(id entity.EntityID) {
	shape, ok := w.pickups[id]
	if !ok || w.space == nil {
		return
	}
	w.space.RemoveShape(shape)
	delete(w.pickups, id)
	delete(w.owners, shape)
}

// PickupCount returns the number of live pickup triggers
func (w *World) PickupCount() int {
	return len(w.pickups)
}

// OverlapCircle reports whether any non-sensor shape in mask lies within
// radius of center.
func (w *World) OverlapCircle(center entity.Vec2, radius float64, mask entity.LayerMask) (bool, error) {
	if w == nil || w.space == nil {
		return false, ErrSpaceUnavailable
	}
	filter := cp.ShapeFilter{Group: cp.NO_GROUP, Categories: cp.ALL_CATEGORIES, Mask: uint(mask)}
	info := w.space.PointQueryNearest(cp.Vector{X: center.X, Y: center.Y}, radius, filter)
	return info != nil && info.Shape != nil, nil
}

// Step advances the space by dt seconds. Contacts from the step are
// collected until the next call to Contacts.
func (w *World) Step(dt float64) error {
	if w.space == nil {
		return ErrSpaceUnavailable
	}
	if dt <= 0 {
		return nil
	}
	w.space.Step(dt)
	return nil
}

// Contacts returns and clears the contacts gathered since the last call
func (w *World) Contacts() []Contact {
	out := w.contacts
	w.contacts = nil
	return out
}

// Close releases the space. Further queries return ErrSpaceUnavailable.
func (w *World) Close() {
	if w.space == nil {
		return
	}
	log.Printf("physics: closing space for stage %q", w.stage.Name)
	w.space = nil
	w.player = nil
	w.pickups = map[entity.EntityID]*cp.Shape{}
	w.owners = map[*cp.Shape]entity.EntityID{}
}

// Body is the player's rigid body inside the space
type Body struct {
	body *cp.Body
}

// Position returns the body's center of gravity
func (b *Body) Position() entity.Vec2 {
	p := b.body.Position()
	return entity.Vec2{X: p.X, Y: p.Y}
}

// Velocity returns the linear velocity
func (b *Body) Velocity() entity.Vec2 {
	v := b.body.Velocity()
	return entity.Vec2{X: v.X, Y: v.Y}
}

// SetVelocity replaces the linear velocity
func (b *Body) SetVelocity(v entity.Vec2) {
	b.body.SetVelocityVector(cp.Vector{X: v.X, Y: v.Y})
}

// SetPosition teleports the body
func (b *Body) SetPosition(p entity.Vec2) {
	b.body.SetPosition(cp.Vector{X: p.X, Y: p.Y})
}
