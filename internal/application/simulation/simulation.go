// Package simulation steps one stage: input, movement controller, physics
// and contact handling, in that order.
package simulation

import (
	"fmt"
	"log"

	"github.com/younwookim/runner/internal/application/system"
	"github.com/younwookim/runner/internal/domain/entity"
	"github.com/younwookim/runner/internal/ecs"
	"github.com/younwookim/runner/internal/infrastructure/config"
	"github.com/younwookim/runner/internal/infrastructure/physics"
)

// fallMargin is how far below the stage bottom the player may drop before
// the stage is reloaded
const fallMargin = 2.0

// Outcome reports how a frame ended
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeFinished
	OutcomeFell
	OutcomeDied
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeFinished:
		return "finished"
	case OutcomeFell:
		return "fell"
	case OutcomeDied:
		return "died"
	default:
		return "unknown"
	}
}

// NeedsReload reports whether the stage should be rebuilt
func (o Outcome) NeedsReload() bool {
	return o != OutcomeContinue
}

// Simulation owns every runtime piece of a single stage
type Simulation struct {
	stage  *entity.Stage
	tuning *config.TuningConfig

	physics    *physics.World
	body       *physics.Body
	controller *system.MovementController
	world      *ecs.World
	clock      *system.TimeScale
	collector  *system.Collector

	frame int
}

// New builds the physics space, player, pickups and controller for stage
func New(stage *entity.Stage, tuning *config.TuningConfig) (*Simulation, error) {
	if stage == nil || tuning == nil {
		return nil, fmt.Errorf("%w: stage and tuning", system.ErrMissingCollaborator)
	}
	if err := tuning.Validate(); err != nil {
		return nil, err
	}

	pw, err := physics.NewWorld(stage, tuning.Physics)
	if err != nil {
		return nil, err
	}
	body, err := pw.AddPlayer(stage.Spawn, tuning.Player)
	if err != nil {
		pw.Close()
		return nil, err
	}
	controller, err := system.NewMovementController(system.ControllerConfigFrom(tuning), body, pw)
	if err != nil {
		pw.Close()
		return nil, fmt.Errorf("failed to create controller: %w", err)
	}

	s := &Simulation{
		stage:      stage,
		tuning:     tuning,
		physics:    pw,
		body:       body,
		controller: controller,
		world:      ecs.NewWorld(),
		clock:      system.NewTimeScale(),
	}
	s.world.CreatePlayer(stage.Spawn)
	if err := ecs.SpawnPickups(s.world, stage.Pickups, tuning.Pickups, pw); err != nil {
		pw.Close()
		return nil, err
	}

	// The simulation grants capabilities itself so Retune can swap controllers
	s.collector, err = system.NewCollector(s.world, tuning.Pickups, s, s.clock, pw)
	if err != nil {
		pw.Close()
		return nil, err
	}

	log.Printf("simulation: stage %q ready (%dx%d, %d pickups)", stage.Name, stage.Width, stage.Height, s.world.CountPickups())
	return s, nil
}

// Latch returns the input latch for the current controller
func (s *Simulation) Latch() *system.InputLatch {
	return s.controller.Latch()
}

// Step runs one frame of realDt unscaled seconds
func (s *Simulation) Step(realDt float64) (Outcome, error) {
	s.clock.Tick(realDt)

	if err := s.controller.Update(s.clock, realDt); err != nil {
		return OutcomeContinue, err
	}
	if err := s.physics.Step(s.clock.Scale(realDt)); err != nil {
		return OutcomeContinue, fmt.Errorf("failed to step physics: %w", err)
	}
	s.frame++

	outcome := OutcomeContinue
	for _, c := range s.physics.Contacts() {
		switch c.Kind {
		case physics.ContactPickup:
			if _, err := s.collector.Collect(c.Pickup); err != nil {
				return OutcomeContinue, err
			}
		case physics.ContactDanger:
			outcome = max(outcome, OutcomeDied)
		case physics.ContactFinish:
			outcome = max(outcome, OutcomeFinished)
		}
	}

	pos := s.body.Position()
	s.world.SetPlayerPosition(pos)
	if pos.Y < -fallMargin*s.stage.TileSize {
		outcome = max(outcome, OutcomeFell)
	}

	if outcome.NeedsReload() {
		log.Printf("simulation: stage %q %s at frame %d", s.stage.Name, outcome, s.frame)
	}
	return outcome, nil
}

// Retune applies tuning to the running controller. Body state, jump state,
// pickups and granted capabilities carry over. On error the old tuning stays.
func (s *Simulation) Retune(tuning *config.TuningConfig) error {
	if tuning == nil {
		return fmt.Errorf("%w: tuning", system.ErrMissingCollaborator)
	}
	if err := tuning.Validate(); err != nil {
		return err
	}
	if err := s.controller.Reconfigure(system.ControllerConfigFrom(tuning)); err != nil {
		return fmt.Errorf("failed to retune controller: %w", err)
	}
	s.tuning = tuning
	log.Printf("simulation: retuned stage %q", s.stage.Name)
	return nil
}

// GrantDoubleJump forwards the grant to the controller
func (s *Simulation) GrantDoubleJump() {
	s.controller.GrantDoubleJump()
}

// MaxSpeed returns the current controller's horizontal speed cap
func (s *Simulation) MaxSpeed() float64 {
	return s.controller.MaxSpeed()
}

// Close releases the physics space
func (s *Simulation) Close() {
	s.physics.Close()
}

// Controller returns the active movement controller
func (s *Simulation) Controller() *system.MovementController {
	return s.controller
}

// Clock returns the time scale
func (s *Simulation) Clock() *system.TimeScale {
	return s.clock
}

// World returns the entity world
func (s *Simulation) World() *ecs.World {
	return s.world
}

// Collector returns the pickup collector
func (s *Simulation) Collector() *system.Collector {
	return s.collector
}

// Stage returns the stage being simulated
func (s *Simulation) Stage() *entity.Stage {
	return s.stage
}

// Tuning returns the tuning in effect
func (s *Simulation) Tuning() *config.TuningConfig {
	return s.tuning
}

// PlayerPosition returns the player body position
func (s *Simulation) PlayerPosition() entity.Vec2 {
	return s.body.Position()
}

// PlayerVelocity returns the player body velocity
func (s *Simulation) PlayerVelocity() entity.Vec2 {
	return s.body.Velocity()
}

// Frame returns the number of completed steps
func (s *Simulation) Frame() int {
	return s.frame
}
