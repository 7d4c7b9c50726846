package system

import (
	"math"

	"github.com/younwookim/runner/internal/domain/entity"
	"github.com/younwookim/runner/internal/infrastructure/config"
)

// JumpPhase is the observable state of the jump machine
type JumpPhase int

const (
	PhaseGrounded JumpPhase = iota
	PhaseRisingHeld
	PhaseRisingFree
	PhaseFalling
)

// String returns the phase name
func (p JumpPhase) String() string {
	switch p {
	case PhaseGrounded:
		return "grounded"
	case PhaseRisingHeld:
		return "rising-held"
	case PhaseRisingFree:
		return "rising-free"
	case PhaseFalling:
		return "falling"
	default:
		return "unknown"
	}
}

// restingVelocity absorbs solver noise: a body resting on the ground can
// report a vertical speed a hair above zero.
const restingVelocity = 1e-6

// JumpMachine turns jump edges into vertical velocity changes.
//
// A jump normally ends on the airborne to grounded edge with vy at or below
// restingVelocity. One deviation from a strict edge rule: when the edge
// arrives while the body is still rising (grazing a ledge), the landing is
// deferred and completes on a later frame that is still grounded and
// settled, even though that frame is not an edge. Without it the machine
// would stay jumping on the ledge and refuse every press. Leaving the
// ground cancels the deferred landing.
type JumpMachine struct {
	cfg   config.JumpConfig
	state entity.JumpState
}

// NewJumpMachine validates cfg and starts in the grounded phase
func NewJumpMachine(cfg config.JumpConfig) (*JumpMachine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &JumpMachine{cfg: cfg}, nil
}

// Reconfigure swaps in cfg and keeps the runtime state, so a jump in
// progress continues under the new values. On error the old cfg stays.
func (m *JumpMachine) Reconfigure(cfg config.JumpConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	m.cfg = cfg
	return nil
}

// Step advances the machine one frame and returns the new vertical velocity.
// Order within a frame: landing, launch, release, hold. The launch frame gets
// no hold thrust.
func (m *JumpMachine) Step(vy float64, grounded bool, in entity.InputIntent, dt float64) float64 {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	s := &m.state

	// Landing
	landingEdge := grounded && !s.WasGrounded
	settled := vy <= restingVelocity
	if s.IsJumping {
		switch {
		case landingEdge && settled:
			m.land()
		case landingEdge:
			// Still rising when the probe hit, e.g. grazing a ledge
			s.LandingPending = true
		case s.LandingPending && grounded && settled:
			m.land()
		}
	}
	if !grounded {
		s.LandingPending = false
	}

	// Launch
	launched := false
	if in.JumpPressed && grounded && !s.IsJumping {
		vy = m.cfg.Force
		s.IsJumping = true
		s.IsButtonHeld = true
		s.HoldElapsed = 0
		s.LandingPending = false
		launched = true
	}

	// Release
	if in.JumpReleased && s.IsButtonHeld {
		if m.holdWindowOpen() && vy > 0 {
			vy *= m.cfg.CutMultiplier
		}
		s.IsButtonHeld = false
	}

	// Hold
	if s.IsJumping && s.IsButtonHeld && !launched {
		if !in.JumpHeld {
			s.IsButtonHeld = false
		} else if m.holdWindowOpen() {
			step := math.Min(dt, m.cfg.HoldDuration-s.HoldElapsed)
			vy += m.cfg.HoldForce * step
			s.HoldElapsed += step
		}
	}

	s.WasGrounded = grounded
	return vy
}

func (m *JumpMachine) land() {
	m.state.IsJumping = false
	m.state.IsButtonHeld = false
	m.state.HoldElapsed = 0
	m.state.LandingPending = false
}

func (m *JumpMachine) holdWindowOpen() bool {
	return m.state.IsJumping && m.state.HoldElapsed < m.cfg.HoldDuration
}

// State returns a copy of the runtime bookkeeping
func (m *JumpMachine) State() entity.JumpState {
	return m.state
}

// Phase classifies the machine given the current vertical velocity
func (m *JumpMachine) Phase(vy float64) JumpPhase {
	switch {
	case !m.state.IsJumping:
		return PhaseGrounded
	case vy <= 0:
		return PhaseFalling
	case m.state.IsButtonHeld && m.holdWindowOpen():
		return PhaseRisingHeld
	default:
		return PhaseRisingFree
	}
}
