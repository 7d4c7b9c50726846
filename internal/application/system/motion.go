package system

import (
	"math"

	"github.com/younwookim/runner/internal/domain/entity"
	"github.com/younwookim/runner/internal/infrastructure/config"
)

// StepHorizontal computes the next horizontal velocity. Rules are checked in
// order and the first match wins:
//  1. braking on the ground eases toward 0 at BrakeDeceleration
//  2. a non-zero axis accelerates and clamps to MaxSpeed
//  3. no input on the ground eases toward 0 at NaturalDeceleration
//  4. otherwise airborne momentum is kept
//
// A dt that is not a positive finite number applies no rule. The result is
// always within [-MaxSpeed, MaxSpeed].
func StepHorizontal(currentVx, axis float64, braking, grounded bool, dt float64, cfg config.MovementConfig) float64 {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return clampSpeed(currentVx, cfg.MaxSpeed)
	}
	if math.IsNaN(axis) {
		axis = 0
	}
	axis = entity.Clamp(axis, -1, 1)

	vx := currentVx
	switch {
	case braking && grounded:
		vx = entity.MoveTowards(vx, 0, cfg.BrakeDeceleration*dt)
	case axis != 0:
		vx += axis * cfg.Acceleration * dt
	case grounded:
		vx = entity.MoveTowards(vx, 0, cfg.NaturalDeceleration*dt)
	}
	return clampSpeed(vx, cfg.MaxSpeed)
}

// clampSpeed holds the speed invariant even when the physics engine hands
// back a velocity above the cap.
func clampSpeed(vx, maxSpeed float64) float64 {
	return entity.Clamp(vx, -maxSpeed, maxSpeed)
}
