package entity

import "math"

// MoveTowards moves current toward target by at most maxDelta without overshooting.
// A non-positive maxDelta leaves current unchanged.
func MoveTowards(current, target, maxDelta float64) float64 {
	if maxDelta <= 0 {
		return current
	}
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// MoveTowardsVec moves current toward target by at most maxDistance
func MoveTowardsVec(current, target Vec2, maxDistance float64) Vec2 {
	if maxDistance <= 0 {
		return current
	}
	delta := target.Sub(current)
	dist := delta.Len()
	if dist <= maxDistance || dist == 0 {
		return target
	}
	return current.Add(delta.Scale(maxDistance / dist))
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SmoothDamp eases current toward target with a critically damped spring.
// velocity carries state between calls and is updated in place.
func SmoothDamp(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	if dt <= 0 {
		return current
	}
	smoothTime = math.Max(0.0001, smoothTime)
	omega := 2 / smoothTime
	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * exp
	out := target + (change+temp)*exp

	// Prevent overshooting
	if (target-current > 0) == (out > target) {
		out = target
		*velocity = (out - target) / dt
	}
	return out
}
