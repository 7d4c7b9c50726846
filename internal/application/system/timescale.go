package system

import (
	"fmt"
	"log"
	"math"
)

// TimeScale is the slow motion clock. It scales frame time while a slow
// down is active and restores normal speed after the requested duration of
// unscaled time.
type TimeScale struct {
	factor    float64
	remaining float64 // real seconds until restore
	active    bool
}

// NewTimeScale returns a clock running at normal speed
func NewTimeScale() *TimeScale {
	return &TimeScale{factor: 1}
}

// SlowTime scales time by scale for duration real seconds. A later call
// replaces the active slow down and restarts its timer.
func (t *TimeScale) SlowTime(scale, duration float64) error {
	if math.IsNaN(scale) || scale <= 0 || scale > 1 {
		return fmt.Errorf("slow time scale must be within (0, 1], got %v", scale)
	}
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		return fmt.Errorf("slow time duration must be >= 0, got %v", duration)
	}
	log.Printf("timescale: slowing to %.2f for %.2fs", scale, duration)
	t.factor = scale
	t.remaining = duration
	t.active = true
	return nil
}

// Tick advances the restore timer by realDt unscaled seconds
func (t *TimeScale) Tick(realDt float64) {
	if !t.active || realDt <= 0 {
		return
	}
	t.remaining -= realDt
	if t.remaining <= 0 {
		t.Reset()
	}
}

// Scale converts real frame time into game time
func (t *TimeScale) Scale(realDt float64) float64 {
	return realDt * t.factor
}

// Factor returns the current scale
func (t *TimeScale) Factor() float64 {
	return t.factor
}

// Active reports whether a slow down is running
func (t *TimeScale) Active() bool {
	return t.active
}

// Remaining returns the real seconds left in the current slow down
func (t *TimeScale) Remaining() float64 {
	if !t.active {
		return 0
	}
	return t.remaining
}

// Reset restores normal speed immediately
func (t *TimeScale) Reset() {
	t.factor = 1
	t.remaining = 0
	t.active = false
}
