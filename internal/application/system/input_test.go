package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/runner/internal/infrastructure/config"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name    string
		want    ebiten.Key
		wantErr bool
	}{
		{"A", ebiten.KeyA, false},
		{"space", ebiten.KeySpace, false},
		{" ArrowLeft ", ebiten.KeyArrowLeft, false},
		{"Left", ebiten.KeyArrowLeft, false},
		{"Hyper", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKey(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewBindings(t *testing.T) {
	t.Run("default bindings resolve", func(t *testing.T) {
		b, err := NewBindings(config.DefaultTuning().Input)
		require.NoError(t, err)
		assert.Equal(t, []ebiten.Key{ebiten.KeySpace, ebiten.KeyW}, b.Jump)
		assert.Equal(t, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, b.MoveLeft)
	})

	t.Run("missing action", func(t *testing.T) {
		cfg := config.DefaultTuning().Input
		cfg.Brake = nil
		_, err := NewBindings(cfg)
		assert.ErrorIs(t, err, ErrUnboundAction)
		assert.Contains(t, err.Error(), "brake")
	})

	t.Run("unknown key", func(t *testing.T) {
		cfg := config.DefaultTuning().Input
		cfg.Jump = []string{"Hyper"}
		_, err := NewInputSystem(cfg)
		assert.ErrorIs(t, err, ErrUnboundAction)
	})
}

func TestInputSystem_Apply(t *testing.T) {
	sys, err := NewInputSystem(config.DefaultTuning().Input)
	require.NoError(t, err)
	var latch InputLatch

	sys.Apply(&latch, InputState{Right: true, Jump: true})
	in := latch.Consume()
	assert.Equal(t, 1.0, in.MoveAxis)
	assert.True(t, in.JumpPressed)
	assert.True(t, in.JumpHeld)

	// Held: no new edge
	sys.Apply(&latch, InputState{Right: true, Jump: true})
	in = latch.Consume()
	assert.False(t, in.JumpPressed)
	assert.True(t, in.JumpHeld)

	// Both directions cancel, jump released, brake pressed
	sys.Apply(&latch, InputState{Left: true, Right: true, Brake: true})
	in = latch.Consume()
	assert.Equal(t, 0.0, in.MoveAxis)
	assert.True(t, in.JumpReleased)
	assert.True(t, in.BrakePressed)
	assert.True(t, in.Braking)

	sys.Apply(&latch, InputState{Left: true})
	in = latch.Consume()
	assert.Equal(t, -1.0, in.MoveAxis)
	assert.True(t, in.BrakeReleased)
	assert.False(t, in.Braking)
}

func TestInputSystem_SetBindingsKeepsHeldKeys(t *testing.T) {
	sys, err := NewInputSystem(config.DefaultTuning().Input)
	require.NoError(t, err)
	var latch InputLatch

	sys.Apply(&latch, InputState{Jump: true})
	require.True(t, latch.Consume().JumpPressed)

	cfg := config.DefaultTuning().Input
	cfg.Jump = []string{"Up"}
	b, err := NewBindings(cfg)
	require.NoError(t, err)
	sys.SetBindings(b)
	assert.Equal(t, []ebiten.Key{ebiten.KeyArrowUp}, sys.bindings.Jump)

	sys.Apply(&latch, InputState{Jump: true})
	in := latch.Consume()
	assert.False(t, in.JumpPressed)
	assert.True(t, in.JumpHeld)
}
