package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/runner/internal/domain/entity"
	"github.com/younwookim/runner/internal/infrastructure/config"
)

type fixedSpeed float64

func (s fixedSpeed) MaxSpeed() float64 { return float64(s) }

func TestNewCameraFollow_Errors(t *testing.T) {
	cfg := config.DefaultTuning().Camera

	_, err := NewCameraFollow(cfg, entity.Vec2{}, entity.Vec2{}, nil)
	assert.ErrorIs(t, err, ErrMissingCollaborator)

	cfg.UsePlayerSpeed = false
	_, err = NewCameraFollow(cfg, entity.Vec2{}, entity.Vec2{}, nil)
	assert.NoError(t, err, "speed source only needed with player speed")

	cfg.FollowSpeed = -1
	_, err = NewCameraFollow(cfg, entity.Vec2{}, entity.Vec2{}, nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestCameraFollow_MoveTowards(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.CameraConfig)
		target entity.Vec2
		want   entity.Vec2
	}{
		{
			name:   "player speed bounds the step",
			mutate: func(c *config.CameraConfig) {},
			target: entity.Vec2{X: 10, Y: 7},
			want:   entity.Vec2{X: 8 * frame, Y: 3},
		},
		{
			name:   "fixed follow speed",
			mutate: func(c *config.CameraConfig) { c.UsePlayerSpeed = false; c.FollowSpeed = 3 },
			target: entity.Vec2{X: 10, Y: 7},
			want:   entity.Vec2{X: 3 * frame, Y: 3},
		},
		{
			name:   "snaps when within one step",
			mutate: func(c *config.CameraConfig) {},
			target: entity.Vec2{X: 0.05, Y: 3},
			want:   entity.Vec2{X: 0.05, Y: 3},
		},
		{
			name:   "horizontal follow disabled",
			mutate: func(c *config.CameraConfig) { c.FollowHorizontally = false },
			target: entity.Vec2{X: 10, Y: 7},
			want:   entity.Vec2{X: 0, Y: 3},
		},
		{
			name:   "offset applied",
			mutate: func(c *config.CameraConfig) { c.OffsetX = -0.1 },
			target: entity.Vec2{X: 0.1, Y: 0},
			want:   entity.Vec2{X: 0, Y: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultTuning().Camera
			tt.mutate(&cfg)
			cam, err := NewCameraFollow(cfg, entity.Vec2{X: 0, Y: 3}, tt.target, fixedSpeed(8))
			require.NoError(t, err)

			got := cam.Update(tt.target, frame)

			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
			assert.Equal(t, got, cam.Position())
		})
	}
}

func TestCameraFollow_KeepsUpWithFastTarget(t *testing.T) {
	cam, err := NewCameraFollow(config.DefaultTuning().Camera, entity.Vec2{}, entity.Vec2{}, fixedSpeed(8))
	require.NoError(t, err)

	// Target moves 0.5 per frame (30 units/s), well above its speed cap
	target := entity.Vec2{}
	for i := 0; i < 10; i++ {
		target.X += 0.5
		cam.Update(target, frame)
	}

	assert.InDelta(t, target.X, cam.Position().X, 1e-9)
}

func TestCameraFollow_VerticalFollow(t *testing.T) {
	cfg := config.DefaultTuning().Camera
	cfg.FollowVertically = true
	cfg.OffsetY = 1
	cam, err := NewCameraFollow(cfg, entity.Vec2{}, entity.Vec2{}, fixedSpeed(200))
	require.NoError(t, err)

	got := cam.Update(entity.Vec2{X: 0, Y: 1}, frame)

	assert.InDelta(t, 2, got.Y, 1e-9)
}

func TestCameraFollow_SmoothDamp(t *testing.T) {
	cfg := config.DefaultTuning().Camera
	cfg.UseSmoothDamping = true
	cam, err := NewCameraFollow(cfg, entity.Vec2{}, entity.Vec2{}, fixedSpeed(8))
	require.NoError(t, err)

	target := entity.Vec2{X: 5, Y: 9}
	first := cam.Update(target, frame)
	assert.Greater(t, first.X, 0.0)
	assert.Less(t, first.X, 5.0)

	for i := 0; i < 120; i++ {
		cam.Update(target, frame)
	}
	assert.InDelta(t, 5, cam.Position().X, 1e-3)
	assert.Equal(t, 0.0, cam.Position().Y, "vertical stays pinned")
}

func TestCameraFollow_ZeroDt(t *testing.T) {
	cam, err := NewCameraFollow(config.DefaultTuning().Camera, entity.Vec2{X: 1}, entity.Vec2{}, fixedSpeed(8))
	require.NoError(t, err)

	assert.Equal(t, entity.Vec2{X: 1}, cam.Update(entity.Vec2{X: 100}, 0))
}
