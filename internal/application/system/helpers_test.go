package system

import (
	"errors"

	"github.com/younwookim/runner/internal/domain/entity"
	"github.com/younwookim/runner/internal/infrastructure/config"
)

const frame = 1.0 / 60.0

// exampleConfig is the reference tuning used throughout the tests
func exampleConfig() ControllerConfig {
	return ControllerConfig{
		Movement: config.MovementConfig{
			Acceleration:        10,
			MaxSpeed:            8,
			BrakeDeceleration:   15,
			NaturalDeceleration: 2,
		},
		Jump: config.JumpConfig{
			Force:         12,
			HoldForce:     8,
			HoldDuration:  0.3,
			CutMultiplier: 0.5,
		},
		GroundSensor: config.GroundSensorConfig{
			OffsetY: -0.5,
			Radius:  0.1,
			Layers:  []string{"ground"},
		},
	}
}

type probeCall struct {
	center entity.Vec2
	radius float64
	mask   entity.LayerMask
}

// fakeProber answers with a fixed value and records queries
type fakeProber struct {
	grounded bool
	err      error
	calls    []probeCall
}

func (p *fakeProber) OverlapCircle(center entity.Vec2, radius float64, mask entity.LayerMask) (bool, error) {
	p.calls = append(p.calls, probeCall{center, radius, mask})
	if p.err != nil {
		return false, p.err
	}
	return p.grounded, nil
}

var errSpaceGone = errors.New("space gone")

// fixedClock scales time by a constant factor
type fixedClock float64

func (c fixedClock) Scale(dt float64) float64 {
	return dt * float64(c)
}

// newFlatStage returns a stage with a single ground row at the bottom.
// Ground occupies y in [0, 1].
func newFlatStage(width, height int) *entity.Stage {
	s := &entity.Stage{
		Name:     "flat",
		Width:    width,
		Height:   height,
		TileSize: 1,
		Tiles:    make([][]entity.Tile, height),
	}
	for y := range s.Tiles {
		s.Tiles[y] = make([]entity.Tile, width)
	}
	for x := 0; x < width; x++ {
		s.Tiles[height-1][x] = entity.Tile{Type: entity.TileGround, Solid: true}
	}
	return s
}
