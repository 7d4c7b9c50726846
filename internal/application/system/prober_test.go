package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/runner/internal/domain/entity"
)

func TestTileProber_OverlapCircle(t *testing.T) {
	// 5x3 stage: row 2 (y in [0,1]) is ground except a danger tile at x=3
	// and a non-solid finish tile at x=4
	stage := newFlatStage(5, 3)
	stage.Tiles[2][3] = entity.Tile{Type: entity.TileDanger, Solid: true}
	stage.Tiles[2][4] = entity.Tile{Type: entity.TileFinish, Solid: false}
	prober := NewTileProber(stage)

	all := entity.LayerGround | entity.LayerDanger | entity.LayerFinish

	tests := []struct {
		name   string
		center entity.Vec2
		radius float64
		mask   entity.LayerMask
		want   bool
	}{
		{"resting on ground", entity.Vec2{X: 0.5, Y: 1}, 0.1, entity.LayerGround, true},
		{"just above ground", entity.Vec2{X: 0.5, Y: 1.05}, 0.1, entity.LayerGround, true},
		{"clear of ground", entity.Vec2{X: 0.5, Y: 1.2}, 0.1, entity.LayerGround, false},
		{"inside ground with zero radius", entity.Vec2{X: 0.5, Y: 0.5}, 0, entity.LayerGround, true},
		{"danger filtered out", entity.Vec2{X: 3.5, Y: 1}, 0.1, entity.LayerGround, false},
		{"danger in mask", entity.Vec2{X: 3.5, Y: 1}, 0.1, all, true},
		{"non-solid finish ignored", entity.Vec2{X: 4.5, Y: 1}, 0.1, all, false},
		{"off the stage", entity.Vec2{X: -3, Y: 1}, 0.1, all, false},
		{"corner reach", entity.Vec2{X: 2.95, Y: 1.05}, 0.1, entity.LayerGround, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := prober.OverlapCircle(tt.center, tt.radius, tt.mask)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTileProber_Unavailable(t *testing.T) {
	var nilProber *TileProber
	_, err := nilProber.OverlapCircle(entity.Vec2{}, 1, entity.LayerGround)
	assert.Error(t, err)

	_, err = NewTileProber(&entity.Stage{Name: "broken"}).OverlapCircle(entity.Vec2{}, 1, entity.LayerGround)
	assert.Error(t, err)
}
