package system

import (
	"fmt"
	"math"

	"github.com/younwookim/runner/internal/domain/entity"
)

// TileProber answers overlap queries straight from stage tiles. Only solid
// tiles count, matching the physics world where non-solid tiles are sensors.
type TileProber struct {
	stage *entity.Stage
}

// NewTileProber creates a prober for stage
func NewTileProber(stage *entity.Stage) *TileProber {
	return &TileProber{stage: stage}
}

// OverlapCircle reports whether a solid tile in mask lies within radius of center
func (p *TileProber) OverlapCircle(center entity.Vec2, radius float64, mask entity.LayerMask) (bool, error) {
	if p == nil || p.stage == nil {
		return false, fmt.Errorf("tile prober has no stage")
	}
	s := p.stage
	if s.TileSize <= 0 {
		return false, fmt.Errorf("stage %q has tile size %v", s.Name, s.TileSize)
	}

	// Tile range the circle's bounding box overlaps
	startTX, startTY := s.TileCoord(entity.Vec2{X: center.X - radius, Y: center.Y + radius})
	endTX, endTY := s.TileCoord(entity.Vec2{X: center.X + radius, Y: center.Y - radius})

	for ty := startTY; ty <= endTY; ty++ {
		for tx := startTX; tx <= endTX; tx++ {
			tile := s.GetTile(tx, ty)
			if !tile.Solid || !mask.Has(entity.LayerForTile(tile.Type)) {
				continue
			}
			if circleOverlapsRect(center, radius, s, tx, ty) {
				return true, nil
			}
		}
	}
	return false, nil
}

func circleOverlapsRect(c entity.Vec2, r float64, s *entity.Stage, tx, ty int) bool {
	minX, minY, maxX, maxY := s.TileBounds(tx, ty)
	if c.X > minX && c.X < maxX && c.Y > minY && c.Y < maxY {
		return true
	}
	dx := c.X - math.Max(minX, math.Min(c.X, maxX))
	dy := c.Y - math.Max(minY, math.Min(c.Y, maxY))
	return dx*dx+dy*dy < r*r
}
