package entity

import "math"

// EntityID is a unique identifier for an entity
type EntityID uint32

// Vec2 is a 2D vector in world units. Y points up.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the euclidean length of v
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileGround
	TileDanger
	TileFinish
)

// String returns the stage-file name of the tile type
func (t TileType) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileGround:
		return "ground"
	case TileDanger:
		return "danger"
	case TileFinish:
		return "finish"
	default:
		return "unknown"
	}
}

// Tile represents a single tile in the stage
type Tile struct {
	Type  TileType
	Solid bool
}

// PickupSpawn places a collectible in the stage
type PickupSpawn struct {
	Kind string
	Pos  Vec2
}

// Stage represents the current stage's tile data.
// Rows are stored top-down (row 0 is the top of the map) while world
// coordinates grow upward, so row ty spans y in [(Height-1-ty)*TileSize, (Height-ty)*TileSize].
type Stage struct {
	Name     string
	Width    int
	Height   int
	TileSize float64
	Tiles    [][]Tile
	Spawn    Vec2
	Pickups  []PickupSpawn
}

// GetTile returns the tile at the given tile coordinates
func (s *Stage) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return Tile{Type: TileEmpty}
	}
	return s.Tiles[ty][tx]
}

// TileBounds returns the world-space rectangle covered by tile (tx, ty)
func (s *Stage) TileBounds(tx, ty int) (minX, minY, maxX, maxY float64) {
	minX = float64(tx) * s.TileSize
	minY = float64(s.Height-1-ty) * s.TileSize
	return minX, minY, minX + s.TileSize, minY + s.TileSize
}

// TileCoord returns the tile coordinates containing the world point p
func (s *Stage) TileCoord(p Vec2) (tx, ty int) {
	tx = int(math.Floor(p.X / s.TileSize))
	ty = s.Height - 1 - int(math.Floor(p.Y/s.TileSize))
	return tx, ty
}

// GetTileAt returns the tile containing the world point p
func (s *Stage) GetTileAt(p Vec2) Tile {
	return s.GetTile(s.TileCoord(p))
}

// WorldSize returns the stage extent in world units
func (s *Stage) WorldSize() (w, h float64) {
	return float64(s.Width) * s.TileSize, float64(s.Height) * s.TileSize
}
