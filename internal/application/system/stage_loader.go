package system

import (
	"fmt"

	"github.com/younwookim/runner/internal/domain/entity"
	"github.com/younwookim/runner/internal/ecs"
	"github.com/younwookim/runner/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a Stage entity. Characters missing
// from the tile mapping are empty. The spawn and pickups are placed at the
// center of their tile.
func LoadStage(cfg *config.StageConfig) (*entity.Stage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tileHeight := len(cfg.Layers.Collision)
	tileWidth := 0
	for _, row := range cfg.Layers.Collision {
		tileWidth = max(tileWidth, len([]rune(row)))
	}

	tiles := make([][]entity.Tile, tileHeight)
	for y, row := range cfg.Layers.Collision {
		tiles[y] = make([]entity.Tile, tileWidth)
		x := 0
		for _, char := range row {
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				tiles[y][x] = entity.Tile{Type: entity.TileEmpty, Solid: false}
				x++
				continue
			}

			var tileType entity.TileType
			switch mapping.Type {
			case "ground":
				tileType = entity.TileGround
			case "danger":
				tileType = entity.TileDanger
			case "finish":
				tileType = entity.TileFinish
			default:
				tileType = entity.TileEmpty
			}

			tiles[y][x] = entity.Tile{
				Type:  tileType,
				Solid: mapping.Solid && tileType != entity.TileEmpty,
			}
			x++
		}
	}

	stage := &entity.Stage{
		Name:     cfg.Name,
		Width:    tileWidth,
		Height:   tileHeight,
		TileSize: cfg.TileSize,
		Tiles:    tiles,
	}

	spawn, err := tileCenter(stage, cfg.PlayerSpawn)
	if err != nil {
		return nil, fmt.Errorf("player spawn: %w", err)
	}
	stage.Spawn = spawn

	for i, p := range cfg.Pickups {
		if _, err := ecs.ParsePickupKind(p.Type); err != nil {
			return nil, fmt.Errorf("pickup %d: %w", i, err)
		}
		pos, err := tileCenter(stage, config.PositionConfig{X: p.X, Y: p.Y})
		if err != nil {
			return nil, fmt.Errorf("pickup %d: %w", i, err)
		}
		stage.Pickups = append(stage.Pickups, entity.PickupSpawn{Kind: p.Type, Pos: pos})
	}

	return stage, nil
}

func tileCenter(s *entity.Stage, p config.PositionConfig) (entity.Vec2, error) {
	if p.X < 0 || p.X >= s.Width || p.Y < 0 || p.Y >= s.Height {
		return entity.Vec2{}, fmt.Errorf("%w: tile (%d, %d) outside %dx%d stage",
			config.ErrInvalidConfig, p.X, p.Y, s.Width, s.Height)
	}
	minX, minY, maxX, maxY := s.TileBounds(p.X, p.Y)
	return entity.Vec2{X: (minX + maxX) / 2, Y: (minY + maxY) / 2}, nil
}
