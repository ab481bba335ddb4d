package board

import (
	"fmt"
	"log"
	"math"

	"github.com/automoto/tundra/config"
	"github.com/automoto/tundra/shared/gamemath"
	"github.com/automoto/tundra/shared/leveldata"
)

// Tile is the terrain of one grid cell, resolved from the tile type table.
type Tile struct {
	Type                config.TileType
	IsWall              bool
	IsWater             bool
	Friction            float64
	MoveSpeedMultiplier float64
	HasFlow             bool
	FlowDirection       float64
}

// TileCoord addresses a tile of the grid.
type TileCoord struct {
	X, Y int
}

func newTile(tt config.TileType) Tile {
	tc := config.Tiles[tt]
	return Tile{
		Type:                tt,
		IsWall:              tc.IsWall,
		IsWater:             tc.IsWater,
		Friction:            tc.Friction,
		MoveSpeedMultiplier: tc.MoveSpeedMultiplier,
	}
}

func (b *Board) loadTiles(level *leveldata.Level) {
	dims := b.cfg.BoardDimensions()
	b.tiles = make([]Tile, dims*dims)

	if level != nil && (level.Width > dims || level.Height > dims) {
		log.Printf("[board] warning: level %s is %dx%d tiles, board holds %dx%d; extra tiles ignored",
			level.Name, level.Width, level.Height, dims, dims)
	}

	unknown := map[string]bool{}
	for y := 0; y < dims; y++ {
		for x := 0; x < dims; x++ {
			tile := newTile(config.TileSnow)
			if level != nil {
				data := level.Tile(x, y)
				if data.Type != "" {
					tt, ok := config.TileTypeByName(data.Type)
					if !ok && !unknown[data.Type] {
						unknown[data.Type] = true
						log.Printf("[board] warning: unknown tile type %q, using %s", data.Type, tt)
					}
					tile = newTile(tt)
				}
				tile.HasFlow = data.HasFlow
				tile.FlowDirection = data.FlowDirection
			}
			b.tiles[y*dims+x] = tile
		}
	}
}

// GetTile returns the tile at the given tile coordinates. It panics when the
// coordinates are outside the grid; callers clamp.
func (b *Board) GetTile(tileX, tileY int) Tile {
	dims := b.cfg.BoardDimensions()
	if tileX < 0 || tileY < 0 || tileX >= dims || tileY >= dims {
		panic(fmt.Sprintf("board: tile (%d, %d) outside [0, %d)", tileX, tileY, dims))
	}
	return b.tiles[tileY*dims+tileX]
}

// TileCoordAt returns the coordinates of the tile containing a world position,
// clamped to the grid.
func (b *Board) TileCoordAt(p gamemath.Vec) TileCoord {
	last := b.cfg.BoardDimensions() - 1
	return TileCoord{
		X: gamemath.ClampInt(int(math.Floor(p.X/b.cfg.TileSize)), 0, last),
		Y: gamemath.ClampInt(int(math.Floor(p.Y/b.cfg.TileSize)), 0, last),
	}
}

// TileAt returns the tile containing a world position.
func (b *Board) TileAt(p gamemath.Vec) Tile {
	c := b.TileCoordAt(p)
	return b.GetTile(c.X, c.Y)
}

// TileCenter returns the world position of a tile's centre.
func (b *Board) TileCenter(c TileCoord) gamemath.Vec {
	return gamemath.Vec{
		X: (float64(c.X) + 0.5) * b.cfg.TileSize,
		Y: (float64(c.Y) + 0.5) * b.cfg.TileSize,
	}
}
