package board

import (
	"fmt"
	"slices"

	"github.com/automoto/tundra/components"
	"github.com/automoto/tundra/shared/gamemath"
	"github.com/automoto/tundra/shared/leveldata"
	"github.com/automoto/tundra/shared/netconfig"
	"github.com/yohamta/donburi"
)

// Chunk is one cell of the board's spatial grid. It lists the game objects
// whose hitbox bounds overlap it.
type Chunk struct {
	X, Y int

	gameObjects    []donburi.Entity
	entities       []donburi.Entity
	items          []donburi.Entity
	steppingStones []leveldata.SteppingStone
}

func newChunk(x, y int) *Chunk {
	return &Chunk{X: x, Y: y}
}

// Coord returns the chunk's grid coordinates.
func (c *Chunk) Coord() components.ChunkCoord {
	return components.ChunkCoord{X: c.X, Y: c.Y}
}

// GameObjects returns every object in the chunk, including projectiles.
func (c *Chunk) GameObjects() []donburi.Entity { return c.gameObjects }

// Entities returns the objects of kind entity.
func (c *Chunk) Entities() []donburi.Entity { return c.entities }

// Items returns the item entities.
func (c *Chunk) Items() []donburi.Entity { return c.items }

// SteppingStones returns the river stepping stones whose centre lies in the chunk.
func (c *Chunk) SteppingStones() []leveldata.SteppingStone { return c.steppingStones }

// Contains reports whether the object is listed in the chunk.
func (c *Chunk) Contains(e donburi.Entity) bool {
	return slices.Contains(c.gameObjects, e)
}

// AddEntity lists an object in the chunk under its kind.
func (c *Chunk) AddEntity(e donburi.Entity, kind netconfig.ObjectKind) {
	if c.Contains(e) {
		return
	}
	c.gameObjects = append(c.gameObjects, e)
	switch kind {
	case netconfig.KindEntity:
		c.entities = append(c.entities, e)
	case netconfig.KindItem:
		c.items = append(c.items, e)
	}
}

// RemoveEntity removes an object from the chunk.
func (c *Chunk) RemoveEntity(e donburi.Entity, kind netconfig.ObjectKind) {
	c.gameObjects = remove(c.gameObjects, e)
	switch kind {
	case netconfig.KindEntity:
		c.entities = remove(c.entities, e)
	case netconfig.KindItem:
		c.items = remove(c.items, e)
	}
}

func (c *Chunk) clear() {
	c.gameObjects = nil
	c.entities = nil
	c.items = nil
}

func (c *Chunk) String() string {
	return fmt.Sprintf("chunk (%d, %d): %d objects", c.X, c.Y, len(c.gameObjects))
}

func remove(list []donburi.Entity, e donburi.Entity) []donburi.Entity {
	if i := slices.Index(list, e); i >= 0 {
		return slices.Delete(list, i, i+1)
	}
	return list
}

// GetChunk returns the chunk at the given chunk coordinates. It panics when the
// coordinates are outside the grid; callers clamp.
func (b *Board) GetChunk(x, y int) *Chunk {
	if x < 0 || y < 0 || x >= b.cfg.BoardSize || y >= b.cfg.BoardSize {
		panic(fmt.Sprintf("board: chunk (%d, %d) outside [0, %d)", x, y, b.cfg.BoardSize))
	}
	return b.chunks[x][y]
}

// ChunkCoordAt returns the chunk containing a world position, clamped to the
// grid.
func (b *Board) ChunkCoordAt(x, y float64) components.ChunkCoord {
	return components.ChunkCoord{
		X: b.chunkIndex(x),
		Y: b.chunkIndex(y),
	}
}

// loadSteppingStones lists each stone in every chunk its circle touches, so a
// chunk lookup at the stone's edge still finds it.
func (b *Board) loadSteppingStones(stones []leveldata.SteppingStone) {
	for _, s := range stones {
		minX, maxX, minY, maxY := b.chunkRange(gamemath.BoundsAround(gamemath.Vec{X: s.X, Y: s.Y}, s.Radius, s.Radius))
		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				chunk := b.GetChunk(x, y)
				chunk.steppingStones = append(chunk.steppingStones, s)
			}
		}
	}
}
