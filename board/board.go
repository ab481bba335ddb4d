// Package board owns the simulated world: the donburi entity arena, the tile
// grid, the chunk grid used for spatial queries, the wall broad phase and the
// tick utilities.
package board

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/automoto/tundra/components"
	"github.com/automoto/tundra/config"
	"github.com/automoto/tundra/shared/leveldata"
	"github.com/automoto/tundra/shared/netconfig"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ErrUnknownEntity is returned when an id does not name a live game object.
var ErrUnknownEntity = errors.New("board: unknown entity")

type Board struct {
	cfg   config.WorldConfig
	World donburi.World

	chunks [][]*Chunk // [x][y]
	tiles  []Tile     // Row-major, index y*dimensions+x

	entities    map[netconfig.EntityID]donburi.Entity
	items       map[netconfig.EntityID]donburi.Entity
	projectiles map[netconfig.EntityID]donburi.Entity

	walls *resolv.Space
	probe *resolv.Object

	ticks     int
	callbacks []tickCallback

	nextLocalID netconfig.EntityID
}

// New builds a board for the given world configuration. level may be nil, in
// which case every tile is the default terrain.
func New(cfg config.WorldConfig, level *leveldata.Level) *Board {
	b := &Board{
		cfg:         cfg,
		World:       donburi.NewWorld(),
		entities:    make(map[netconfig.EntityID]donburi.Entity),
		items:       make(map[netconfig.EntityID]donburi.Entity),
		projectiles: make(map[netconfig.EntityID]donburi.Entity),
		nextLocalID: -1,
	}

	b.chunks = make([][]*Chunk, cfg.BoardSize)
	for x := range b.chunks {
		b.chunks[x] = make([]*Chunk, cfg.BoardSize)
		for y := range b.chunks[x] {
			b.chunks[x][y] = newChunk(x, y)
		}
	}

	b.loadTiles(level)
	b.buildWallSpace()
	if level != nil {
		b.loadSteppingStones(level.SteppingStones)
	}

	walls := 0
	for _, t := range b.tiles {
		if t.IsWall {
			walls++
		}
	}
	log.Printf("[board] created %dx%d chunks, %d tiles per axis, %d wall tiles, %d TPS",
		cfg.BoardSize, cfg.BoardSize, cfg.BoardDimensions(), walls, cfg.TPS)

	return b
}

// Config returns the world configuration the board was built with.
func (b *Board) Config() config.WorldConfig {
	return b.cfg
}

// TPS returns the tick rate as a float for physics calculations.
func (b *Board) TPS() float64 {
	return float64(b.cfg.TPS)
}

// WorldSize is the length of one side of the world in world units.
func (b *Board) WorldSize() float64 {
	return b.cfg.WorldSize()
}

// AddObject registers a game object and places it in its chunks. The entry
// must carry an Identity, a Transform and Hitboxes; hitbox geometry is
// refreshed before the chunks are computed.
func (b *Board) AddObject(entry *donburi.Entry) error {
	id := components.Identity.Get(entry)
	objects := b.collection(id.Kind)
	if _, exists := objects[id.ID]; exists {
		return fmt.Errorf("add %s %s: already on the board", id.Kind, id.ID)
	}
	objects[id.ID] = entry.Entity()

	components.Hitboxes.Get(entry).Refresh(components.Transform.Get(entry))
	b.RecalculateContainingChunks(entry)
	return nil
}

// RemoveObject removes the game object with the given id from its chunks, its
// collection and the world.
func (b *Board) RemoveObject(id netconfig.EntityID) error {
	entry, err := b.Lookup(id)
	if err != nil {
		return fmt.Errorf("remove %s: %w", id, err)
	}

	kind := components.Identity.Get(entry).Kind
	b.leaveAllChunks(entry)
	delete(b.collection(kind), id)
	entry.Remove()
	return nil
}

// Lookup returns the entry of a live game object.
func (b *Board) Lookup(id netconfig.EntityID) (*donburi.Entry, error) {
	for _, objects := range []map[netconfig.EntityID]donburi.Entity{b.entities, b.items, b.projectiles} {
		if e, ok := objects[id]; ok && b.World.Valid(e) {
			return b.World.Entry(e), nil
		}
	}
	return nil, ErrUnknownEntity
}

// Objects returns the ids of every object in the given collection, in
// ascending order.
func (b *Board) Objects(kind netconfig.ObjectKind) []netconfig.EntityID {
	objects := b.collection(kind)
	ids := make([]netconfig.EntityID, 0, len(objects))
	for id := range objects {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// ObjectCount returns the number of live game objects of all kinds.
func (b *Board) ObjectCount() int {
	return len(b.entities) + len(b.items) + len(b.projectiles)
}

// NextLocalID returns a fresh negative id for a locally predicted object.
func (b *Board) NextLocalID() netconfig.EntityID {
	id := b.nextLocalID
	b.nextLocalID--
	return id
}

// Close tears the board down. The board must not be used afterwards.
func (b *Board) Close() {
	for _, objects := range []map[netconfig.EntityID]donburi.Entity{b.entities, b.items, b.projectiles} {
		for id, e := range objects {
			if b.World.Valid(e) {
				b.World.Remove(e)
			}
			delete(objects, id)
		}
	}
	for _, column := range b.chunks {
		for _, c := range column {
			c.clear()
		}
	}
	b.callbacks = nil
	if b.walls != nil {
		for _, o := range b.walls.Objects() {
			b.walls.Remove(o)
		}
	}
	log.Printf("[board] closed after %d ticks", b.ticks)
}

func (b *Board) collection(kind netconfig.ObjectKind) map[netconfig.EntityID]donburi.Entity {
	switch kind {
	case netconfig.KindItem:
		return b.items
	case netconfig.KindProjectile:
		return b.projectiles
	default:
		return b.entities
	}
}
