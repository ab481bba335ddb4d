package board

import (
	"fmt"
	"math"
	"slices"

	"github.com/automoto/tundra/components"
	"github.com/automoto/tundra/shared/gamemath"
	"github.com/yohamta/donburi"
)

// chunkIndex maps a world coordinate to a chunk index, clamped to the grid.
func (b *Board) chunkIndex(v float64) int {
	i := int(math.Floor(v / b.cfg.TileSize / float64(b.cfg.ChunkSize)))
	return gamemath.ClampInt(i, 0, b.cfg.BoardSize-1)
}

// chunkRange returns the clamped, inclusive chunk rectangle covering bounds.
func (b *Board) chunkRange(bounds gamemath.Bounds) (minX, maxX, minY, maxY int) {
	return b.chunkIndex(bounds.MinX), b.chunkIndex(bounds.MaxX),
		b.chunkIndex(bounds.MinY), b.chunkIndex(bounds.MaxY)
}

// containingChunks returns every chunk overlapped by any of the entry's
// hitboxes. Membership is conservative: every chunk in each hitbox's bounds
// rectangle counts, corners included.
func (b *Board) containingChunks(entry *donburi.Entry) map[components.ChunkCoord]struct{} {
	coords := make(map[components.ChunkCoord]struct{})
	for _, box := range components.Hitboxes.Get(entry).Boxes {
		minX, maxX, minY, maxY := b.chunkRange(box.Bounds)
		for x := minX; x <= maxX; x++ {
			for y := minY; y <= maxY; y++ {
				coords[components.ChunkCoord{X: x, Y: y}] = struct{}{}
			}
		}
	}
	return coords
}

// RecalculateContainingChunks brings the entry's chunk membership in line with
// its current hitbox bounds. Hitbox geometry must already be up to date.
func (b *Board) RecalculateContainingChunks(entry *donburi.Entry) {
	kind := components.Identity.Get(entry).Kind
	membership := components.ChunkMembership.Get(entry)
	if membership.Chunks == nil {
		membership.Chunks = make(map[components.ChunkCoord]struct{})
	}

	current := b.containingChunks(entry)
	e := entry.Entity()

	for c := range membership.Chunks {
		if _, stays := current[c]; !stays {
			b.GetChunk(c.X, c.Y).RemoveEntity(e, kind)
			delete(membership.Chunks, c)
		}
	}
	for c := range current {
		if _, had := membership.Chunks[c]; !had {
			b.GetChunk(c.X, c.Y).AddEntity(e, kind)
			membership.Chunks[c] = struct{}{}
		}
	}
}

func (b *Board) leaveAllChunks(entry *donburi.Entry) {
	kind := components.Identity.Get(entry).Kind
	membership := components.ChunkMembership.Get(entry)
	for c := range membership.Chunks {
		b.GetChunk(c.X, c.Y).RemoveEntity(entry.Entity(), kind)
	}
	membership.Chunks = nil
}

// VerifyChunkMembership checks that the entry is listed in exactly the chunks
// its hitboxes overlap and that its recorded membership matches the chunks.
func (b *Board) VerifyChunkMembership(entry *donburi.Entry) error {
	id := components.Identity.Get(entry).ID
	want := b.containingChunks(entry)
	recorded := components.ChunkMembership.Get(entry).Chunks
	e := entry.Entity()

	for c := range want {
		if _, ok := recorded[c]; !ok {
			return fmt.Errorf("entity %s: overlaps chunk %s but membership does not record it", id, c)
		}
		if !b.GetChunk(c.X, c.Y).Contains(e) {
			return fmt.Errorf("entity %s: overlaps chunk %s but is not listed in it", id, c)
		}
	}
	for c := range recorded {
		if _, ok := want[c]; !ok {
			return fmt.Errorf("entity %s: membership records chunk %s it does not overlap", id, c)
		}
	}

	// Stale listings outside the overlapped area.
	for x, column := range b.chunks {
		for y, chunk := range column {
			if _, ok := want[components.ChunkCoord{X: x, Y: y}]; ok {
				continue
			}
			if slices.Contains(chunk.gameObjects, e) {
				return fmt.Errorf("entity %s: still listed in chunk %s", id, chunk.Coord())
			}
		}
	}
	return nil
}
