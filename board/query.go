package board

import (
	"github.com/automoto/tundra/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ChunksInRegion returns the chunks overlapping the region, clamped to the grid.
func (b *Board) ChunksInRegion(region gamemath.Bounds) []*Chunk {
	minX, maxX, minY, maxY := b.chunkRange(region)
	chunks := make([]*Chunk, 0, (maxX-minX+1)*(maxY-minY+1))
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			chunks = append(chunks, b.chunks[x][y])
		}
	}
	return chunks
}

// EntitiesInRegion returns the entries of kind entity listed in any chunk
// overlapping the region. Each entry appears once. The result is a chunk-level
// candidate set; callers narrow it with hitbox bounds or IsColliding.
func (b *Board) EntitiesInRegion(region gamemath.Bounds) []*donburi.Entry {
	return b.collectInRegion(region, (*Chunk).Entities)
}

// GameObjectsInRegion is EntitiesInRegion for objects of every kind.
func (b *Board) GameObjectsInRegion(region gamemath.Bounds) []*donburi.Entry {
	return b.collectInRegion(region, (*Chunk).GameObjects)
}

func (b *Board) collectInRegion(region gamemath.Bounds, list func(*Chunk) []donburi.Entity) []*donburi.Entry {
	seen := make(map[donburi.Entity]struct{})
	var entries []*donburi.Entry
	for _, c := range b.ChunksInRegion(region) {
		for _, e := range list(c) {
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			if b.World.Valid(e) {
				entries = append(entries, b.World.Entry(e))
			}
		}
	}
	return entries
}
