package board

import (
	"github.com/automoto/tundra/shared/gamemath"
	"github.com/automoto/tundra/tags"
	"github.com/solarlune/resolv"
)

// buildWallSpace adds one resolv object per wall tile. The space uses one cell
// per tile, and a probe object is moved over it to find walls near a point.
func (b *Board) buildWallSpace() {
	size := int(b.cfg.WorldSize())
	cell := int(b.cfg.TileSize)
	b.walls = resolv.NewSpace(size, size, cell, cell)

	dims := b.cfg.BoardDimensions()
	ts := b.cfg.TileSize
	for y := 0; y < dims; y++ {
		for x := 0; x < dims; x++ {
			if !b.tiles[y*dims+x].IsWall {
				continue
			}
			obj := resolv.NewObject(float64(x)*ts, float64(y)*ts, ts, ts, tags.ResolvWall)
			obj.SetShape(resolv.NewRectangle(0, 0, ts, ts))
			obj.Data = TileCoord{X: x, Y: y} // Link for O(1) lookup
			b.walls.Add(obj)
		}
	}

	b.probe = resolv.NewObject(0, 0, ts, ts, tags.ResolvProbe)
	b.walls.Add(b.probe)
}

// WallsNear returns the wall tiles within radius tiles of p, clamped to the
// world. The result may include walls the caller's shape does not touch.
func (b *Board) WallsNear(p gamemath.Vec, radius int) []TileCoord {
	reach := float64(radius) * b.cfg.TileSize
	area := gamemath.Bounds{
		MinX: gamemath.ClampFloat(p.X-reach, 0, b.WorldSize()),
		MaxX: gamemath.ClampFloat(p.X+reach, 0, b.WorldSize()),
		MinY: gamemath.ClampFloat(p.Y-reach, 0, b.WorldSize()),
		MaxY: gamemath.ClampFloat(p.Y+reach, 0, b.WorldSize()),
	}

	b.probe.X = area.MinX
	b.probe.Y = area.MinY
	b.probe.W = max(area.MaxX-area.MinX, 1)
	b.probe.H = max(area.MaxY-area.MinY, 1)
	b.probe.Update()

	check := b.probe.Check(0, 0, tags.ResolvWall)
	if check == nil {
		return nil
	}
	walls := check.ObjectsByTags(tags.ResolvWall)
	coords := make([]TileCoord, 0, len(walls))
	for _, w := range walls {
		if c, ok := w.Data.(TileCoord); ok {
			coords = append(coords, c)
		}
	}
	return coords
}
