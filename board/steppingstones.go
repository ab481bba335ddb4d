package board

import "github.com/automoto/tundra/shared/gamemath"

// OnSteppingStone reports whether p lies on a stepping stone listed in the
// chunk containing p.
func (b *Board) OnSteppingStone(p gamemath.Vec) bool {
	c := b.ChunkCoordAt(p.X, p.Y)
	for _, s := range b.GetChunk(c.X, c.Y).SteppingStones() {
		if p.Distance(gamemath.Vec{X: s.X, Y: s.Y}) <= s.Radius {
			return true
		}
	}
	return false
}

// InRiver reports whether an object centred at p is carried by a river: the
// tile under its centre is flowing water and it is not on a stepping stone.
func (b *Board) InRiver(p gamemath.Vec) bool {
	tile := b.TileAt(p)
	if !tile.IsWater || !tile.HasFlow {
		return false
	}
	return !b.OnSteppingStone(p)
}
