package systems

import (
	"math"

	"github.com/automoto/tundra/board"
	"github.com/automoto/tundra/components"
	"github.com/automoto/tundra/shared/gamemath"
	"github.com/automoto/tundra/shared/hitbox"
	"github.com/automoto/tundra/shared/netconfig"
	"github.com/automoto/tundra/tags"
	"github.com/yohamta/donburi"
)

// SelectEntityAt returns the entity whose hitboxes touch a circle of the given
// radius around point and whose position is closest to it. Ghosts are ignored.
func SelectEntityAt(b *board.Board, point gamemath.Vec, radius float64) (*donburi.Entry, bool) {
	probe := hitbox.NewCircular(netconfig.NoEntity, gamemath.Vec{}, radius, netconfig.CollisionSoft)
	probe.Update(point, 0)

	var best *donburi.Entry
	bestDist := math.Inf(1)
	for _, e := range EntitiesCollidingWith(b, probe) {
		if e.HasComponent(tags.Ghost) {
			continue
		}
		d := components.Transform.Get(e).Position.Distance(point)
		if d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, best != nil
}

// EntitiesCollidingWith returns the entities with a hitbox overlapping box,
// excluding the box's owner. Boxes owned by NoEntity exclude nothing. Only
// chunks under the box's bounds are searched.
func EntitiesCollidingWith(b *board.Board, box *hitbox.Hitbox) []*donburi.Entry {
	var hits []*donburi.Entry
	for _, e := range b.EntitiesInRegion(box.Bounds) {
		if box.Owner != netconfig.NoEntity && components.Identity.Get(e).ID == box.Owner {
			continue
		}
		for _, other := range components.Hitboxes.Get(e).Boxes {
			if box.IsColliding(other) {
				hits = append(hits, e)
				break
			}
		}
	}
	return hits
}

// CanPlace reports whether a ghost could be built where it stands: no other
// entity overlaps any of its hitboxes.
func CanPlace(b *board.Board, ghost *donburi.Entry) bool {
	for _, box := range components.Hitboxes.Get(ghost).Boxes {
		if len(EntitiesCollidingWith(b, box)) > 0 {
			return false
		}
	}
	return true
}
