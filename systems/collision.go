package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/tundra/board"
	"github.com/automoto/tundra/components"
	cfg "github.com/automoto/tundra/config"
	"github.com/automoto/tundra/shared/collision"
	"github.com/automoto/tundra/shared/gamemath"
	"github.com/automoto/tundra/shared/hitbox"
	"github.com/automoto/tundra/shared/netconfig"
	"github.com/automoto/tundra/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewCollisionSystem returns an update system that resolves entity and wall
// collisions after physics has moved everything.
func NewCollisionSystem(b *board.Board) func(*ecs.ECS) {
	return func(_ *ecs.ECS) {
		UpdateCollisions(b)
	}
}

// UpdateCollisions resolves collisions for every pushable game object.
func UpdateCollisions(b *board.Board) {
	wallBox := hitbox.NewRectangular(netconfig.NoEntity, gamemath.Vec{}, b.Config().TileSize, b.Config().TileSize, netconfig.CollisionHard)

	components.Hitboxes.Each(b.World, func(e *donburi.Entry) {
		if !pushable(e) {
			return
		}
		guard("collision", e, func() error {
			err := ResolveEntityCollisions(b, e)
			ResolveWallCollisions(b, e, wallBox)
			return err
		})
	})
}

// pushable reports whether other objects can move e. Ghosts and projectiles
// are never pushed, nor are objects made only of hard hitboxes.
func pushable(e *donburi.Entry) bool {
	if e.HasComponent(tags.Ghost) || e.HasComponent(tags.Projectile) {
		return false
	}
	for _, box := range components.Hitboxes.Get(e).Boxes {
		if box.CollisionType == netconfig.CollisionSoft {
			return true
		}
	}
	return false
}

// ResolveEntityCollisions pushes e out of every game object it overlaps. Hard
// hitboxes move e out of the overlap; soft hitboxes accelerate it away in
// proportion to the mass ratio. Pairs that cannot be resolved are skipped and
// reported together in the returned error.
func ResolveEntityCollisions(b *board.Board, e *donburi.Entry) error {
	transform := components.Transform.Get(e)
	physics := components.Physics.Get(e)
	boxes := components.Hitboxes.Get(e)
	self := e.Entity()
	var errs []error

	for _, box := range boxes.Boxes {
		for _, other := range b.GameObjectsInRegion(box.Bounds) {
			if other.Entity() == self || other.HasComponent(tags.Ghost) || other.HasComponent(tags.Projectile) {
				continue
			}
			otherMass := components.Physics.Get(other).Mass

			for _, pushing := range components.Hitboxes.Get(other).Boxes {
				if !box.IsColliding(pushing) {
					continue
				}
				info, err := collision.GetPushInfo(box, pushing)
				if err != nil {
					errs = append(errs, fmt.Errorf("push from %s: %w", describe(other), err))
					continue
				}

				switch pushing.CollisionType {
				case netconfig.CollisionHard:
					transform.Position, physics.Velocity = collision.ResolveHard(transform.Position, physics.Velocity, info)
					transform.Position = gamemath.ClampToWorld(transform.Position, b.WorldSize())
					boxes.Refresh(transform)
					b.RecalculateContainingChunks(e)
				default:
					physics.Velocity = collision.ResolveSoft(physics.Velocity, info,
						massRatio(otherMass, physics.Mass), cfg.Physics.EntityPushForce, b.TPS())
				}
			}
		}
	}
	return errors.Join(errs...)
}

// ResolveWallCollisions moves e's circular hitboxes out of nearby wall tiles.
// Rectangular hitboxes are not resolved against walls. wallBox is scratch space
// reused for each tile.
func ResolveWallCollisions(b *board.Board, e *donburi.Entry, wallBox *hitbox.Hitbox) {
	transform := components.Transform.Get(e)
	physics := components.Physics.Get(e)
	boxes := components.Hitboxes.Get(e)

	for _, box := range boxes.Boxes {
		if box.Kind != hitbox.Circular {
			continue
		}
		for _, wall := range b.WallsNear(box.Position, cfg.Physics.WallScanRadius) {
			wallBox.Update(b.TileCenter(wall), 0)
			if !box.IsColliding(wallBox) {
				continue
			}
			info, err := collision.GetPushInfo(box, wallBox)
			if err != nil {
				continue
			}
			transform.Position, physics.Velocity = collision.ResolveHard(transform.Position, physics.Velocity, info)
			transform.Position = gamemath.ClampToWorld(transform.Position, b.WorldSize())
			boxes.Refresh(transform)
			b.RecalculateContainingChunks(e)
		}
	}
}

func massRatio(pushingMass, pushedMass float64) float64 {
	if pushedMass <= 0 {
		return 1
	}
	return pushingMass / pushedMass
}
