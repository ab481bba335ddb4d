package systems

import (
	"github.com/automoto/tundra/board"
	"github.com/automoto/tundra/components"
	cfg "github.com/automoto/tundra/config"
	"github.com/automoto/tundra/shared/gamemath"
	"github.com/automoto/tundra/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewPhysicsSystem returns an update system that advances every simulated
// game object by one tick.
func NewPhysicsSystem(b *board.Board) func(*ecs.ECS) {
	return func(_ *ecs.ECS) {
		UpdatePhysics(b)
	}
}

// UpdatePhysics integrates one tick for every game object except ghosts.
func UpdatePhysics(b *board.Board) {
	components.Physics.Each(b.World, func(e *donburi.Entry) {
		if e.HasComponent(tags.Ghost) {
			return
		}
		guard("physics", e, func() error {
			IntegrateEntity(b, e)
			return nil
		})
	})
}

// IntegrateEntity advances one game object by a tick: tile friction, then
// acceleration with friction compensation and terminal velocity falloff (or
// friction decay when not accelerating), then river push, then movement.
// Chunk membership is current when it returns.
func IntegrateEntity(b *board.Board, e *donburi.Entry) {
	transform := components.Transform.Get(e)
	physics := components.Physics.Get(e)
	tps := b.TPS()

	tile := b.TileAt(transform.Position)
	inRiver := b.InRiver(transform.Position)

	multiplier := tile.MoveSpeedMultiplier
	if tile.IsWater && !inRiver {
		multiplier = 1
	}
	if e.HasComponent(components.TerrainSpeed) {
		if m := components.TerrainSpeed.Get(e).Modifier; m != nil {
			if override, ok := m.SpeedMultiplierOverride(tile.Type, inRiver); ok {
				multiplier = override
			}
		}
	}

	var frictionRemoved float64
	if physics.Velocity != nil {
		speed, removed := gamemath.ApplyTileFriction(physics.Velocity.Length(), tile.Friction, tps)
		frictionRemoved = removed
		physics.SetVelocity(physics.Velocity.WithLength(speed))
	}

	if physics.Acceleration != nil {
		before := physics.Speed()
		magnitude := physics.Acceleration.Length() * tile.Friction * multiplier / tps
		magnitude *= gamemath.AccelerationFalloff(before, physics.TerminalVelocity)
		magnitude += frictionRemoved

		var v gamemath.Vec
		if physics.Velocity != nil {
			v = *physics.Velocity
		}
		v = v.Add(gamemath.FromPolar(magnitude, physics.Acceleration.Angle()))
		after := v.Length()
		if clamped := gamemath.ClampSpeed(before, after, physics.TerminalVelocity); clamped != after {
			v = v.WithLength(clamped)
		}
		physics.SetVelocity(v)
	} else if physics.Velocity != nil {
		speed := gamemath.ApplyFrictionDecay(physics.Velocity.Length(), cfg.Physics.FrictionDecay, tile.Friction, tps)
		if speed <= 0 {
			physics.Velocity = nil
		} else {
			physics.SetVelocity(physics.Velocity.WithLength(speed))
		}
	}

	if inRiver {
		var v gamemath.Vec
		if physics.Velocity != nil {
			v = *physics.Velocity
		}
		physics.SetVelocity(v.Add(gamemath.FromPolar(cfg.Physics.RiverPushForce/tps, tile.FlowDirection)))
	}

	if physics.Velocity != nil {
		transform.Position = gamemath.ClampToWorld(
			transform.Position.Add(physics.Velocity.Scale(1/tps)),
			b.WorldSize(),
		)
	}
	components.Hitboxes.Get(e).Refresh(transform)
	b.RecalculateContainingChunks(e)
}
