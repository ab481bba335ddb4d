package systems

import (
	"github.com/automoto/tundra/board"
	"github.com/automoto/tundra/components"
	"github.com/automoto/tundra/shared/gamemath"
	"github.com/yohamta/donburi"
)

// RenderPositionAt extrapolates a display position from the last tick's
// position and velocity: frameProgress of one tick's worth of motion, clamped
// to the world.
func RenderPositionAt(pos gamemath.Vec, vel *gamemath.Vec, frameProgress, tps, worldSize float64) gamemath.Vec {
	if vel == nil {
		return pos
	}
	return gamemath.ClampToWorld(pos.Add(vel.Scale(frameProgress/tps)), worldSize)
}

// UpdateRenderPositions recomputes every object's render position for a frame.
// It never touches simulated state.
func UpdateRenderPositions(b *board.Board, frameProgress float64) {
	tps := b.TPS()
	size := b.WorldSize()
	components.RenderPosition.Each(b.World, func(e *donburi.Entry) {
		transform := components.Transform.Get(e)
		physics := components.Physics.Get(e)
		components.RenderPosition.Get(e).Position = RenderPositionAt(transform.Position, physics.Velocity, frameProgress, tps, size)
	})
}
