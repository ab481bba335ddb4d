package systems

import (
	"github.com/automoto/tundra/board"
	"github.com/automoto/tundra/components"
	cfg "github.com/automoto/tundra/config"
	"github.com/automoto/tundra/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewChunkSystem returns an update system that ends the tick: it recalculates
// chunk membership after everything has moved, counts the tick and runs due
// tick callbacks.
func NewChunkSystem(b *board.Board) func(*ecs.ECS) {
	return func(_ *ecs.ECS) {
		UpdateChunks(b)
		b.AdvanceTick()
		b.UpdateTickCallbacks()
	}
}

// UpdateChunks recalculates the chunks of every simulated game object. With
// invariant checking on, every object is verified afterwards.
func UpdateChunks(b *board.Board) {
	components.ChunkMembership.Each(b.World, func(e *donburi.Entry) {
		if e.HasComponent(tags.Ghost) {
			return
		}
		guard("board", e, func() error {
			b.RecalculateContainingChunks(e)
			return nil
		})
	})

	if !cfg.Debug.CheckInvariants {
		return
	}
	components.ChunkMembership.Each(b.World, func(e *donburi.Entry) {
		guard("board", e, func() error {
			if err := VerifyEntity(b, e); err != nil {
				return err
			}
			return b.VerifyChunkMembership(e)
		})
	})
}
