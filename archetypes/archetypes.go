package archetypes

import (
	"github.com/automoto/tundra/components"
	"github.com/automoto/tundra/tags"
	"github.com/yohamta/donburi"
)

var (
	// GameObject carries what every networked or local game object needs.
	GameObject = newArchetype(
		components.Identity,
		components.Transform,
		components.Physics,
		components.Hitboxes,
		components.ChunkMembership,
		components.RenderPosition,
		components.RenderParts,
	)
	Entity = GameObject.with(tags.Entity)
	Item   = GameObject.with(tags.Item)
	// Projectile objects are simulated and drawn but are not chunk entities.
	Projectile = GameObject.with(tags.Projectile)

	Camera = newArchetype(
		components.Camera,
	)
	DebugOverlay = newArchetype(
		components.DebugOverlay,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) with(cs ...donburi.IComponentType) *archetype {
	return newArchetype(a.merged(cs)...)
}

func (a *archetype) merged(cs []donburi.IComponentType) []donburi.IComponentType {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	return append(all, cs...)
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(a.merged(cs)...))
}
