package factory

import (
	"fmt"

	"github.com/automoto/tundra/archetypes"
	"github.com/automoto/tundra/board"
	"github.com/automoto/tundra/components"
	cfg "github.com/automoto/tundra/config"
	"github.com/automoto/tundra/shared/gamemath"
	"github.com/automoto/tundra/shared/hitbox"
	"github.com/automoto/tundra/shared/messages"
	"github.com/automoto/tundra/shared/netconfig"
	"github.com/automoto/tundra/tags"
	"github.com/yohamta/donburi"
)

// CreateEntity spawns a game object from a spawn message and places it on the
// board. Hitboxes fall back to the entity type's defaults when the message
// carries none.
func CreateEntity(b *board.Board, spawn messages.EntitySpawn) (*donburi.Entry, error) {
	typeCfg, ok := cfg.EntityTypes[spawn.Type]
	if !ok {
		return nil, fmt.Errorf("create %s: unknown entity type %d", spawn.ID, spawn.Type)
	}

	hitboxes := spawn.Hitboxes
	if len(hitboxes) == 0 {
		hitboxes = DefaultHitboxes(typeCfg)
	}
	if len(hitboxes) == 0 {
		return nil, fmt.Errorf("create %s %s: no hitboxes", spawn.Type, spawn.ID)
	}

	var entry *donburi.Entry
	switch spawn.Kind {
	case netconfig.KindItem:
		entry = archetypes.Item.Spawn(b.World)
	case netconfig.KindProjectile:
		entry = archetypes.Projectile.Spawn(b.World)
	default:
		entry = archetypes.Entity.Spawn(b.World)
	}

	components.Identity.SetValue(entry, components.IdentityData{
		ID:   spawn.ID,
		Kind: spawn.Kind,
		Type: spawn.Type,
	})
	components.Transform.SetValue(entry, components.TransformData{
		Position: gamemath.ClampToWorld(VecFrom(spawn.Position), b.WorldSize()),
		Rotation: spawn.Rotation,
	})

	physics := components.PhysicsData{
		Mass:             spawn.Mass,
		TerminalVelocity: spawn.TerminalVelocity,
	}
	if physics.Mass <= 0 {
		physics.Mass = typeCfg.Mass
	}
	if physics.TerminalVelocity == 0 {
		physics.TerminalVelocity = typeCfg.TerminalVelocity
	}
	if spawn.Velocity != nil {
		physics.SetVelocity(VecFrom(*spawn.Velocity))
	}
	if spawn.Acceleration != nil {
		physics.SetAcceleration(VecFrom(*spawn.Acceleration))
	}
	components.Physics.SetValue(entry, physics)

	boxes := make([]*hitbox.Hitbox, 0, len(hitboxes))
	parts := make([]components.RenderPart, 0, len(hitboxes))
	for _, h := range hitboxes {
		boxes = append(boxes, NewHitbox(spawn.ID, h))
		parts = append(parts, components.RenderPart{
			Offset: gamemath.Vec{X: h.OffsetX, Y: h.OffsetY},
			Radius: h.Radius,
			Width:  h.Width,
			Height: h.Height,
			Color:  typeCfg.Color,
		})
	}
	components.Hitboxes.SetValue(entry, components.HitboxesData{Boxes: boxes})
	components.RenderParts.SetValue(entry, components.RenderPartsData{Parts: parts})

	if typeCfg.WadingMultiplier > 0 {
		entry.AddComponent(components.TerrainSpeed)
		components.TerrainSpeed.SetValue(entry, components.TerrainSpeedData{
			Modifier: components.WadingModifier{Multiplier: typeCfg.WadingMultiplier},
		})
	}

	if err := b.AddObject(entry); err != nil {
		entry.Remove()
		return nil, err
	}
	components.RenderPosition.SetValue(entry, components.RenderPositionData{
		Position: components.Transform.Get(entry).Position,
	})
	return entry, nil
}

// CreateGhost spawns a local building preview. It gets a negative id, is never
// simulated, and sits in the chunk grid so placement checks see it.
func CreateGhost(b *board.Board, entityType netconfig.EntityType, pos gamemath.Vec, rotation float64) (*donburi.Entry, error) {
	typeCfg, ok := cfg.EntityTypes[entityType]
	if !ok {
		return nil, fmt.Errorf("create ghost: unknown entity type %d", entityType)
	}
	entry, err := CreateEntity(b, messages.EntitySpawn{
		ID:       b.NextLocalID(),
		Kind:     netconfig.KindEntity,
		Type:     entityType,
		Position: messages.Vector{X: pos.X, Y: pos.Y},
		Rotation: rotation,
		Mass:     typeCfg.Mass,
	})
	if err != nil {
		return nil, err
	}
	entry.AddComponent(tags.Ghost)
	return entry, nil
}

// DefaultHitboxes converts an entity type's configured hitboxes to wire form.
func DefaultHitboxes(typeCfg cfg.EntityTypeConfig) []messages.HitboxData {
	out := make([]messages.HitboxData, 0, len(typeCfg.Hitboxes))
	for _, h := range typeCfg.Hitboxes {
		out = append(out, messages.HitboxData{
			Kind:          h.Kind,
			OffsetX:       h.OffsetX,
			OffsetY:       h.OffsetY,
			Radius:        h.Radius,
			Width:         h.Width,
			Height:        h.Height,
			CollisionType: h.CollisionType,
		})
	}
	return out
}

// NewHitbox builds a hitbox owned by id from its wire description.
func NewHitbox(owner netconfig.EntityID, h messages.HitboxData) *hitbox.Hitbox {
	offset := gamemath.Vec{X: h.OffsetX, Y: h.OffsetY}
	if h.Kind == netconfig.HitboxRectangular {
		return hitbox.NewRectangular(owner, offset, h.Width, h.Height, h.CollisionType)
	}
	return hitbox.NewCircular(owner, offset, h.Radius, h.CollisionType)
}

// VecFrom converts a wire vector.
func VecFrom(v messages.Vector) gamemath.Vec {
	return gamemath.Vec{X: v.X, Y: v.Y}
}
