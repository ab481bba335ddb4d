package systems

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/automoto/tundra/board"
	"github.com/automoto/tundra/components"
	cfg "github.com/automoto/tundra/config"
	"github.com/automoto/tundra/shared/gamemath"
	"github.com/automoto/tundra/shared/hitbox"
	"github.com/automoto/tundra/shared/messages"
	"github.com/automoto/tundra/systems/factory"
	"github.com/yohamta/donburi"
)

// ApplyMessages applies queued server messages in arrival order. A message
// that cannot be applied is logged and skipped.
func ApplyMessages(b *board.Board, msgs []any) {
	for _, msg := range msgs {
		var err error
		switch m := msg.(type) {
		case messages.EntitySpawn:
			_, err = ApplySpawn(b, m)
		case messages.EntityUpdate:
			err = ApplyUpdate(b, m)
		case messages.EntityRemove:
			err = b.RemoveObject(m.ID)
		default:
			err = fmt.Errorf("unexpected message %T", msg)
		}
		if err != nil {
			log.Printf("[netsync] %v", err)
		}
	}
}

// ApplySpawn creates the object named by a spawn message. A spawn for an id
// that already exists is applied as a full update instead, geometry and
// terminal velocity included.
func ApplySpawn(b *board.Board, spawn messages.EntitySpawn) (*donburi.Entry, error) {
	if entry, err := b.Lookup(spawn.ID); err == nil {
		update := messages.EntityUpdate{
			ID:                spawn.ID,
			Position:          &spawn.Position,
			Rotation:          &spawn.Rotation,
			Velocity:          spawn.Velocity,
			Acceleration:      spawn.Acceleration,
			ClearVelocity:     spawn.Velocity == nil,
			ClearAcceleration: spawn.Acceleration == nil,
			Mass:              &spawn.Mass,
			Hitboxes:          spawn.Hitboxes,
		}
		if err := ApplyEntityUpdate(b, entry, update); err != nil {
			return entry, err
		}
		tv := spawn.TerminalVelocity
		if tv == 0 {
			tv = cfg.EntityTypes[components.Identity.Get(entry).Type].TerminalVelocity
		}
		components.Physics.Get(entry).TerminalVelocity = tv
		return entry, nil
	}
	entry, err := factory.CreateEntity(b, spawn)
	if err != nil {
		return nil, fmt.Errorf("spawn %s: %w", spawn.ID, err)
	}
	return entry, nil
}

// ApplyUpdate looks up the object named by an update message and applies it.
func ApplyUpdate(b *board.Board, update messages.EntityUpdate) error {
	entry, err := b.Lookup(update.ID)
	if err != nil {
		return fmt.Errorf("update %s: %w", update.ID, err)
	}
	return ApplyEntityUpdate(b, entry, update)
}

// ApplyEntityUpdate overwrites an object's state with server data. It is the
// only way the server mutates a game object. Hitbox geometry and chunk
// membership are recomputed before it returns, so the object is consistent
// for the next tick or frame.
func ApplyEntityUpdate(b *board.Board, entry *donburi.Entry, data messages.EntityUpdate) error {
	transform := components.Transform.Get(entry)
	physics := components.Physics.Get(entry)
	boxes := components.Hitboxes.Get(entry)

	if len(data.Hitboxes) > 0 && len(data.Hitboxes) != len(boxes.Boxes) {
		return fmt.Errorf("update %s: %d hitboxes, object has %d", data.ID, len(data.Hitboxes), len(boxes.Boxes))
	}

	if data.Position != nil {
		transform.Position = gamemath.ClampToWorld(factory.VecFrom(*data.Position), b.WorldSize())
	}
	if data.Rotation != nil {
		transform.Rotation = *data.Rotation
	}

	switch {
	case data.ClearVelocity:
		physics.Velocity = nil
	case data.Velocity != nil:
		physics.SetVelocity(factory.VecFrom(*data.Velocity))
	}
	switch {
	case data.ClearAcceleration:
		physics.Acceleration = nil
	case data.Acceleration != nil:
		physics.SetAcceleration(factory.VecFrom(*data.Acceleration))
	}
	if data.Mass != nil && *data.Mass > 0 {
		physics.Mass = *data.Mass
	}

	for i, h := range data.Hitboxes {
		box := boxes.Boxes[i]
		box.Offset = gamemath.Vec{X: h.OffsetX, Y: h.OffsetY}
		box.CollisionType = h.CollisionType
		switch box.Kind {
		case hitbox.Circular:
			box.Radius = h.Radius
		case hitbox.Rectangular:
			box.Width, box.Height = h.Width, h.Height
		}
	}

	boxes.Refresh(transform)
	b.RecalculateContainingChunks(entry)
	return nil
}

// VerifyEntity checks an object for state the simulation cannot handle.
func VerifyEntity(b *board.Board, entry *donburi.Entry) error {
	id := components.Identity.Get(entry).ID
	if len(components.Hitboxes.Get(entry).Boxes) == 0 {
		return fmt.Errorf("entity %s: no hitboxes", id)
	}

	var errs []error
	pos := components.Transform.Get(entry).Position
	if math.IsNaN(pos.X) || math.IsNaN(pos.Y) || pos.X < 0 || pos.Y < 0 || pos.X >= b.WorldSize() || pos.Y >= b.WorldSize() {
		errs = append(errs, fmt.Errorf("position %+v outside the world", pos))
	}
	physics := components.Physics.Get(entry)
	if physics.Velocity != nil && physics.Velocity.Length() <= 0 {
		errs = append(errs, errors.New("zero-length velocity"))
	}
	if physics.Acceleration != nil && physics.Acceleration.Length() <= 0 {
		errs = append(errs, errors.New("zero-length acceleration"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("entity %s: %w", id, err)
	}
	return nil
}
