package components

import (
	"github.com/automoto/tundra/shared/gamemath"
	"github.com/automoto/tundra/shared/hitbox"
	"github.com/yohamta/donburi"
)

// HitboxesData is the fixed set of hitboxes of a game object.
type HitboxesData struct {
	Boxes []*hitbox.Hitbox
}

// Refresh recomputes every hitbox's world geometry from the owner's transform.
func (h *HitboxesData) Refresh(t *TransformData) {
	for _, box := range h.Boxes {
		box.Update(t.Position, t.Rotation)
	}
}

// Bounds returns the union of all hitbox bounds. ok is false when there are no
// hitboxes.
func (h *HitboxesData) Bounds() (b gamemath.Bounds, ok bool) {
	for i, box := range h.Boxes {
		if i == 0 {
			b = box.Bounds
			continue
		}
		b = b.Union(box.Bounds)
	}
	return b, len(h.Boxes) > 0
}

var Hitboxes = donburi.NewComponentType[HitboxesData]()
