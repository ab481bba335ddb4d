// Package hitbox implements the collision shapes attached to game objects.
//
// A Hitbox is a tagged union over circular and rectangular shapes. It stores
// the id of the object that owns it rather than a reference; the owner's
// transform is passed in whenever the world-space geometry is refreshed.
package hitbox

import (
	"math"

	"github.com/automoto/tundra/shared/gamemath"
	"github.com/automoto/tundra/shared/netconfig"
)

// Kind is the hitbox shape tag.
type Kind int

const (
	Circular Kind = iota
	Rectangular
)

func (k Kind) String() string {
	if k == Rectangular {
		return "rectangular"
	}
	return "circular"
}

type Hitbox struct {
	Kind          Kind
	Owner         netconfig.EntityID
	CollisionType netconfig.CollisionType

	// Offset is the local-space displacement from the owner's position.
	Offset gamemath.Vec

	// Derived world-space state, refreshed by UpdatePosition and UpdateBounds.
	Position gamemath.Vec
	Rotation float64
	Bounds   gamemath.Bounds

	// Circular payload.
	Radius float64

	// Rectangular payload. Vertices are in world space, SideAxes are unit
	// vectors along two adjacent edges.
	Width, Height float64
	Vertices      [4]gamemath.Vec
	SideAxes      [2]gamemath.Vec
}

func NewCircular(owner netconfig.EntityID, offset gamemath.Vec, radius float64, collisionType netconfig.CollisionType) *Hitbox {
	return &Hitbox{
		Kind:          Circular,
		Owner:         owner,
		CollisionType: collisionType,
		Offset:        offset,
		Radius:        radius,
	}
}

func NewRectangular(owner netconfig.EntityID, offset gamemath.Vec, width, height float64, collisionType netconfig.CollisionType) *Hitbox {
	return &Hitbox{
		Kind:          Rectangular,
		Owner:         owner,
		CollisionType: collisionType,
		Offset:        offset,
		Width:         width,
		Height:        height,
	}
}

// Update refreshes position, vertices and bounds from the owner's transform.
func (h *Hitbox) Update(ownerPosition gamemath.Vec, ownerRotation float64) {
	h.UpdatePosition(ownerPosition, ownerRotation)
	h.UpdateBounds(ownerRotation)
}

// UpdatePosition derives the world position: owner position plus the offset
// rotated by the owner's rotation.
func (h *Hitbox) UpdatePosition(ownerPosition gamemath.Vec, ownerRotation float64) {
	h.Position = ownerPosition.Add(h.Offset.Rotate(ownerRotation))
	h.Rotation = ownerRotation
}

// UpdateBounds recomputes the axis-aligned bounds. offsetRotation is the
// rotation of the owner; rectangular hitboxes recompute their vertices first so
// the bounds always contain the rotated shape.
func (h *Hitbox) UpdateBounds(offsetRotation float64) {
	switch h.Kind {
	case Circular:
		h.Bounds = gamemath.BoundsAround(h.Position, h.Radius, h.Radius)
	case Rectangular:
		h.Rotation = offsetRotation
		h.updateVertices()
		h.updateSideAxes()
		b := gamemath.Bounds{
			MinX: math.Inf(1), MaxX: math.Inf(-1),
			MinY: math.Inf(1), MaxY: math.Inf(-1),
		}
		for _, v := range h.Vertices {
			b.MinX = min(b.MinX, v.X)
			b.MaxX = max(b.MaxX, v.X)
			b.MinY = min(b.MinY, v.Y)
			b.MaxY = max(b.MaxY, v.Y)
		}
		h.Bounds = b
	}
}

// updateVertices rotates each local corner and translates it to the hitbox's
// world position. Order: top-left, top-right, bottom-right, bottom-left.
func (h *Hitbox) updateVertices() {
	hw, hh := h.Width/2, h.Height/2
	corners := [4]gamemath.Vec{
		{X: -hw, Y: hh},
		{X: hw, Y: hh},
		{X: hw, Y: -hh},
		{X: -hw, Y: -hh},
	}
	for i, c := range corners {
		h.Vertices[i] = h.Position.Add(c.Rotate(h.Rotation))
	}
}

func (h *Hitbox) updateSideAxes() {
	h.SideAxes[0] = h.Vertices[1].Sub(h.Vertices[0]).Normalized()
	h.SideAxes[1] = h.Vertices[3].Sub(h.Vertices[0]).Normalized()
}

// HalfDiagonal is the distance from the centre to the furthest point of the
// shape.
func (h *Hitbox) HalfDiagonal() float64 {
	if h.Kind == Circular {
		return h.Radius
	}
	return math.Hypot(h.Width/2, h.Height/2)
}

// ToLocal transforms a world-space point into this hitbox's unrotated frame,
// relative to its centre.
func (h *Hitbox) ToLocal(p gamemath.Vec) gamemath.Vec {
	return p.Sub(h.Position).Rotate(-h.Rotation)
}
