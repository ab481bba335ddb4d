package hitbox

import (
	"math"

	"github.com/automoto/tundra/shared/gamemath"
)

// IsColliding reports whether two hitboxes overlap. Touching counts.
func (h *Hitbox) IsColliding(other *Hitbox) bool {
	switch {
	case h.Kind == Circular && other.Kind == Circular:
		return circlesCollide(h, other)
	case h.Kind == Circular && other.Kind == Rectangular:
		return circleRectangleCollide(h, other)
	case h.Kind == Rectangular && other.Kind == Circular:
		return circleRectangleCollide(other, h)
	default:
		return rectanglesCollide(h, other)
	}
}

func circlesCollide(a, b *Hitbox) bool {
	dx := a.Position.X - b.Position.X
	dy := a.Position.Y - b.Position.Y
	r := a.Radius + b.Radius
	return dx*dx+dy*dy <= r*r
}

// circleRectangleCollide moves the circle into the rectangle's unrotated frame
// and measures the distance to the closest point of the box.
func circleRectangleCollide(circle, rect *Hitbox) bool {
	local := rect.ToLocal(circle.Position)
	hw, hh := rect.Width/2, rect.Height/2
	closest := gamemath.Vec{
		X: gamemath.ClampFloat(local.X, -hw, hw),
		Y: gamemath.ClampFloat(local.Y, -hh, hh),
	}
	dx := local.X - closest.X
	dy := local.Y - closest.Y
	return dx*dx+dy*dy <= circle.Radius*circle.Radius
}

func rectanglesCollide(a, b *Hitbox) bool {
	if a.Position.Distance(b.Position) > a.HalfDiagonal()+b.HalfDiagonal() {
		return false
	}
	axes := [4]gamemath.Vec{a.SideAxes[0], a.SideAxes[1], b.SideAxes[0], b.SideAxes[1]}
	for _, axis := range axes {
		minA, maxA := projectVertices(a.Vertices, axis)
		minB, maxB := projectVertices(b.Vertices, axis)
		if maxA < minB || maxB < minA {
			return false
		}
	}
	return true
}

func projectVertices(vertices [4]gamemath.Vec, axis gamemath.Vec) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vertices {
		p := v.Dot(axis)
		lo = min(lo, p)
		hi = max(hi, p)
	}
	return lo, hi
}
