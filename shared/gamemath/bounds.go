package gamemath

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	MinX, MaxX, MinY, MaxY float64
}

// BoundsAround returns the box of the given half extents centred on p.
func BoundsAround(p Vec, halfW, halfH float64) Bounds {
	return Bounds{MinX: p.X - halfW, MaxX: p.X + halfW, MinY: p.Y - halfH, MaxY: p.Y + halfH}
}

// Overlaps reports whether two boxes intersect. Touching edges count as overlap.
func (b Bounds) Overlaps(o Bounds) bool {
	return b.MinX <= o.MaxX && b.MaxX >= o.MinX && b.MinY <= o.MaxY && b.MaxY >= o.MinY
}

// Contains reports whether p lies inside the box.
func (b Bounds) Contains(p Vec) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Union returns the smallest box containing both.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		MinX: min(b.MinX, o.MinX),
		MaxX: max(b.MaxX, o.MaxX),
		MinY: min(b.MinY, o.MinY),
		MaxY: max(b.MaxY, o.MaxY),
	}
}
