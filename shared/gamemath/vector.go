package gamemath

import "math"

// Vec is a 2D vector in world units. Angles are radians, counter-clockwise from +x.
type Vec struct {
	X, Y float64
}

// FromPolar builds a vector from a magnitude and a direction.
func FromPolar(magnitude, direction float64) Vec {
	return Vec{X: magnitude * math.Cos(direction), Y: magnitude * math.Sin(direction)}
}

func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vec) Scale(s float64) Vec { return Vec{X: v.X * s, Y: v.Y * s} }

func (v Vec) Dot(o Vec) float64 { return v.X*o.X + v.Y*o.Y }

// Length returns the magnitude of v.
func (v Vec) Length() float64 { return math.Hypot(v.X, v.Y) }

// Angle returns the direction of v. The zero vector has angle 0.
func (v Vec) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Distance returns the distance between two points.
func (v Vec) Distance(o Vec) float64 { return math.Hypot(v.X-o.X, v.Y-o.Y) }

// Normalized returns the unit vector in the direction of v, or the zero vector.
func (v Vec) Normalized() Vec {
	l := v.Length()
	if l == 0 {
		return Vec{}
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// Rotate rotates v around the origin by angle radians.
func (v Vec) Rotate(angle float64) Vec {
	if angle == 0 {
		return v
	}
	sin, cos := math.Sincos(angle)
	return Vec{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// WithLength returns v rescaled to the given magnitude, keeping its direction.
func (v Vec) WithLength(magnitude float64) Vec {
	l := v.Length()
	if l == 0 {
		return Vec{}
	}
	return v.Scale(magnitude / l)
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool { return v.X == 0 && v.Y == 0 }

// ClampFloat constrains a value to the range [min, max].
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampInt constrains a value to the range [min, max].
func ClampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampToWorld keeps a position inside [0, worldSize) on both axes.
func ClampToWorld(p Vec, worldSize float64) Vec {
	upper := math.Nextafter(worldSize, 0)
	return Vec{
		X: ClampFloat(p.X, 0, upper),
		Y: ClampFloat(p.Y, 0, upper),
	}
}
