package collision

import (
	"math"

	"github.com/automoto/tundra/shared/gamemath"
)

// softPushExponent makes deep overlaps push disproportionately harder.
const softPushExponent = 1.1

// ResolveHard moves pos out of the overlap and removes the part of vel directed
// into the surface. Tangential velocity is kept. A nil vel is left nil.
func ResolveHard(pos gamemath.Vec, vel *gamemath.Vec, info PushInfo) (gamemath.Vec, *gamemath.Vec) {
	if info.AmountIn <= 0 {
		return pos, vel
	}
	normal := gamemath.FromPolar(1, info.Direction)
	pos = pos.Add(normal.Scale(info.AmountIn))

	if vel == nil {
		return pos, nil
	}
	into := vel.Dot(normal)
	if into >= 0 {
		return pos, vel
	}
	v := vel.Sub(normal.Scale(into))
	if v.Length() <= 0 {
		return pos, nil
	}
	return pos, &v
}

// ResolveSoft returns vel accelerated away from the overlap. massRatio is the
// pushing mass over the pushed mass.
func ResolveSoft(vel *gamemath.Vec, info PushInfo, massRatio, pushForce, tps float64) *gamemath.Vec {
	if info.AmountIn <= 0 {
		return vel
	}
	magnitude := math.Pow(info.AmountIn, softPushExponent) * pushForce * massRatio / tps
	push := gamemath.FromPolar(magnitude, info.Direction)

	var v gamemath.Vec
	if vel != nil {
		v = *vel
	}
	v = v.Add(push)
	if v.Length() <= 0 {
		return nil
	}
	return &v
}
