package components

import (
	"github.com/automoto/tundra/shared/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData is the simulated position. Rotation is in radians,
// counter-clockwise from +x.
type TransformData struct {
	Position gamemath.Vec
	Rotation float64
}

var Transform = donburi.NewComponentType[TransformData]()
