package components

import (
	"image/color"

	"github.com/automoto/tundra/shared/gamemath"
	"github.com/yohamta/donburi"
)

// RenderPositionData is the interpolated position shown this frame. It is never
// written back to the transform.
type RenderPositionData struct {
	Position gamemath.Vec
}

var RenderPosition = donburi.NewComponentType[RenderPositionData]()

// RenderPart is one drawable piece of a game object, relative to its render
// position.
type RenderPart struct {
	Offset gamemath.Vec
	Radius float64
	Width  float64
	Height float64
	Color  color.RGBA
}

// RenderPartsData lists the drawable pieces of a game object.
type RenderPartsData struct {
	Parts []RenderPart
}

var RenderParts = donburi.NewComponentType[RenderPartsData]()
