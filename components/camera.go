package components

import (
	"github.com/automoto/tundra/shared/netconfig"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Target   netconfig.EntityID

	// Pan eases the camera from its old target to a new one. PanFrom is the
	// position at the start of the pan.
	Pan     *gween.Tween
	PanFrom math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
