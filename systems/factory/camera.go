package factory

import (
	"github.com/automoto/tundra/archetypes"
	"github.com/automoto/tundra/components"
	"github.com/automoto/tundra/shared/netconfig"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera centred on a world position, following target.
func CreateCamera(w donburi.World, x, y float64, target netconfig.EntityID) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.Vec2{X: x, Y: y},
		Target:   target,
	})
	return camera
}

// CreateDebugOverlay spawns the overlay settings entity.
func CreateDebugOverlay(w donburi.World, settings components.DebugOverlayData) *donburi.Entry {
	overlay := archetypes.DebugOverlay.Spawn(w)
	components.DebugOverlay.SetValue(overlay, settings)
	return overlay
}
