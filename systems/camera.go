package systems

import (
	"github.com/automoto/tundra/board"
	"github.com/automoto/tundra/components"
	cfg "github.com/automoto/tundra/config"
	"github.com/automoto/tundra/shared/gamemath"
	"github.com/automoto/tundra/shared/netconfig"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// FocusCamera points the camera at a new target. The camera eases over to it
// instead of jumping.
func FocusCamera(w donburi.World, target netconfig.EntityID) {
	entry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(entry)
	if camera.Target == target {
		return
	}
	camera.Target = target
	camera.PanFrom = camera.Position
	camera.Pan = gween.New(0, 1, cfg.Camera.PanDuration, ease.InOutQuad)
}

// UpdateCamera moves the camera towards its target's render position. It runs
// once per frame, after render positions are updated; dt is the frame time in
// seconds.
func UpdateCamera(b *board.Board, dt float32, screenW, screenH float64) {
	entry, ok := components.Camera.First(b.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(entry)

	target, err := b.Lookup(camera.Target)
	if err != nil {
		// Target is gone; hold position.
		camera.Pan = nil
		return
	}
	goal := components.RenderPosition.Get(target).Position

	if camera.Pan != nil {
		t, done := camera.Pan.Update(dt)
		camera.Position = lerpVec2(camera.PanFrom, goal, float64(t))
		if done {
			camera.Pan = nil
		}
	} else {
		camera.Position.X += (goal.X - camera.Position.X) * cfg.Camera.FollowSmoothing
		camera.Position.Y += (goal.Y - camera.Position.Y) * cfg.Camera.FollowSmoothing
	}
	camera.Position = clampCamera(camera.Position, b.WorldSize(), screenW, screenH, cfg.Camera.Zoom)
}

// clampCamera keeps the view inside the world when the world is larger than the
// screen, and centres the world otherwise.
func clampCamera(p math.Vec2, worldSize, screenW, screenH, zoom float64) math.Vec2 {
	halfW := screenW / 2 / zoom
	halfH := screenH / 2 / zoom
	if 2*halfW >= worldSize {
		p.X = worldSize / 2
	} else {
		p.X = gamemath.ClampFloat(p.X, halfW, worldSize-halfW)
	}
	if 2*halfH >= worldSize {
		p.Y = worldSize / 2
	} else {
		p.Y = gamemath.ClampFloat(p.Y, halfH, worldSize-halfH)
	}
	return p
}

func lerpVec2(from math.Vec2, to gamemath.Vec, t float64) math.Vec2 {
	return math.Vec2{
		X: from.X + (to.X-from.X)*t,
		Y: from.Y + (to.Y-from.Y)*t,
	}
}

// View maps between world space (y up) and screen space (y down).
type View struct {
	Center  math.Vec2
	Zoom    float64
	ScreenW float64
	ScreenH float64
}

// CameraView returns the view of the world's camera. ok is false when there is
// no camera.
func CameraView(w donburi.World, screenW, screenH float64) (View, bool) {
	entry, ok := components.Camera.First(w)
	if !ok {
		return View{}, false
	}
	return View{
		Center:  components.Camera.Get(entry).Position,
		Zoom:    cfg.Camera.Zoom,
		ScreenW: screenW,
		ScreenH: screenH,
	}, true
}

func (v View) ToScreen(p gamemath.Vec) (x, y float64) {
	x = (p.X-v.Center.X)*v.Zoom + v.ScreenW/2
	y = v.ScreenH/2 - (p.Y-v.Center.Y)*v.Zoom
	return x, y
}

func (v View) ToWorld(x, y float64) gamemath.Vec {
	return gamemath.Vec{
		X: (x-v.ScreenW/2)/v.Zoom + v.Center.X,
		Y: (v.ScreenH/2-y)/v.Zoom + v.Center.Y,
	}
}

// Visible returns the world region on screen.
func (v View) Visible() gamemath.Bounds {
	return gamemath.BoundsAround(gamemath.Vec{X: v.Center.X, Y: v.Center.Y}, v.ScreenW/2/v.Zoom, v.ScreenH/2/v.Zoom)
}
