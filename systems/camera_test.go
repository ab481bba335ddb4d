package systems

import (
	"testing"

	"github.com/automoto/tundra/components"
	cfg "github.com/automoto/tundra/config"
	"github.com/automoto/tundra/shared/gamemath"
	"github.com/automoto/tundra/shared/messages"
	"github.com/automoto/tundra/shared/netconfig"
	"github.com/automoto/tundra/systems/factory"
	"github.com/yohamta/donburi/features/math"
)

func TestViewFlipsY(t *testing.T) {
	view := View{Center: math.Vec2{X: 100, Y: 200}, Zoom: 2, ScreenW: 640, ScreenH: 480}

	x, y := view.ToScreen(gamemath.Vec{X: 110, Y: 210})
	if x != 340 || y != 220 {
		t.Errorf("ToScreen = (%v, %v), want (340, 220)", x, y)
	}
	if back := view.ToWorld(x, y); back != (gamemath.Vec{X: 110, Y: 210}) {
		t.Errorf("ToWorld = %+v, want (110, 210)", back)
	}

	visible := view.Visible()
	want := gamemath.Bounds{MinX: -60, MaxX: 260, MinY: 80, MaxY: 320}
	if visible != want {
		t.Errorf("Visible = %+v, want %+v", visible, want)
	}
}

func TestClampCamera(t *testing.T) {
	tests := []struct {
		name  string
		p     math.Vec2
		world float64
		want  math.Vec2
	}{
		{"inside", math.Vec2{X: 1000, Y: 1000}, 2048, math.Vec2{X: 1000, Y: 1000}},
		{"past the corner", math.Vec2{X: 0, Y: 5000}, 2048, math.Vec2{X: 320, Y: 1808}},
		{"world smaller than screen", math.Vec2{X: 10, Y: 10}, 400, math.Vec2{X: 200, Y: 200}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampCamera(tt.p, tt.world, 640, 480, 1); got != tt.want {
				t.Errorf("clampCamera = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCameraPansThenFollows(t *testing.T) {
	b := newTestBoard(t, nil)
	e := spawnEntity(t, b, messages.EntitySpawn{ID: 1, Type: netconfig.EntityKrumblid, Position: messages.Vector{X: 1000, Y: 1000}})
	cameraEntry := factory.CreateCamera(b.World, 500, 500, netconfig.NoEntity)
	camera := components.Camera.Get(cameraEntry)

	FocusCamera(b.World, 1)
	if camera.Target != 1 || camera.Pan == nil {
		t.Fatalf("camera = %+v, want a pan towards 1", camera)
	}

	// One long frame finishes the pan.
	UpdateCamera(b, cfg.Camera.PanDuration+1, 640, 480)
	if camera.Pan != nil {
		t.Error("pan still running")
	}
	if camera.Position != (math.Vec2{X: 1000, Y: 1000}) {
		t.Errorf("position after pan = %+v, want (1000, 1000)", camera.Position)
	}

	components.RenderPosition.Get(e).Position = gamemath.Vec{X: 1100, Y: 1000}
	UpdateCamera(b, 0.016, 640, 480)
	wantX := 1000 + 100*cfg.Camera.FollowSmoothing
	if !approx(camera.Position.X, wantX) || camera.Position.Y != 1000 {
		t.Errorf("position after follow = %+v, want x %v", camera.Position, wantX)
	}

	// Refocusing on the current target does not restart the pan.
	FocusCamera(b.World, 1)
	if camera.Pan != nil {
		t.Error("refocus started a pan")
	}
}

func TestCameraHoldsWhenTargetIsGone(t *testing.T) {
	b := newTestBoard(t, nil)
	cameraEntry := factory.CreateCamera(b.World, 700, 700, 42)

	UpdateCamera(b, 0.016, 640, 480)

	if got := components.Camera.Get(cameraEntry).Position; got != (math.Vec2{X: 700, Y: 700}) {
		t.Errorf("position = %+v, want unchanged", got)
	}
}
