package systems

import (
	"testing"

	"github.com/automoto/tundra/components"
	cfg "github.com/automoto/tundra/config"
	"github.com/automoto/tundra/shared/gamemath"
	"github.com/automoto/tundra/shared/leveldata"
	"github.com/automoto/tundra/shared/messages"
	"github.com/automoto/tundra/shared/netconfig"
	"github.com/automoto/tundra/tags"
	"github.com/yohamta/donburi"
)

func withSandboxEntities(t *testing.T, n int) {
	t.Helper()
	old := cfg.Debug.SandboxEntities
	cfg.Debug.SandboxEntities = n
	t.Cleanup(func() { cfg.Debug.SandboxEntities = old })
}

func press(actions ...cfg.ActionID) *components.InputData {
	input := &components.InputData{}
	for _, a := range actions {
		input.Current[a] = true
	}
	return input
}

func runTicks(s *Sandbox, input *components.InputData, n int) {
	for range n {
		s.Update(input, View{}, false)
		s.b.AdvanceTick()
		s.b.UpdateTickCallbacks()
	}
}

func TestMoveDirection(t *testing.T) {
	tests := []struct {
		name    string
		actions []cfg.ActionID
		want    gamemath.Vec
	}{
		{"idle", nil, gamemath.Vec{}},
		{"up is +y", []cfg.ActionID{cfg.ActionMoveUp}, gamemath.Vec{Y: 1}},
		{"opposites cancel", []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight}, gamemath.Vec{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoveDirection(press(tt.actions...)); got != tt.want {
				t.Errorf("MoveDirection = %+v, want %+v", got, tt.want)
			}
		})
	}

	diagonal := MoveDirection(press(cfg.ActionMoveRight, cfg.ActionMoveDown))
	if !approx(diagonal.Length(), 1) || diagonal.X <= 0 || diagonal.Y >= 0 {
		t.Errorf("diagonal = %+v, want unit vector to the lower right", diagonal)
	}
}

func TestJustPressed(t *testing.T) {
	input := press(cfg.ActionPlaceGhost)
	if !JustPressed(input, cfg.ActionPlaceGhost) {
		t.Error("first tick is not a press")
	}
	input.Previous = input.Current
	if JustPressed(input, cfg.ActionPlaceGhost) || !Pressed(input, cfg.ActionPlaceGhost) {
		t.Error("held action reported as a new press")
	}
}

func TestNewSandboxSpawnsPlayerAtSpawnPoint(t *testing.T) {
	withSandboxEntities(t, 12)
	b := newTestBoard(t, nil)
	level := &leveldata.Level{SpawnPoints: []leveldata.SpawnPoint{{X: 640, Y: 320}}}

	s, err := NewSandbox(b, level, 7)
	if err != nil {
		t.Fatalf("NewSandbox: %v", err)
	}
	player, err := b.Lookup(s.Player())
	if err != nil {
		t.Fatalf("player: %v", err)
	}
	if !player.HasComponent(tags.Controlled) {
		t.Error("player is not controlled")
	}
	if pos := components.Transform.Get(player).Position; pos != (gamemath.Vec{X: 640, Y: 320}) {
		t.Errorf("player at %+v, want the spawn point", pos)
	}
	if n := b.ObjectCount(); n < 2 {
		t.Errorf("object count = %d, want the player and a crowd", n)
	}
}

func TestSandboxSteersPlayer(t *testing.T) {
	withSandboxEntities(t, 0)
	b := newTestBoard(t, nil)
	s, err := NewSandbox(b, nil, 1)
	if err != nil {
		t.Fatalf("NewSandbox: %v", err)
	}
	player, _ := b.Lookup(s.Player())

	s.Update(press(cfg.ActionMoveUp), View{}, false)
	a := components.Physics.Get(player).Acceleration
	if a == nil || !approx(a.Y, cfg.EntityTypes[netconfig.EntityPlayer].Acceleration) {
		t.Fatalf("acceleration = %v, want straight up", a)
	}

	s.Update(press(), View{}, false)
	if a := components.Physics.Get(player).Acceleration; a != nil {
		t.Errorf("acceleration = %+v, want nil when idle", *a)
	}
}

func TestSandboxBuildsGhost(t *testing.T) {
	tests := []struct {
		name      string
		blocked   bool
		wantBuilt bool
	}{
		{"clear", false, true},
		{"blocked", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withSandboxEntities(t, 0)
			b := newTestBoard(t, nil)
			s, err := NewSandbox(b, nil, 1)
			if err != nil {
				t.Fatalf("NewSandbox: %v", err)
			}
			player, _ := b.Lookup(s.Player())
			ghostPos := components.Transform.Get(player).Position.Add(gamemath.Vec{X: ghostDistance})

			if tt.blocked {
				spawnEntity(t, b, messages.EntitySpawn{ID: 100, Type: netconfig.EntityTree, Position: messages.Vector{X: ghostPos.X, Y: ghostPos.Y}})
			}

			runTicks(s, press(cfg.ActionPlaceGhost), 1)
			ghosts := 0
			tags.Ghost.Each(b.World, func(*donburi.Entry) { ghosts++ })
			if ghosts != 1 {
				t.Fatalf("ghosts = %d, want 1", ghosts)
			}

			runTicks(s, press(), b.Config().TPS*2)

			ghosts = 0
			tags.Ghost.Each(b.World, func(*donburi.Entry) { ghosts++ })
			if ghosts != 0 {
				t.Errorf("ghosts = %d after the build delay, want 0", ghosts)
			}
			built := false
			for _, id := range b.Objects(netconfig.KindEntity) {
				e, _ := b.Lookup(id)
				if components.Identity.Get(e).Type == netconfig.EntityWorkbench && !e.HasComponent(tags.Ghost) {
					built = true
				}
			}
			if built != tt.wantBuilt {
				t.Errorf("workbench built = %v, want %v", built, tt.wantBuilt)
			}
		})
	}
}

func TestNextFocus(t *testing.T) {
	ids := []netconfig.EntityID{-2, -1, 1, 4, 9}
	tests := []struct {
		current netconfig.EntityID
		want    netconfig.EntityID
	}{
		{netconfig.NoEntity, 1},
		{1, 4},
		{4, 9},
		{9, 1},
	}
	for _, tt := range tests {
		if got, ok := nextFocus(ids, tt.current); !ok || got != tt.want {
			t.Errorf("nextFocus(%s) = %s, %v; want %s", tt.current, got, ok, tt.want)
		}
	}
	if _, ok := nextFocus([]netconfig.EntityID{-1}, 0); ok {
		t.Error("nextFocus found a target among ghosts only")
	}
}
