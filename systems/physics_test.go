package systems

import (
	"math"
	"testing"

	"github.com/automoto/tundra/board"
	"github.com/automoto/tundra/components"
	cfg "github.com/automoto/tundra/config"
	"github.com/automoto/tundra/shared/gamemath"
	"github.com/automoto/tundra/shared/leveldata"
	"github.com/automoto/tundra/shared/messages"
	"github.com/automoto/tundra/shared/netconfig"
	"github.com/automoto/tundra/systems/factory"
	"github.com/yohamta/donburi"
)

const eps = 1e-9

var testWorld = cfg.WorldConfig{
	TileSize:  64,
	ChunkSize: 4,
	BoardSize: 8,
	TPS:       40,
}

func newTestBoard(t *testing.T, level *leveldata.Level) *board.Board {
	t.Helper()
	b := board.New(testWorld, level)
	t.Cleanup(b.Close)
	return b
}

func spawnEntity(t *testing.T, b *board.Board, spawn messages.EntitySpawn) *donburi.Entry {
	t.Helper()
	if spawn.Kind == 0 {
		spawn.Kind = cfg.EntityTypes[spawn.Type].Kind
	}
	e, err := factory.CreateEntity(b, spawn)
	if err != nil {
		t.Fatalf("CreateEntity: %v", err)
	}
	return e
}

// riverLevel is a level made entirely of water flowing in direction.
func riverLevel(direction float64) *leveldata.Level {
	n := testWorld.BoardDimensions()
	level := &leveldata.Level{Name: "river", Width: n, Height: n, TileSize: testWorld.TileSize, Tiles: make([]leveldata.TileData, n*n)}
	for i := range level.Tiles {
		level.Tiles[i] = leveldata.TileData{Type: "water", HasFlow: true, FlowDirection: direction}
	}
	return level
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestAccelerationFromRest(t *testing.T) {
	b := newTestBoard(t, nil)
	e := spawnEntity(t, b, messages.EntitySpawn{
		ID:               1,
		Type:             netconfig.EntityPlayer,
		Position:         messages.Vector{X: 100, Y: 100},
		Acceleration:     &messages.Vector{X: 1000},
		TerminalVelocity: 300,
	})

	IntegrateEntity(b, e)

	physics := components.Physics.Get(e)
	if physics.Velocity == nil {
		t.Fatal("velocity is nil after accelerating")
	}
	if got := physics.Velocity.Length(); !approx(got, 25) {
		t.Errorf("speed = %v, want 25", got)
	}
	pos := components.Transform.Get(e).Position
	if !approx(pos.X, 100.625) || !approx(pos.Y, 100) {
		t.Errorf("position = %+v, want (100.625, 100)", pos)
	}
}

func TestAccelerationNeverExceedsTerminalVelocity(t *testing.T) {
	// Falloff reaches zero once the post-friction speed is TV/1.1, so an
	// entity accelerating from rest on snow settles at TV/1.1 times the
	// friction factor. Anything already between that and TV holds its speed.
	tests := []struct {
		name  string
		start *messages.Vector
		want  float64
	}{
		{"from rest", nil, 300 / 1.1 * 1.075},
		{"from terminal velocity", &messages.Vector{X: 300}, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(t, nil)
			e := spawnEntity(t, b, messages.EntitySpawn{
				ID:               1,
				Type:             netconfig.EntityKrumblid,
				Position:         messages.Vector{X: 100, Y: 1000},
				Velocity:         tt.start,
				Acceleration:     &messages.Vector{X: 1000},
				TerminalVelocity: 300,
			})
			physics := components.Physics.Get(e)

			for tick := 0; tick < 200; tick++ {
				IntegrateEntity(b, e)
				if s := physics.Speed(); s > 300+eps {
					t.Fatalf("tick %d: speed %v exceeds terminal velocity", tick, s)
				}
			}
			if s := physics.Speed(); math.Abs(s-tt.want) > 1e-3 {
				t.Errorf("speed after 200 ticks = %v, want %v", s, tt.want)
			}
		})
	}
}

func TestUncappedTerminalVelocity(t *testing.T) {
	b := newTestBoard(t, nil)
	e := spawnEntity(t, b, messages.EntitySpawn{
		ID:               1,
		Type:             netconfig.EntityKrumblid,
		Position:         messages.Vector{X: 100, Y: 1000},
		Velocity:         &messages.Vector{X: 500},
		Acceleration:     &messages.Vector{X: 1000},
		TerminalVelocity: -1,
	})
	IntegrateEntity(b, e)
	if s := components.Physics.Get(e).Speed(); s <= 500 {
		t.Errorf("speed = %v, want growth past 500 when uncapped", s)
	}
}

func TestFrictionStopsCoastingEntity(t *testing.T) {
	b := newTestBoard(t, nil)
	e := spawnEntity(t, b, messages.EntitySpawn{
		ID:       1,
		Type:     netconfig.EntityKrumblid,
		Position: messages.Vector{X: 500, Y: 500},
		Velocity: &messages.Vector{X: 100},
	})
	physics := components.Physics.Get(e)

	last := physics.Speed()
	for tick := 0; tick < 40 && physics.Velocity != nil; tick++ {
		IntegrateEntity(b, e)
		if s := physics.Speed(); s >= last {
			t.Fatalf("tick %d: speed %v did not decrease from %v", tick, s, last)
		}
		last = physics.Speed()
	}
	if physics.Velocity != nil {
		t.Fatalf("velocity = %+v, want nil once stopped", *physics.Velocity)
	}
}

func TestRiverPush(t *testing.T) {
	tests := []struct {
		name       string
		entityType netconfig.EntityType
		accel      *messages.Vector
		wantX      float64
	}{
		// Water friction 0.8; krumblids use the water multiplier 0.5, players wade at 0.75.
		{"drifting", netconfig.EntityKrumblid, nil, 0},
		{"tile multiplier", netconfig.EntityKrumblid, &messages.Vector{X: 1000}, 1000 * 0.8 * 0.5 / 40},
		{"wading override", netconfig.EntityPlayer, &messages.Vector{X: 1000}, 1000 * 0.8 * 0.75 / 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(t, riverLevel(math.Pi/2))
			e := spawnEntity(t, b, messages.EntitySpawn{
				ID:           1,
				Type:         tt.entityType,
				Position:     messages.Vector{X: 500, Y: 500},
				Acceleration: tt.accel,
			})
			IntegrateEntity(b, e)

			v := components.Physics.Get(e).Velocity
			if v == nil {
				t.Fatal("velocity is nil in a river")
			}
			wantY := cfg.Physics.RiverPushForce / 40
			if !approx(v.X, tt.wantX) || !approx(v.Y, wantY) {
				t.Errorf("velocity = %+v, want (%v, %v)", *v, tt.wantX, wantY)
			}
		})
	}
}

func TestSteppingStoneBlocksRiverPush(t *testing.T) {
	level := riverLevel(math.Pi / 2)
	level.SteppingStones = []leveldata.SteppingStone{{X: 500, Y: 500, Radius: 20}}
	b := newTestBoard(t, level)
	e := spawnEntity(t, b, messages.EntitySpawn{
		ID:       1,
		Type:     netconfig.EntityKrumblid,
		Position: messages.Vector{X: 505, Y: 500},
	})

	IntegrateEntity(b, e)

	if v := components.Physics.Get(e).Velocity; v != nil {
		t.Errorf("velocity = %+v, want nil on a stepping stone", *v)
	}
}

func TestUpdatePhysicsSkipsGhosts(t *testing.T) {
	b := newTestBoard(t, nil)
	ghost, err := factory.CreateGhost(b, netconfig.EntityWorkbench, gamemath.Vec{X: 300, Y: 300}, 0)
	if err != nil {
		t.Fatalf("CreateGhost: %v", err)
	}
	components.Physics.Get(ghost).SetVelocity(gamemath.Vec{X: 40})

	UpdatePhysics(b)

	if pos := components.Transform.Get(ghost).Position; pos != (gamemath.Vec{X: 300, Y: 300}) {
		t.Errorf("ghost moved to %+v", pos)
	}
}

func TestUpdatePhysicsRecoversFromPanics(t *testing.T) {
	b := newTestBoard(t, nil)
	broken := spawnEntity(t, b, messages.EntitySpawn{
		ID:       1,
		Type:     netconfig.EntityKrumblid,
		Position: messages.Vector{X: 300, Y: 300},
	})
	// A terrain modifier that panics stands in for a malformed object.
	broken.AddComponent(components.TerrainSpeed)
	components.TerrainSpeed.SetValue(broken, components.TerrainSpeedData{Modifier: panickingModifier{}})

	healthy := spawnEntity(t, b, messages.EntitySpawn{
		ID:       2,
		Type:     netconfig.EntityKrumblid,
		Position: messages.Vector{X: 600, Y: 600},
		Velocity: &messages.Vector{X: 100},
	})

	UpdatePhysics(b)

	if pos := components.Transform.Get(healthy).Position; pos.X <= 600 {
		t.Errorf("healthy entity did not move: %+v", pos)
	}
}

type panickingModifier struct{}

func (panickingModifier) SpeedMultiplierOverride(cfg.TileType, bool) (float64, bool) {
	panic("broken modifier")
}
