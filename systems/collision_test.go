package systems

import (
	"errors"
	"testing"

	"github.com/automoto/tundra/components"
	"github.com/automoto/tundra/shared/collision"
	"github.com/automoto/tundra/shared/gamemath"
	"github.com/automoto/tundra/shared/leveldata"
	"github.com/automoto/tundra/shared/messages"
	"github.com/automoto/tundra/shared/netconfig"
)

func TestSoftEntitiesPushApart(t *testing.T) {
	b := newTestBoard(t, nil)
	left := spawnEntity(t, b, messages.EntitySpawn{ID: 1, Type: netconfig.EntityKrumblid, Position: messages.Vector{X: 500, Y: 500}})
	right := spawnEntity(t, b, messages.EntitySpawn{ID: 2, Type: netconfig.EntityKrumblid, Position: messages.Vector{X: 520, Y: 500}})

	UpdateCollisions(b)

	lv := components.Physics.Get(left).Velocity
	rv := components.Physics.Get(right).Velocity
	if lv == nil || rv == nil {
		t.Fatalf("velocities = %v, %v; want both pushed", lv, rv)
	}
	if lv.X >= 0 || rv.X <= 0 {
		t.Errorf("left %+v, right %+v; want pushed apart along x", *lv, *rv)
	}
	// Soft pushes accelerate; they never teleport.
	if pos := components.Transform.Get(left).Position; pos != (gamemath.Vec{X: 500, Y: 500}) {
		t.Errorf("left moved to %+v", pos)
	}
}

func TestHardObjectMovesEntityOut(t *testing.T) {
	b := newTestBoard(t, nil)
	boulder := spawnEntity(t, b, messages.EntitySpawn{ID: 1, Type: netconfig.EntityBoulder, Position: messages.Vector{X: 500, Y: 500}})
	krumblid := spawnEntity(t, b, messages.EntitySpawn{
		ID:       2,
		Type:     netconfig.EntityKrumblid,
		Position: messages.Vector{X: 550, Y: 500},
		Velocity: &messages.Vector{X: -40, Y: 10},
	})

	UpdateCollisions(b)

	pos := components.Transform.Get(krumblid).Position
	if d := pos.Distance(gamemath.Vec{X: 500, Y: 500}); d < 64-1e-6 {
		t.Errorf("distance after resolve = %v, want >= 64", d)
	}
	v := components.Physics.Get(krumblid).Velocity
	if v == nil || !approx(v.X, 0) || !approx(v.Y, 10) {
		t.Errorf("velocity = %v, want inward component removed and (0, 10) kept", v)
	}
	if got := components.Transform.Get(boulder).Position; got != (gamemath.Vec{X: 500, Y: 500}) {
		t.Errorf("boulder moved to %+v", got)
	}
}

func TestWallTilePushesEntityOut(t *testing.T) {
	n := testWorld.BoardDimensions()
	level := &leveldata.Level{Name: "wall", Width: n, Height: n, TileSize: testWorld.TileSize, Tiles: make([]leveldata.TileData, n*n)}
	level.Tiles[4*n+4] = leveldata.TileData{Type: "rock"}
	b := newTestBoard(t, level)

	e := spawnEntity(t, b, messages.EntitySpawn{
		ID:       1,
		Type:     netconfig.EntityKrumblid,
		Position: messages.Vector{X: 250, Y: 288},
		Velocity: &messages.Vector{X: 30, Y: 5},
	})

	UpdateCollisions(b)

	pos := components.Transform.Get(e).Position
	if !approx(pos.X, 240) || !approx(pos.Y, 288) {
		t.Errorf("position = %+v, want (240, 288)", pos)
	}
	v := components.Physics.Get(e).Velocity
	if v == nil || !approx(v.X, 0) || !approx(v.Y, 5) {
		t.Errorf("velocity = %v, want (0, 5)", v)
	}

	// A second pass finds nothing left to resolve.
	UpdateCollisions(b)
	if again := components.Transform.Get(e).Position; !approx(again.X, pos.X) || !approx(again.Y, pos.Y) {
		t.Errorf("second resolve moved entity from %+v to %+v", pos, again)
	}
}

func TestProjectilesNeitherPushNorArePushed(t *testing.T) {
	b := newTestBoard(t, nil)
	krumblid := spawnEntity(t, b, messages.EntitySpawn{ID: 1, Type: netconfig.EntityKrumblid, Position: messages.Vector{X: 500, Y: 500}})
	arrow := spawnEntity(t, b, messages.EntitySpawn{ID: 2, Type: netconfig.EntityWoodenArrow, Position: messages.Vector{X: 505, Y: 500}})

	UpdateCollisions(b)

	if v := components.Physics.Get(krumblid).Velocity; v != nil {
		t.Errorf("krumblid velocity = %+v, want nil", *v)
	}
	if v := components.Physics.Get(arrow).Velocity; v != nil {
		t.Errorf("arrow velocity = %+v, want nil", *v)
	}
}

func TestHardOnlyObjectsAreNotPushed(t *testing.T) {
	b := newTestBoard(t, nil)
	first := spawnEntity(t, b, messages.EntitySpawn{ID: 1, Type: netconfig.EntityWorkbench, Position: messages.Vector{X: 500, Y: 500}})
	spawnEntity(t, b, messages.EntitySpawn{ID: 2, Type: netconfig.EntityWorkbench, Position: messages.Vector{X: 520, Y: 500}})

	UpdateCollisions(b)

	if pos := components.Transform.Get(first).Position; pos != (gamemath.Vec{X: 500, Y: 500}) {
		t.Errorf("workbench moved to %+v", pos)
	}
}

func TestCollisionsSeeObjectsThatJustCrossedAChunkEdge(t *testing.T) {
	b := newTestBoard(t, nil)
	edge := testWorld.ChunkUnits()
	fast := spawnEntity(t, b, messages.EntitySpawn{
		ID:       1,
		Type:     netconfig.EntityKrumblid,
		Position: messages.Vector{X: edge - 26, Y: 100},
		Velocity: &messages.Vector{X: 3000},
	})
	still := spawnEntity(t, b, messages.EntitySpawn{ID: 2, Type: netconfig.EntityKrumblid, Position: messages.Vector{X: edge + 44, Y: 100}})

	UpdatePhysics(b)

	if x := components.Transform.Get(fast).Position.X; x <= edge+16 {
		t.Fatalf("fast krumblid at x %v, want it across the chunk edge", x)
	}
	if err := b.VerifyChunkMembership(fast); err != nil {
		t.Fatalf("chunks after physics: %v", err)
	}

	UpdateCollisions(b)

	v := components.Physics.Get(still).Velocity
	if v == nil || v.X <= 0 {
		t.Errorf("still krumblid velocity = %v, want pushed away along +x", v)
	}
}

func TestRectanglePairDoesNotSkipWalls(t *testing.T) {
	n := testWorld.BoardDimensions()
	level := &leveldata.Level{Name: "wall", Width: n, Height: n, TileSize: testWorld.TileSize, Tiles: make([]leveldata.TileData, n*n)}
	level.Tiles[4*n+4] = leveldata.TileData{Type: "rock"}
	b := newTestBoard(t, level)

	square := messages.HitboxData{Kind: netconfig.HitboxRectangular, Width: 20, Height: 20, CollisionType: netconfig.CollisionSoft}
	body := square
	body.OffsetX = -40
	e := spawnEntity(t, b, messages.EntitySpawn{
		ID:       1,
		Type:     netconfig.EntityKrumblid,
		Position: messages.Vector{X: 250, Y: 288},
		Velocity: &messages.Vector{X: 30},
		Hitboxes: []messages.HitboxData{
			{Kind: netconfig.HitboxCircular, Radius: 16, CollisionType: netconfig.CollisionSoft},
			body,
		},
	})
	spawnEntity(t, b, messages.EntitySpawn{
		ID:       2,
		Type:     netconfig.EntityKrumblid,
		Position: messages.Vector{X: 205, Y: 288},
		Hitboxes: []messages.HitboxData{square},
	})

	if err := ResolveEntityCollisions(b, e); !errors.Is(err, collision.ErrRectangleRectangle) {
		t.Fatalf("err = %v, want ErrRectangleRectangle", err)
	}

	UpdateCollisions(b)

	if pos := components.Transform.Get(e).Position; !approx(pos.X, 240) || !approx(pos.Y, 288) {
		t.Errorf("position = %+v, want (240, 288) out of the wall", pos)
	}
}

func TestMassRatio(t *testing.T) {
	tests := []struct {
		pushing, pushed, want float64
	}{
		{1, 1, 1},
		{3, 1, 3},
		{1, 4, 0.25},
		{1, 0, 1},
	}
	for _, tt := range tests {
		if got := massRatio(tt.pushing, tt.pushed); got != tt.want {
			t.Errorf("massRatio(%v, %v) = %v, want %v", tt.pushing, tt.pushed, got, tt.want)
		}
	}
}
