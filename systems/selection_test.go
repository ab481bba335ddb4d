package systems

import (
	"testing"

	"github.com/automoto/tundra/components"
	"github.com/automoto/tundra/shared/gamemath"
	"github.com/automoto/tundra/shared/hitbox"
	"github.com/automoto/tundra/shared/messages"
	"github.com/automoto/tundra/shared/netconfig"
	"github.com/automoto/tundra/systems/factory"
)

func TestSelectEntityAtPicksClosest(t *testing.T) {
	b := newTestBoard(t, nil)
	spawnEntity(t, b, messages.EntitySpawn{ID: 1, Type: netconfig.EntityKrumblid, Position: messages.Vector{X: 500, Y: 500}})
	spawnEntity(t, b, messages.EntitySpawn{ID: 2, Type: netconfig.EntityKrumblid, Position: messages.Vector{X: 520, Y: 500}})

	tests := []struct {
		name   string
		point  gamemath.Vec
		want   netconfig.EntityID
		wantOK bool
	}{
		{"left", gamemath.Vec{X: 505, Y: 500}, 1, true},
		{"right", gamemath.Vec{X: 518, Y: 500}, 2, true},
		{"empty space", gamemath.Vec{X: 900, Y: 900}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := SelectEntityAt(b, tt.point, 4)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && components.Identity.Get(e).ID != tt.want {
				t.Errorf("selected %s, want %s", components.Identity.Get(e).ID, tt.want)
			}
		})
	}
}

func TestSelectEntityAtIgnoresGhosts(t *testing.T) {
	b := newTestBoard(t, nil)
	if _, err := factory.CreateGhost(b, netconfig.EntityWorkbench, gamemath.Vec{X: 300, Y: 300}, 0); err != nil {
		t.Fatalf("CreateGhost: %v", err)
	}
	if _, ok := SelectEntityAt(b, gamemath.Vec{X: 300, Y: 300}, 4); ok {
		t.Error("selected a ghost")
	}
}

func TestEntitiesCollidingWithExcludesOwner(t *testing.T) {
	b := newTestBoard(t, nil)
	spawnEntity(t, b, messages.EntitySpawn{ID: 1, Type: netconfig.EntityKrumblid, Position: messages.Vector{X: 500, Y: 500}})
	spawnEntity(t, b, messages.EntitySpawn{ID: 2, Type: netconfig.EntityKrumblid, Position: messages.Vector{X: 530, Y: 500}})

	box := hitbox.NewCircular(1, gamemath.Vec{}, 20, netconfig.CollisionSoft)
	box.Update(gamemath.Vec{X: 510, Y: 500}, 0)

	hits := EntitiesCollidingWith(b, box)
	if len(hits) != 1 || components.Identity.Get(hits[0]).ID != 2 {
		t.Fatalf("hits = %d, want only entity 2", len(hits))
	}

	box.Owner = netconfig.NoEntity
	if hits := EntitiesCollidingWith(b, box); len(hits) != 2 {
		t.Errorf("unowned box hits = %d, want 2", len(hits))
	}
}

func TestCanPlace(t *testing.T) {
	b := newTestBoard(t, nil)
	spawnEntity(t, b, messages.EntitySpawn{ID: 1, Type: netconfig.EntityTree, Position: messages.Vector{X: 500, Y: 500}})

	tests := []struct {
		name string
		pos  gamemath.Vec
		want bool
	}{
		{"clear ground", gamemath.Vec{X: 1200, Y: 1200}, true},
		{"on a tree", gamemath.Vec{X: 530, Y: 500}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ghost, err := factory.CreateGhost(b, netconfig.EntityWorkbench, tt.pos, 0)
			if err != nil {
				t.Fatalf("CreateGhost: %v", err)
			}
			if got := CanPlace(b, ghost); got != tt.want {
				t.Errorf("CanPlace = %v, want %v", got, tt.want)
			}
		})
	}
}
