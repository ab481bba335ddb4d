package systems

import (
	"log"
	"math"
	"math/rand/v2"

	"github.com/automoto/tundra/board"
	"github.com/automoto/tundra/components"
	cfg "github.com/automoto/tundra/config"
	"github.com/automoto/tundra/shared/gamemath"
	"github.com/automoto/tundra/shared/leveldata"
	"github.com/automoto/tundra/shared/messages"
	"github.com/automoto/tundra/shared/netconfig"
	"github.com/automoto/tundra/systems/factory"
	"github.com/automoto/tundra/tags"
	"github.com/yohamta/donburi"
)

const (
	wanderInterval   = 2.0 // Seconds between heading changes
	ghostBuildDelay  = 1.0 // Seconds a ghost stands before it is built
	ghostDistance    = 96
	arrowSpeed       = 500
	selectRadius     = 8
	placementRetries = 32
)

// sandboxTypes are the types spawned around the player offline.
var sandboxTypes = []netconfig.EntityType{
	netconfig.EntityTribesman,
	netconfig.EntityCow,
	netconfig.EntityCow,
	netconfig.EntityKrumblid,
	netconfig.EntityKrumblid,
	netconfig.EntityTree,
	netconfig.EntityBoulder,
	netconfig.EntityBerryBush,
	netconfig.EntityIceSpikes,
	netconfig.EntityWoodenWall,
	netconfig.EntityItemEntity,
	netconfig.EntityWoodenArrow,
}

// Sandbox stands in for a server: it spawns a player and a crowd of wandering
// objects, and drives them from local input.
type Sandbox struct {
	b      *board.Board
	rng    *rand.Rand
	player netconfig.EntityID
	nextID netconfig.EntityID
}

// NewSandbox populates the board. The player spawns at the level's first spawn
// point, or the middle of the world.
func NewSandbox(b *board.Board, level *leveldata.Level, seed uint64) (*Sandbox, error) {
	s := &Sandbox{
		b:      b,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		nextID: 1,
	}

	spawn := gamemath.Vec{X: b.WorldSize() / 2, Y: b.WorldSize() / 2}
	if level != nil && len(level.SpawnPoints) > 0 {
		spawn = gamemath.Vec{X: level.SpawnPoints[0].X, Y: level.SpawnPoints[0].Y}
	}
	player, err := s.spawn(netconfig.EntityPlayer, spawn, nil)
	if err != nil {
		return nil, err
	}
	player.AddComponent(tags.Controlled)
	s.player = components.Identity.Get(player).ID

	for i := 0; i < cfg.Debug.SandboxEntities; i++ {
		t := sandboxTypes[i%len(sandboxTypes)]
		pos, ok := s.openPosition()
		if !ok {
			continue
		}
		var vel *messages.Vector
		if cfg.EntityTypes[t].Kind == netconfig.KindProjectile {
			v := gamemath.FromPolar(arrowSpeed, s.rng.Float64()*2*math.Pi)
			vel = &messages.Vector{X: v.X, Y: v.Y}
		}
		e, err := s.spawn(t, pos, vel)
		if err != nil {
			log.Printf("[sandbox] warning: %v", err)
			continue
		}
		if cfg.EntityTypes[t].Acceleration > 0 {
			e.AddComponent(tags.Wanderer)
		}
	}
	log.Printf("[sandbox] spawned %d objects, player %s", b.ObjectCount(), s.player)
	return s, nil
}

// Player returns the controlled entity's id.
func (s *Sandbox) Player() netconfig.EntityID {
	return s.player
}

func (s *Sandbox) spawn(t netconfig.EntityType, pos gamemath.Vec, vel *messages.Vector) (*donburi.Entry, error) {
	id := s.nextID
	s.nextID++
	typeCfg := cfg.EntityTypes[t]
	return factory.CreateEntity(s.b, messages.EntitySpawn{
		ID:       id,
		Kind:     typeCfg.Kind,
		Type:     t,
		Position: messages.Vector{X: pos.X, Y: pos.Y},
		Velocity: vel,
	})
}

// openPosition picks the centre of a random tile that is neither wall nor
// water.
func (s *Sandbox) openPosition() (gamemath.Vec, bool) {
	n := s.b.Config().BoardDimensions()
	for range placementRetries {
		x, y := s.rng.IntN(n), s.rng.IntN(n)
		tile := s.b.GetTile(x, y)
		if tile.IsWall || tile.IsWater {
			continue
		}
		return s.b.TileCenter(board.TileCoord{X: x, Y: y}), true
	}
	return gamemath.Vec{}, false
}

// Update runs before physics each tick.
func (s *Sandbox) Update(input *components.InputData, view View, hasView bool) {
	s.steerPlayer(input)
	if s.b.TickIntervalHasPassed(wanderInterval) {
		s.wander()
	}
	if JustPressed(input, cfg.ActionPlaceGhost) {
		s.placeGhost()
	}
	if JustPressed(input, cfg.ActionCycleFocus) {
		s.cycleFocus()
	}
	if input.Clicked && hasView {
		point := view.ToWorld(float64(input.CursorX), float64(input.CursorY))
		if e, ok := SelectEntityAt(s.b, point, selectRadius); ok {
			FocusCamera(s.b.World, components.Identity.Get(e).ID)
		}
	}
}

func (s *Sandbox) steerPlayer(input *components.InputData) {
	player, err := s.b.Lookup(s.player)
	if err != nil {
		return
	}
	physics := components.Physics.Get(player)
	dir := MoveDirection(input)
	physics.SetAcceleration(dir.Scale(cfg.EntityTypes[netconfig.EntityPlayer].Acceleration))
	if !dir.IsZero() {
		components.Transform.Get(player).Rotation = dir.Angle()
	}
}

// wander gives every wanderer a new heading, or stops it.
func (s *Sandbox) wander() {
	tags.Wanderer.Each(s.b.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if s.rng.IntN(3) == 0 {
			physics.SetAcceleration(gamemath.Vec{})
			return
		}
		heading := s.rng.Float64() * 2 * math.Pi
		accel := cfg.EntityTypes[components.Identity.Get(e).Type].Acceleration
		physics.SetAcceleration(gamemath.FromPolar(accel, heading))
		components.Transform.Get(e).Rotation = heading
	})
}

// placeGhost previews a workbench in front of the player. After a delay the
// ghost is replaced by a real workbench if nothing overlaps it.
func (s *Sandbox) placeGhost() {
	player, err := s.b.Lookup(s.player)
	if err != nil {
		return
	}
	transform := components.Transform.Get(player)
	pos := transform.Position.Add(gamemath.FromPolar(ghostDistance, transform.Rotation))
	pos = gamemath.ClampToWorld(pos, s.b.WorldSize())

	ghost, err := factory.CreateGhost(s.b, netconfig.EntityWorkbench, pos, transform.Rotation)
	if err != nil {
		log.Printf("[sandbox] warning: %v", err)
		return
	}
	ghostID := components.Identity.Get(ghost).ID

	s.b.AddTickCallback(ghostBuildDelay, func() {
		ghost, err := s.b.Lookup(ghostID)
		if err != nil {
			return
		}
		buildable := CanPlace(s.b, ghost)
		if err := s.b.RemoveObject(ghostID); err != nil {
			log.Printf("[sandbox] warning: %v", err)
			return
		}
		if !buildable {
			log.Printf("[sandbox] workbench at (%.0f, %.0f) is blocked", pos.X, pos.Y)
			return
		}
		if _, err := s.spawn(netconfig.EntityWorkbench, pos, nil); err != nil {
			log.Printf("[sandbox] warning: %v", err)
		}
	})
}

// cycleFocus moves the camera to the next entity by id, skipping ghosts.
func (s *Sandbox) cycleFocus() {
	current := netconfig.NoEntity
	if entry, ok := components.Camera.First(s.b.World); ok {
		current = components.Camera.Get(entry).Target
	}
	if next, ok := nextFocus(s.b.Objects(netconfig.KindEntity), current); ok {
		FocusCamera(s.b.World, next)
	}
}

// nextFocus returns the smallest non-local id after current, wrapping around.
func nextFocus(ids []netconfig.EntityID, current netconfig.EntityID) (netconfig.EntityID, bool) {
	first := netconfig.NoEntity
	for _, id := range ids {
		if id.IsLocal() {
			continue
		}
		if first == netconfig.NoEntity {
			first = id
		}
		if id > current {
			return id, true
		}
	}
	return first, first != netconfig.NoEntity
}
