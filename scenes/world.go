package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/automoto/tundra/board"
	"github.com/automoto/tundra/components"
	cfg "github.com/automoto/tundra/config"
	"github.com/automoto/tundra/fonts"
	"github.com/automoto/tundra/network"
	"github.com/automoto/tundra/shared/leveldata"
	"github.com/automoto/tundra/shared/netconfig"
	"github.com/automoto/tundra/systems"
	"github.com/automoto/tundra/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// LevelLoader resolves a level name to its terrain.
type LevelLoader func(name string) (*leveldata.Level, error)

// WorldScene runs the board. Update is one simulation tick, Draw is one frame.
// Offline, a sandbox drives the board; online, server messages do.
type WorldScene struct {
	ecs     *ecs.ECS
	board   *board.Board
	clock   *systems.FrameClock
	overlay *components.DebugOverlayData

	level   *leveldata.Level
	sandbox *systems.Sandbox

	client    *network.Client
	loadLevel LevelLoader
	status    string

	lastFrame time.Time
	once      sync.Once
}

// NewOfflineScene runs a sandbox on the given level.
func NewOfflineScene(level *leveldata.Level) *WorldScene {
	return &WorldScene{level: level, status: "offline"}
}

// NewNetworkedScene waits for the client to join, then builds the board from
// the level the server names.
func NewNetworkedScene(client *network.Client, loadLevel LevelLoader) *WorldScene {
	return &WorldScene{client: client, loadLevel: loadLevel, status: "connecting"}
}

func (ws *WorldScene) Update() {
	if ws.client != nil && !ws.pollClient() {
		return
	}
	ws.once.Do(ws.configure)
	if ws.board == nil {
		return
	}
	ws.ecs.Update()
	ws.clock.MarkTick(time.Now())
}

// pollClient tracks the connection and reports whether the board may tick.
func (ws *WorldScene) pollClient() bool {
	state := ws.client.State()
	ws.status = state.String()
	switch state {
	case network.StateJoinedGame:
		return true
	case network.StateDisconnected, network.StateError:
		if err := ws.client.LastError(); err != nil {
			ws.status = fmt.Sprintf("%s: %v", state, err)
		}
		if ws.board != nil {
			log.Printf("[world] connection lost, tearing down board")
			ws.board.Close()
			ws.board = nil
		}
	}
	return false
}

func (ws *WorldScene) configure() {
	world := cfg.World
	if ws.client != nil {
		if tps := ws.client.TickRate(); tps > 0 {
			world.TPS = tps
		}
		level, err := ws.loadLevel(ws.client.Level())
		if err != nil {
			log.Printf("[world] warning: level %q: %v, using generated terrain", ws.client.Level(), err)
			level = leveldata.Generate(ws.client.Level(), world.BoardDimensions(), world.TileSize)
		}
		ws.level = level
	}
	ebiten.SetTPS(world.TPS)

	ws.board = board.New(world, ws.level)
	ws.clock = systems.NewFrameClock(world.TPS, time.Now())
	ws.lastFrame = time.Now()
	ws.overlay = systems.GetOrCreateOverlay(ws.board.World)
	if saved, err := systems.LoadSettings(); err == nil {
		systems.ApplySavedSettings(ws.overlay, saved)
	}

	focus := netconfig.NoEntity
	if ws.client == nil {
		sandbox, err := systems.NewSandbox(ws.board, ws.level, uint64(time.Now().UnixNano()))
		if err != nil {
			log.Printf("[world] warning: sandbox: %v", err)
		} else {
			ws.sandbox = sandbox
			focus = sandbox.Player()
		}
	} else {
		focus = ws.client.PlayerID()
	}
	center := ws.board.WorldSize() / 2
	factory.CreateCamera(ws.board.World, center, center, focus)

	b := ws.board
	ws.ecs = ecs.NewECS(b.World)
	ws.ecs.AddSystem(ws.updateInput)
	if ws.client != nil {
		ws.ecs.AddSystem(func(_ *ecs.ECS) {
			systems.ApplyMessages(b, ws.client.Drain())
		})
	}
	ws.ecs.AddSystem(systems.NewPhysicsSystem(b))
	ws.ecs.AddSystem(systems.NewCollisionSystem(b))
	ws.ecs.AddSystem(systems.NewChunkSystem(b))

	ws.ecs.AddRenderer(cfg.Default, func(_ *ecs.ECS, screen *ebiten.Image) {
		view, ok := ws.view(screen)
		if !ok {
			return
		}
		systems.DrawTerrain(screen, b, view)
		systems.DrawObjects(screen, b, view)
	})
	ws.ecs.AddRenderer(cfg.Overlay, ws.drawOverlays)
}

func (ws *WorldScene) updateInput(e *ecs.ECS) {
	systems.UpdateInput(e.World)
	input, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	data := components.Input.Get(input)
	if systems.ToggleOverlays(ws.overlay, data) {
		systems.SaveOverlaySettings(ws.overlay)
	}
	if ws.sandbox != nil {
		view, hasView := systems.CameraView(e.World, float64(cfg.C.Width), float64(cfg.C.Height))
		ws.sandbox.Update(data, view, hasView)
	}
}

func (ws *WorldScene) view(screen *ebiten.Image) (systems.View, bool) {
	return systems.CameraView(ws.board.World, float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy()))
}

func (ws *WorldScene) drawOverlays(_ *ecs.ECS, screen *ebiten.Image) {
	view, ok := ws.view(screen)
	if !ok {
		return
	}
	if ws.overlay.ShowChunks {
		systems.DrawChunkGrid(screen, ws.board, view)
	}
	if ws.overlay.ShowHitboxes {
		systems.DrawHitboxes(screen, ws.board, view)
	}
	if ws.overlay.ShowHUD {
		focus := netconfig.NoEntity
		if entry, ok := components.Camera.First(ws.board.World); ok {
			focus = components.Camera.Get(entry).Target
		}
		systems.DrawHUD(screen, systems.HUDLines(ws.board, systems.HUDStatus{
			Mode:          ws.status,
			Focus:         focus,
			FrameProgress: ws.clock.Progress(time.Now()),
			FPS:           ebiten.ActualFPS(),
		}))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.board == nil {
		text.Draw(screen, ws.status, fonts.Bold.Get(), 20, 40, cfg.White)
		return
	}

	now := time.Now()
	dt := float32(now.Sub(ws.lastFrame).Seconds())
	ws.lastFrame = now

	systems.UpdateRenderPositions(ws.board, ws.clock.Progress(now))
	systems.UpdateCamera(ws.board, dt, float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy()))
	ws.ecs.Draw(screen)
}
