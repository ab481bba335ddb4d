package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// WorldConfig describes the fixed grid the board is built on.
type WorldConfig struct {
	TileSize  float64 // World units per tile
	ChunkSize int     // Tiles per chunk, per axis
	BoardSize int     // Chunks per board, per axis
	TPS       int     // Simulation ticks per second
}

// BoardDimensions is the number of tiles per axis.
func (w WorldConfig) BoardDimensions() int {
	return w.BoardSize * w.ChunkSize
}

// WorldSize is the length of one side of the world in world units.
func (w WorldConfig) WorldSize() float64 {
	return float64(w.BoardDimensions()) * w.TileSize
}

// ChunkUnits is the length of one side of a chunk in world units.
func (w WorldConfig) ChunkUnits() float64 {
	return w.TileSize * float64(w.ChunkSize)
}

// PhysicsConfig contains the constants used by the integrator and collision resolver
type PhysicsConfig struct {
	FrictionDecay   float64 // Speed lost per second per unit of friction when not accelerating
	RiverPushForce  float64 // Speed gained per second along a river's flow
	EntityPushForce float64 // Scale of soft entity-entity pushes
	WallScanRadius  int     // Tiles scanned around an entity for wall collisions
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows its target (0.0-1.0)
	PanDuration     float32 // Seconds to pan when the camera switches target
	Zoom            float64
}

// DebugConfig contains debug overlay and invariant checking options
type DebugConfig struct {
	CheckInvariants bool // Verify chunk membership and entity state every tick
	ShowHitboxes    bool
	ShowChunks      bool
	ShowHUD         bool
	SandboxEntities int // Demo entities spawned in offline mode
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var World WorldConfig
var Physics PhysicsConfig
var Camera CameraConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Brown        = color.RGBA{R: 120, G: 80, B: 40, A: 255}
	Grey         = color.RGBA{R: 110, G: 110, B: 120, A: 255}
	Snow         = color.RGBA{R: 230, G: 236, B: 245, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Tundra",
	}

	World = WorldConfig{
		TileSize:  64,
		ChunkSize: 4,
		BoardSize: 16,
		TPS:       60,
	}

	Physics = PhysicsConfig{
		FrictionDecay:   600,
		RiverPushForce:  240,
		EntityPushForce: 25,
		WallScanRadius:  2,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
		PanDuration:     0.6,
		Zoom:            1,
	}

	Debug = DebugConfig{
		CheckInvariants: false,
		ShowHitboxes:    true,
		ShowChunks:      false,
		ShowHUD:         true,
		SandboxEntities: 24,
	}
}

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)
