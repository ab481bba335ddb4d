package components

import "github.com/yohamta/donburi"

// DebugOverlayData stores which debug overlays are drawn.
type DebugOverlayData struct {
	ShowHitboxes bool
	ShowChunks   bool
	ShowHUD      bool
}

var DebugOverlay = donburi.NewComponentType[DebugOverlayData]()
