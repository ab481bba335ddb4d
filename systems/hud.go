package systems

import (
	"fmt"

	"github.com/automoto/tundra/board"
	cfg "github.com/automoto/tundra/config"
	"github.com/automoto/tundra/fonts"
	"github.com/automoto/tundra/shared/netconfig"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudMargin     = 10
	hudLineHeight = 18
	hudWidth      = 300

	hudHint = "F1 hitboxes  F2 chunks  F3 HUD  Tab focus  G build"
)

// HUDStatus is what the HUD shows besides the board's own counters.
type HUDStatus struct {
	Mode          string // "offline" or the network client state
	Focus         netconfig.EntityID
	FrameProgress float64
	FPS           float64
}

// HUDLines builds the HUD text, one line per entry.
func HUDLines(b *board.Board, status HUDStatus) []string {
	return []string{
		fmt.Sprintf("%s  tick %d @ %d TPS", status.Mode, b.Ticks(), b.Config().TPS),
		fmt.Sprintf("entities %d  items %d  projectiles %d",
			len(b.Objects(netconfig.KindEntity)),
			len(b.Objects(netconfig.KindItem)),
			len(b.Objects(netconfig.KindProjectile))),
		fmt.Sprintf("frame progress %.2f  fps %.0f", status.FrameProgress, status.FPS),
		fmt.Sprintf("focus %s", status.Focus),
	}
}

// DrawHUD renders the HUD lines on a dark panel in the top-left corner.
func DrawHUD(screen *ebiten.Image, lines []string) {
	vector.DrawFilledRect(screen,
		float32(hudMargin/2), float32(hudMargin/2),
		float32(hudWidth), float32((len(lines)+1)*hudLineHeight+hudMargin),
		cfg.BlackOverlay, false)

	face := fonts.Regular.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, hudMargin, hudMargin+(i+1)*hudLineHeight-4, cfg.White)
	}
	hintY := hudMargin + len(lines)*hudLineHeight + hudLineHeight
	text.Draw(screen, hudHint, fonts.Small.Get(), hudMargin, hintY, cfg.Grey)
}
