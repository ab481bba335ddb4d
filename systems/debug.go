package systems

import (
	"image/color"
	"math"

	"github.com/automoto/tundra/board"
	"github.com/automoto/tundra/components"
	cfg "github.com/automoto/tundra/config"
	"github.com/automoto/tundra/shared/gamemath"
	"github.com/automoto/tundra/shared/hitbox"
	"github.com/automoto/tundra/shared/netconfig"
	"github.com/automoto/tundra/systems/factory"
	"github.com/automoto/tundra/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
)

var (
	hitboxSoftColor = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	hitboxHardColor = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	chunkLineColor  = color.RGBA{R: 255, G: 255, B: 255, A: 60}
	ghostTint       = color.RGBA{R: 255, G: 255, B: 255, A: 110}
	stoneColor      = color.RGBA{R: 150, G: 150, B: 160, A: 255}
)

// pixel is a 1x1 white image stretched into rotated rectangles.
var pixel *ebiten.Image
var partDrawOp = &ebiten.DrawImageOptions{}

// GetOrCreateOverlay returns the singleton overlay settings.
func GetOrCreateOverlay(w donburi.World) *components.DebugOverlayData {
	entry, ok := components.DebugOverlay.First(w)
	if !ok {
		entry = factory.CreateDebugOverlay(w, components.DebugOverlayData{
			ShowHitboxes: cfg.Debug.ShowHitboxes,
			ShowChunks:   cfg.Debug.ShowChunks,
			ShowHUD:      cfg.Debug.ShowHUD,
		})
	}
	return components.DebugOverlay.Get(entry)
}

// ToggleOverlays flips the overlays whose key was just pressed and reports
// whether anything changed.
func ToggleOverlays(overlay *components.DebugOverlayData, input *components.InputData) bool {
	changed := false
	if JustPressed(input, cfg.ActionToggleHitboxes) {
		overlay.ShowHitboxes = !overlay.ShowHitboxes
		changed = true
	}
	if JustPressed(input, cfg.ActionToggleChunks) {
		overlay.ShowChunks = !overlay.ShowChunks
		changed = true
	}
	if JustPressed(input, cfg.ActionToggleHUD) {
		overlay.ShowHUD = !overlay.ShowHUD
		changed = true
	}
	return changed
}

// visibleTiles returns the inclusive tile range under a world region, clamped
// to the grid.
func visibleTiles(region gamemath.Bounds, tileSize float64, dimensions int) (minX, minY, maxX, maxY int) {
	last := dimensions - 1
	minX = gamemath.ClampInt(int(math.Floor(region.MinX/tileSize)), 0, last)
	minY = gamemath.ClampInt(int(math.Floor(region.MinY/tileSize)), 0, last)
	maxX = gamemath.ClampInt(int(math.Floor(region.MaxX/tileSize)), 0, last)
	maxY = gamemath.ClampInt(int(math.Floor(region.MaxY/tileSize)), 0, last)
	return minX, minY, maxX, maxY
}

// DrawTerrain fills the tiles on screen and the stepping stones of the chunks
// on screen.
func DrawTerrain(screen *ebiten.Image, b *board.Board, view View) {
	ts := b.Config().TileSize
	minX, minY, maxX, maxY := visibleTiles(view.Visible(), ts, b.Config().BoardDimensions())
	size := float32(ts * view.Zoom)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			tile := b.GetTile(x, y)
			// Top-left corner on screen is the tile's upper world edge.
			sx, sy := view.ToScreen(gamemath.Vec{X: float64(x) * ts, Y: float64(y+1) * ts})
			vector.FillRect(screen, float32(sx), float32(sy), size+1, size+1, cfg.Tiles[tile.Type].Color, false)
		}
	}

	for _, chunk := range b.ChunksInRegion(view.Visible()) {
		for _, stone := range chunk.SteppingStones() {
			sx, sy := view.ToScreen(gamemath.Vec{X: stone.X, Y: stone.Y})
			vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(stone.Radius*view.Zoom), stoneColor, true)
		}
	}
}

// DrawObjects draws every game object's parts at its render position.
func DrawObjects(screen *ebiten.Image, b *board.Board, view View) {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}

	for _, e := range b.GameObjectsInRegion(paddedView(view)) {
		pos := components.RenderPosition.Get(e).Position
		rotation := components.Transform.Get(e).Rotation
		ghost := e.HasComponent(tags.Ghost)

		for _, part := range components.RenderParts.Get(e).Parts {
			clr := part.Color
			if ghost {
				clr = tint(clr, ghostTint)
			}
			center := pos.Add(part.Offset.Rotate(rotation))
			sx, sy := view.ToScreen(center)
			if part.Radius > 0 {
				vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(part.Radius*view.Zoom), clr, true)
				continue
			}
			partDrawOp.GeoM.Reset()
			partDrawOp.GeoM.Translate(-0.5, -0.5)
			partDrawOp.GeoM.Scale(part.Width*view.Zoom, part.Height*view.Zoom)
			// Screen y points down, so angles turn the other way.
			partDrawOp.GeoM.Rotate(-rotation)
			partDrawOp.GeoM.Translate(sx, sy)
			partDrawOp.ColorScale.Reset()
			partDrawOp.ColorScale.ScaleWithColor(clr)
			screen.DrawImage(pixel, partDrawOp)
		}
	}
}

// paddedView widens the visible region so objects whose centre is just off
// screen are still drawn.
func paddedView(view View) gamemath.Bounds {
	pad := cfg.World.TileSize * 2
	r := view.Visible()
	return gamemath.Bounds{MinX: r.MinX - pad, MaxX: r.MaxX + pad, MinY: r.MinY - pad, MaxY: r.MaxY + pad}
}

func tint(c, t color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(t.A) / 255),
		G: uint8(uint16(c.G) * uint16(t.A) / 255),
		B: uint8(uint16(c.B) * uint16(t.A) / 255),
		A: t.A,
	}
}

// DrawHitboxes outlines every hitbox on screen: cyan for soft, red for hard.
func DrawHitboxes(screen *ebiten.Image, b *board.Board, view View) {
	for _, e := range b.GameObjectsInRegion(view.Visible()) {
		for _, box := range components.Hitboxes.Get(e).Boxes {
			clr := hitboxSoftColor
			if box.CollisionType == netconfig.CollisionHard {
				clr = hitboxHardColor
			}
			switch box.Kind {
			case hitbox.Circular:
				sx, sy := view.ToScreen(box.Position)
				vector.StrokeCircle(screen, float32(sx), float32(sy), float32(box.Radius*view.Zoom), 1, clr, true)
			case hitbox.Rectangular:
				for i := range box.Vertices {
					x0, y0 := view.ToScreen(box.Vertices[i])
					x1, y1 := view.ToScreen(box.Vertices[(i+1)%len(box.Vertices)])
					vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, true)
				}
			}
		}
	}
}

// DrawChunkGrid draws the chunk borders on screen.
func DrawChunkGrid(screen *ebiten.Image, b *board.Board, view View) {
	step := b.Config().ChunkUnits()
	w, h := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())

	for i := 0; i <= b.Config().BoardSize; i++ {
		d := float64(i) * step
		x, _ := view.ToScreen(gamemath.Vec{X: d})
		_, y := view.ToScreen(gamemath.Vec{Y: d})
		if x >= 0 && float32(x) <= w {
			vector.FillRect(screen, float32(x), 0, 1, h, chunkLineColor, false)
		}
		if y >= 0 && float32(y) <= h {
			vector.FillRect(screen, 0, float32(y), w, 1, chunkLineColor, false)
		}
	}
}
