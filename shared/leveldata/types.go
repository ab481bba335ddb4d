// Package leveldata provides TMX level parsing for the tile grid.
// It has no dependencies on ebitengine, donburi, or resolv: pure data only.
package leveldata

// Level holds the terrain of a level. Coordinates are world coordinates with y
// growing upwards: tile (0, 0) is the bottom-left tile.
type Level struct {
	Name           string
	Width          int // Tiles
	Height         int // Tiles
	TileSize       float64
	Tiles          []TileData // Row-major, index y*Width+x
	SteppingStones []SteppingStone
	SpawnPoints    []SpawnPoint
}

// TileData is the terrain of one tile. Type names a terrain type from the
// tileset's "type" property.
type TileData struct {
	Type          string
	HasFlow       bool
	FlowDirection float64 // Radians
}

// SteppingStone is a river stone that keeps entities standing on it out of the
// current.
type SteppingStone struct {
	X, Y   float64
	Radius float64
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Tile returns the tile at (x, y), or the zero TileData when out of range.
func (l *Level) Tile(x, y int) TileData {
	if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return TileData{}
	}
	return l.Tiles[y*l.Width+x]
}
