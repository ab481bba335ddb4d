package components

import (
	"github.com/automoto/tundra/config"
	"github.com/yohamta/donburi"
)

// TerrainSpeedModifier lets an object replace the tile's move speed multiplier.
// ok is false when the tile's own multiplier should be used.
type TerrainSpeedModifier interface {
	SpeedMultiplierOverride(tile config.TileType, inRiver bool) (multiplier float64, ok bool)
}

type TerrainSpeedData struct {
	Modifier TerrainSpeedModifier
}

var TerrainSpeed = donburi.NewComponentType[TerrainSpeedData]()

// WadingModifier moves at a fixed multiplier through rivers.
type WadingModifier struct {
	Multiplier float64
}

func (w WadingModifier) SpeedMultiplierOverride(_ config.TileType, inRiver bool) (float64, bool) {
	if !inRiver {
		return 0, false
	}
	return w.Multiplier, true
}
