package config

import "image/color"

// TileType identifies a terrain type. Values match the "type" property of
// tiles in level tilesets.
type TileType int

const (
	TileSnow TileType = iota
	TileIce
	TileGrass
	TileDirt
	TileSand
	TileRock
	TileWater
	TileDeepWater
	TileTypeCount // Must be last - used for array sizing
)

// TileTypeConfig contains the movement properties of a terrain type
type TileTypeConfig struct {
	Name                string
	Friction            float64
	MoveSpeedMultiplier float64
	IsWall              bool
	IsWater             bool
	Color               color.RGBA // Debug renderer fill
}

// Tiles is the terrain table indexed by TileType
var Tiles [TileTypeCount]TileTypeConfig

// TileTypeByName returns the tile type with the given name.
func TileTypeByName(name string) (TileType, bool) {
	for i, t := range Tiles {
		if t.Name == name {
			return TileType(i), true
		}
	}
	return TileSnow, false
}

func (t TileType) String() string {
	if t < 0 || t >= TileTypeCount {
		return "unknown"
	}
	return Tiles[t].Name
}

func init() {
	Tiles = [TileTypeCount]TileTypeConfig{
		TileSnow: {
			Name:                "snow",
			Friction:            1,
			MoveSpeedMultiplier: 1,
			Color:               Snow,
		},
		TileIce: {
			Name:                "ice",
			Friction:            0.3, // Slippery: slow to stop, slow to start
			MoveSpeedMultiplier: 1,
			Color:               color.RGBA{R: 190, G: 225, B: 250, A: 255},
		},
		TileGrass: {
			Name:                "grass",
			Friction:            1,
			MoveSpeedMultiplier: 1,
			Color:               color.RGBA{R: 90, G: 150, B: 70, A: 255},
		},
		TileDirt: {
			Name:                "dirt",
			Friction:            1.2,
			MoveSpeedMultiplier: 0.9,
			Color:               Brown,
		},
		TileSand: {
			Name:                "sand",
			Friction:            1.5,
			MoveSpeedMultiplier: 0.7,
			Color:               color.RGBA{R: 215, G: 195, B: 140, A: 255},
		},
		TileRock: {
			Name:                "rock",
			Friction:            1,
			MoveSpeedMultiplier: 1,
			IsWall:              true,
			Color:               Grey,
		},
		TileWater: {
			Name:                "water",
			Friction:            0.8,
			MoveSpeedMultiplier: 0.5,
			IsWater:             true,
			Color:               color.RGBA{R: 60, G: 120, B: 200, A: 255},
		},
		TileDeepWater: {
			Name:                "deep_water",
			Friction:            0.6,
			MoveSpeedMultiplier: 0.3,
			IsWater:             true,
			Color:               color.RGBA{R: 30, G: 70, B: 150, A: 255},
		},
	}
}
