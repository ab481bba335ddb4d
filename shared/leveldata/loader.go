package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// ErrNoTileLayer is returned when a level has no terrain layer.
var ErrNoTileLayer = errors.New("leveldata: no terrain layer")

const (
	terrainLayer        = "terrain"
	steppingStoneGroup  = "SteppingStones"
	playerSpawnGroup    = "PlayerSpawn"
	defaultTerrainType  = "snow"
	stoneRadiusFallback = 0.25 // Fraction of a tile used when a stone has no size
)

// Load parses a TMX file into a Level. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
//
// Terrain is read from the "terrain" layer. Each tileset tile carries a "type"
// string property and optionally a "flow" bool with a "flow_direction" in
// degrees. Empty cells default to snow.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:     strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:    levelMap.Width,
		Height:   levelMap.Height,
		TileSize: float64(levelMap.TileWidth),
		Tiles:    make([]TileData, levelMap.Width*levelMap.Height),
	}
	mapHeight := float64(levelMap.Height * levelMap.TileHeight)

	found := false
	for _, layer := range levelMap.Layers {
		if layer.Name != terrainLayer {
			continue
		}
		found = true
		for row := 0; row < levelMap.Height; row++ {
			for x := 0; x < levelMap.Width; x++ {
				// TMX rows run top to bottom.
				y := levelMap.Height - 1 - row
				data := TileData{Type: defaultTerrainType}

				tile := layer.Tiles[row*levelMap.Width+x]
				if !tile.IsNil() {
					if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
						if t := tilesetTile.Properties.GetString("type"); t != "" {
							data.Type = t
						}
						if tilesetTile.Properties.GetBool("flow") {
							data.HasFlow = true
							data.FlowDirection = tilesetTile.Properties.GetFloat("flow_direction") * math.Pi / 180
						}
					}
				}
				level.Tiles[y*levelMap.Width+x] = data
			}
		}
		break
	}
	if !found {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoTileLayer)
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case steppingStoneGroup:
			for _, o := range og.Objects {
				radius := o.Width / 2
				if radius <= 0 {
					radius = level.TileSize * stoneRadiusFallback
				}
				level.SteppingStones = append(level.SteppingStones, SteppingStone{
					X:      o.X + o.Width/2,
					Y:      mapHeight - (o.Y + o.Height/2),
					Radius: radius,
				})
			}
		case playerSpawnGroup:
			for _, o := range og.Objects {
				level.SpawnPoints = append(level.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     mapHeight - o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	sort.Slice(level.SpawnPoints, func(i, j int) bool {
		return level.SpawnPoints[i].Index < level.SpawnPoints[j].Index
	})

	return level, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys and returns them keyed
// by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
