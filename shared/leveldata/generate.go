package leveldata

import "math"

// Generate builds a flat snow level of the given size with a rock border, a
// river running bottom to top through the middle with a line of stepping
// stones, and an ice pond. It is used when no TMX level is available.
func Generate(name string, size int, tileSize float64) *Level {
	level := &Level{
		Name:     name,
		Width:    size,
		Height:   size,
		TileSize: tileSize,
		Tiles:    make([]TileData, size*size),
	}

	riverX := size / 2
	pondX, pondY, pondR := size/4, size/4, max(size/10, 1)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			data := TileData{Type: "snow"}
			switch {
			case x == 0 || y == 0 || x == size-1 || y == size-1:
				data.Type = "rock"
			case x == riverX || x == riverX+1:
				data = TileData{Type: "water", HasFlow: true, FlowDirection: math.Pi / 2}
			case (x-pondX)*(x-pondX)+(y-pondY)*(y-pondY) <= pondR*pondR:
				data.Type = "ice"
			}
			level.Tiles[y*size+x] = data
		}
	}

	// Stones on the river's centre line, every third row.
	for y := 2; y < size-2; y += 3 {
		level.SteppingStones = append(level.SteppingStones, SteppingStone{
			X:      float64(riverX+1) * tileSize,
			Y:      (float64(y) + 0.5) * tileSize,
			Radius: tileSize * 0.4,
		})
	}

	centre := float64(size) * tileSize / 2
	level.SpawnPoints = []SpawnPoint{
		{X: centre / 2, Y: centre, Index: 0},
		{X: centre * 1.5, Y: centre, Index: 1},
	}
	return level
}
