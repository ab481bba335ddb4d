package components

import (
	"fmt"

	"github.com/yohamta/donburi"
)

// ChunkCoord addresses a chunk of the board grid.
type ChunkCoord struct {
	X, Y int
}

func (c ChunkCoord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// ChunkMembershipData records which chunks currently list the object. It is
// derived from the hitbox bounds and owned by the board.
type ChunkMembershipData struct {
	Chunks map[ChunkCoord]struct{}
}

var ChunkMembership = donburi.NewComponentType[ChunkMembershipData]()
