package components

import (
	cfg "github.com/automoto/tundra/config"
	"github.com/yohamta/donburi"
)

// InputData holds this tick's and last tick's action state, plus the cursor.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	CursorX, CursorY int
	Clicked          bool
}

var Input = donburi.NewComponentType[InputData]()
