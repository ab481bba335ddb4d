package tags

import "github.com/yohamta/donburi"

var (
	Entity     = donburi.NewTag().SetName("Entity")
	Item       = donburi.NewTag().SetName("Item")
	Projectile = donburi.NewTag().SetName("Projectile")
	Ghost      = donburi.NewTag().SetName("Ghost")
	Controlled = donburi.NewTag().SetName("Controlled")
	Wanderer   = donburi.NewTag().SetName("Wanderer")
)

// Resolv tags for the wall broad phase
const (
	ResolvWall  = "wall"
	ResolvProbe = "probe"
)
