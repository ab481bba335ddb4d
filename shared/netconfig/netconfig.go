// Package netconfig defines lightweight types shared between client and server
// for network serialization. It must have zero dependencies on ebiten or any
// graphics library so headless tools can use it.
package netconfig

import "strconv"

// EntityID is the server-assigned id of a game object. It is stable for the
// object's lifetime. Locally predicted objects use negative ids.
type EntityID int32

// NoEntity is never assigned to a game object.
const NoEntity EntityID = 0

func (id EntityID) String() string {
	return strconv.Itoa(int(id))
}

// IsLocal reports whether the id belongs to a client-side prediction.
func (id EntityID) IsLocal() bool {
	return id < 0
}

// ObjectKind separates the board's game object collections.
type ObjectKind int

const (
	KindEntity ObjectKind = iota
	KindItem
	KindProjectile
)

func (k ObjectKind) String() string {
	switch k {
	case KindEntity:
		return "entity"
	case KindItem:
		return "item"
	case KindProjectile:
		return "projectile"
	}
	return "unknown"
}

// EntityType identifies what kind of thing an entity is.
type EntityType int

const (
	EntityNone EntityType = iota
	EntityPlayer
	EntityTribesman
	EntityCow
	EntityKrumblid
	EntityTree
	EntityBoulder
	EntityBerryBush
	EntityIceSpikes
	EntityWorkbench
	EntityWoodenWall
	EntityItemEntity
	EntityWoodenArrow
	EntityIceShard
	EntityTypeCount // Must be last - used for array sizing
)

// EntityTypeToName maps EntityType to its wire/debug name.
var EntityTypeToName = map[EntityType]string{
	EntityNone:        "none",
	EntityPlayer:      "player",
	EntityTribesman:   "tribesman",
	EntityCow:         "cow",
	EntityKrumblid:    "krumblid",
	EntityTree:        "tree",
	EntityBoulder:     "boulder",
	EntityBerryBush:   "berry_bush",
	EntityIceSpikes:   "ice_spikes",
	EntityWorkbench:   "workbench",
	EntityWoodenWall:  "wooden_wall",
	EntityItemEntity:  "item_entity",
	EntityWoodenArrow: "wooden_arrow",
	EntityIceShard:    "ice_shard",
}

func (t EntityType) String() string {
	if name, ok := EntityTypeToName[t]; ok {
		return name
	}
	return "unknown"
}

// HitboxKind tags the hitbox shape carried on the wire.
type HitboxKind int

const (
	HitboxCircular HitboxKind = iota
	HitboxRectangular
)

// CollisionType selects how a hitbox pushes the things it overlaps.
type CollisionType int

const (
	CollisionSoft CollisionType = iota
	CollisionHard
)

func (c CollisionType) String() string {
	if c == CollisionHard {
		return "hard"
	}
	return "soft"
}
