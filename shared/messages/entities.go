package messages

import "github.com/automoto/tundra/shared/netconfig"

// Vector is a wire-level 2D vector.
type Vector struct {
	X, Y float64
}

// HitboxData describes one hitbox of a spawned entity. Radius is used by
// circular hitboxes, Width and Height by rectangular ones.
type HitboxData struct {
	Kind          netconfig.HitboxKind
	OffsetX       float64
	OffsetY       float64
	Radius        float64
	Width         float64
	Height        float64
	CollisionType netconfig.CollisionType
}

// EntitySpawn is sent the first time the server mentions a game object.
// Velocity and Acceleration are nil when the object is not moving.
type EntitySpawn struct {
	ID               netconfig.EntityID
	Kind             netconfig.ObjectKind
	Type             netconfig.EntityType
	Position         Vector
	Rotation         float64
	Velocity         *Vector
	Acceleration     *Vector
	Mass             float64
	TerminalVelocity float64
	Hitboxes         []HitboxData
}

// EntityUpdate carries a delta for an existing game object. Nil fields are left
// untouched; ClearVelocity and ClearAcceleration null out motion explicitly.
type EntityUpdate struct {
	ID                netconfig.EntityID
	Position          *Vector
	Rotation          *float64
	Velocity          *Vector
	Acceleration      *Vector
	ClearVelocity     bool
	ClearAcceleration bool
	Mass              *float64
	Hitboxes          []HitboxData // Geometry refresh; must match the spawned count
}

// EntityRemove is sent when the server destroys a game object.
type EntityRemove struct {
	ID netconfig.EntityID
}
