package config

import (
	"image/color"

	"github.com/automoto/tundra/shared/netconfig"
)

// HitboxConfig describes one hitbox of an entity type, in the entity's local frame
type HitboxConfig struct {
	Kind          netconfig.HitboxKind
	OffsetX       float64
	OffsetY       float64
	Radius        float64
	Width, Height float64
	CollisionType netconfig.CollisionType
}

// EntityTypeConfig contains the defaults used when an entity is created
type EntityTypeConfig struct {
	Kind             netconfig.ObjectKind
	Mass             float64
	TerminalVelocity float64 // Zero or less means uncapped
	Acceleration     float64 // Magnitude used by the sandbox driver
	Hitboxes         []HitboxConfig

	// WadingMultiplier overrides the move speed multiplier while in a river.
	// Zero means the entity uses the tile's multiplier.
	WadingMultiplier float64

	Color color.RGBA
}

// EntityTypes is the entity table indexed by EntityType
var EntityTypes map[netconfig.EntityType]EntityTypeConfig

func circle(radius float64, ct netconfig.CollisionType) []HitboxConfig {
	return []HitboxConfig{{Kind: netconfig.HitboxCircular, Radius: radius, CollisionType: ct}}
}

func init() {
	EntityTypes = map[netconfig.EntityType]EntityTypeConfig{
		netconfig.EntityPlayer: {
			Mass:             1,
			TerminalVelocity: 300,
			Acceleration:     1400,
			Hitboxes:         circle(24, netconfig.CollisionSoft),
			WadingMultiplier: 0.75,
			Color:            LightBlue,
		},
		netconfig.EntityTribesman: {
			Mass:             1,
			TerminalVelocity: 280,
			Acceleration:     1200,
			Hitboxes:         circle(24, netconfig.CollisionSoft),
			WadingMultiplier: 0.75,
			Color:            DarkBlue,
		},
		netconfig.EntityCow: {
			Mass:             3,
			TerminalVelocity: 160,
			Acceleration:     700,
			Hitboxes: []HitboxConfig{
				{Kind: netconfig.HitboxCircular, OffsetX: 18, Radius: 22, CollisionType: netconfig.CollisionSoft},
				{Kind: netconfig.HitboxCircular, OffsetX: -18, Radius: 22, CollisionType: netconfig.CollisionSoft},
			},
			Color: Brown,
		},
		netconfig.EntityKrumblid: {
			Mass:             0.5,
			TerminalVelocity: 220,
			Acceleration:     1000,
			Hitboxes:         circle(16, netconfig.CollisionSoft),
			Color:            Orange,
		},
		netconfig.EntityTree: {
			Mass:     50,
			Hitboxes: circle(40, netconfig.CollisionHard),
			Color:    color.RGBA{R: 40, G: 110, B: 50, A: 255},
		},
		netconfig.EntityBoulder: {
			Mass:     50,
			Hitboxes: circle(48, netconfig.CollisionHard),
			Color:    Grey,
		},
		netconfig.EntityBerryBush: {
			Mass:     10,
			Hitboxes: circle(28, netconfig.CollisionSoft),
			Color:    Magenta,
		},
		netconfig.EntityIceSpikes: {
			Mass:     20,
			Hitboxes: circle(30, netconfig.CollisionHard),
			Color:    White,
		},
		netconfig.EntityWorkbench: {
			Mass: 20,
			Hitboxes: []HitboxConfig{
				{Kind: netconfig.HitboxRectangular, Width: 80, Height: 56, CollisionType: netconfig.CollisionHard},
			},
			Color: Brown,
		},
		netconfig.EntityWoodenWall: {
			Mass: 40,
			Hitboxes: []HitboxConfig{
				{Kind: netconfig.HitboxRectangular, Width: 64, Height: 64, CollisionType: netconfig.CollisionHard},
			},
			Color: Brown,
		},
		netconfig.EntityItemEntity: {
			Kind:             netconfig.KindItem,
			Mass:             0.2,
			TerminalVelocity: 200,
			Hitboxes:         circle(12, netconfig.CollisionSoft),
			Color:            Yellow,
		},
		netconfig.EntityWoodenArrow: {
			Kind:     netconfig.KindProjectile,
			Mass:     0.1,
			Hitboxes: circle(6, netconfig.CollisionSoft),
			Color:    Brown,
		},
		netconfig.EntityIceShard: {
			Kind:     netconfig.KindProjectile,
			Mass:     0.1,
			Hitboxes: circle(8, netconfig.CollisionSoft),
			Color:    LightBlue,
		},
	}
}
