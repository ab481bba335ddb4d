package components

import (
	"github.com/automoto/tundra/shared/netconfig"
	"github.com/yohamta/donburi"
)

// IdentityData ties an ECS entry to its server-side game object.
type IdentityData struct {
	ID   netconfig.EntityID
	Kind netconfig.ObjectKind
	Type netconfig.EntityType
}

var Identity = donburi.NewComponentType[IdentityData]()
