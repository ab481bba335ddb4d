package components

import (
	"github.com/automoto/tundra/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PhysicsData holds the movement state of a game object. A nil Velocity or
// Acceleration means the object has none; a zero-length vector is never stored.
type PhysicsData struct {
	Velocity         *gamemath.Vec
	Acceleration     *gamemath.Vec
	Mass             float64
	TerminalVelocity float64 // Zero or less means uncapped
}

// Speed returns the velocity magnitude, or 0 when there is no velocity.
func (p *PhysicsData) Speed() float64 {
	if p.Velocity == nil {
		return 0
	}
	return p.Velocity.Length()
}

// SetVelocity stores v, clearing the velocity when it has no length.
func (p *PhysicsData) SetVelocity(v gamemath.Vec) {
	if v.Length() <= 0 {
		p.Velocity = nil
		return
	}
	p.Velocity = &v
}

// SetAcceleration stores a, clearing the acceleration when it has no length.
func (p *PhysicsData) SetAcceleration(a gamemath.Vec) {
	if a.Length() <= 0 {
		p.Acceleration = nil
		return
	}
	p.Acceleration = &a
}

var Physics = donburi.NewComponentType[PhysicsData]()
