package gamemath

import "math"

// falloffScale stretches the terminal-velocity falloff so acceleration is gone
// slightly before the cap is reached.
const falloffScale = 1.1

// ApplyTileFriction divides a speed by the tile's friction term and reports the
// amount removed. The removed amount is handed back to acceleration in the same
// tick so friction and acceleration do not fight each other.
func ApplyTileFriction(speed, friction, tps float64) (reduced, removed float64) {
	reduced = speed / (1 + 3/tps*friction)
	return reduced, speed - reduced
}

// ApplyFrictionDecay reduces a speed linearly towards zero. It returns a value
// <= 0 once the entity has stopped.
func ApplyFrictionDecay(speed, decay, friction, tps float64) float64 {
	return speed - decay*friction/tps
}

// AccelerationFalloff returns the multiplier applied to acceleration at the given
// speed. It is 1 at rest and falls quadratically to 0 as the speed approaches
// the terminal velocity. A non-positive terminal velocity means uncapped.
func AccelerationFalloff(speed, terminalVelocity float64) float64 {
	if terminalVelocity <= 0 {
		return 1
	}
	progress := speed / terminalVelocity
	if progress >= 1 {
		return 1
	}
	return math.Max(0, 1-math.Pow(progress*falloffScale, 2))
}

// ClampSpeed limits a speed produced by acceleration. A speed that grew past the
// terminal velocity is pulled back to the cap, or to where it started if it was
// already over the cap before accelerating.
func ClampSpeed(before, after, terminalVelocity float64) float64 {
	if terminalVelocity <= 0 || after <= terminalVelocity || after <= before {
		return after
	}
	if before < terminalVelocity {
		return terminalVelocity
	}
	return before
}
