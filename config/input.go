package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical client action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionToggleHitboxes
	ActionToggleChunks
	ActionToggleHUD
	ActionCycleFocus
	ActionPlaceGhost
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings       map[ActionID]InputBinding
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			// World y grows upwards, so "up" is +y.
			ActionMoveUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMoveDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionToggleHitboxes: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
			ActionToggleChunks: {
				Keys: []ebiten.Key{ebiten.KeyF2},
			},
			ActionToggleHUD: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
			ActionCycleFocus: {
				Keys: []ebiten.Key{ebiten.KeyTab},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionPlaceGhost: {
				Keys: []ebiten.Key{ebiten.KeyG},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
		},
	}
}
