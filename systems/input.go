package systems

import (
	"github.com/automoto/tundra/components"
	cfg "github.com/automoto/tundra/config"
	"github.com/automoto/tundra/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard, gamepads and mouse into the Input component.
// Must run before anything that reads actions in the same tick.
func UpdateInput(w donburi.World) {
	input := getOrCreateInput(w)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}
	mergeAnalogStick(input, gamepadIDs)

	input.CursorX, input.CursorY = ebiten.CursorPosition()
	input.Clicked = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// mergeAnalogStick folds the left sticks into the move actions. The stick's
// vertical axis points down, world y points up.
func mergeAnalogStick(input *components.InputData, gamepads []ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if horizontal < -deadzone {
			input.Current[cfg.ActionMoveLeft] = true
		}
		if horizontal > deadzone {
			input.Current[cfg.ActionMoveRight] = true
		}
		if vertical < -deadzone {
			input.Current[cfg.ActionMoveUp] = true
		}
		if vertical > deadzone {
			input.Current[cfg.ActionMoveDown] = true
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Input))
	}
	return components.Input.Get(entry)
}

func Pressed(input *components.InputData, id cfg.ActionID) bool {
	return input.Current[id]
}

// JustPressed is true on the first tick an action is held.
func JustPressed(input *components.InputData, id cfg.ActionID) bool {
	return input.Current[id] && !input.Previous[id]
}

// MoveDirection returns the unit direction of the held move actions, or zero.
func MoveDirection(input *components.InputData) gamemath.Vec {
	var dir gamemath.Vec
	if input.Current[cfg.ActionMoveLeft] {
		dir.X--
	}
	if input.Current[cfg.ActionMoveRight] {
		dir.X++
	}
	if input.Current[cfg.ActionMoveUp] {
		dir.Y++
	}
	if input.Current[cfg.ActionMoveDown] {
		dir.Y--
	}
	return dir.Normalized()
}
