package systems

import (
	"github.com/automoto/tilewalk/components"
	cfg "github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

var directions = map[cfg.ActionID]input.Direction{
	cfg.ActionMoveUp:    input.Up,
	cfg.ActionMoveDown:  input.Down,
	cfg.ActionMoveLeft:  input.Left,
	cfg.ActionMoveRight: input.Right,
}

// UpdateInput polls the keyboard and gamepads, then turns press and
// release edges into player commands. Must run before UpdateWorld.
func UpdateInput(ecs *ecs.ECS) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	in := components.Input.Get(entry)

	// Swap buffers: current becomes previous, then zero out current
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				in.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					in.Current[actionID] = true
				}
			}
		}
	}

	ApplyInput(ecs)
}

// ApplyInput dispatches this frame's input edges. Presses are handled
// before releases so that rolling from one arrow to another keeps the
// player walking in the new direction.
func ApplyInput(ecs *ecs.ECS) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	in := components.Input.Get(entry)

	if entry.HasComponent(components.Settings) {
		settings := components.Settings.Get(entry)
		if in.JustPressed(cfg.ActionToggleDebug) {
			settings.Debug = !settings.Debug
		}
		if in.JustPressed(cfg.ActionQuit) {
			settings.Quit = true
		}
	}

	if !entry.HasComponent(components.World) {
		return
	}
	adapter := components.World.Get(entry).Input
	if adapter == nil {
		return
	}

	var (
		released []input.Direction
		pressed  bool
	)
	for action := cfg.ActionMoveUp; action <= cfg.ActionMoveRight; action++ {
		dir := directions[action]
		switch {
		case in.JustPressed(action):
			adapter.KeyDown(dir, false)
			pressed = true
		case in.JustReleased(action):
			released = append(released, dir)
		}
	}
	if len(released) > 0 && !pressed {
		// Letting go of one arrow while another is down resumes the held one.
		if dir, ok := heldDirection(in); ok {
			adapter.KeyDown(dir, false)
		} else {
			adapter.KeyUp(released[len(released)-1], false)
		}
	}

	if in.JustPressed(cfg.ActionStop) {
		adapter.Stop()
	}
}

func heldDirection(in *components.InputData) (input.Direction, bool) {
	for action := cfg.ActionMoveUp; action <= cfg.ActionMoveRight; action++ {
		if in.Current[action] {
			return directions[action], true
		}
	}
	return 0, false
}
