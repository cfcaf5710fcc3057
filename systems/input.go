package systems

import (
	"github.com/automoto/pixelplat/components"
	cfg "github.com/automoto/pixelplat/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Bindings maps each action to the keys that trigger it.
var Bindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionMoveLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	cfg.ActionMoveRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	cfg.ActionJump:        {ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
	cfg.ActionToggleDebug: {ebiten.KeyF3},
	cfg.ActionQuit:        {ebiten.KeyEscape},
}

// UpdateInput polls the keyboard into the session's InputData.
// Must run BEFORE UpdateSession in the system order.
func UpdateInput(e *ecs.ECS) {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for action, keys := range Bindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[action] = true
				break
			}
		}
	}
}
