package components

import (
	cfg "github.com/automoto/pixelplat/config"
	"github.com/automoto/pixelplat/physics"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

func (d *InputData) Pressed(a cfg.ActionID) bool {
	return d.Current[a]
}

func (d *InputData) JustPressed(a cfg.ActionID) bool {
	return d.Current[a] && !d.Previous[a]
}

// Intent is the held movement input for this frame.
func (d *InputData) Intent() physics.Intent {
	return physics.Intent{
		Left:  d.Current[cfg.ActionMoveLeft],
		Right: d.Current[cfg.ActionMoveRight],
		Jump:  d.Current[cfg.ActionJump],
	}
}

var Input = donburi.NewComponentType[InputData]()
