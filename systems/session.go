package systems

import (
	"errors"

	"github.com/automoto/pixelplat/components"
	cfg "github.com/automoto/pixelplat/config"
	"github.com/automoto/pixelplat/engine"
	"github.com/automoto/pixelplat/physics"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSession runs one engine tick with this frame's held input and hands
// the resulting events to the score and banner.
func UpdateSession(e *ecs.ECS) {
	sd, ok := GetSession(e)
	if !ok || sd.Done {
		return
	}

	entry, _ := components.Session.First(e.World)
	input := components.Input.Get(entry)
	if input.JustPressed(cfg.ActionQuit) {
		sd.Finish(nil)
		return
	}

	ev, err := sd.Session.Tick(input.Intent())
	if err != nil {
		if errors.Is(err, engine.ErrSurfaceClosed) {
			err = nil
		} else {
			log.Error("session stopped", "tick", sd.Session.Ticks(), "err", err)
		}
		sd.Finish(err)
		return
	}

	sd.LastEvents = ev
	if ev != 0 {
		applyEvents(e, ev)
	}
}

func applyEvents(e *ecs.ECS, ev physics.Events) {
	if entry, ok := components.Score.First(e.World); ok {
		components.Score.Get(entry).Board.Apply(ev)
	}
	if ev.Has(physics.GoalReached) {
		startLevelComplete(e)
	}
}

// GetSession returns the session component, if a session entity exists.
func GetSession(e *ecs.ECS) (*components.SessionData, bool) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Session.Get(entry), true
}
