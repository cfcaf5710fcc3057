package components

import (
	"github.com/automoto/pixelplat/engine"
	"github.com/automoto/pixelplat/physics"
	"github.com/automoto/pixelplat/render/ebitensurface"
	"github.com/yohamta/donburi"
)

// SessionData binds an engine session to the surface it draws on.
type SessionData struct {
	Session    *engine.Session
	Surface    *ebitensurface.Surface
	LastEvents physics.Events
	Done       bool
	Err        error // Non-nil when the session ended abnormally
}

// Finish ends the session and frees its bitmaps. Later calls are ignored.
func (s *SessionData) Finish(err error) {
	if s.Done {
		return
	}
	s.Done = true
	s.Err = err
	s.Session.Close()
	s.Surface.Close()
}

var Session = donburi.NewComponentType[SessionData]()
