// Package engine sequences one tick of play (input, physics, camera, goal
// check, cull and redraw) and drives ticks at a fixed rate.
package engine

import (
	"fmt"
	"runtime/debug"

	"github.com/automoto/pixelplat/camera"
	"github.com/automoto/pixelplat/config"
	"github.com/automoto/pixelplat/level"
	"github.com/automoto/pixelplat/physics"
	"github.com/automoto/pixelplat/pixelart"
	"github.com/automoto/pixelplat/render"
	"github.com/charmbracelet/log"
)

// ActorSprites are the player sprites chosen by motion each tick.
type ActorSprites struct {
	Standing *pixelart.Definition
	Walking  *pixelart.Definition
	Jumping  *pixelart.Definition
}

// SessionConfig holds everything a Session needs besides the level and the
// surface.
type SessionConfig struct {
	Viewport    render.Viewport
	Params      physics.Params
	ActorSize   float64
	Lead        float64
	CullPadding float64
	Sprites     ActorSprites
	Logger      *log.Logger
}

// DefaultSessionConfig reads a SessionConfig from the config package.
func DefaultSessionConfig(sprites ActorSprites) SessionConfig {
	return SessionConfig{
		Viewport: render.Viewport{
			Width:  float64(config.World.ScreenWidth),
			Height: float64(config.World.ScreenHeight),
			Scale:  float64(config.Display.Width) / float64(config.World.ScreenWidth),
		},
		Params:      physics.ConfigParams(),
		ActorSize:   config.Player.Size,
		Lead:        config.Camera.LeadFraction,
		CullPadding: config.Camera.CullPadding,
		Sprites:     sprites,
	}
}

// Session is one play-through of a level. It is single-threaded: call Step
// or Tick from one goroutine.
type Session struct {
	level    *level.Level
	actor    *physics.Actor
	resolver *physics.Resolver
	camera   *camera.Camera
	surface  render.Surface
	renderer *render.Renderer
	sprites  ActorSprites
	cullPad  float64
	logger   *log.Logger

	actorHandle render.Handle
	shown       []bool
	won         bool
	ticks       uint64
}

// NewSession spawns the actor and allocates one render handle per tile, in
// insertion order, then one for the actor so it draws on top.
func NewSession(lvl *level.Level, surface render.Surface, raster *pixelart.Rasterizer, cfg SessionConfig) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Session{
		level:    lvl,
		actor:    physics.NewActor(lvl.SpawnX, lvl.SpawnY, cfg.ActorSize),
		resolver: physics.NewResolver(lvl, cfg.Params),
		camera:   camera.New(cfg.Viewport.Width, lvl.Width, cfg.Lead),
		surface:  surface,
		renderer: render.NewRenderer(surface, raster, cfg.Viewport),
		sprites:  cfg.Sprites,
		cullPad:  cfg.CullPadding,
		logger:   logger,
		shown:    make([]bool, len(lvl.Tiles)),
	}

	for i := range lvl.Tiles {
		s.renderer.Allocate(&lvl.Tiles[i].Handle)
	}
	s.renderer.Allocate(&s.actorHandle)
	return s
}

func (s *Session) Level() *level.Level { return s.level }

func (s *Session) Actor() *physics.Actor { return s.actor }

func (s *Session) Camera() *camera.Camera { return s.camera }

func (s *Session) Renderer() *render.Renderer { return s.renderer }

func (s *Session) ActorHandle() render.Handle { return s.actorHandle }

// Won reports whether the actor has reached a goal tile.
func (s *Session) Won() bool { return s.won }

// Ticks returns the number of ticks stepped.
func (s *Session) Ticks() uint64 { return s.ticks }

// Step runs one tick. Once the goal is reached physics stops but the scene
// keeps redrawing. It returns ErrSurfaceClosed without drawing when the
// surface is gone.
func (s *Session) Step(in physics.Intent) (physics.Events, error) {
	if !s.surface.Alive() {
		return 0, ErrSurfaceClosed
	}
	s.ticks++

	var ev physics.Events
	if !s.won {
		ev = s.resolver.Step(s.actor, in)
	}

	if ev.Has(physics.Respawned) {
		s.camera.Reset()
		s.logger.Info("fell out of world", "tick", s.ticks, "spawn_x", s.actor.SpawnX, "spawn_y", s.actor.SpawnY)
	}
	s.camera.Update(s.actor.X)

	if !s.won && s.level.GoalAt(s.actor.Rect()) {
		s.won = true
		ev |= physics.GoalReached
		s.logger.Info("goal reached", "tick", s.ticks, "x", s.actor.X)
	}

	if !s.surface.Alive() {
		return ev, ErrSurfaceClosed
	}
	s.draw(in)
	return ev, nil
}

// Tick is Step with panics recovered into ErrTickPanic.
func (s *Session) Tick(in physics.Intent) (physics.Events, error) {
	return s.TickFunc(func() physics.Intent { return in })
}

// TickFunc samples input and steps, both inside the panic guard.
func (s *Session) TickFunc(sample func() physics.Intent) (ev physics.Events, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("tick panicked", "tick", s.ticks, "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("%w: %v", ErrTickPanic, r)
		}
	}()
	return s.Step(sample())
}

func (s *Session) draw(in physics.Intent) {
	scroll := s.camera.ScrollX
	view := s.renderer.Viewport()

	for i := range s.level.Tiles {
		t := &s.level.Tiles[i]
		if view.Visible(t.Rect, scroll, s.cullPad) {
			s.shown[i] = s.renderer.Draw(&t.Handle, t.Rect, t.Sprite, scroll)
		} else if s.shown[i] {
			s.renderer.Hide(&t.Handle)
			s.shown[i] = false
		}
	}

	s.renderer.Draw(&s.actorHandle, s.actor.Rect(), s.actorSprite(in), scroll)
}

func (s *Session) actorSprite(in physics.Intent) *pixelart.Definition {
	var def *pixelart.Definition
	switch {
	case !s.actor.OnGround():
		def = s.sprites.Jumping
	case in.Left || in.Right:
		def = s.sprites.Walking
	}
	if def == nil {
		def = s.sprites.Standing
	}
	return def
}

// Close drops the bitmap cache and, if the surface is still up, hides
// everything drawn.
func (s *Session) Close() {
	if s.surface.Alive() {
		for i := range s.level.Tiles {
			if s.shown[i] {
				s.renderer.Hide(&s.level.Tiles[i].Handle)
			}
		}
		s.renderer.Hide(&s.actorHandle)
	}
	clear(s.shown)
	s.renderer.Rasterizer().Release()
}
