package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/pixelplat/components"
	cfg "github.com/automoto/pixelplat/config"
	"github.com/automoto/pixelplat/fonts"
	"github.com/automoto/pixelplat/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	solidColor = color.RGBA{100, 100, 100, 255}
	decorColor = color.RGBA{0, 255, 255, 255}
	actorColor = color.RGBA{0, 0, 255, 255}
)

// UpdateDebug toggles the hitbox overlay.
func UpdateDebug(e *ecs.ECS) {
	entry, ok := components.Debug.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)
	if input.JustPressed(cfg.ActionToggleDebug) {
		dbg := components.Debug.Get(entry)
		dbg.ShowHitboxes = !dbg.ShowHitboxes
	}
}

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Debug.First(e.World)
	if !ok || !components.Debug.Get(entry).ShowHitboxes {
		return
	}
	sd, ok := GetSession(e)
	if !ok || sd.Done {
		return
	}

	s := sd.Session
	view := s.Renderer().Viewport()
	scroll := s.Camera().ScrollX

	for _, t := range s.Level().Tiles {
		if !view.Visible(t.Rect, scroll, 0) {
			continue
		}
		c := decorColor
		switch {
		case t.Goal:
			c = cfg.Green
		case t.Collidable:
			c = solidColor
		}
		strokeWorldRect(screen, t.Rect, scroll, view.Scale, c)
	}

	a := s.Actor()
	strokeWorldRect(screen, a.Rect(), scroll, view.Scale, actorColor)

	line := fmt.Sprintf("tick %d  x %.1f  y %.1f  vy %.2f  %s  scroll %.1f",
		s.Ticks(), a.X, a.Y, a.VY, a.State, scroll)
	face := fonts.Debug.Get()
	text.Draw(screen, line, face, int(cfg.UI.HUDMargin), screen.Bounds().Dy()-int(cfg.UI.HUDMargin), cfg.Magenta)
}

func strokeWorldRect(screen *ebiten.Image, r gamemath.Rect, scroll, scale float64, c color.Color) {
	x := float32((r.Left - scroll) * scale)
	y := float32(r.Top * scale)
	vector.StrokeRect(screen, x, y, float32(r.Width()*scale), float32(r.Height()*scale), 1, c, false)
}
