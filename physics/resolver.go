package physics

import (
	"github.com/automoto/pixelplat/level"
	"github.com/automoto/pixelplat/shared/gamemath"
)

// Resolver moves an actor through a level with axis-separated collision:
// horizontal first at the old y, then vertical at the new x.
type Resolver struct {
	level  *level.Level
	params Params
}

func NewResolver(lvl *level.Level, p Params) *Resolver {
	return &Resolver{level: lvl, params: p}
}

func (r *Resolver) Params() Params { return r.params }

// Step advances a by one tick of held input.
func (r *Resolver) Step(a *Actor, in Intent) Events {
	var ev Events

	// Input
	dx := gamemath.HorizontalIntent(in.Left, in.Right, r.params.MoveSpeed)
	if in.Jump && a.State == Grounded {
		a.VY = -r.params.JumpPower
		a.State = Rising
		ev |= Jumped
	}

	ev |= r.resolveHorizontal(a, dx)
	ev |= r.resolveVertical(a)

	a.X = gamemath.Clamp(a.X, 0, r.level.Width-a.W)

	if a.Y > r.level.Height+r.params.FallMargin*a.H {
		a.Respawn()
		ev |= Respawned
	}
	return ev
}

func (r *Resolver) resolveHorizontal(a *Actor, dx float64) Events {
	a.VX = dx
	if dx == 0 {
		return 0
	}

	a.X += dx
	t := r.level.FindSolid(a.Rect(), nil)
	if t == nil {
		return 0
	}

	if dx > 0 {
		a.X = t.Rect.Left - a.W
	} else {
		a.X = t.Rect.Right
	}
	a.VX = 0
	return BlockedX
}

func (r *Resolver) resolveVertical(a *Actor) Events {
	airborne := a.State != Grounded
	if airborne {
		a.VY += r.params.Gravity
	}

	prevTop, prevBottom := a.Y, a.Y+a.H
	a.Y += a.VY

	// Look one pixel below the feet when not rising so resting contact
	// counts as support.
	probe := a.Rect()
	if a.VY >= 0 {
		probe.Bottom++
	}

	vy := a.VY
	t := r.level.FindSolid(probe, func(t *level.Tile) bool {
		if vy >= 0 {
			return prevBottom <= t.Rect.Top
		}
		return prevTop >= t.Rect.Bottom
	})

	switch {
	case t != nil && vy >= 0:
		a.Y = t.Rect.Top - a.H
		a.VY = 0
		a.State = Grounded
		if airborne {
			return Landed
		}
	case t != nil:
		a.Y = t.Rect.Bottom
		a.VY = r.params.HeadBumpSpeed
		a.State = Falling
		return HeadBumped
	case vy < 0:
		a.State = Rising
	default:
		a.State = Falling
	}
	return 0
}
