// Package physics advances the single dynamic actor one fixed tick at a time
// against a level's static tiles.
package physics

import (
	"strings"

	"github.com/automoto/pixelplat/config"
	"github.com/automoto/pixelplat/shared/gamemath"
)

// VerticalState is the actor's vertical motion state.
type VerticalState int

const (
	Grounded VerticalState = iota
	Rising
	Falling
)

func (s VerticalState) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Rising:
		return "rising"
	case Falling:
		return "falling"
	}
	return "unknown"
}

// Actor is the player body. Only the Resolver mutates it during play.
type Actor struct {
	X, Y   float64 // Top-left, world pixels
	VX, VY float64
	W, H   float64
	State  VerticalState

	SpawnX, SpawnY float64
}

// NewActor returns a grounded size x size actor at its spawn point.
func NewActor(spawnX, spawnY, size float64) *Actor {
	a := &Actor{W: size, H: size, SpawnX: spawnX, SpawnY: spawnY}
	a.Respawn()
	return a
}

func (a *Actor) OnGround() bool { return a.State == Grounded }

func (a *Actor) Rect() gamemath.Rect {
	return gamemath.RectXYWH(a.X, a.Y, a.W, a.H)
}

// Respawn puts the actor back on its spawn point at rest.
func (a *Actor) Respawn() {
	a.X, a.Y = a.SpawnX, a.SpawnY
	a.VX, a.VY = 0, 0
	a.State = Grounded
}

// Intent is the set of held inputs for one tick.
type Intent struct {
	Left, Right, Jump bool
}

// Params are the per-tick physics constants.
type Params struct {
	Gravity       float64
	JumpPower     float64
	MoveSpeed     float64
	HeadBumpSpeed float64
	FallMargin    float64 // Actor heights below the world before respawn
}

// ConfigParams reads Params from the config package.
func ConfigParams() Params {
	return Params{
		Gravity:       config.Physics.Gravity,
		JumpPower:     config.Player.JumpPower,
		MoveSpeed:     config.Player.MoveSpeed,
		HeadBumpSpeed: config.Physics.HeadBumpSpeed,
		FallMargin:    config.Physics.FallMargin,
	}
}

// Events is a set of things that happened during a tick.
type Events uint8

const (
	Jumped Events = 1 << iota
	Landed
	HeadBumped
	BlockedX
	Respawned
	GoalReached
)

var eventNames = []struct {
	ev   Events
	name string
}{
	{Jumped, "jumped"},
	{Landed, "landed"},
	{HeadBumped, "head_bumped"},
	{BlockedX, "blocked_x"},
	{Respawned, "respawned"},
	{GoalReached, "goal_reached"},
}

// Has reports whether every event in f is set.
func (e Events) Has(f Events) bool { return e&f == f }

func (e Events) String() string {
	if e == 0 {
		return "none"
	}
	var names []string
	for _, n := range eventNames {
		if e.Has(n.ev) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}
