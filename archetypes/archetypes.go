package archetypes

import (
	"github.com/automoto/pixelplat/components"
	"github.com/automoto/pixelplat/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in order.
const (
	LayerDefault ecs.LayerID = iota
	LayerOverlay
)

var (
	Session = newArchetype(
		tags.Session,
		components.Session,
		components.Input,
		components.Debug,
	)
	Score = newArchetype(
		tags.Score,
		components.Score,
	)
	Banner = newArchetype(
		tags.Banner,
		components.LevelComplete,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
