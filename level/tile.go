// Package level holds the static tile model and the declarative builder that
// produces it.
package level

import (
	"github.com/automoto/pixelplat/pixelart"
	"github.com/automoto/pixelplat/render"
	"github.com/automoto/pixelplat/shared/gamemath"
)

// Tile is one static rectangle of the level. Everything but Handle is fixed
// once the level is built.
type Tile struct {
	Rect       gamemath.Rect
	Kind       string // Visual type, e.g. "ground" or "pipe_middle"
	Sprite     *pixelart.Definition
	Collidable bool
	Goal       bool

	Handle render.Handle
}

// Block is one declarative level-building call in tile units. Bottom is the
// 1-based row counted up from the bottom of the world, so Bottom 1 is the
// lowest row.
type Block struct {
	X, Bottom int
	W, H      int
	Kind      string
	Sprite    *pixelart.Definition
	// Body is drawn on every row below the top row when set. Those tiles get
	// a "_middle" kind suffix.
	Body       *pixelart.Definition
	Collidable bool
	Goal       bool
	// Pole blocks are one rectangle of the sprite's native width centered in
	// the column instead of unit tiles.
	Pole bool
}
