package level

import (
	"errors"
	"fmt"

	"github.com/automoto/pixelplat/pixelart"
	"github.com/automoto/pixelplat/shared/gamemath"
	"github.com/charmbracelet/log"
)

var (
	ErrOutOfBounds = errors.New("level: tile outside world bounds")
	ErrEmptyBlock  = errors.New("level: block has no area")
)

const middleSuffix = "_middle"

// Builder accumulates tiles from block calls. It is used once at level
// construction and then discarded.
type Builder struct {
	tileSize float64
	bounds   gamemath.Rect
	tiles    []Tile
	spawnX   float64
	spawnY   float64
	errs     []error
	logger   *log.Logger
}

// NewBuilder starts a level widthTiles tiles wide and heightPx world pixels
// tall.
func NewBuilder(widthTiles int, heightPx float64, tileSize int) *Builder {
	ts := float64(tileSize)
	return &Builder{
		tileSize: ts,
		bounds:   gamemath.Rect{Right: float64(widthTiles) * ts, Bottom: heightPx},
		logger:   log.Default(),
	}
}

// WithLogger sets the logger used for the build summary.
func (b *Builder) WithLogger(l *log.Logger) *Builder {
	if l != nil {
		b.logger = l
	}
	return b
}

// SetSpawn sets the actor spawn position in world pixels.
func (b *Builder) SetSpawn(x, y float64) {
	b.spawnX, b.spawnY = x, y
}

// AddTileBlock adds a w x h block of unit tiles whose lowest row sits at
// bottom (1-based, counted up from the world bottom) and whose left column
// is x.
func (b *Builder) AddTileBlock(x, bottom, w, h int, kind string, sprite *pixelart.Definition, collidable bool) {
	b.Add(Block{X: x, Bottom: bottom, W: w, H: h, Kind: kind, Sprite: sprite, Collidable: collidable})
}

// AddPole adds a single thin rectangle h tiles tall in column x. Its width
// is the sprite's native pixel width.
func (b *Builder) AddPole(x, bottom, h int, kind string, sprite *pixelart.Definition, collidable, goal bool) {
	b.Add(Block{X: x, Bottom: bottom, W: 1, H: h, Kind: kind, Sprite: sprite, Collidable: collidable, Goal: goal, Pole: true})
}

// Add appends the tiles for blk in row-major order, top row first.
func (b *Builder) Add(blk Block) {
	if blk.W <= 0 || blk.H <= 0 {
		b.errs = append(b.errs, fmt.Errorf("%s at (%d,%d) size %dx%d: %w", blk.Kind, blk.X, blk.Bottom, blk.W, blk.H, ErrEmptyBlock))
		return
	}

	if blk.Pole {
		b.addPole(blk)
		return
	}

	ts := b.tileSize
	for row := 0; row < blk.H; row++ {
		top := b.topOf(blk.Bottom + blk.H - 1 - row)
		kind, sprite := blk.Kind, blk.Sprite
		if row > 0 && blk.Body != nil {
			kind, sprite = blk.Kind+middleSuffix, blk.Body
		}
		for col := 0; col < blk.W; col++ {
			b.append(Tile{
				Rect:       gamemath.RectXYWH(float64(blk.X+col)*ts, top, ts, ts),
				Kind:       kind,
				Sprite:     sprite,
				Collidable: blk.Collidable,
				Goal:       blk.Goal,
			})
		}
	}
}

func (b *Builder) addPole(blk Block) {
	ts := b.tileSize
	w := ts
	if blk.Sprite != nil && blk.Sprite.Width() > 0 {
		w = float64(blk.Sprite.Width())
	}
	left := float64(blk.X)*ts + (ts-w)/2
	top := b.topOf(blk.Bottom + blk.H - 1)
	b.append(Tile{
		Rect:       gamemath.RectXYWH(left, top, w, float64(blk.H)*ts),
		Kind:       blk.Kind,
		Sprite:     blk.Sprite,
		Collidable: blk.Collidable,
		Goal:       blk.Goal,
	})
}

// topOf returns the world-pixel top of the 1-based row counted up from the
// world bottom.
func (b *Builder) topOf(row int) float64 {
	return b.bounds.Bottom - float64(row)*b.tileSize
}

func (b *Builder) append(t Tile) {
	if !t.Rect.Within(b.bounds) {
		b.errs = append(b.errs, fmt.Errorf("%s tile at (%g,%g): %w", t.Kind, t.Rect.Left, t.Rect.Top, ErrOutOfBounds))
		return
	}
	b.tiles = append(b.tiles, t)
}

// Len returns the number of tiles added so far.
func (b *Builder) Len() int { return len(b.tiles) }

// Build returns the finished level, or every block error joined together.
func (b *Builder) Build() (*Level, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	lvl := newLevel(b.tiles, b.bounds, b.tileSize, b.spawnX, b.spawnY)
	stats := lvl.Stats()
	b.logger.Info("level built",
		"tiles", stats.Tiles,
		"collidable", stats.Collidable,
		"goals", stats.Goals,
		"width", lvl.Width,
		"height", lvl.Height)
	return lvl, nil
}
