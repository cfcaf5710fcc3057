package level

import (
	"sort"

	"github.com/automoto/pixelplat/shared/gamemath"
	"github.com/automoto/pixelplat/tags"
	"github.com/solarlune/resolv"
)

// Level is the built, read-only tile set plus world bounds. Collidable and
// goal tiles are indexed in a resolv space for broadphase queries.
type Level struct {
	Tiles    []Tile
	Width    float64
	Height   float64
	TileSize float64
	SpawnX   float64
	SpawnY   float64

	space *resolv.Space
	probe *resolv.Object
	hits  []int
}

// Stats summarizes a level.
type Stats struct {
	Tiles      int
	Collidable int
	Goals      int
	Kinds      map[string]int
}

func newLevel(tiles []Tile, bounds gamemath.Rect, tileSize, spawnX, spawnY float64) *Level {
	lvl := &Level{
		Tiles:    tiles,
		Width:    bounds.Width(),
		Height:   bounds.Height(),
		TileSize: tileSize,
		SpawnX:   spawnX,
		SpawnY:   spawnY,
	}

	ts := int(tileSize)
	lvl.space = resolv.NewSpace(int(lvl.Width), int(lvl.Height), ts, ts)
	for i := range lvl.Tiles {
		t := &lvl.Tiles[i]
		var objTags []string
		if t.Collidable {
			objTags = append(objTags, tags.ResolvSolid)
		}
		if t.Goal {
			objTags = append(objTags, tags.ResolvGoal)
		}
		if len(objTags) == 0 {
			continue
		}

		obj := resolv.NewObject(t.Rect.Left, t.Rect.Top, t.Rect.Width(), t.Rect.Height(), objTags...)
		obj.Data = i // Tile index for insertion-order tie-breaks
		lvl.space.Add(obj)
	}

	lvl.probe = resolv.NewObject(0, 0, tileSize, tileSize, tags.ResolvProbe)
	lvl.space.Add(lvl.probe)
	return lvl
}

// Bounds returns the world rectangle.
func (l *Level) Bounds() gamemath.Rect {
	return gamemath.Rect{Right: l.Width, Bottom: l.Height}
}

// Find returns the first tile, in insertion order, that carries tag,
// strictly overlaps r, and satisfies match. A nil match accepts any tile.
func (l *Level) Find(r gamemath.Rect, tag string, match func(*Tile) bool) *Tile {
	for _, i := range l.candidates(r, tag) {
		t := &l.Tiles[i]
		if !t.Rect.Overlaps(r) {
			continue
		}
		if match == nil || match(t) {
			return t
		}
	}
	return nil
}

// FindSolid is Find over collidable tiles.
func (l *Level) FindSolid(r gamemath.Rect, match func(*Tile) bool) *Tile {
	return l.Find(r, tags.ResolvSolid, match)
}

// GoalAt reports whether r overlaps a goal tile.
func (l *Level) GoalAt(r gamemath.Rect) bool {
	return l.Find(r, tags.ResolvGoal, nil) != nil
}

// candidates returns the sorted indices of tiles sharing a broadphase cell
// with r. The probe is grown by a pixel on every side so that tiles touching
// r along a cell boundary are still considered.
func (l *Level) candidates(r gamemath.Rect, tag string) []int {
	l.hits = l.hits[:0]

	p := l.probe
	p.X, p.Y = r.Left-1, r.Top-1
	p.W, p.H = r.Width()+2, r.Height()+2

	check := p.Check(0, 0, tag)
	if check == nil {
		return l.hits
	}
	for _, obj := range check.Objects {
		if i, ok := obj.Data.(int); ok {
			l.hits = append(l.hits, i)
		}
	}
	sort.Ints(l.hits)
	l.hits = dedupe(l.hits)
	return l.hits
}

func dedupe(sorted []int) []int {
	if len(sorted) < 2 {
		return sorted
	}
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// Stats counts tiles by collidability, goal flag, and kind.
func (l *Level) Stats() Stats {
	s := Stats{Tiles: len(l.Tiles), Kinds: make(map[string]int)}
	for _, t := range l.Tiles {
		if t.Collidable {
			s.Collidable++
		}
		if t.Goal {
			s.Goals++
		}
		s.Kinds[t.Kind]++
	}
	return s
}
