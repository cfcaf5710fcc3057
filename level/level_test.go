package level

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/automoto/pixelplat/pixelart"
	"github.com/automoto/pixelplat/shared/gamemath"
)

var (
	brick = pixelart.NewDefinition("brick", []string{"B"}, map[byte]pixelart.Ink{'B': pixelart.Paint("brick")})
	pole  = pixelart.NewDefinition("pole", []string{"LD", "LD"}, map[byte]pixelart.Ink{
		'L': pixelart.Paint("light"),
		'D': pixelart.Paint("dark"),
	})
)

func area(tiles []Tile) float64 {
	total := 0.0
	for _, t := range tiles {
		total += t.Rect.Area()
	}
	return total
}

func TestAddTileBlockDecomposition(t *testing.T) {
	tests := []struct {
		name            string
		x, bottom, w, h int
		expected        gamemath.Rect
	}{
		{"single ground tile", 0, 1, 1, 1, gamemath.Rect{Left: 0, Top: 224, Right: 16, Bottom: 240}},
		{"ground strip", 0, 1, 69, 1, gamemath.Rect{Left: 0, Top: 224, Right: 1104, Bottom: 240}},
		{"two tall pipe", 28, 1, 2, 2, gamemath.Rect{Left: 448, Top: 208, Right: 480, Bottom: 240}},
		{"floating brick", 20, 5, 1, 1, gamemath.Rect{Left: 320, Top: 160, Right: 336, Bottom: 176}},
		{"stair column", 103, 2, 1, 4, gamemath.Rect{Left: 1648, Top: 160, Right: 1664, Bottom: 224}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBuilder(210, 240, 16)
			b.AddTileBlock(tc.x, tc.bottom, tc.w, tc.h, "brick", brick, true)
			lvl, err := b.Build()
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}

			if len(lvl.Tiles) != tc.w*tc.h {
				t.Fatalf("got %d tiles, expected %d", len(lvl.Tiles), tc.w*tc.h)
			}

			// Union equals the block: every tile is inside it, tiles do not
			// overlap, and the areas add up.
			for i, a := range lvl.Tiles {
				if !a.Rect.Within(tc.expected) {
					t.Errorf("tile %d %v outside block %v", i, a.Rect, tc.expected)
				}
				if a.Rect.Width() != 16 || a.Rect.Height() != 16 {
					t.Errorf("tile %d is %vx%v, expected unit tile", i, a.Rect.Width(), a.Rect.Height())
				}
				for j := i + 1; j < len(lvl.Tiles); j++ {
					if a.Rect.Overlaps(lvl.Tiles[j].Rect) {
						t.Errorf("tiles %d and %d overlap", i, j)
					}
				}
			}
			if got := area(lvl.Tiles); got != tc.expected.Area() {
				t.Errorf("union area = %v, expected %v", got, tc.expected.Area())
			}
		})
	}
}

func TestRowMajorOrder(t *testing.T) {
	b := NewBuilder(10, 240, 16)
	body := pixelart.NewDefinition("body", []string{"B"}, map[byte]pixelart.Ink{'B': pixelart.Paint("brick")})
	b.Add(Block{X: 2, Bottom: 1, W: 2, H: 3, Kind: "pipe", Sprite: brick, Body: body, Collidable: true})
	lvl, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	expected := []struct {
		left, top float64
		kind      string
	}{
		{32, 192, "pipe"}, {48, 192, "pipe"},
		{32, 208, "pipe_middle"}, {48, 208, "pipe_middle"},
		{32, 224, "pipe_middle"}, {48, 224, "pipe_middle"},
	}
	for i, e := range expected {
		got := lvl.Tiles[i]
		if got.Rect.Left != e.left || got.Rect.Top != e.top || got.Kind != e.kind {
			t.Errorf("tile %d = (%v,%v,%s), expected (%v,%v,%s)", i, got.Rect.Left, got.Rect.Top, got.Kind, e.left, e.top, e.kind)
		}
	}
	if lvl.Tiles[0].Sprite != brick || lvl.Tiles[2].Sprite != body {
		t.Error("top row should use the sprite and lower rows the body")
	}
}

func TestAddPole(t *testing.T) {
	b := NewBuilder(210, 240, 16)
	b.AddPole(142, 2, 8, "flagpole", pole, false, true)
	lvl, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(lvl.Tiles) != 1 {
		t.Fatalf("got %d tiles, expected a single pole", len(lvl.Tiles))
	}

	expected := gamemath.Rect{Left: 142*16 + 7, Top: 96, Right: 142*16 + 9, Bottom: 224}
	if got := lvl.Tiles[0].Rect; got != expected {
		t.Errorf("pole rect = %v, expected %v", got, expected)
	}
	if !lvl.GoalAt(gamemath.RectXYWH(142*16, 150, 16, 16)) {
		t.Error("expected actor over pole to reach goal")
	}
	if lvl.GoalAt(gamemath.RectXYWH(142*16-16, 150, 16, 16)) {
		t.Error("actor left of pole should not reach goal")
	}
}

func TestBuildErrors(t *testing.T) {
	b := NewBuilder(10, 240, 16)
	b.AddTileBlock(9, 1, 2, 1, "ground", brick, true)
	b.AddTileBlock(0, 16, 1, 1, "brick", brick, true)
	b.AddTileBlock(0, 0, 1, 1, "brick", brick, true)
	b.AddTileBlock(0, 1, 0, 1, "brick", brick, true)

	lvl, err := b.Build()
	if lvl != nil {
		t.Error("expected no level on error")
	}
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if !errors.Is(err, ErrEmptyBlock) {
		t.Errorf("expected ErrEmptyBlock, got %v", err)
	}
}

func TestFindInsertionOrder(t *testing.T) {
	b := NewBuilder(10, 240, 16)
	b.AddTileBlock(3, 1, 1, 1, "second", brick, true)
	b.AddTileBlock(2, 1, 1, 1, "first", brick, true)
	b.AddTileBlock(4, 1, 1, 1, "decor", brick, false)
	lvl, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	// Overlaps both collidable tiles; the earlier insertion wins even though
	// it lies to the right.
	r := gamemath.RectXYWH(40, 220, 16, 16)
	got := lvl.FindSolid(r, nil)
	if got == nil || got.Kind != "second" {
		t.Fatalf("FindSolid() = %v, expected the first inserted tile", got)
	}

	got = lvl.FindSolid(r, func(t *Tile) bool { return t.Kind == "first" })
	if got == nil || got.Kind != "first" {
		t.Errorf("FindSolid() with match = %v, expected first", got)
	}

	if lvl.FindSolid(gamemath.RectXYWH(64, 220, 16, 16), nil) != nil {
		t.Error("non-collidable tiles must not be found")
	}
	if lvl.FindSolid(gamemath.RectXYWH(32, 208, 16, 16), nil) != nil {
		t.Error("edge contact is not overlap")
	}
}

// The broadphase must agree with a linear scan over every tile.
func TestFindMatchesLinearScan(t *testing.T) {
	b := NewBuilder(40, 240, 16)
	b.AddTileBlock(0, 1, 40, 1, "ground", brick, true)
	b.AddTileBlock(5, 2, 2, 3, "pipe", brick, true)
	b.AddTileBlock(10, 5, 4, 1, "brick", brick, true)
	b.AddTileBlock(20, 2, 1, 6, "column", brick, true)
	lvl, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		r := gamemath.RectXYWH(rng.Float64()*640-8, rng.Float64()*260-10, 16, 16)

		var want *Tile
		for j := range lvl.Tiles {
			if lvl.Tiles[j].Collidable && lvl.Tiles[j].Rect.Overlaps(r) {
				want = &lvl.Tiles[j]
				break
			}
		}
		if got := lvl.FindSolid(r, nil); got != want {
			t.Fatalf("rect %v: FindSolid() = %v, linear scan = %v", r, got, want)
		}
	}
}

func TestStats(t *testing.T) {
	b := NewBuilder(20, 240, 16)
	b.AddTileBlock(0, 1, 4, 1, "ground", brick, true)
	b.AddTileBlock(6, 1, 1, 1, "cloud", brick, false)
	b.AddPole(10, 2, 3, "flagpole", pole, false, true)
	lvl, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	s := lvl.Stats()
	if s.Tiles != 6 || s.Collidable != 4 || s.Goals != 1 {
		t.Errorf("Stats() = %+v", s)
	}
	if s.Kinds["ground"] != 4 {
		t.Errorf("ground count = %d, expected 4", s.Kinds["ground"])
	}
}
