package render

import (
	"image/color"
	"testing"

	"github.com/automoto/pixelplat/pixelart"
	"github.com/automoto/pixelplat/shared/gamemath"
)

func testRenderer(s Surface) *Renderer {
	p := pixelart.NewPalette(map[pixelart.ColorName]color.RGBA{"red": pixelart.Hex(0xD03030)})
	return NewRenderer(s, pixelart.NewRasterizer(p), Viewport{Width: 256, Height: 240, Scale: 3.125})
}

func TestDrawReusesHandle(t *testing.T) {
	s := NewNopSurface()
	r := testRenderer(s)
	def := pixelart.NewDefinition("block", []string{"R"}, map[byte]pixelart.Ink{'R': pixelart.Paint("red")})

	var h Handle
	rect := gamemath.RectXYWH(0, 224, 16, 16)
	for i := 0; i < 5; i++ {
		if !r.Draw(&h, rect, def, float64(i)) {
			t.Fatal("expected draw")
		}
	}
	if s.Handles() != 1 {
		t.Errorf("Handles() = %d, expected 1", s.Handles())
	}
	if s.Shows != 5 {
		t.Errorf("Shows = %d, expected 5", s.Shows)
	}
	if r.Rasterizer().Len() != 1 {
		t.Errorf("cache Len() = %d, expected 1", r.Rasterizer().Len())
	}

	r.Hide(&h)
	if s.Shown(h) {
		t.Error("expected handle hidden")
	}
	if h == 0 {
		t.Error("hide must not release the handle")
	}
}

func TestDrawNothing(t *testing.T) {
	s := NewNopSurface()
	r := testRenderer(s)

	var h Handle
	if r.Draw(&h, gamemath.RectXYWH(0, 0, 16, 16), nil, 0) {
		t.Error("nil definition should draw nothing")
	}
	if s.Visible() != 0 {
		t.Errorf("Visible() = %d, expected 0", s.Visible())
	}
}

func TestViewportVisible(t *testing.T) {
	v := Viewport{Width: 256, Height: 240, Scale: 1}
	tests := []struct {
		name     string
		rect     gamemath.Rect
		scroll   float64
		expected bool
	}{
		{"on screen", gamemath.RectXYWH(100, 0, 16, 16), 0, true},
		{"inside right padding", gamemath.RectXYWH(260, 0, 16, 16), 0, true},
		{"past right padding", gamemath.RectXYWH(272, 0, 16, 16), 0, false},
		{"inside left padding", gamemath.RectXYWH(0, 0, 16, 16), 30, true},
		{"past left padding", gamemath.RectXYWH(0, 0, 16, 16), 32, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := v.Visible(tc.rect, tc.scroll, 16); got != tc.expected {
				t.Errorf("Visible() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
