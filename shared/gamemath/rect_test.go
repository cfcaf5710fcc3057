package gamemath

import "testing"

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", RectXYWH(0, 0, 16, 16), RectXYWH(8, 8, 16, 16), true},
		{"edge sharing horizontal", RectXYWH(0, 0, 16, 16), RectXYWH(16, 0, 16, 16), false},
		{"edge sharing vertical", RectXYWH(0, 208, 16, 16), RectXYWH(0, 224, 16, 16), false},
		{"half pixel overlap", RectXYWH(0, 208.5, 16, 16), RectXYWH(0, 224, 16, 16), true},
		{"contained", RectXYWH(0, 0, 32, 32), RectXYWH(4, 4, 2, 2), true},
		{"apart", RectXYWH(0, 0, 16, 16), RectXYWH(40, 40, 16, 16), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() reversed = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectWithin(t *testing.T) {
	world := RectXYWH(0, 0, 256, 240)
	if !RectXYWH(0, 224, 16, 16).Within(world) {
		t.Error("bottom-left tile should be within world")
	}
	if RectXYWH(250, 0, 16, 16).Within(world) {
		t.Error("tile crossing right edge should not be within world")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name        string
		v, min, max float64
		expected    float64
	}{
		{"inside", 5, 0, 10, 5},
		{"below", -3, 0, 10, 0},
		{"above", 12, 0, 10, 10},
		{"collapsed range", 7, 0, -20, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.v, tc.min, tc.max); got != tc.expected {
				t.Errorf("Clamp(%v, %v, %v) = %v, expected %v", tc.v, tc.min, tc.max, got, tc.expected)
			}
		})
	}
}

func TestHorizontalIntent(t *testing.T) {
	if got := HorizontalIntent(true, false, 2); got != -2 {
		t.Errorf("left = %v, expected -2", got)
	}
	if got := HorizontalIntent(false, true, 2); got != 2 {
		t.Errorf("right = %v, expected 2", got)
	}
	if got := HorizontalIntent(true, true, 2); got != 0 {
		t.Errorf("both = %v, expected 0", got)
	}
}
