package pixelart

import "image/color"

// Palette maps color names to concrete colors. It is immutable once built.
type Palette struct {
	colors map[ColorName]color.RGBA
}

// NewPalette copies colors into a new Palette.
func NewPalette(colors map[ColorName]color.RGBA) Palette {
	p := Palette{colors: make(map[ColorName]color.RGBA, len(colors))}
	for name, c := range colors {
		p.colors[name] = c
	}
	return p
}

// Lookup returns the color for name.
func (p Palette) Lookup(name ColorName) (color.RGBA, bool) {
	c, ok := p.colors[name]
	return c, ok
}

// Hex builds an opaque color from a 0xRRGGBB value.
func Hex(rgb uint32) color.RGBA {
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}
}
