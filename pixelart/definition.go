// Package pixelart turns character-grid pixel art into bitmaps.
//
// A Definition is a grid of single-byte symbols plus a table mapping each
// symbol to an Ink. A Rasterizer resolves inks against a Palette and scales
// the grid to any target size, memoizing one bitmap per (definition, size).
package pixelart

import (
	"errors"
	"fmt"
)

var (
	ErrRaggedGrid    = errors.New("pixelart: rows differ in length")
	ErrUnknownSymbol = errors.New("pixelart: symbol has no ink")
)

// ColorName names an entry in a Palette.
type ColorName string

// Ink is what a grid symbol paints: either nothing or a named palette color.
// The zero Ink is transparent.
type Ink struct {
	name   ColorName
	opaque bool
}

// Transparent is the ink that leaves a cell unpainted.
var Transparent = Ink{}

// Paint returns an opaque ink for the named palette color.
func Paint(name ColorName) Ink {
	return Ink{name: name, opaque: true}
}

func (i Ink) Opaque() bool { return i.opaque }

func (i Ink) Name() ColorName { return i.name }

func (i Ink) String() string {
	if !i.opaque {
		return "transparent"
	}
	return string(i.name)
}

// Definition is an immutable sprite: rows of symbols and the ink each symbol
// paints. Definitions are compared by identity, so share the pointer.
type Definition struct {
	name string
	rows []string
	inks map[byte]Ink
}

// NewDefinition copies rows and inks into a new Definition.
func NewDefinition(name string, rows []string, inks map[byte]Ink) *Definition {
	d := &Definition{
		name: name,
		rows: append([]string(nil), rows...),
		inks: make(map[byte]Ink, len(inks)),
	}
	for sym, ink := range inks {
		d.inks[sym] = ink
	}
	return d
}

func (d *Definition) Name() string { return d.name }

// Width is the length of the first row. Cells past it are ignored and
// missing cells in shorter rows are transparent.
func (d *Definition) Width() int {
	if len(d.rows) == 0 {
		return 0
	}
	return len(d.rows[0])
}

func (d *Definition) Height() int { return len(d.rows) }

// Empty reports whether the grid has no cells.
func (d *Definition) Empty() bool {
	return d.Width() == 0 || d.Height() == 0
}

// InkAt returns the ink for the cell at (col, row). Out of range cells and
// symbols without an ink are transparent.
func (d *Definition) InkAt(col, row int) Ink {
	if row < 0 || row >= len(d.rows) || col < 0 || col >= d.Width() {
		return Transparent
	}
	line := d.rows[row]
	if col >= len(line) {
		return Transparent
	}
	return d.inks[line[col]]
}

// Validate reports grid problems that rasterization silently tolerates.
func (d *Definition) Validate() error {
	var errs []error
	w := d.Width()
	for i, line := range d.rows {
		if len(line) != w {
			errs = append(errs, fmt.Errorf("%s row %d has %d cells, want %d: %w", d.name, i, len(line), w, ErrRaggedGrid))
		}
		for j := 0; j < len(line); j++ {
			if _, ok := d.inks[line[j]]; !ok {
				errs = append(errs, fmt.Errorf("%s row %d col %d symbol %q: %w", d.name, i, j, line[j], ErrUnknownSymbol))
			}
		}
	}
	return errors.Join(errs...)
}
