package pixelart

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

type cacheKey struct {
	def  *Definition
	w, h int
}

// Rasterizer scales definitions to bitmaps and caches the results for the
// lifetime of the rasterizer. It is not safe for concurrent use.
type Rasterizer struct {
	palette Palette
	cache   map[cacheKey]*image.RGBA
}

func NewRasterizer(p Palette) *Rasterizer {
	return &Rasterizer{
		palette: p,
		cache:   make(map[cacheKey]*image.RGBA),
	}
}

// Bitmap returns the bitmap for def at w x h pixels, creating and caching it
// on first request. It returns nil when there is nothing to draw: a nil
// definition or a non-positive size. An empty grid yields a fully
// transparent bitmap.
func (r *Rasterizer) Bitmap(def *Definition, w, h int) *image.RGBA {
	if def == nil || w <= 0 || h <= 0 {
		return nil
	}

	key := cacheKey{def: def, w: w, h: h}
	if img, ok := r.cache[key]; ok {
		return img
	}

	img := r.rasterize(def, w, h)
	r.cache[key] = img
	return img
}

func (r *Rasterizer) rasterize(def *Definition, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if def.Empty() {
		return img
	}

	gw, gh := def.Width(), def.Height()
	for row := 0; row < gh; row++ {
		y0, y1 := cellSpan(row, gh, h)
		for col := 0; col < gw; col++ {
			ink := def.InkAt(col, row)
			if !ink.Opaque() {
				continue
			}
			c, ok := r.palette.Lookup(ink.Name())
			if !ok {
				continue
			}
			x0, x1 := cellSpan(col, gw, w)
			draw.Draw(img, image.Rect(x0, y0, x1, y1), image.NewUniform(c), image.Point{}, draw.Src)
		}
	}
	return img
}

// cellSpan maps grid cell i of n onto [0, size). Consecutive cells share
// edges so there are no gaps; a cell that would round to zero width is
// widened to one pixel.
func cellSpan(i, n, size int) (int, int) {
	scale := float64(size) / float64(n)
	start := int(math.RoundToEven(float64(i) * scale))
	end := int(math.RoundToEven(float64(i+1) * scale))
	if end <= start {
		end = start + 1
	}
	if end > size {
		end = size
		if start >= end {
			start = end - 1
		}
	}
	return start, end
}

// Len returns the number of cached bitmaps.
func (r *Rasterizer) Len() int { return len(r.cache) }

// Release drops every cached bitmap.
func (r *Rasterizer) Release() {
	clear(r.cache)
}
