// Package render draws world-space sprites onto a host surface through
// stable handles that are shown, moved, and hidden but never recreated.
package render

import (
	"image"
	"math"

	"github.com/automoto/pixelplat/pixelart"
	"github.com/automoto/pixelplat/shared/gamemath"
)

// Handle identifies one drawable primitive on a Surface. The zero Handle is
// unallocated.
type Handle uint32

// Surface is the drawable area the host provides. Coordinates are canvas
// pixels. Handles are drawn in allocation order, so later handles stack on
// top.
type Surface interface {
	// Alive reports whether the surface can still be drawn to.
	Alive() bool
	NewHandle() Handle
	// Show places img at (x, y) for h, replacing whatever h showed before.
	Show(h Handle, x, y float64, img *image.RGBA)
	Hide(h Handle)
}

// Viewport describes the visible window onto the world.
type Viewport struct {
	Width  float64 // World pixels
	Height float64 // World pixels
	Scale  float64 // Canvas pixels per world pixel
}

// Visible reports whether r intersects the horizontal span
// [scrollX - pad, scrollX + Width + pad].
func (v Viewport) Visible(r gamemath.Rect, scrollX, pad float64) bool {
	return r.Right > scrollX-pad && r.Left < scrollX+v.Width+pad
}

// Renderer rasterizes definitions at canvas size and pushes them to a
// Surface.
type Renderer struct {
	surface Surface
	raster  *pixelart.Rasterizer
	view    Viewport
}

func NewRenderer(surface Surface, raster *pixelart.Rasterizer, view Viewport) *Renderer {
	if view.Scale <= 0 {
		view.Scale = 1
	}
	return &Renderer{surface: surface, raster: raster, view: view}
}

func (r *Renderer) Viewport() Viewport { return r.view }

func (r *Renderer) Rasterizer() *pixelart.Rasterizer { return r.raster }

// Allocate assigns a surface handle to h if it has none yet.
func (r *Renderer) Allocate(h *Handle) {
	if *h == 0 {
		*h = r.surface.NewHandle()
	}
}

// Draw shows def over the world rectangle rect, offset by the camera scroll.
// When the sprite rasterizes to nothing the handle is hidden and Draw
// returns false.
func (r *Renderer) Draw(h *Handle, rect gamemath.Rect, def *pixelart.Definition, scrollX float64) bool {
	r.Allocate(h)

	w := int(math.Round(rect.Width() * r.view.Scale))
	ht := int(math.Round(rect.Height() * r.view.Scale))
	img := r.raster.Bitmap(def, w, ht)
	if img == nil {
		r.surface.Hide(*h)
		return false
	}

	x := (rect.Left - scrollX) * r.view.Scale
	y := rect.Top * r.view.Scale
	r.surface.Show(*h, x, y, img)
	return true
}

// Hide removes h from the surface without releasing it.
func (r *Renderer) Hide(h *Handle) {
	if *h == 0 {
		return
	}
	r.surface.Hide(*h)
}
