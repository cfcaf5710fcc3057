// Package ebitensurface implements render.Surface on an ebiten screen.
package ebitensurface

import (
	"image"
	"math"

	"github.com/automoto/pixelplat/render"
	"github.com/hajimehoshi/ebiten/v2"
)

type sprite struct {
	x, y    float64
	img     *ebiten.Image
	visible bool
}

// Surface records what each handle shows and replays it every frame.
// Bitmaps are uploaded to the GPU once and reused by pointer.
type Surface struct {
	sprites []sprite
	images  map[*image.RGBA]*ebiten.Image
	closed  bool
	op      ebiten.DrawImageOptions
}

var _ render.Surface = (*Surface)(nil)

func New() *Surface {
	return &Surface{images: make(map[*image.RGBA]*ebiten.Image)}
}

func (s *Surface) Alive() bool { return !s.closed }

func (s *Surface) NewHandle() render.Handle {
	s.sprites = append(s.sprites, sprite{})
	return render.Handle(len(s.sprites))
}

func (s *Surface) Show(h render.Handle, x, y float64, img *image.RGBA) {
	sp := s.slot(h)
	if sp == nil || img == nil {
		return
	}
	sp.x, sp.y = x, y
	sp.img = s.upload(img)
	sp.visible = true
}

func (s *Surface) Hide(h render.Handle) {
	if sp := s.slot(h); sp != nil {
		sp.visible = false
	}
}

func (s *Surface) slot(h render.Handle) *sprite {
	if s.closed || h == 0 || int(h) > len(s.sprites) {
		return nil
	}
	return &s.sprites[h-1]
}

func (s *Surface) upload(img *image.RGBA) *ebiten.Image {
	if e, ok := s.images[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	s.images[img] = e
	return e
}

// Draw paints every visible handle in allocation order.
func (s *Surface) Draw(screen *ebiten.Image) {
	if s.closed {
		return
	}
	for i := range s.sprites {
		sp := &s.sprites[i]
		if !sp.visible {
			continue
		}
		s.op.GeoM.Reset()
		s.op.GeoM.Translate(math.Round(sp.x), math.Round(sp.y))
		screen.DrawImage(sp.img, &s.op)
	}
}

// Close frees the uploaded images. The surface reports not alive afterwards.
func (s *Surface) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for _, e := range s.images {
		e.Deallocate()
	}
	clear(s.images)
	s.sprites = nil
}
