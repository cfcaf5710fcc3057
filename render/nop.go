package render

import "image"

// NopSurface is a headless Surface that only counts what would be drawn.
type NopSurface struct {
	closed  bool
	next    Handle
	visible map[Handle]bool

	Shows int
	Hides int
}

func NewNopSurface() *NopSurface {
	return &NopSurface{visible: make(map[Handle]bool)}
}

func (s *NopSurface) Alive() bool { return !s.closed }

// Close makes the surface report itself as gone.
func (s *NopSurface) Close() { s.closed = true }

func (s *NopSurface) NewHandle() Handle {
	s.next++
	return s.next
}

func (s *NopSurface) Show(h Handle, x, y float64, img *image.RGBA) {
	s.Shows++
	s.visible[h] = true
}

func (s *NopSurface) Hide(h Handle) {
	s.Hides++
	delete(s.visible, h)
}

// Handles returns the number of handles allocated so far.
func (s *NopSurface) Handles() int { return int(s.next) }

// Visible returns the number of handles currently shown.
func (s *NopSurface) Visible() int { return len(s.visible) }

// Shown reports whether h is currently shown.
func (s *NopSurface) Shown(h Handle) bool { return s.visible[h] }
