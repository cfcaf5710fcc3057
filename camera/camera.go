// Package camera holds the horizontal scroll that maps world x to viewport x.
package camera

import "github.com/automoto/pixelplat/shared/gamemath"

// Camera scrolls forward to keep the actor no further than Lead of the
// viewport ahead of the left edge. Moving backward never scrolls.
type Camera struct {
	ViewportWidth float64
	WorldWidth    float64
	Lead          float64 // Fraction of ViewportWidth
	ScrollX       float64
}

func New(viewportWidth, worldWidth, lead float64) *Camera {
	return &Camera{ViewportWidth: viewportWidth, WorldWidth: worldWidth, Lead: lead}
}

// MaxScroll is the largest scroll that keeps the viewport inside the world.
func (c *Camera) MaxScroll() float64 {
	return max(0, c.WorldWidth-c.ViewportWidth)
}

// Update advances the scroll for the actor at actorX and returns it.
func (c *Camera) Update(actorX float64) float64 {
	lead := c.ViewportWidth * c.Lead
	if actorX-c.ScrollX > lead {
		c.ScrollX = actorX - lead
	}
	c.ScrollX = gamemath.Clamp(c.ScrollX, 0, c.MaxScroll())
	return c.ScrollX
}

// Reset scrolls back to the start of the world.
func (c *Camera) Reset() {
	c.ScrollX = 0
}

// ToView converts a world x to a viewport x.
func (c *Camera) ToView(worldX float64) float64 {
	return worldX - c.ScrollX
}
