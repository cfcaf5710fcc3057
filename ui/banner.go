package ui

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Banner is the level-complete title. It slides from FromY to ToY once
// started, then holds until the host exits.
type Banner struct {
	Text string

	tween   *gween.Tween
	y       float32
	active  bool
	elapsed float32
}

func NewBanner(text string) *Banner {
	return &Banner{Text: text}
}

// Start begins the slide. Calling Start on an active banner does nothing.
func (b *Banner) Start(fromY, toY, seconds float32) {
	if b.active {
		return
	}
	b.active = true
	b.y = fromY
	b.elapsed = 0
	if seconds > 0 {
		b.tween = gween.New(fromY, toY, seconds, ease.OutCubic)
	} else {
		b.y = toY
	}
}

// Update advances the slide by dt seconds.
func (b *Banner) Update(dt float32) {
	if !b.active {
		return
	}
	b.elapsed += dt
	if b.tween == nil {
		return
	}
	y, done := b.tween.Update(dt)
	b.y = y
	if done {
		b.tween = nil
	}
}

func (b *Banner) Active() bool { return b.active }

// Y is the banner's current baseline in canvas pixels.
func (b *Banner) Y() float32 { return b.y }

// Settled reports whether the slide has finished.
func (b *Banner) Settled() bool { return b.active && b.tween == nil }

// Elapsed is the time since Start.
func (b *Banner) Elapsed() time.Duration {
	return time.Duration(float64(b.elapsed) * float64(time.Second))
}
