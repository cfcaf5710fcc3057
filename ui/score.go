// Package ui holds host-shell state that does not touch ebiten: the
// scoreboard and the level-complete banner.
package ui

import (
	"fmt"

	"github.com/automoto/pixelplat/physics"
)

// Scoreboard tracks points across one session.
type Scoreboard struct {
	Points int
	Best   int
	Falls  int
	bonus  int
}

func NewScoreboard(goalBonus int) *Scoreboard {
	return &Scoreboard{bonus: goalBonus}
}

// Apply folds one tick's events into the score. A respawn clears the points
// before a goal in the same tick is counted.
func (s *Scoreboard) Apply(ev physics.Events) {
	if ev.Has(physics.Respawned) {
		s.Falls++
		s.Points = 0
	}
	if ev.Has(physics.GoalReached) {
		s.Points += s.bonus
	}
	s.Best = max(s.Best, s.Points)
}

// String renders the HUD score line.
func (s *Scoreboard) String() string {
	return FormatScore(s.Points)
}

func FormatScore(points int) string {
	return fmt.Sprintf("SCORE: %06d", max(points, 0))
}
