package tags

import "github.com/yohamta/donburi"

var (
	Session = donburi.NewTag().SetName("Session")
	Score   = donburi.NewTag().SetName("Score")
	Banner  = donburi.NewTag().SetName("Banner")
)

// Resolv tags for the level broadphase
const (
	ResolvSolid = "solid"
	ResolvGoal  = "goal"
	ResolvProbe = "probe"
)
