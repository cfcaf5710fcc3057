package components

import (
	"github.com/automoto/pixelplat/ui"
	"github.com/yohamta/donburi"
)

type ScoreData struct {
	Board *ui.Scoreboard
}

var Score = donburi.NewComponentType[ScoreData]()
