package components

import (
	"github.com/automoto/pixelplat/ui"
	"github.com/yohamta/donburi"
)

// LevelCompleteData stores the state of the level complete banner
type LevelCompleteData struct {
	Banner *ui.Banner
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
