package systems

import (
	"github.com/automoto/pixelplat/components"
	cfg "github.com/automoto/pixelplat/config"
	"github.com/automoto/pixelplat/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the score in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Score.First(e.World)
	if !ok {
		return
	}
	board := components.Score.Get(entry).Board

	margin := int(cfg.UI.HUDMargin)
	face := fonts.HUD.Get()
	baseline := margin + face.Metrics().Ascent.Ceil()
	text.Draw(screen, board.String(), face, margin, baseline, cfg.UI.HUDTextColor)
}
