package systems

import (
	"github.com/automoto/pixelplat/components"
	cfg "github.com/automoto/pixelplat/config"
	"github.com/automoto/pixelplat/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

func startLevelComplete(e *ecs.ECS) {
	entry, ok := components.LevelComplete.First(e.World)
	if !ok {
		return
	}
	banner := components.LevelComplete.Get(entry).Banner
	h := float32(cfg.Display.Height)
	banner.Start(-float32(cfg.UI.HUDFontSize)*2, h/3, cfg.LevelComplete.SlideDuration)
}

// UpdateLevelComplete slides the banner in and ends the session once it has
// been up for LevelComplete.ExitAfter.
func UpdateLevelComplete(e *ecs.ECS) {
	entry, ok := components.LevelComplete.First(e.World)
	if !ok {
		return
	}
	banner := components.LevelComplete.Get(entry).Banner
	if !banner.Active() {
		return
	}

	banner.Update(1 / float32(ebiten.TPS()))
	if banner.Elapsed() >= cfg.LevelComplete.ExitAfter {
		if sd, ok := GetSession(e); ok {
			sd.Finish(nil)
		}
	}
}

// DrawLevelComplete renders the level complete overlay
func DrawLevelComplete(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.LevelComplete.First(e.World)
	if !ok {
		return
	}
	banner := components.LevelComplete.Get(entry).Banner
	if !banner.Active() {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.LevelComplete.OverlayColor, false)

	titleFont := fonts.Title.Get()
	titleX := centerTextX(banner.Text, titleFont, width)
	text.Draw(screen, banner.Text, titleFont, titleX, int(banner.Y()), cfg.LevelComplete.TitleColor)

	if !banner.Settled() {
		return
	}
	if scoreEntry, ok := components.Score.First(e.World); ok {
		msg := components.Score.Get(scoreEntry).Board.String()
		msgFont := fonts.HUD.Get()
		text.Draw(screen, msg, msgFont, centerTextX(msg, msgFont, width), int(banner.Y())+int(cfg.UI.HUDFontSize*2), cfg.UI.HUDTextColor)
	}
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	textWidth := bounds.Dx()
	return int((screenWidth - float64(textWidth)) / 2)
}
