package systems

import (
	"github.com/automoto/pixelplat/assets"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawWorld fills the sky and replays the session's surface.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(assets.Sky())

	sd, ok := GetSession(e)
	if !ok || sd.Done {
		return
	}
	sd.Surface.Draw(screen)
}
