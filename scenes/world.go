package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/pixelplat/archetypes"
	"github.com/automoto/pixelplat/assets"
	"github.com/automoto/pixelplat/components"
	cfg "github.com/automoto/pixelplat/config"
	"github.com/automoto/pixelplat/engine"
	"github.com/automoto/pixelplat/level"
	"github.com/automoto/pixelplat/pixelart"
	"github.com/automoto/pixelplat/render/ebitensurface"
	"github.com/automoto/pixelplat/systems"
	"github.com/automoto/pixelplat/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene plays one level until the player wins, quits, or the session
// fails.
type WorldScene struct {
	ecs    *ecs.ECS
	level  *level.Level
	logger *log.Logger
	once   sync.Once
}

func NewWorldScene(lvl *level.Level, logger *log.Logger) *WorldScene {
	if logger == nil {
		logger = log.Default()
	}
	return &WorldScene{level: lvl, logger: logger}
}

// Update advances one tick. It returns ebiten.Termination once the session
// has ended cleanly, or the session's error.
func (ws *WorldScene) Update() error {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	sd, ok := systems.GetSession(ws.ecs)
	if ok && sd.Done {
		if sd.Err != nil {
			return sd.Err
		}
		ws.logger.Info("session finished", "ticks", sd.Session.Ticks(), "won", sd.Session.Won())
		return ebiten.Termination
	}
	return nil
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateDebug)
	e.AddSystem(systems.UpdateSession)
	e.AddSystem(systems.UpdateLevelComplete)

	e.AddRenderer(archetypes.LayerDefault, systems.DrawWorld)
	e.AddRenderer(archetypes.LayerDefault, systems.DrawDebug)
	e.AddRenderer(archetypes.LayerOverlay, systems.DrawHUD)
	e.AddRenderer(archetypes.LayerOverlay, systems.DrawLevelComplete)

	ws.ecs = e

	surface := ebitensurface.New()
	raster := pixelart.NewRasterizer(assets.Palette())
	sessionCfg := engine.DefaultSessionConfig(engine.ActorSprites{
		Standing: assets.PlayerStanding,
		Walking:  assets.PlayerWalking,
		Jumping:  assets.PlayerJumping,
	})
	sessionCfg.Logger = ws.logger

	session := archetypes.Session.Spawn(e)
	components.Session.SetValue(session, components.SessionData{
		Session: engine.NewSession(ws.level, surface, raster, sessionCfg),
		Surface: surface,
	})
	components.Debug.SetValue(session, components.DebugData{ShowHitboxes: cfg.Debug.ShowHitboxes})

	score := archetypes.Score.Spawn(e)
	components.Score.SetValue(score, components.ScoreData{Board: ui.NewScoreboard(cfg.Score.GoalBonus)})

	banner := archetypes.Banner.Spawn(e)
	components.LevelComplete.SetValue(banner, components.LevelCompleteData{Banner: ui.NewBanner(cfg.LevelComplete.Title)})

	ws.logger.Info("level started", "tiles", len(ws.level.Tiles), "width", ws.level.Width)
}
