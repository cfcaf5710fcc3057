// pixelplat plays a tile-based side-scrolling platformer level.
//
// Usage:
//
//	pixelplat                       - Play World 1-1
//	pixelplat --level bonus         - Play an embedded TMX level
//	pixelplat --level path/to.tmx   - Play a TMX level from disk
//
// Flags:
//
//	--config <path>     - YAML file overriding the built-in tunables
//	--log-level <lvl>   - debug, info, warn or error
//	--hitboxes          - Start with the collision overlay on (F3 toggles)
package main

import (
	"fmt"
	"os"

	"github.com/automoto/pixelplat/assets"
	"github.com/automoto/pixelplat/config"
	"github.com/automoto/pixelplat/fonts"
	"github.com/automoto/pixelplat/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagLogLevel string
	flagLevel    string
	flagHitboxes bool
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(scene Scene) *Game {
	return &Game{scene: scene}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.Display.Width, config.Display.Height
}

var rootCmd = &cobra.Command{
	Use:          "pixelplat",
	Short:        "Play a pixel-art platformer level",
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "YAML config file")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level (default from config)")
	rootCmd.Flags().StringVar(&flagLevel, "level", assets.World11Name, "Level name or .tmx path")
	rootCmd.Flags().BoolVar(&flagHitboxes, "hitboxes", false, "Show collision rectangles")
}

func runGame(cmd *cobra.Command, args []string) error {
	if err := config.Load(flagConfig); err != nil {
		return err
	}
	if cmd.Flags().Changed("hitboxes") {
		config.Debug.ShowHitboxes = flagHitboxes
	}

	logger, err := config.NewLogger(os.Stderr, "pixelplat", flagLogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	lvl, err := assets.Open(flagLevel, logger)
	if err != nil {
		return err
	}
	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	ebiten.SetWindowSize(config.Display.Width, config.Display.Height)
	ebiten.SetWindowTitle(config.Display.Title)
	ebiten.SetTPS(config.Loop.TickRate)

	return ebiten.RunGame(NewGame(scenes.NewWorldScene(lvl, logger)))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
