// pixelsim drives the platformer engine without a window.
//
// Usage:
//
//	pixelsim run [--ticks N] [--script S] [--realtime]   - Simulate a level
//	pixelsim level                                      - Print level statistics
//	pixelsim sprite NAME --out F.png                    - Export a rasterized sprite
//
// Global flags:
//
//	--config <path>     - YAML file overriding the built-in tunables
//	--level <name>      - world11, an embedded level, or a .tmx path
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/automoto/pixelplat/assets"
	"github.com/automoto/pixelplat/config"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLevel    string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pixelsim",
	Short: "Headless platformer simulation and asset tools",
	Long: `pixelsim runs the platformer engine against a counting surface, so
levels and physics can be exercised without opening a window.

Examples:
  pixelsim run --script R:120,RJ:20
  pixelsim run --level bonus --ticks 600 --realtime
  pixelsim level --level path/to/map.tmx
  pixelsim sprite player_standing --width 64 --height 64 --out mario.png`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Load(flagConfig)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", assets.World11Name, "Level name or .tmx path")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (default from config)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(levelCmd)
	rootCmd.AddCommand(spriteCmd)
}

func newLogger() (*log.Logger, error) {
	logger, err := config.NewLogger(os.Stderr, "pixelsim", flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return logger, nil
}
