package main

import (
	"fmt"
	"sort"

	"github.com/automoto/pixelplat/assets"
	"github.com/automoto/pixelplat/config"
	"github.com/automoto/pixelplat/pixelart"
	"github.com/automoto/pixelplat/render"
	"github.com/spf13/cobra"
)

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Print tile and sprite cache statistics for a level",
	Args:  cobra.NoArgs,
	RunE:  runLevel,
}

func runLevel(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	lvl, err := assets.Open(flagLevel, logger)
	if err != nil {
		return err
	}
	stats := lvl.Stats()

	// Rasterize every tile once at canvas size to count distinct bitmaps.
	view := render.Viewport{
		Width:  float64(config.World.ScreenWidth),
		Height: float64(config.World.ScreenHeight),
		Scale:  float64(config.Display.Width) / float64(config.World.ScreenWidth),
	}
	raster := pixelart.NewRasterizer(assets.Palette())
	renderer := render.NewRenderer(render.NewNopSurface(), raster, view)
	for i := range lvl.Tiles {
		t := &lvl.Tiles[i]
		renderer.Allocate(&t.Handle)
		renderer.Draw(&t.Handle, t.Rect, t.Sprite, t.Rect.Left)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "level       %s\n", flagLevel)
	fmt.Fprintf(out, "world       %.0fx%.0f px, tile %d\n", lvl.Width, lvl.Height, lvl.TileSize)
	fmt.Fprintf(out, "spawn       (%.0f, %.0f)\n", lvl.SpawnX, lvl.SpawnY)
	fmt.Fprintf(out, "tiles       %d (%d collidable, %d goal)\n", stats.Tiles, stats.Collidable, stats.Goals)
	fmt.Fprintf(out, "bitmaps     %d distinct at scale %.3f\n", raster.Len(), view.Scale)
	fmt.Fprintln(out)

	kinds := make([]string, 0, len(stats.Kinds))
	maxLen := 4 // "kind" header
	for kind := range stats.Kinds {
		kinds = append(kinds, kind)
		maxLen = max(maxLen, len(kind))
	}
	sort.Strings(kinds)

	fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "kind", "count")
	fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "----", "-----")
	for _, kind := range kinds {
		fmt.Fprintf(out, "  %-*s  %d\n", maxLen, kind, stats.Kinds[kind])
	}
	return nil
}
