package main

import (
	"fmt"
	"image/png"
	"os"
	"strings"

	"github.com/automoto/pixelplat/assets"
	"github.com/automoto/pixelplat/pixelart"
	"github.com/spf13/cobra"
)

var (
	flagWidth  int
	flagHeight int
	flagOut    string
)

var spriteCmd = &cobra.Command{
	Use:   "sprite <name>",
	Short: "Rasterize a sprite to a PNG file",
	Long: `Rasterizes one of the built-in sprites at the given size and writes it
as a PNG. A size of 0 uses the sprite's native size.`,
	Args: cobra.ExactArgs(1),
	RunE: runSprite,
}

func init() {
	spriteCmd.Flags().IntVar(&flagWidth, "width", 0, "Bitmap width in pixels")
	spriteCmd.Flags().IntVar(&flagHeight, "height", 0, "Bitmap height in pixels")
	spriteCmd.Flags().StringVar(&flagOut, "out", "", "Output PNG path (default: NAME.png)")
}

func runSprite(cmd *cobra.Command, args []string) error {
	name := args[0]
	def, ok := assets.Sprite(name)
	if !ok {
		return fmt.Errorf("unknown sprite %q (have %s)", name, strings.Join(assets.SpriteNames(), ", "))
	}

	w, h := flagWidth, flagHeight
	if w == 0 {
		w = def.Width()
	}
	if h == 0 {
		h = def.Height()
	}

	img := pixelart.NewRasterizer(assets.Palette()).Bitmap(def, w, h)
	if img == nil {
		return fmt.Errorf("sprite %q has nothing to draw at %dx%d", name, w, h)
	}

	out := flagOut
	if out == "" {
		out = name + ".png"
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", out, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d)\n", out, w, h)
	return nil
}
