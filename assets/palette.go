// Package assets holds the NES palette, the pixel-art sprite set, and the
// built-in levels. It has no dependency on ebitengine so headless tools can
// use it.
package assets

import (
	"image/color"

	"github.com/automoto/pixelplat/pixelart"
)

// Palette color names
const (
	SkyBlue          pixelart.ColorName = "sky_blue"
	BrickLight       pixelart.ColorName = "brick"
	BrickDark        pixelart.ColorName = "brick_dark"
	QuestionFill     pixelart.ColorName = "question"
	QuestionOutline  pixelart.ColorName = "question_outline"
	QuestionShadow   pixelart.ColorName = "question_shadow"
	GroundLight      pixelart.ColorName = "ground"
	GroundDark       pixelart.ColorName = "ground_dark"
	MarioRed         pixelart.ColorName = "mario_red"
	SkinPeach        pixelart.ColorName = "skin_peach"
	DarkBrown        pixelart.ColorName = "dark_brown"
	PipeGreen        pixelart.ColorName = "pipe_green"
	PipeGreenLight   pixelart.ColorName = "pipe_green_light"
	PipeGreenDark    pixelart.ColorName = "pipe_green_dark"
	FlagpoleGray     pixelart.ColorName = "flagpole_gray"
	FlagpoleDarkGray pixelart.ColorName = "flagpole_dark_gray"
	White            pixelart.ColorName = "white"
	Black            pixelart.ColorName = "black"
)

var nesColors = map[pixelart.ColorName]color.RGBA{
	SkyBlue:          pixelart.Hex(0x5C94FC),
	BrickLight:       pixelart.Hex(0xD07030),
	BrickDark:        pixelart.Hex(0xA04000),
	QuestionFill:     pixelart.Hex(0xFAC000),
	QuestionOutline:  pixelart.Hex(0xE4A000),
	QuestionShadow:   pixelart.Hex(0x783000),
	GroundLight:      pixelart.Hex(0xE09050),
	GroundDark:       pixelart.Hex(0xA04000),
	MarioRed:         pixelart.Hex(0xD03030),
	SkinPeach:        pixelart.Hex(0xFCB8A0),
	DarkBrown:        pixelart.Hex(0x782818),
	PipeGreen:        pixelart.Hex(0x30A020),
	PipeGreenLight:   pixelart.Hex(0x80D010),
	PipeGreenDark:    pixelart.Hex(0x207818),
	FlagpoleGray:     pixelart.Hex(0xB0B0B0),
	FlagpoleDarkGray: pixelart.Hex(0x707070),
	White:            pixelart.Hex(0xFCFCFC),
	Black:            pixelart.Hex(0x000000),
}

// Palette returns the NES palette.
func Palette() pixelart.Palette {
	return pixelart.NewPalette(nesColors)
}

// Sky is the background fill.
func Sky() color.RGBA {
	return nesColors[SkyBlue]
}
