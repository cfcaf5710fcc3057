package assets

import (
	"github.com/automoto/pixelplat/config"
	"github.com/automoto/pixelplat/level"
	"github.com/charmbracelet/log"
)

// Flagpole column in World 1-1
const flagpoleColumn = 142

// World11 builds World 1-1 with the dimensions from the config package.
func World11(logger *log.Logger) (*level.Level, error) {
	w := config.World
	b := level.NewBuilder(w.WidthTiles, w.WorldHeight(), w.TileSize).WithLogger(logger)
	b.SetSpawn(config.SpawnPoint())
	addWorld11(b, w.WidthTiles)
	return b.Build()
}

func addWorld11(b *level.Builder, widthTiles int) {
	// Ground, with pits at 69-70, 86-89 and 134-135
	b.AddTileBlock(0, 1, 69, 1, "ground", Ground, true)
	b.AddTileBlock(71, 1, 15, 1, "ground", Ground, true)
	b.AddTileBlock(90, 1, 44, 1, "ground", Ground, true)
	b.AddTileBlock(136, 1, widthTiles-136, 1, "ground", Ground, true)

	b.AddTileBlock(16, 5, 1, 1, "question_block_powerup", Question, true)
	b.AddTileBlock(20, 5, 1, 1, "brick", Brick, true)
	b.AddTileBlock(21, 5, 1, 1, "question_block_coin", Question, true)
	b.AddTileBlock(22, 5, 1, 1, "brick", Brick, true)
	b.AddTileBlock(23, 5, 1, 1, "question_block_coin", Question, true)
	b.AddTileBlock(22, 9, 1, 1, "question_block_1up", Question, true)

	addPipe(b, 28, 2)
	addPipe(b, 38, 3)
	addPipe(b, 46, 4)
	addPipe(b, 57, 4)

	b.AddTileBlock(77, 5, 1, 1, "brick", Brick, true)
	b.AddTileBlock(78, 5, 1, 1, "brick_coin", Brick, true)
	b.AddTileBlock(79, 5, 1, 1, "brick_star", Brick, true)
	b.AddTileBlock(80, 5, 1, 1, "brick", Brick, true)

	b.AddTileBlock(90, 5, 2, 1, "brick", Brick, true)
	b.AddTileBlock(92, 5, 1, 1, "question_block_powerup", Question, true)
	b.AddTileBlock(93, 5, 1, 1, "brick", Brick, true)
	b.AddTileBlock(92, 9, 1, 1, "brick_high", Brick, true)

	addStairs(b, 100, 4)
	b.AddTileBlock(106, 5, 3, 1, "brick", Brick, true)
	addStairs(b, 113, 4)
	addPipe(b, 118, 2)
	b.AddTileBlock(123, 5, 2, 1, "brick", Brick, true)
	b.AddTileBlock(125, 5, 1, 1, "question_block_powerup", Question, true)
	b.AddTileBlock(126, 5, 1, 1, "brick", Brick, true)
	addStairs(b, 134, 8)

	b.AddTileBlock(flagpoleColumn, 1, 1, 1, "flagpole_base", FlagpoleBase, true)
	b.AddPole(flagpoleColumn, 2, 8, "flagpole_pole", FlagpolePole, false, true)
}

func addPipe(b *level.Builder, x, h int) {
	b.Add(level.Block{X: x, Bottom: 1, W: 2, H: h, Kind: "pipe", Sprite: PipeTop, Body: PipeMiddle, Collidable: true})
}

// addStairs adds steps columns rising one tile per column from x.
func addStairs(b *level.Builder, x, steps int) {
	for i := 0; i < steps; i++ {
		b.AddTileBlock(x+i, 1, 1, i+1, "ground_stair", Ground, true)
	}
}
