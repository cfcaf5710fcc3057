package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/automoto/pixelplat/config"
	"github.com/automoto/pixelplat/level"
	"github.com/automoto/pixelplat/pixelart"
	"github.com/automoto/pixelplat/shared/leveldata"
	"github.com/charmbracelet/log"
)

var (
	//go:embed all:levels
	levelFS embed.FS
)

// ErrUnknownLevel is returned by Open for a name that is neither built in,
// embedded, nor a TMX file on disk.
var ErrUnknownLevel = errors.New("unknown level")

// World11Name selects the in-process World 1-1 layout.
const World11Name = "world11"

// LevelFS returns the embedded TMX levels, rooted at "levels/".
func LevelFS() fs.FS {
	return levelFS
}

// KindSprites returns the sprite, and the body sprite for multi-row blocks,
// used for a block kind. Unknown kinds draw as bricks.
func KindSprites(kind string) (top, body *pixelart.Definition) {
	switch {
	case kind == "pipe":
		return PipeTop, PipeMiddle
	case kind == "pipe_middle":
		return PipeMiddle, nil
	case kind == "flagpole_base":
		return FlagpoleBase, nil
	case strings.HasPrefix(kind, "flagpole"):
		return FlagpolePole, nil
	case strings.HasPrefix(kind, "ground"):
		return Ground, nil
	case strings.HasPrefix(kind, "question"):
		return Question, nil
	}
	return Brick, nil
}

// BuildLevel turns imported TMX data into a level. The spawn is the
// left-most spawn point, or the configured default.
func BuildLevel(data *leveldata.LevelData, logger *log.Logger) (*level.Level, error) {
	b := level.NewBuilder(data.WidthTiles, float64(data.HeightTiles*data.TileSize), data.TileSize).WithLogger(logger)

	if len(data.SpawnPoints) > 0 {
		b.SetSpawn(data.SpawnPoints[0].X, data.SpawnPoints[0].Y)
	} else {
		b.SetSpawn(config.SpawnPoint())
	}

	for _, blk := range data.Blocks {
		top, body := KindSprites(blk.Kind)
		b.Add(level.Block{
			X: blk.X, Bottom: blk.Bottom, W: blk.W, H: blk.H,
			Kind: blk.Kind, Sprite: top, Body: body, Collidable: blk.Collidable,
		})
	}
	for _, p := range data.Poles {
		top, _ := KindSprites(p.Kind)
		b.AddPole(p.X, p.Bottom, p.H, p.Kind, top, p.Collidable, p.Goal)
	}
	return b.Build()
}

// LoadLevel loads a TMX level from fsys.
func LoadLevel(fsys fs.FS, path string, logger *log.Logger) (*level.Level, error) {
	data, err := leveldata.LoadBlocks(fsys, path)
	if err != nil {
		return nil, err
	}
	lvl, err := BuildLevel(data, logger)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", path, err)
	}
	return lvl, nil
}

// Open resolves a level by name: "" or "world11" for World 1-1, the stem of
// an embedded TMX file such as "bonus", or a path to a .tmx file on disk.
func Open(name string, logger *log.Logger) (*level.Level, error) {
	if name == "" || name == World11Name {
		return World11(logger)
	}

	if strings.HasSuffix(name, ".tmx") {
		if _, err := os.Stat(name); err == nil {
			return LoadLevel(os.DirFS(filepath.Dir(name)), filepath.Base(name), logger)
		}
	}

	embedded := path.Join("levels", strings.TrimSuffix(name, ".tmx")+".tmx")
	if _, err := fs.Stat(levelFS, embedded); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLevel, name)
	}
	return LoadLevel(levelFS, embedded, logger)
}

// Names lists World 1-1 and the embedded levels.
func Names() ([]string, error) {
	_, names, err := leveldata.LoadAllLevels(levelFS, "levels")
	if err != nil {
		return nil, err
	}
	return append([]string{World11Name}, names...), nil
}
