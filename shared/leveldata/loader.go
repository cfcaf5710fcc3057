package leveldata

import (
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	blocksLayer      = "blocks"
	goalGroup        = "Goal"
	spawnGroup       = "PlayerSpawn"
	defaultPoleKind  = "flagpole"
	defaultBlockKind = "block"
)

// LoadBlocks parses a TMX file into block and pole specs. Tiles come from
// the "blocks" layer, whose tileset tiles carry a "kind" property and an
// optional "solid" property ("false" makes them decoration). Adjacent tiles
// with the same kind and solidity on a row merge into a single block. It
// takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadBlocks(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("load TMX %s: tiles must be square, got %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	data := &LevelData{
		WidthTiles:  levelMap.Width,
		HeightTiles: levelMap.Height,
		TileSize:    levelMap.TileWidth,
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != blocksLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			bottom := levelMap.Height - y
			var run *BlockSpec
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					run = nil
					continue
				}

				kind, solid := defaultBlockKind, true
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil && tilesetTile != nil {
					if k := tilesetTile.Properties.GetString("kind"); k != "" {
						kind = k
					}
					solid = tilesetTile.Properties.GetString("solid") != "false"
				}

				if run != nil && run.Kind == kind && run.Collidable == solid {
					run.W++
					continue
				}
				data.Blocks = append(data.Blocks, BlockSpec{X: x, Bottom: bottom, W: 1, H: 1, Kind: kind, Collidable: solid})
				run = &data.Blocks[len(data.Blocks)-1]
			}
		}
		break
	}

	ts := float64(levelMap.TileWidth)
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case goalGroup:
			for _, o := range og.Objects {
				kind := o.Properties.GetString("kind")
				if kind == "" {
					kind = defaultPoleKind
				}
				h := int(math.Round(o.Height / ts))
				bottomRow := int(math.Round((o.Y+o.Height)/ts)) - 1
				data.Poles = append(data.Poles, PoleSpec{
					X:          int((o.X + o.Width/2) / ts),
					Bottom:     levelMap.Height - bottomRow,
					H:          max(h, 1),
					Kind:       kind,
					Collidable: o.Properties.GetString("solid") == "true",
					Goal:       true,
				})
			}
		case spawnGroup:
			for _, o := range og.Objects {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].X < data.SpawnPoints[j].X
	})

	return data, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*LevelData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*LevelData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadBlocks(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
