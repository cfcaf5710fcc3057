// Package leveldata imports level layouts from Tiled TMX files.
// It has no dependencies on ebitengine, donburi, or resolv - pure data only.
package leveldata

// LevelData is the declarative content of a TMX level in tile units.
type LevelData struct {
	WidthTiles  int
	HeightTiles int
	TileSize    int
	Blocks      []BlockSpec
	Poles       []PoleSpec
	SpawnPoints []SpawnPoint
}

// BlockSpec is one horizontal run of identical tiles. Bottom is the 1-based
// row counted up from the bottom of the map.
type BlockSpec struct {
	X, Bottom  int
	W, H       int
	Kind       string
	Collidable bool
}

// PoleSpec is a thin rectangle that is not tiled, such as a flagpole.
type PoleSpec struct {
	X, Bottom  int
	H          int
	Kind       string
	Collidable bool
	Goal       bool
}

// SpawnPoint represents a player spawn location in world pixels.
type SpawnPoint struct {
	X, Y  float64
	Index int
}
