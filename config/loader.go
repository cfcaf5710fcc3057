package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of a configuration override. Sections or fields
// left out keep their current values.
type File struct {
	Display       DisplayConfig       `yaml:"display"`
	World         WorldConfig         `yaml:"world"`
	Player        PlayerConfig        `yaml:"player"`
	Physics       PhysicsConfig       `yaml:"physics"`
	Camera        CameraConfig        `yaml:"camera"`
	Loop          LoopConfig          `yaml:"loop"`
	Score         ScoreConfig         `yaml:"score"`
	LevelComplete LevelCompleteConfig `yaml:"level_complete"`
	UI            UIConfig            `yaml:"ui"`
	Debug         DebugConfig         `yaml:"debug"`
}

// Load overlays the YAML file at path onto the current configuration.
// An empty path is a no-op.
func Load(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// Apply overlays YAML data onto the current configuration. Nothing is
// changed when the data fails to parse.
func Apply(data []byte) error {
	f := current()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}
	if f.World.TileSize <= 0 {
		return fmt.Errorf("world.tile_size must be positive, got %d", f.World.TileSize)
	}

	Display = f.Display
	World = f.World
	Player = f.Player
	Physics = f.Physics
	Camera = f.Camera
	Loop = f.Loop
	Score = f.Score
	LevelComplete = f.LevelComplete
	UI = f.UI
	Debug = f.Debug
	return nil
}

func current() File {
	return File{
		Display:       Display,
		World:         World,
		Player:        Player,
		Physics:       Physics,
		Camera:        Camera,
		Loop:          Loop,
		Score:         Score,
		LevelComplete: LevelComplete,
		UI:            UI,
		Debug:         Debug,
	}
}
