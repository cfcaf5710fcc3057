package config

import (
	"image/color"
	"time"
)

// DisplayConfig contains window configuration
type DisplayConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// WorldConfig contains world and viewport dimensions in world pixels
type WorldConfig struct {
	ScreenWidth  int `yaml:"screen_width"`  // Viewport width (NES horizontal resolution)
	ScreenHeight int `yaml:"screen_height"` // Viewport and world height
	TileSize     int `yaml:"tile_size"`
	WidthTiles   int `yaml:"width_tiles"` // World width in tiles
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Size      float64 `yaml:"size"`
	MoveSpeed float64 `yaml:"move_speed"` // Pixels per tick
	JumpPower float64 `yaml:"jump_power"` // Initial upward speed

	// Spawn, in tiles. X from the left edge, Y up from the world bottom.
	SpawnTileX   int `yaml:"spawn_tile_x"`
	SpawnTilesUp int `yaml:"spawn_tiles_up"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`         // Added to vy every airborne tick
	HeadBumpSpeed float64 `yaml:"head_bump_speed"` // Downward vy after hitting a ceiling
	FallMargin    float64 `yaml:"fall_margin"`     // Actor sizes below world bottom before respawn
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	LeadFraction float64 `yaml:"lead_fraction"` // Fraction of viewport ahead of scroll the actor is held at
	CullPadding  float64 `yaml:"cull_padding"`  // Extra pixels drawn past each viewport edge
}

// LoopConfig contains frame driver configuration
type LoopConfig struct {
	TickRate int           `yaml:"tick_rate"`
	MinSleep time.Duration `yaml:"min_sleep"`
}

// ScoreConfig contains scoring values
type ScoreConfig struct {
	GoalBonus int `yaml:"goal_bonus"`
}

// LevelCompleteConfig contains level complete banner configuration
type LevelCompleteConfig struct {
	Title         string        `yaml:"title"`
	TitleColor    color.RGBA    `yaml:"-"`
	OverlayColor  color.RGBA    `yaml:"-"`
	SlideDuration float32       `yaml:"slide_duration"` // Seconds
	ExitAfter     time.Duration `yaml:"exit_after"`
}

// UIConfig contains HUD configuration
type UIConfig struct {
	HUDFontSize   float64    `yaml:"hud_font_size"`
	DebugFontSize float64    `yaml:"debug_font_size"`
	HUDTextColor  color.RGBA `yaml:"-"`
	HUDMargin     float64    `yaml:"hud_margin"`
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	ShowHitboxes bool   `yaml:"show_hitboxes"`
	LogLevel     string `yaml:"log_level"`
}

// Global configuration instances
var Display DisplayConfig
var World WorldConfig
var Player PlayerConfig
var Physics PhysicsConfig
var Camera CameraConfig
var Loop LoopConfig
var Score ScoreConfig
var LevelComplete LevelCompleteConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Reset()
}

// Reset restores every configuration value to its default.
func Reset() {
	Display = DisplayConfig{
		Width:  800,
		Height: 750,
		Title:  "Pixel Plat",
	}

	World = WorldConfig{
		ScreenWidth:  256,
		ScreenHeight: 240,
		TileSize:     16,
		WidthTiles:   210,
	}

	Player = PlayerConfig{
		Size:         16,
		MoveSpeed:    2,
		JumpPower:    8,
		SpawnTileX:   3,
		SpawnTilesUp: 2,
	}

	Physics = PhysicsConfig{
		Gravity:       0.5,
		HeadBumpSpeed: 0.5,
		FallMargin:    2,
	}

	Camera = CameraConfig{
		LeadFraction: 0.35,
		CullPadding:  16,
	}

	Loop = LoopConfig{
		TickRate: 60,
		MinSleep: time.Millisecond,
	}

	Score = ScoreConfig{
		GoalBonus: 1000,
	}

	LevelComplete = LevelCompleteConfig{
		Title:         "YOU WIN!",
		TitleColor:    Yellow,
		OverlayColor:  BlackOverlay,
		SlideDuration: 0.6,
		ExitAfter:     5 * time.Second,
	}

	UI = UIConfig{
		HUDFontSize:   16,
		DebugFontSize: 10,
		HUDTextColor:  White,
		HUDMargin:     8,
	}

	Debug = DebugConfig{
		ShowHitboxes: false,
		LogLevel:     "info",
	}
}

// WorldWidth returns the world width in pixels.
func (w WorldConfig) WorldWidth() float64 {
	return float64(w.WidthTiles * w.TileSize)
}

// WorldHeight returns the world height in pixels.
func (w WorldConfig) WorldHeight() float64 {
	return float64(w.ScreenHeight)
}

// TickDuration returns the target wall-clock duration of one tick.
func (l LoopConfig) TickDuration() time.Duration {
	if l.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(l.TickRate)
}

// SpawnPoint returns the actor spawn position in world pixels.
func SpawnPoint() (x, y float64) {
	ts := float64(World.TileSize)
	return float64(Player.SpawnTileX) * ts, World.WorldHeight() - float64(Player.SpawnTilesUp)*ts
}
