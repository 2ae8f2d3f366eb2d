package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer used by every scene.
const Default ecs.LayerID = 0

// WorldConfig contains island generation and grid configuration
type WorldConfig struct {
	Width        int     `yaml:"width"`        // tiles
	Height       int     `yaml:"height"`       // tiles
	TileSize     int     `yaml:"tileSize"`     // world units per tile
	CenterX      int     `yaml:"centerX"`      // tile
	CenterY      int     `yaml:"centerY"`      // tile
	IslandRadius float64 `yaml:"islandRadius"` // tiles
	LakeRadius   float64 `yaml:"lakeRadius"`   // tiles
	SpawnTileX   int     `yaml:"spawnTileX"`
	SpawnTileY   int     `yaml:"spawnTileY"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (world units per second)
	NormalSpeed       float64 `yaml:"normalSpeed"`
	BuffedSpeed       float64 `yaml:"buffedSpeed"`
	BuffDuration      float64 `yaml:"buffDuration"` // seconds
	NormalizeDiagonal bool    `yaml:"normalizeDiagonal"`

	// Animation
	AnimationSpeed float64 `yaml:"animationSpeed"` // seconds per frame
	AnimationCount int     `yaml:"animationCount"`

	// Dimensions
	FrameWidth  int `yaml:"frameWidth"`
	FrameHeight int `yaml:"frameHeight"`
	FeetHeight  int `yaml:"feetHeight"`
	FeetMarginX int `yaml:"feetMarginX"` // inset on each side
}

// CollectibleConfig contains speed fruit spawn configuration
type CollectibleConfig struct {
	Count    int   `yaml:"count"`
	Seed     int64 `yaml:"seed"` // 0 = seeded from the clock
	Size     int   `yaml:"size"` // pickup footprint
	DrawSize int   `yaml:"drawSize"`
}

// CaveConfig contains the cave footprint, solid zone and entrance sizes
type CaveConfig struct {
	AnchorTileX    int     `yaml:"anchorTileX"`
	AnchorTileY    int     `yaml:"anchorTileY"`
	DrawWidth      int     `yaml:"drawWidth"`
	DrawHeight     int     `yaml:"drawHeight"`
	EntranceWidth  int     `yaml:"entranceWidth"`
	EntranceHeight int     `yaml:"entranceHeight"`
	SplitOffsetY   int     `yaml:"splitOffsetY"` // source pixels where the front slice starts
	Scale          float64 `yaml:"scale"`        // source to world scale
	Message        string  `yaml:"message"`
	FadeIn         float32 `yaml:"fadeIn"` // seconds
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"followSmoothing"` // 1.0 snaps to the target
}

// MessageConfig contains the pickup flash message configuration
type MessageConfig struct {
	PickupText string     `yaml:"pickupText"`
	Duration   float32    `yaml:"duration"` // seconds
	BoxPadding float64    `yaml:"boxPadding"`
	BoxColor   color.RGBA `yaml:"-"`
	TextColor  color.RGBA `yaml:"-"`
	TopMargin  float64    `yaml:"topMargin"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool `yaml:"overlay"` // Start with the debug overlay enabled
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Global configuration instances
var C *Config
var World WorldConfig
var Player PlayerConfig
var Collectible CollectibleConfig
var Cave CaveConfig
var Camera CameraConfig
var Message MessageConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	FaintYellow = color.RGBA{R: 77, G: 77, B: 0, A: 77}
	Red         = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Grass       = color.RGBA{R: 74, G: 148, B: 62, A: 255}
	GrassDark   = color.RGBA{R: 64, G: 130, B: 54, A: 255}
	Water       = color.RGBA{R: 38, G: 92, B: 168, A: 255}
	WaterDark   = color.RGBA{R: 32, G: 80, B: 150, A: 255}
	Cornflower  = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	CaveRock    = color.RGBA{R: 105, G: 90, B: 78, A: 255}
	CaveRockTop = color.RGBA{R: 128, G: 112, B: 98, A: 255}
	CaveMouth   = color.RGBA{R: 20, G: 16, B: 14, A: 255}
	Hero        = color.RGBA{R: 230, G: 200, B: 120, A: 255}
	HeroTunic   = color.RGBA{R: 40, G: 110, B: 200, A: 255}
	Fruit       = color.RGBA{R: 180, G: 70, B: 220, A: 255}
	BuffBar     = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BarBg       = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

func init() {
	Reset()
}

// Reset restores every configuration section to its default values.
func Reset() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	World = WorldConfig{
		Width:        100,
		Height:       100,
		TileSize:     32,
		CenterX:      50,
		CenterY:      50,
		IslandRadius: 40,
		LakeRadius:   8,
		SpawnTileX:   50,
		SpawnTileY:   32, // halfway between the lake top and the cave entrance
	}

	Player = PlayerConfig{
		NormalSpeed:       100,
		BuffedSpeed:       180,
		BuffDuration:      5,
		NormalizeDiagonal: false,

		AnimationSpeed: 0.2,
		AnimationCount: 2,

		FrameWidth:  32,
		FrameHeight: 40,
		FeetHeight:  8,
		FeetMarginX: 8,
	}

	Collectible = CollectibleConfig{
		Count:    10,
		Seed:     42,
		Size:     32,
		DrawSize: 24,
	}

	Cave = CaveConfig{
		AnchorTileX:    50,
		AnchorTileY:    15, // near the northern coastline
		DrawWidth:      256,
		DrawHeight:     256,
		EntranceWidth:  36,
		EntranceHeight: 48,
		SplitOffsetY:   442,
		Scale:          0.25, // 1024px source art drawn at 256px
		Message:        "You are now inside the cave!",
		FadeIn:         0.6,
	}

	Camera = CameraConfig{
		FollowSmoothing: 1.0,
	}

	Message = MessageConfig{
		PickupText: "Speed up!",
		Duration:   1.5,
		BoxPadding: 6.0,
		BoxColor:   color.RGBA{R: 0, G: 0, B: 0, A: 200},
		TextColor:  White,
		TopMargin:  30.0,
	}

	Debug = DebugConfig{
		Overlay: false,
	}

	resetAudio()
}
