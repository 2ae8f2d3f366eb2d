package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// file mirrors the YAML layout. Sections are pre-filled with the current values
// before decoding so keys missing from the file keep their defaults.
type file struct {
	Window      Config            `yaml:"window"`
	World       WorldConfig       `yaml:"world"`
	Player      PlayerConfig      `yaml:"player"`
	Collectible CollectibleConfig `yaml:"collectible"`
	Cave        CaveConfig        `yaml:"cave"`
	Camera      CameraConfig      `yaml:"camera"`
	Message     MessageConfig     `yaml:"message"`
	Debug       DebugConfig       `yaml:"debug"`
	Audio       AudioConfig       `yaml:"audio"`
}

// Load overlays a YAML configuration onto the global configuration.
// Search order: customPath -> ~/.cave-island/config.yaml -> ./configs/config.yaml -> embedded default.
// It returns the path that was applied ("" for the embedded default).
func Load(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			applyErr := Apply(data)
			if applyErr == nil {
				return userCfgPath, nil
			}
			log.Warn("ignoring invalid config", "path", userCfgPath, "err", applyErr)
		}
	}

	localPath := filepath.Join("configs", "config.yaml")
	if data, err := os.ReadFile(localPath); err == nil {
		applyErr := Apply(data)
		if applyErr == nil {
			return localPath, nil
		}
		log.Warn("ignoring invalid config", "path", localPath, "err", applyErr)
	}

	if err := Apply(defaultYAML); err != nil {
		Reset()
	}
	return "", nil
}

// Apply decodes data on top of the current global configuration.
// On error the globals are left untouched.
func Apply(data []byte) error {
	f := file{
		Window:      *C,
		World:       World,
		Player:      Player,
		Collectible: Collectible,
		Cave:        Cave,
		Camera:      Camera,
		Message:     Message,
		Debug:       Debug,
		Audio:       Audio,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}
	if err := f.validate(); err != nil {
		return err
	}

	window := f.Window
	C = &window
	World = f.World
	Player = f.Player
	Collectible = f.Collectible
	Cave = f.Cave
	Camera = f.Camera
	Message = f.Message
	Debug = f.Debug
	Audio = f.Audio
	return nil
}

func (f *file) validate() error {
	switch {
	case f.World.Width <= 0 || f.World.Height <= 0:
		return fmt.Errorf("world size must be positive, got %dx%d", f.World.Width, f.World.Height)
	case f.World.TileSize <= 0:
		return fmt.Errorf("world tileSize must be positive, got %d", f.World.TileSize)
	case f.World.LakeRadius >= f.World.IslandRadius:
		return fmt.Errorf("lakeRadius (%v) must be smaller than islandRadius (%v)", f.World.LakeRadius, f.World.IslandRadius)
	case f.Collectible.Count < 0:
		return fmt.Errorf("collectible count must not be negative, got %d", f.Collectible.Count)
	case f.Player.AnimationCount <= 0:
		return fmt.Errorf("player animationCount must be positive, got %d", f.Player.AnimationCount)
	case f.Audio.SampleRate <= 0:
		return fmt.Errorf("audio sampleRate must be positive, got %d", f.Audio.SampleRate)
	case f.Audio.SFXVolume < 0 || f.Audio.SFXVolume > 1:
		return fmt.Errorf("audio sfxVolume must be within [0, 1], got %v", f.Audio.SFXVolume)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cave-island", filename)
}
