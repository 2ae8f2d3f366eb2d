package systems

import (
	"github.com/automoto/cave-island/components"
	cfg "github.com/automoto/cave-island/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the debug overlay and fullscreen toggles and persists them.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	changed := false
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.DebugOverlay = !settings.DebugOverlay
		log.Debug("debug overlay toggled", "enabled", settings.DebugOverlay)
		changed = true
	}
	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		changed = true
	}

	if changed {
		SaveCurrentSettings(settings)
	}
}

// GetOrCreateSettings returns the Settings singleton, seeded from the saved settings
// and config.Debug on first use.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		initial := components.SettingsData{DebugOverlay: cfg.Debug.Overlay}
		if saved, _ := LoadSettings(); saved != nil {
			initial.DebugOverlay = initial.DebugOverlay || saved.DebugOverlay
			initial.Fullscreen = saved.Fullscreen
		}
		components.Settings.SetValue(entry, initial)
	}
	return components.Settings.Get(entry)
}

// ApplySavedSettingsGlobal applies window settings before the first scene is created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	ebiten.SetFullscreen(saved.Fullscreen)
}
