package systems

import (
	"encoding/json"

	"github.com/automoto/cave-island/components"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	DebugOverlay bool `json:"debugOverlay"`
	Fullscreen   bool `json:"fullscreen"`
}

// SavedRecords holds personal bests across sessions.
type SavedRecords struct {
	FastestClear float64 `json:"fastestClear"` // seconds to collect every fruit, 0 = never
}

const (
	settingsKey = "settings"
	recordsKey  = "records"
)

var gdataManager *gdata.Manager

// records caches the saved personal bests once they were read from disk.
var records *SavedRecords

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "caveisland",
	})
	if err != nil {
		log.Warn("could not initialize persistence", "err", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	var settings SavedSettings
	ok, err := loadItem(settingsKey, &settings)
	if !ok || err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem(settingsKey, s)
}

// SaveCurrentSettings saves the current settings from the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		DebugOverlay: s.DebugOverlay,
		Fullscreen:   s.Fullscreen,
	})
}

// LoadRecords returns the saved personal bests, zero when none exist.
func LoadRecords() SavedRecords {
	if records != nil {
		return *records
	}
	var loaded SavedRecords
	_, _ = loadItem(recordsKey, &loaded)
	if gdataManager != nil {
		records = &loaded
	}
	return loaded
}

// recordClear stores elapsed as the fastest clear if it beats the saved one.
func recordClear(ecs *ecs.ECS, elapsed float64) {
	best := LoadRecords()
	if best.FastestClear > 0 && best.FastestClear <= elapsed {
		return
	}
	log.Info("new fastest clear", "seconds", elapsed)
	best.FastestClear = elapsed
	if err := saveItem(recordsKey, &best); err == nil && gdataManager != nil {
		records = &best
	}
	ShowMessage(ecs, "Island cleared!")
}

func loadItem(key string, v any) (bool, error) {
	if gdataManager == nil {
		return false, nil
	}

	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Warn("could not load item", "key", key, "err", err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Warn("could not parse saved item", "key", key, "err", err)
		return false, err
	}
	return true, nil
}

func saveItem(key string, v any) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Warn("could not serialize item", "key", key, "err", err)
		return err
	}

	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Warn("could not save item", "key", key, "err", err)
		return err
	}
	return nil
}
