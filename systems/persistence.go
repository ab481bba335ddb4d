package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/tundra/components"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the overlay settings stored on disk
type SavedSettings struct {
	ShowHitboxes bool `json:"showHitboxes"`
	ShowChunks   bool `json:"showChunks"`
	ShowHUD      bool `json:"showHud"`
}

// SavedSession remembers how the client last connected
type SavedSession struct {
	Addr       string `json:"addr"`
	PlayerName string `json:"playerName"`
	Level      string `json:"level"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "tundra",
	})
	if err != nil {
		log.Printf("[persistence] warning: could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

func loadItem(key string, into any) (bool, error) {
	if gdataManager == nil {
		return false, nil
	}
	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Printf("[persistence] warning: could not load %s: %v", key, err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, into); err != nil {
		log.Printf("[persistence] warning: could not parse saved %s: %v", key, err)
		return false, err
	}
	return true, nil
}

func saveItem(key string, value any) error {
	if gdataManager == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("[persistence] warning: could not serialize %s: %v", key, err)
		return err
	}
	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Printf("[persistence] warning: could not save %s: %v", key, err)
		return err
	}
	return nil
}

// LoadSettings loads overlay settings from disk. It returns nil when nothing
// has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	var s SavedSettings
	ok, err := loadItem("settings", &s)
	if !ok {
		return nil, err
	}
	return &s, nil
}

// SaveOverlaySettings saves the current overlay toggles.
func SaveOverlaySettings(o *components.DebugOverlayData) {
	_ = saveItem("settings", &SavedSettings{
		ShowHitboxes: o.ShowHitboxes,
		ShowChunks:   o.ShowChunks,
		ShowHUD:      o.ShowHUD,
	})
}

// ApplySavedSettings copies saved toggles onto the overlay.
func ApplySavedSettings(o *components.DebugOverlayData, saved *SavedSettings) {
	if saved == nil {
		return
	}
	o.ShowHitboxes = saved.ShowHitboxes
	o.ShowChunks = saved.ShowChunks
	o.ShowHUD = saved.ShowHUD
}

// LoadSession returns the last session, or nil.
func LoadSession() (*SavedSession, error) {
	var s SavedSession
	ok, err := loadItem("session", &s)
	if !ok {
		return nil, err
	}
	return &s, nil
}

func SaveSession(s *SavedSession) error {
	return saveItem("session", s)
}
