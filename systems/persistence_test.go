package systems

import (
	"testing"

	"github.com/automoto/tundra/components"
)

func TestApplySavedSettings(t *testing.T) {
	overlay := &components.DebugOverlayData{ShowHUD: true}

	ApplySavedSettings(overlay, nil)
	if !overlay.ShowHUD || overlay.ShowHitboxes {
		t.Errorf("nil settings changed the overlay: %+v", *overlay)
	}

	ApplySavedSettings(overlay, &SavedSettings{ShowHitboxes: true, ShowChunks: true})
	want := components.DebugOverlayData{ShowHitboxes: true, ShowChunks: true}
	if *overlay != want {
		t.Errorf("overlay = %+v, want %+v", *overlay, want)
	}
}

func TestPersistenceWithoutStorage(t *testing.T) {
	old := gdataManager
	gdataManager = nil
	t.Cleanup(func() { gdataManager = old })

	if s, err := LoadSettings(); s != nil || err != nil {
		t.Errorf("LoadSettings = (%v, %v), want nothing saved", s, err)
	}
	if err := SaveSession(&SavedSession{PlayerName: "x"}); err != nil {
		t.Errorf("SaveSession: %v", err)
	}
}
