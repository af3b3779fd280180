package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsDefaults(t *testing.T) {
	t.Setenv("TOWERPOWER_LEVEL", "")
	os.Unsetenv("TOWERPOWER_LEVEL")

	s, err := LoadSettings(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadSettings with missing env file: %v", err)
	}
	if s != DefaultSettings() {
		t.Fatalf("settings = %+v, want defaults %+v", s, DefaultSettings())
	}
}

func TestLoadSettingsFromEnvFile(t *testing.T) {
	// t.Setenv registers cleanup so values godotenv sets are restored.
	for _, k := range []string{"TOWERPOWER_LEVEL", "TOWERPOWER_AUDIO", "TOWERPOWER_START_FROM_MENU"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	path := filepath.Join(t.TempDir(), ".env")
	content := "TOWERPOWER_LEVEL=levels/other.ldtk\nTOWERPOWER_AUDIO=false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.LevelPath != "levels/other.ldtk" {
		t.Errorf("LevelPath = %q, want levels/other.ldtk", s.LevelPath)
	}
	if s.AudioEnabled {
		t.Errorf("AudioEnabled = true, want false")
	}
	if !s.StartFromMenu {
		t.Errorf("StartFromMenu changed without being configured")
	}
}

func TestLoadSettingsRejectsBadBool(t *testing.T) {
	t.Setenv("TOWERPOWER_AUDIO", "loud")
	if _, err := LoadSettings(""); err == nil {
		t.Fatal("expected error for TOWERPOWER_AUDIO=loud")
	}
}
