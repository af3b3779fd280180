// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings are the runtime knobs read from the environment (and an optional
// .env file) at startup.
type Settings struct {
	LevelPath     string // LDtk export with the level to play
	DefsDir       string // directory with towers.json / enemies.json, empty = built-in defs
	AudioEnabled  bool
	StartFromMenu bool
	PprofAddr     string // empty disables the pprof listener
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		LevelPath:     "./assets/levels/test.ldtk",
		DefsDir:       "",
		AudioEnabled:  true,
		StartFromMenu: true,
		PprofAddr:     "",
	}
}

// LoadSettings loads envFile (if it exists) into the process environment and
// builds Settings from TOWERPOWER_* variables on top of the defaults.
func LoadSettings(envFile string) (Settings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return Settings{}, fmt.Errorf("failed to load %s: %w", envFile, err)
			}
			log.Printf("config: %s not found, using environment only", envFile)
		}
	}

	s := DefaultSettings()
	s.LevelPath = GetEnv("TOWERPOWER_LEVEL", s.LevelPath)
	s.DefsDir = GetEnv("TOWERPOWER_DEFS_DIR", s.DefsDir)
	s.PprofAddr = GetEnv("TOWERPOWER_PPROF_ADDR", s.PprofAddr)

	var err error
	if s.AudioEnabled, err = getEnvBool("TOWERPOWER_AUDIO", s.AudioEnabled); err != nil {
		return Settings{}, err
	}
	if s.StartFromMenu, err = getEnvBool("TOWERPOWER_START_FROM_MENU", s.StartFromMenu); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) (bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s=%q: %w", key, raw, err)
	}
	return v, nil
}
