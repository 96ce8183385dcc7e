package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings holds runtime configuration read from the environment.
type Settings struct {
	SaveDir      string
	LogFormat    string
	Seed         int64
	WindowWidth  int
	WindowHeight int
	ClassDefs    string // optional JSON balance file
}

// Defaults returns settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		SaveDir:      ".",
		LogFormat:    "text",
		WindowWidth:  ScreenWidth,
		WindowHeight: ScreenHeight,
	}
}

// Load reads an optional .env file and then the process environment.
func Load() (Settings, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds settings from a lookup function, starting from Defaults.
func FromEnv(getenv func(string) string) (Settings, error) {
	s := Defaults()
	if v := getenv("SAVE_DIR"); v != "" {
		s.SaveDir = v
	}
	if v := getenv("LOG_FORMAT"); v != "" {
		s.LogFormat = v
	}
	s.ClassDefs = getenv("CLASS_DEFS")

	if v := getenv("RNG_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return s, fmt.Errorf("invalid RNG_SEED %q: %w", v, err)
		}
		s.Seed = seed
	}
	for key, dst := range map[string]*int{"WINDOW_WIDTH": &s.WindowWidth, "WINDOW_HEIGHT": &s.WindowHeight} {
		v := getenv(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return s, fmt.Errorf("invalid %s %q", key, v)
		}
		*dst = n
	}
	return s, nil
}
