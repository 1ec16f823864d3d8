// Package config loads runtime settings from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Save backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
)

// Config holds runtime settings for the hosts. Components never read the
// environment themselves; everything flows in through constructors.
type Config struct {
	StartScene    string `env:"STORY_START_SCENE" envDefault:"main_menu"`
	FallbackScene string `env:"STORY_FALLBACK_SCENE" envDefault:"main_menu"`
	// ScenesPath points at a YAML catalog; empty uses the embedded content.
	ScenesPath string `env:"STORY_SCENES_PATH"`

	EmotionMin            int     `env:"EMOTION_MIN" envDefault:"0"`
	EmotionMax            int     `env:"EMOTION_MAX" envDefault:"100"`
	EmotionDecayPerMinute float64 `env:"EMOTION_DECAY_PER_MINUTE" envDefault:"0.1"`
	HistoryWindow         int     `env:"EMOTION_HISTORY_WINDOW" envDefault:"100"`

	SaveBackend string `env:"SAVE_BACKEND" envDefault:"memory"`
	DatabaseURL string `env:"DATABASE_URL"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"saves.db"`
	RedisAddr   string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	GoogleAPIKey     string `env:"GOOGLE_API_KEY"`
	ScenewriterModel string `env:"SCENEWRITER_MODEL" envDefault:"gemini-2.5-flash"`
}

// Load parses the environment and validates backend requirements.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.SaveBackend {
	case BackendMemory, BackendSQLite, BackendRedis:
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL is required for the postgres save backend")
		}
	default:
		return Config{}, fmt.Errorf("unknown save backend %q", cfg.SaveBackend)
	}
	if cfg.EmotionMax <= cfg.EmotionMin {
		return Config{}, fmt.Errorf("emotion bounds [%d,%d] are empty", cfg.EmotionMin, cfg.EmotionMax)
	}
	return cfg, nil
}
