package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// GameConfig holds tunable server settings loaded at startup.
type GameConfig struct {
	// DefaultMode selects the table when a client does not ask for one:
	// "three_player" or "heads_up".
	DefaultMode string `json:"default_mode"`
	// BotTurnDelayMillis is how long the server waits before acting for a
	// computer player. Purely cosmetic pacing for the UI.
	BotTurnDelayMillis int `json:"bot_turn_delay_millis"`
	// NamePoolPath optionally points at a JSON string array replacing the
	// built-in opponent names.
	NamePoolPath string `json:"name_pool_path"`
	// Seed fixes the server rng when non-zero. Zero means time-seeded.
	Seed int64 `json:"seed"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// defaults returns the configuration used when no file is provided.
func defaults() *GameConfig {
	return &GameConfig{
		DefaultMode:        "three_player",
		BotTurnDelayMillis: 900,
	}
}

// LoadGameConfig loads the game configuration from the given path. Loaded
// once per process; an empty path keeps the defaults.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		cfg = defaults()
		if path == "" {
			return
		}
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}
		c := defaults()
		if err := json.Unmarshal(data, c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration.
func GetGameConfig() *GameConfig {
	if cfg == nil {
		return defaults()
	}
	return cfg
}
