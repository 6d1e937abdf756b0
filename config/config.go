// Package config loads engine settings from defaults and an optional JSON
// config file.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ConfigName is the config file looked up in the config directory.
const ConfigName = "checkers.cfg.json"

// Settings holds everything configurable about a session.
type Settings struct {
	BoardWidth    int
	BoardHeight   int
	StrictTurns   bool
	ForcedCapture bool
	LogLevel      string
}

// Load reads configuration from the JSON file in configDir, falling back to
// defaults for anything unset. A missing file is fine; a malformed one is
// an error.
func Load(configDir string) (*Settings, error) {
	viper.SetDefault("board.width", 8)
	viper.SetDefault("board.height", 8)

	viper.SetDefault("rules.strictTurns", false)
	viper.SetDefault("rules.forcedCapture", false)

	viper.SetDefault("logLevel", "info")

	viper.SetConfigName(ConfigName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return &Settings{
		BoardWidth:    viper.GetInt("board.width"),
		BoardHeight:   viper.GetInt("board.height"),
		StrictTurns:   viper.GetBool("rules.strictTurns"),
		ForcedCapture: viper.GetBool("rules.forcedCapture"),
		LogLevel:      viper.GetString("logLevel"),
	}, nil
}
