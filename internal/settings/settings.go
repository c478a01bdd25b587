// Package settings resolves CLI settings from defaults, an optional settings
// file, STYLEKIT_* environment variables and command-line flags.
package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/stylekit/internal/logger"
)

// Keys understood by Load.
const (
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
	KeyViewport  = "preview.viewport"
)

// Settings are the resolved CLI settings.
type Settings struct {
	LogLevel  string
	LogFormat string
	// Viewport is the simulated viewport width, in px, the preview starts at.
	Viewport int
}

// FlagBinding maps a settings key to a command-line flag.
type FlagBinding struct {
	Key  string
	Flag *pflag.Flag
}

// Load reads settings. configFile may be empty, in which case a
// "stylekit.yaml" in the working directory is used when present.
func Load(configFile string, flags ...FlagBinding) (Settings, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("stylekit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("STYLEKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, logger.FormatConsole)
	v.SetDefault(KeyViewport, 1024)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read settings: %w", err)
		}
	}

	for _, b := range flags {
		if b.Flag == nil {
			continue
		}
		if err := v.BindPFlag(b.Key, b.Flag); err != nil {
			return Settings{}, fmt.Errorf("bind flag %s: %w", b.Flag.Name, err)
		}
	}

	s := Settings{
		LogLevel:  v.GetString(KeyLogLevel),
		LogFormat: v.GetString(KeyLogFormat),
		Viewport:  v.GetInt(KeyViewport),
	}
	if s.Viewport < 0 {
		return Settings{}, fmt.Errorf("%s must not be negative, got %d", KeyViewport, s.Viewport)
	}
	return s, nil
}
