package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".solvetrack"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for solvetrack settings.
const envPrefix = "SOLVETRACK"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// Default values.
const (
	defaultTheme       = "dark"
	defaultViewMode    = "problems"
	defaultStackMode   = "difficulty"
	defaultGranularity = "daily"
	defaultChartWidth  = 960
	defaultChartHeight = 560
	defaultAnimationMS = 300
	defaultListen      = ":8716"
)

// LoadConfig loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("theme", defaultTheme)
	v.SetDefault("view.mode", defaultViewMode)
	v.SetDefault("view.stack", defaultStackMode)
	v.SetDefault("view.granularity", defaultGranularity)
	v.SetDefault("chart.width", defaultChartWidth)
	v.SetDefault("chart.height", defaultChartHeight)
	v.SetDefault("chart.animation_ms", defaultAnimationMS)
	v.SetDefault("serve.listen", defaultListen)
}
