/*
Package config manages the TOML config for wordsolve.

A missing file is created with defaults; a file with type errors is parsed
section by section so valid keys still apply.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/bastiangx/wordsolve/pkg/critbit"
	"github.com/bastiangx/wordsolve/pkg/dictionary"
	"github.com/bastiangx/wordsolve/pkg/match"
	"github.com/charmbracelet/log"
)

// FileName is the config file looked for in the config directory.
const FileName = "config.toml"

// Config holds the entire config structure
type Config struct {
	Dict   DictConfig   `toml:"dict"`
	Match  MatchConfig  `toml:"match"`
	CLI    CliConfig    `toml:"cli"`
	Server ServerConfig `toml:"server"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path     string `toml:"path"`
	MinWords int    `toml:"min_words"`
}

// MatchConfig holds the matching rules.
type MatchConfig struct {
	Wildcard     string   `toml:"wildcard"`
	CountRepeats bool     `toml:"count_repeats"`
	Exclusions   []string `toml:"exclusions"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	Prompt  string `toml:"prompt"`
	Columns int    `toml:"columns"`
	Limit   int    `toml:"limit"`
	Color   bool   `toml:"color"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxResults int `toml:"max_results"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dict: DictConfig{
			Path:     dictionary.DefaultPath,
			MinWords: 1,
		},
		Match: MatchConfig{
			Wildcard:     string(rune(match.DefaultWildcard)),
			CountRepeats: false,
			Exclusions:   []string{},
		},
		CLI: CliConfig{
			Prompt:  "> ",
			Columns: 0,
			Limit:   0,
			Color:   true,
		},
		Server: ServerConfig{
			MaxResults: 256,
		},
	}
}

// MatchOptions converts the [match] section into engine options.
func (c *Config) MatchOptions() (match.Options, error) {
	opts := match.DefaultOptions()
	switch len(c.Match.Wildcard) {
	case 0:
	case 1:
		opts.Wildcard = c.Match.Wildcard[0]
	default:
		return opts, fmt.Errorf("wildcard %q must be a single character", c.Match.Wildcard)
	}
	if n := len(c.Match.Exclusions); n != 0 && n != critbit.WordLen {
		return opts, fmt.Errorf("exclusions has %d entries, want 0 or %d", n, critbit.WordLen)
	}
	opts.CountRepeats = c.Match.CountRepeats
	opts.Exclusions = c.Match.Exclusions
	return opts, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	pr, err := utils.NewPathResolver()
	if err != nil {
		return "", err
	}
	return pr.GetConfigPath(FileName)
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path: [UserConfigDir]/wordsolve/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}
	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps every key that has the right type and
// leaves the rest at defaults.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	raw, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(raw, "dict"); ok {
		if val, ok := utils.ExtractString(section, "path"); ok {
			config.Dict.Path = val
		}
		if val, ok := utils.ExtractInt64(section, "min_words"); ok {
			config.Dict.MinWords = val
		}
	}
	if section, ok := utils.ExtractSection(raw, "match"); ok {
		if val, ok := utils.ExtractString(section, "wildcard"); ok {
			config.Match.Wildcard = val
		}
		if val, ok := utils.ExtractBool(section, "count_repeats"); ok {
			config.Match.CountRepeats = val
		}
		if val, ok := utils.ExtractStrings(section, "exclusions"); ok {
			config.Match.Exclusions = val
		}
	}
	if section, ok := utils.ExtractSection(raw, "cli"); ok {
		if val, ok := utils.ExtractString(section, "prompt"); ok {
			config.CLI.Prompt = val
		}
		if val, ok := utils.ExtractInt64(section, "columns"); ok {
			config.CLI.Columns = val
		}
		if val, ok := utils.ExtractInt64(section, "limit"); ok {
			config.CLI.Limit = val
		}
		if val, ok := utils.ExtractBool(section, "color"); ok {
			config.CLI.Color = val
		}
	}
	if section, ok := utils.ExtractSection(raw, "server"); ok {
		if val, ok := utils.ExtractInt64(section, "max_results"); ok {
			config.Server.MaxResults = val
		}
	}
	return config, nil
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	return utils.GetAbsolutePath(configPath)
}
