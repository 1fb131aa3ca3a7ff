// Package config loads game settings from an optional file, the environment
// and command-line flags.
//
// Two file formats are supported, chosen by extension:
//   - .yaml / .yml parsed with gopkg.in/yaml.v3
//   - .json / .jsonc parsed with encoding/json after github.com/tidwall/jsonc
//     strips comments and trailing commas
//
// Precedence, lowest to highest: built-in defaults, config file, environment
// (GUESSING_GAME_LOG_LEVEL, optionally from a .env file), flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/guessing-game/internal/guess"
	"github.com/shinji-kodama/guessing-game/internal/model"
)

// EnvLogLevel overrides the logLevel setting when non-empty.
const EnvLogLevel = "GUESSING_GAME_LOG_LEVEL"

// fileBaseName is the name searched for by Find, without extension.
const fileBaseName = ".guessing-game"

// searchExtensions lists the extensions Find tries, in order.
var searchExtensions = []string{".yaml", ".yml", ".jsonc", ".json"}

// Config holds every setting that affects a game.
type Config struct {
	// Min is the smallest accepted guess and the smallest possible secret.
	Min int `json:"min" yaml:"min"`

	// Max is the largest accepted guess. The secret is always below Max.
	Max int `json:"max" yaml:"max"`

	// Seed pins the secret for reproducible games. Zero means random.
	Seed uint64 `json:"seed" yaml:"seed"`

	// RevealSecret prints the secret before the first prompt.
	RevealSecret bool `json:"revealSecret" yaml:"revealSecret"`

	// LogLevel is a zerolog level name (trace, debug, info, warn, error).
	LogLevel string `json:"logLevel" yaml:"logLevel"`

	// Source is the file the settings were read from, empty for defaults.
	Source string `json:"source,omitempty" yaml:"-"`
}

// Default returns the built-in settings: bounds 1-100, random secret,
// no reveal, info logging.
func Default() *Config {
	return &Config{
		Min:      guess.DefaultMin,
		Max:      guess.DefaultMax,
		LogLevel: "info",
	}
}

// Bounds returns the configured inclusive guess range.
func (c *Config) Bounds() guess.Bounds {
	return guess.Bounds{Min: c.Min, Max: c.Max}
}

// Find looks for a config file in dir and returns its path, or an empty
// string when none of the candidate names exist.
func Find(dir string) string {
	for _, ext := range searchExtensions {
		candidate := filepath.Join(dir, fileBaseName+ext)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// Load reads the file at path over the defaults.
//
// Fields absent from the file keep their default values, because both
// decoders only overwrite fields that are present.
//
// Returns a CLIError with ExitConfigInvalid if the file cannot be read or
// parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, model.WrapCLIError(model.ExitConfigInvalid,
				fmt.Sprintf("config file not found: %s", path), err)
		}
		return nil, model.WrapCLIError(model.ExitConfigInvalid,
			fmt.Sprintf("failed to read config file: %s", path), err)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, model.WrapCLIError(model.ExitConfigInvalid,
			fmt.Sprintf("failed to parse config file: %s", path), err)
	}
	cfg.Source = path
	return cfg, nil
}

// Parse decodes data according to ext (".yaml", ".yml", ".json", ".jsonc")
// over the defaults.
func Parse(data []byte, ext string) (*Config, error) {
	cfg := Default()

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config extension %q (use .yaml, .yml, .json or .jsonc)", ext)
	}
	return cfg, nil
}

// LoadEnv loads a .env file from dir if present and applies environment
// overrides to cfg. A missing .env file is not an error.
func LoadEnv(cfg *Config, dir string) error {
	envPath := filepath.Join(dir, ".env")
	if _, err := os.Stat(envPath); err == nil {
		// godotenv.Load never overrides variables already set in the
		// process environment.
		if err := godotenv.Load(envPath); err != nil {
			return fmt.Errorf("failed to load %s: %w", envPath, err)
		}
	}

	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.LogLevel = lvl
	}
	return nil
}

// Resolve builds the effective configuration for a working directory:
// defaults, then the explicit file (or the one Find discovers in dir),
// then the environment. Flags are applied afterwards by the caller.
func Resolve(explicitPath, dir string) (*Config, error) {
	path := explicitPath
	if path == "" {
		path = Find(dir)
	}

	cfg := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := LoadEnv(cfg, dir); err != nil {
		return nil, model.WrapCLIError(model.ExitConfigInvalid, "failed to load environment", err)
	}
	return cfg, nil
}
