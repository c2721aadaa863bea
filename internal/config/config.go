// Package config loads CLI configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigTooLarge  = errors.New("config file exceeds maximum size")
)

// MaxConfigSize limits YAML input to prevent memory exhaustion.
const MaxConfigSize = 1 << 20 // 1MB

// MaxPathLength bounds user-supplied paths in the config file.
const MaxPathLength = 4096

// Config holds all CLI configuration.
type Config struct {
	Convert ConvertConfig `yaml:"convert"`
	Render  RenderConfig  `yaml:"render"`
	Output  OutputConfig  `yaml:"output"`
}

// ConvertConfig selects the conversion behavior.
type ConvertConfig struct {
	Target string `yaml:"target"` // "html" or "markdown" (default: "html")
	Stats  bool   `yaml:"stats"`  // Print a conversion summary to stderr
}

// RenderConfig mirrors the engine's Markdown rendering toggles.
type RenderConfig struct {
	Tables          bool `yaml:"tables"`
	Breaks          bool `yaml:"breaks"`
	GFM             bool `yaml:"gfm"`
	SmartLists      bool `yaml:"smartLists"`
	HeaderIDs       bool `yaml:"headerIds"`
	SyntaxHighlight bool `yaml:"syntaxHighlight"`
	Pedantic        bool `yaml:"pedantic"`
	SmartyPants     bool `yaml:"smartypants"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Path string `yaml:"path"` // Output file (empty = stdout)
}

// Validate checks configuration values before use.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Convert.Target) {
	case "", "html", "markdown":
		// valid
	default:
		return fmt.Errorf("convert.target: invalid value %q (must be html or markdown)", c.Convert.Target)
	}

	if len(c.Output.Path) > MaxPathLength {
		return fmt.Errorf("output.path: %d chars exceeds maximum %d", len(c.Output.Path), MaxPathLength)
	}

	return nil
}

// DefaultConfig returns the default configuration: HTML output to stdout
// with the standard GFM rendering toggles enabled.
func DefaultConfig() *Config {
	return &Config{
		Convert: ConvertConfig{Target: "html"},
		Render: RenderConfig{
			Tables:          true,
			Breaks:          true,
			GFM:             true,
			SmartLists:      true,
			HeaderIDs:       true,
			SyntaxHighlight: true,
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
//
// Fields absent from the file keep their defaults; unknown fields are
// rejected.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > MaxConfigSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigTooLarge, len(data), MaxConfigSize)
	}

	cfg := DefaultConfig()
	if len(data) > 0 {
		if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-mdconvert/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-mdconvert", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
