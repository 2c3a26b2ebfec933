package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2mail/internal/assets"
	"github.com/alnah/go-md2mail/internal/fileutil"
	"github.com/alnah/go-md2mail/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength       = 4096
	MaxFooterNameLength = 100
	MaxWorkers          = 64
)

// Output format selections accepted in config files.
const (
	FormatHTML = "html"
	FormatText = "text"
	FormatBoth = "both"
)

// Default directory layout of a newsletter workspace.
const (
	DefaultInputDir = "md"
	DefaultHTMLDir  = ".html"
	DefaultTextDir  = ".text"
)

// Config holds all configuration for mail body generation.
type Config struct {
	Format  string       `yaml:"format"` // "html", "text", "both" (empty = html)
	Input   InputConfig  `yaml:"input"`
	Output  OutputConfig `yaml:"output"`
	Footer  FooterConfig `yaml:"footer"`
	Assets  AssetsConfig `yaml:"assets"`
	Workers int          `yaml:"workers"` // 0 = auto
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Batch source directory
}

// OutputConfig defines per-format output directories for batch mode.
type OutputConfig struct {
	HTMLDir string `yaml:"htmlDir"`
	TextDir string `yaml:"textDir"`
}

// FooterConfig selects the footer set appended to every body.
type FooterConfig struct {
	Name string `yaml:"name"` // Footer set name (empty = default)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// Validate checks field values and lengths.
// Called automatically by LoadConfig, but available for callers
// who construct Config manually.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Format) {
	case "", FormatHTML, FormatText, "txt", FormatBoth:
	default:
		return fmt.Errorf("%w: format %q (must be html, text, or both)", ErrInvalidValue, c.Format)
	}

	paths := []struct{ name, value string }{
		{"input.defaultDir", c.Input.DefaultDir},
		{"output.htmlDir", c.Output.HTMLDir},
		{"output.textDir", c.Output.TextDir},
		{"assets.basePath", c.Assets.BasePath},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.name, p.value, MaxPathLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("footer.name", c.Footer.Name, MaxFooterNameLength); err != nil {
		return err
	}
	if c.Footer.Name != "" {
		if err := assets.ValidateAssetName(c.Footer.Name); err != nil {
			return fmt.Errorf("footer.name: %w", err)
		}
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the conventional newsletter layout: markdown in md/,
// HTML bodies in .html/, text bodies in .text/.
func DefaultConfig() *Config {
	return &Config{
		Format: FormatHTML,
		Input:  InputConfig{DefaultDir: DefaultInputDir},
		Output: OutputConfig{HTMLDir: DefaultHTMLDir, TextDir: DefaultTextDir},
		Footer: FooterConfig{Name: assets.DefaultFooterSetName},
	}
}

// applyDefaults fills fields a config file left empty.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Format == "" {
		c.Format = def.Format
	}
	if c.Input.DefaultDir == "" {
		c.Input.DefaultDir = def.Input.DefaultDir
	}
	if c.Output.HTMLDir == "" {
		c.Output.HTMLDir = def.Output.HTMLDir
	}
	if c.Output.TextDir == "" {
		c.Output.TextDir = def.Output.TextDir
	}
	if c.Footer.Name == "" {
		c.Footer.Name = def.Footer.Name
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := yamlutil.DecodeFile(configPath, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		if errors.Is(err, yamlutil.ErrNilData) {
			// An empty file is a valid config that keeps every default.
			cfg = Config{}
		} else {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// SearchPaths lists the candidate files for a config name, in lookup order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-md2mail", name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries the current directory first, then ~/.config/go-md2mail/.
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
