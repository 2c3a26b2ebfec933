package main

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alnah/go-md2mail/internal/config"
)

// envPrefix marks the environment variables read by the CLI.
const envPrefix = "MD2MAIL_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2MAIL_CONFIG: config file name or path
	Format     string // MD2MAIL_FORMAT: html, text, both
	InputDir   string // MD2MAIL_INPUT_DIR: batch input directory
	HTMLDir    string // MD2MAIL_HTML_DIR: batch HTML output directory
	TextDir    string // MD2MAIL_TEXT_DIR: batch text output directory
	AssetPath  string // MD2MAIL_ASSET_PATH: custom footer sets directory
	Workers    int    // MD2MAIL_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2MAIL_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2MAIL_CONFIG":     true,
	"MD2MAIL_FORMAT":     true,
	"MD2MAIL_INPUT_DIR":  true,
	"MD2MAIL_HTML_DIR":   true,
	"MD2MAIL_TEXT_DIR":   true,
	"MD2MAIL_ASSET_PATH": true,
	"MD2MAIL_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Invalid worker counts are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MD2MAIL_CONFIG"),
		Format:     getenv("MD2MAIL_FORMAT"),
		InputDir:   getenv("MD2MAIL_INPUT_DIR"),
		HTMLDir:    getenv("MD2MAIL_HTML_DIR"),
		TextDir:    getenv("MD2MAIL_TEXT_DIR"),
		AssetPath:  getenv("MD2MAIL_ASSET_PATH"),
	}

	if workers := getenv("MD2MAIL_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2MAIL_* variables.
// Helps catch typos like MD2MAIL_HTMLDIR instead of MD2MAIL_HTML_DIR.
func warnUnknownEnvVars(environ []string, log zerolog.Logger) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			log.Warn().Str("variable", name).Msg("unknown environment variable (typo?)")
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file; CLI flags are applied later
// via mergeFlags, giving: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Format != "" {
		cfg.Format = env.Format
	}
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.HTMLDir != "" {
		cfg.Output.HTMLDir = env.HTMLDir
	}
	if env.TextDir != "" {
		cfg.Output.TextDir = env.TextDir
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}
