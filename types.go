package md2mail

import (
	"fmt"
	"strings"
)

// Format selects the kind of mail body produced.
type Format string

// Output formats.
const (
	FormatHTML Format = "html"
	FormatText Format = "text"
)

// Formats lists every supported format in output order.
func Formats() []Format {
	return []Format{FormatHTML, FormatText}
}

// ParseFormat converts a user-supplied name to a Format.
// Matching is case-insensitive and "txt" is accepted for text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "html":
		return FormatHTML, nil
	case "text", "txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q (must be html or text)", ErrUnknownFormat, s)
	}
}

// Extension returns the file extension for output files of this format.
func (f Format) Extension() string {
	switch f {
	case FormatHTML:
		return ".html"
	case FormatText:
		return ".txt"
	default:
		return ""
	}
}

// Input contains the conversion parameters.
type Input struct {
	Markdown string // Document source
	Format   Format // Empty means FormatHTML
}

// ConvertResult holds a rendered mail body.
type ConvertResult struct {
	Format Format
	Body   string
}

// Option configures a Converter.
type Option func(*converterConfig)

// converterConfig holds construction-time settings.
type converterConfig struct {
	assetPath string
	footerSet string
}

// WithAssetPath sets a directory holding custom footer sets.
// Sets missing from it fall back to the built-in ones.
func WithAssetPath(path string) Option {
	return func(c *converterConfig) {
		c.assetPath = path
	}
}

// WithFooterSet selects the footer set by name (default "default").
// An empty name keeps the default.
func WithFooterSet(name string) Option {
	return func(c *converterConfig) {
		if name != "" {
			c.footerSet = name
		}
	}
}
