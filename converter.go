package md2mail

import (
	"errors"
	"fmt"

	"github.com/alnah/go-md2mail/internal/assets"
	"github.com/alnah/go-md2mail/internal/pipeline"
)

// Converter renders documents into mail bodies.
// Create with NewConverter. A Converter holds no mutable state.
type Converter struct {
	footers *assets.FooterSet
	html    *pipeline.HTMLRenderer
	text    *pipeline.TextRenderer
}

// NewConverter creates a Converter. Footers are loaded and validated once.
func NewConverter(opts ...Option) (*Converter, error) {
	cfg := converterConfig{footerSet: DefaultFooterSet}
	for _, opt := range opts {
		opt(&cfg)
	}

	resolver, err := assets.NewAssetResolver(cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}

	footers, err := resolver.LoadFooterSet(cfg.footerSet)
	if err != nil {
		switch {
		case errors.Is(err, assets.ErrFooterSetNotFound):
			return nil, fmt.Errorf("%w: %v", ErrFooterSetNotFound, err)
		case errors.Is(err, assets.ErrInvalidAssetName), errors.Is(err, assets.ErrIncompleteFooterSet):
			return nil, fmt.Errorf("%w: %v", ErrInvalidFooter, err)
		default:
			return nil, fmt.Errorf("loading footer set: %w", err)
		}
	}
	if err := footers.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFooter, err)
	}

	return newConverter(footers), nil
}

func newConverter(footers *assets.FooterSet) *Converter {
	return &Converter{
		footers: footers,
		html:    pipeline.NewHTMLRenderer(footers.HTML),
		text:    pipeline.NewTextRenderer(footers.Text),
	}
}

// FooterSet returns the name of the footer set in use.
func (c *Converter) FooterSet() string {
	return c.footers.Name
}

// Convert renders input.Markdown in input.Format.
// Empty markdown is valid: the body is one blank unit and the footer.
func (c *Converter) Convert(input Input) (*ConvertResult, error) {
	format := input.Format
	if format == "" {
		format = FormatHTML
	}

	switch format {
	case FormatHTML:
		return &ConvertResult{Format: format, Body: c.ToHTML(input.Markdown)}, nil
	case FormatText:
		return &ConvertResult{Format: format, Body: c.ToText(input.Markdown)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// ToHTML renders markdown as an HTML mail body.
func (c *Converter) ToHTML(markdown string) string {
	return pipeline.Render(markdown, c.html)
}

// ToText renders markdown as a plain-text mail body.
func (c *Converter) ToText(markdown string) string {
	return pipeline.Render(markdown, c.text)
}

// defaultConverter uses the built-in footers without touching the asset loaders.
var defaultConverter = newConverter(&assets.FooterSet{
	Name: assets.DefaultFooterSetName,
	HTML: pipeline.DefaultHTMLFooter,
	Text: pipeline.DefaultTextFooter,
})

// ToHTML renders markdown as an HTML mail body with the built-in footer.
func ToHTML(markdown string) string {
	return defaultConverter.ToHTML(markdown)
}

// ToText renders markdown as a plain-text mail body with the built-in footer.
func ToText(markdown string) string {
	return defaultConverter.ToText(markdown)
}
