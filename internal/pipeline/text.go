package pipeline

import "strings"

// Divider widths for plain-text headings.
const (
	heading2DividerWidth = 20
	heading3DividerWidth = 40
)

var (
	heading2Divider = strings.Repeat("━", heading2DividerWidth)
	heading3Divider = strings.Repeat("-", heading3DividerWidth)
)

// TextRenderer renders a plain-text body for text-only delivery.
type TextRenderer struct {
	footer string
}

// NewTextRenderer creates a TextRenderer that appends footer.
func NewTextRenderer(footer string) *TextRenderer {
	return &TextRenderer{footer: footer}
}

// Blank emits one empty line for a run of blank lines.
func (r *TextRenderer) Blank() []string {
	return []string{""}
}

// LiteralBreak has no plain-text meaning; the line is kept as written.
func (r *TextRenderer) LiteralBreak() []string {
	return []string{literalBreak}
}

// Heading2 frames the title with heavy dividers after an empty line.
func (r *TextRenderer) Heading2(content string) []string {
	return []string{"", heading2Divider, "■ " + content, heading2Divider}
}

// Heading3 frames the title with dashed dividers.
func (r *TextRenderer) Heading3(content string) []string {
	return []string{heading3Divider, "◆ " + content, heading3Divider}
}

// ListItem emits the item prefixed with a middle dot.
func (r *TextRenderer) ListItem(content string) []string {
	return []string{"・" + InlineText(content)}
}

// Paragraph emits the line with inline markup translated.
func (r *TextRenderer) Paragraph(content string) []string {
	return []string{InlineText(content)}
}

// Footer returns the plain-text footer.
func (r *TextRenderer) Footer() string {
	return r.footer
}
