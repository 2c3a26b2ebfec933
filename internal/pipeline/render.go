package pipeline

import "strings"

// Renderer emits output fragments for classified blocks.
// Implementations are stateless; one value can serve any number of
// concurrent Render calls.
type Renderer interface {
	Blank() []string
	LiteralBreak() []string
	Heading2(content string) []string
	Heading3(content string) []string
	ListItem(content string) []string
	Paragraph(content string) []string
	// Footer is appended once, after every block.
	Footer() string
}

// Render converts a document with r.
// Heading1 blocks are author notes and produce no output.
// Fragments are joined with newlines; the footer is the last fragment.
func Render(doc string, r Renderer) string {
	blocks := Blocks(doc)
	out := make([]string, 0, len(blocks)+1)

	for _, b := range blocks {
		switch b.Kind {
		case KindBlank:
			out = append(out, r.Blank()...)
		case KindLiteralBreak:
			out = append(out, r.LiteralBreak()...)
		case KindHeading1:
			// dropped
		case KindHeading2:
			out = append(out, r.Heading2(b.Content)...)
		case KindHeading3:
			out = append(out, r.Heading3(b.Content)...)
		case KindListItem:
			out = append(out, r.ListItem(b.Content)...)
		case KindParagraph:
			out = append(out, r.Paragraph(b.Content)...)
		}
	}

	out = append(out, r.Footer())
	return strings.Join(out, "\n")
}

// Compile-time interface implementation checks.
var (
	_ Renderer = (*HTMLRenderer)(nil)
	_ Renderer = (*TextRenderer)(nil)
)
