package pipeline

import (
	"strings"
	"unicode"
)

// BlockKind identifies the grammar rule a line matched.
type BlockKind int

// Block kinds, in classification priority order.
const (
	KindBlank BlockKind = iota
	KindLiteralBreak
	KindHeading1
	KindHeading2
	KindHeading3
	KindListItem
	KindParagraph
)

// Line markers of the supported grammar.
const (
	literalBreak   = "<br>"
	heading1Marker = "# "
	heading2Marker = "## "
	heading3Marker = "### "
	listItemMarker = "- "
)

var kindNames = [...]string{
	KindBlank:        "blank",
	KindLiteralBreak: "literal-break",
	KindHeading1:     "heading1",
	KindHeading2:     "heading2",
	KindHeading3:     "heading3",
	KindListItem:     "list-item",
	KindParagraph:    "paragraph",
}

// String returns a short name for the kind.
func (k BlockKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Block is one classified line.
// Content holds the heading text or list text with its marker removed,
// or the whole trimmed line for paragraphs.
type Block struct {
	Kind    BlockKind
	Content string
}

// Classify returns the block kind and content for one line.
// Matching is done on the trimmed line; the first rule that matches wins.
// Every line classifies: anything unrecognized is a paragraph.
func Classify(line string) Block {
	trimmed := trimSpace(line)

	switch {
	case trimmed == "":
		return Block{Kind: KindBlank}
	case trimmed == literalBreak:
		return Block{Kind: KindLiteralBreak, Content: trimmed}
	case strings.HasPrefix(trimmed, heading1Marker):
		return Block{Kind: KindHeading1, Content: trimmed[len(heading1Marker):]}
	case strings.HasPrefix(trimmed, heading2Marker):
		return Block{Kind: KindHeading2, Content: trimSpace(trimmed[len(heading2Marker):])}
	case strings.HasPrefix(trimmed, heading3Marker):
		return Block{Kind: KindHeading3, Content: trimSpace(trimmed[len(heading3Marker):])}
	case strings.HasPrefix(trimmed, listItemMarker):
		return Block{Kind: KindListItem, Content: trimSpace(trimmed[len(listItemMarker):])}
	default:
		return Block{Kind: KindParagraph, Content: trimmed}
	}
}

// SplitLines splits a document on newline boundaries.
// An empty document is a single empty line.
func SplitLines(doc string) []string {
	return strings.Split(doc, "\n")
}

// Blocks classifies a document and collapses every run of blank lines
// into a single blank block.
func Blocks(doc string) []Block {
	lines := SplitLines(doc)
	blocks := make([]Block, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		b := Classify(lines[i])
		if b.Kind == KindBlank {
			for i+1 < len(lines) && isBlank(lines[i+1]) {
				i++
			}
		}
		blocks = append(blocks, b)
	}

	return blocks
}

// isBlank reports whether a line classifies as blank.
func isBlank(line string) bool {
	return trimSpace(line) == ""
}

// trimSpace strips Unicode whitespace plus the separators U+001C to U+001F.
func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}
