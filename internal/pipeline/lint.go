package pipeline

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Issue describes a Markdown construct the mail grammar does not support.
// Line is 1-based, or 0 when the position could not be determined.
type Issue struct {
	Line    int
	Message string
}

// String formats the issue as "line N: message".
func (i Issue) String() string {
	if i.Line == 0 {
		return i.Message
	}
	return fmt.Sprintf("line %d: %s", i.Line, i.Message)
}

// Linter reports unsupported constructs using a goldmark parse tree.
type Linter struct {
	md goldmark.Markdown
}

// NewLinter creates a Linter that understands GitHub Flavored Markdown,
// so tables, strikethrough and task lists are recognized and reported.
func NewLinter() *Linter {
	return &Linter{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Lint parses doc and returns its issues ordered by line.
func (l *Linter) Lint(doc string) []Issue {
	src := []byte(doc)
	root := l.md.Parser().Parse(text.NewReader(src))

	var issues []Issue
	report := func(n ast.Node, msg string) {
		issues = append(issues, Issue{Line: lineOf(src, n), Message: msg})
	}

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			report(n, "code blocks are not supported; lines are rendered as paragraphs")
			return ast.WalkSkipChildren, nil
		case *ast.Blockquote:
			report(n, "blockquotes are not supported; \">\" is kept literally")
		case *ast.Heading:
			if node.Level > 3 {
				report(n, fmt.Sprintf("heading level %d is not supported; use ## or ###", node.Level))
			}
		case *ast.List:
			checkList(node, report)
		case *ast.ThematicBreak:
			report(n, "thematic breaks are not supported; use a ## heading for a rule")
		case *ast.HTMLBlock:
			if !isLiteralBreakBlock(src, node) {
				report(n, "raw HTML blocks are passed through unescaped")
			}
		case *ast.Image:
			report(n, "images are not supported")
		case *east.Table:
			report(n, "tables are not supported")
			return ast.WalkSkipChildren, nil
		case *east.Strikethrough:
			report(n, "strikethrough is not supported; \"~~\" is kept literally")
		case *east.TaskCheckBox:
			report(n, "task list checkboxes are not supported")
		}
		return ast.WalkContinue, nil
	})

	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Line < issues[j].Line
	})
	return issues
}

// checkList reports list shapes outside the "- item" grammar.
func checkList(list *ast.List, report func(ast.Node, string)) {
	if isNested(list) {
		report(list, "nested lists are not supported; items are flattened")
		return
	}
	if list.IsOrdered() {
		report(list, "ordered lists are not supported; use \"- \" items")
		return
	}
	if list.Marker != '-' {
		report(list, fmt.Sprintf("list marker %q is not supported; use \"- \"", list.Marker))
	}
}

// isNested reports whether a list sits inside a list item.
func isNested(n ast.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if _, ok := p.(*ast.ListItem); ok {
			return true
		}
	}
	return false
}

// isLiteralBreakBlock reports whether an HTML block is the supported
// "<br>" line.
func isLiteralBreakBlock(src []byte, n *ast.HTMLBlock) bool {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
	return strings.TrimSpace(buf.String()) == literalBreak
}

// lineOf returns the 1-based line of the first source byte covered by n.
func lineOf(src []byte, n ast.Node) int {
	offset, ok := nodeOffset(n)
	if !ok {
		return 0
	}
	return bytes.Count(src[:offset], []byte("\n")) + 1
}

// nodeOffset finds the start offset of a node. Container blocks carry no
// lines of their own, so their first descendant with a position is used.
func nodeOffset(n ast.Node) (int, bool) {
	if t, ok := n.(*ast.Text); ok {
		return t.Segment.Start, true
	}
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		return n.Lines().At(0).Start, true
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if off, ok := nodeOffset(c); ok {
			return off, true
		}
	}
	return 0, false
}
