// Package md2mail converts a restricted Markdown dialect into newsletter
// mail bodies: an HTML body for HTML-capable mailing platforms and a
// plain-text body for text-only delivery.
//
// # Quick Start
//
// The package-level helpers use the built-in footers:
//
//	html := md2mail.ToHTML("## Topic\n\nHello **world**")
//	text := md2mail.ToText("## Topic\n\nHello **world**")
//
// Create a Converter to select another footer set:
//
//	conv, err := md2mail.NewConverter(
//	    md2mail.WithAssetPath("/path/to/footers"),
//	    md2mail.WithFooterSet("shop"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := conv.Convert(md2mail.Input{Markdown: doc, Format: md2mail.FormatText})
//
// # Dialect
//
// Each line is classified on its own:
//
//   - "# " headings are author notes and are dropped
//   - "## " headings become section banners
//   - "### " headings become subsections
//   - "- " lines become list items
//   - a line holding only "<br>" is a literal line break
//   - runs of blank lines collapse to one blank unit
//   - anything else is a paragraph
//
// Inside paragraphs and list items, [label](url), **strong** and *emphasis*
// are rewritten. The text renderer also brackets `code` spans as 「code」.
// Anything else passes through untouched; use Lint to find constructs the
// dialect does not support.
//
// # Footer
//
// Every body ends with a footer carrying the %cancelurl% placeholder, which
// the mailing platform replaces with the recipient's unsubscribe link.
// Custom footer sets live in <asset-path>/footers/<name>/footer.html and
// footer.txt and must keep the placeholder.
//
// # Concurrency
//
// A Converter is immutable after construction and safe for concurrent use.
package md2mail
