// Package pipeline implements the Markdown-to-mail conversion engine.
//
// The engine is line oriented and works over a small fixed grammar:
//   - "# " author notes (dropped from every output)
//   - "## " and "### " section headings
//   - "- " list items
//   - blank lines (any run collapses to a single separator)
//   - a literal "<br>" line
//   - everything else is a paragraph
//
// Classification is shared: Classify decides what a line is, and Render
// walks the document once, handing each block to a Renderer that decides
// how it is emitted. HTMLRenderer produces a body fragment for web mailing
// platforms, TextRenderer produces a plain-text body. Both append a fixed
// footer that carries the %cancelurl% placeholder untouched.
//
// Lint is a separate, read-only pass built on goldmark that reports Markdown
// constructs the grammar does not support.
package pipeline
