package pipeline

// HTMLRenderer renders a body fragment for web-based mailing platforms.
type HTMLRenderer struct {
	footer string
}

// NewHTMLRenderer creates an HTMLRenderer that appends footer.
func NewHTMLRenderer(footer string) *HTMLRenderer {
	return &HTMLRenderer{footer: footer}
}

// Blank emits one <br> for a run of blank lines.
func (r *HTMLRenderer) Blank() []string {
	return []string{"<br>"}
}

// LiteralBreak passes a "<br>" line through unwrapped.
func (r *HTMLRenderer) LiteralBreak() []string {
	return []string{"<br>"}
}

// Heading2 opens a section with a rule and an <h3> title.
func (r *HTMLRenderer) Heading2(content string) []string {
	return []string{"<hr>", "<br><h3>" + content + "</h3>"}
}

// Heading3 emits an <h4> subsection title.
func (r *HTMLRenderer) Heading3(content string) []string {
	return []string{"<br><h4>" + content + "</h4>"}
}

// ListItem emits a paragraph prefixed with a middle dot.
func (r *HTMLRenderer) ListItem(content string) []string {
	return []string{"<p>・" + InlineHTML(content) + "</p>"}
}

// Paragraph wraps the line in <p>.
func (r *HTMLRenderer) Paragraph(content string) []string {
	return []string{"<p>" + InlineHTML(content) + "</p>"}
}

// Footer returns the HTML footer.
func (r *HTMLRenderer) Footer() string {
	return r.footer
}
