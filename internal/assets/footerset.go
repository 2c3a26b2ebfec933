package assets

import (
	"fmt"
	"strings"
)

// DefaultFooterSetName is the name of the built-in footer set.
const DefaultFooterSetName = "default"

// Placeholder is the unsubscribe URL token every footer must carry.
const Placeholder = "%cancelurl%"

// File names inside a footer set directory.
const (
	htmlFooterFile = "footer.html"
	textFooterFile = "footer.txt"
)

// FooterSet holds the footers appended to each output format.
type FooterSet struct {
	Name string // Identifier (set name)
	HTML string // Appended to HTML bodies
	Text string // Appended to plain-text bodies
}

// Validate checks that both footers carry the placeholder.
func (f *FooterSet) Validate() error {
	if !strings.Contains(f.HTML, Placeholder) {
		return fmt.Errorf("%w: %q %s", ErrMissingPlaceholder, f.Name, htmlFooterFile)
	}
	if !strings.Contains(f.Text, Placeholder) {
		return fmt.Errorf("%w: %q %s", ErrMissingPlaceholder, f.Name, textFooterFile)
	}
	return nil
}

// trimFinalNewline removes the single line ending editors add at EOF.
func trimFinalNewline(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	return strings.TrimSuffix(s, "\n")
}
