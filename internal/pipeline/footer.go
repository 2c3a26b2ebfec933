package pipeline

// CancelURLPlaceholder is substituted by the mailing platform, never here.
const CancelURLPlaceholder = "%cancelurl%"

// DefaultHTMLFooter closes every HTML body.
const DefaultHTMLFooter = "<br>\n" +
	"<p>===</p>\n" +
	"<p>メルマガの配信解除はこちらから</p>\n" +
	"<p>" + CancelURLPlaceholder + "</p>"

// DefaultTextFooter closes every plain-text body.
// The leading newlines are part of the footer: with the newline that joins
// it to the body, the separator is preceded by two empty lines.
const DefaultTextFooter = "\n\n" +
	"===\n" +
	"メルマガの配信解除はこちらから\n" +
	CancelURLPlaceholder
