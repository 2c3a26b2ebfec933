package md2mail

import "github.com/alnah/go-md2mail/internal/pipeline"

// Issue describes a construct the dialect does not support.
type Issue struct {
	Line    int // 1-based; 0 when unknown
	Message string
}

func (i Issue) String() string {
	return pipeline.Issue{Line: i.Line, Message: i.Message}.String()
}

var linter = pipeline.NewLinter()

// Lint reports constructs that would pass through conversion literally.
// It never affects conversion output.
func Lint(markdown string) []Issue {
	found := linter.Lint(markdown)
	if len(found) == 0 {
		return nil
	}

	issues := make([]Issue, len(found))
	for i, f := range found {
		issues[i] = Issue{Line: f.Line, Message: f.Message}
	}
	return issues
}
