package md2mail

import (
	"strings"
	"testing"
)

func TestLint(t *testing.T) {
	t.Parallel()

	t.Run("supported dialect is clean", func(t *testing.T) {
		t.Parallel()

		doc := "# memo\n## Topic\n### Sub\n- item\n<br>\nText with **bold** and [link](https://example.com)\n"
		if issues := Lint(doc); issues != nil {
			t.Errorf("Lint() = %v, want nil", issues)
		}
	})

	t.Run("reports unsupported constructs with lines", func(t *testing.T) {
		t.Parallel()

		doc := "intro\n\n> quoted\n\n1. first\n"
		issues := Lint(doc)
		if len(issues) != 2 {
			t.Fatalf("Lint() = %v, want 2 issues", issues)
		}
		if issues[0].Line != 3 || !strings.Contains(issues[0].Message, "blockquote") {
			t.Errorf("issues[0] = %+v, want blockquote on line 3", issues[0])
		}
		if issues[1].Line != 5 {
			t.Errorf("issues[1].Line = %d, want 5", issues[1].Line)
		}
		if got := issues[0].String(); !strings.HasPrefix(got, "line 3: ") {
			t.Errorf("String() = %q, want line prefix", got)
		}
	})

	t.Run("lint does not alter conversion", func(t *testing.T) {
		t.Parallel()

		doc := "> quoted"
		before := ToHTML(doc)
		_ = Lint(doc)
		if after := ToHTML(doc); after != before {
			t.Errorf("ToHTML() changed after Lint: %q vs %q", after, before)
		}
	})
}
