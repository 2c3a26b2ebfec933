package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		paths       []string
		wantContain []string
	}{
		{
			name:        "no paths",
			paths:       nil,
			wantContain: []string{"hint:", "--config"},
		},
		{
			name:        "suggests user config path",
			paths:       []string{"mail.yaml", "/home/u/.config/go-md2mail/mail.yaml"},
			wantContain: []string{"or create /home/u/.config/go-md2mail/mail.yaml"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)
			for _, want := range tt.wantContain {
				if !strings.Contains(hint, want) {
					t.Errorf("ForConfigNotFound() = %q, want to contain %q", hint, want)
				}
			}
		})
	}
}

func TestForFooterSetNotFound(t *testing.T) {
	t.Parallel()

	if got := ForFooterSetNotFound(nil); got != "" {
		t.Errorf("ForFooterSetNotFound(nil) = %q, want empty", got)
	}

	got := ForFooterSetNotFound([]string{"default", "shop"})
	if !strings.Contains(got, "available: default, shop") {
		t.Errorf("ForFooterSetNotFound() = %q", got)
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	for name, hint := range map[string]string{
		"input":       ForInputDirectory("md"),
		"output":      ForOutputDirectory(),
		"placeholder": ForMissingPlaceholder(),
	} {
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("%s hint = %q, want hint prefix", name, hint)
		}
	}
	if !strings.Contains(ForMissingPlaceholder(), "%cancelurl%") {
		t.Error("placeholder hint should name the placeholder")
	}
}
