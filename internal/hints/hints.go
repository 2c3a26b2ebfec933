// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2mail/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-md2mail") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForInputDirectory returns hints for a missing batch input directory.
func ForInputDirectory(dir string) string {
	return format("create " + dir + "/ with .md files, or pass a file or directory")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForFooterSetNotFound returns hints listing the available footer sets.
func ForFooterSetNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForMissingPlaceholder returns a hint about the unsubscribe placeholder.
func ForMissingPlaceholder() string {
	return format("custom footers must keep %cancelurl% for the mailing platform")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
