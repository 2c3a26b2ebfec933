package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

//go:embed footers
var footers embed.FS

// EmbeddedLoader loads footer sets from the embedded filesystem.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadFooterSet loads a footer set from embedded assets by name.
func (e *EmbeddedLoader) LoadFooterSet(name string) (*FooterSet, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	dir := path.Join("footers", name)
	html, htmlErr := footers.ReadFile(path.Join(dir, htmlFooterFile))
	text, textErr := footers.ReadFile(path.Join(dir, textFooterFile))

	if errors.Is(htmlErr, fs.ErrNotExist) && errors.Is(textErr, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrFooterSetNotFound, name)
	}
	if htmlErr != nil {
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteFooterSet, name, htmlFooterFile)
	}
	if textErr != nil {
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteFooterSet, name, textFooterFile)
	}

	return &FooterSet{
		Name: name,
		HTML: trimFinalNewline(string(html)),
		Text: trimFinalNewline(string(text)),
	}, nil
}

// FooterSetNames lists the built-in footer sets, sorted.
func (e *EmbeddedLoader) FooterSetNames() []string {
	entries, err := footers.ReadDir("footers")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
