package assets

import (
	"errors"
	"sort"
)

// AssetResolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls back
// to embedded if the footer set is not found in the custom location.
type AssetResolver struct {
	custom   *FilesystemLoader // nil if no custom path configured
	embedded *EmbeddedLoader
}

// NewAssetResolver creates an AssetResolver.
// If customBasePath is empty, only embedded assets are used.
// Returns error if customBasePath is set but invalid.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadFooterSet loads a footer set, trying the custom loader first if available.
func (r *AssetResolver) LoadFooterSet(name string) (*FooterSet, error) {
	if r.custom == nil {
		return r.embedded.LoadFooterSet(name)
	}

	fs, err := r.custom.LoadFooterSet(name)
	if err == nil {
		return fs, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors
	if !errors.Is(err, ErrFooterSetNotFound) {
		return nil, err
	}

	return r.embedded.LoadFooterSet(name)
}

// HasCustomLoader returns true if a custom asset loader is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// FooterSetNames lists every footer set reachable through the resolver,
// custom and embedded, sorted and without duplicates.
func (r *AssetResolver) FooterSetNames() []string {
	seen := make(map[string]bool)
	var names []string
	add := func(list []string) {
		for _, n := range list {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}

	add(r.embedded.FooterSetNames())
	if r.custom != nil {
		add(r.custom.FooterSetNames())
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
