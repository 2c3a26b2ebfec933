package md2mail

import (
	"fmt"

	"github.com/alnah/go-md2mail/internal/assets"
)

// DefaultFooterSet is the name of the built-in footer set.
const DefaultFooterSet = assets.DefaultFooterSetName

// CancelURLPlaceholder is the token every footer must carry.
// The mailing platform replaces it with the recipient's unsubscribe link.
const CancelURLPlaceholder = assets.Placeholder

// FooterSets lists the footer sets available with the given asset path,
// sorted. An empty path lists the built-in sets only.
func FooterSets(assetPath string) ([]string, error) {
	resolver, err := assets.NewAssetResolver(assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	return resolver.FooterSetNames(), nil
}
