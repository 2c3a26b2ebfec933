package assets

// AssetLoader defines the contract for loading footer sets.
type AssetLoader interface {
	// LoadFooterSet loads the HTML and text footers of a named set.
	// Returns ErrFooterSetNotFound if the set doesn't exist.
	// Returns ErrIncompleteFooterSet if one of the two footers is missing.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadFooterSet(name string) (*FooterSet, error)
}
