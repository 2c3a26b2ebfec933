package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrFooterSetNotFound indicates the requested footer set does not exist.
	ErrFooterSetNotFound = errors.New("footer set not found")

	// ErrIncompleteFooterSet indicates the footer set is missing a footer file.
	ErrIncompleteFooterSet = errors.New("footer set missing required footer")

	// ErrMissingPlaceholder indicates a footer lacks the unsubscribe placeholder.
	ErrMissingPlaceholder = errors.New("footer missing placeholder")

	// ErrInvalidAssetName indicates the asset name contains invalid characters
	// such as path separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead indicates an I/O error occurred while reading an asset file.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")
)
