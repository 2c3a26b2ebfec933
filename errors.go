package md2mail

import "errors"

// Sentinel errors for library operations.
var (
	ErrUnknownFormat = errors.New("unknown output format")

	// Asset loading errors.
	ErrInvalidAssetPath  = errors.New("invalid asset path")
	ErrFooterSetNotFound = errors.New("footer set not found")
	ErrInvalidFooter     = errors.New("invalid footer")
)
