package main

import (
	"errors"
	"os"

	md2mail "github.com/alnah/go-md2mail"
	"github.com/alnah/go-md2mail/internal/config"
)

// Exit codes for md2mail CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion, clean lint
	ExitGeneral = 1 // Partial failure, lint issues, unexpected error
	ExitUsage   = 2 // Invalid flags, config, or footer set
	ExitIO      = 3 // File not found, permission denied, unwritable output
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config errors (exit 2). Checked first: a missing config file is
	// a usage problem even though it wraps a not-exist condition.
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, md2mail.ErrUnknownFormat) ||
		errors.Is(err, md2mail.ErrInvalidAssetPath) ||
		errors.Is(err, md2mail.ErrFooterSetNotFound) ||
		errors.Is(err, md2mail.ErrInvalidFooter) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	return ExitGeneral
}
