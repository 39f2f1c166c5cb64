package main

import (
	"errors"
	"os"

	mdconv "github.com/alnah/go-mdconv"
	"github.com/alnah/go-mdconv/internal/config"
	"github.com/alnah/go-mdconv/internal/logging"
)

// Exit codes for mdconv CLI.
// ExitFailure (-1, 255 in the shell) signals a bad invocation: nothing to
// convert or no way to route it.
const (
	ExitSuccess = 0  // Successful conversion
	ExitGeneral = 1  // General/unexpected error
	ExitUsage   = 2  // Invalid flags, config, or validation
	ExitIO      = 3  // Read, decode or write failure
	ExitFailure = -1 // Missing argument or file, unroutable name, unknown mode
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Invocation errors (exit -1)
	if errors.Is(err, ErrMissingFileArg) ||
		errors.Is(err, mdconv.ErrFileNotFound) ||
		errors.Is(err, mdconv.ErrUnroutableName) ||
		errors.Is(err, mdconv.ErrUnknownMode) {
		return ExitFailure
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrPermission) ||
		errors.Is(err, mdconv.ErrReadSource) ||
		errors.Is(err, mdconv.ErrDecode) ||
		errors.Is(err, mdconv.ErrSentinelCollision) ||
		errors.Is(err, mdconv.ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, logging.ErrInvalidLevel) ||
		errors.Is(err, mdconv.ErrInvalidImageDir) {
		return ExitUsage
	}

	return ExitGeneral
}
