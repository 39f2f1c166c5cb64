package mdconv

import "errors"

// Sentinel errors for library operations.
var (
	// Routing errors.
	ErrFileNotFound     = errors.New("file does not exist")
	ErrUnroutableName   = errors.New(`filename must end with "-youdao.md" or "-typora.md"`)
	ErrUnknownMode      = errors.New("unknown mode")
	ErrInvalidDirection = errors.New("invalid conversion direction")

	// Input errors.
	ErrReadSource        = errors.New("failed to read source file")
	ErrDecode            = errors.New("source is not valid UTF-8")
	ErrSentinelCollision = errors.New("source contains the reserved line-break marker U+E00A")

	// Output errors.
	ErrWriteOutput = errors.New("failed to write output file")

	// Option validation errors.
	ErrInvalidImageDir = errors.New("invalid image directory")
)
