package mdconv

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// readSource reads path as UTF-8 text.
//
// Failing to open the file is always an error. Read and decode failures
// follow the converter's policy: PolicyFailFast returns them, PolicyBestEffort
// logs them and returns the text read so far with partial set.
func (c *Converter) readSource(path string) (text string, partial bool, err error) {
	f, err := os.Open(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrReadSource, err)
	}
	defer func() { _ = f.Close() }()

	data, readErr := io.ReadAll(f)
	if readErr != nil {
		readErr = fmt.Errorf("%w: %s: %v", ErrReadSource, path, readErr)
		if c.policy == PolicyFailFast {
			return "", false, readErr
		}
		c.logger.Error("continuing with partial input", "file", path, "err", readErr)
		partial = true
	}

	text, decodeErr := decodeUTF8(data)
	if decodeErr != nil {
		decodeErr = fmt.Errorf("%w: %s: %v", ErrDecode, path, decodeErr)
		if c.policy == PolicyFailFast {
			return "", false, decodeErr
		}
		c.logger.Error("continuing with partial input", "file", path, "err", decodeErr)
		partial = true
	}

	return text, partial, nil
}

// decodeUTF8 strips a leading byte order mark and validates data.
// On invalid input it returns the valid prefix together with an error
// naming the offset of the first bad byte.
// The decoder would replace bad bytes with U+FFFD, so validity is checked
// on the raw bytes first.
func decodeUTF8(data []byte) (string, error) {
	var invalid error
	if !utf8.Valid(data) {
		n := validPrefixLen(data)
		invalid = fmt.Errorf("invalid byte at offset %d", n)
		data = data[:n]
	}

	stripped, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return "", err
	}
	return string(stripped), invalid
}

func validPrefixLen(b []byte) int {
	n := 0
	for n < len(b) {
		r, size := utf8.DecodeRune(b[n:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		n += size
	}
	return n
}
