package mdconv

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdconv/internal/fileutil"
)

// Route picks the direction for a file name and mode token.
//
//   - "*-youdao.md" converts to typora; mode is not consulted.
//   - "*-typora.md" converts to youdao for "" or "t2y" and to mdhere for "t2m".
//     Any other mode returns ErrUnknownMode.
//   - Any other name returns ErrUnroutableName.
func Route(name, mode string) (Direction, error) {
	base := filepath.Base(name)

	switch {
	case strings.HasSuffix(base, Youdao.Suffix()):
		return YoudaoToTypora, nil
	case strings.HasSuffix(base, Typora.Suffix()):
		switch mode {
		case "", ModeTyporaToYoudao:
			return TyporaToYoudao, nil
		case ModeTyporaToMdHere:
			return TyporaToMdHere, nil
		default:
			return 0, fmt.Errorf("%w: %q (must be %s or %s)", ErrUnknownMode, mode, ModeTyporaToYoudao, ModeTyporaToMdHere)
		}
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnroutableName, base)
	}
}

// Dispatch checks that path exists, routes it with Route and runs the
// matching conversion. Nothing is written when routing fails.
func (c *Converter) Dispatch(ctx context.Context, path, mode string) (*Result, error) {
	if !fileutil.FileExists(path) {
		err := fmt.Errorf("%w: %s", ErrFileNotFound, path)
		c.logger.Error("file does not exist", "file", path)
		return nil, err
	}

	dir, err := Route(path, mode)
	if err != nil {
		c.logger.Error("cannot route file", "file", path, "err", err)
		return nil, err
	}

	if dir == YoudaoToTypora && mode != "" && mode != ModeTyporaToYoudao {
		c.logger.Warn("mode is ignored for youdao input", "mode", mode)
	}

	return c.ConvertFile(ctx, path, dir)
}
