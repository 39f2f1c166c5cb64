package mdconv

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdconv/internal/fileutil"
	"github.com/alnah/go-mdconv/internal/logging"
	"github.com/alnah/go-mdconv/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.Rewriter = (*pipeline.YoudaoToTypora)(nil)
	_ pipeline.Rewriter = (*pipeline.TyporaToYoudao)(nil)
	_ pipeline.Rewriter = (*pipeline.TyporaToMdHere)(nil)
	_ LoggerProvider    = (*logging.Provider)(nil)
)

// Logger is the logging surface the converter writes to.
type Logger = logging.Logger

// LoggerProvider hands out named loggers.
type LoggerProvider interface {
	Get(name string) Logger
}

// Converter rewrites Markdown documents between dialects.
// A Converter holds no per-document state and may be reused.
type Converter struct {
	logger Logger
	policy ErrorPolicy
	images pipeline.ImageRewrite
}

// NewConverter creates a Converter. Without options it logs nowhere, fails
// fast on read errors and keeps image locations.
// Returns ErrInvalidImageDir if the image directory cannot appear in a link.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		logger: logging.Discard().Get(LoggerName),
		policy: PolicyFailFast,
		images: pipeline.ImageRewrite{Dir: DefaultImageDir},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.images.Dir == "" {
		c.images.Dir = DefaultImageDir
	}
	if strings.ContainsAny(c.images.Dir, ")\r\n") {
		return nil, fmt.Errorf("%w: %q cannot contain ')' or line breaks", ErrInvalidImageDir, c.images.Dir)
	}

	return c, nil
}

// YoudaoToTypora converts a youdao file and writes <stem>-typora.md next to it.
func (c *Converter) YoudaoToTypora(ctx context.Context, path string) (*Result, error) {
	return c.ConvertFile(ctx, path, YoudaoToTypora)
}

// TyporaToYoudao converts a typora file and writes <stem>-youdao.md next to it.
func (c *Converter) TyporaToYoudao(ctx context.Context, path string) (*Result, error) {
	return c.ConvertFile(ctx, path, TyporaToYoudao)
}

// TyporaToMdHere converts a typora file and writes <stem>-mdhere.md next to it.
func (c *Converter) TyporaToMdHere(ctx context.Context, path string) (*Result, error) {
	return c.ConvertFile(ctx, path, TyporaToMdHere)
}

// ConvertFile reads path, rewrites it in direction dir and writes the result
// to the sibling output file. The output is only written once the whole
// document has been transformed, and it is replaced atomically.
//
// Under PolicyFailFast any read or decode error is returned and nothing is
// written. Under PolicyBestEffort the error is logged and whatever could be
// read is converted; Result.Partial is then true.
func (c *Converter) ConvertFile(ctx context.Context, path string, dir Direction) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !dir.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}

	inputPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: resolving %s: %v", ErrReadSource, path, err)
	}
	outputPath := OutputPath(inputPath, dir)

	c.logger.Info("start converting", "file", inputPath, "direction", dir)

	text, partial, err := c.readSource(inputPath)
	if err != nil {
		c.logger.Error("conversion aborted", "file", inputPath, "err", err)
		return nil, err
	}

	content, err := c.transform(ctx, text, dir)
	if err != nil {
		c.logger.Error("conversion aborted", "file", inputPath, "err", err)
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := fileutil.WriteFileAtomic(outputPath, content); err != nil {
		c.logger.Error("conversion aborted", "file", outputPath, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	c.logger.Info("converted", "file", inputPath, "output", outputPath)

	return &Result{
		Direction:  dir,
		InputPath:  inputPath,
		OutputPath: outputPath,
		Content:    content,
		Partial:    partial,
	}, nil
}

// Convert rewrites in-memory Markdown text in direction dir.
// Line breaks in the returned text are always "\n".
func (c *Converter) Convert(ctx context.Context, dir Direction, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !dir.valid() {
		return "", fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
	return c.transform(ctx, text, dir)
}

// transform guards against the line-break marker, then runs the rewriter.
func (c *Converter) transform(ctx context.Context, text string, dir Direction) (string, error) {
	if pipeline.ContainsLineBreak(text) {
		if c.policy == PolicyFailFast {
			return "", ErrSentinelCollision
		}
		c.logger.Warn("removing reserved line-break marker from source", "err", ErrSentinelCollision)
		text = pipeline.StripLineBreak(text)
	}

	content := pipeline.Apply(ctx, c.rewriter(dir), text)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return content, nil
}

func (c *Converter) rewriter(dir Direction) pipeline.Rewriter {
	switch dir {
	case YoudaoToTypora:
		return &pipeline.YoudaoToTypora{Images: c.images}
	case TyporaToYoudao:
		return &pipeline.TyporaToYoudao{}
	default:
		return &pipeline.TyporaToMdHere{}
	}
}

// OutputPath returns the file a conversion of input in direction dir writes:
// input with its source dialect suffix replaced by the target suffix.
// When input lacks the source suffix only its extension is replaced.
func OutputPath(input string, dir Direction) string {
	stem, ok := strings.CutSuffix(input, dir.Source().Suffix())
	if !ok {
		stem = strings.TrimSuffix(input, filepath.Ext(input))
	}
	return stem + dir.Target().Suffix()
}
