package mdconv

import (
	"fmt"

	"github.com/alnah/go-mdconv/internal/pipeline"
)

// MarkdownExt is the extension of every input and output file.
const MarkdownExt = ".md"

// Mode tokens select the direction for typora input.
const (
	ModeTyporaToYoudao = "t2y"
	ModeTyporaToMdHere = "t2m"
)

// ImageModeDefaultToken is the image mode token that keeps image locations.
// Every other token relocates images.
const ImageModeDefaultToken = "default"

// LoggerName is the name the converter logs under.
const LoggerName = "convert_md"

// Dialect is a Markdown authoring convention.
type Dialect int

// Supported dialects.
const (
	// Youdao fences inline math in backticks and block math in ```math.
	Youdao Dialect = iota + 1
	// Typora uses bare $x$ inline math and $$ block math.
	Typora
	// MdHere uses single-dollar delimiters for block math too.
	MdHere
)

// String returns the dialect name used in file markers.
func (d Dialect) String() string {
	switch d {
	case Youdao:
		return "youdao"
	case Typora:
		return "typora"
	case MdHere:
		return "mdhere"
	default:
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
}

// Marker returns the filename marker placed before the extension, e.g. "-youdao".
func (d Dialect) Marker() string {
	return "-" + d.String()
}

// Suffix returns the full filename suffix, e.g. "-youdao.md".
func (d Dialect) Suffix() string {
	return d.Marker() + MarkdownExt
}

// Direction is one of the supported conversions.
type Direction int

// Supported directions.
const (
	YoudaoToTypora Direction = iota + 1
	TyporaToYoudao
	TyporaToMdHere
)

// String returns a name such as "youdao2typora".
func (d Direction) String() string {
	if !d.valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return d.Source().String() + "2" + d.Target().String()
}

// Source returns the dialect the direction reads.
func (d Direction) Source() Dialect {
	switch d {
	case YoudaoToTypora:
		return Youdao
	case TyporaToYoudao, TyporaToMdHere:
		return Typora
	default:
		return 0
	}
}

// Target returns the dialect the direction writes.
func (d Direction) Target() Dialect {
	switch d {
	case YoudaoToTypora:
		return Typora
	case TyporaToYoudao:
		return Youdao
	case TyporaToMdHere:
		return MdHere
	default:
		return 0
	}
}

func (d Direction) valid() bool {
	return d >= YoudaoToTypora && d <= TyporaToMdHere
}

// ErrorPolicy decides what happens when the source cannot be fully read or decoded.
type ErrorPolicy int

const (
	// PolicyFailFast returns the error and writes nothing.
	PolicyFailFast ErrorPolicy = iota
	// PolicyBestEffort logs the error and converts whatever was read.
	PolicyBestEffort
)

// String returns "fail" or "continue", the tokens accepted by ParseErrorPolicy.
func (p ErrorPolicy) String() string {
	if p == PolicyBestEffort {
		return "continue"
	}
	return "fail"
}

// ParseErrorPolicy converts "fail" or "continue" to an ErrorPolicy.
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch s {
	case "fail", "":
		return PolicyFailFast, nil
	case "continue":
		return PolicyBestEffort, nil
	default:
		return PolicyFailFast, fmt.Errorf("unknown error policy %q (must be fail or continue)", s)
	}
}

// ImageMode controls image links when converting youdao to typora.
type ImageMode int

const (
	// ImageModeDefault keeps links pointing at the original file as file:/// URIs.
	ImageModeDefault ImageMode = iota
	// ImageModeRelocate points links at <image dir>/<file name>.
	ImageModeRelocate
)

// ParseImageMode maps the "default" token to ImageModeDefault and any
// other value to ImageModeRelocate.
func ParseImageMode(s string) ImageMode {
	if s == ImageModeDefaultToken {
		return ImageModeDefault
	}
	return ImageModeRelocate
}

// DefaultImageDir is the folder relocated images point into.
const DefaultImageDir = pipeline.DefaultImageDir

// Result describes one completed file conversion.
type Result struct {
	Direction  Direction
	InputPath  string // Absolute path of the source
	OutputPath string // Absolute path of the written file
	Content    string // Transformed text, identical to what was written
	Partial    bool   // Best-effort policy dropped unreadable input
}

// Option configures a Converter.
type Option func(*Converter)

// WithLoggerProvider makes the converter log through a logger named
// LoggerName obtained from p.
func WithLoggerProvider(p LoggerProvider) Option {
	return func(c *Converter) {
		if p != nil {
			c.logger = p.Get(LoggerName)
		}
	}
}

// WithErrorPolicy sets how read and decode errors are handled.
// Default: PolicyFailFast.
func WithErrorPolicy(p ErrorPolicy) Option {
	return func(c *Converter) {
		c.policy = p
	}
}

// WithImageMode sets how youdao image links are rewritten.
// Default: ImageModeDefault.
func WithImageMode(m ImageMode) Option {
	return func(c *Converter) {
		c.images.Relocate = m == ImageModeRelocate
	}
}

// WithImageDir sets the folder used by ImageModeRelocate.
// Default: DefaultImageDir.
func WithImageDir(dir string) Option {
	return func(c *Converter) {
		c.images.Dir = dir
	}
}
