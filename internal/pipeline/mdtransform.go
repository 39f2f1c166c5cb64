package pipeline

import (
	"context"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// formulaBody matches the inside of an inline formula: no dollar, no
// backtick, no CJK ideograph (U+4E00-U+9FA5) and no line break.
const formulaBody = "[^\\x{4e00}-\\x{9fa5}$`" + LineBreak + "]+"

// Precompiled regex patterns for performance.
// Each construct has one pattern per dialect.
var (
	// Inline formula: `$x$` (youdao) and $x$ (typora).
	youdaoInline = regexp.MustCompile("`(\\$" + formulaBody + "\\$)`")
	typoraInline = regexp.MustCompile("\\$(" + formulaBody + ")\\$")

	// Block formula: ```math ... ``` (youdao) and $$ ... $$ (typora).
	youdaoBlock = regexp.MustCompile("```math([^`]+)```")
	typoraBlock = regexp.MustCompile(`\$\$([^$]+)\$\$`)

	// Image URL: bare or file:/// drive-letter path (youdao) and file:/// URI (typora).
	youdaoImage = regexp.MustCompile(`!\[([^\]` + LineBreak + `]*)\]\((?:file:///)?([A-Za-z]:)[/\\]+([^)` + LineBreak + `]+)\)`)
	typoraImage = regexp.MustCompile(`!\[([^\]` + LineBreak + `]*)\]\(file:///([A-Za-z]:)/+([^)` + LineBreak + `]+)\)`)
)

// Rewriter defines the contract for one conversion direction.
// Rewrite receives the document with lines joined by LineBreak and returns
// it in the same joined form.
type Rewriter interface {
	Rewrite(ctx context.Context, joined string) string
}

// YoudaoToTypora unfences inline and block math and normalizes image links.
type YoudaoToTypora struct {
	Images ImageRewrite
}

// Rewrite applies the youdao to typora substitutions in order:
// inline formulas, block formulas, then images.
func (r *YoudaoToTypora) Rewrite(ctx context.Context, joined string) string {
	if ctx.Err() != nil {
		return joined
	}

	joined = unfenceInlineFormulas(joined)
	joined = unfenceBlockFormulas(joined)
	joined = r.Images.toTypora(joined)
	return joined
}

// TyporaToYoudao fences bare math and turns file:/// image URIs back into
// drive paths.
type TyporaToYoudao struct{}

// Rewrite applies the typora to youdao substitutions. Blocks go first so that
// their $$ delimiters are gone before inline formulas are scanned.
func (r *TyporaToYoudao) Rewrite(ctx context.Context, joined string) string {
	if ctx.Err() != nil {
		return joined
	}

	joined = fenceBlockFormulas(joined)
	joined = fenceInlineFormulas(joined)
	joined = imagesToDrivePaths(joined)
	return joined
}

// TyporaToMdHere reduces $$ block math to single-dollar delimiters and
// leaves everything else alone.
type TyporaToMdHere struct{}

// Rewrite collapses block formulas.
func (r *TyporaToMdHere) Rewrite(ctx context.Context, joined string) string {
	if ctx.Err() != nil {
		return joined
	}

	return collapseBlockFormulas(joined)
}

// Apply runs r over content: split into lines, join, rewrite, restore.
func Apply(ctx context.Context, r Rewriter, content string) string {
	joined := JoinLines(SplitLines(content))
	return RestoreLines(r.Rewrite(ctx, joined))
}

// unfenceInlineFormulas turns `$x$` into $x$.
func unfenceInlineFormulas(content string) string {
	return youdaoInline.ReplaceAllString(content, "$1")
}

// unfenceBlockFormulas turns ```math ... ``` into $$ ... $$.
func unfenceBlockFormulas(content string) string {
	return youdaoBlock.ReplaceAllString(content, "$$$$${1}$$$$")
}

// fenceBlockFormulas turns $$ ... $$ into a ```math block. One line break is
// trimmed from each edge of the body before the fence adds its own, so a
// block produced by unfenceBlockFormulas comes back unchanged.
func fenceBlockFormulas(content string) string {
	return typoraBlock.ReplaceAllStringFunc(content, func(m string) string {
		body := trimLineBreakEdges(typoraBlock.FindStringSubmatch(m)[1])
		return "```math" + LineBreak + body + LineBreak + "```"
	})
}

// collapseBlockFormulas turns $$ ... $$ into $...$, dropping the line breaks
// next to the delimiters.
func collapseBlockFormulas(content string) string {
	return typoraBlock.ReplaceAllStringFunc(content, func(m string) string {
		body := trimLineBreakEdges(typoraBlock.FindStringSubmatch(m)[1])
		return "$" + body + "$"
	})
}

// fenceInlineFormulas wraps bare $x$ in backticks.
// A candidate is rejected when the opening $ follows a $, backtick or
// backslash, or when the closing $ precedes a $ or backtick. A body padded
// with whitespace is only accepted between whitespace, punctuation or line
// edges, and a body that starts with a digit and holds whitespace reads as
// prices ("$5 and $"). Rejected candidates are retried one byte further on,
// so "$5 and $x$" still fences $x$.
func fenceInlineFormulas(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	pos := 0
	for pos < len(content) {
		loc := typoraInline.FindStringSubmatchIndex(content[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		body := content[pos+loc[2] : pos+loc[3]]

		if !isInlineFormula(content, start, end, body) {
			b.WriteString(content[pos : start+1])
			pos = start + 1
			continue
		}

		b.WriteString(content[pos:start])
		b.WriteString("`")
		b.WriteString(content[start:end])
		b.WriteString("`")
		pos = end
	}
	b.WriteString(content[pos:])
	return b.String()
}

// isInlineFormula checks the surroundings of a $body$ candidate spanning
// content[start:end].
func isInlineFormula(content string, start, end int, body string) bool {
	prev, next := ' ', ' '
	if start > 0 {
		prev, _ = utf8.DecodeLastRuneInString(content[:start])
	}
	if end < len(content) {
		next, _ = utf8.DecodeRuneInString(content[end:])
	}

	if prev == '$' || prev == '`' || prev == '\\' || next == '$' || next == '`' {
		return false
	}

	first, _ := utf8.DecodeRuneInString(body)
	last, _ := utf8.DecodeLastRuneInString(body)
	if unicode.IsSpace(first) || unicode.IsSpace(last) {
		if !isFormulaEdge(prev) || !isFormulaEdge(next) {
			return false
		}
	}

	trimmed := strings.TrimLeftFunc(body, unicode.IsSpace)
	if trimmed != "" && trimmed[0] >= '0' && trimmed[0] <= '9' &&
		strings.IndexFunc(trimmed, unicode.IsSpace) >= 0 {
		return false
	}
	return true
}

// isFormulaEdge reports whether r may sit outside a whitespace-padded formula.
// Line edges are passed in as a space.
func isFormulaEdge(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r) || string(r) == LineBreak
}
