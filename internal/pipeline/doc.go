// Package pipeline implements the text rewriting behind each conversion
// direction.
//
// A document is split into lines and joined with the LineBreak marker, so
// that block formulas spanning several lines can be matched by single-pass
// regular expressions. After the substitutions run, every marker is turned
// back into "\n":
//   - youdao to typora: `$x$` becomes $x$, ```math blocks become $$ blocks,
//     drive-letter image links become file:/// URIs or relocated file names
//   - typora to youdao: the reverse, with file:/// URIs turned into drive paths
//   - typora to mdhere: $$ blocks become single-dollar formulas
//
// Markdown is not parsed. Only formulas and image links are recognized, and
// they are recognized anywhere in the text, code blocks included.
package pipeline
