package pipeline

import (
	"regexp"
	"strings"
)

// LineBreak stands in for line terminators while a document is held as one
// string, so constructs spanning several lines (block formulas) are visible
// to single-pass patterns. It is a Private Use Area character and must not
// occur in the input; see ContainsLineBreak.
const LineBreak = "\uE00A" // U+E00A: Private Use Area

// crlfOrCR matches Windows and classic Mac line terminators.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// lineTerminators strips every terminator character from a single line.
var lineTerminators = strings.NewReplacer("\r", "", "\n", "")

// SplitLines splits content on \n, \r\n and \r.
// A trailing terminator yields a final empty line, so JoinLines followed by
// RestoreLines keeps it.
func SplitLines(content string) []string {
	return strings.Split(crlfOrCR.ReplaceAllString(content, "\n"), "\n")
}

// JoinLines strips terminator characters from each line and joins the lines
// with LineBreak. The result holds exactly len(lines)-1 LineBreak markers.
func JoinLines(lines []string) string {
	stripped := make([]string, len(lines))
	for i, line := range lines {
		stripped[i] = lineTerminators.Replace(line)
	}
	return strings.Join(stripped, LineBreak)
}

// RestoreLines replaces every LineBreak with a single \n.
func RestoreLines(joined string) string {
	return strings.ReplaceAll(joined, LineBreak, "\n")
}

// ContainsLineBreak reports whether s already holds the LineBreak marker,
// in which case join/restore would not round-trip.
func ContainsLineBreak(s string) bool {
	return strings.Contains(s, LineBreak)
}

// StripLineBreak removes stray LineBreak markers from s.
func StripLineBreak(s string) string {
	return strings.ReplaceAll(s, LineBreak, "")
}

// trimLineBreakEdges removes at most one LineBreak from each end of s.
func trimLineBreakEdges(s string) string {
	s = strings.TrimPrefix(s, LineBreak)
	return strings.TrimSuffix(s, LineBreak)
}
