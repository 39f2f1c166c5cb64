// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdconv/internal/config"
)

// ForUnroutableName returns a hint naming the suffixes the dispatcher accepts.
func ForUnroutableName(name string) string {
	stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if stem == "" {
		stem = "notes"
	}
	return format("rename to " + stem + "-youdao.md or " + stem + "-typora.md")
}

// ForMissingFile returns a hint for a relative input path that does not exist.
func ForMissingFile(path string) string {
	if filepath.IsAbs(path) {
		return ""
	}
	return format("relative paths are resolved from the current directory")
}

// ForUnknownMode returns a hint listing the accepted mode tokens.
func ForUnknownMode() string {
	return format("use " + config.ModeTyporaToYoudao + " (typora to youdao) or " +
		config.ModeTyporaToMdHere + " (typora to mdhere)")
}

// ForDecode returns hints for input that is not valid UTF-8.
func ForDecode() string {
	return formatHints([]string{
		"save the file as UTF-8",
		"or pass --on-error continue to convert the readable part",
	})
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-mdconv/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/"+config.AppDirName+"/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
