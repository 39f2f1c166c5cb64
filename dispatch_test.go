package mdconv

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRoute - Name and mode routing
// ---------------------------------------------------------------------------

func TestRoute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		mode    string
		want    Direction
		wantErr error
	}{
		{"youdao default mode", "a-youdao.md", "", YoudaoToTypora, nil},
		{"youdao ignores t2m", "a-youdao.md", "t2m", YoudaoToTypora, nil},
		{"youdao ignores unknown mode", "a-youdao.md", "zzz", YoudaoToTypora, nil},
		{"typora default mode", "a-typora.md", "", TyporaToYoudao, nil},
		{"typora t2y", "a-typora.md", "t2y", TyporaToYoudao, nil},
		{"typora t2m", "dir/a-typora.md", "t2m", TyporaToMdHere, nil},
		{"typora unknown mode", "a-typora.md", "t2x", 0, ErrUnknownMode},
		{"plain name", "notes.md", "", 0, ErrUnroutableName},
		{"marker in directory only", "x-youdao.md/notes.md", "", 0, ErrUnroutableName},
		{"mdhere is not an input", "a-mdhere.md", "", 0, ErrUnroutableName},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Route(tt.file, tt.mode)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Route(%q, %q) error = %v, want %v", tt.file, tt.mode, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Route(%q, %q) = %v, want %v", tt.file, tt.mode, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConverter_Dispatch - Existence check, routing and conversion
// ---------------------------------------------------------------------------

func TestConverter_Dispatch(t *testing.T) {
	t.Parallel()

	t.Run("youdao file converted", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		conv := newTestConverter(t, &buf)
		src := writeSource(t, "n-youdao.md", "`$a$`\n")

		result, err := conv.Dispatch(context.Background(), src, "")
		if err != nil {
			t.Fatalf("Dispatch() error = %v", err)
		}
		if result.Direction != YoudaoToTypora || result.Content != "$a$\n" {
			t.Errorf("Result = %+v", result)
		}
	})

	t.Run("youdao with t2m warns", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		conv := newTestConverter(t, &buf)
		src := writeSource(t, "n-youdao.md", "x\n")

		if _, err := conv.Dispatch(context.Background(), src, ModeTyporaToMdHere); err != nil {
			t.Fatalf("Dispatch() error = %v", err)
		}
		if !strings.Contains(buf.String(), "mode is ignored") {
			t.Errorf("log = %q, want ignored-mode warning", buf.String())
		}
	})

	t.Run("typora file with t2m", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		conv := newTestConverter(t, &buf)
		src := writeSource(t, "n-typora.md", "$$\nx\n$$\n")

		result, err := conv.Dispatch(context.Background(), src, ModeTyporaToMdHere)
		if err != nil {
			t.Fatalf("Dispatch() error = %v", err)
		}
		if result.Content != "$x$\n" {
			t.Errorf("Content = %q, want %q", result.Content, "$x$\n")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		conv := newTestConverter(t, &buf)

		_, err := conv.Dispatch(context.Background(), filepath.Join(t.TempDir(), "none-youdao.md"), "")
		if !errors.Is(err, ErrFileNotFound) {
			t.Errorf("error = %v, want ErrFileNotFound", err)
		}
		if !strings.Contains(buf.String(), "does not exist") {
			t.Errorf("log = %q, want missing file error", buf.String())
		}
	})

	t.Run("unroutable name writes nothing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		conv := newTestConverter(t, &buf)
		src := writeSource(t, "notes.md", "`$a$`\n")

		_, err := conv.Dispatch(context.Background(), src, "")
		if !errors.Is(err, ErrUnroutableName) {
			t.Fatalf("error = %v, want ErrUnroutableName", err)
		}
		if !strings.Contains(buf.String(), "ERRO") {
			t.Errorf("log = %q, want an error line", buf.String())
		}

		entries, err := os.ReadDir(filepath.Dir(src))
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 {
			t.Errorf("directory has %d entries, want only the source", len(entries))
		}
	})

	t.Run("typora unknown mode writes nothing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		conv := newTestConverter(t, &buf)
		src := writeSource(t, "n-typora.md", "$a$\n")

		if _, err := conv.Dispatch(context.Background(), src, "t2q"); !errors.Is(err, ErrUnknownMode) {
			t.Fatalf("error = %v, want ErrUnknownMode", err)
		}
		if _, err := os.Stat(OutputPath(src, TyporaToYoudao)); !os.IsNotExist(err) {
			t.Error("output file should not exist")
		}
	})
}
