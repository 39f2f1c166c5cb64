package pipeline

// Notes:
// - Image link rewriting is exercised end to end in mdtransform_test.go; this
//   file covers the path helpers directly, including Windows separators on
//   any host OS.
// These are acceptable gaps: we test observable behavior, not implementation details.

import "testing"

// ---------------------------------------------------------------------------
// TestDriveToFileURL / TestFileURLToDrive - URI forms
// ---------------------------------------------------------------------------

func TestDriveToFileURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		drive   string
		imgPath string
		want    string
	}{
		{"forward slashes", "C:", "img/pic.png", "file:///C:/img/pic.png"},
		{"backslashes", "D:", `a\b\c.png`, "file:///D:/a/b/c.png"},
		{"spaces kept raw", "C:", "my img/pic.png", "file:///C:/my img/pic.png"},
		{"lowercase drive", "e:", "x.png", "file:///e:/x.png"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := driveToFileURL(tt.drive, tt.imgPath); got != tt.want {
				t.Errorf("driveToFileURL(%q, %q) = %q, want %q", tt.drive, tt.imgPath, got, tt.want)
			}
		})
	}
}

func TestFileURLToDrive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		drive   string
		imgPath string
		want    string
	}{
		{"plain", "C:", "img/pic.png", "C:/img/pic.png"},
		{"percent-encoded space", "C:", "my%20img/pic.png", "C:/my img/pic.png"},
		{"malformed escape kept", "C:", "100%/pic.png", "C:/100%/pic.png"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileURLToDrive(tt.drive, tt.imgPath); got != tt.want {
				t.Errorf("fileURLToDrive(%q, %q) = %q, want %q", tt.drive, tt.imgPath, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRelocatedPath - Relocated image targets
// ---------------------------------------------------------------------------

func TestRelocatedPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dir     string
		imgPath string
		want    string
	}{
		{"default dir", "", "img/pic.png", "./images/pic.png"},
		{"custom dir", "media", "a/b/c.gif", "media/c.gif"},
		{"custom dir trailing slash", "media/", "c.gif", "media/c.gif"},
		{"backslash path", "", `a\b\c.jpg`, "./images/c.jpg"},
		{"no directory", "", "pic.png", "./images/pic.png"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := ImageRewrite{Relocate: true, Dir: tt.dir}
			if got := r.relocatedPath(tt.imgPath); got != tt.want {
				t.Errorf("relocatedPath(%q) = %q, want %q", tt.imgPath, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestBaseName - Last path segment
// ---------------------------------------------------------------------------

func TestBaseName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"pic.png", "pic.png"},
		{"a/b/pic.png", "pic.png"},
		{`a\b\pic.png`, "pic.png"},
		{`a/b\pic.png`, "pic.png"},
		{"dir/", "dir"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := baseName(tt.input); got != tt.want {
				t.Errorf("baseName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
