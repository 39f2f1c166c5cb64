package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Mode != ModeTyporaToYoudao {
		t.Errorf("Mode = %q, want %q", cfg.Mode, ModeTyporaToYoudao)
	}
	if cfg.Images.Mode != ImageModeDefault {
		t.Errorf("Images.Mode = %q, want %q", cfg.Images.Mode, ImageModeDefault)
	}
	if cfg.OnError != OnErrorFail {
		t.Errorf("OnError = %q, want %q", cfg.OnError, OnErrorFail)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	if err := validateFieldLength("f", "abc", 3); err != nil {
		t.Errorf("at limit: error = %v, want nil", err)
	}
	err := validateFieldLength("f", "abcd", 3)
	if !errors.Is(err, ErrFieldTooLong) {
		t.Errorf("over limit: error = %v, want ErrFieldTooLong", err)
	}
	if err != nil && !strings.Contains(err.Error(), "f (4 chars, max 3)") {
		t.Errorf("error message = %q", err.Error())
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{"defaults", func(*Config) {}, nil},
		{"mode t2m", func(c *Config) { c.Mode = ModeTyporaToMdHere }, nil},
		{"unknown mode", func(c *Config) { c.Mode = "t2x" }, ErrInvalidValue},
		{"relocate images", func(c *Config) { c.Images.Mode = "img_path" }, nil},
		{"empty image mode", func(c *Config) { c.Images.Mode = "" }, ErrInvalidValue},
		{"long image mode", func(c *Config) { c.Images.Mode = strings.Repeat("x", MaxImageModeLength+1) }, ErrFieldTooLong},
		{"long image dir", func(c *Config) { c.Images.Dir = strings.Repeat("d", MaxImageDirLength+1) }, ErrFieldTooLong},
		{"continue on error", func(c *Config) { c.OnError = OnErrorContinue }, nil},
		{"unknown error policy", func(c *Config) { c.OnError = "ignore" }, ErrInvalidValue},
		{"debug level", func(c *Config) { c.Log.Level = "debug" }, nil},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }, ErrInvalidValue},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		configPath := writeConfig(t, `mode: t2m
images:
  mode: relocate
  dir: ./media
onError: continue
log:
  level: debug
  timestamps: false
`)

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Mode != ModeTyporaToMdHere {
			t.Errorf("Mode = %q, want %q", cfg.Mode, ModeTyporaToMdHere)
		}
		if cfg.Images.Mode != "relocate" || cfg.Images.Dir != "./media" {
			t.Errorf("Images = %+v, want relocate to ./media", cfg.Images)
		}
		if cfg.OnError != OnErrorContinue {
			t.Errorf("OnError = %q, want %q", cfg.OnError, OnErrorContinue)
		}
		if cfg.Log.Level != "debug" || cfg.Log.Timestamps {
			t.Errorf("Log = %+v, want debug without timestamps", cfg.Log)
		}
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		configPath := writeConfig(t, "mode: t2m\n")

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Images.Mode != ImageModeDefault || cfg.OnError != OnErrorFail || !cfg.Log.Timestamps {
			t.Errorf("defaults not kept: %+v", cfg)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		configPath := writeConfig(t, "mode: [unclosed")

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		configPath := writeConfig(t, "mode: t2y\nimgaes:\n  mode: relocate\n")

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value returns ErrInvalidValue", func(t *testing.T) {
		configPath := writeConfig(t, "onError: retry\n")

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("unknown name returns ErrConfigNotFound with tried paths", func(t *testing.T) {
		_, err := LoadConfig("definitely-not-a-config-name-xyz")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "definitely-not-a-config-name-xyz.yaml") {
			t.Errorf("error should list tried paths, got %q", err.Error())
		}
	})
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("mdconv")
	if len(paths) < 2 {
		t.Fatalf("SearchPaths() = %v, want at least the two local candidates", paths)
	}
	if paths[0] != "mdconv.yaml" || paths[1] != "mdconv.yml" {
		t.Errorf("local candidates = %v, want [mdconv.yaml mdconv.yml]", paths[:2])
	}
	for _, p := range paths[2:] {
		if !strings.Contains(p, AppDirName) {
			t.Errorf("user path %q does not contain %q", p, AppDirName)
		}
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mdconv.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}
