package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdconv/internal/fileutil"
	"github.com/alnah/go-mdconv/internal/logging"
	"github.com/alnah/go-mdconv/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Mode tokens select the direction for typora input.
const (
	ModeTyporaToYoudao = "t2y"
	ModeTyporaToMdHere = "t2m"
)

// ImageModeDefault keeps image links pointing at their original location.
// Any other image mode relocates them.
const ImageModeDefault = "default"

// Error policies.
const (
	OnErrorFail     = "fail"
	OnErrorContinue = "continue"
)

// AppDirName is the directory under the user config dir searched for configs.
const AppDirName = "go-mdconv"

// Field length limits.
const (
	MaxImageModeLength = 50
	MaxImageDirLength  = 4096
)

// Config holds all configuration for a conversion run.
type Config struct {
	Mode    string       `yaml:"mode"`    // "t2y" or "t2m" (typora input only)
	Images  ImagesConfig `yaml:"images"`  // Image link rewriting
	OnError string       `yaml:"onError"` // "fail" or "continue"
	Log     LogConfig    `yaml:"log"`
}

// ImagesConfig defines image link rewriting for youdao input.
type ImagesConfig struct {
	Mode string `yaml:"mode"` // "default" keeps locations; anything else relocates
	Dir  string `yaml:"dir"`  // Target folder for relocated images (default: ./images)
}

// LogConfig defines console logging.
type LogConfig struct {
	Level      string `yaml:"level"`      // debug, info, warn, error
	Timestamps bool   `yaml:"timestamps"` // Prefix log lines with the time
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Mode:    ModeTyporaToYoudao,
		Images:  ImagesConfig{Mode: ImageModeDefault, Dir: "./images"},
		OnError: OnErrorFail,
		Log:     LogConfig{Level: logging.LevelInfo, Timestamps: true},
	}
}

// Validate checks enumerated values and field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct or merge a Config manually.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeTyporaToYoudao, ModeTyporaToMdHere:
		// valid
	default:
		return fmt.Errorf("%w: mode %q (must be t2y or t2m)", ErrInvalidValue, c.Mode)
	}

	if c.Images.Mode == "" {
		return fmt.Errorf("%w: images.mode cannot be empty", ErrInvalidValue)
	}
	if err := validateFieldLength("images.mode", c.Images.Mode, MaxImageModeLength); err != nil {
		return err
	}
	if err := validateFieldLength("images.dir", c.Images.Dir, MaxImageDirLength); err != nil {
		return err
	}

	switch c.OnError {
	case OnErrorFail, OnErrorContinue:
		// valid
	default:
		return fmt.Errorf("%w: onError %q (must be fail or continue)", ErrInvalidValue, c.OnError)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidValue, err)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Values missing from the file keep their DefaultConfig value.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists, in lookup order, the files tried for a config name:
// the current directory then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
