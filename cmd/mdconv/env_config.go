package main

import (
	"os"
	"sort"
	"strings"

	"github.com/alnah/go-mdconv/internal/config"
	"github.com/alnah/go-mdconv/internal/logging"
)

// envPrefix is shared by every recognized environment variable.
const envPrefix = "MDCONV_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string // MDCONV_CONFIG: config file name or path
	Mode       string // MDCONV_MODE: t2y or t2m
	Images     string // MDCONV_IMAGES: image mode
	ImageDir   string // MDCONV_IMAGE_DIR: folder for relocated images
	OnError    string // MDCONV_ON_ERROR: fail or continue
	LogLevel   string // MDCONV_LOG_LEVEL: debug, info, warn, error
}

// knownEnvVars lists valid MDCONV_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDCONV_CONFIG":    true,
	"MDCONV_MODE":      true,
	"MDCONV_IMAGES":    true,
	"MDCONV_IMAGE_DIR": true,
	"MDCONV_ON_ERROR":  true,
	"MDCONV_LOG_LEVEL": true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("MDCONV_CONFIG"),
		Mode:       os.Getenv("MDCONV_MODE"),
		Images:     os.Getenv("MDCONV_IMAGES"),
		ImageDir:   os.Getenv("MDCONV_IMAGE_DIR"),
		OnError:    os.Getenv("MDCONV_ON_ERROR"),
		LogLevel:   os.Getenv("MDCONV_LOG_LEVEL"),
	}
}

// unknownEnvVars returns the sorted names of unrecognized MDCONV_* variables.
func unknownEnvVars() []string {
	var names []string
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// warnUnknownEnvVars logs a warning for each unrecognized MDCONV_* variable.
// Helps catch typos like MDCONV_IMAGE_DIRS.
func warnUnknownEnvVars(logger logging.Logger) {
	for _, name := range unknownEnvVars() {
		logger.Warn("unknown environment variable (typo?)", "name", name)
	}
}

// applyEnvConfig overrides config values with the environment variables that
// are set. CLI flags are applied afterwards via mergeFlags, which gives:
// CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Mode != "" {
		cfg.Mode = env.Mode
	}
	if env.Images != "" {
		cfg.Images.Mode = env.Images
	}
	if env.ImageDir != "" {
		cfg.Images.Dir = env.ImageDir
	}
	if env.OnError != "" {
		cfg.OnError = env.OnError
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
}
