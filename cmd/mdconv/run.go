package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	mdconv "github.com/alnah/go-mdconv"
	"github.com/alnah/go-mdconv/internal/config"
	"github.com/alnah/go-mdconv/internal/fileutil"
	"github.com/alnah/go-mdconv/internal/hints"
	"github.com/alnah/go-mdconv/internal/logging"
	"github.com/alnah/go-mdconv/internal/yamlutil"
)

// Sentinel errors for command-line handling.
var (
	ErrMissingFileArg = errors.New("missing file argument")
	ErrTooManyArgs    = errors.New("too many arguments")
	ErrInvalidFlags   = errors.New("invalid flags")
)

// imagePathToken as the second positional selects relocated images while
// keeping the default mode.
const imagePathToken = "img_path"

// Logger names used by the CLI besides the converter's own.
const (
	cliLoggerName     = "mdconv"
	runtimeLoggerName = "runtime"
)

// invocation is what the positional arguments ask for.
type invocation struct {
	file      string
	mode      string
	imageMode string
}

// run executes one command line (without the program name).
// Errors it returns have already been reported on env.Stderr.
func run(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(env.Stdout)
		return nil
	}
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrInvalidFlags, err)
		fmt.Fprintln(env.Stderr, err)
		fmt.Fprintln(env.Stderr, "Run 'mdconv --help' for usage.")
		return err
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "mdconv %s\n", Version)
		return nil
	}

	envCfg := loadEnvConfig()
	cfg, err := resolveConfig(flags, envCfg)
	if err != nil {
		fmt.Fprintln(env.Stderr, err.Error()+hintFor(err, "", configName(flags, envCfg)))
		return err
	}

	provider, err := newLoggerProvider(cfg, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return err
	}
	logger := provider.Get(cliLoggerName)

	setMaxProcs(provider.Get(runtimeLoggerName))
	warnUnknownEnvVars(logger)

	if flags.printConfig {
		return printConfig(cfg, env)
	}

	inv, err := parsePositional(positional, cfg)
	if err != nil {
		if errors.Is(err, ErrMissingFileArg) {
			printUsage(env.Stderr)
		} else {
			fmt.Fprintln(env.Stderr, err)
		}
		return err
	}

	conv, err := newConverter(cfg, inv, provider)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		return err
	}

	// The converter logs its own failures; only the hint is added here.
	result, err := conv.Dispatch(ctx, inv.file, inv.mode)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn("interrupted before the output was written")
		}
		if hint := hintFor(err, inv.file, ""); hint != "" {
			fmt.Fprintln(env.Stderr, strings.TrimPrefix(hint, "\n"))
		}
		return err
	}

	if result.Partial {
		logger.Warn("output is incomplete: part of the source could not be read", "file", result.OutputPath)
	}
	logger.Debug("done", "direction", result.Direction.String(), "output", result.OutputPath)
	return nil
}

// resolveConfig merges defaults, config file, environment and flags, in
// increasing order of precedence, and validates the result.
func resolveConfig(flags *cliFlags, env *envConfig) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if name := configName(flags, env); name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(env, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configName returns the config requested by --config, else by MDCONV_CONFIG.
func configName(flags *cliFlags, env *envConfig) string {
	if flags.common.config != "" {
		return flags.common.config
	}
	return env.ConfigPath
}

// mergeFlags merges CLI flags into config. CLI values override config values.
// --verbose wins over --quiet, and both win over --log-level.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.mode != "" {
		cfg.Mode = flags.mode
	}
	if flags.images.mode != "" {
		cfg.Images.Mode = flags.images.mode
	}
	if flags.images.dir != "" {
		cfg.Images.Dir = flags.images.dir
	}
	if flags.onError != "" {
		cfg.OnError = flags.onError
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.common.quiet {
		cfg.Log.Level = logging.LevelError
	}
	if flags.common.verbose {
		cfg.Log.Level = logging.LevelDebug
	}
}

// parsePositional reads <file> [mode] [image-mode]. Missing values keep the
// config's. A second argument equal to img_path is taken as the image mode.
func parsePositional(args []string, cfg *config.Config) (*invocation, error) {
	if len(args) == 0 {
		return nil, ErrMissingFileArg
	}
	if len(args) > 3 {
		return nil, fmt.Errorf("%w: got %d, want at most 3 (file, mode, image mode)", ErrTooManyArgs, len(args))
	}

	inv := &invocation{
		file:      args[0],
		mode:      cfg.Mode,
		imageMode: cfg.Images.Mode,
	}

	switch len(args) {
	case 2:
		if args[1] == imagePathToken {
			inv.imageMode = args[1]
		} else {
			inv.mode = args[1]
		}
	case 3:
		inv.mode = args[1]
		inv.imageMode = args[2]
	}

	return inv, nil
}

// newLoggerProvider builds the provider every logger of the run comes from.
func newLoggerProvider(cfg *config.Config, env *Environment) (*logging.Provider, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	return logging.NewProvider(env.Stderr, logging.Options{
		Level:      level,
		Timestamps: cfg.Log.Timestamps,
	}), nil
}

// newConverter builds a converter from the merged configuration.
func newConverter(cfg *config.Config, inv *invocation, provider *logging.Provider) (*mdconv.Converter, error) {
	policy, err := mdconv.ParseErrorPolicy(cfg.OnError)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidValue, err)
	}

	return mdconv.NewConverter(
		mdconv.WithLoggerProvider(provider),
		mdconv.WithErrorPolicy(policy),
		mdconv.WithImageMode(mdconv.ParseImageMode(inv.imageMode)),
		mdconv.WithImageDir(cfg.Images.Dir),
	)
}

// setMaxProcs configures GOMAXPROCS and reports the outcome at debug level.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setMaxProcs(logger logging.Logger) {
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		logger.Debug(fmt.Sprintf(format, args...))
	}))
}

// printConfig writes the merged configuration as YAML.
func printConfig(cfg *config.Config, env *Environment) error {
	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(data)
	return err
}

// hintFor returns an actionable hint for err, or "" when none applies.
// file is the input argument and cfgName the config that was asked for.
func hintFor(err error, file, cfgName string) string {
	switch {
	case errors.Is(err, mdconv.ErrFileNotFound):
		return hints.ForMissingFile(file)
	case errors.Is(err, mdconv.ErrUnroutableName):
		return hints.ForUnroutableName(file)
	case errors.Is(err, mdconv.ErrUnknownMode):
		return hints.ForUnknownMode()
	case errors.Is(err, mdconv.ErrDecode):
		return hints.ForDecode()
	case errors.Is(err, config.ErrConfigNotFound):
		if fileutil.IsFilePath(cfgName) {
			return hints.ForConfigNotFound(nil)
		}
		return hints.ForConfigNotFound(config.SearchPaths(cfgName))
	default:
		return ""
	}
}
