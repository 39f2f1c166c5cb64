package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags that control configuration and verbosity.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// imageFlags holds image link rewriting flags.
type imageFlags struct {
	mode string // "default" keeps locations; anything else relocates
	dir  string // Target folder for relocated images
}

// cliFlags holds all flags for the mdconv command.
type cliFlags struct {
	common      commonFlags
	images      imageFlags
	mode        string
	onError     string
	logLevel    string
	version     bool
	printConfig bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
}

// addImageFlags adds image flags to a FlagSet.
func addImageFlags(fs *flag.FlagSet, f *imageFlags) {
	fs.StringVarP(&f.mode, "images", "i", "", "image mode: default, or any other value to relocate")
	fs.StringVar(&f.dir, "image-dir", "", "folder relocated images point into")
}

// parseFlags parses args (without the program name) and returns the flags
// and the remaining positional arguments. -h returns flag.ErrHelp; printing
// usage is left to the caller.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("mdconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cliFlags{}

	fs.StringVarP(&f.mode, "mode", "m", "", "typora conversion: t2y or t2m")
	fs.StringVar(&f.onError, "on-error", "", "read error policy: fail or continue")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the merged configuration and exit")

	addCommonFlags(fs, &f.common)
	addImageFlags(fs, &f.images)

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
