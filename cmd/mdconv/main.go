package main

import (
	"context"
	"os"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	ctx, stop := notifyContext(context.Background())
	err := run(ctx, os.Args[1:], DefaultEnv())
	stop()

	os.Exit(exitCodeFor(err))
}
