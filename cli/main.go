package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/BinSquare/pstatedump"
	"github.com/BinSquare/pstatedump/internal/logging"
)

var version = "dev"

func main() {
	logger, err := logging.New(os.Getenv(logging.EnvLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "pstatedump: %v\n", err)
		os.Exit(1)
	}

	src := pstatedump.NewIORegistrySource(pstatedump.Config{Logger: logger})
	code := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, src, logger)

	_ = logger.Sync()
	os.Exit(code)
}

// run executes the command and maps its outcome to an exit status. It is the
// only place failures are reported.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, src pstatedump.Source, logger *zap.Logger) int {
	if args == nil {
		// cobra falls back to os.Args on a nil slice.
		args = []string{}
	}

	cmd := newRootCmd(src, logger)
	if err := checkArgs(args); err != nil {
		fmt.Fprintf(stderr, "pstatedump: %v\n", err)
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.Name())
		return 1
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	if errors.Is(err, errInvalidArgument) {
		fmt.Fprintf(stderr, "pstatedump: %v\n", err)
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.Name())
		return 1
	}

	logger.Debug("command failed", zap.Error(err))
	fmt.Fprintf(stderr, "pstatedump: %v\n", err)
	return 1
}
