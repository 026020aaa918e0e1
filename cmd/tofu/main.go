// Command tofu sorts, reverses, searches, de-duplicates and hashes YAML
// sequences of variant values.
//
// Usage:
//
//	tofu [flags] sort|reverse|search|distinct|hash|kind [file]
//
// The input document is read from file, or from standard input when file is
// absent or "-". Scalars map to kinds by their YAML tag; use !char for a
// single character. The result is written to standard output as YAML.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/amp-labs/tofu/errors"
	"github.com/amp-labs/tofu/logger"
)

func main() {
	logger.ConfigureLogging("tofu")

	ctx := context.Background()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}

		logger.Get(ctx).Error("tofu failed", "error", err, "code", errors.CodeOf(err).String())
		_, _ = fmt.Fprintln(os.Stderr, "tofu:", err)

		os.Exit(exitCode(err))
	}
}

// exitCode maps an error class to a process exit status: Mismatch exits 1,
// BadRange 2, and so on down the taxonomy.
func exitCode(err error) int {
	if code := -int(errors.CodeOf(err)); code > 0 {
		return code
	}

	return 1
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	ctx = logger.With(ctx, "command", cfg.command)

	data, err := readInput(cfg.input, stdin)
	if err != nil {
		return err
	}

	return execute(ctx, cfg, data, stdout)
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(name)
}
