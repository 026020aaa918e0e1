package main

import (
	"flag"
	"fmt"
	"io"
	"slices"

	"github.com/amp-labs/tofu/envutil"
	"github.com/amp-labs/tofu/errors"
	"github.com/amp-labs/tofu/xform"
)

const (
	cmdSort     = "sort"
	cmdReverse  = "reverse"
	cmdSearch   = "search"
	cmdHash     = "hash"
	cmdKind     = "kind"
	cmdDistinct = "distinct"
)

var errUsage = errors.New("usage: tofu [flags] sort|reverse|search|distinct|hash|kind [file]")

// algorithms lists the choices of -algorithm per command. The first entry is
// the default.
var algorithms = map[string][]string{ //nolint:gochecknoglobals
	cmdSort:     {"insertion", "selection"},
	cmdSearch:   {"linear", "binary"},
	cmdHash:     {"xxh3", "sha256", "xxhash64"},
	cmdDistinct: {"xxh3", "sha256", "xxhash64"},
}

type config struct {
	command     string
	input       string
	algorithm   string
	preferred   string
	key         string
	natural     bool
	indexes     bool
	interactive bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{
		preferred: envutil.Map(envutil.String("TOFU_ALGORITHM", envutil.Default("")), xform.TrimString).
			Map(xform.ToLower).
			ValueOrElse(""),
	}

	fs := flag.NewFlagSet("tofu", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.algorithm, "algorithm", "",
		"sort: insertion|selection, search: linear|binary, hash and distinct: xxh3|sha256|xxhash64 (env TOFU_ALGORITHM)")
	fs.StringVar(&cfg.key, "key", "", "search key as a YAML scalar, e.g. 4 or '!char x'")
	fs.BoolVar(&cfg.natural, "natural", false, "order strings naturally, so item2 precedes item10")
	fs.BoolVar(&cfg.indexes, "indexes", false, "also print the original index of every element")
	fs.BoolVar(&cfg.interactive, "i", false, "prompt for the algorithm and the search key")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() < 1 || fs.NArg() > 2 { //nolint:mnd
		fs.Usage()

		return nil, errUsage
	}

	cfg.command = fs.Arg(0)
	cfg.input = fs.Arg(1)

	switch cfg.command {
	case cmdSort, cmdReverse, cmdSearch, cmdDistinct, cmdHash, cmdKind:
	default:
		return nil, fmt.Errorf("%w: unknown command %q", errUsage, cfg.command)
	}

	return cfg, nil
}

// chooseAlgorithm validates the -algorithm flag for the command, or asks for
// one when running interactively. TOFU_ALGORITHM applies only to commands that
// offer it; the others use their first choice.
func (c *config) chooseAlgorithm(selectFn func(label string, choices []string, preferred string) (string, error)) (string, error) {
	choices := algorithms[c.command]
	if len(choices) == 0 {
		return "", nil
	}

	if c.algorithm != "" && !c.interactive {
		return xform.OneOf(choices...)(c.algorithm)
	}

	preferred := c.algorithm
	if preferred == "" {
		preferred = choices[0]

		if slices.Contains(choices, c.preferred) {
			preferred = c.preferred
		}
	}

	if c.interactive {
		return selectFn("Algorithm for "+c.command, choices, preferred)
	}

	return preferred, nil
}
