package main

import (
	"context"
	"fmt"
	"io"

	"github.com/amp-labs/tofu/algo"
	"github.com/amp-labs/tofu/cli"
	"github.com/amp-labs/tofu/errors"
	"github.com/amp-labs/tofu/hashing"
	"github.com/amp-labs/tofu/iterator"
	"github.com/amp-labs/tofu/ledger"
	"github.com/amp-labs/tofu/logger"
	"github.com/amp-labs/tofu/set"
	"github.com/amp-labs/tofu/variant"
	"github.com/amp-labs/tofu/view"
	"gopkg.in/yaml.v3"
)

var errUnsorted = errors.New("binary search needs input in ascending order")

// prompts are the interactive hooks; tests replace them.
type prompts struct {
	selectAlgorithm func(label string, choices []string, preferred string) (string, error)
	key             func(label string) (string, error)
}

var defaultPrompts = prompts{ //nolint:gochecknoglobals
	selectAlgorithm: cli.SelectAlgorithm,
	key:             cli.PromptKey,
}

type sortResult struct {
	Values  []*variant.Value `yaml:"values"`
	Indexes []int            `yaml:"indexes,flow"`
}

type searchResult struct {
	Index int            `yaml:"index"`
	Value *variant.Value `yaml:"value,omitempty"`
}

type hashResult struct {
	Algorithm string `yaml:"algorithm"`
	Digest    string `yaml:"digest"`
}

func execute(ctx context.Context, cfg *config, data []byte, out io.Writer) error {
	return executeWith(ctx, cfg, data, out, ledger.Default(), defaultPrompts)
}

func executeWith(
	ctx context.Context, cfg *config, data []byte, out io.Writer, l *ledger.Ledger, p prompts,
) error {
	algorithm, err := cfg.chooseAlgorithm(p.selectAlgorithm)
	if err != nil {
		return err
	}

	doc, err := variant.DecodeYAML(data, variant.WithLedger(l))
	if err != nil {
		return fmt.Errorf("decoding input: %w", err)
	}

	defer variant.Erase(doc)

	logger.Get(ctx).Debug("input decoded", "kind", doc.Kind(), "algorithm", algorithm)

	opts := []algo.Option{algo.WithContext(ctx)}
	if cfg.natural {
		opts = append(opts, algo.WithComparator(variant.CompareNatural))
	}

	var result any

	switch cfg.command {
	case cmdKind:
		result = map[string]string{"kind": doc.Kind().String()}
	case cmdHash:
		result, err = hashDocument(doc, algorithm)
	case cmdSort, cmdReverse:
		result, err = reorder(cfg, doc, algorithm, opts)
	case cmdDistinct:
		result, err = distinct(doc, algorithm)
	case cmdSearch:
		result, err = search(cfg, doc, algorithm, opts, p.key, l)
	}

	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2) //nolint:mnd

	if err := enc.Encode(result); err != nil {
		return err
	}

	return enc.Close()
}

func elements(doc *variant.Value) (variant.Array, error) {
	arr, ok := doc.Payload().(variant.Array)
	if !ok {
		return nil, fmt.Errorf("%w: input is a %s, not a sequence", errors.ErrMismatch, doc.Kind())
	}

	return arr, nil
}

var hashFuncs = map[string]hashing.HashFunc{ //nolint:gochecknoglobals
	"xxh3":     hashing.XXH3,
	"sha256":   hashing.Sha256,
	"xxhash64": hashing.XXHash64,
}

func hashDocument(doc *variant.Value, algorithm string) (*hashResult, error) {
	digest, err := variant.Hash(doc, hashFuncs[algorithm])
	if err != nil {
		return nil, err
	}

	return &hashResult{Algorithm: algorithm, Digest: digest}, nil
}

// distinct drops every element equal to an earlier one.
func distinct(doc *variant.Value, algorithm string) ([]*variant.Value, error) {
	elems, err := elements(doc)
	if err != nil {
		return nil, err
	}

	seen := set.NewSet[*variant.Value](hashFuncs[algorithm])

	if err := seen.AddAll(elems...); err != nil {
		return nil, err
	}

	return seen.Entries(), nil
}

func reorder(cfg *config, doc *variant.Value, algorithm string, opts []algo.Option) (any, error) {
	elems, err := elements(doc)
	if err != nil {
		return nil, err
	}

	items := view.SortablesOf(elems)

	switch {
	case cfg.command == cmdReverse:
		err = algo.Reverse(items, len(items), opts...)
	case algorithm == "selection":
		err = algo.SortSelection(items, len(items), opts...)
	default:
		err = algo.SortInsertion(items, len(items), opts...)
	}

	if err != nil {
		return nil, err
	}

	values := make([]*variant.Value, 0, len(items))
	for _, item := range iterator.Start(items, len(items)).All() {
		values = append(values, elems[item.Index])
	}

	if !cfg.indexes {
		return values, nil
	}

	return &sortResult{Values: values, Indexes: view.Indexes(items)}, nil
}

func search(
	cfg *config,
	doc *variant.Value,
	algorithm string,
	opts []algo.Option,
	prompt func(string) (string, error),
	l *ledger.Ledger,
) (*searchResult, error) {
	elems, err := elements(doc)
	if err != nil {
		return nil, err
	}

	keyText := cfg.key
	if keyText == "" && cfg.interactive {
		if keyText, err = prompt("Search key"); err != nil {
			return nil, err
		}
	}

	if keyText == "" {
		return nil, fmt.Errorf("%w: search needs -key", errors.ErrNullptr)
	}

	key, err := variant.DecodeYAML([]byte(keyText), variant.WithLedger(l))
	if err != nil {
		return nil, fmt.Errorf("decoding key: %w", err)
	}

	defer variant.Erase(key)

	index, err := find(view.ComparablesOf(elems), key.Payload(), algorithm, opts)
	if err != nil {
		return nil, err
	}

	result := &searchResult{Index: index}
	if index != algo.NotFound {
		result.Value = elems[index]
	}

	return result, nil
}

func find(items []view.Comparable, key variant.Payload, algorithm string, opts []algo.Option) (int, error) {
	if algorithm != "binary" {
		return algo.SearchLinear(items, len(items), key, opts...)
	}

	sorted, err := algo.IsSorted(items, len(items), opts...)
	if err != nil {
		return algo.NotFound, err
	}

	if !sorted {
		return algo.NotFound, errUnsorted
	}

	return algo.SearchBinary(items, len(items), key, opts...)
}
