package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/amp-labs/tofu/errors"
	"github.com/amp-labs/tofu/ledger"
	"github.com/amp-labs/tofu/variant"
	"github.com/amp-labs/tofu/xform"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func noPrompts(t *testing.T) prompts {
	t.Helper()

	return prompts{
		selectAlgorithm: func(string, []string, string) (string, error) {
			t.Fatal("unexpected algorithm prompt")

			return "", nil
		},
		key: func(string) (string, error) {
			t.Fatal("unexpected key prompt")

			return "", nil
		},
	}
}

func exec(t *testing.T, cfg *config, input string, p prompts) (string, error) {
	t.Helper()

	l := ledger.New(ledger.Options{Logger: slogt.New(t)})

	var out bytes.Buffer

	err := executeWith(context.Background(), cfg, []byte(input), &out, l, p)

	assert.Zero(t, l.Live(), "every decoded value must be erased")
	assert.Zero(t, l.DoubleReleases())

	return out.String(), err
}

func TestSort(t *testing.T) {
	t.Parallel()

	for _, algorithm := range []string{"", "insertion", "selection"} {
		t.Run(algorithm, func(t *testing.T) {
			t.Parallel()

			out, err := exec(t, &config{command: cmdSort, algorithm: algorithm}, "[5, 3, 3, 1, 4]", noPrompts(t))
			require.NoError(t, err)

			var got []int
			require.NoError(t, yaml.Unmarshal([]byte(out), &got))
			assert.Equal(t, []int{1, 3, 3, 4, 5}, got)
		})
	}
}

func TestSort_Indexes(t *testing.T) {
	t.Parallel()

	out, err := exec(t, &config{command: cmdSort, indexes: true}, "[5, 3, 3, 1, 4]", noPrompts(t))
	require.NoError(t, err)

	var got struct {
		Values  []int `yaml:"values"`
		Indexes []int `yaml:"indexes"`
	}

	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, []int{1, 3, 3, 4, 5}, got.Values)
	assert.Equal(t, []int{3, 1, 2, 4, 0}, got.Indexes)
}

func TestSort_Natural(t *testing.T) {
	t.Parallel()

	out, err := exec(t, &config{command: cmdSort, natural: true}, "[item10, item2, item1]", noPrompts(t))
	require.NoError(t, err)

	var got []string
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"item1", "item2", "item10"}, got)
}

func TestSort_KeepsKinds(t *testing.T) {
	t.Parallel()

	out, err := exec(t, &config{command: cmdSort}, "[!char c, !char a, !char b]", noPrompts(t))
	require.NoError(t, err)

	v, err := variant.DecodeYAML([]byte(out), variant.WithLedger(ledger.New(ledger.Options{})))
	require.NoError(t, err)
	assert.Equal(t, "['a', 'b', 'c']", v.String())
}

func TestReverse(t *testing.T) {
	t.Parallel()

	out, err := exec(t, &config{command: cmdReverse, indexes: true}, "[a, b, c]", noPrompts(t))
	require.NoError(t, err)

	var got struct {
		Values  []string `yaml:"values"`
		Indexes []int    `yaml:"indexes"`
	}

	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"c", "b", "a"}, got.Values)
	assert.Equal(t, []int{2, 1, 0}, got.Indexes)
}

type searchOutput struct {
	Index int `yaml:"index"`
	Value any `yaml:"value"`
}

func TestSearch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		algorithm string
		input     string
		key       string
		want      searchOutput
	}{
		{name: "binary hit", algorithm: "binary", input: "[1, 3, 3, 4, 5]", key: "4", want: searchOutput{Index: 3, Value: 4}},
		{name: "linear miss", algorithm: "linear", input: "[5, 3, 3, 1, 4]", key: "9", want: searchOutput{Index: -1}},
		{name: "default linear", input: "[x, y]", key: "y", want: searchOutput{Index: 1, Value: "y"}},
		{name: "char key", input: "[!char a, !char b]", key: "!char b", want: searchOutput{Index: 1, Value: "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &config{command: cmdSearch, algorithm: tt.algorithm, key: tt.key}

			out, err := exec(t, cfg, tt.input, noPrompts(t))
			require.NoError(t, err)

			var got searchOutput
			require.NoError(t, yaml.Unmarshal([]byte(out), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearch_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  *config
		doc  string
		want error
	}{
		{name: "unsorted binary", cfg: &config{command: cmdSearch, algorithm: "binary", key: "1"}, doc: "[3, 1]", want: errUnsorted},
		{name: "missing key", cfg: &config{command: cmdSearch}, doc: "[1]", want: errors.ErrNullptr},
		{name: "key kind", cfg: &config{command: cmdSearch, key: "'1'"}, doc: "[1]", want: errors.ErrMismatch},
		{name: "bad key", cfg: &config{command: cmdSearch, key: "{a: 1}"}, doc: "[1]", want: errors.ErrMismatch},
		{name: "not a sequence", cfg: &config{command: cmdSearch, key: "1"}, doc: "1", want: errors.ErrMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := exec(t, tt.cfg, tt.doc, noPrompts(t))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	_, err := exec(t, &config{command: cmdSort}, "[1, two]", noPrompts(t))
	require.ErrorIs(t, err, errors.ErrMismatch)
	assert.Equal(t, 1, exitCode(err))

	_, err = exec(t, &config{command: cmdSort}, "a: 1", noPrompts(t))
	require.ErrorIs(t, err, errors.ErrMismatch)

	_, err = exec(t, &config{command: cmdSort, algorithm: "bubble"}, "[1]", noPrompts(t))
	require.ErrorIs(t, err, xform.ErrInvalidChoice)
	assert.Equal(t, 5, exitCode(err))
}

func TestInteractive(t *testing.T) {
	t.Parallel()

	var offered []string

	p := prompts{
		selectAlgorithm: func(_ string, choices []string, preferred string) (string, error) {
			offered = choices

			assert.Equal(t, "binary", preferred)

			return "linear", nil
		},
		key: func(string) (string, error) {
			return "3", nil
		},
	}

	cfg := &config{command: cmdSearch, algorithm: "binary", interactive: true}

	out, err := exec(t, cfg, "[5, 3]", p)
	require.NoError(t, err)

	assert.Equal(t, []string{"linear", "binary"}, offered)

	var got searchOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1, got.Index)
}

func TestHash(t *testing.T) {
	t.Parallel()

	first, err := exec(t, &config{command: cmdHash}, "[1, [a, b]]", noPrompts(t))
	require.NoError(t, err)

	second, err := exec(t, &config{command: cmdHash}, "[1, [a, b]]", noPrompts(t))
	require.NoError(t, err)

	other, err := exec(t, &config{command: cmdHash, algorithm: "sha256"}, "[1, [a, b]]", noPrompts(t))
	require.NoError(t, err)

	var got hashResult
	require.NoError(t, yaml.Unmarshal([]byte(first), &got))

	assert.Equal(t, "xxh3", got.Algorithm)
	assert.NotEmpty(t, got.Digest)
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
}

func TestKind(t *testing.T) {
	t.Parallel()

	out, err := exec(t, &config{command: cmdKind}, "!char z", noPrompts(t))
	require.NoError(t, err)
	assert.Equal(t, "kind: char\n", out)
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	cfg, err := parseFlags([]string{"-algorithm", "selection", "-indexes", "sort", "in.yaml"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, &config{command: cmdSort, input: "in.yaml", algorithm: "selection", indexes: true}, cfg)

	_, err = parseFlags([]string{}, io.Discard)
	require.ErrorIs(t, err, errUsage)

	_, err = parseFlags([]string{"shuffle"}, io.Discard)
	require.ErrorIs(t, err, errUsage)

	_, err = parseFlags([]string{"sort", "a", "b"}, io.Discard)
	require.ErrorIs(t, err, errUsage)
}

//nolint:paralleltest
func TestRun_FromFileAndEnv(t *testing.T) {
	t.Setenv("TOFU_ALGORITHM", " Selection ")

	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- 2\n- 1\n"), 0o600))

	var out bytes.Buffer

	require.NoError(t, run(context.Background(), []string{"sort", path}, nil, &out, io.Discard))
	assert.Equal(t, "- 1\n- 2\n", out.String())

	out.Reset()

	require.NoError(t, run(context.Background(), []string{"kind", "-"}, bytes.NewBufferString("[]"), &out, io.Discard))
	assert.Equal(t, "kind: array\n", out.String())

	out.Reset()

	require.NoError(t, run(context.Background(), []string{"-key", "2", "search"}, bytes.NewBufferString("[1, 2]"), &out, io.Discard))
	assert.Equal(t, "index: 1\nvalue: 2\n", out.String())
}

func TestChooseAlgorithm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config
		want string
		err  error
	}{
		{name: "default", cfg: config{command: cmdSort}, want: "insertion"},
		{name: "env applies", cfg: config{command: cmdSort, preferred: "selection"}, want: "selection"},
		{name: "env for another command", cfg: config{command: cmdSort, preferred: "binary"}, want: "insertion"},
		{name: "env for search", cfg: config{command: cmdSearch, preferred: "binary"}, want: "binary"},
		{name: "flag beats env", cfg: config{command: cmdSort, algorithm: "insertion", preferred: "selection"}, want: "insertion"},
		{name: "flag is strict", cfg: config{command: cmdSort, algorithm: "binary"}, err: xform.ErrInvalidChoice},
		{name: "no choices", cfg: config{command: cmdKind, algorithm: "binary"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.cfg.chooseAlgorithm(noPrompts(t).selectAlgorithm)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDistinct(t *testing.T) {
	t.Parallel()

	out, err := exec(t, &config{command: cmdDistinct}, "[3, '3', 1, 3, [a], 1, [a], !char a, a]", noPrompts(t))
	require.NoError(t, err)

	v, err := variant.DecodeYAML([]byte(out), variant.WithLedger(ledger.New(ledger.Options{})))
	require.NoError(t, err)
	assert.Equal(t, `[3, "3", 1, ["a"], 'a', "a"]`, v.String())
}
