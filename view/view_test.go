package view

import (
	"testing"

	"github.com/amp-labs/tofu/errors"
	"github.com/amp-labs/tofu/ledger"
	"github.com/amp-labs/tofu/variant"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(t *testing.T, l *ledger.Ledger, ps ...variant.Payload) []*variant.Value {
	t.Helper()

	out := make([]*variant.Value, 0, len(ps))

	for _, p := range ps {
		v, err := variant.New(p, variant.WithLedger(l))
		require.NoError(t, err)

		out = append(out, v)
	}

	return out
}

func TestSortablesOf(t *testing.T) {
	t.Parallel()

	l := ledger.New(ledger.Options{Logger: slogt.New(t)})
	vs := values(t, l, variant.Integer(5), variant.String("x"))

	got := SortablesOf(vs)
	require.Len(t, got, 2)

	assert.Equal(t, []int{0, 1}, Indexes(got))
	assert.Equal(t, variant.Integer(5), got[0].Payload())
	assert.Equal(t, variant.String("x"), got[1].Lookup())
	assert.Equal(t, `"x"@1`, got[1].String())
}

func TestComparablesOf(t *testing.T) {
	t.Parallel()

	l := ledger.New(ledger.Options{Logger: slogt.New(t)})
	got := ComparablesOf(values(t, l, variant.Boolean(true), variant.Null{}))

	assert.Equal(t, []variant.Payload{variant.Boolean(true), variant.Null{}}, Payloads(got))
	assert.Equal(t, "true", got[0].String())
	assert.Equal(t, got[1].Payload(), got[1].Lookup())
	assert.Equal(t, "<nil>", Comparable{}.String())
}

func TestSearchablesOf(t *testing.T) {
	t.Parallel()

	l := ledger.New(ledger.Options{Logger: slogt.New(t)})
	keys := values(t, l, variant.String("one"), variant.String("two"))
	data := values(t, l, variant.Integer(1), variant.Integer(2))

	got, err := SearchablesOf(keys, data)
	require.NoError(t, err)

	assert.Equal(t, variant.String("two"), got[1].Lookup())
	assert.Equal(t, variant.Integer(2), got[1].Payload())
	assert.Equal(t, `"one": 1`, got[0].String())

	_, err = SearchablesOf(keys, data[:1])
	require.ErrorIs(t, err, errors.ErrBadRange)
}

func TestSearchable_MissingKey(t *testing.T) {
	t.Parallel()

	s := Searchable{Data: variant.Integer(1)}

	assert.Nil(t, s.Lookup())
	assert.Equal(t, "<nil>: 1", s.String())
}
