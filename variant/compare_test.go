package variant

import (
	"math"
	"testing"

	"github.com/amp-labs/tofu/errors"
	"github.com/amp-labs/tofu/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	nan := Double(math.NaN())

	tests := []struct {
		name string
		a, b Payload
		want Ordering
	}{
		{name: "integer less", a: Integer(1), b: Integer(2), want: Less},
		{name: "integer equal", a: Integer(-4), b: Integer(-4), want: Equal},
		{name: "integer greater", a: Integer(math.MaxInt64), b: Integer(math.MinInt64), want: Greater},
		{name: "double less", a: Double(0.5), b: Double(1.5), want: Less},
		{name: "double signed zero", a: Double(math.Copysign(0, -1)), b: Double(0), want: Equal},
		{name: "nan before numbers", a: nan, b: Double(math.Inf(-1)), want: Less},
		{name: "nan equals nan", a: nan, b: nan, want: Equal},
		{name: "string bytes", a: String("B"), b: String("a"), want: Less},
		{name: "string prefix", a: String("ab"), b: String("abc"), want: Less},
		{name: "string digits", a: String("item10"), b: String("item2"), want: Less},
		{name: "char", a: Char('z'), b: Char('a'), want: Greater},
		{name: "boolean", a: Boolean(false), b: Boolean(true), want: Less},
		{name: "boolean equal", a: Boolean(true), b: Boolean(true), want: Equal},
		{name: "null", a: Null{}, b: Null{}, want: Equal},
		{name: "invalid", a: Invalid{}, b: Invalid{}, want: Equal},
		{name: "unknown", a: Unknown{}, b: Unknown{}, want: Equal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Compare(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			back, err := Compare(tt.b, tt.a)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Reverse(), back, "ordering must be antisymmetric")
		})
	}
}

func TestCompare_NeverCoerces(t *testing.T) {
	t.Parallel()

	_, err := Compare(Integer(5), String("5"))
	require.ErrorIs(t, err, errors.ErrMismatch)
	assert.Equal(t, errors.Mismatch, errors.CodeOf(err))

	_, err = Compare(Integer(1), Double(1))
	require.ErrorIs(t, err, errors.ErrMismatch)

	_, err = Compare(Null{}, Invalid{})
	require.ErrorIs(t, err, errors.ErrMismatch)
}

func TestCompare_Nil(t *testing.T) {
	t.Parallel()

	_, err := Compare(nil, Integer(1))
	require.ErrorIs(t, err, errors.ErrNullptr)

	_, err = CompareValues(nil, &Value{})
	require.ErrorIs(t, err, errors.ErrNullptr)
}

func TestCompare_Arrays(t *testing.T) {
	t.Parallel()

	l := newLedger(t)
	arr := func(ps ...Payload) Array {
		out := make(Array, 0, len(ps))
		for _, p := range ps {
			out = append(out, mustNew(t, l, p))
		}

		return out
	}

	tests := []struct {
		name string
		a, b Array
		want Ordering
	}{
		{name: "equal", a: arr(Integer(1), Integer(2)), b: arr(Integer(1), Integer(2)), want: Equal},
		{name: "first difference wins", a: arr(Integer(1), Integer(9)), b: arr(Integer(2), Integer(0)), want: Less},
		{name: "prefix first", a: arr(Integer(1)), b: arr(Integer(1), Integer(0)), want: Less},
		{name: "empty first", a: arr(), b: arr(Null{}), want: Less},
		{name: "nested", a: arr(arr(String("b"))), b: arr(arr(String("a"), String("z"))), want: Greater},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Compare(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("element mismatch", func(t *testing.T) {
		t.Parallel()

		_, err := Compare(arr(Integer(1), Integer(2)), arr(Integer(1), String("2")))
		require.ErrorIs(t, err, errors.ErrMismatch)

		attrs := logger.ErrorAttrs(err)
		require.NotEmpty(t, attrs)
		assert.Equal(t, "index", attrs[0].Key)
		assert.Equal(t, int64(1), attrs[0].Value.Int64())
	})
}

func TestCompareNatural(t *testing.T) {
	t.Parallel()

	got, err := CompareNatural(String("item2"), String("item10"))
	require.NoError(t, err)
	assert.Equal(t, Less, got)

	got, err = CompareNatural(String("a01"), String("a1"))
	require.NoError(t, err)
	assert.NotEqual(t, Equal, got, "distinct strings never compare equal")

	got, err = CompareNatural(Integer(3), Integer(2))
	require.NoError(t, err)
	assert.Equal(t, Greater, got)

	_, err = CompareNatural(String("1"), Integer(1))
	require.ErrorIs(t, err, errors.ErrMismatch)
}

func TestValue_CompareAndEquals(t *testing.T) {
	t.Parallel()

	l := newLedger(t)
	a := mustNew(t, l, String("a"))
	b := mustNew(t, l, String("b"))
	n := mustNew(t, l, Integer(1))

	got, err := a.Compare(b)
	require.NoError(t, err)
	assert.Equal(t, Less, got)

	assert.True(t, a.Equals(a))
	assert.False(t, a.Equals(b))
	assert.False(t, a.Equals(n), "values of different kinds are never equal")
}
