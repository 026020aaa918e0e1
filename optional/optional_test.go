package optional

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSome(t *testing.T) {
	t.Parallel()

	opt := Some(42)
	assert.True(t, opt.NonEmpty())
	assert.False(t, opt.Empty())

	val, ok := opt.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, val)
}

func TestNone(t *testing.T) {
	t.Parallel()

	opt := None[int]()
	assert.False(t, opt.NonEmpty())
	assert.True(t, opt.Empty())

	val, ok := opt.Get()
	assert.False(t, ok)
	assert.Equal(t, 0, val) // zero value
}

func TestZeroValueIsNone(t *testing.T) {
	t.Parallel()

	var opt Value[string]

	assert.True(t, opt.Empty())
	assert.Equal(t, "None", opt.String())
}

func TestGetOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, Some(42).GetOrElse(99))
	assert.Equal(t, 99, None[int]().GetOrElse(99))
}

func TestAll(t *testing.T) {
	t.Parallel()

	var got []string

	for v := range Some("x").All() {
		got = append(got, v)
	}

	for v := range None[string]().All() {
		got = append(got, v)
	}

	assert.Equal(t, []string{"x"}, got)
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(hello)", Some("hello").String())
	assert.Equal(t, "None", None[string]().String())
}

