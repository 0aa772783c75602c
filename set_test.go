package optargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetTypedAccess(t *testing.T) {
	arg0 := NewArgument(ParseInt, ArgumentOpts[int]{})
	opt0, err := NewOption("verbose", ParseBool, OptionOpts[bool]{Short: 'v', Default: ptr(false)})
	require.NoError(t, err)
	pool := poolOf(t, func(b *PoolBuilder) error {
		if err := b.AddArgument(arg0); err != nil {
			return err
		}
		return b.AddOption(opt0)
	})

	set, err := Parse("7 --verbose=true", pool)
	require.NoError(t, err)

	v, ok, err := Get(set, arg0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 7, v)

	b, ok, err := Get(set, opt0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, b)
}

func TestSetDefaultFallback(t *testing.T) {
	arg0 := NewArgument(ParseString, ArgumentOpts[string]{})
	opt0, err := NewOption("mode", ParseString, OptionOpts[string]{Default: ptr("auto")})
	require.NoError(t, err)
	opt1, err := NewOption("bare", ParseString, OptionOpts[string]{})
	require.NoError(t, err)
	pool := poolOf(t, func(b *PoolBuilder) error {
		if err := b.AddArgument(arg0); err != nil {
			return err
		}
		if err := b.AddOption(opt0); err != nil {
			return err
		}
		return b.AddOption(opt1)
	})

	set, err := Parse("x", pool)
	require.NoError(t, err)

	t.Run("get never substitutes the default", func(t *testing.T) {
		_, ok, err := Get(set, opt0)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("get or default", func(t *testing.T) {
		v, ok, err := GetOrDefault(set, opt0)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "auto", v)

		_, ok, err = GetOrDefault(set, opt1)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("get or else", func(t *testing.T) {
		v, err := GetOrElse(set, opt0, "fallback")
		require.NoError(t, err)
		assert.Equal(t, "auto", v)

		v, err = GetOrElse(set, opt1, "fallback")
		require.NoError(t, err)
		assert.Equal(t, "fallback", v)
	})

	t.Run("explicit value wins", func(t *testing.T) {
		set, err := Parse("x --mode=manual", pool)
		require.NoError(t, err)
		v, ok, err := GetOrDefault(set, opt0)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "manual", v)
	})
}

func TestSetContains(t *testing.T) {
	arg0 := NewArgument(ParseString, ArgumentOpts[string]{})
	opt0, err := NewOption("mode", ParseString, OptionOpts[string]{Default: ptr("auto")})
	require.NoError(t, err)
	pool := poolOf(t, func(b *PoolBuilder) error {
		if err := b.AddArgument(arg0); err != nil {
			return err
		}
		return b.AddOption(opt0)
	})

	set, err := Parse("x", pool)
	require.NoError(t, err)

	assert.True(t, set.Contains(arg0))
	// a default value does not count as present
	assert.False(t, set.Contains(opt0))

	stranger := NewArgument(ParseString, ArgumentOpts[string]{})
	assert.False(t, set.Contains(stranger))
}

func TestSetForeignDeclaration(t *testing.T) {
	arg0 := NewArgument(ParseString, ArgumentOpts[string]{})
	pool := poolOf(t, func(b *PoolBuilder) error { return b.AddArgument(arg0) })

	set, err := Parse("x", pool)
	require.NoError(t, err)

	stranger := NewArgument(ParseString, ArgumentOpts[string]{})
	_, _, err = Get(set, stranger)
	assert.ErrorIs(t, err, ErrNotInPool)

	_, err = Varargs(set, stranger)
	assert.ErrorIs(t, err, ErrNotInPool)
}

func TestSetVarargAccess(t *testing.T) {
	arg0 := NewArgument(ParseString, ArgumentOpts[string]{})
	vararg := NewArgument(ParseString, ArgumentOpts[string]{Optional: true, Default: ptr("dflt")})
	pool := poolOf(t, func(b *PoolBuilder) error {
		if err := b.AddArgument(arg0); err != nil {
			return err
		}
		return b.AddVararg(vararg)
	})

	t.Run("scalar lookup of the vararg is rejected", func(t *testing.T) {
		set, err := Parse("x a b", pool)
		require.NoError(t, err)
		_, _, err = Get(set, vararg)
		assert.ErrorIs(t, err, ErrIsVararg)
	})

	t.Run("vararg lookup of a scalar is rejected", func(t *testing.T) {
		set, err := Parse("x", pool)
		require.NoError(t, err)
		_, err = Varargs(set, arg0)
		assert.ErrorIs(t, err, ErrNotVararg)
	})

	t.Run("accumulated in order", func(t *testing.T) {
		set, err := Parse("x a b c", pool)
		require.NoError(t, err)
		values, err := Varargs(set, vararg)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, values)
	})

	t.Run("default when absent", func(t *testing.T) {
		set, err := Parse("x", pool)
		require.NoError(t, err)
		values, err := Varargs(set, vararg)
		require.NoError(t, err)
		assert.Equal(t, []string{"dflt"}, values)
	})

	t.Run("empty without default", func(t *testing.T) {
		bare := NewArgument(ParseString, ArgumentOpts[string]{Optional: true})
		pool := poolOf(t, func(b *PoolBuilder) error { return b.AddVararg(bare) })
		set, err := Parse("", pool)
		require.NoError(t, err)
		values, err := Varargs(set, bare)
		require.NoError(t, err)
		assert.Empty(t, values)
	})
}
