package optargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOptionValidation(t *testing.T) {
	t.Run("empty long token", func(t *testing.T) {
		_, err := NewOption("", ParseString, OptionOpts[string]{})
		assert.ErrorIs(t, err, ErrInvalidLongToken)
	})

	t.Run("non-alphanumeric long token", func(t *testing.T) {
		for _, long := range []string{"foo-bar", "foo bar", "foo=bar", "föö"} {
			_, err := NewOption(long, ParseString, OptionOpts[string]{})
			assert.ErrorIs(t, err, ErrInvalidLongToken, "long token %q", long)
		}
	})

	t.Run("non-alphanumeric short token", func(t *testing.T) {
		_, err := NewOption("test", ParseString, OptionOpts[string]{Short: '-'})
		assert.ErrorIs(t, err, ErrInvalidShortToken)
	})

	t.Run("marker-only without marker", func(t *testing.T) {
		_, err := NewOption("test", ParseString, OptionOpts[string]{MarkerOnly: true})
		assert.ErrorIs(t, err, ErrMarkerOnlyWithoutValue)
	})

	t.Run("digit tokens are valid", func(t *testing.T) {
		o, err := NewOption("0", ParseString, OptionOpts[string]{Short: '0'})
		require.NoError(t, err)
		assert.Equal(t, "0", o.LongToken())
	})

	t.Run("nil parser panics", func(t *testing.T) {
		assert.Panics(t, func() {
			_, _ = NewOption[string]("test", nil, OptionOpts[string]{})
		})
	})
}

func TestPoolBuilderArgumentOrdering(t *testing.T) {
	t.Run("argument after vararg", func(t *testing.T) {
		b := NewPoolBuilder()
		require.NoError(t, b.AddVararg(NewArgument(ParseString, ArgumentOpts[string]{})))
		err := b.AddArgument(NewArgument(ParseString, ArgumentOpts[string]{}))
		assert.ErrorIs(t, err, ErrArgAfterVararg)
	})

	t.Run("vararg after vararg", func(t *testing.T) {
		b := NewPoolBuilder()
		require.NoError(t, b.AddVararg(NewArgument(ParseString, ArgumentOpts[string]{})))
		err := b.AddVararg(NewArgument(ParseString, ArgumentOpts[string]{}))
		assert.ErrorIs(t, err, ErrArgAfterVararg)
	})

	t.Run("required after optional", func(t *testing.T) {
		b := NewPoolBuilder()
		require.NoError(t, b.AddArgument(NewArgument(ParseString, ArgumentOpts[string]{Optional: true})))
		err := b.AddArgument(NewArgument(ParseString, ArgumentOpts[string]{}))
		assert.ErrorIs(t, err, ErrRequiredAfterOptional)
	})

	t.Run("optional vararg after optional", func(t *testing.T) {
		b := NewPoolBuilder()
		require.NoError(t, b.AddArgument(NewArgument(ParseString, ArgumentOpts[string]{Optional: true})))
		assert.NoError(t, b.AddVararg(NewArgument(ParseString, ArgumentOpts[string]{Optional: true})))
	})
}

func TestPoolBuilderDuplicates(t *testing.T) {
	t.Run("same declaration twice", func(t *testing.T) {
		arg := NewArgument(ParseString, ArgumentOpts[string]{})
		b := NewPoolBuilder()
		require.NoError(t, b.AddArgument(arg))
		assert.ErrorIs(t, b.AddArgument(arg), ErrDuplicateDeclaration)
	})

	t.Run("same option twice", func(t *testing.T) {
		opt, err := NewOption("test", ParseString, OptionOpts[string]{})
		require.NoError(t, err)
		b := NewPoolBuilder()
		require.NoError(t, b.AddOption(opt))
		assert.ErrorIs(t, b.AddOption(opt), ErrDuplicateDeclaration)
	})

	t.Run("colliding long tokens", func(t *testing.T) {
		a, err := NewOption("test", ParseString, OptionOpts[string]{})
		require.NoError(t, err)
		c, err := NewOption("test", ParseInt, OptionOpts[int]{})
		require.NoError(t, err)

		b := NewPoolBuilder()
		require.NoError(t, b.AddOption(a))
		assert.ErrorIs(t, b.AddOption(c), ErrDuplicateLongToken)
	})

	t.Run("colliding short tokens", func(t *testing.T) {
		a, err := NewOption("alpha", ParseString, OptionOpts[string]{Short: 'x'})
		require.NoError(t, err)
		c, err := NewOption("beta", ParseString, OptionOpts[string]{Short: 'x'})
		require.NoError(t, err)

		b := NewPoolBuilder()
		require.NoError(t, b.AddOption(a))
		assert.ErrorIs(t, b.AddOption(c), ErrDuplicateShortToken)
	})
}

func TestPoolBuildIsSnapshot(t *testing.T) {
	b := NewPoolBuilder()
	require.NoError(t, b.AddArgument(NewArgument(ParseString, ArgumentOpts[string]{})))
	pool := b.Build()

	// mutating the builder afterwards must not affect the built pool
	require.NoError(t, b.AddArgument(NewArgument(ParseString, ArgumentOpts[string]{Optional: true})))
	assert.Len(t, pool.args, 1)

	_, err := Parse("a b", pool)
	assert.ErrorIs(t, err, ErrSuperfluousArgument)
}

func TestPoolHasVararg(t *testing.T) {
	b := NewPoolBuilder()
	require.NoError(t, b.AddArgument(NewArgument(ParseString, ArgumentOpts[string]{})))
	assert.False(t, b.Build().HasVararg())

	require.NoError(t, b.AddVararg(NewArgument(ParseString, ArgumentOpts[string]{})))
	assert.True(t, b.Build().HasVararg())
}
