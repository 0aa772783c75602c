package optargs

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ArgumentOpts configures an Argument. Default is a pointer so that a
// declared default value of the zero value stays distinguishable from no
// default at all.
type ArgumentOpts[T any] struct {
	Optional  bool
	Default   *T
	Validator Validator[T]
}

// Argument is a positional, index-resolved input value declaration.
//
// Within a pool, optional arguments must form a suffix of the declared
// sequence, and at most the last argument may be a vararg argument (see
// PoolBuilder.AddVararg). An Argument is immutable once created and may
// be shared across pools.
type Argument[T any] struct {
	id        uuid.UUID
	parser    Parser[T]
	optional  bool
	validator Validator[T]
	def       *T
}

// NewArgument returns a new immutable argument declaration. The parser
// must not be nil.
func NewArgument[T any](parser Parser[T], opts ArgumentOpts[T]) *Argument[T] {
	if parser == nil {
		panic("optargs: NewArgument called with a nil parser")
	}
	return &Argument[T]{
		id:        uuid.New(),
		parser:    parser,
		optional:  opts.Optional,
		validator: opts.Validator,
		def:       opts.Default,
	}
}

// Optional reports whether this argument may be omitted.
func (a *Argument[T]) Optional() bool {
	return a.optional
}

// DefaultValue returns this argument's default value, if it has one.
func (a *Argument[T]) DefaultValue() (T, bool) {
	if a.def == nil {
		var zero T
		return zero, false
	}
	return *a.def, true
}

// String returns a diagnostic description of the declaration.
func (a *Argument[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Argument[optional=%t, hasDefault=%t", a.optional, a.def != nil)
	if a.def != nil {
		fmt.Fprintf(&b, ", defaultValue=%v", *a.def)
	}
	b.WriteString("]")
	return b.String()
}

func (a *Argument[T]) declID() uuid.UUID {
	return a.id
}

func (a *Argument[T]) parseValue(raw string) (any, error) {
	v, err := a.parser(raw)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (a *Argument[T]) validateValue(value any) error {
	if a.validator == nil {
		return nil
	}
	return a.validator(value.(T))
}

func (a *Argument[T]) argOptional() bool {
	return a.optional
}

func (a *Argument[T]) argDefault() (any, bool) {
	if a.def == nil {
		return nil, false
	}
	return *a.def, true
}

func (a *Argument[T]) defaultVal() (T, bool) {
	return a.DefaultValue()
}
