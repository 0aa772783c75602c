package optargs

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// OptionOpts configures an Option. Short is the optional single-character
// short token (zero means none). Marker is the value substituted when the
// option appears without an explicit value; MarkerOnly forbids an explicit
// value altogether and requires Marker to be set.
type OptionOpts[T any] struct {
	Short      rune
	Default    *T
	Marker     *T
	MarkerOnly bool
	Validator  Validator[T]
}

// Option is a key-resolved (token-based) input value declaration.
//
// The syntax accepted for an option depends on its configuration:
//
//   - --token=value or --token value, the default syntax
//   - --token [value], for options with a marker value
//   - --token, for marker-only options
//
// The same forms apply to the short token. Chaining short tokens sets the
// same value for every member of the chain: -abc is equivalent to
// -a -b -c, and -abc="d" to -a="d" -b="d" -c="d".
type Option[T any] struct {
	id         uuid.UUID
	long       string
	short      rune // 0 when absent
	parser     Parser[T]
	validator  Validator[T]
	def        *T
	marker     *T
	onlyMarker bool
}

// NewOption returns a new immutable option declaration. The long token
// must be a non-empty alphanumeric string and the short token, when set,
// a single alphanumeric character. The parser must not be nil.
func NewOption[T any](longToken string, parser Parser[T], opts OptionOpts[T]) (*Option[T], error) {
	if parser == nil {
		panic("optargs: NewOption called with a nil parser")
	}
	if !isAlnumString(longToken) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLongToken, longToken)
	}
	if opts.Short != 0 && !isAlnum(opts.Short) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidShortToken, opts.Short)
	}
	if opts.MarkerOnly && opts.Marker == nil {
		return nil, fmt.Errorf("%w: --%s", ErrMarkerOnlyWithoutValue, longToken)
	}
	return &Option[T]{
		id:         uuid.New(),
		long:       longToken,
		short:      opts.Short,
		parser:     parser,
		validator:  opts.Validator,
		def:        opts.Default,
		marker:     opts.Marker,
		onlyMarker: opts.MarkerOnly,
	}, nil
}

// LongToken returns this option's long token.
func (o *Option[T]) LongToken() string {
	return o.long
}

// ShortToken returns this option's short token, if it has one.
func (o *Option[T]) ShortToken() (rune, bool) {
	return o.short, o.short != 0
}

// DefaultValue returns this option's default value, if it has one.
func (o *Option[T]) DefaultValue() (T, bool) {
	if o.def == nil {
		var zero T
		return zero, false
	}
	return *o.def, true
}

// MarkerValue returns this option's marker value, if it has one.
func (o *Option[T]) MarkerValue() (T, bool) {
	if o.marker == nil {
		var zero T
		return zero, false
	}
	return *o.marker, true
}

// MarkerOnly reports whether this option never accepts an explicit value.
func (o *Option[T]) MarkerOnly() bool {
	return o.onlyMarker
}

// String returns a diagnostic description of the declaration.
func (o *Option[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Option[long=%s", o.long)
	if o.short != 0 {
		fmt.Fprintf(&b, ", short=%c", o.short)
	}
	fmt.Fprintf(&b, ", hasDefault=%t", o.def != nil)
	if o.def != nil {
		fmt.Fprintf(&b, ", defaultValue=%v", *o.def)
	}
	fmt.Fprintf(&b, ", hasMarker=%t", o.marker != nil)
	if o.marker != nil {
		fmt.Fprintf(&b, ", markerValue=%v", *o.marker)
	}
	fmt.Fprintf(&b, ", markerOnly=%t]", o.onlyMarker)
	return b.String()
}

func (o *Option[T]) declID() uuid.UUID {
	return o.id
}

func (o *Option[T]) parseValue(raw string) (any, error) {
	v, err := o.parser(raw)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (o *Option[T]) validateValue(value any) error {
	if o.validator == nil {
		return nil
	}
	return o.validator(value.(T))
}

func (o *Option[T]) optDefault() (any, bool) {
	if o.def == nil {
		return nil, false
	}
	return *o.def, true
}

func (o *Option[T]) markerAny() (any, bool) {
	if o.marker == nil {
		return nil, false
	}
	return *o.marker, true
}

func (o *Option[T]) markerOnly() bool {
	return o.onlyMarker
}

func (o *Option[T]) defaultVal() (T, bool) {
	return o.DefaultValue()
}
