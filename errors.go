package optargs

import (
	"errors"
	"fmt"
)

// Errors raised while a command line is being parsed. Every parse failure
// is reported as a *ParseError wrapping exactly one of these sentinels, so
// callers can discriminate with errors.Is.
var (
	ErrMalformedToken     = errors.New("malformed option token")
	ErrUnterminatedString = errors.New("unterminated quoted string")

	ErrUnrecognizedOption  = errors.New("unrecognized option")
	ErrNoShortTokens       = errors.New("no short option tokens registered in pool")
	ErrNoArguments         = errors.New("no arguments registered in pool")
	ErrSuperfluousArgument = errors.New("no argument registered for position")

	ErrDuplicateOption = errors.New("option already has a value")

	ErrMarkerOnlyWithValue  = errors.New("marker-only option given an explicit value")
	ErrValueRequired        = errors.New("option requires an explicit value")
	ErrArgumentValueMissing = errors.New("argument value missing")
	ErrMissingRequiredArgs  = errors.New("not all required arguments were supplied")

	ErrConversion = errors.New("value conversion failed")
	ErrValidation = errors.New("value validation failed")
)

// Errors raised while declarations or pools are being built. These are
// usage errors and surface synchronously from the constructor or builder
// call, before any parse runs.
var (
	ErrInvalidLongToken       = errors.New("long token must be a non-empty alphanumeric string")
	ErrInvalidShortToken      = errors.New("short token must be a single alphanumeric character")
	ErrMarkerOnlyWithoutValue = errors.New("marker-only option must have a marker value")

	ErrDuplicateDeclaration  = errors.New("declaration already added to this pool")
	ErrDuplicateLongToken    = errors.New("long token already registered in this pool")
	ErrDuplicateShortToken   = errors.New("short token already registered in this pool")
	ErrArgAfterVararg        = errors.New("cannot add an argument after the vararg argument")
	ErrRequiredAfterOptional = errors.New("cannot add a required argument after an optional one")
)

// Errors raised on result set lookups.
var (
	ErrNotInPool = errors.New("declaration does not belong to the originating pool")
	ErrIsVararg  = errors.New("declaration is the pool's vararg argument, use Varargs")
	ErrNotVararg = errors.New("declaration is not the pool's vararg argument")
)

// ParseError is the error returned for any failure during a parse call.
// Kind is one of the parse-time sentinel errors above; Cause carries the
// underlying conversion or validation error when there is one.
type ParseError struct {
	Kind  error
	Token string
	Pos   int
	Cause error
}

// Error implements the error interface.
func (pe *ParseError) Error() string {
	msg := pe.Kind.Error()
	if pe.Token != "" {
		msg = fmt.Sprintf("%s: %q", msg, pe.Token)
	}
	if pe.Cause != nil {
		msg = fmt.Sprintf("%s: %s", msg, pe.Cause.Error())
	}
	return fmt.Sprintf("%s (at position %d)", msg, pe.Pos)
}

// Unwrap exposes both the error kind and the underlying cause to
// errors.Is and errors.As.
func (pe *ParseError) Unwrap() []error {
	if pe.Cause != nil {
		return []error{pe.Kind, pe.Cause}
	}
	return []error{pe.Kind}
}
