package optargs

import (
	"strconv"

	"github.com/google/uuid"
)

// Parser converts a raw token string into a typed value. A conversion
// failure aborts the parse that invoked it.
type Parser[T any] func(raw string) (T, error)

// Validator rejects converted values. A nil Validator accepts everything.
type Validator[T any] func(value T) error

// Built-in parsers for frequently used value types. Any function with a
// matching signature works; these only cover the common cases.

// ParseString is the identity parser.
func ParseString(raw string) (string, error) {
	return raw, nil
}

// ParseBool maps "1" and "true" to true and everything else to false.
func ParseBool(raw string) (bool, error) {
	return raw == "1" || raw == "true", nil
}

// ParseInt delegates to strconv.Atoi.
func ParseInt(raw string) (int, error) {
	return strconv.Atoi(raw)
}

// ParseInt64 delegates to strconv.ParseInt in base 10.
func ParseInt64(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

// ParseFloat64 delegates to strconv.ParseFloat.
func ParseFloat64(raw string) (float64, error) {
	return strconv.ParseFloat(raw, 64)
}

// ParseUUID delegates to uuid.Parse.
func ParseUUID(raw string) (uuid.UUID, error) {
	return uuid.Parse(raw)
}
