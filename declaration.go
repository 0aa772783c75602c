package optargs

import (
	"github.com/google/uuid"
)

// Decl is the identity of a single declaration within a pool. Two
// declarations are distinct even when configured identically: identity is
// a handle assigned at construction time, not structural equality.
//
// Decl is implemented by *Argument and *Option only.
type Decl interface {
	declID() uuid.UUID
	parseValue(raw string) (any, error)
	validateValue(value any) error
	String() string
}

// ArgumentDecl is the type-erased view of an *Argument that the pool
// builder and the parsing engine operate on.
type ArgumentDecl interface {
	Decl
	argOptional() bool
	argDefault() (any, bool)
}

// OptionDecl is the type-erased view of an *Option that the pool builder
// and the parsing engine operate on.
type OptionDecl interface {
	Decl
	LongToken() string
	ShortToken() (rune, bool)
	optDefault() (any, bool)
	markerAny() (any, bool)
	markerOnly() bool
}

// Declaration ties a declaration to its value type. It is the constraint
// used by the typed result set accessors; both *Argument[T] and
// *Option[T] satisfy it.
type Declaration[T any] interface {
	Decl
	defaultVal() (T, bool)
}

func isAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isAlnumString(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isAlnum(r) {
			return false
		}
	}
	return true
}

func isDigitString(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
