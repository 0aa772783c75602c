package optargs

import (
	"fmt"

	"github.com/google/uuid"
)

// ArgSet is the immutable result of a single parse call: a mapping from
// declaration identity to parsed value. It references the pool it was
// produced from; declarations from other pools are rejected on lookup.
type ArgSet struct {
	pool   *Pool
	values map[uuid.UUID]any
}

func newArgSet(pool *Pool) *ArgSet {
	return &ArgSet{pool: pool, values: make(map[uuid.UUID]any)}
}

// Contains reports whether an explicit (non-default) value was stored for
// the declaration during the parse.
func (s *ArgSet) Contains(d Decl) bool {
	if !s.pool.contains(d) {
		return false
	}
	_, ok := s.values[d.declID()]
	return ok
}

// Value returns the explicitly parsed value for the declaration, untyped.
// It never falls back to the declaration's default value. Looking up the
// pool's vararg argument fails with ErrIsVararg; use VarargValues.
func (s *ArgSet) Value(d Decl) (any, bool, error) {
	if !s.pool.contains(d) {
		return nil, false, fmt.Errorf("%w: %s", ErrNotInPool, d)
	}
	if va, ok := s.pool.varargArg(); ok && va.declID() == d.declID() {
		return nil, false, fmt.Errorf("%w: %s", ErrIsVararg, d)
	}
	v, ok := s.values[d.declID()]
	return v, ok, nil
}

// VarargValues returns the accumulated values for the pool's trailing
// vararg argument in encountered order, untyped. When no values were
// parsed it returns a single-element slice holding the declaration's
// default value if it has one, and an empty slice otherwise.
func (s *ArgSet) VarargValues(d Decl) ([]any, error) {
	if !s.pool.contains(d) {
		return nil, fmt.Errorf("%w: %s", ErrNotInPool, d)
	}
	va, ok := s.pool.varargArg()
	if !ok || va.declID() != d.declID() {
		return nil, fmt.Errorf("%w: %s", ErrNotVararg, d)
	}
	if v, ok := s.values[d.declID()]; ok {
		return v.([]any), nil
	}
	if def, has := va.argDefault(); has {
		return []any{def}, nil
	}
	return nil, nil
}

// Get returns the explicitly parsed value for the declaration, typed. The
// second return is false when the declaration was not present in the
// parsed command line; the default value is never substituted.
func Get[T any](s *ArgSet, d Declaration[T]) (T, bool, error) {
	var zero T
	v, ok, err := s.Value(d)
	if err != nil {
		return zero, false, err
	}
	if !ok {
		return zero, false, nil
	}
	return v.(T), true, nil
}

// GetOrDefault returns the explicitly parsed value, falling back to the
// declaration's default value. The second return is false when neither
// exists.
func GetOrDefault[T any](s *ArgSet, d Declaration[T]) (T, bool, error) {
	v, ok, err := Get(s, d)
	if err != nil || ok {
		return v, ok, err
	}
	if def, has := d.defaultVal(); has {
		return def, true, nil
	}
	var zero T
	return zero, false, nil
}

// GetOrElse returns the explicitly parsed value, falling back to the
// declaration's default value and then to the given fallback.
func GetOrElse[T any](s *ArgSet, d Declaration[T], fallback T) (T, error) {
	v, ok, err := GetOrDefault(s, d)
	if err != nil {
		return fallback, err
	}
	if !ok {
		return fallback, nil
	}
	return v, nil
}

// Varargs returns the accumulated values for the pool's trailing vararg
// argument, typed. See VarargValues for the fallback behavior.
func Varargs[T any](s *ArgSet, a *Argument[T]) ([]T, error) {
	raw, err := s.VarargValues(a)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]T, len(raw))
	for i, v := range raw {
		out[i] = v.(T)
	}
	return out, nil
}
