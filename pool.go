package optargs

import (
	"fmt"

	"github.com/google/uuid"
)

// Pool is the immutable registry of declared arguments and options used
// to interpret one parse. A pool is built once through a PoolBuilder and
// is read-only thereafter, so it is safe to share by reference across
// concurrent parse calls.
type Pool struct {
	args          []ArgumentDecl
	long          map[string]OptionDecl
	short         map[rune]OptionDecl
	members       map[uuid.UUID]struct{}
	firstOptional int // index of the first optional argument == number of required ones
	hasVararg     bool
}

// HasVararg reports whether the pool's last argument is a vararg.
func (p *Pool) HasVararg() bool {
	return p.hasVararg
}

func (p *Pool) contains(d Decl) bool {
	_, ok := p.members[d.declID()]
	return ok
}

// varargArg returns the trailing vararg argument, if the pool has one.
func (p *Pool) varargArg() (ArgumentDecl, bool) {
	if !p.hasVararg {
		return nil, false
	}
	return p.args[len(p.args)-1], true
}

// PoolBuilder assembles a Pool. Ordering invariants are enforced at each
// insertion: optional arguments must form a suffix, the vararg argument
// is always last, and long/short tokens are unique within the pool.
type PoolBuilder struct {
	args          []ArgumentDecl
	long          map[string]OptionDecl
	short         map[rune]OptionDecl
	members       map[uuid.UUID]struct{}
	firstOptional int
	hasVararg     bool
	optionalSeen  bool
}

// NewPoolBuilder returns an empty pool builder.
func NewPoolBuilder() *PoolBuilder {
	return &PoolBuilder{
		long:    make(map[string]OptionDecl),
		short:   make(map[rune]OptionDecl),
		members: make(map[uuid.UUID]struct{}),
	}
}

// AddArgument appends a positional argument declaration.
func (b *PoolBuilder) AddArgument(a ArgumentDecl) error {
	return b.addArg(a, false)
}

// AddVararg appends the trailing vararg argument declaration. No further
// arguments may be added after it.
func (b *PoolBuilder) AddVararg(a ArgumentDecl) error {
	return b.addArg(a, true)
}

func (b *PoolBuilder) addArg(a ArgumentDecl, vararg bool) error {
	if _, dup := b.members[a.declID()]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateDeclaration, a)
	}
	if b.hasVararg {
		return fmt.Errorf("%w: %s", ErrArgAfterVararg, a)
	}
	if !a.argOptional() && b.optionalSeen {
		return fmt.Errorf("%w: %s", ErrRequiredAfterOptional, a)
	}
	b.args = append(b.args, a)
	b.members[a.declID()] = struct{}{}
	if a.argOptional() {
		b.optionalSeen = true
	} else {
		b.firstOptional = len(b.args)
	}
	b.hasVararg = vararg
	return nil
}

// AddOption registers an option declaration under its long token and,
// when present, its short token.
func (b *PoolBuilder) AddOption(o OptionDecl) error {
	if _, dup := b.members[o.declID()]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateDeclaration, o)
	}
	if _, dup := b.long[o.LongToken()]; dup {
		return fmt.Errorf("%w: --%s", ErrDuplicateLongToken, o.LongToken())
	}
	short, hasShort := o.ShortToken()
	if hasShort {
		if _, dup := b.short[short]; dup {
			return fmt.Errorf("%w: -%c", ErrDuplicateShortToken, short)
		}
	}
	b.long[o.LongToken()] = o
	if hasShort {
		b.short[short] = o
	}
	b.members[o.declID()] = struct{}{}
	return nil
}

// Build finalizes the builder into an immutable Pool. The builder may be
// reused afterwards without affecting the built pool.
func (b *PoolBuilder) Build() *Pool {
	p := &Pool{
		args:          make([]ArgumentDecl, len(b.args)),
		long:          make(map[string]OptionDecl, len(b.long)),
		short:         make(map[rune]OptionDecl, len(b.short)),
		members:       make(map[uuid.UUID]struct{}, len(b.members)),
		firstOptional: b.firstOptional,
		hasVararg:     b.hasVararg,
	}
	copy(p.args, b.args)
	for k, v := range b.long {
		p.long[k] = v
	}
	for k, v := range b.short {
		p.short[k] = v
	}
	for k := range b.members {
		p.members[k] = struct{}{}
	}
	return p
}
