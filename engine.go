package optargs

import (
	"unicode"
)

// ParseOpts configures a single parse call.
type ParseOpts struct {
	// DisableTerminator turns off the "--" grammar rule. With the rule
	// active (the default) a standalone "--" token ends option parsing:
	// every remaining token is read as a positional argument, including
	// tokens beginning with "-". With the rule disabled a standalone
	// "--" is a malformed token.
	DisableTerminator bool
}

// Parse tokenizes the given command line against the pool and returns
// the resulting set of values, or the first error encountered. There is
// no partial result: any failure aborts the whole parse.
func Parse(commandLine string, pool *Pool) (*ArgSet, error) {
	return ParseWithOpts(commandLine, pool, ParseOpts{})
}

// ParseArgs joins a raw argument vector with JoinArgs and parses it.
func ParseArgs(argv []string, pool *Pool) (*ArgSet, error) {
	return Parse(JoinArgs(argv), pool)
}

// ParseWithOpts is Parse with explicit options.
func ParseWithOpts(commandLine string, pool *Pool, opts ParseOpts) (*ArgSet, error) {
	e := &engine{
		stream: newCharStream(commandLine),
		pool:   pool,
		opts:   opts,
		set:    newArgSet(pool),
	}
	if err := e.run(); err != nil {
		return nil, err
	}
	return e.set, nil
}

// engine walks the character stream one top-level token at a time,
// disambiguating option tokens from positional arguments and attaching
// values per the grammar.
type engine struct {
	stream     *charStream
	pool       *Pool
	opts       ParseOpts
	set        *ArgSet
	argIndex   int
	varargs    []any
	terminated bool
}

func (e *engine) run() error {
	for {
		c := e.stream.currentNonSpace()
		if c == eof {
			break
		}
		var err error
		if c == '-' && !e.terminated {
			err = e.readOptionToken()
		} else {
			err = e.readArgument()
		}
		if err != nil {
			return err
		}
	}
	if len(e.varargs) > 0 {
		va, _ := e.pool.varargArg()
		e.set.values[va.declID()] = e.varargs
	}
	filled := e.argIndex
	if len(e.varargs) > 0 {
		filled++
	}
	if filled < e.pool.firstOptional {
		return &ParseError{Kind: ErrMissingRequiredArgs, Pos: e.stream.pos}
	}
	return nil
}

// readOptionToken handles a token starting with '-': a long option, a
// short-token chain, the '--' terminator, or a negative-number argument.
func (e *engine) readOptionToken() error {
	c := e.stream.next() // character after '-'
	if c == '-' {
		c = e.stream.next()
		if c == eof || unicode.IsSpace(c) {
			if e.opts.DisableTerminator {
				return e.fail(ErrMalformedToken, "--")
			}
			e.terminated = true
			log.Debug("option parsing terminated")
			return nil
		}
		token, _ := e.stream.currentLiteral(isAssign)
		if !isAlnumString(token) {
			return e.fail(ErrMalformedToken, "--"+token)
		}
		opt, ok := e.pool.long[token]
		if !ok {
			return e.fail(ErrUnrecognizedOption, "--"+token)
		}
		if _, dup := e.set.values[opt.declID()]; dup {
			return e.fail(ErrDuplicateOption, "--"+token)
		}
		log.Debugf("resolved long option --%s", token)
		return e.attachValue([]OptionDecl{opt}, "--"+token)
	}

	if c == eof || unicode.IsSpace(c) {
		return e.fail(ErrMalformedToken, "-")
	}
	run, _ := e.stream.currentLiteral(isAssign)
	if isDigitString(run) && e.stream.cur != '=' {
		// A '-' followed by an all-numeric run is a negative-number
		// argument, not an option chain. Depends on short tokens never
		// being digits in practice.
		return e.consumeArgument("-" + run)
	}
	if !isAlnumString(run) {
		return e.fail(ErrMalformedToken, "-"+run)
	}
	if len(e.pool.short) == 0 {
		return e.fail(ErrNoShortTokens, "-"+run)
	}
	resolved := make([]OptionDecl, 0, len(run))
	seen := make(map[rune]struct{}, len(run))
	for _, r := range run {
		opt, ok := e.pool.short[r]
		if !ok {
			return e.fail(ErrUnrecognizedOption, "-"+string(r))
		}
		if _, dup := seen[r]; dup {
			return e.fail(ErrDuplicateOption, "-"+string(r))
		}
		if _, dup := e.set.values[opt.declID()]; dup {
			return e.fail(ErrDuplicateOption, "-"+string(r))
		}
		seen[r] = struct{}{}
		resolved = append(resolved, opt)
	}
	log.Debugf("resolved short option chain -%s", run)
	return e.attachValue(resolved, "-"+run)
}

// attachValue applies the value attachment rule uniformly to the single
// resolved option of a long token or the full set resolved from a chain.
//
// With '=' the remainder is always the explicit value. Across whitespace
// a following string is NOT consumed when any resolved option is
// marker-only, or when every resolved option has a marker value and the
// next non-whitespace character is '-' (a marker option never greedily
// swallows an option-looking token). Without an explicit value, options
// with a marker value receive it and any option without one is an error.
func (e *engine) attachValue(resolved []OptionDecl, token string) error {
	anyMarkerOnly := false
	allMarker := true
	for _, o := range resolved {
		if o.markerOnly() {
			anyMarkerOnly = true
		}
		if _, ok := o.markerAny(); !ok {
			allMarker = false
		}
	}

	var raw string
	var haveRaw bool
	if e.stream.cur == '=' {
		if anyMarkerOnly {
			return e.fail(ErrMarkerOnlyWithValue, token)
		}
		v, ok, err := e.stream.nextString()
		if err != nil {
			return e.fail(ErrUnterminatedString, token)
		}
		if !ok {
			return e.fail(ErrValueRequired, token)
		}
		raw, haveRaw = v, true
	} else if !anyMarkerOnly {
		c := e.stream.currentNonSpace()
		if c != eof && !(allMarker && c == '-') {
			v, ok, err := e.stream.currentString()
			if err != nil {
				return e.fail(ErrUnterminatedString, token)
			}
			raw, haveRaw = v, ok
		}
	}

	if !haveRaw {
		for _, o := range resolved {
			mv, ok := o.markerAny()
			if !ok {
				return e.fail(ErrValueRequired, token)
			}
			e.set.values[o.declID()] = mv
		}
		return nil
	}

	for _, o := range resolved {
		v, err := o.parseValue(raw)
		if err != nil {
			return e.failCause(ErrConversion, token, err)
		}
		if err := o.validateValue(v); err != nil {
			return e.failCause(ErrValidation, token, err)
		}
		e.set.values[o.declID()] = v
	}
	return nil
}

// readArgument reads the token at the cursor as a positional argument.
func (e *engine) readArgument() error {
	raw, ok, err := e.stream.currentString()
	if err != nil {
		return e.fail(ErrUnterminatedString, "")
	}
	if !ok {
		return e.fail(ErrArgumentValueMissing, "")
	}
	return e.consumeArgument(raw)
}

// consumeArgument converts, validates, and stores a positional value at
// the current argument index. The index is clamped to the last slot when
// that slot is the trailing vararg.
func (e *engine) consumeArgument(raw string) error {
	if len(e.pool.args) == 0 {
		return e.fail(ErrNoArguments, raw)
	}
	idx := e.argIndex
	last := len(e.pool.args) - 1
	if idx > last {
		if !e.pool.hasVararg {
			return e.fail(ErrSuperfluousArgument, raw)
		}
		idx = last
	}
	arg := e.pool.args[idx]
	v, err := arg.parseValue(raw)
	if err != nil {
		return e.failCause(ErrConversion, raw, err)
	}
	if err := arg.validateValue(v); err != nil {
		return e.failCause(ErrValidation, raw, err)
	}
	if e.pool.hasVararg && idx == last {
		e.varargs = append(e.varargs, v)
		e.argIndex = last
	} else {
		e.set.values[arg.declID()] = v
		e.argIndex = idx + 1
	}
	return nil
}

func (e *engine) fail(kind error, token string) error {
	return &ParseError{Kind: kind, Token: token, Pos: e.stream.pos}
}

func (e *engine) failCause(kind error, token string, cause error) error {
	return &ParseError{Kind: kind, Token: token, Pos: e.stream.pos, Cause: cause}
}

func isAssign(r rune) bool {
	return r == '='
}
