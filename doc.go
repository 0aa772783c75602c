// Package optargs is a command-line argument and option parser: given a
// pool of declared positional arguments and named options, it tokenizes
// a command line (or raw argument vector) into a set of typed values.
//
// Declarations come in two kinds:
//   - Argument: a positional, index-resolved value. Optional arguments
//     must form a suffix of the declared sequence, and the last argument
//     may be a vararg that accumulates all trailing positional tokens.
//   - Option: a token-resolved value addressed by a long token (--name)
//     or an optional single-character short token (-n). Short tokens may
//     be chained (-abc assigns the same value to a, b, and c). An option
//     may carry a marker value that is substituted when the option is
//     present without an explicit value; a marker-only option never
//     accepts an explicit value.
//
// Values are converted by a per-declaration Parser callback and checked
// by an optional Validator callback. The package ships parsers for the
// common cases (ParseString, ParseBool, ParseInt, ParseInt64,
// ParseFloat64, ParseUUID); any function with a matching signature works.
//
// A minimal use looks like this:
//
//	verbose := true
//	level, _ := optargs.NewOption("level", optargs.ParseInt, optargs.OptionOpts[int]{Short: 'l'})
//	debug, _ := optargs.NewOption("debug", optargs.ParseBool, optargs.OptionOpts[bool]{
//		Short:      'd',
//		Marker:     &verbose,
//		MarkerOnly: true,
//	})
//	input := optargs.NewArgument(optargs.ParseString, optargs.ArgumentOpts[string]{})
//
//	builder := optargs.NewPoolBuilder()
//	builder.AddArgument(input)
//	builder.AddOption(level)
//	builder.AddOption(debug)
//	pool := builder.Build()
//
//	set, err := optargs.ParseArgs(os.Args[1:], pool)
//	if err != nil {
//		// err wraps a discriminated sentinel, e.g. optargs.ErrValueRequired
//	}
//	file, ok, _ := optargs.Get(set, input)
//	lvl, _ := optargs.GetOrElse(set, level, 0)
//
// Pools are immutable once built and safe to share across concurrent
// parse calls; every parse owns its own stream and result set.
//
// Pools can also be built from declarative schemas in YAML or JSON (see
// PoolFromYAML and PoolFromJSON), which is what the bundled optargs
// command uses to inspect schemas and dry-run command lines against
// them.
package optargs
