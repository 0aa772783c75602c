package optargs

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// ErrSchemaInvalid is returned for any structural problem in a
// declarative pool schema.
var ErrSchemaInvalid = errors.New("invalid pool schema")

// SchemaPool is a pool built from a declarative schema, together with a
// name index so that declarations can be retrieved without holding on to
// the typed values returned by the constructors.
type SchemaPool struct {
	Pool   *Pool
	Names  []string // declaration order: arguments first, then options
	Vararg string   // name of the vararg argument, empty if none

	decls map[string]Decl
}

// Decl returns the declaration registered under the given name (an
// argument's name or an option's long token).
func (sp *SchemaPool) Decl(name string) (Decl, bool) {
	d, ok := sp.decls[name]
	return d, ok
}

// poolSchema is the serialized form shared by the YAML and JSON loaders.
// Default and marker values are given as strings and run through the
// declared type's parser at load time.
type poolSchema struct {
	Arguments []argumentSchema `yaml:"arguments"`
	Options   []optionSchema   `yaml:"options"`
}

type argumentSchema struct {
	Name     string  `yaml:"name"`
	Type     string  `yaml:"type"`
	Optional bool    `yaml:"optional"`
	Vararg   bool    `yaml:"vararg"`
	Default  *string `yaml:"default"`
}

type optionSchema struct {
	Long       string  `yaml:"long"`
	Short      string  `yaml:"short"`
	Type       string  `yaml:"type"`
	Default    *string `yaml:"default"`
	Marker     *string `yaml:"marker"`
	MarkerOnly bool    `yaml:"markerOnly"`
}

// PoolFromYAML builds a pool from a YAML schema document.
func PoolFromYAML(data []byte) (*SchemaPool, error) {
	var ps poolSchema
	if err := yaml.Unmarshal(data, &ps); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	return buildSchemaPool(ps)
}

// PoolFromJSON builds a pool from a JSON schema document.
func PoolFromJSON(data []byte) (*SchemaPool, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrSchemaInvalid)
	}
	doc := gjson.ParseBytes(data)
	var ps poolSchema
	doc.Get("arguments").ForEach(func(_, a gjson.Result) bool {
		s := argumentSchema{
			Name:     a.Get("name").String(),
			Type:     a.Get("type").String(),
			Optional: a.Get("optional").Bool(),
			Vararg:   a.Get("vararg").Bool(),
		}
		if d := a.Get("default"); d.Exists() {
			v := d.String()
			s.Default = &v
		}
		ps.Arguments = append(ps.Arguments, s)
		return true
	})
	doc.Get("options").ForEach(func(_, o gjson.Result) bool {
		s := optionSchema{
			Long:       o.Get("long").String(),
			Short:      o.Get("short").String(),
			Type:       o.Get("type").String(),
			MarkerOnly: o.Get("markerOnly").Bool(),
		}
		if d := o.Get("default"); d.Exists() {
			v := d.String()
			s.Default = &v
		}
		if m := o.Get("marker"); m.Exists() {
			v := m.String()
			s.Marker = &v
		}
		ps.Options = append(ps.Options, s)
		return true
	})
	return buildSchemaPool(ps)
}

func buildSchemaPool(ps poolSchema) (*SchemaPool, error) {
	sp := &SchemaPool{decls: make(map[string]Decl)}
	builder := NewPoolBuilder()

	for i, as := range ps.Arguments {
		if as.Name == "" {
			return nil, fmt.Errorf("%w: argument %d has no name", ErrSchemaInvalid, i)
		}
		if _, dup := sp.decls[as.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate declaration name %q", ErrSchemaInvalid, as.Name)
		}
		arg, err := buildArgument(as)
		if err != nil {
			return nil, err
		}
		if as.Vararg {
			err = builder.AddVararg(arg)
			sp.Vararg = as.Name
		} else {
			err = builder.AddArgument(arg)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: argument %q: %v", ErrSchemaInvalid, as.Name, err)
		}
		sp.decls[as.Name] = arg
		sp.Names = append(sp.Names, as.Name)
	}

	for _, os := range ps.Options {
		if _, dup := sp.decls[os.Long]; dup {
			return nil, fmt.Errorf("%w: duplicate declaration name %q", ErrSchemaInvalid, os.Long)
		}
		opt, err := buildOption(os)
		if err != nil {
			return nil, err
		}
		if err := builder.AddOption(opt); err != nil {
			return nil, fmt.Errorf("%w: option %q: %v", ErrSchemaInvalid, os.Long, err)
		}
		sp.decls[os.Long] = opt
		sp.Names = append(sp.Names, os.Long)
	}

	sp.Pool = builder.Build()
	return sp, nil
}

func buildArgument(s argumentSchema) (ArgumentDecl, error) {
	switch s.Type {
	case "", "string":
		return schemaArgument(ParseString, s)
	case "bool":
		return schemaArgument(ParseBool, s)
	case "int":
		return schemaArgument(ParseInt, s)
	case "int64":
		return schemaArgument(ParseInt64, s)
	case "float", "float64":
		return schemaArgument(ParseFloat64, s)
	case "uuid":
		return schemaArgument(ParseUUID, s)
	default:
		return nil, fmt.Errorf("%w: unknown value type %q", ErrSchemaInvalid, s.Type)
	}
}

func buildOption(s optionSchema) (OptionDecl, error) {
	switch s.Type {
	case "", "string":
		return schemaOption(ParseString, s)
	case "bool":
		return schemaOption(ParseBool, s)
	case "int":
		return schemaOption(ParseInt, s)
	case "int64":
		return schemaOption(ParseInt64, s)
	case "float", "float64":
		return schemaOption(ParseFloat64, s)
	case "uuid":
		return schemaOption(ParseUUID, s)
	default:
		return nil, fmt.Errorf("%w: unknown value type %q", ErrSchemaInvalid, s.Type)
	}
}

func schemaArgument[T any](p Parser[T], s argumentSchema) (ArgumentDecl, error) {
	opts := ArgumentOpts[T]{Optional: s.Optional}
	if s.Default != nil {
		v, err := p(*s.Default)
		if err != nil {
			return nil, fmt.Errorf("%w: bad default for argument %q: %v", ErrSchemaInvalid, s.Name, err)
		}
		opts.Default = &v
	}
	return NewArgument(p, opts), nil
}

func schemaOption[T any](p Parser[T], s optionSchema) (OptionDecl, error) {
	opts := OptionOpts[T]{MarkerOnly: s.MarkerOnly}
	if s.Short != "" {
		r := []rune(s.Short)
		if len(r) != 1 {
			return nil, fmt.Errorf("%w: short token %q of option %q is not a single character", ErrSchemaInvalid, s.Short, s.Long)
		}
		opts.Short = r[0]
	}
	if s.Default != nil {
		v, err := p(*s.Default)
		if err != nil {
			return nil, fmt.Errorf("%w: bad default for option %q: %v", ErrSchemaInvalid, s.Long, err)
		}
		opts.Default = &v
	}
	if s.Marker != nil {
		v, err := p(*s.Marker)
		if err != nil {
			return nil, fmt.Errorf("%w: bad marker for option %q: %v", ErrSchemaInvalid, s.Long, err)
		}
		opts.Marker = &v
	}
	opt, err := NewOption(s.Long, p, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: option %q: %v", ErrSchemaInvalid, s.Long, err)
	}
	return opt, nil
}
