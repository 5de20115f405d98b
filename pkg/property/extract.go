package property

import (
	"github.com/simonhull/firebird-suite/wren/pkg/literal"
	"github.com/simonhull/firebird-suite/wren/pkg/tsast"
)

// ExtractorOption configures an Extractor
type ExtractorOption func(*Extractor)

// WithDecoratorName matches a decorator other than `property`
func WithDecoratorName(name string) ExtractorOption {
	return func(e *Extractor) {
		if name != "" {
			e.decorator = name
		}
	}
}

// Extractor reads reactive property configurations from decorated members.
// It holds no per-call state and is safe for concurrent use as long as its
// resolver is.
type Extractor struct {
	resolver  literal.Resolver
	decorator string
}

// NewExtractor creates an Extractor that resolves option values with r.
// A nil resolver resolves literals only.
func NewExtractor(r literal.Resolver, opts ...ExtractorOption) *Extractor {
	if r == nil {
		r = literal.NewResolver(nil)
	}
	e := &Extractor{resolver: r, decorator: DecoratorName}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Locate returns the matching decorator call on member, or nil
func (e *Extractor) Locate(member tsast.Decorated) *tsast.CallExpression {
	return LocateNamed(member, e.decorator)
}

// Extract returns the configuration of member. ok is false when the member
// has no property decorator; a decorator without usable options yields
// the zero Config with ok true.
func (e *Extractor) Extract(member tsast.Decorated) (cfg Config, ok bool) {
	call := e.Locate(member)
	if call == nil {
		return Config{}, false
	}
	return e.ExtractFromCall(call), true
}

// ExtractFromCall reads the options object passed to a decorator call.
// Missing or non-object arguments yield the zero Config.
func (e *Extractor) ExtractFromCall(call *tsast.CallExpression) Config {
	if call == nil || len(call.Arguments) == 0 {
		return Config{}
	}
	obj, ok := call.Arguments[0].(*tsast.ObjectLiteral)
	if !ok {
		return Config{}
	}
	return e.Fold(obj, Config{})
}

// Fold applies every `key: value` member of obj to cfg in source order.
// Shorthand, spread, computed and method members are skipped.
func (e *Extractor) Fold(obj *tsast.ObjectLiteral, cfg Config) Config {
	for _, m := range obj.Members {
		pa, ok := m.(*tsast.PropertyAssignment)
		if !ok {
			continue
		}
		cfg = e.Interpret(pa.Key, pa.Initializer, cfg)
	}
	return cfg
}

// Interpret applies one option to cfg and returns the result. Unknown
// options and unresolvable values never fail; the affected field is left
// unset.
func (e *Extractor) Interpret(key string, init tsast.Expr, cfg Config) Config {
	switch ParseKey(key) {
	case KeyConverter:
		cfg.HasConverter = true

	case KeyReflect:
		v, ok := e.resolver.Resolve(init)
		cfg.Reflect = ok && v.IsTrue()

	case KeyAttribute:
		cfg.Attribute = attributeOf(init)
		cfg.Node.Attribute = init

	case KeyType:
		cfg.Type = TypeOf(init)
		cfg.Node.Type = init

	case KeyValue:
		cfg.Default = nil
		if v, ok := e.resolver.Resolve(init); ok {
			cfg.Default = &v
		}

	default:
	}

	return cfg
}

func attributeOf(init tsast.Expr) *Attribute {
	switch x := init.(type) {
	case *tsast.BooleanLiteral:
		return AttributeBool(x.Value)
	case *tsast.StringLiteral:
		return NamedAttribute(x.Value)
	default:
		return nil
	}
}

// constructorTypes maps constructor identifiers to type descriptors
var constructorTypes = map[string]func() *Type{
	"String":             stringType,
	"StringConstructor":  stringType,
	"Number":             numberType,
	"NumberConstructor":  numberType,
	"Boolean":            booleanType,
	"BooleanConstructor": booleanType,
	"Array":              arrayType,
	"ArrayConstructor":   arrayType,
	"Object":             objectType,
	"ObjectConstructor":  objectType,
}

func stringType() *Type  { return &Type{Kind: TypeString} }
func numberType() *Type  { return &Type{Kind: TypeNumber} }
func booleanType() *Type { return &Type{Kind: TypeBoolean} }

func arrayType() *Type {
	return &Type{Kind: TypeArray, Element: &Type{Kind: TypeAny}}
}

func objectType() *Type {
	return &Type{Kind: TypeObject, Members: []TypeMember{}}
}

// TypeOf maps a `type` option initializer to a descriptor. Known
// constructor identifiers map to their kind; everything else becomes a
// raw descriptor holding the exact source text.
func TypeOf(init tsast.Expr) *Type {
	if init == nil {
		return &Type{Kind: TypeRaw}
	}
	if id, ok := init.(*tsast.Identifier); ok {
		if mk, found := constructorTypes[id.Name]; found {
			return mk()
		}
	}
	return &Type{Kind: TypeRaw, Raw: init.Text()}
}
