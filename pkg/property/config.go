package property

import (
	"strconv"

	"github.com/simonhull/firebird-suite/wren/pkg/literal"
	"github.com/simonhull/firebird-suite/wren/pkg/tsast"
)

// Config is the normalized configuration of one reactive property.
//
// A Config is a value. Interpretation never writes through its pointer
// fields; every step that changes a field stores a freshly allocated
// value, so a Config handed out earlier is never affected by later
// steps.
type Config struct {
	// HasConverter is set once a `converter` option is seen. The
	// converter itself is not retained.
	HasConverter bool

	// Reflect is true only when `reflect` resolves to the literal true.
	Reflect bool

	// Attribute is nil when not specified.
	Attribute *Attribute

	// Type is nil when no `type` option is present.
	Type *Type

	// Default is the resolved value of the legacy `value` option, nil when
	// absent or unresolvable.
	Default *literal.Value

	// Node records where Attribute and Type came from.
	Node Provenance
}

// Provenance holds the initializer expressions that produced a field.
// It carries no meaning of its own; consumers use it for source positions.
type Provenance struct {
	Attribute tsast.Expr
	Type      tsast.Expr
}

// IsZero reports whether c is the empty configuration produced by a
// decorator without options.
func (c Config) IsZero() bool {
	return !c.HasConverter &&
		!c.Reflect &&
		c.Attribute == nil &&
		c.Type == nil &&
		c.Default == nil &&
		c.Node.Attribute == nil &&
		c.Node.Type == nil
}

// Attribute is an explicit attribute setting: true, false, or a custom
// attribute name.
type Attribute struct {
	named   bool
	enabled bool
	name    string
}

// AttributeBool returns the attribute setting for a `true` or `false` option
func AttributeBool(enabled bool) *Attribute {
	return &Attribute{enabled: enabled}
}

// NamedAttribute returns the attribute setting for a string option
func NamedAttribute(name string) *Attribute {
	return &Attribute{named: true, enabled: true, name: name}
}

// Name returns the custom attribute name, if one was given
func (a *Attribute) Name() (string, bool) {
	if a == nil || !a.named {
		return "", false
	}
	return a.name, true
}

// Bool returns the boolean setting when the option was `true` or `false`
func (a *Attribute) Bool() (value bool, ok bool) {
	if a == nil || a.named {
		return false, false
	}
	return a.enabled, true
}

// Enabled reports whether the property is observed as an attribute.
// Unspecified (nil) means enabled.
func (a *Attribute) Enabled() bool {
	return a == nil || a.enabled
}

// String renders the setting as it would appear in source
func (a *Attribute) String() string {
	switch {
	case a == nil:
		return ""
	case a.named:
		return strconv.Quote(a.name)
	case a.enabled:
		return "true"
	default:
		return "false"
	}
}

// TypeKind tags a type descriptor
type TypeKind string

const (
	TypeString  TypeKind = "string"
	TypeNumber  TypeKind = "number"
	TypeBoolean TypeKind = "boolean"
	TypeArray   TypeKind = "array"
	TypeObject  TypeKind = "object"
	TypeAny     TypeKind = "any"
	TypeRaw     TypeKind = "raw"
)

// Type describes the declared type of a property
type Type struct {
	Kind TypeKind

	// Element is the element type of TypeArray
	Element *Type

	// Members are the declared members of TypeObject. Always empty for
	// types read from a `type` option.
	Members []TypeMember

	// Raw is the source text of a TypeRaw descriptor
	Raw string
}

// TypeMember is a named member of an object type
type TypeMember struct {
	Name string
	Type *Type
}

// String renders the type in TypeScript notation
func (t *Type) String() string {
	if t == nil {
		return ""
	}
	switch t.Kind {
	case TypeArray:
		if t.Element == nil {
			return "any[]"
		}
		return t.Element.String() + "[]"
	case TypeObject:
		if len(t.Members) == 0 {
			return "object"
		}
		s := "{ "
		for i, m := range t.Members {
			if i > 0 {
				s += "; "
			}
			s += m.Name + ": " + m.Type.String()
		}
		return s + " }"
	case TypeRaw:
		return t.Raw
	default:
		return string(t.Kind)
	}
}
