// Package literal folds constant expressions of a syntax tree into values.
package literal

import (
	"math"
	"strconv"
	"strings"

	"github.com/simonhull/firebird-suite/wren/pkg/tsast"
)

// DefaultMaxDepth bounds identifier indirection
const DefaultMaxDepth = 16

// Resolver statically evaluates an expression. The boolean is false when
// the expression cannot be determined without running the program.
type Resolver interface {
	Resolve(expr tsast.Expr) (Value, bool)
}

// ResolverFunc adapts a function to the Resolver interface
type ResolverFunc func(expr tsast.Expr) (Value, bool)

// Resolve calls f(expr)
func (f ResolverFunc) Resolve(expr tsast.Expr) (Value, bool) {
	return f(expr)
}

// FileResolver resolves literals and references to top-level `const`
// bindings of a single source file.
type FileResolver struct {
	file     *tsast.SourceFile
	maxDepth int
}

// NewResolver creates a resolver scoped to file. A nil file resolves
// literals only.
func NewResolver(file *tsast.SourceFile) *FileResolver {
	return &FileResolver{file: file, maxDepth: DefaultMaxDepth}
}

// Resolve implements Resolver
func (r *FileResolver) Resolve(expr tsast.Expr) (Value, bool) {
	v, ok := r.resolve(expr, 0)
	if !ok {
		return Value{}, false
	}
	return Value{V: v}, true
}

func (r *FileResolver) resolve(expr tsast.Expr, depth int) (any, bool) {
	if expr == nil || depth > r.maxDepth {
		return nil, false
	}

	switch e := expr.(type) {
	case *tsast.StringLiteral:
		return e.Value, true
	case *tsast.TemplateLiteral:
		if e.Substitutions {
			return nil, false
		}
		return e.Value, true
	case *tsast.NumericLiteral:
		return ParseNumber(e.Raw)
	case *tsast.BooleanLiteral:
		return e.Value, true
	case *tsast.NullLiteral:
		return nil, true
	case *tsast.UndefinedLiteral:
		return Undefined, true
	case *tsast.ParenExpression:
		return r.resolve(e.Inner, depth)
	case *tsast.AsExpression:
		return r.resolve(e.Inner, depth)
	case *tsast.UnaryExpression:
		return r.unary(e, depth)
	case *tsast.ArrayLiteral:
		out := make([]any, 0, len(e.Elements))
		for _, el := range e.Elements {
			v, ok := r.resolve(el, depth+1)
			if !ok {
				return nil, false
			}
			out = append(out, v)
		}
		return out, true
	case *tsast.ObjectLiteral:
		out := make(map[string]any, len(e.Members))
		for _, m := range e.Members {
			pa, ok := m.(*tsast.PropertyAssignment)
			if !ok {
				return nil, false
			}
			v, ok := r.resolve(pa.Initializer, depth+1)
			if !ok {
				return nil, false
			}
			out[pa.Key] = v
		}
		return out, true
	case *tsast.Identifier:
		return r.identifier(e.Name, depth)
	case *tsast.PropertyAccess:
		obj, ok := r.resolve(e.Object, depth+1)
		if !ok {
			return nil, false
		}
		fields, ok := obj.(map[string]any)
		if !ok {
			return nil, false
		}
		v, ok := fields[e.Name]
		return v, ok
	default:
		return nil, false
	}
}

func (r *FileResolver) identifier(name string, depth int) (any, bool) {
	switch name {
	case "NaN":
		return math.NaN(), true
	case "Infinity":
		return math.Inf(1), true
	}
	if r.file == nil {
		return nil, false
	}
	decl := r.file.Variable(name)
	if decl == nil || !decl.Const || decl.Init == nil {
		return nil, false
	}
	return r.resolve(decl.Init, depth+1)
}

func (r *FileResolver) unary(e *tsast.UnaryExpression, depth int) (any, bool) {
	v, ok := r.resolve(e.Operand, depth+1)
	if !ok {
		return nil, false
	}
	switch e.Operator {
	case "!":
		return !truthy(v), true
	case "-":
		if n, ok := v.(float64); ok {
			return -n, true
		}
	case "+":
		if n, ok := v.(float64); ok {
			return n, true
		}
	case "void":
		return Undefined, true
	}
	return nil, false
}

// ParseNumber parses a JavaScript numeric literal. BigInt literals are
// not representable and report false.
func ParseNumber(raw string) (any, bool) {
	s := strings.ReplaceAll(raw, "_", "")
	if s == "" || strings.HasSuffix(s, "n") {
		return nil, false
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return nil, false
			}
			return float64(n), true
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}
	return f, true
}
