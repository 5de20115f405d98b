package property

import "github.com/simonhull/firebird-suite/wren/pkg/tsast"

// DecoratorName is the callee that marks a reactive property
const DecoratorName = "property"

// LocateDecorator returns the call expression of the first `@property(...)`
// decorator on node, or nil if there is none.
func LocateDecorator(node tsast.Decorated) *tsast.CallExpression {
	return LocateNamed(node, DecoratorName)
}

// LocateNamed returns the call expression of the first decorator on node
// whose callee is the bare identifier name. Decorators that are not calls,
// such as `@property` without parentheses, never match.
func LocateNamed(node tsast.Decorated, name string) *tsast.CallExpression {
	if node == nil {
		return nil
	}
	for _, d := range node.DecoratorList() {
		call := d.Call()
		if call == nil {
			continue
		}
		if id, ok := call.Callee.(*tsast.Identifier); ok && id.Name == name {
			return call
		}
	}
	return nil
}
