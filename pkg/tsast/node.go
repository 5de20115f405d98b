package tsast

// Position is a zero-based line and column in a source file.
type Position struct {
	Line   int
	Column int
}

// Span locates a node in its source file
type Span struct {
	Start     Position
	End       Position
	StartByte int
	EndByte   int
}

// Node is implemented by every syntax tree node.
type Node interface {
	// Span returns the node's location in the source file
	Span() Span
	// Text returns the exact source text of the node
	Text() string
}

// base holds the location and text shared by all nodes
type base struct {
	span Span
	text string
}

func (b base) Span() Span   { return b.span }
func (b base) Text() string { return b.text }

// Expr is the closed set of expression variants.
//
// The unexported marker method keeps the set sealed to this package so
// type switches over Expr only ever have to consider the variants below.
type Expr interface {
	Node
	exprNode()
}

// Identifier is a bare name such as `String` or `myVar`.
type Identifier struct {
	base
	Name string
}

// StringLiteral is a single or double quoted string.
// Value holds the unescaped contents.
type StringLiteral struct {
	base
	Value string
}

// NumericLiteral is a number token. Raw is the token as written.
type NumericLiteral struct {
	base
	Raw string
}

// BooleanLiteral is the `true` or `false` keyword.
type BooleanLiteral struct {
	base
	Value bool
}

// NullLiteral is the `null` keyword.
type NullLiteral struct {
	base
}

// UndefinedLiteral is the `undefined` identifier.
type UndefinedLiteral struct {
	base
}

// TemplateLiteral is a backtick string. Substitutions reports whether it
// contains `${...}` parts, in which case Value is meaningless.
type TemplateLiteral struct {
	base
	Value         string
	Substitutions bool
}

// ArrayLiteral is `[a, b, c]`.
type ArrayLiteral struct {
	base
	Elements []Expr
}

// ObjectLiteral is `{ key: value, ... }`.
type ObjectLiteral struct {
	base
	Members []ObjectMember
}

// CallExpression is `callee(args...)`.
type CallExpression struct {
	base
	Callee    Expr
	Arguments []Expr
}

// PropertyAccess is `object.name`.
type PropertyAccess struct {
	base
	Object Expr
	Name   string
}

// UnaryExpression is a prefix operator applied to an operand, e.g. `-1`.
type UnaryExpression struct {
	base
	Operator string
	Operand  Expr
}

// ParenExpression is `(inner)`.
type ParenExpression struct {
	base
	Inner Expr
}

// AsExpression is `inner as T` or `inner satisfies T`.
type AsExpression struct {
	base
	Inner Expr
}

// OtherExpr is any expression form without a dedicated variant.
// Kind is the tree-sitter node type it was lowered from.
type OtherExpr struct {
	base
	Kind string
}

func (*Identifier) exprNode()       {}
func (*StringLiteral) exprNode()    {}
func (*NumericLiteral) exprNode()   {}
func (*BooleanLiteral) exprNode()   {}
func (*NullLiteral) exprNode()      {}
func (*UndefinedLiteral) exprNode() {}
func (*TemplateLiteral) exprNode()  {}
func (*ArrayLiteral) exprNode()     {}
func (*ObjectLiteral) exprNode()    {}
func (*CallExpression) exprNode()   {}
func (*PropertyAccess) exprNode()   {}
func (*UnaryExpression) exprNode()  {}
func (*ParenExpression) exprNode()  {}
func (*AsExpression) exprNode()     {}
func (*OtherExpr) exprNode()        {}

// ObjectMember is the closed set of object literal member variants.
type ObjectMember interface {
	Node
	objectMember()
}

// PropertyAssignment is a plain `key: value` member. Key is the property
// name with quotes removed when it was written as a string.
type PropertyAssignment struct {
	base
	Key         string
	Initializer Expr
}

// ShorthandProperty is `{ name }`.
type ShorthandProperty struct {
	base
	Name string
}

// SpreadAssignment is `{ ...expr }`.
type SpreadAssignment struct {
	base
	Expr Expr
}

// MethodProperty is `{ name() { ... } }`, including getters and setters.
type MethodProperty struct {
	base
	Name string
	Body *Block
}

// ComputedProperty is `{ [expr]: value }`.
type ComputedProperty struct {
	base
	Key         Expr
	Initializer Expr
}

func (*PropertyAssignment) objectMember() {}
func (*ShorthandProperty) objectMember()  {}
func (*SpreadAssignment) objectMember()   {}
func (*MethodProperty) objectMember()     {}
func (*ComputedProperty) objectMember()   {}

// Block is a function body. Only its return statements are retained.
type Block struct {
	base
	Returns []Expr
}

// Decorator is `@expr` attached to a class or class member.
type Decorator struct {
	base
	Expr Expr
}

// Call returns the decorator expression as a call, or nil when the
// decorator is a bare reference such as `@property`.
func (d *Decorator) Call() *CallExpression {
	call, _ := d.Expr.(*CallExpression)
	return call
}

// Unparen strips any parentheses and `as`/`satisfies` wrappers.
func Unparen(e Expr) Expr {
	for {
		switch x := e.(type) {
		case *ParenExpression:
			e = x.Inner
		case *AsExpression:
			e = x.Inner
		default:
			return e
		}
	}
}
