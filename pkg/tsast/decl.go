package tsast

// SourceFile is a parsed TypeScript or JavaScript module
type SourceFile struct {
	Path      string
	Classes   []*ClassDecl
	Variables []*VariableDecl
	HasErrors bool
}

// Variable looks up a top-level variable declaration by name
func (f *SourceFile) Variable(name string) *VariableDecl {
	for _, v := range f.Variables {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// Class looks up a class declaration by name
func (f *SourceFile) Class(name string) *ClassDecl {
	for _, c := range f.Classes {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Decorated is implemented by nodes that can carry decorators.
type Decorated interface {
	Node
	DecoratorList() []*Decorator
}

// ClassDecl is a class declaration or class expression
type ClassDecl struct {
	base
	Name       string
	Extends    Expr
	Exported   bool
	Decorators []*Decorator
	Members    []*Member
}

// DecoratorList returns the decorators attached to the class
func (c *ClassDecl) DecoratorList() []*Decorator { return c.Decorators }

// Member looks up a member by name, preferring instance members
func (c *ClassDecl) Member(name string) *Member {
	var static *Member
	for _, m := range c.Members {
		if m.Name != name {
			continue
		}
		if !m.Static {
			return m
		}
		if static == nil {
			static = m
		}
	}
	return static
}

// MemberKind classifies class members
type MemberKind string

const (
	MemberField    MemberKind = "field"
	MemberMethod   MemberKind = "method"
	MemberGetter   MemberKind = "getter"
	MemberSetter   MemberKind = "setter"
	MemberAccessor MemberKind = "accessor"
)

// Member is a class field, method or accessor
type Member struct {
	base
	Name        string
	Kind        MemberKind
	Static      bool
	Decorators  []*Decorator
	TypeText    string // declared type annotation without the colon
	Initializer Expr   // field initializer, nil for methods
	Body        *Block // method body, nil for fields
	NameSpan    Span
}

// DecoratorList returns the decorators attached to the member
func (m *Member) DecoratorList() []*Decorator { return m.Decorators }

// VariableDecl is a top-level `const`, `let` or `var` binding
type VariableDecl struct {
	base
	Name  string
	Const bool
	Init  Expr
}
