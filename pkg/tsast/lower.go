package tsast

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// lowerer converts a tree-sitter concrete syntax tree into the typed tree
type lowerer struct {
	src  []byte
	file *SourceFile
}

func (l *lowerer) base(n *sitter.Node) base {
	start, end := n.StartPoint(), n.EndPoint()
	return base{
		span: Span{
			Start:     Position{Line: int(start.Row), Column: int(start.Column)},
			End:       Position{Line: int(end.Row), Column: int(end.Column)},
			StartByte: int(n.StartByte()),
			EndByte:   int(n.EndByte()),
		},
		text: n.Content(l.src),
	}
}

// named returns the named children of n, skipping comments
func named(n *sitter.Node) []*sitter.Node {
	count := int(n.NamedChildCount())
	children := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		child := n.NamedChild(i)
		if child == nil || child.Type() == "comment" {
			continue
		}
		children = append(children, child)
	}
	return children
}

func (l *lowerer) program(root *sitter.Node) {
	for _, child := range named(root) {
		l.statement(child, nil, false)
	}
}

func (l *lowerer) statement(n *sitter.Node, decorators []*Decorator, exported bool) {
	switch n.Type() {
	case "export_statement":
		var decs []*Decorator
		for _, child := range named(n) {
			if child.Type() == "decorator" {
				decs = append(decs, l.decorator(child))
				continue
			}
			l.statement(child, decs, true)
		}
	case "class_declaration", "abstract_class_declaration", "class":
		l.class(n, "", decorators, exported)
	case "lexical_declaration", "variable_declaration":
		l.variables(n, exported)
	default:
		l.findClasses(n)
	}
}

// findClasses picks up class expressions nested anywhere inside n,
// e.g. `customElements.define("x-y", class extends LitElement {})`.
func (l *lowerer) findClasses(n *sitter.Node) {
	for _, child := range named(n) {
		switch child.Type() {
		case "class", "class_declaration", "abstract_class_declaration":
			l.class(child, "", nil, false)
		default:
			l.findClasses(child)
		}
	}
}

func (l *lowerer) variables(n *sitter.Node, exported bool) {
	isConst := n.ChildCount() > 0 && n.Child(0).Type() == "const"

	for _, decl := range named(n) {
		if decl.Type() != "variable_declarator" {
			continue
		}
		name := decl.ChildByFieldName("name")
		value := decl.ChildByFieldName("value")
		if name == nil || name.Type() != "identifier" {
			if value != nil {
				l.findClasses(value)
			}
			continue
		}

		v := &VariableDecl{
			base:  l.base(decl),
			Name:  name.Content(l.src),
			Const: isConst,
		}
		if value != nil {
			v.Init = l.expr(value)
			if value.Type() == "class" {
				l.class(value, v.Name, nil, exported)
			} else {
				l.findClasses(value)
			}
		}
		l.file.Variables = append(l.file.Variables, v)
	}
}

func (l *lowerer) class(n *sitter.Node, fallbackName string, decorators []*Decorator, exported bool) {
	c := &ClassDecl{
		base:       l.base(n),
		Name:       fallbackName,
		Exported:   exported,
		Decorators: append([]*Decorator(nil), decorators...),
	}
	if name := n.ChildByFieldName("name"); name != nil {
		c.Name = name.Content(l.src)
	}

	for _, child := range named(n) {
		switch child.Type() {
		case "decorator":
			c.Decorators = append(c.Decorators, l.decorator(child))
		case "class_heritage":
			l.heritage(child, c)
		case "class_body":
			c.Members = l.classBody(child)
		}
	}

	l.file.Classes = append(l.file.Classes, c)
}

func (l *lowerer) heritage(n *sitter.Node, c *ClassDecl) {
	for _, h := range named(n) {
		switch h.Type() {
		case "extends_clause":
			if v := h.ChildByFieldName("value"); v != nil {
				c.Extends = l.expr(v)
			} else if children := named(h); len(children) > 0 {
				c.Extends = l.expr(children[0])
			}
		case "implements_clause":
		default:
			// javascript grammar puts the superclass expression directly here
			if c.Extends == nil {
				c.Extends = l.expr(h)
			}
		}
	}
}

func (l *lowerer) classBody(body *sitter.Node) []*Member {
	var members []*Member
	var pending []*Decorator

	for _, child := range named(body) {
		switch child.Type() {
		case "decorator":
			pending = append(pending, l.decorator(child))
		case "public_field_definition", "field_definition":
			members = append(members, l.field(child, pending))
			pending = nil
		case "method_definition":
			members = append(members, l.method(child, pending))
			pending = nil
		default:
			pending = nil
		}
	}

	return members
}

// modifiers scans the anonymous tokens of a member for keywords
func (l *lowerer) modifiers(n *sitter.Node, m *Member) {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		if child.Type() == "decorator" {
			m.Decorators = append(m.Decorators, l.decorator(child))
			continue
		}
		if child.IsNamed() {
			continue
		}
		switch child.Type() {
		case "static":
			m.Static = true
		case "accessor":
			m.Kind = MemberAccessor
		case "get":
			m.Kind = MemberGetter
		case "set":
			m.Kind = MemberSetter
		}
	}
}

func (l *lowerer) field(n *sitter.Node, pending []*Decorator) *Member {
	m := &Member{
		base:       l.base(n),
		Kind:       MemberField,
		Decorators: append([]*Decorator(nil), pending...),
	}
	l.modifiers(n, m)

	name := n.ChildByFieldName("name")
	if name == nil {
		name = n.ChildByFieldName("property")
	}
	if name != nil {
		m.Name = l.propertyName(name)
		m.NameSpan = l.base(name).span
	}
	if t := n.ChildByFieldName("type"); t != nil {
		m.TypeText = strings.TrimSpace(strings.TrimPrefix(t.Content(l.src), ":"))
	}
	if v := n.ChildByFieldName("value"); v != nil {
		m.Initializer = l.expr(v)
	}
	return m
}

func (l *lowerer) method(n *sitter.Node, pending []*Decorator) *Member {
	m := &Member{
		base:       l.base(n),
		Kind:       MemberMethod,
		Decorators: append([]*Decorator(nil), pending...),
	}
	l.modifiers(n, m)

	if name := n.ChildByFieldName("name"); name != nil {
		m.Name = l.propertyName(name)
		m.NameSpan = l.base(name).span
	}
	if rt := n.ChildByFieldName("return_type"); rt != nil {
		m.TypeText = strings.TrimSpace(strings.TrimPrefix(rt.Content(l.src), ":"))
	}
	if body := n.ChildByFieldName("body"); body != nil {
		m.Body = l.block(body)
	}
	return m
}

func (l *lowerer) block(n *sitter.Node) *Block {
	b := &Block{base: l.base(n)}
	for _, stmt := range named(n) {
		if stmt.Type() != "return_statement" {
			continue
		}
		if children := named(stmt); len(children) > 0 {
			b.Returns = append(b.Returns, l.expr(children[0]))
		}
	}
	return b
}

func (l *lowerer) decorator(n *sitter.Node) *Decorator {
	d := &Decorator{base: l.base(n)}
	if children := named(n); len(children) > 0 {
		d.Expr = l.expr(children[0])
	} else {
		d.Expr = &OtherExpr{base: l.base(n), Kind: n.Type()}
	}
	return d
}

func (l *lowerer) propertyName(n *sitter.Node) string {
	switch n.Type() {
	case "string":
		return l.stringValue(n)
	default:
		return n.Content(l.src)
	}
}

func (l *lowerer) stringValue(n *sitter.Node) string {
	raw := n.Content(l.src)
	if len(raw) >= 2 {
		raw = raw[1 : len(raw)-1]
	}
	return unescape(raw)
}

func (l *lowerer) expr(n *sitter.Node) Expr {
	b := l.base(n)

	switch n.Type() {
	case "identifier":
		if b.text == "undefined" {
			return &UndefinedLiteral{base: b}
		}
		return &Identifier{base: b, Name: b.text}
	case "undefined":
		return &UndefinedLiteral{base: b}
	case "string":
		return &StringLiteral{base: b, Value: l.stringValue(n)}
	case "number":
		return &NumericLiteral{base: b, Raw: b.text}
	case "true":
		return &BooleanLiteral{base: b, Value: true}
	case "false":
		return &BooleanLiteral{base: b, Value: false}
	case "null":
		return &NullLiteral{base: b}
	case "template_string":
		return l.template(n, b)
	case "array":
		arr := &ArrayLiteral{base: b}
		for _, el := range named(n) {
			arr.Elements = append(arr.Elements, l.expr(el))
		}
		return arr
	case "object":
		obj := &ObjectLiteral{base: b}
		for _, child := range named(n) {
			if m := l.objectMember(child); m != nil {
				obj.Members = append(obj.Members, m)
			}
		}
		return obj
	case "call_expression":
		fn := n.ChildByFieldName("function")
		args := n.ChildByFieldName("arguments")
		if fn == nil || args == nil || args.Type() != "arguments" {
			// tagged templates and malformed calls
			return &OtherExpr{base: b, Kind: n.Type()}
		}
		call := &CallExpression{base: b, Callee: l.expr(fn)}
		for _, arg := range named(args) {
			call.Arguments = append(call.Arguments, l.expr(arg))
		}
		return call
	case "member_expression":
		obj := n.ChildByFieldName("object")
		prop := n.ChildByFieldName("property")
		if obj == nil || prop == nil {
			return &OtherExpr{base: b, Kind: n.Type()}
		}
		return &PropertyAccess{base: b, Object: l.expr(obj), Name: prop.Content(l.src)}
	case "unary_expression":
		return l.unary(n, b)
	case "parenthesized_expression":
		children := named(n)
		if len(children) != 1 {
			return &OtherExpr{base: b, Kind: n.Type()}
		}
		return &ParenExpression{base: b, Inner: l.expr(children[0])}
	case "as_expression", "satisfies_expression", "non_null_expression", "type_assertion":
		for _, child := range named(n) {
			if child.Type() != "type_arguments" {
				return &AsExpression{base: b, Inner: l.expr(child)}
			}
		}
		return &OtherExpr{base: b, Kind: n.Type()}
	default:
		return &OtherExpr{base: b, Kind: n.Type()}
	}
}

func (l *lowerer) unary(n *sitter.Node, b base) Expr {
	op := n.ChildByFieldName("operator")
	arg := n.ChildByFieldName("argument")
	if op == nil && n.ChildCount() == 2 {
		op = n.Child(0)
		arg = n.Child(1)
	}
	if op == nil || arg == nil {
		return &OtherExpr{base: b, Kind: n.Type()}
	}
	return &UnaryExpression{base: b, Operator: op.Type(), Operand: l.expr(arg)}
}

func (l *lowerer) template(n *sitter.Node, b base) Expr {
	t := &TemplateLiteral{base: b}
	for _, child := range named(n) {
		if child.Type() == "template_substitution" {
			t.Substitutions = true
			return t
		}
	}
	raw := b.text
	if len(raw) >= 2 {
		raw = raw[1 : len(raw)-1]
	}
	t.Value = unescape(raw)
	return t
}

func (l *lowerer) objectMember(n *sitter.Node) ObjectMember {
	b := l.base(n)

	switch n.Type() {
	case "pair":
		key := n.ChildByFieldName("key")
		value := n.ChildByFieldName("value")
		if key == nil || value == nil {
			return nil
		}
		if key.Type() == "computed_property_name" {
			cp := &ComputedProperty{base: b, Initializer: l.expr(value)}
			if inner := named(key); len(inner) > 0 {
				cp.Key = l.expr(inner[0])
			}
			return cp
		}
		return &PropertyAssignment{base: b, Key: l.propertyName(key), Initializer: l.expr(value)}
	case "shorthand_property_identifier":
		return &ShorthandProperty{base: b, Name: b.text}
	case "spread_element":
		sp := &SpreadAssignment{base: b}
		if inner := named(n); len(inner) > 0 {
			sp.Expr = l.expr(inner[0])
		}
		return sp
	case "method_definition":
		mp := &MethodProperty{base: b}
		if name := n.ChildByFieldName("name"); name != nil {
			mp.Name = l.propertyName(name)
		}
		if body := n.ChildByFieldName("body"); body != nil {
			mp.Body = l.block(body)
		}
		return mp
	default:
		return nil
	}
}
