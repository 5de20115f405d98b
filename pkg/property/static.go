package property

import (
	"strings"

	"github.com/simonhull/firebird-suite/wren/pkg/tsast"
)

// StaticProperty is one entry of a legacy `static properties` declaration
type StaticProperty struct {
	Name   string
	Config Config
	Node   *tsast.PropertyAssignment
}

// ExtractStatic reads the pre-decorator declaration style:
//
//	static properties = { open: { type: Boolean, reflect: true } };
//	static get properties() { return { title: String }; }
//
// Each entry's options object goes through the same interpretation as a
// decorator argument. A bare constructor such as `title: String` is
// shorthand for `{ type: String }`. Entries of any other shape yield the
// zero Config.
func (e *Extractor) ExtractStatic(class *tsast.ClassDecl) []StaticProperty {
	obj := staticPropertiesObject(class)
	if obj == nil {
		return nil
	}

	var props []StaticProperty
	for _, m := range obj.Members {
		pa, ok := m.(*tsast.PropertyAssignment)
		if !ok {
			continue
		}

		var cfg Config
		switch init := tsast.Unparen(pa.Initializer).(type) {
		case *tsast.ObjectLiteral:
			cfg = e.Fold(init, cfg)
		case *tsast.Identifier:
			cfg = e.Interpret(KeyType.String(), init, cfg)
		}

		props = append(props, StaticProperty{Name: pa.Key, Config: cfg, Node: pa})
	}
	return props
}

func staticPropertiesObject(class *tsast.ClassDecl) *tsast.ObjectLiteral {
	if class == nil {
		return nil
	}
	for _, m := range class.Members {
		if !m.Static || m.Name != "properties" {
			continue
		}

		var expr tsast.Expr
		switch m.Kind {
		case tsast.MemberField:
			expr = m.Initializer
		case tsast.MemberGetter:
			if m.Body != nil && len(m.Body.Returns) > 0 {
				expr = m.Body.Returns[len(m.Body.Returns)-1]
			}
		}
		if obj, ok := tsast.Unparen(expr).(*tsast.ObjectLiteral); ok {
			return obj
		}
	}
	return nil
}

// AttributeName derives the observed attribute name of a property.
// Without an explicit name the member name is lowercased; ok is false
// when attribute observation is turned off.
func AttributeName(memberName string, cfg Config) (name string, ok bool) {
	if name, named := cfg.Attribute.Name(); named {
		return name, true
	}
	if !cfg.Attribute.Enabled() {
		return "", false
	}
	return strings.ToLower(memberName), true
}
