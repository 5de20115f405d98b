package conventions

import (
	"strings"

	"github.com/simonhull/firebird-suite/wren/pkg/property"
	"github.com/simonhull/firebird-suite/wren/pkg/tsast"
)

// Categories group patterns for reporting
const (
	CategoryElement = "element" // reactive custom element
	CategoryVanilla = "vanilla" // custom element without a reactive base
)

// CustomElementDecorator registers a class under a tag name
const CustomElementDecorator = "customElement"

// Pattern represents an observable structural pattern of a class
type Pattern struct {
	ID          string
	Name        string  // "LitElement" (for classification)
	DisplayName string  // "Extends LitElement" (for docs)
	Description string
	Category    string  // CategoryElement, CategoryVanilla
	Confidence  float64 // 0.0-1.0
	Tags        []string
	Examples    []string
	MatchClass  func(*tsast.ClassDecl) bool
}

// DefaultPatterns returns the built-in reactive element patterns
func DefaultPatterns() []Pattern {
	return []Pattern{
		extendsPattern("extends-lit-element", "LitElement", 0.99, "class MyCard extends LitElement"),
		extendsPattern("extends-reactive-element", "ReactiveElement", 0.95, "class MyCounter extends ReactiveElement"),
		extendsPattern("extends-polymer-element", "PolymerElement", 0.9, "class XApp extends PolymerElement"),
		{
			ID:          "custom-element-decorator",
			Name:        "customElement",
			DisplayName: "@customElement decorator",
			Description: "Classes registered with @customElement(\"tag-name\")",
			Category:    CategoryElement,
			Confidence:  0.9,
			Tags:        []string{"decorator", "registration"},
			Examples:    []string{`@customElement("my-card") class MyCard`},
			MatchClass: func(c *tsast.ClassDecl) bool {
				return property.LocateNamed(c, CustomElementDecorator) != nil
			},
		},
		{
			ID:          "suffix-element",
			Name:        "Element",
			DisplayName: "Element Suffix",
			Description: "Subclasses whose name ends in 'Element', usually an app-level base",
			Category:    CategoryElement,
			Confidence:  0.5,
			Tags:        []string{"naming-pattern", "suffix"},
			Examples:    []string{"class AppElement extends BaseElement"},
			MatchClass: func(c *tsast.ClassDecl) bool {
				return c.Extends != nil && strings.HasSuffix(c.Name, "Element")
			},
		},
		{
			ID:          "extends-html-element",
			Name:        "HTMLElement",
			DisplayName: "Extends HTMLElement",
			Description: "Hand-written custom elements without reactive properties",
			Category:    CategoryVanilla,
			Confidence:  0.95,
			Tags:        []string{"inheritance", "platform"},
			Examples:    []string{"class MyButton extends HTMLElement"},
			MatchClass: func(c *tsast.ClassDecl) bool {
				return extendsAny(c, "HTMLElement")
			},
		},
	}
}

// BaseClassPattern matches subclasses of project-specific bases
func BaseClassPattern(names ...string) Pattern {
	return Pattern{
		ID:          "configured-base-class",
		Name:        strings.Join(names, ", "),
		DisplayName: "Configured base class",
		Description: "Classes extending a base class listed in analysis.base_classes",
		Category:    CategoryElement,
		Confidence:  0.9,
		Tags:        []string{"inheritance", "configured"},
		Examples:    names,
		MatchClass: func(c *tsast.ClassDecl) bool {
			return extendsAny(c, names...)
		},
	}
}

func extendsPattern(id, base string, confidence float64, example string) Pattern {
	return Pattern{
		ID:          id,
		Name:        base,
		DisplayName: "Extends " + base,
		Description: "Classes extending " + base + ", directly or through mixins",
		Category:    CategoryElement,
		Confidence:  confidence,
		Tags:        []string{"inheritance"},
		Examples:    []string{example},
		MatchClass: func(c *tsast.ClassDecl) bool {
			return extendsAny(c, base)
		},
	}
}

func extendsAny(c *tsast.ClassDecl, names ...string) bool {
	for _, base := range BaseNames(c.Extends) {
		for _, name := range names {
			if base == name {
				return true
			}
		}
	}
	return false
}

// BaseNames lists the class names an `extends` clause mentions. Mixin
// applications such as `Focusable(Themed(LitElement))` contribute every
// identifier argument, and `lit.LitElement` contributes `LitElement`.
func BaseNames(heritage tsast.Expr) []string {
	switch e := tsast.Unparen(heritage).(type) {
	case *tsast.Identifier:
		return []string{e.Name}
	case *tsast.PropertyAccess:
		return []string{e.Name}
	case *tsast.CallExpression:
		var names []string
		for _, arg := range e.Arguments {
			names = append(names, BaseNames(arg)...)
		}
		return names
	default:
		return nil
	}
}
