package analyzer

import (
	"github.com/simonhull/firebird-suite/wren/pkg/conventions"
	"github.com/simonhull/firebird-suite/wren/pkg/literal"
	"github.com/simonhull/firebird-suite/wren/pkg/property"
	"github.com/simonhull/firebird-suite/wren/pkg/tsast"
)

// Project represents an analyzed component library
type Project struct {
	Name     string
	RootPath string
	Files    int            // source files discovered
	Modules  []*Module      // files declaring components, sorted by path
	Skipped  []*SkippedFile // files that could not be analyzed, sorted by path
}

// Components returns every component of the project in module order
func (p *Project) Components() []*Component {
	var out []*Component
	for _, m := range p.Modules {
		out = append(out, m.Components...)
	}
	return out
}

// SkippedFile records a file that failed to analyze
type SkippedFile struct {
	Path string
	Err  error
}

// Module is one analyzed source file. Modules may be shared through the
// cache and must not be modified after analysis.
type Module struct {
	Path       string
	Hash       string // hex sha256 of the source
	HasErrors  bool   // the source had syntax errors; results may be partial
	Components []*Component
}

// Component is a class that declares reactive properties
type Component struct {
	Name       string
	TagName    string // from @customElement("tag"), empty if unregistered
	Exported   bool
	Superclass string // source text of the extends clause
	Convention *conventions.Match
	Properties []*Property
	Span       tsast.Span
}

// Property returns the named property, or nil
func (c *Component) Property(name string) *Property {
	for _, p := range c.Properties {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Source tells where a property was declared
type Source string

const (
	SourceDecorator Source = "decorator"
	SourceStatic    Source = "static"
)

// Property is one reactive property of a component
type Property struct {
	Name   string
	Source Source
	Kind   tsast.MemberKind // empty for SourceStatic
	Config property.Config

	// Attribute is the observed attribute name; HasAttribute is false when
	// the property is not observed as an attribute.
	Attribute    string
	HasAttribute bool

	// TypeText is the declared TypeScript annotation, if any
	TypeText string

	// Initial is the statically known field initializer, if any
	Initial *literal.Value

	Span tsast.Span
}
