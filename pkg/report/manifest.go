// Package report turns an analyzed project into a serializable manifest
// and writes it as JSON, YAML, Markdown or HTML.
package report

import (
	"math"
	"path/filepath"

	"github.com/simonhull/firebird-suite/wren"
	"github.com/simonhull/firebird-suite/wren/pkg/analyzer"
	"github.com/simonhull/firebird-suite/wren/pkg/tsast"
)

// SchemaVersion identifies the manifest layout
const SchemaVersion = "1"

// Manifest is the serialized form of an analyzed project
type Manifest struct {
	SchemaVersion string        `json:"schemaVersion" yaml:"schemaVersion" jsonschema:"enum=1"`
	Tool          string        `json:"tool" yaml:"tool" jsonschema:"description=Name and version of the generating tool"`
	Project       string        `json:"project,omitempty" yaml:"project,omitempty"`
	Files         int           `json:"files" yaml:"files" jsonschema:"minimum=0,description=Number of source files analyzed"`
	Modules       []Module      `json:"modules" yaml:"modules"`
	Skipped       []SkippedFile `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// Module lists the components declared in one source file
type Module struct {
	Path       string      `json:"path" yaml:"path" jsonschema:"description=Slash-separated path relative to the analyzed root"`
	Partial    bool        `json:"partial,omitempty" yaml:"partial,omitempty" jsonschema:"description=The file had syntax errors"`
	Components []Component `json:"components" yaml:"components"`
}

// Component describes one custom element class
type Component struct {
	Name       string     `json:"name" yaml:"name"`
	TagName    string     `json:"tagName,omitempty" yaml:"tagName,omitempty"`
	Exported   bool       `json:"exported" yaml:"exported"`
	Superclass string     `json:"superclass,omitempty" yaml:"superclass,omitempty"`
	Convention string     `json:"convention,omitempty" yaml:"convention,omitempty" jsonschema:"description=ID of the pattern that classified the class"`
	Confidence float64    `json:"confidence,omitempty" yaml:"confidence,omitempty" jsonschema:"minimum=0,maximum=1"`
	Location   Location   `json:"location" yaml:"location"`
	Properties []Property `json:"properties" yaml:"properties"`
}

// Property describes one reactive property
type Property struct {
	Name         string   `json:"name" yaml:"name"`
	Source       string   `json:"source" yaml:"source" jsonschema:"enum=decorator,enum=static"`
	Kind         string   `json:"kind,omitempty" yaml:"kind,omitempty" jsonschema:"enum=field,enum=method,enum=getter,enum=setter,enum=accessor"`
	Attribute    string   `json:"attribute,omitempty" yaml:"attribute,omitempty" jsonschema:"description=Observed attribute name; absent when the property is not observed"`
	NoAttribute  bool     `json:"noAttribute,omitempty" yaml:"noAttribute,omitempty"`
	Type         string   `json:"type,omitempty" yaml:"type,omitempty" jsonschema:"description=Type from the type option in TypeScript notation"`
	TypeKind     string   `json:"typeKind,omitempty" yaml:"typeKind,omitempty" jsonschema:"enum=string,enum=number,enum=boolean,enum=array,enum=object,enum=any,enum=raw"`
	DeclaredType string   `json:"declaredType,omitempty" yaml:"declaredType,omitempty" jsonschema:"description=Type annotation of the class member"`
	Reflect      bool     `json:"reflect,omitempty" yaml:"reflect,omitempty"`
	Converter    bool     `json:"converter,omitempty" yaml:"converter,omitempty"`
	Default      any      `json:"default,omitempty" yaml:"default,omitempty" jsonschema:"description=Default from the legacy value option"`
	Initial      any      `json:"initial,omitempty" yaml:"initial,omitempty" jsonschema:"description=Statically known field initializer"`
	Location     Location `json:"location" yaml:"location"`
}

// Location is a one-based source position
type Location struct {
	Line   int `json:"line" yaml:"line" jsonschema:"minimum=1"`
	Column int `json:"column" yaml:"column" jsonschema:"minimum=1"`
}

// SkippedFile is a file that could not be analyzed
type SkippedFile struct {
	Path   string `json:"path" yaml:"path"`
	Reason string `json:"reason" yaml:"reason"`
}

// Build converts proj into a Manifest. Paths are made relative to the
// project root.
func Build(proj *analyzer.Project) *Manifest {
	m := &Manifest{
		SchemaVersion: SchemaVersion,
		Tool:          wren.Name + " " + wren.Version,
		Project:       proj.Name,
		Files:         proj.Files,
		Modules:       make([]Module, 0, len(proj.Modules)),
	}

	for _, mod := range proj.Modules {
		entry := Module{
			Path:       relPath(proj.RootPath, mod.Path),
			Partial:    mod.HasErrors,
			Components: make([]Component, 0, len(mod.Components)),
		}
		for _, c := range mod.Components {
			entry.Components = append(entry.Components, component(c))
		}
		m.Modules = append(m.Modules, entry)
	}

	for _, s := range proj.Skipped {
		m.Skipped = append(m.Skipped, SkippedFile{
			Path:   relPath(proj.RootPath, s.Path),
			Reason: s.Err.Error(),
		})
	}
	return m
}

func component(c *analyzer.Component) Component {
	out := Component{
		Name:       c.Name,
		TagName:    c.TagName,
		Exported:   c.Exported,
		Superclass: c.Superclass,
		Location:   location(c.Span),
		Properties: make([]Property, 0, len(c.Properties)),
	}
	if c.Convention != nil {
		out.Convention = c.Convention.PatternID
		out.Confidence = c.Convention.Confidence
	}
	for _, p := range c.Properties {
		out.Properties = append(out.Properties, prop(p))
	}
	return out
}

func prop(p *analyzer.Property) Property {
	cfg := p.Config
	out := Property{
		Name:         p.Name,
		Source:       string(p.Source),
		Kind:         string(p.Kind),
		NoAttribute:  !p.HasAttribute,
		DeclaredType: p.TypeText,
		Reflect:      cfg.Reflect,
		Converter:    cfg.HasConverter,
		Location:     location(p.Span),
	}
	if p.HasAttribute {
		out.Attribute = p.Attribute
	}
	if cfg.Type != nil {
		out.Type = cfg.Type.String()
		out.TypeKind = string(cfg.Type.Kind)
	}
	if cfg.Default != nil {
		out.Default = finite(cfg.Default.Interface())
	}
	if p.Initial != nil {
		out.Initial = finite(p.Initial.Interface())
	}
	return out
}

// finite replaces NaN and the infinities, which JSON cannot encode, with
// their source spelling.
func finite(v any) any {
	switch x := v.(type) {
	case float64:
		switch {
		case math.IsNaN(x):
			return "NaN"
		case math.IsInf(x, 1):
			return "Infinity"
		case math.IsInf(x, -1):
			return "-Infinity"
		}
	case []any:
		for i, el := range x {
			x[i] = finite(el)
		}
	case map[string]any:
		for k, el := range x {
			x[k] = finite(el)
		}
	}
	return v
}

func location(s tsast.Span) Location {
	return Location{Line: s.Start.Line + 1, Column: s.Start.Column + 1}
}

func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return filepath.ToSlash(filepath.Base(path))
	}
	return filepath.ToSlash(rel)
}
