package analyzer

import (
	"github.com/simonhull/firebird-suite/wren/pkg/conventions"
	"github.com/simonhull/firebird-suite/wren/pkg/literal"
	"github.com/simonhull/firebird-suite/wren/pkg/logger"
	"github.com/simonhull/firebird-suite/wren/pkg/property"
	"github.com/simonhull/firebird-suite/wren/pkg/tsast"
)

func (a *Analyzer) buildModule(file *tsast.SourceFile, log logger.Logger) *Module {
	resolver := literal.NewResolver(file)
	extractor := property.NewExtractor(resolver, property.WithDecoratorName(a.decorator))

	m := &Module{Path: file.Path, HasErrors: file.HasErrors}
	for _, class := range file.Classes {
		if c := a.component(class, extractor, resolver, log); c != nil {
			m.Components = append(m.Components, c)
		}
	}
	return m
}

// component returns nil for classes that are neither recognized elements
// nor declare any reactive property.
func (a *Analyzer) component(class *tsast.ClassDecl, extractor *property.Extractor, resolver literal.Resolver, log logger.Logger) *Component {
	log = log.WithFields(logger.F("class", class.Name))

	var props []*Property
	seen := make(map[string]bool)

	for _, member := range class.Members {
		cfg, ok := extractor.Extract(member)
		if !ok || seen[member.Name] {
			continue
		}
		seen[member.Name] = true

		p := &Property{
			Name:     member.Name,
			Source:   SourceDecorator,
			Kind:     member.Kind,
			Config:   cfg,
			TypeText: member.TypeText,
			Span:     member.NameSpan,
		}
		if member.Initializer != nil {
			if v, ok := resolver.Resolve(member.Initializer); ok {
				p.Initial = &v
			}
		}
		props = append(props, p)
	}

	for _, sp := range extractor.ExtractStatic(class) {
		if seen[sp.Name] {
			continue
		}
		seen[sp.Name] = true
		props = append(props, &Property{
			Name:   sp.Name,
			Source: SourceStatic,
			Config: sp.Config,
			Span:   sp.Node.Span(),
		})
	}

	match, isElement := a.detector.Classify(class)
	if !isElement && len(props) == 0 {
		return nil
	}

	for _, p := range props {
		p.Attribute, p.HasAttribute = property.AttributeName(p.Name, p.Config)
		noteUnresolved(log, p)
	}

	c := &Component{
		Name:       class.Name,
		TagName:    tagName(class, resolver),
		Exported:   class.Exported,
		Properties: props,
		Span:       class.Span(),
	}
	if class.Extends != nil {
		c.Superclass = class.Extends.Text()
	}
	if isElement {
		c.Convention = &match
	}

	log.Debug("Component found",
		logger.F("tag", c.TagName),
		logger.F("properties", len(props)))
	return c
}

// noteUnresolved logs options whose values could not be read statically.
// The configuration itself carries no diagnostics.
func noteUnresolved(log logger.Logger, p *Property) {
	cfg := p.Config
	if cfg.Node.Attribute != nil && cfg.Attribute == nil {
		log.Debug("attribute option is not a literal, using the default",
			logger.F("property", p.Name),
			logger.F("expr", cfg.Node.Attribute.Text()))
	}
	if cfg.Type != nil && cfg.Type.Kind == property.TypeRaw {
		log.Debug("type option is not a built-in constructor",
			logger.F("property", p.Name),
			logger.F("type", cfg.Type.Raw))
	}
}

// tagName reads the tag registered with @customElement. A constant
// argument is resolved.
func tagName(class *tsast.ClassDecl, resolver literal.Resolver) string {
	call := property.LocateNamed(class, conventions.CustomElementDecorator)
	if call == nil || len(call.Arguments) == 0 {
		return ""
	}
	v, ok := resolver.Resolve(call.Arguments[0])
	if !ok {
		return ""
	}
	if s, ok := v.V.(string); ok {
		return s
	}
	return ""
}
