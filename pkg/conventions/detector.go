// Package conventions recognizes custom element classes.
//
// A Detector runs every registered Pattern against a class and reports
// the matches with their confidence. Classify picks the strongest match
// in CategoryElement, which the analyzer uses to decide whether a class
// is a reactive element worth documenting.
package conventions

import "github.com/simonhull/firebird-suite/wren/pkg/tsast"

// MinConfidence is the threshold below which Classify ignores a match
const MinConfidence = 0.5

// Match is a pattern that matched a class
type Match struct {
	PatternID  string  `json:"pattern" yaml:"pattern"`
	Name       string  `json:"name" yaml:"name"`
	Category   string  `json:"category" yaml:"category"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// Detector implements convention detection
type Detector struct {
	registry *Registry
}

// NewDetector creates a Detector with the default patterns. Extra base
// class names register an additional pattern.
func NewDetector(baseClasses ...string) *Detector {
	d := &Detector{registry: NewRegistry()}
	if len(baseClasses) > 0 {
		d.RegisterPattern(BaseClassPattern(baseClasses...))
	}
	return d
}

// RegisterPattern adds a custom pattern to the detector
func (d *Detector) RegisterPattern(pattern Pattern) {
	d.registry.Register(pattern)
}

// Detect returns every pattern matching class, strongest first
func (d *Detector) Detect(class *tsast.ClassDecl) []Match {
	if class == nil {
		return nil
	}

	var matches []Match
	for _, p := range d.registry.Patterns() {
		if p.MatchClass == nil || !p.MatchClass(class) {
			continue
		}
		matches = append(matches, Match{
			PatternID:  p.ID,
			Name:       p.Name,
			Category:   p.Category,
			Confidence: p.Confidence,
		})
	}

	return matches
}

// Classify returns the strongest element match for class
func (d *Detector) Classify(class *tsast.ClassDecl) (Match, bool) {
	for _, m := range d.Detect(class) {
		if m.Category == CategoryElement && m.Confidence >= MinConfidence {
			return m, true
		}
	}
	return Match{}, false
}
