package conventions

import "sort"

// Registry holds the element patterns a Detector tries, keyed by ID
type Registry struct {
	patterns []Pattern
	byID     map[string]int
}

// NewRegistry creates a Registry seeded with DefaultPatterns
func NewRegistry() *Registry {
	r := &Registry{byID: make(map[string]int)}
	for _, p := range DefaultPatterns() {
		r.Register(p)
	}
	return r
}

// Register adds p. A pattern with the same ID is replaced in place.
func (r *Registry) Register(p Pattern) {
	if i, ok := r.byID[p.ID]; ok {
		r.patterns[i] = p
		return
	}
	r.byID[p.ID] = len(r.patterns)
	r.patterns = append(r.patterns, p)
}

// Lookup returns the pattern registered under id
func (r *Registry) Lookup(id string) (Pattern, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Pattern{}, false
	}
	return r.patterns[i], true
}

// Patterns returns a copy of the registered patterns, strongest first.
// Patterns of equal confidence keep registration order.
func (r *Registry) Patterns() []Pattern {
	out := append([]Pattern(nil), r.patterns...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	return out
}

// Category returns the patterns of one category, strongest first
func (r *Registry) Category(category string) []Pattern {
	var out []Pattern
	for _, p := range r.Patterns() {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
