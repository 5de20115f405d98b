package conventions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/firebird-suite/wren/pkg/tsast"
)

func parseClass(t *testing.T, src string) *tsast.ClassDecl {
	t.Helper()
	file, err := tsast.NewParser().ParseString("el.ts", src)
	require.NoError(t, err)
	require.Len(t, file.Classes, 1)
	return file.Classes[0]
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		bases   []string
		want    string
		element bool
	}{
		{"lit element", "class A extends LitElement {}", nil, "extends-lit-element", true},
		{"qualified base", "class A extends lit.LitElement {}", nil, "extends-lit-element", true},
		{"mixin chain", "class A extends Focusable(Themed(LitElement)) {}", nil, "extends-lit-element", true},
		{"reactive element", "class A extends ReactiveElement {}", nil, "extends-reactive-element", true},
		{"polymer", "class A extends PolymerElement {}", nil, "extends-polymer-element", true},
		{"decorator only", `@customElement("x-a") class A extends Base {}`, nil, "custom-element-decorator", true},
		{"configured base", "class A extends DesignBase {}", []string{"DesignBase"}, "configured-base-class", true},
		{"element suffix", "class FancyElement extends Base {}", nil, "suffix-element", true},
		{"vanilla", "class A extends HTMLElement {}", nil, "", false},
		{"plain class", "class Store {}", nil, "", false},
		{"unrelated base", "class A extends Base {}", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDetector(tt.bases...)
			m, ok := d.Classify(parseClass(t, tt.src))
			assert.Equal(t, tt.element, ok)
			assert.Equal(t, tt.want, m.PatternID)
		})
	}
}

func TestDetect_OrderedByConfidence(t *testing.T) {
	class := parseClass(t, `@customElement("my-el") class MyElement extends LitElement {}`)

	matches := NewDetector().Detect(class)
	require.Len(t, matches, 3)
	assert.Equal(t, "extends-lit-element", matches[0].PatternID)
	assert.Equal(t, "custom-element-decorator", matches[1].PatternID)
	assert.Equal(t, "suffix-element", matches[2].PatternID)

	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Confidence, matches[i].Confidence)
	}
}

func TestDetect_Vanilla(t *testing.T) {
	matches := NewDetector().Detect(parseClass(t, "class A extends HTMLElement {}"))
	require.Len(t, matches, 1)
	assert.Equal(t, CategoryVanilla, matches[0].Category)
}

func TestDetect_Nil(t *testing.T) {
	assert.Nil(t, NewDetector().Detect(nil))
}

func TestRegisterPattern(t *testing.T) {
	d := NewDetector()
	d.RegisterPattern(Pattern{
		ID:         "fast-element",
		Category:   CategoryElement,
		Confidence: 0.97,
		MatchClass: func(c *tsast.ClassDecl) bool { return extendsAny(c, "FASTElement") },
	})

	m, ok := d.Classify(parseClass(t, "class A extends FASTElement {}"))
	require.True(t, ok)
	assert.Equal(t, "fast-element", m.PatternID)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Len(t, r.Patterns(), len(DefaultPatterns()))

	vanilla := r.Category(CategoryVanilla)
	require.Len(t, vanilla, 1)
	assert.Equal(t, "extends-html-element", vanilla[0].ID)

	patterns := r.Patterns()
	for i := 1; i < len(patterns); i++ {
		assert.GreaterOrEqual(t, patterns[i-1].Confidence, patterns[i].Confidence)
	}

	r.Register(Pattern{ID: "suffix-element", Category: CategoryElement, Confidence: 0.1})
	assert.Len(t, r.Patterns(), len(DefaultPatterns()), "same ID replaces")
	p, ok := r.Lookup("suffix-element")
	require.True(t, ok)
	assert.Equal(t, 0.1, p.Confidence)

	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}

func TestBaseNames(t *testing.T) {
	class := parseClass(t, "class A extends Mixin(ns.Base, Other) {}")
	assert.Equal(t, []string{"Base", "Other"}, BaseNames(class.Extends))
	assert.Nil(t, BaseNames(nil))
}
