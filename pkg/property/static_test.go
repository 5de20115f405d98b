package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/firebird-suite/wren/pkg/literal"
	"github.com/simonhull/firebird-suite/wren/pkg/tsast"
)

func TestExtractStatic(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "static field",
			src: `class Card extends LitElement {
  static properties = {
    open: { type: Boolean, reflect: true },
    heading: String,
    label: { attribute: "aria-label" },
    ...shared,
  };
}`,
		},
		{
			name: "static getter",
			src: `class Card extends LitElement {
  static get properties() {
    return {
      open: { type: Boolean, reflect: true },
      heading: String,
      label: { attribute: "aria-label" },
    };
  }
}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := tsast.NewParser().ParseString("card.ts", tt.src)
			require.NoError(t, err)
			require.Len(t, file.Classes, 1)

			props := NewExtractor(literal.NewResolver(file)).ExtractStatic(file.Classes[0])
			require.Len(t, props, 3)

			assert.Equal(t, "open", props[0].Name)
			assert.Equal(t, TypeBoolean, props[0].Config.Type.Kind)
			assert.True(t, props[0].Config.Reflect)

			assert.Equal(t, "heading", props[1].Name)
			require.NotNil(t, props[1].Config.Type)
			assert.Equal(t, TypeString, props[1].Config.Type.Kind)
			assert.False(t, props[1].Config.Reflect)

			assert.Equal(t, "label", props[2].Name)
			assert.Equal(t, NamedAttribute("aria-label"), props[2].Config.Attribute)
			assert.NotNil(t, props[2].Node)
		})
	}
}

func TestExtractStatic_NoDeclaration(t *testing.T) {
	file, err := tsast.NewParser().ParseString("plain.ts", `class Plain {
  properties = { open: Boolean };
  static other = {};
}`)
	require.NoError(t, err)

	e := NewExtractor(nil)
	assert.Empty(t, e.ExtractStatic(file.Classes[0]))
	assert.Empty(t, e.ExtractStatic(nil))
}

func TestAttributeName(t *testing.T) {
	tests := []struct {
		name   string
		member string
		cfg    Config
		want   string
		wantOK bool
	}{
		{"default lowercases", "isOpen", Config{}, "isopen", true},
		{"explicit true", "isOpen", Config{Attribute: AttributeBool(true)}, "isopen", true},
		{"disabled", "isOpen", Config{Attribute: AttributeBool(false)}, "", false},
		{"custom name", "isOpen", Config{Attribute: NamedAttribute("is-open")}, "is-open", true},
		{"empty custom name", "isOpen", Config{Attribute: NamedAttribute("")}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AttributeName(tt.member, tt.cfg)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
