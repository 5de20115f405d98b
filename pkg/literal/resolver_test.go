package literal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/simonhull/firebird-suite/wren/pkg/tsast"
)

// parseValue parses `src` and returns the initializer of `const value`
func parseValue(t *testing.T, src string) (*tsast.SourceFile, tsast.Expr) {
	t.Helper()
	file, err := tsast.NewParser().ParseString("value.ts", src)
	require.NoError(t, err)
	decl := file.Variable("value")
	require.NotNil(t, decl, "no `value` binding in %q", src)
	return file, decl.Init
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		want   any
		wantOK bool
	}{
		{"string", `const value = "hi";`, "hi", true},
		{"single quoted", `const value = 'hi';`, "hi", true},
		{"template", "const value = `plain`;", "plain", true},
		{"template substitution", "const value = `a${b}`;", nil, false},
		{"integer", `const value = 42;`, 42.0, true},
		{"float", `const value = 1.5e3;`, 1500.0, true},
		{"hex", `const value = 0xff;`, 255.0, true},
		{"binary", `const value = 0b101;`, 5.0, true},
		{"octal", `const value = 0o17;`, 15.0, true},
		{"separators", `const value = 1_000;`, 1000.0, true},
		{"bigint", `const value = 10n;`, nil, false},
		{"negative", `const value = -3;`, -3.0, true},
		{"not", `const value = !0;`, true, true},
		{"true", `const value = true;`, true, true},
		{"false", `const value = false;`, false, true},
		{"null", `const value = null;`, nil, true},
		{"paren", `const value = ((7));`, 7.0, true},
		{"as const", `const value = "x" as const;`, "x", true},
		{"array", `const value = [1, "a", false];`, []any{1.0, "a", false}, true},
		{"array with unknown", `const value = [1, other];`, nil, false},
		{"object", `const value = { a: 1, b: "two" };`, map[string]any{"a": 1.0, "b": "two"}, true},
		{"object with spread", `const value = { ...other };`, nil, false},
		{"const reference", "const SIZE = 3;\nconst value = SIZE;", 3.0, true},
		{"let reference", "let size = 3;\nconst value = size;", nil, false},
		{"unknown reference", `const value = somewhere;`, nil, false},
		{"property access", "const Sizes = { small: 1 };\nconst value = Sizes.small;", 1.0, true},
		{"missing property", "const Sizes = { small: 1 };\nconst value = Sizes.large;", nil, false},
		{"call", `const value = compute();`, nil, false},
		{"binary expression", `const value = 1 + 2;`, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, expr := parseValue(t, tt.src)
			got, ok := NewResolver(file).Resolve(expr)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got.V)
			}
		})
	}
}

func TestResolve_Undefined(t *testing.T) {
	file, expr := parseValue(t, `const value = undefined;`)
	got, ok := NewResolver(file).Resolve(expr)
	require.True(t, ok)
	assert.True(t, got.IsUndefined())
	assert.Nil(t, got.Interface())
}

func TestResolve_CycleTerminates(t *testing.T) {
	file, expr := parseValue(t, "const a = b;\nconst b = a;\nconst value = a;")
	_, ok := NewResolver(file).Resolve(expr)
	assert.False(t, ok)
}

func TestResolve_NilFileResolvesLiteralsOnly(t *testing.T) {
	_, expr := parseValue(t, "const SIZE = 3;\nconst value = SIZE;")
	_, ok := NewResolver(nil).Resolve(expr)
	assert.False(t, ok)

	_, lit := parseValue(t, `const value = "x";`)
	v, ok := NewResolver(nil).Resolve(lit)
	assert.True(t, ok)
	assert.Equal(t, "x", v.V)
}

func TestResolverFunc(t *testing.T) {
	var r Resolver = ResolverFunc(func(tsast.Expr) (Value, bool) {
		return Value{V: "fixed"}, true
	})
	v, ok := r.Resolve(nil)
	assert.True(t, ok)
	assert.Equal(t, "fixed", v.V)
}

func TestValue_IsTrue(t *testing.T) {
	assert.True(t, Value{V: true}.IsTrue())
	assert.False(t, Value{V: false}.IsTrue())
	assert.False(t, Value{V: "true"}.IsTrue())
	assert.False(t, Value{V: 1.0}.IsTrue())
	assert.False(t, Value{}.IsTrue())
}

func TestValue_Encoding(t *testing.T) {
	v := Value{V: map[string]any{"list": []any{1.0, Undefined}}}

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"list":[1,null]}`, string(data))

	out, err := yaml.Marshal(struct {
		Default Value `yaml:"default"`
	}{Default: Value{V: "x"}})
	require.NoError(t, err)
	assert.Equal(t, "default: x\n", string(out))

	assert.Equal(t, `"x"`, Value{V: "x"}.String())
	assert.Equal(t, "null", Value{}.String())
	assert.Equal(t, "undefined", Value{V: Undefined}.String())
	assert.Equal(t, "true", Value{V: true}.String())
}

func TestParseNumber(t *testing.T) {
	n, ok := ParseNumber(".5")
	require.True(t, ok)
	assert.Equal(t, 0.5, n)

	_, ok = ParseNumber("0xZZ")
	assert.False(t, ok)

	_, ok = ParseNumber("")
	assert.False(t, ok)

	_, ok = ParseNumber("0b2")
	assert.False(t, ok)
}
