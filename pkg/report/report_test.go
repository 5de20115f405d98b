package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/simonhull/firebird-suite/wren"
	"github.com/simonhull/firebird-suite/wren/pkg/analyzer"
	"github.com/simonhull/firebird-suite/wren/pkg/logger"
)

const toggleSource = `import { LitElement } from "lit";
import { customElement, property } from "lit/decorators.js";

@customElement("x-toggle")
export class XToggle extends LitElement {
  @property({ type: Boolean, reflect: true }) checked = false;
  @property({ attribute: "aria-label" }) label: string | null = null;
  @property({ attribute: false, type: Object }) data = { a: 1 };
  @property({ value: "legacy", converter: conv }) mode;
}
`

func testProject(t *testing.T) *analyzer.Project {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "src")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "toggle.ts"), []byte(toggleSource), 0644))

	a := analyzer.NewAnalyzer(analyzer.WithProjectName("toggles")).WithLogger(logger.NewSilentLogger())
	proj, err := a.AnalyzeWithContext(context.Background(), root)
	require.NoError(t, err)
	proj.Skipped = append(proj.Skipped, &analyzer.SkippedFile{
		Path: filepath.Join(root, "src", "huge.ts"),
		Err:  errors.New("source file too large"),
	})
	return proj
}

func TestBuild(t *testing.T) {
	m := Build(testProject(t))

	assert.Equal(t, SchemaVersion, m.SchemaVersion)
	assert.Equal(t, wren.Name+" "+wren.Version, m.Tool)
	assert.Equal(t, "toggles", m.Project)
	assert.Equal(t, 1, m.Files)
	require.Len(t, m.Modules, 1)
	assert.Equal(t, "src/toggle.ts", m.Modules[0].Path)

	require.Len(t, m.Modules[0].Components, 1)
	c := m.Modules[0].Components[0]
	assert.Equal(t, "XToggle", c.Name)
	assert.Equal(t, "x-toggle", c.TagName)
	assert.Equal(t, "extends-lit-element", c.Convention)
	assert.Equal(t, 5, c.Location.Line)
	require.Len(t, c.Properties, 4)

	checked := c.Properties[0]
	assert.Equal(t, "checked", checked.Name)
	assert.Equal(t, "decorator", checked.Source)
	assert.Equal(t, "field", checked.Kind)
	assert.Equal(t, "checked", checked.Attribute)
	assert.Equal(t, "boolean", checked.Type)
	assert.True(t, checked.Reflect)
	assert.Equal(t, false, checked.Initial)
	assert.Equal(t, 6, checked.Location.Line)

	label := c.Properties[1]
	assert.Equal(t, "aria-label", label.Attribute)
	assert.Equal(t, "string | null", label.DeclaredType)
	assert.Empty(t, label.Type)

	data := c.Properties[2]
	assert.True(t, data.NoAttribute)
	assert.Empty(t, data.Attribute)
	assert.Equal(t, "object", data.TypeKind)
	assert.Equal(t, map[string]any{"a": 1.0}, data.Initial)

	mode := c.Properties[3]
	assert.Equal(t, "legacy", mode.Default)
	assert.True(t, mode.Converter)

	require.Len(t, m.Skipped, 1)
	assert.Equal(t, "src/huge.ts", m.Skipped[0].Path)
	assert.Equal(t, "source file too large", m.Skipped[0].Reason)
}

func TestWriteJSON(t *testing.T) {
	m := Build(testProject(t))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m, "json"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "toggles", decoded["project"])

	modules := decoded["modules"].([]any)
	comp := modules[0].(map[string]any)["components"].([]any)[0].(map[string]any)
	props := comp["properties"].([]any)
	data := props[2].(map[string]any)
	assert.Equal(t, true, data["noAttribute"])
	_, hasAttr := data["attribute"]
	assert.False(t, hasAttr)
}

func TestWriteYAML(t *testing.T) {
	m := Build(testProject(t))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m, "yaml"))

	var decoded Manifest
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, m.Project, decoded.Project)
	require.Len(t, decoded.Modules, 1)
	assert.Equal(t, "x-toggle", decoded.Modules[0].Components[0].TagName)
	assert.Equal(t, "aria-label", decoded.Modules[0].Components[0].Properties[1].Attribute)
}

func TestWriteMarkdown(t *testing.T) {
	m := Build(testProject(t))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m, "markdown"))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# toggles\n"))
	assert.Contains(t, out, "## `<x-toggle>` XToggle")
	assert.Contains(t, out, "Defined in `src/toggle.ts:5`, extends `LitElement`.")
	assert.Contains(t, out, "| `checked` | `checked` | `boolean` | yes | `false` |")
	assert.Contains(t, out, "| `label` | `aria-label` | `string \\| null` |  |  |")
	assert.Contains(t, out, "| `data` | none | `object` |  | `{\"a\":1}` |")
	assert.Contains(t, out, "| `mode` | `mode` |  |  | `\"legacy\"` |")
	assert.Contains(t, out, "- `src/huge.ts`: source file too large")
}

func TestWriteHTML(t *testing.T) {
	m := Build(testProject(t))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m, "html"))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>toggles</title>")
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<code>&lt;x-toggle&gt;</code>")
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, &Manifest{}, "xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "components.json")
	require.NoError(t, WriteFile(path, Build(testProject(t)), "json"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tagName": "x-toggle"`)
}

func TestSchema(t *testing.T) {
	s := Schema()
	assert.Equal(t, "object", s.Type)
	assert.Equal(t, SchemaID, string(s.ID))

	for _, key := range []string{"schemaVersion", "tool", "files", "modules"} {
		_, ok := s.Properties.Get(key)
		assert.True(t, ok, "missing property %s", key)
	}
	assert.Contains(t, s.Required, "modules")
	assert.NotContains(t, s.Required, "skipped")

	data, err := SchemaJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"reflect"`)
	assert.Contains(t, string(data), `"decorator"`)
}

func TestBuild_NonFiniteNumbers(t *testing.T) {
	root := t.TempDir()
	src := `class Gauge extends LitElement {
  @property({ type: Number }) max = Infinity;
  @property({ type: Number }) min = -Infinity;
  @property({ type: Array }) marks = [0, NaN];
}
`
	require.NoError(t, os.WriteFile(filepath.Join(root, "gauge.ts"), []byte(src), 0644))

	a := analyzer.NewAnalyzer().WithLogger(logger.NewSilentLogger())
	proj, err := a.AnalyzeWithContext(context.Background(), root)
	require.NoError(t, err)

	m := Build(proj)
	props := m.Modules[0].Components[0].Properties
	require.Len(t, props, 3)
	assert.Equal(t, "Infinity", props[0].Initial)
	assert.Equal(t, "-Infinity", props[1].Initial)
	assert.Equal(t, []any{float64(0), "NaN"}, props[2].Initial)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, m))
}
