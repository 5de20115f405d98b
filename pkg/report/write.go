package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an output format with no writer
var ErrUnknownFormat = errors.New("unknown report format")

// Formats lists the supported output formats
var Formats = []string{"json", "yaml", "markdown", "html"}

// Write encodes m to w in the given format
func Write(w io.Writer, m *Manifest, format string) error {
	switch strings.ToLower(format) {
	case "json", "":
		return WriteJSON(w, m)
	case "yaml", "yml":
		return WriteYAML(w, m)
	case "markdown", "md":
		return WriteMarkdown(w, m)
	case "html":
		return WriteHTML(w, m)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteFile writes m to path, creating parent directories as needed
func WriteFile(path string, m *Manifest, format string) error {
	var buf bytes.Buffer
	if err := Write(&buf, m, format); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// WriteJSON writes m as indented JSON
func WriteJSON(w io.Writer, m *Manifest) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encoding json report: %w", err)
	}
	return nil
}

// WriteYAML writes m as YAML
func WriteYAML(w io.Writer, m *Manifest) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encoding yaml report: %w", err)
	}
	return enc.Close()
}

// WriteMarkdown writes a human-readable property reference
func WriteMarkdown(w io.Writer, m *Manifest) error {
	var b strings.Builder

	title := m.Project
	if title == "" {
		title = "Components"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "_Generated by %s from %d files._\n", m.Tool, m.Files)

	for _, mod := range m.Modules {
		for _, c := range mod.Components {
			b.WriteString("\n## ")
			if c.TagName != "" {
				fmt.Fprintf(&b, "`<%s>` ", c.TagName)
			}
			fmt.Fprintf(&b, "%s\n\n", c.Name)
			fmt.Fprintf(&b, "Defined in `%s:%d`", mod.Path, c.Location.Line)
			if c.Superclass != "" {
				fmt.Fprintf(&b, ", extends `%s`", c.Superclass)
			}
			b.WriteString(".\n")
			if mod.Partial {
				b.WriteString("\n> The source has syntax errors; this entry may be incomplete.\n")
			}

			if len(c.Properties) == 0 {
				b.WriteString("\nNo reactive properties.\n")
				continue
			}

			b.WriteString("\n| Property | Attribute | Type | Reflects | Default |\n")
			b.WriteString("| --- | --- | --- | --- | --- |\n")
			for _, p := range c.Properties {
				fmt.Fprintf(&b, "| `%s` | %s | %s | %s | %s |\n",
					p.Name, attributeCell(p), typeCell(p), yesNo(p.Reflect), defaultCell(p))
			}
		}
	}

	if len(m.Skipped) > 0 {
		b.WriteString("\n## Skipped files\n\n")
		for _, s := range m.Skipped {
			fmt.Fprintf(&b, "- `%s`: %s\n", s.Path, s.Reason)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func attributeCell(p Property) string {
	if p.NoAttribute {
		return "none"
	}
	return "`" + p.Attribute + "`"
}

func typeCell(p Property) string {
	t := p.Type
	if t == "" {
		t = p.DeclaredType
	}
	if t == "" {
		return ""
	}
	return "`" + strings.ReplaceAll(t, "|", `\|`) + "`"
}

func defaultCell(p Property) string {
	v := p.Default
	if v == nil {
		v = p.Initial
	}
	if v == nil {
		return ""
	}
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return "`" + strings.ReplaceAll(string(data), "|", `\|`) + "`"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return ""
}

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 60rem; margin: 2rem auto; padding: 0 1rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ddd; padding: .35rem .6rem; text-align: left; }
code { background: #f4f4f4; padding: 0 .2rem; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// WriteHTML renders the Markdown reference as a standalone HTML page
func WriteHTML(w io.Writer, m *Manifest) error {
	var src, body bytes.Buffer
	if err := WriteMarkdown(&src, m); err != nil {
		return err
	}
	if err := md.Convert(src.Bytes(), &body); err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}

	title := m.Project
	if title == "" {
		title = "Components"
	}
	return page.Execute(w, struct {
		Title string
		Body  template.HTML
	}{title, template.HTML(body.String())})
}
