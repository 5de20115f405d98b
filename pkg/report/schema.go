package report

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// SchemaID is the $id of the manifest schema
const SchemaID = "https://github.com/simonhull/firebird-suite/wren/manifest.schema.json"

// Schema returns the JSON Schema of Manifest
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	s := r.Reflect(new(Manifest))
	s.ID = jsonschema.ID(SchemaID)
	s.Title = "wren component manifest"
	return s
}

// SchemaJSON returns the indented JSON encoding of Schema
func SchemaJSON() ([]byte, error) {
	return json.MarshalIndent(Schema(), "", "  ")
}
