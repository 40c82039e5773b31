package schema

import (
	_ "embed"
	"encoding/json"

	"github.com/xeipuuv/gojsonschema"
)

// Schema validates decoded JSON documents.
type Schema struct {
	schema *gojsonschema.Schema
}

func (s *Schema) Validate(data map[string]any) (*gojsonschema.Result, error) {
	if data == nil {
		data = map[string]any{}
	}

	return s.schema.Validate(gojsonschema.NewGoLoader(data))
}

//go:embed user-request.json
var userRequest json.RawMessage
var userRequestLoader = gojsonschema.NewBytesLoader(userRequest)

// NewUserRequestSchema compiles the schema of POST /user bodies.
func NewUserRequestSchema() (*Schema, error) {
	schema, err := gojsonschema.NewSchema(userRequestLoader)
	if err != nil {
		return nil, err
	}

	return &Schema{schema: schema}, nil
}
