package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema reflects a JSON Schema describing RunnerConfig files.
// The same field names apply to YAML and TOML files.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
	}
	schema := reflector.Reflect(new(RunnerConfig))
	schema.Title = "Runner Configuration"
	schema.Description = "Physics, spawn tables and difficulty for the Earth and Planet worlds."
	return schema
}

// SchemaJSON returns the indented JSON encoding of Schema.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("config: marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
