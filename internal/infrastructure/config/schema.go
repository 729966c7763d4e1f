package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

const schemaID = "https://github.com/ydbtools/ydbgather/config.schema.json"

// GenerateSchema returns the JSON schema of Config.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference:            true,
		AllowAdditionalProperties: false,
	}
	schema := r.Reflect(&Config{})
	schema.ID = schemaID
	schema.Title = "ydbgather configuration"
	schema.Description = "Settings for the ydbgather diagnostic collector"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
