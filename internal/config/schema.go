package config

import (
	_ "embed" // Required for //go:embed directive
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	taglogerrors "github.com/taglog-labs/taglog/pkg/taglog/v1/errors"
)

// Embed the schema file content directly into the compiled binary.
//
//go:embed taglog_schema_v1.0.0.json
var schemaV1Bytes []byte

var (
	schemaV1   *gojsonschema.Schema
	schemaOnce sync.Once
	schemaErr  error
)

// loadSchema compiles the embedded schema thread-safely, exactly once.
func loadSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		if len(schemaV1Bytes) == 0 {
			schemaErr = taglogerrors.NewConfigError("embedded schema 'taglog_schema_v1.0.0.json' is empty or not found", nil)
			return
		}
		schemaV1, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaV1Bytes))
		if schemaErr != nil {
			schemaErr = taglogerrors.NewConfigError("failed to compile embedded schema 'taglog_schema_v1.0.0.json'", schemaErr)
		}
	})
	return schemaV1, schemaErr
}

// ValidateWithSchema validates the given settings YAML against the embedded
// taglog v1.0.0 schema. The validator works on JSON-like structures, so the
// YAML is first parsed into generic Go values.
func ValidateWithSchema(documentYAML []byte) error {
	schema, err := loadSchema()
	if err != nil {
		return err
	}

	var jsonData interface{}
	if err := yaml.Unmarshal(documentYAML, &jsonData); err != nil {
		return taglogerrors.NewConfigError("failed to parse settings YAML for schema validation", err)
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(jsonData))
	if err != nil {
		return taglogerrors.NewConfigError("schema validation process failed", err)
	}

	if !result.Valid() {
		errMsg := "settings failed JSON schema validation:"
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "(root)" || field == "" {
				field = desc.Context().String()
			}
			errMsg += fmt.Sprintf("\n  - Field '%s': %s", field, desc.Description())
		}
		return taglogerrors.NewValidationError(errMsg, nil)
	}
	return nil
}
