package schema

import (
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

type Result struct {
	Valid  bool
	Errors []string
}

// Validate checks document against schemaJSON. An error is returned when
// either input cannot be loaded; violations are reported in the Result.
func Validate(schemaJSON, document []byte) (*Result, error) {
	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation error: %w", err)
	}

	res := &Result{Valid: result.Valid()}
	for _, desc := range result.Errors() {
		res.Errors = append(res.Errors, desc.String())
	}
	return res, nil
}

// ValidateFile reads the schema at path and validates document against it.
func ValidateFile(path string, document []byte) (*Result, error) {
	schemaData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return Validate(schemaData, document)
}
