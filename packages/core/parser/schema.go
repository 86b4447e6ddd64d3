package parser

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func suiteSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	})
	return schema, schemaErr
}

// Schema returns the JSON Schema suite files are validated against.
func Schema() []byte {
	return schemaJSON
}

// SchemaError lists every schema violation found in a suite document.
type SchemaError struct {
	File     string
	Problems []string
}

func (e *SchemaError) Error() string {
	prefix := "invalid suite"
	if e.File != "" {
		prefix = e.File + ": invalid suite"
	}
	if len(e.Problems) == 1 {
		return prefix + ": " + e.Problems[0]
	}
	return prefix + ":\n  - " + strings.Join(e.Problems, "\n  - ")
}

// Validate checks a YAML suite document against the embedded schema.
func Validate(input []byte) error {
	return validate(input, "")
}

func validate(input []byte, filename string) error {
	var doc any
	if err := yaml.Unmarshal(input, &doc); err != nil {
		return &ParseError{File: filename, Message: err.Error()}
	}
	if doc == nil {
		return &SchemaError{File: filename, Problems: []string{"document is empty"}}
	}

	s, err := suiteSchema()
	if err != nil {
		return fmt.Errorf("failed to load suite schema: %w", err)
	}

	result, err := s.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return &ParseError{File: filename, Message: err.Error()}
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		problems = append(problems, re.String())
	}
	return &SchemaError{File: filename, Problems: problems}
}
