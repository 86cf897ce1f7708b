package schema

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/kaptinlin/jsonschema"
)

// Schema is a JSON Schema document expressed as a plain Go map.
type Schema map[string]any

func (s Schema) Compile() (*jsonschema.Schema, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	compiled, err := compiler.Compile(raw)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return compiled, nil
}

// Validate checks value against the schema. Structs are converted to their
// JSON shape first so field names follow the json tags.
func (s Schema) Validate(value any) error {
	compiled, err := s.Compile()
	if err != nil {
		return err
	}
	shaped, err := toJSONShape(value)
	if err != nil {
		return err
	}
	result := compiled.Validate(shaped)
	if result.Valid {
		return nil
	}
	details := make([]string, 0, len(result.Errors))
	for _, evalErr := range result.Errors {
		details = append(details, evalErr.Error())
	}
	sort.Strings(details)
	return &ValidationError{Details: details}
}

func toJSONShape(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshal value for validation: %w", err)
	}
	var shaped any
	if err := json.Unmarshal(raw, &shaped); err != nil {
		return nil, fmt.Errorf("reshape value for validation: %w", err)
	}
	return shaped, nil
}

// ValidationError reports which parts of a value violated the schema.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "schema validation failed: " + strings.Join(e.Details, "; ")
}
