package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildAnalysisJSONSchema returns a JSON-Schema (draft 2020-12 subset) for
// the backend's JSON response mode. Every field is optional — missing
// fields are filled per-field downstream — but present fields must have the
// right shape for the strict decode path; anything looser goes through
// lenient coercion instead.
func BuildAnalysisJSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{"type": "string"},
			"key_points": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"suggested_actions": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"importance":        map[string]any{"type": "string"},
			"readability_score": map[string]any{"type": "number", "minimum": 0.0, "maximum": 100.0},
		},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
