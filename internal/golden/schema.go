// internal/golden/schema.go
package golden

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// suiteSchema pins the fixed shape of a golden-set document. The doctor
// command validates the on-disk document against it so shape drift is caught
// before a CI run, not during one.
var suiteSchema = map[string]any{
	"type":     "object",
	"required": []string{"suite", "tests"},
	"properties": map[string]any{
		"suite": map[string]any{"type": "string"},
		"tests": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"id", "prompt", "expected", "mock_output"},
				"properties": map[string]any{
					"id":          map[string]any{"type": "string"},
					"category":    map[string]any{"type": "string"},
					"risk":        map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
					"prompt":      map[string]any{"type": "string"},
					"mock_output": map[string]any{"type": "string"},
					"expected": map[string]any{
						"type":     "object",
						"required": []string{"type", "value"},
						"properties": map[string]any{
							"type": map[string]any{
								"enum": []string{KindMatch, KindContainsAll, KindContainsAny, KindRefusalContains},
							},
							"value": map[string]any{
								"oneOf": []any{
									map[string]any{"type": "string"},
									map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
								},
							},
						},
					},
				},
			},
		},
	},
}

// ValidateDocument checks a raw golden-set document against the suite schema
// and returns one message per shape problem. An empty slice means the
// document conforms.
func ValidateDocument(raw []byte) ([]string, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("error parsing golden spec: %w", err)
	}

	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(suiteSchema), gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("error validating golden spec: %w", err)
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return problems, nil
}
