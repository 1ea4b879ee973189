package quizbank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchema describes the on-disk question bank shape. Kept as a Go value
// rather than an embedded file so field renames show up in one diff.
var bankSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"titulo":     map[string]any{"type": "string", "minLength": 1},
			"explicacao": map[string]any{"type": "string"},
			"pergunta":   map[string]any{"type": "string", "minLength": 1},
			"opcoes": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 1,
			},
			"resposta": map[string]any{"type": "integer", "minimum": 1},
		},
		"required": []any{"titulo", "pergunta", "opcoes", "resposta"},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// validate checks raw JSON against bankSchema before unmarshalling.
func validate(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compiledSchema compiles bankSchema once and caches the result.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a parsed JSON value, so round-trip the
		// definition through encoding/json.
		defBytes, err := json.Marshal(bankSchema)
		if err != nil {
			compileErr = err
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = err
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://quizbank.json"
		if err := c.AddResource(url, defParsed); err != nil {
			compileErr = err
			return
		}
		compiled, compileErr = c.Compile(url)
	})
	return compiled, compileErr
}
