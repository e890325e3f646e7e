package content

// JSON Schema for content pack files. Packs replace the built-in world and
// level tables wholesale; partial overrides are not supported so that the
// structural validation in validate.go always sees the complete set.
var packSchema = map[string]any{
	"type":                 "object",
	"required":             []any{"worlds", "levels"},
	"additionalProperties": false,
	"properties": map[string]any{
		"worlds": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":                 "object",
				"required":             []any{"id", "name", "order", "starsToUnlock"},
				"additionalProperties": false,
				"properties": map[string]any{
					"id":            map[string]any{"type": "string", "minLength": 1},
					"name":          map[string]any{"type": "string", "minLength": 1},
					"order":         map[string]any{"type": "integer", "minimum": 1},
					"theme":         map[string]any{"type": "string"},
					"starsToUnlock": map[string]any{"type": "integer", "minimum": 0},
				},
			},
		},
		"levels": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":                 "object",
				"required":             []any{"id", "worldId", "name", "order", "kind"},
				"additionalProperties": false,
				"properties": map[string]any{
					"id":      map[string]any{"type": "string", "minLength": 1},
					"worldId": map[string]any{"type": "string", "minLength": 1},
					"name":    map[string]any{"type": "string", "minLength": 1},
					"order":   map[string]any{"type": "integer", "minimum": 1},
					"kind": map[string]any{
						"type": "string",
						"enum": []any{"quiz", "sorting", "matching", "exploration"},
					},
					"difficulty":    map[string]any{"type": "integer", "minimum": 1, "maximum": 3},
					"starsRequired": map[string]any{"type": "integer", "minimum": 0},
					"maxScore":      map[string]any{"type": "integer", "minimum": 0},
				},
			},
		},
	},
}
