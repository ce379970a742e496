package catalog

// CustomFields is a dynamically-typed extension attached to prices and assets.
// Field values hold JSON-shaped data (string, float64, bool, []any,
// map[string]any) as produced by encoding/json.
type CustomFields struct {
	Type   ResourceRef    `json:"type"`
	Fields map[string]any `json:"fields,omitempty"`
}
