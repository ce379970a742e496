package catalog

// Attribute is a named value on a variant. Values hold JSON-shaped data.
type Attribute struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// AttributeMetadata describes an attribute's constraints. It is supplied by
// the caller, keyed by name, and must cover every attribute encountered;
// an uncovered attribute fails its own diff, not the whole item.
type AttributeMetadata struct {
	Name       string `json:"name"`
	SameForAll bool   `json:"same_for_all"`
	Required   bool   `json:"required"`
}
