package catalog

type ImageDimensions struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// Image is one entry in a variant's ordered image list. Images have no id;
// they are compared by value, so the struct must stay comparable.
type Image struct {
	URL        string          `json:"url"`
	Dimensions ImageDimensions `json:"dimensions"`
	Label      string          `json:"label,omitempty"`
}
