package catalog

type AssetSource struct {
	URI         string `json:"uri"`
	Key         string `json:"key,omitempty"`
	Width       int    `json:"w,omitempty"`
	Height      int    `json:"h,omitempty"`
	ContentType string `json:"content_type,omitempty"`
}

// Asset is a keyed media attachment on a variant. Keys must be unique within
// one variant's asset list.
type Asset struct {
	ID          string          `json:"id,omitempty"`
	Key         string          `json:"key"`
	Name        LocalizedString `json:"name,omitempty"`
	Description LocalizedString `json:"description,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Sources     []AssetSource   `json:"sources,omitempty"`
	Custom      *CustomFields   `json:"custom,omitempty"`
}

type AssetDraft struct {
	Key         string          `json:"key"`
	Name        LocalizedString `json:"name,omitempty"`
	Description LocalizedString `json:"description,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Sources     []AssetSource   `json:"sources,omitempty"`
	Custom      *CustomFields   `json:"custom,omitempty"`
}

// Draft converts an existing asset back into draft form, dropping the id.
func (a Asset) Draft() AssetDraft {
	return AssetDraft{
		Key:         a.Key,
		Name:        a.Name,
		Description: a.Description,
		Tags:        a.Tags,
		Sources:     a.Sources,
		Custom:      a.Custom,
	}
}
