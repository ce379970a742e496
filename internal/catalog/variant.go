package catalog

// Variant is one SKU-bearing unit of an existing catalog item. The id is
// assigned by the platform; the key is the caller's stable handle and must be
// unique within the item.
type Variant struct {
	ID         int64       `json:"id"`
	Key        string      `json:"key"`
	SKU        string      `json:"sku,omitempty"`
	Attributes []Attribute `json:"attributes,omitempty"`
	Prices     []Price     `json:"prices,omitempty"`
	Images     []Image     `json:"images,omitempty"`
	Assets     []Asset     `json:"assets,omitempty"`
}

// VariantDraft is the desired state of one variant. It has no id yet.
type VariantDraft struct {
	Key        string       `json:"key"`
	SKU        string       `json:"sku,omitempty"`
	Attributes []Attribute  `json:"attributes,omitempty"`
	Prices     []PriceDraft `json:"prices,omitempty"`
	Images     []Image      `json:"images,omitempty"`
	Assets     []AssetDraft `json:"assets,omitempty"`
}

// Draft converts an existing variant back into draft form.
func (v Variant) Draft() VariantDraft {
	d := VariantDraft{
		Key:        v.Key,
		SKU:        v.SKU,
		Attributes: v.Attributes,
		Images:     v.Images,
	}
	for _, p := range v.Prices {
		d.Prices = append(d.Prices, p.Draft())
	}
	for _, a := range v.Assets {
		d.Assets = append(d.Assets, a.Draft())
	}
	return d
}
