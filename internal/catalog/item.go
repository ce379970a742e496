package catalog

// Item is the existing, authoritative state of one catalog entity.
type Item struct {
	ID  string `json:"id"`
	Key string `json:"key"`

	Name        LocalizedString `json:"name,omitempty"`
	Description LocalizedString `json:"description,omitempty"`
	Slug        LocalizedString `json:"slug,omitempty"`

	// SearchKeywords maps a locale tag to the keywords for that locale.
	SearchKeywords map[string][]string `json:"search_keywords,omitempty"`

	MetaTitle       LocalizedString `json:"meta_title,omitempty"`
	MetaDescription LocalizedString `json:"meta_description,omitempty"`
	MetaKeywords    LocalizedString `json:"meta_keywords,omitempty"`

	TaxCategory *ResourceRef `json:"tax_category,omitempty"`
	State       *ResourceRef `json:"state,omitempty"`

	Categories         []ResourceRef     `json:"categories,omitempty"`
	CategoryOrderHints map[string]string `json:"category_order_hints,omitempty"`

	Published        bool `json:"published"`
	HasStagedChanges bool `json:"has_staged_changes"`

	MasterVariant Variant   `json:"master_variant"`
	Variants      []Variant `json:"variants,omitempty"`
}

// ItemDraft is the desired state the engine diffs an Item against.
type ItemDraft struct {
	Key string `json:"key"`

	Name        LocalizedString `json:"name,omitempty"`
	Description LocalizedString `json:"description,omitempty"`
	Slug        LocalizedString `json:"slug,omitempty"`

	SearchKeywords map[string][]string `json:"search_keywords,omitempty"`

	MetaTitle       LocalizedString `json:"meta_title,omitempty"`
	MetaDescription LocalizedString `json:"meta_description,omitempty"`
	MetaKeywords    LocalizedString `json:"meta_keywords,omitempty"`

	TaxCategory *ResourceRef `json:"tax_category,omitempty"`
	State       *ResourceRef `json:"state,omitempty"`

	Categories         []ResourceRef     `json:"categories,omitempty"`
	CategoryOrderHints map[string]string `json:"category_order_hints,omitempty"`

	Publish bool `json:"publish"`

	MasterVariant VariantDraft   `json:"master_variant"`
	Variants      []VariantDraft `json:"variants,omitempty"`
}

// AllVariants returns the item's variants with the master variant first.
func (i Item) AllVariants() []Variant {
	all := make([]Variant, 0, len(i.Variants)+1)
	all = append(all, i.MasterVariant)
	all = append(all, i.Variants...)
	return all
}

// AllVariants returns the draft's variants with the master variant last,
// so matched updates for plain variants are produced before the master's.
func (d ItemDraft) AllVariants() []VariantDraft {
	all := make([]VariantDraft, 0, len(d.Variants)+1)
	all = append(all, d.Variants...)
	all = append(all, d.MasterVariant)
	return all
}
