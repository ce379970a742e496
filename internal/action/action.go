// Package action defines the closed set of update commands the diff engine
// produces. Consumers switch on Kind(), never on the runtime type.
package action

import "github.com/skuforge/catalogsync/internal/catalog"

type Action interface {
	Kind() Kind
}

type ChangeName struct {
	Name catalog.LocalizedString `json:"name"`
}

func (ChangeName) Kind() Kind { return KindChangeName }

type SetDescription struct {
	Description catalog.LocalizedString `json:"description"`
}

func (SetDescription) Kind() Kind { return KindSetDescription }

type ChangeSlug struct {
	Slug catalog.LocalizedString `json:"slug"`
}

func (ChangeSlug) Kind() Kind { return KindChangeSlug }

type SetSearchKeywords struct {
	SearchKeywords map[string][]string `json:"search_keywords"`
}

func (SetSearchKeywords) Kind() Kind { return KindSetSearchKeywords }

type SetMetaTitle struct {
	MetaTitle catalog.LocalizedString `json:"meta_title"`
}

func (SetMetaTitle) Kind() Kind { return KindSetMetaTitle }

type SetMetaDescription struct {
	MetaDescription catalog.LocalizedString `json:"meta_description"`
}

func (SetMetaDescription) Kind() Kind { return KindSetMetaDescription }

type SetMetaKeywords struct {
	MetaKeywords catalog.LocalizedString `json:"meta_keywords"`
}

func (SetMetaKeywords) Kind() Kind { return KindSetMetaKeywords }

// SetTaxCategory with a nil reference unsets the tax category.
type SetTaxCategory struct {
	TaxCategory *catalog.ResourceRef `json:"tax_category,omitempty"`
}

func (SetTaxCategory) Kind() Kind { return KindSetTaxCategory }

type TransitionState struct {
	State *catalog.ResourceRef `json:"state"`
}

func (TransitionState) Kind() Kind { return KindTransitionState }

type AddToCategory struct {
	Category catalog.ResourceRef `json:"category"`
}

func (AddToCategory) Kind() Kind { return KindAddToCategory }

type RemoveFromCategory struct {
	Category catalog.ResourceRef `json:"category"`
}

func (RemoveFromCategory) Kind() Kind { return KindRemoveFromCategory }

// SetCategoryOrderHint with a nil hint unsets the hint for that category.
type SetCategoryOrderHint struct {
	CategoryID string  `json:"category_id"`
	OrderHint  *string `json:"order_hint,omitempty"`
}

func (SetCategoryOrderHint) Kind() Kind { return KindSetCategoryOrderHint }

// AddVariant carries the draft verbatim: sku, key, attributes, prices,
// images and assets, with no per-field diffing.
type AddVariant struct {
	SKU        string               `json:"sku,omitempty"`
	Key        string               `json:"key"`
	Attributes []catalog.Attribute  `json:"attributes,omitempty"`
	Prices     []catalog.PriceDraft `json:"prices,omitempty"`
	Images     []catalog.Image      `json:"images,omitempty"`
	Assets     []catalog.AssetDraft `json:"assets,omitempty"`
}

func (AddVariant) Kind() Kind { return KindAddVariant }

type RemoveVariant struct {
	VariantID int64 `json:"variant_id"`
}

func (RemoveVariant) Kind() Kind { return KindRemoveVariant }

// ChangeMasterVariant targets the new master by sku: the new master may be a
// variant added in the same batch, which has no id yet.
type ChangeMasterVariant struct {
	SKU string `json:"sku"`
}

func (ChangeMasterVariant) Kind() Kind { return KindChangeMasterVariant }

type SetSku struct {
	VariantID int64  `json:"variant_id"`
	SKU       string `json:"sku"`
}

func (SetSku) Kind() Kind { return KindSetSku }

// SetAttribute with a nil value unsets the attribute on the one variant.
type SetAttribute struct {
	VariantID int64  `json:"variant_id"`
	Name      string `json:"name"`
	Value     any    `json:"value,omitempty"`
}

func (SetAttribute) Kind() Kind { return KindSetAttribute }

// SetAttributeInAllVariants sets (or, with a nil value, unsets) an attribute
// on every variant of the item at once.
type SetAttributeInAllVariants struct {
	Name  string `json:"name"`
	Value any    `json:"value,omitempty"`
}

func (SetAttributeInAllVariants) Kind() Kind { return KindSetAttributeInAllVariants }

type AddPrice struct {
	VariantID int64              `json:"variant_id"`
	Price     catalog.PriceDraft `json:"price"`
}

func (AddPrice) Kind() Kind { return KindAddPrice }

type RemovePrice struct {
	PriceID string `json:"price_id"`
}

func (RemovePrice) Kind() Kind { return KindRemovePrice }

type ChangePrice struct {
	PriceID string             `json:"price_id"`
	Price   catalog.PriceDraft `json:"price"`
}

func (ChangePrice) Kind() Kind { return KindChangePrice }

// SetPriceCustomType with a blank type id removes the custom type.
type SetPriceCustomType struct {
	PriceID string         `json:"price_id"`
	TypeID  string         `json:"type_id,omitempty"`
	Fields  map[string]any `json:"fields,omitempty"`
}

func (SetPriceCustomType) Kind() Kind { return KindSetPriceCustomType }

type SetPriceCustomField struct {
	PriceID string `json:"price_id"`
	Name    string `json:"name"`
	Value   any    `json:"value,omitempty"`
}

func (SetPriceCustomField) Kind() Kind { return KindSetPriceCustomField }

type AddExternalImage struct {
	VariantID int64         `json:"variant_id"`
	Image     catalog.Image `json:"image"`
}

func (AddExternalImage) Kind() Kind { return KindAddExternalImage }

type RemoveImage struct {
	VariantID int64  `json:"variant_id"`
	ImageURL  string `json:"image_url"`
}

func (RemoveImage) Kind() Kind { return KindRemoveImage }

type MoveImageToPosition struct {
	VariantID int64  `json:"variant_id"`
	ImageURL  string `json:"image_url"`
	Position  int    `json:"position"`
}

func (MoveImageToPosition) Kind() Kind { return KindMoveImageToPosition }

type AddAsset struct {
	VariantID int64              `json:"variant_id"`
	Asset     catalog.AssetDraft `json:"asset"`
}

func (AddAsset) Kind() Kind { return KindAddAsset }

type RemoveAsset struct {
	VariantID int64  `json:"variant_id"`
	AssetKey  string `json:"asset_key"`
}

func (RemoveAsset) Kind() Kind { return KindRemoveAsset }

type ChangeAssetName struct {
	VariantID int64                   `json:"variant_id"`
	AssetKey  string                  `json:"asset_key"`
	Name      catalog.LocalizedString `json:"name"`
}

func (ChangeAssetName) Kind() Kind { return KindChangeAssetName }

type SetAssetDescription struct {
	VariantID   int64                   `json:"variant_id"`
	AssetKey    string                  `json:"asset_key"`
	Description catalog.LocalizedString `json:"description,omitempty"`
}

func (SetAssetDescription) Kind() Kind { return KindSetAssetDescription }

type SetAssetTags struct {
	VariantID int64    `json:"variant_id"`
	AssetKey  string   `json:"asset_key"`
	Tags      []string `json:"tags,omitempty"`
}

func (SetAssetTags) Kind() Kind { return KindSetAssetTags }

type SetAssetSources struct {
	VariantID int64                 `json:"variant_id"`
	AssetKey  string                `json:"asset_key"`
	Sources   []catalog.AssetSource `json:"sources"`
}

func (SetAssetSources) Kind() Kind { return KindSetAssetSources }

// SetAssetCustomType with a blank type id removes the custom type.
type SetAssetCustomType struct {
	VariantID int64          `json:"variant_id"`
	AssetKey  string         `json:"asset_key"`
	TypeID    string         `json:"type_id,omitempty"`
	Fields    map[string]any `json:"fields,omitempty"`
}

func (SetAssetCustomType) Kind() Kind { return KindSetAssetCustomType }

type SetAssetCustomField struct {
	VariantID int64  `json:"variant_id"`
	AssetKey  string `json:"asset_key"`
	Name      string `json:"name"`
	Value     any    `json:"value,omitempty"`
}

func (SetAssetCustomField) Kind() Kind { return KindSetAssetCustomField }

type Publish struct{}

func (Publish) Kind() Kind { return KindPublish }

type Unpublish struct{}

func (Unpublish) Kind() Kind { return KindUnpublish }
