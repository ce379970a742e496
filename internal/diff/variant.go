package diff

import (
	"github.com/skuforge/catalogsync/internal/action"
	"github.com/skuforge/catalogsync/internal/catalog"
)

// buildVariantActions diffs one matched old/new variant pair, honoring the
// group filter per concern. sameForAll is shared across all variant pairs of
// an item so a sameForAll attribute produces a single command.
func (e *Engine) buildVariantActions(itemKey string, old catalog.Variant, draft catalog.VariantDraft, meta map[string]catalog.AttributeMetadata, sameForAll map[string]struct{}) ([]action.Action, []Diagnostic) {
	var actions []action.Action
	var diags []Diagnostic

	if e.opts.Filter.Allows(GroupSku) && old.SKU != draft.SKU {
		actions = append(actions, action.SetSku{VariantID: old.ID, SKU: draft.SKU})
	}

	if e.opts.Filter.Allows(GroupAttributes) {
		a, d := buildAttributeActions(itemKey, old, draft, meta, sameForAll)
		actions = append(actions, a...)
		diags = append(diags, d...)
	}

	if e.opts.Filter.Allows(GroupImages) {
		a, err := buildImageActions(old.ID, old.Images, draft.Images)
		if err != nil {
			diags = append(diags, Diagnostic{
				Level:   LevelError,
				Path:    imagePath(itemKey, draft.Key),
				Code:    CodeImageInvariant,
				Message: err.Error(),
				Cause:   err,
			})
		} else {
			actions = append(actions, a...)
		}
	}

	if e.opts.Filter.Allows(GroupPrices) {
		a, d := buildPriceActions(itemKey, old, draft)
		actions = append(actions, a...)
		diags = append(diags, d...)
	}

	if e.opts.Filter.Allows(GroupAssets) {
		a, d := buildAssetActions(itemKey, old, draft)
		actions = append(actions, a...)
		diags = append(diags, d...)
	}

	return actions, diags
}

func imagePath(itemKey, variantKey string) string {
	return itemKey + ".variant." + variantKey + ".images"
}
