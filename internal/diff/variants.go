package diff

import (
	"fmt"

	"github.com/skuforge/catalogsync/internal/action"
	"github.com/skuforge/catalogsync/internal/catalog"
)

// TemporarySKUSuffix frees an SKU that an incoming variant needs while the
// old master still holds it. The platform rejects duplicate SKUs and the
// remove of the old master lands after the add, so the old master is parked
// on a throwaway SKU first.
const TemporarySKUSuffix = "_temporary_sku"

// buildVariantSetActions reconciles the full variant sets of the old item
// and the draft: removals of vanished variants, per-pair diffs of surviving
// ones, adds for new ones, and the master handover when the draft names a
// different master.
func (e *Engine) buildVariantSetActions(itemKey string, old catalog.Item, draft catalog.ItemDraft, meta map[string]catalog.AttributeMetadata) ([]action.Action, []Diagnostic) {
	if old.MasterVariant.Key == "" {
		return nil, []Diagnostic{errorDiag(
			itemKey+".masterVariant", CodeMasterKeyBlank,
			"existing master variant has no key; variants cannot be matched", nil)}
	}
	if draft.MasterVariant.Key == "" {
		return nil, []Diagnostic{errorDiag(
			itemKey+".masterVariant", CodeMasterKeyBlank,
			"draft master variant has no key; variants cannot be matched", nil)}
	}

	newKeys := make(map[string]struct{}, len(draft.Variants)+1)
	for _, v := range draft.AllVariants() {
		if v.Key == "" {
			continue
		}
		newKeys[v.Key] = struct{}{}
	}
	oldByKey := make(map[string]catalog.Variant, len(old.Variants)+1)
	for _, v := range old.AllVariants() {
		oldByKey[v.Key] = v
	}

	masterChanging := old.MasterVariant.Key != draft.MasterVariant.Key
	if masterChanging && draft.MasterVariant.SKU == "" {
		return nil, []Diagnostic{errorDiag(
			itemKey+".masterVariant", CodeMasterSkuBlank,
			fmt.Sprintf("draft master variant %q has no sku; cannot change master", draft.MasterVariant.Key), nil)}
	}

	var actions []action.Action
	var diags []Diagnostic

	oldMasterLeaving := false
	if _, kept := newKeys[old.MasterVariant.Key]; !kept {
		oldMasterLeaving = true
	}

	for _, v := range old.Variants {
		if _, kept := newKeys[v.Key]; !kept {
			actions = append(actions, action.RemoveVariant{VariantID: v.ID})
		}
	}

	// Master last so sibling variant updates land before the handover.
	sameForAll := make(map[string]struct{})
	variantAdded := false
	for i, v := range draft.AllVariants() {
		if v.Key == "" {
			diags = append(diags, errorDiag(
				fmt.Sprintf("%s.variants[%d]", itemKey, i), CodeNullElement,
				"draft variant has no key; skipped", nil))
			continue
		}
		oldVariant, matched := oldByKey[v.Key]
		if matched {
			a, d := e.buildVariantActions(itemKey, oldVariant, v, meta, sameForAll)
			actions = append(actions, a...)
			diags = append(diags, d...)
			continue
		}
		actions = append(actions, action.AddVariant{
			SKU:        v.SKU,
			Key:        v.Key,
			Attributes: v.Attributes,
			Prices:     v.Prices,
			Images:     v.Images,
			Assets:     v.Assets,
		})
		variantAdded = true
	}

	if masterChanging {
		actions = append(actions, action.ChangeMasterVariant{SKU: draft.MasterVariant.SKU})
		if oldMasterLeaving {
			actions = append(actions, action.RemoveVariant{VariantID: old.MasterVariant.ID})
		}

		// Adding a variant resets sameForAll attributes on the platform, so
		// the new master's values are re-asserted unless already in the bag.
		if variantAdded {
			for _, attr := range draft.MasterVariant.Attributes {
				m, known := meta[attr.Name]
				if !known || !m.SameForAll {
					continue
				}
				if _, emitted := sameForAll[attr.Name]; emitted {
					continue
				}
				sameForAll[attr.Name] = struct{}{}
				actions = append(actions, action.SetAttributeInAllVariants{Name: attr.Name, Value: attr.Value})
			}
		}
	}

	return actions, diags
}

// applySkuGuard parks the old master on a throwaway SKU when the ordered
// bag is about to add a variant that reuses that SKU while the master
// handover is still pending. It runs on the final ordering so the guard
// lands directly before the conflicting addVariant.
func applySkuGuard(actions []action.Action, oldMaster catalog.Variant) []action.Action {
	if oldMaster.SKU == "" {
		return actions
	}

	hasChangeMaster := false
	conflictAt := -1
	for i, a := range actions {
		switch a.Kind() {
		case action.KindChangeMasterVariant:
			hasChangeMaster = true
		case action.KindAddVariant:
			if conflictAt < 0 && a.(action.AddVariant).SKU == oldMaster.SKU {
				conflictAt = i
			}
		}
	}
	if !hasChangeMaster || conflictAt < 0 {
		return actions
	}

	guard := action.SetSku{VariantID: oldMaster.ID, SKU: oldMaster.SKU + TemporarySKUSuffix}
	out := make([]action.Action, 0, len(actions)+1)
	out = append(out, actions[:conflictAt]...)
	out = append(out, guard)
	out = append(out, actions[conflictAt:]...)
	return out
}
