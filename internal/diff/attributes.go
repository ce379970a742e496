package diff

import (
	"fmt"

	"github.com/skuforge/catalogsync/internal/action"
	"github.com/skuforge/catalogsync/internal/catalog"
)

// buildAttributeActions diffs one variant's attribute list. The metadata map
// decides per attribute name whether a change becomes setAttribute on this
// variant or setAttributeInAllVariants; an attribute with no metadata entry
// cannot be scoped and is reported instead of diffed.
//
// sameForAll collects the names of sameForAll attributes already emitted so
// the caller can dedup across variants; the caller owns the set.
func buildAttributeActions(itemKey string, oldVariant catalog.Variant, draft catalog.VariantDraft, meta map[string]catalog.AttributeMetadata, sameForAll map[string]struct{}) ([]action.Action, []Diagnostic) {
	var actions []action.Action
	var diags []Diagnostic

	newByName := make(map[string]catalog.Attribute, len(draft.Attributes))
	for i, attr := range draft.Attributes {
		if attr.Name == "" {
			diags = append(diags, errorDiag(
				attrPath(itemKey, draft.Key, fmt.Sprintf("[%d]", i)), CodeNullElement,
				fmt.Sprintf("attribute draft %d on variant %q has no name", i, draft.Key), nil))
			continue
		}
		newByName[attr.Name] = attr
	}

	// Unsets first: old attributes absent from the draft.
	for _, attr := range oldVariant.Attributes {
		if _, keep := newByName[attr.Name]; keep {
			continue
		}
		a, d, ok := attributeAction(itemKey, oldVariant.ID, draft.Key, attr.Name, nil, meta, sameForAll)
		if !ok {
			diags = append(diags, d...)
			continue
		}
		actions = append(actions, a...)
	}

	oldByName := make(map[string]catalog.Attribute, len(oldVariant.Attributes))
	for _, attr := range oldVariant.Attributes {
		oldByName[attr.Name] = attr
	}

	for _, attr := range draft.Attributes {
		if attr.Name == "" {
			continue // reported above
		}
		oldAttr, had := oldByName[attr.Name]
		if had && valuesEqual(oldAttr.Value, attr.Value) {
			continue
		}
		a, d, ok := attributeAction(itemKey, oldVariant.ID, draft.Key, attr.Name, attr.Value, meta, sameForAll)
		if !ok {
			diags = append(diags, d...)
			continue
		}
		actions = append(actions, a...)
	}

	return actions, diags
}

func attributeAction(itemKey string, variantID int64, variantKey, name string, value any, meta map[string]catalog.AttributeMetadata, sameForAll map[string]struct{}) ([]action.Action, []Diagnostic, bool) {
	m, known := meta[name]
	if !known {
		return nil, []Diagnostic{errorDiag(
			attrPath(itemKey, variantKey, name), CodeAttributeMetadataMissing,
			fmt.Sprintf("no metadata for attribute %q; cannot decide update scope", name), nil)}, false
	}
	if !m.SameForAll {
		return []action.Action{action.SetAttribute{VariantID: variantID, Name: name, Value: value}}, nil, true
	}
	if _, emitted := sameForAll[name]; emitted {
		return nil, nil, true
	}
	sameForAll[name] = struct{}{}
	return []action.Action{action.SetAttributeInAllVariants{Name: name, Value: value}}, nil, true
}

func attrPath(itemKey, variantKey, name string) string {
	return fmt.Sprintf("%s.variant.%s.attributes.%s", itemKey, variantKey, name)
}
