package diff

import (
	"fmt"

	"github.com/skuforge/catalogsync/internal/action"
	"github.com/skuforge/catalogsync/internal/catalog"
)

// buildAssetActions diffs one variant's asset list, matching by asset key.
// A duplicate key among the drafts makes the matching ambiguous, so the
// whole asset diff for the variant is abandoned.
func buildAssetActions(itemKey string, oldVariant catalog.Variant, draft catalog.VariantDraft) ([]action.Action, []Diagnostic) {
	newByKey := make(map[string]catalog.AssetDraft, len(draft.Assets))
	for _, a := range draft.Assets {
		if _, dup := newByKey[a.Key]; dup {
			return nil, []Diagnostic{errorDiag(
				assetPath(itemKey, draft.Key, a.Key), CodeAssetKeyDuplicated,
				fmt.Sprintf("asset key %q appears more than once on variant %q", a.Key, draft.Key), nil)}
		}
		newByKey[a.Key] = a
	}

	var actions []action.Action
	var diags []Diagnostic

	oldByKey := make(map[string]catalog.Asset, len(oldVariant.Assets))
	for _, a := range oldVariant.Assets {
		oldByKey[a.Key] = a
		if _, keep := newByKey[a.Key]; !keep {
			actions = append(actions, action.RemoveAsset{VariantID: oldVariant.ID, AssetKey: a.Key})
		}
	}

	for _, a := range draft.Assets {
		oldAsset, matched := oldByKey[a.Key]
		if !matched {
			actions = append(actions, action.AddAsset{VariantID: oldVariant.ID, Asset: a})
			continue
		}

		variantID, key := oldVariant.ID, a.Key
		if act, ok := buildUpdateAction(oldAsset.Name, a.Name, func() action.Action {
			return action.ChangeAssetName{VariantID: variantID, AssetKey: key, Name: a.Name}
		}); ok {
			actions = append(actions, act)
		}
		if act, ok := buildUpdateAction(oldAsset.Description, a.Description, func() action.Action {
			return action.SetAssetDescription{VariantID: variantID, AssetKey: key, Description: a.Description}
		}); ok {
			actions = append(actions, act)
		}
		if act, ok := buildUpdateAction(oldAsset.Tags, a.Tags, func() action.Action {
			return action.SetAssetTags{VariantID: variantID, AssetKey: key, Tags: a.Tags}
		}); ok {
			actions = append(actions, act)
		}
		if act, ok := buildUpdateAction(oldAsset.Sources, a.Sources, func() action.Action {
			return action.SetAssetSources{VariantID: variantID, AssetKey: key, Sources: a.Sources}
		}); ok {
			actions = append(actions, act)
		}

		customActions, customDiags := buildCustomUpdateActions(
			assetPath(itemKey, draft.Key, key), oldAsset.Custom, a.Custom,
			assetCustomFactory{variantID: variantID, assetKey: key})
		actions = append(actions, customActions...)
		diags = append(diags, customDiags...)
	}

	return actions, diags
}

func assetPath(itemKey, variantKey, assetKey string) string {
	return fmt.Sprintf("%s.variant.%s.assets.%s", itemKey, variantKey, assetKey)
}
