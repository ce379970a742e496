package diff

import (
	"fmt"
	"sort"

	"github.com/skuforge/catalogsync/internal/action"
	"github.com/skuforge/catalogsync/internal/catalog"
)

// BuildActions computes the ordered update commands that transform old into
// the state draft describes. The returned slice is freshly allocated per
// call; the engine holds no state between calls and is safe for concurrent
// use. Diagnostics are both returned and forwarded once to the configured
// sinks.
func (e *Engine) BuildActions(old catalog.Item, draft catalog.ItemDraft, meta map[string]catalog.AttributeMetadata) (actions []action.Action, diags []Diagnostic) {
	itemKey := draft.Key
	if itemKey == "" {
		itemKey = old.Key
	}

	defer func() {
		if r := recover(); r != nil {
			actions = nil
			diags = append(diags, errorDiag(itemKey, CodeInternal,
				fmt.Sprintf("diff aborted: %v", r), nil))
			e.report(diags)
		}
	}()

	actions = append(actions, e.buildFieldActions(old, draft)...)
	if e.opts.Filter.Allows(GroupCategories) {
		actions = append(actions, buildCategoryActions(old, draft)...)
	}

	variantActions, variantDiags := e.buildVariantSetActions(itemKey, old, draft, meta)
	actions = append(actions, variantActions...)
	diags = append(diags, variantDiags...)

	actions = prioritize(actions, old.MasterVariant.ID)
	actions = applySkuGuard(actions, old.MasterVariant)

	if publish, ok := buildPublishAction(old, draft, len(actions) > 0); ok {
		actions = append(actions, publish)
	}

	e.report(diags)
	return actions, diags
}

func (e *Engine) buildFieldActions(old catalog.Item, draft catalog.ItemDraft) []action.Action {
	var actions []action.Action

	add := func(g Group, a action.Action, ok bool) {
		if ok && e.opts.Filter.Allows(g) {
			actions = append(actions, a)
		}
	}

	a, ok := buildUpdateAction(old.Name, draft.Name, func() action.Action {
		return action.ChangeName{Name: draft.Name}
	})
	add(GroupName, a, ok)

	a, ok = buildUpdateAction(old.Description, draft.Description, func() action.Action {
		return action.SetDescription{Description: draft.Description}
	})
	add(GroupDescription, a, ok)

	a, ok = buildUpdateAction(old.Slug, draft.Slug, func() action.Action {
		return action.ChangeSlug{Slug: draft.Slug}
	})
	add(GroupSlug, a, ok)

	a, ok = buildUpdateAction(old.SearchKeywords, draft.SearchKeywords, func() action.Action {
		return action.SetSearchKeywords{SearchKeywords: draft.SearchKeywords}
	})
	add(GroupSearchKeywords, a, ok)

	a, ok = buildUpdateAction(old.MetaTitle, draft.MetaTitle, func() action.Action {
		return action.SetMetaTitle{MetaTitle: draft.MetaTitle}
	})
	add(GroupMetaTitle, a, ok)

	a, ok = buildUpdateAction(old.MetaDescription, draft.MetaDescription, func() action.Action {
		return action.SetMetaDescription{MetaDescription: draft.MetaDescription}
	})
	add(GroupMetaDescription, a, ok)

	a, ok = buildUpdateAction(old.MetaKeywords, draft.MetaKeywords, func() action.Action {
		return action.SetMetaKeywords{MetaKeywords: draft.MetaKeywords}
	})
	add(GroupMetaKeywords, a, ok)

	a, ok = buildRefUpdateAction(old.TaxCategory, draft.TaxCategory, func() action.Action {
		return action.SetTaxCategory{TaxCategory: draft.TaxCategory}
	})
	add(GroupTaxCategory, a, ok)

	// transitionState only moves to a concrete state; clearing is not a
	// platform operation.
	if draft.State != nil && !draft.State.IsZero() && !refsEqual(old.State, draft.State) {
		add(GroupState, action.TransitionState{State: draft.State}, true)
	}

	return actions
}

// buildCategoryActions emits category membership and order-hint commands:
// adds in draft order, then hint changes, then removals in old order. A
// hint is cleared only while the item stays in that category.
func buildCategoryActions(old catalog.Item, draft catalog.ItemDraft) []action.Action {
	var actions []action.Action

	oldSet := make(map[string]struct{}, len(old.Categories))
	for _, c := range old.Categories {
		oldSet[c.Identifier()] = struct{}{}
	}
	newSet := make(map[string]struct{}, len(draft.Categories))
	newIDs := make(map[string]struct{}, len(draft.Categories))
	for _, c := range draft.Categories {
		newSet[c.Identifier()] = struct{}{}
		newIDs[c.ID] = struct{}{}
	}

	for _, c := range draft.Categories {
		if _, had := oldSet[c.Identifier()]; !had {
			actions = append(actions, action.AddToCategory{Category: c})
		}
	}

	for _, categoryID := range sortedKeys(old.CategoryOrderHints) {
		if _, hinted := draft.CategoryOrderHints[categoryID]; hinted {
			continue
		}
		if _, assigned := newIDs[categoryID]; assigned {
			actions = append(actions, action.SetCategoryOrderHint{CategoryID: categoryID})
		}
	}
	for _, categoryID := range sortedKeys(draft.CategoryOrderHints) {
		hint := draft.CategoryOrderHints[categoryID]
		if oldHint, had := old.CategoryOrderHints[categoryID]; !had || oldHint != hint {
			h := hint
			actions = append(actions, action.SetCategoryOrderHint{CategoryID: categoryID, OrderHint: &h})
		}
	}

	for _, c := range old.Categories {
		if _, kept := newSet[c.Identifier()]; !kept {
			actions = append(actions, action.RemoveFromCategory{Category: c})
		}
	}

	return actions
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
