// Package resolve rewrites raw resource ids inside drafts to the stable keys
// the diff engine matches on. It runs before diffing so the engine can
// compare references by identifier without touching the network.
package resolve

import (
	"github.com/skuforge/catalogsync/internal/catalog"
	"github.com/skuforge/catalogsync/internal/refcache"
)

// Draft returns a copy of the draft with every reference that carries only
// an id upgraded to carry the key the cache knows for it. Unknown ids pass
// through untouched; diffing then falls back to id comparison for them.
func Draft(cache refcache.Cache, draft catalog.ItemDraft) catalog.ItemDraft {
	out := draft

	out.TaxCategory = resolveRef(cache, draft.TaxCategory)
	out.State = resolveRef(cache, draft.State)

	if len(draft.Categories) > 0 {
		out.Categories = make([]catalog.ResourceRef, len(draft.Categories))
		for i, c := range draft.Categories {
			out.Categories[i] = resolveVal(cache, c)
		}
	}

	if len(draft.CategoryOrderHints) > 0 {
		hints := make(map[string]string, len(draft.CategoryOrderHints))
		for id, hint := range draft.CategoryOrderHints {
			hints[id] = hint
		}
		out.CategoryOrderHints = hints
	}

	out.MasterVariant = resolveVariant(cache, draft.MasterVariant)
	if len(draft.Variants) > 0 {
		out.Variants = make([]catalog.VariantDraft, len(draft.Variants))
		for i, v := range draft.Variants {
			out.Variants[i] = resolveVariant(cache, v)
		}
	}

	return out
}

// Drafts resolves a whole batch.
func Drafts(cache refcache.Cache, drafts []catalog.ItemDraft) []catalog.ItemDraft {
	out := make([]catalog.ItemDraft, len(drafts))
	for i, d := range drafts {
		out[i] = Draft(cache, d)
	}
	return out
}

func resolveVariant(cache refcache.Cache, v catalog.VariantDraft) catalog.VariantDraft {
	out := v
	if len(v.Prices) > 0 {
		out.Prices = make([]catalog.PriceDraft, len(v.Prices))
		for i, p := range v.Prices {
			rp := p
			rp.Channel = resolveRef(cache, p.Channel)
			rp.CustomerGroup = resolveRef(cache, p.CustomerGroup)
			out.Prices[i] = rp
		}
	}
	return out
}

func resolveRef(cache refcache.Cache, ref *catalog.ResourceRef) *catalog.ResourceRef {
	if ref == nil || ref.Key != "" || ref.ID == "" {
		return ref
	}
	key, ok := cache.Get(ref.ID)
	if !ok {
		return ref
	}
	resolved := *ref
	resolved.Key = key
	return &resolved
}

func resolveVal(cache refcache.Cache, ref catalog.ResourceRef) catalog.ResourceRef {
	if ref.Key != "" || ref.ID == "" {
		return ref
	}
	if key, ok := cache.Get(ref.ID); ok {
		ref.Key = key
	}
	return ref
}
