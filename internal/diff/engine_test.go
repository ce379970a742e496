package diff

import (
	"testing"

	"github.com/skuforge/catalogsync/internal/action"
	"github.com/skuforge/catalogsync/internal/catalog"
)

func testItem() catalog.Item {
	return catalog.Item{
		ID:   "item-1",
		Key:  "shirt",
		Name: catalog.LocalizedString{"en": "Shirt"},
		Slug: catalog.LocalizedString{"en": "shirt"},
		MasterVariant: catalog.Variant{
			ID:  1,
			Key: "master",
			SKU: "SKU-M",
			Attributes: []catalog.Attribute{
				{Name: "size", Value: "M"},
			},
		},
	}
}

func draftFromItem(item catalog.Item) catalog.ItemDraft {
	d := catalog.ItemDraft{
		Key:                item.Key,
		Name:               item.Name,
		Description:        item.Description,
		Slug:               item.Slug,
		SearchKeywords:     item.SearchKeywords,
		MetaTitle:          item.MetaTitle,
		MetaDescription:    item.MetaDescription,
		MetaKeywords:       item.MetaKeywords,
		TaxCategory:        item.TaxCategory,
		State:              item.State,
		Categories:         item.Categories,
		CategoryOrderHints: item.CategoryOrderHints,
		Publish:            item.Published,
		MasterVariant:      item.MasterVariant.Draft(),
	}
	for _, v := range item.Variants {
		d.Variants = append(d.Variants, v.Draft())
	}
	return d
}

func testMeta() map[string]catalog.AttributeMetadata {
	return map[string]catalog.AttributeMetadata{
		"size":  {Name: "size"},
		"color": {Name: "color", SameForAll: true},
	}
}

func TestBuildActions_Idempotent(t *testing.T) {
	engine := NewEngine(Options{})
	item := testItem()

	actions, diags := engine.BuildActions(item, draftFromItem(item), testMeta())
	if len(actions) != 0 {
		t.Fatalf("expected no actions, got %#v", actions)
	}
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %#v", diags)
	}
}

func TestBuildActions_NameChange(t *testing.T) {
	engine := NewEngine(Options{})
	item := testItem()
	draft := draftFromItem(item)
	draft.Name = catalog.LocalizedString{"en": "Tee"}

	actions, _ := engine.BuildActions(item, draft, testMeta())
	if len(actions) != 1 {
		t.Fatalf("expected 1 action, got %#v", actions)
	}
	got, ok := actions[0].(action.ChangeName)
	if !ok {
		t.Fatalf("expected ChangeName, got %#v", actions[0])
	}
	if got.Name["en"] != "Tee" {
		t.Fatalf("unexpected name: %#v", got.Name)
	}
}

func TestBuildActions_FilterAllow(t *testing.T) {
	engine := NewEngine(Options{Filter: AllowGroups(GroupName)})
	item := testItem()
	draft := draftFromItem(item)
	draft.Name = catalog.LocalizedString{"en": "Tee"}
	draft.Description = catalog.LocalizedString{"en": "A tee"}

	actions, _ := engine.BuildActions(item, draft, testMeta())
	if len(actions) != 1 {
		t.Fatalf("expected only the name change, got %#v", actions)
	}
	if actions[0].Kind() != action.KindChangeName {
		t.Fatalf("expected changeName, got %s", actions[0].Kind())
	}
}

func TestBuildActions_FilterDeny(t *testing.T) {
	engine := NewEngine(Options{Filter: DenyGroups(GroupName)})
	item := testItem()
	draft := draftFromItem(item)
	draft.Name = catalog.LocalizedString{"en": "Tee"}
	draft.Description = catalog.LocalizedString{"en": "A tee"}

	actions, _ := engine.BuildActions(item, draft, testMeta())
	if len(actions) != 1 {
		t.Fatalf("expected only the description change, got %#v", actions)
	}
	if actions[0].Kind() != action.KindSetDescription {
		t.Fatalf("expected setDescription, got %s", actions[0].Kind())
	}
}

func TestBuildActions_CategoryChanges(t *testing.T) {
	engine := NewEngine(Options{})
	item := testItem()
	item.Categories = []catalog.ResourceRef{
		{TypeID: "category", ID: "c1"},
		{TypeID: "category", ID: "c2"},
	}
	item.CategoryOrderHints = map[string]string{"c1": "0.1", "c2": "0.2"}

	draft := draftFromItem(item)
	draft.Categories = []catalog.ResourceRef{
		{TypeID: "category", ID: "c1"},
		{TypeID: "category", ID: "c3"},
	}
	draft.CategoryOrderHints = map[string]string{"c1": "0.5"}

	actions, _ := engine.BuildActions(item, draft, testMeta())

	// add c3, clear no hints (c2 is leaving), change c1 hint, remove c2
	if len(actions) != 3 {
		t.Fatalf("expected 3 actions, got %#v", actions)
	}
	if _, ok := actions[0].(action.AddToCategory); !ok {
		t.Fatalf("expected addToCategory first, got %#v", actions[0])
	}
	hint, ok := actions[1].(action.SetCategoryOrderHint)
	if !ok || hint.CategoryID != "c1" || hint.OrderHint == nil || *hint.OrderHint != "0.5" {
		t.Fatalf("unexpected hint action: %#v", actions[1])
	}
	rm, ok := actions[2].(action.RemoveFromCategory)
	if !ok || rm.Category.ID != "c2" {
		t.Fatalf("expected removeFromCategory c2, got %#v", actions[2])
	}
}

func TestBuildActions_OrderHintClearedOnlyWhileAssigned(t *testing.T) {
	engine := NewEngine(Options{})
	item := testItem()
	item.Categories = []catalog.ResourceRef{{TypeID: "category", ID: "c1"}}
	item.CategoryOrderHints = map[string]string{"c1": "0.1"}

	draft := draftFromItem(item)
	draft.CategoryOrderHints = nil

	actions, _ := engine.BuildActions(item, draft, testMeta())
	if len(actions) != 1 {
		t.Fatalf("expected 1 action, got %#v", actions)
	}
	hint, ok := actions[0].(action.SetCategoryOrderHint)
	if !ok || hint.CategoryID != "c1" || hint.OrderHint != nil {
		t.Fatalf("expected unset hint for c1, got %#v", actions[0])
	}
}

func TestBuildActions_SameForAllDedup(t *testing.T) {
	engine := NewEngine(Options{})
	item := testItem()
	item.MasterVariant.Attributes = []catalog.Attribute{{Name: "color", Value: "blue"}}
	item.Variants = []catalog.Variant{
		{ID: 2, Key: "v2", SKU: "SKU-2", Attributes: []catalog.Attribute{{Name: "color", Value: "blue"}}},
	}

	draft := draftFromItem(item)
	draft.MasterVariant.Attributes = []catalog.Attribute{{Name: "color", Value: "red"}}
	draft.Variants[0].Attributes = []catalog.Attribute{{Name: "color", Value: "red"}}

	actions, diags := engine.BuildActions(item, draft, testMeta())
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %#v", diags)
	}
	if len(actions) != 1 {
		t.Fatalf("expected exactly one action, got %#v", actions)
	}
	sfa, ok := actions[0].(action.SetAttributeInAllVariants)
	if !ok || sfa.Name != "color" || sfa.Value != "red" {
		t.Fatalf("unexpected action: %#v", actions[0])
	}
}

func TestBuildActions_BlankMasterKeyAbortsVariantDiffOnly(t *testing.T) {
	var reported []Diagnostic
	engine := NewEngine(Options{
		OnError: func(d Diagnostic) { reported = append(reported, d) },
	})

	item := testItem()
	draft := draftFromItem(item)
	draft.Name = catalog.LocalizedString{"en": "Tee"}
	draft.MasterVariant.Key = ""

	actions, diags := engine.BuildActions(item, draft, testMeta())
	if len(actions) != 1 || actions[0].Kind() != action.KindChangeName {
		t.Fatalf("expected the field diff to survive, got %#v", actions)
	}
	if len(diags) != 1 || diags[0].Code != CodeMasterKeyBlank {
		t.Fatalf("unexpected diagnostics: %#v", diags)
	}
	if len(reported) != 1 {
		t.Fatalf("expected the error forwarded exactly once, got %d", len(reported))
	}
}
