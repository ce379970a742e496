package diff

import (
	"testing"

	"github.com/skuforge/catalogsync/internal/action"
	"github.com/skuforge/catalogsync/internal/catalog"
)

func TestBuildCustomUpdateActions_SetType(t *testing.T) {
	newCustom := &catalog.CustomFields{
		Type:   catalog.ResourceRef{TypeID: "type", Key: "price-meta"},
		Fields: map[string]any{"campaign": "spring"},
	}

	actions, diags := buildCustomUpdateActions("p", nil, newCustom, priceCustomFactory{priceID: "p1"})
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %#v", diags)
	}
	if len(actions) != 1 {
		t.Fatalf("expected one action, got %#v", actions)
	}
	set, ok := actions[0].(action.SetPriceCustomType)
	if !ok || set.TypeID != "price-meta" || set.Fields["campaign"] != "spring" {
		t.Fatalf("unexpected action: %#v", actions[0])
	}
}

func TestBuildCustomUpdateActions_RemoveType(t *testing.T) {
	oldCustom := &catalog.CustomFields{
		Type: catalog.ResourceRef{TypeID: "type", Key: "price-meta"},
	}

	actions, diags := buildCustomUpdateActions("p", oldCustom, nil, priceCustomFactory{priceID: "p1"})
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %#v", diags)
	}
	if len(actions) != 1 {
		t.Fatalf("expected one action, got %#v", actions)
	}
	set, ok := actions[0].(action.SetPriceCustomType)
	if !ok || set.TypeID != "" {
		t.Fatalf("expected type removal, got %#v", actions[0])
	}
}

func TestBuildCustomUpdateActions_BothTypesBlank(t *testing.T) {
	oldCustom := &catalog.CustomFields{Fields: map[string]any{"a": 1}}
	newCustom := &catalog.CustomFields{Fields: map[string]any{"a": 2}}

	actions, diags := buildCustomUpdateActions("p", oldCustom, newCustom, priceCustomFactory{priceID: "p1"})
	if len(actions) != 0 {
		t.Fatalf("expected no actions, got %#v", actions)
	}
	if len(diags) != 1 || diags[0].Code != CodeCustomTypeAmbiguous {
		t.Fatalf("unexpected diagnostics: %#v", diags)
	}
}

func TestBuildCustomUpdateActions_FieldChanges(t *testing.T) {
	typeRef := catalog.ResourceRef{TypeID: "type", Key: "asset-meta"}
	oldCustom := &catalog.CustomFields{
		Type:   typeRef,
		Fields: map[string]any{"photographer": "jo", "season": "winter"},
	}
	newCustom := &catalog.CustomFields{
		Type:   typeRef,
		Fields: map[string]any{"photographer": "sam", "license": "cc"},
	}

	actions, diags := buildCustomUpdateActions("a", oldCustom, newCustom, assetCustomFactory{variantID: 1, assetKey: "front"})
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %#v", diags)
	}
	if len(actions) != 3 {
		t.Fatalf("expected 3 field updates, got %#v", actions)
	}

	// changed and added fields in name order, then unsets
	first := actions[0].(action.SetAssetCustomField)
	if first.Name != "license" || first.Value != "cc" {
		t.Fatalf("unexpected first action: %#v", first)
	}
	second := actions[1].(action.SetAssetCustomField)
	if second.Name != "photographer" || second.Value != "sam" {
		t.Fatalf("unexpected second action: %#v", second)
	}
	third := actions[2].(action.SetAssetCustomField)
	if third.Name != "season" || third.Value != nil {
		t.Fatalf("expected season unset, got %#v", third)
	}
}

func TestBuildCustomUpdateActions_TypeSwitch(t *testing.T) {
	oldCustom := &catalog.CustomFields{
		Type:   catalog.ResourceRef{TypeID: "type", Key: "old-type"},
		Fields: map[string]any{"a": 1},
	}
	newCustom := &catalog.CustomFields{
		Type:   catalog.ResourceRef{TypeID: "type", Key: "new-type"},
		Fields: map[string]any{"b": 2},
	}

	actions, diags := buildCustomUpdateActions("p", oldCustom, newCustom, priceCustomFactory{priceID: "p1"})
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %#v", diags)
	}
	if len(actions) != 1 {
		t.Fatalf("expected a single type switch, got %#v", actions)
	}
	set := actions[0].(action.SetPriceCustomType)
	if set.TypeID != "new-type" || set.Fields["b"] != 2 {
		t.Fatalf("unexpected action: %#v", set)
	}
}
