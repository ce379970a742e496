package catalog

import "testing"

func validDraft(key string) ItemDraft {
	return ItemDraft{
		Key:  key,
		Name: LocalizedString{"en": "Shirt"},
		MasterVariant: VariantDraft{
			Key: "master",
			SKU: "SKU-" + key,
		},
	}
}

func TestValidateDraft_Valid(t *testing.T) {
	res := ValidateDraft(validDraft("shirt"))
	if !res.IsValid() {
		t.Fatalf("expected valid, got %#v", res.Issues)
	}
}

func TestValidateDraft_BlankKeys(t *testing.T) {
	d := validDraft("shirt")
	d.Key = "  "
	d.MasterVariant.Key = ""

	res := ValidateDraft(d)
	if len(res.Issues) != 2 {
		t.Fatalf("expected 2 issues, got %#v", res.Issues)
	}
	if res.Issues[0].Path != "key" || res.Issues[0].Code != "required" {
		t.Fatalf("unexpected first issue: %#v", res.Issues[0])
	}
	if res.Issues[1].Path != "master_variant.key" {
		t.Fatalf("unexpected second issue: %#v", res.Issues[1])
	}
}

func TestValidateDraft_DuplicateVariantKey(t *testing.T) {
	d := validDraft("shirt")
	d.Variants = []VariantDraft{
		{Key: "blue", SKU: "SKU-1"},
		{Key: "blue", SKU: "SKU-2"},
	}

	res := ValidateDraft(d)
	if len(res.Issues) != 1 {
		t.Fatalf("expected 1 issue, got %#v", res.Issues)
	}
	if res.Issues[0].Code != "duplicate_key" {
		t.Fatalf("expected duplicate_key, got %s", res.Issues[0].Code)
	}
}

func TestValidateDraft_DuplicateAssetKey(t *testing.T) {
	d := validDraft("shirt")
	d.MasterVariant.Assets = []AssetDraft{
		{Key: "front"},
		{Key: "front"},
	}

	res := ValidateDraft(d)
	if len(res.Issues) != 1 {
		t.Fatalf("expected 1 issue, got %#v", res.Issues)
	}
	if res.Issues[0].Path != "master_variant.assets[1].key" {
		t.Fatalf("unexpected path: %s", res.Issues[0].Path)
	}
}

func TestValidateDraft_InvalidLocale(t *testing.T) {
	d := validDraft("shirt")
	d.Name = LocalizedString{"not a locale": "Shirt"}

	res := ValidateDraft(d)
	if len(res.Issues) != 1 {
		t.Fatalf("expected 1 issue, got %#v", res.Issues)
	}
	if res.Issues[0].Code != "invalid_locale" {
		t.Fatalf("expected invalid_locale, got %s", res.Issues[0].Code)
	}
}
