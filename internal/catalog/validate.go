package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

type ValidationIssue struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationResult struct {
	Issues []ValidationIssue `json:"issues"`
}

func (r ValidationResult) IsValid() bool {
	return len(r.Issues) == 0
}

// ValidateDraft checks an item draft for problems that would make a diff
// against it unreliable: blank keys, duplicate variant keys, duplicate asset
// keys and malformed locale tags. The diff engine re-checks the fatal subset
// itself, so running this first is advisory, not required.
func ValidateDraft(d ItemDraft) ValidationResult {
	var res ValidationResult

	if strings.TrimSpace(d.Key) == "" {
		addIssue(&res, "key", "required", "item key is required")
	}
	if strings.TrimSpace(d.MasterVariant.Key) == "" {
		addIssue(&res, "master_variant.key", "required", "master variant key is required")
	}

	seen := map[string]struct{}{}
	if d.MasterVariant.Key != "" {
		seen[d.MasterVariant.Key] = struct{}{}
	}
	for i, v := range d.Variants {
		path := fmt.Sprintf("variants[%d].key", i)
		if strings.TrimSpace(v.Key) == "" {
			addIssue(&res, path, "required", "variant key is required")
			continue
		}
		if _, dup := seen[v.Key]; dup {
			addIssue(&res, path, "duplicate_key", fmt.Sprintf("variant key %q appears more than once", v.Key))
		}
		seen[v.Key] = struct{}{}
	}

	validateAssetKeys(&res, "master_variant", d.MasterVariant.Assets)
	for i, v := range d.Variants {
		validateAssetKeys(&res, fmt.Sprintf("variants[%d]", i), v.Assets)
	}

	validateLocales(&res, "name", d.Name)
	validateLocales(&res, "description", d.Description)
	validateLocales(&res, "slug", d.Slug)
	validateLocales(&res, "meta_title", d.MetaTitle)
	validateLocales(&res, "meta_description", d.MetaDescription)
	validateLocales(&res, "meta_keywords", d.MetaKeywords)
	for locale := range d.SearchKeywords {
		if !validLocale(locale) {
			addIssue(&res, "search_keywords."+locale, "invalid_locale", "locale must be a valid BCP-47 tag")
		}
	}

	return res
}

func validateAssetKeys(res *ValidationResult, path string, assets []AssetDraft) {
	seen := map[string]struct{}{}
	for i, a := range assets {
		assetPath := fmt.Sprintf("%s.assets[%d].key", path, i)
		if strings.TrimSpace(a.Key) == "" {
			addIssue(res, assetPath, "required", "asset key is required")
			continue
		}
		if _, dup := seen[a.Key]; dup {
			addIssue(res, assetPath, "duplicate_key", fmt.Sprintf("asset key %q appears more than once", a.Key))
		}
		seen[a.Key] = struct{}{}
	}
}

func validateLocales(res *ValidationResult, path string, l LocalizedString) {
	for locale := range l {
		if !validLocale(locale) {
			addIssue(res, path+"."+locale, "invalid_locale", "locale must be a valid BCP-47 tag")
		}
	}
}

func validLocale(tag string) bool {
	_, err := language.Parse(tag)
	return err == nil
}

func addIssue(res *ValidationResult, path string, code string, msg string) {
	res.Issues = append(res.Issues, ValidationIssue{
		Path:    path,
		Code:    code,
		Message: msg,
	})
}
