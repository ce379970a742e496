package diff

import (
	"fmt"
	"time"

	"github.com/skuforge/catalogsync/internal/action"
	"github.com/skuforge/catalogsync/internal/catalog"
)

// priceKey is the composite identity a price is matched by. The platform
// assigns price ids, so drafts can never match on id; two prices are "the
// same price" when this tuple matches.
type priceKey struct {
	currency      string
	country       string
	channel       string
	customerGroup string
	validFrom     string
	validUntil    string
}

func newPriceKey(value *catalog.Money, country string, channel, customerGroup *catalog.ResourceRef, from, until *time.Time) priceKey {
	k := priceKey{
		country:    country,
		validFrom:  timeKey(from),
		validUntil: timeKey(until),
	}
	if value != nil {
		k.currency = value.CurrencyCode
	}
	if channel != nil {
		k.channel = channel.Identifier()
	}
	if customerGroup != nil {
		k.customerGroup = customerGroup.Identifier()
	}
	return k
}

func timeKey(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// buildPriceActions diffs one variant's price list against the drafts.
// Unmatched old prices are removed (old order), unmatched drafts added (draft
// order), matched pairs produce at most one changePrice plus custom-field
// commands. Removals always precede adds and changes.
func buildPriceActions(itemKey string, oldVariant catalog.Variant, draft catalog.VariantDraft) ([]action.Action, []Diagnostic) {
	var diags []Diagnostic

	newKeys := make(map[priceKey]struct{}, len(draft.Prices))
	for i, p := range draft.Prices {
		if p.Value == nil {
			diags = append(diags, warningDiag(
				pricePath(itemKey, draft.Key, i), CodePriceValueMissing,
				fmt.Sprintf("price draft %d on variant %q has no value; skipped", i, draft.Key)))
			continue
		}
		newKeys[newPriceKey(p.Value, p.Country, p.Channel, p.CustomerGroup, p.ValidFrom, p.ValidUntil)] = struct{}{}
	}

	oldByKey := make(map[priceKey]catalog.Price, len(oldVariant.Prices))
	var removals []action.Action
	for _, p := range oldVariant.Prices {
		key := newPriceKey(p.Value, p.Country, p.Channel, p.CustomerGroup, p.ValidFrom, p.ValidUntil)
		oldByKey[key] = p
		if _, matched := newKeys[key]; !matched {
			removals = append(removals, action.RemovePrice{PriceID: p.ID})
		}
	}

	var rest []action.Action
	for i, p := range draft.Prices {
		if p.Value == nil {
			continue // warned above
		}
		key := newPriceKey(p.Value, p.Country, p.Channel, p.CustomerGroup, p.ValidFrom, p.ValidUntil)
		oldPrice, matched := oldByKey[key]
		if !matched {
			rest = append(rest, action.AddPrice{VariantID: oldVariant.ID, Price: p})
			continue
		}

		// Value takes priority over tiers: a single changePrice carries the
		// whole draft, so one command covers both differences.
		if !valuesEqual(oldPrice.Value, p.Value) || !valuesEqual(oldPrice.Tiers, p.Tiers) {
			rest = append(rest, action.ChangePrice{PriceID: oldPrice.ID, Price: p})
		}

		customActions, customDiags := buildCustomUpdateActions(
			pricePath(itemKey, draft.Key, i), oldPrice.Custom, p.Custom,
			priceCustomFactory{priceID: oldPrice.ID})
		rest = append(rest, customActions...)
		diags = append(diags, customDiags...)
	}

	return append(removals, rest...), diags
}

func pricePath(itemKey, variantKey string, index int) string {
	return fmt.Sprintf("%s.variant.%s.prices[%d]", itemKey, variantKey, index)
}
