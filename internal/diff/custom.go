package diff

import (
	"sort"

	"github.com/skuforge/catalogsync/internal/action"
	"github.com/skuforge/catalogsync/internal/catalog"
)

// customActionFactory builds the resource-specific commands the shared custom
// differ emits. Prices and assets each provide one.
type customActionFactory interface {
	setCustomType(typeID string, fields map[string]any) action.Action
	removeCustomType() action.Action
	setCustomField(name string, value any) action.Action
}

// buildCustomUpdateActions is the shared differ for the custom type/fields of
// one resource. When old and new custom type ids are both blank the resource
// is ambiguous (cannot tell whether to set or leave alone) and the diff for
// that resource fails with a single error diagnostic.
func buildCustomUpdateActions(path string, oldCustom, newCustom *catalog.CustomFields, factory customActionFactory) ([]action.Action, []Diagnostic) {
	switch {
	case oldCustom == nil && newCustom == nil:
		return nil, nil

	case oldCustom == nil:
		typeID := newCustom.Type.Identifier()
		if typeID == "" {
			return nil, []Diagnostic{errorDiag(path, CodeCustomTypeAmbiguous,
				"new custom type has a blank id", nil)}
		}
		return []action.Action{factory.setCustomType(typeID, newCustom.Fields)}, nil

	case newCustom == nil:
		return []action.Action{factory.removeCustomType()}, nil
	}

	oldTypeID := oldCustom.Type.Identifier()
	newTypeID := newCustom.Type.Identifier()

	if oldTypeID != newTypeID {
		return []action.Action{factory.setCustomType(newTypeID, newCustom.Fields)}, nil
	}
	if oldTypeID == "" {
		return nil, []Diagnostic{errorDiag(path, CodeCustomTypeAmbiguous,
			"custom type ids are blank on both sides", nil)}
	}

	return buildSetCustomFieldActions(oldCustom.Fields, newCustom.Fields, factory), nil
}

// buildSetCustomFieldActions emits one setCustomField per changed or added
// field, then one unset per removed field, each group in name order so the
// output is deterministic.
func buildSetCustomFieldActions(oldFields, newFields map[string]any, factory customActionFactory) []action.Action {
	var actions []action.Action

	for _, name := range sortedFieldNames(newFields) {
		if !valuesEqual(oldFields[name], newFields[name]) {
			actions = append(actions, factory.setCustomField(name, newFields[name]))
		}
	}
	for _, name := range sortedFieldNames(oldFields) {
		if _, still := newFields[name]; !still {
			actions = append(actions, factory.setCustomField(name, nil))
		}
	}
	return actions
}

func sortedFieldNames(fields map[string]any) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type priceCustomFactory struct {
	priceID string
}

func (f priceCustomFactory) setCustomType(typeID string, fields map[string]any) action.Action {
	return action.SetPriceCustomType{PriceID: f.priceID, TypeID: typeID, Fields: fields}
}

func (f priceCustomFactory) removeCustomType() action.Action {
	return action.SetPriceCustomType{PriceID: f.priceID}
}

func (f priceCustomFactory) setCustomField(name string, value any) action.Action {
	return action.SetPriceCustomField{PriceID: f.priceID, Name: name, Value: value}
}

type assetCustomFactory struct {
	variantID int64
	assetKey  string
}

func (f assetCustomFactory) setCustomType(typeID string, fields map[string]any) action.Action {
	return action.SetAssetCustomType{VariantID: f.variantID, AssetKey: f.assetKey, TypeID: typeID, Fields: fields}
}

func (f assetCustomFactory) removeCustomType() action.Action {
	return action.SetAssetCustomType{VariantID: f.variantID, AssetKey: f.assetKey}
}

func (f assetCustomFactory) setCustomField(name string, value any) action.Action {
	return action.SetAssetCustomField{VariantID: f.variantID, AssetKey: f.assetKey, Name: name, Value: value}
}
