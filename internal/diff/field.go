package diff

import (
	"reflect"

	"github.com/skuforge/catalogsync/internal/action"
	"github.com/skuforge/catalogsync/internal/catalog"
)

// buildUpdateAction is the generic field differ: when old and new differ it
// returns build() and true, otherwise nil and false. One-sided nil counts as
// different unless the other side is empty too.
func buildUpdateAction(oldVal, newVal any, build func() action.Action) (action.Action, bool) {
	if valuesEqual(oldVal, newVal) {
		return nil, false
	}
	return build(), true
}

// buildRefUpdateAction diffs reference fields by resolved identifier, so an
// id-carrying reference and its key-carrying counterpart compare equal only
// when they point at the same resource.
func buildRefUpdateAction(oldRef, newRef *catalog.ResourceRef, build func() action.Action) (action.Action, bool) {
	if refsEqual(oldRef, newRef) {
		return nil, false
	}
	return build(), true
}

func refsEqual(a, b *catalog.ResourceRef) bool {
	if a == nil || a.IsZero() {
		return b == nil || b.IsZero()
	}
	if b == nil || b.IsZero() {
		return false
	}
	return a.Identifier() == b.Identifier()
}

// valuesEqual compares JSON-shaped values structurally. Nil and empty
// collections compare equal: a decoded draft cannot distinguish them.
func valuesEqual(a, b any) bool {
	if isEmptyValue(a) && isEmptyValue(b) {
		return true
	}
	if la, ok := a.(catalog.LocalizedString); ok {
		if lb, ok := b.(catalog.LocalizedString); ok {
			return la.Equal(lb)
		}
	}
	return reflect.DeepEqual(a, b)
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	case reflect.Map, reflect.Slice:
		return rv.IsNil() || rv.Len() == 0
	default:
		return false
	}
}
