package diff

import "github.com/skuforge/catalogsync/internal/action"

// prioritize reorders the action bag into the sequence the platform needs:
//
//  1. removeVariant for every variant except the old master
//  2. setAttributeInAllVariants
//  3. addVariant
//  4. changeMasterVariant
//  5. removeVariant of the old master
//  6. everything else
//
// Removing a referenced master or adding a variant that shares a sameForAll
// value out of order makes the platform reject the whole batch. Within each
// bucket the original order is kept.
func prioritize(actions []action.Action, oldMasterID int64) []action.Action {
	if len(actions) < 2 {
		return actions
	}

	buckets := make([][]action.Action, 6)
	for _, a := range actions {
		buckets[bucketFor(a, oldMasterID)] = append(buckets[bucketFor(a, oldMasterID)], a)
	}

	out := make([]action.Action, 0, len(actions))
	for _, b := range buckets {
		out = append(out, b...)
	}
	return out
}

func bucketFor(a action.Action, oldMasterID int64) int {
	switch a.Kind() {
	case action.KindRemoveVariant:
		if a.(action.RemoveVariant).VariantID == oldMasterID {
			return 4
		}
		return 0
	case action.KindSetAttributeInAllVariants:
		return 1
	case action.KindAddVariant:
		return 2
	case action.KindChangeMasterVariant:
		return 3
	default:
		return 5
	}
}
