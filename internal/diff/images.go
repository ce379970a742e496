package diff

import (
	"errors"
	"fmt"

	"github.com/skuforge/catalogsync/internal/action"
	"github.com/skuforge/catalogsync/internal/catalog"
)

// ErrImageInvariant marks an internal inconsistency in the image reorder
// step. Seeing it means a bookkeeping bug, not bad input.
var ErrImageInvariant = errors.New("image sequence bookkeeping broken")

// buildImageActions computes the removals, additions, and moves that turn
// the old image sequence into the new one. Removals come first, then
// additions, then position moves over the resulting working list.
func buildImageActions(variantID int64, old, new []catalog.Image) ([]action.Action, error) {
	if imagesEqual(old, new) {
		return nil, nil
	}

	newSet := make(map[catalog.Image]struct{}, len(new))
	for _, img := range new {
		newSet[img] = struct{}{}
	}
	oldSet := make(map[catalog.Image]struct{}, len(old))
	for _, img := range old {
		oldSet[img] = struct{}{}
	}

	var actions []action.Action

	// Working list: survivors of the old sequence in old order, then the
	// additions in new order. Moves are computed against this list because
	// it is the state the platform holds after removals and adds apply.
	working := make([]catalog.Image, 0, len(new))
	for _, img := range old {
		if _, keep := newSet[img]; keep {
			working = append(working, img)
		} else {
			actions = append(actions, action.RemoveImage{VariantID: variantID, ImageURL: img.URL})
		}
	}
	for _, img := range new {
		if _, had := oldSet[img]; !had {
			actions = append(actions, action.AddExternalImage{VariantID: variantID, Image: img})
			working = append(working, img)
		}
	}

	if len(working) != len(new) {
		return nil, fmt.Errorf("%w: %d images after add/remove, want %d", ErrImageInvariant, len(working), len(new))
	}

	target := make(map[catalog.Image]int, len(new))
	for i, img := range new {
		target[img] = i
	}
	for current, img := range working {
		want, ok := target[img]
		if !ok {
			return nil, fmt.Errorf("%w: image %q has no target position", ErrImageInvariant, img.URL)
		}
		if current != want {
			actions = append(actions, action.MoveImageToPosition{VariantID: variantID, ImageURL: img.URL, Position: want})
		}
	}

	return actions, nil
}

func imagesEqual(a, b []catalog.Image) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
