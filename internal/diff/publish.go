package diff

import (
	"github.com/skuforge/catalogsync/internal/action"
	"github.com/skuforge/catalogsync/internal/catalog"
)

// buildPublishAction decides whether the batch ends in publish, unpublish,
// or neither. Rules, in order:
//
//   - draft wants published, item is published, and either this batch
//     carries changes or staged changes already exist: publish, so the
//     staged state goes live
//   - draft wants published, item is not: publish
//   - draft wants unpublished, item is published: unpublish
//   - otherwise nothing
func buildPublishAction(old catalog.Item, draft catalog.ItemDraft, hasOtherActions bool) (action.Action, bool) {
	if draft.Publish {
		if old.Published && (hasOtherActions || old.HasStagedChanges) {
			return action.Publish{}, true
		}
		if !old.Published {
			return action.Publish{}, true
		}
		return nil, false
	}
	if old.Published {
		return action.Unpublish{}, true
	}
	return nil, false
}
