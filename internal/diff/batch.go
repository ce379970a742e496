package diff

import (
	"github.com/skuforge/catalogsync/internal/action"
	"github.com/skuforge/catalogsync/internal/catalog"
)

// ItemPair is one unit of batch work: the authoritative item, the desired
// draft, and the attribute metadata the attribute differ needs.
type ItemPair struct {
	Old      catalog.Item
	Draft    catalog.ItemDraft
	Metadata map[string]catalog.AttributeMetadata
}

// ItemResult holds the outcome for a single pair.
type ItemResult struct {
	ItemKey     string          `json:"item_key"`
	Actions     []action.Action `json:"actions"`
	Diagnostics []Diagnostic    `json:"diagnostics,omitempty"`
}

// Summary aggregates counts over one batch.
type Summary struct {
	Items           int `json:"items"`
	ItemsWithErrors int `json:"items_with_errors"`
	Actions         int `json:"actions"`
	Warnings        int `json:"warnings"`
	Errors          int `json:"errors"`
}

// BatchOutput is the full result of a batch run.
type BatchOutput struct {
	Results []ItemResult `json:"results"`
	Summary Summary      `json:"summary"`
}

// BuildBatch diffs each pair independently. A failure inside one item never
// touches its siblings; its diagnostics land in that item's result and the
// batch keeps going.
func (e *Engine) BuildBatch(pairs []ItemPair) BatchOutput {
	out := BatchOutput{Results: make([]ItemResult, 0, len(pairs))}
	out.Summary.Items = len(pairs)

	for _, pair := range pairs {
		key := pair.Draft.Key
		if key == "" {
			key = pair.Old.Key
		}

		actions, diags := e.BuildActions(pair.Old, pair.Draft, pair.Metadata)

		hadError := false
		for _, d := range diags {
			switch d.Level {
			case LevelError:
				out.Summary.Errors++
				hadError = true
			case LevelWarning:
				out.Summary.Warnings++
			}
		}
		if hadError {
			out.Summary.ItemsWithErrors++
		}
		out.Summary.Actions += len(actions)

		out.Results = append(out.Results, ItemResult{
			ItemKey:     key,
			Actions:     actions,
			Diagnostics: diags,
		})
	}

	return out
}
