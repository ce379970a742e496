package diff

// Group names one independently toggle-able family of update commands.
type Group string

const (
	GroupName            Group = "name"
	GroupDescription     Group = "description"
	GroupSlug            Group = "slug"
	GroupSearchKeywords  Group = "search_keywords"
	GroupMetaTitle       Group = "meta_title"
	GroupMetaDescription Group = "meta_description"
	GroupMetaKeywords    Group = "meta_keywords"
	GroupTaxCategory     Group = "tax_category"
	GroupState           Group = "state"
	GroupCategories      Group = "categories"
	GroupAttributes      Group = "attributes"
	GroupImages          Group = "images"
	GroupPrices          Group = "prices"
	GroupAssets          Group = "assets"
	GroupSku             Group = "sku"
)

type filterMode int

const (
	filterAllow filterMode = iota
	filterDeny
)

// GroupFilter gates which action groups the engine diffs. A nil filter
// allows everything.
type GroupFilter struct {
	mode   filterMode
	groups map[Group]struct{}
}

// AllowGroups builds a filter that diffs only the listed groups.
func AllowGroups(groups ...Group) *GroupFilter {
	return &GroupFilter{mode: filterAllow, groups: groupSet(groups)}
}

// DenyGroups builds a filter that diffs everything except the listed groups.
func DenyGroups(groups ...Group) *GroupFilter {
	return &GroupFilter{mode: filterDeny, groups: groupSet(groups)}
}

func (f *GroupFilter) Allows(g Group) bool {
	if f == nil {
		return true
	}
	_, listed := f.groups[g]
	if f.mode == filterAllow {
		return listed
	}
	return !listed
}

func groupSet(groups []Group) map[Group]struct{} {
	set := make(map[Group]struct{}, len(groups))
	for _, g := range groups {
		set[g] = struct{}{}
	}
	return set
}
