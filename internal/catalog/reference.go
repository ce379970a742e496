package catalog

// ResourceRef points at another platform resource (tax category, state,
// category, channel, customer group, custom type). The old item always carries
// resolved ids; drafts may carry either a raw id or a resolved key.
type ResourceRef struct {
	TypeID string `json:"type_id,omitempty"`
	ID     string `json:"id,omitempty"`
	Key    string `json:"key,omitempty"`
}

// Identifier returns the key when present, otherwise the id. Two references
// to the same resource compare equal by identifier once resolution has run.
func (r ResourceRef) Identifier() string {
	if r.Key != "" {
		return r.Key
	}
	return r.ID
}

func (r ResourceRef) IsZero() bool {
	return r.ID == "" && r.Key == ""
}
