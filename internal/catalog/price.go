package catalog

import "time"

type Money struct {
	CurrencyCode string `json:"currency_code"`
	CentAmount   int64  `json:"cent_amount"`
}

// PriceTier is a quantity-based price break within one price entry.
type PriceTier struct {
	MinimumQuantity int   `json:"minimum_quantity"`
	Value           Money `json:"value"`
}

// Price is an existing price on a variant. Matching against drafts never uses
// the id; identity is the (currency, country, channel, customerGroup,
// validFrom, validUntil) tuple.
type Price struct {
	ID            string        `json:"id"`
	Value         *Money        `json:"value"`
	Tiers         []PriceTier   `json:"tiers,omitempty"`
	Country       string        `json:"country,omitempty"`
	Channel       *ResourceRef  `json:"channel,omitempty"`
	CustomerGroup *ResourceRef  `json:"customer_group,omitempty"`
	ValidFrom     *time.Time    `json:"valid_from,omitempty"`
	ValidUntil    *time.Time    `json:"valid_until,omitempty"`
	Custom        *CustomFields `json:"custom,omitempty"`
}

// PriceDraft is a desired price. It carries no id.
type PriceDraft struct {
	Value         *Money        `json:"value"`
	Tiers         []PriceTier   `json:"tiers,omitempty"`
	Country       string        `json:"country,omitempty"`
	Channel       *ResourceRef  `json:"channel,omitempty"`
	CustomerGroup *ResourceRef  `json:"customer_group,omitempty"`
	ValidFrom     *time.Time    `json:"valid_from,omitempty"`
	ValidUntil    *time.Time    `json:"valid_until,omitempty"`
	Custom        *CustomFields `json:"custom,omitempty"`
}

// Draft converts an existing price back into draft form, dropping the id.
func (p Price) Draft() PriceDraft {
	return PriceDraft{
		Value:         p.Value,
		Tiers:         p.Tiers,
		Country:       p.Country,
		Channel:       p.Channel,
		CustomerGroup: p.CustomerGroup,
		ValidFrom:     p.ValidFrom,
		ValidUntil:    p.ValidUntil,
		Custom:        p.Custom,
	}
}
