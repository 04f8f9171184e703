package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status toggles whether a campaign is serving.
type Status string

const (
	StatusOn  Status = "on"
	StatusOff Status = "off"
)

// Campaign represents an advertising campaign funded from the wallet.
// CampaignFund always equals the amount currently reserved against the
// wallet on the campaign's behalf.
type Campaign struct {
	ID           int64
	Name         string
	Status       Status
	Town         string
	Radius       int    // km
	Keywords     []Keyword
	BidAmount    decimal.Decimal
	MinAmount    decimal.Decimal
	CampaignFund decimal.Decimal
	ProductID    int64
	ProductName  string // resolved from the catalog, never persisted
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CampaignDraft is the input for creating a campaign.
type CampaignDraft struct {
	Name         string
	Status       Status
	Town         string
	Radius       int
	Keywords     []Keyword
	BidAmount    decimal.Decimal
	MinAmount    decimal.Decimal
	CampaignFund decimal.Decimal
	ProductID    int64
}

// CampaignPatch describes an edit. Nil fields are left untouched.
type CampaignPatch struct {
	Name         *string
	Status       *Status
	Town         *string
	Radius       *int
	Keywords     []Keyword // nil means unchanged
	BidAmount    *decimal.Decimal
	MinAmount    *decimal.Decimal
	CampaignFund *decimal.Decimal
	ProductID    *int64
}

// ChangesFund reports whether the patch carries a fund different from current.
func (p CampaignPatch) ChangesFund(current decimal.Decimal) bool {
	return p.CampaignFund != nil && !p.CampaignFund.Equal(current)
}

// WithoutFund returns a copy of the patch with the fund field cleared.
func (p CampaignPatch) WithoutFund() CampaignPatch {
	p.CampaignFund = nil
	return p
}

// Campaign builds an unsaved campaign from the draft.
func (d CampaignDraft) Campaign() Campaign {
	status := d.Status
	if status == "" {
		status = StatusOff
	}
	return Campaign{
		Name:         d.Name,
		Status:       status,
		Town:         d.Town,
		Radius:       d.Radius,
		Keywords:     NormalizeKeywords(d.Keywords),
		BidAmount:    d.BidAmount,
		MinAmount:    d.MinAmount,
		CampaignFund: d.CampaignFund,
		ProductID:    d.ProductID,
	}
}

// Apply merges the patch into a copy of c and returns it.
func (c Campaign) Apply(p CampaignPatch) Campaign {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Town != nil {
		c.Town = *p.Town
	}
	if p.Radius != nil {
		c.Radius = *p.Radius
	}
	if p.Keywords != nil {
		c.Keywords = NormalizeKeywords(p.Keywords)
	}
	if p.BidAmount != nil {
		c.BidAmount = *p.BidAmount
	}
	if p.MinAmount != nil {
		c.MinAmount = *p.MinAmount
	}
	if p.CampaignFund != nil {
		c.CampaignFund = *p.CampaignFund
	}
	if p.ProductID != nil {
		c.ProductID = *p.ProductID
	}
	return c
}

// NormalizeKeywords drops repeated keyword ids, keeping the first occurrence.
func NormalizeKeywords(in []Keyword) []Keyword {
	out := make([]Keyword, 0, len(in))
	seen := make(map[int64]struct{}, len(in))
	for _, k := range in {
		if _, ok := seen[k.ID]; ok {
			continue
		}
		seen[k.ID] = struct{}{}
		out = append(out, k)
	}
	return out
}
