package domain

import "time"

// PlanTier is the paid placement tier of an advertiser. It decides which
// rotation slot the campaign is eligible for.
type PlanTier string

const (
	PlanStandard PlanTier = "standard"
	PlanPremium  PlanTier = "premium"
	PlanMaster   PlanTier = "master"
)

// PlanTiers lists every known tier.
var PlanTiers = []PlanTier{PlanStandard, PlanPremium, PlanMaster}

// Valid reports whether p is one of the known tiers.
func (p PlanTier) Valid() bool {
	switch p {
	case PlanStandard, PlanPremium, PlanMaster:
		return true
	}
	return false
}

// Campaign represents an advertiser's paid placement.
// StartDate and EndDate are calendar dates; the window is inclusive on both
// ends and a zero value leaves that side of the window open. IsActive can
// disable a campaign inside its paid window.
type Campaign struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Plan        PlanTier  `json:"plan"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	IsActive    bool      `json:"isActive"`
	Views       int64     `json:"views"`
	Clicks      int64     `json:"clicks"`
	ExternalURL string    `json:"externalUrl,omitempty"`
	PopupSet    *PopupSet `json:"popupSet,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
