package domain

import (
	"time"
)

// ExclusionReason explains why a campaign was left out of a rotation.
type ExclusionReason string

const (
	ReasonInactive   ExclusionReason = "inactive"
	ReasonExpired    ExclusionReason = "expired"
	ReasonNotStarted ExclusionReason = "not_started"
	ReasonWrongSlot  ExclusionReason = "wrong_slot"
)

// Exclusion is emitted for every campaign dropped by the slot selector.
// Expired exclusions are the ones worth acting on: the campaign is still
// flagged active but its paid window is over.
type Exclusion struct {
	CampaignID string
	Name       string
	Reason     ExclusionReason
	EndDate    time.Time
	At         time.Time
}

// AdEventKind distinguishes view and click counters.
type AdEventKind string

const (
	EventView  AdEventKind = "view"
	EventClick AdEventKind = "click"
)

// AdEvent is a single view or click signal for a campaign.
type AdEvent struct {
	Kind       AdEventKind
	CampaignID string
	At         time.Time
}
