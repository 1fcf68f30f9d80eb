package port

import (
	"context"

	"portal-ads/internal/core/domain"
	"portal-ads/internal/core/popup"
)

// AdAnalytics receives view and click signals. Calls are fire-and-forget:
// they never block, never fail and accept unknown ids.
type AdAnalytics interface {
	RecordView(id string)
	RecordClick(id string)
}

// AdUseCase defines the ad rotation operations exposed to the HTTP layer.
type AdUseCase interface {
	// SlotAds returns the live campaigns of slot in rotation order and
	// records a view for each of them.
	SlotAds(ctx context.Context, slot domain.PlanTier) ([]domain.Campaign, error)

	// RegisterView records a view for the campaign.
	RegisterView(id string)

	// RegisterClick records a click and returns the campaign's external URL
	// for redirection. The URL is empty when the campaign has none or it is
	// unsafe. Unknown campaigns return ErrNotFound.
	RegisterClick(ctx context.Context, id string) (string, error)

	// SaveCampaign creates or updates a campaign. An id is assigned when
	// empty.
	SaveCampaign(ctx context.Context, c *domain.Campaign) error

	// GetStats returns view and click totals, for one advertiser when
	// AdvertiserID is set.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// PopupUseCase manages promotional popups.
type PopupUseCase interface {
	// Preview normalizes a popup set without storing it.
	Preview(in domain.PopupSetInput) popup.Result[domain.PopupSet]

	// SavePopupSet normalizes and stores the popup set of an advertiser.
	SavePopupSet(ctx context.Context, advertiserID string, in domain.PopupSetInput) (popup.Result[domain.PopupSet], error)

	// PopupsForPage returns the items to show a visitor on page, skipping
	// the ones the visitor has already seen under the configured frequency.
	PopupsForPage(ctx context.Context, page domain.TargetPage, visitor string) ([]domain.PopupItem, error)
}

// ContentUseCase reads and writes news articles.
type ContentUseCase interface {
	Get(ctx context.Context, id string) (*domain.ContentRecord, error)
	Save(ctx context.Context, rec *domain.ContentRecord) error
}

// StatsReq selects the campaigns to aggregate.
type StatsReq struct {
	AdvertiserID *string
}

// StatsResp contains aggregated counters. Live counts campaigns that are
// active and inside their window at request time.
type StatsResp struct {
	Advertisers int64 `json:"advertisers"`
	Live        int64 `json:"live"`
	Views       int64 `json:"views"`
	Clicks      int64 `json:"clicks"`
}
