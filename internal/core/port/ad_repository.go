package port

import (
	"context"
	"errors"
	"time"

	"portal-ads/internal/core/domain"
	"portal-ads/internal/core/mapper"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidPlan   = errors.New("invalid plan tier")
	ErrInvalidWindow = errors.New("campaign ends before it starts")
)

// AdvertiserRepository defines the persistence of advertiser campaigns and
// their popup sets. It is an outbound port in hexagonal architecture.
type AdvertiserRepository interface {
	// ListByPlan returns every campaign of the given plan regardless of
	// activation or dates. Eligibility is decided by the selector.
	ListByPlan(ctx context.Context, plan domain.PlanTier) ([]domain.Campaign, error)
	// ListActive returns campaigns whose activation flag is set.
	ListActive(ctx context.Context) ([]domain.Campaign, error)
	// GetCampaign returns a campaign by id, or nil when it does not exist.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// SaveCampaign inserts or updates the editable fields of a campaign.
	// Counters and the popup set are left untouched.
	SaveCampaign(ctx context.Context, c *domain.Campaign) error
	// Deactivate clears the activation flag.
	Deactivate(ctx context.Context, id string) error
	// SavePopupSet replaces the popup set of an advertiser. It returns
	// ErrNotFound when the advertiser does not exist.
	SavePopupSet(ctx context.Context, id string, set domain.PopupSet) error
	// GetStats returns aggregated counters.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// EventCounter persists view and click counters. Counters only grow.
type EventCounter interface {
	IncrementViews(ctx context.Context, id string) error
	IncrementClicks(ctx context.Context, id string) error
}

// ContentRepository stores news articles in their row shape. Rows passed to
// UpsertRow must already be stripped of unset columns.
type ContentRepository interface {
	// GetRow returns the persisted row, or nil when it does not exist.
	GetRow(ctx context.Context, id string) (mapper.Row, error)
	UpsertRow(ctx context.Context, row mapper.Row) error
}

// SeenStore is a small key-value capability used to remember which popups a
// visitor has already seen.
type SeenStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
