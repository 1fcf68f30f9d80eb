package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"portal-ads/internal/core/domain"
	"portal-ads/internal/core/popup"
	"portal-ads/internal/core/port"
	"portal-ads/internal/core/selector"
	"portal-ads/internal/metrics"
)

const deactivateTimeout = 5 * time.Second

// AdUseCase implements ad rotation, event recording and campaign
// administration on top of an AdvertiserRepository.
type AdUseCase struct {
	repo      port.AdvertiserRepository
	analytics port.AdAnalytics
	selector  *selector.Selector
	logger    *slog.Logger

	loc            *time.Location
	now            func() time.Time
	autoDeactivate bool
	selectorOpts   []selector.Option

	// ids with a deactivation write in flight
	deactivating sync.Map
}

type AdOption func(*AdUseCase)

// WithLogger sets the logger used for exclusion and failure reports.
func WithLogger(l *slog.Logger) AdOption {
	return func(u *AdUseCase) {
		if l != nil {
			u.logger = l
		}
	}
}

// WithLocation sets the time zone in which campaign dates are compared.
func WithLocation(loc *time.Location) AdOption {
	return func(u *AdUseCase) {
		if loc != nil {
			u.loc = loc
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) AdOption {
	return func(u *AdUseCase) { u.now = now }
}

// WithAutoDeactivate makes expired campaigns found during selection get
// their activation flag cleared in the background.
func WithAutoDeactivate(on bool) AdOption {
	return func(u *AdUseCase) { u.autoDeactivate = on }
}

// WithSelectorOptions passes extra options to the underlying selector.
func WithSelectorOptions(opts ...selector.Option) AdOption {
	return func(u *AdUseCase) { u.selectorOpts = append(u.selectorOpts, opts...) }
}

// NewAdUseCase creates the ad use case. analytics receives the view and
// click signals and must not block.
func NewAdUseCase(repo port.AdvertiserRepository, analytics port.AdAnalytics, opts ...AdOption) *AdUseCase {
	u := &AdUseCase{
		repo:      repo,
		analytics: analytics,
		logger:    slog.Default(),
		loc:       time.UTC,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	sopts := append([]selector.Option{
		selector.WithLocation(u.loc),
		selector.WithObserver(selector.ObserverFunc(u.excluded)),
	}, u.selectorOpts...)
	u.selector = selector.New(sopts...)
	return u
}

// SlotAds loads the roster of slot, keeps the live campaigns in random
// order and records a view for each returned campaign.
func (u *AdUseCase) SlotAds(ctx context.Context, slot domain.PlanTier) ([]domain.Campaign, error) {
	if !slot.Valid() {
		return nil, port.ErrInvalidPlan
	}
	metrics.SlotRequests.WithLabelValues(string(slot)).Inc()

	roster, err := u.repo.ListByPlan(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("list %s campaigns: %w", slot, err)
	}
	ads := u.selector.Select(roster, slot, u.now())
	for _, c := range ads {
		u.analytics.RecordView(c.ID)
	}
	return ads, nil
}

func (u *AdUseCase) RegisterView(id string) {
	if id == "" {
		return
	}
	u.analytics.RecordView(id)
}

// RegisterClick records a click and returns the URL to redirect to. An
// unsafe external URL is reported as empty.
func (u *AdUseCase) RegisterClick(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", port.ErrNotFound
	}
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get campaign: %w", err)
	}
	if c == nil {
		return "", port.ErrNotFound
	}
	u.analytics.RecordClick(id)

	target := popup.SanitizeURL(c.ExternalURL)
	if !popup.IsSafeURL(target) {
		if target != "" {
			u.logger.Warn("unsafe campaign url", slog.String("campaign_id", id))
		}
		return "", nil
	}
	return target, nil
}

// SaveCampaign validates and stores the editable fields of a campaign.
func (u *AdUseCase) SaveCampaign(ctx context.Context, c *domain.Campaign) error {
	if !c.Plan.Valid() {
		return port.ErrInvalidPlan
	}
	if !c.StartDate.IsZero() && !c.EndDate.IsZero() && c.EndDate.Before(c.StartDate) {
		return port.ErrInvalidWindow
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.Name = popup.SanitizeText(c.Name)
	c.ExternalURL = popup.SanitizeURL(c.ExternalURL)
	return u.repo.SaveCampaign(ctx, c)
}

func (u *AdUseCase) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	return u.repo.GetStats(ctx, req)
}

// excluded receives every campaign dropped by the selector. Expiry is the
// interesting case: it is logged, and optionally persisted.
func (u *AdUseCase) excluded(e domain.Exclusion) {
	metrics.Exclusions.WithLabelValues(string(e.Reason)).Inc()

	if e.Reason != domain.ReasonExpired {
		u.logger.Debug("campaign excluded",
			slog.String("campaign_id", e.CampaignID),
			slog.String("reason", string(e.Reason)))
		return
	}
	u.logger.Warn("campaign expired",
		slog.String("campaign_id", e.CampaignID),
		slog.String("name", e.Name),
		slog.Time("end_date", e.EndDate))

	if !u.autoDeactivate {
		return
	}
	if _, busy := u.deactivating.LoadOrStore(e.CampaignID, struct{}{}); busy {
		return
	}
	go func() {
		defer u.deactivating.Delete(e.CampaignID)
		ctx, cancel := context.WithTimeout(context.Background(), deactivateTimeout)
		defer cancel()
		if err := u.repo.Deactivate(ctx, e.CampaignID); err != nil {
			u.logger.Error("deactivate expired campaign",
				slog.String("campaign_id", e.CampaignID),
				slog.Any("error", err))
			return
		}
		u.logger.Info("expired campaign deactivated", slog.String("campaign_id", e.CampaignID))
	}()
}
