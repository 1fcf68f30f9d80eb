package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"portal-ads/internal/core/domain"
	"portal-ads/internal/core/popup"
	"portal-ads/internal/core/port"
	"portal-ads/internal/core/selector"
	"portal-ads/internal/metrics"
)

const seenKeyPrefix = "popup_seen"

// PopupUseCase normalizes popup sets on write and serves them per page on
// read. Stored sets are normalized again when read, so rows written by
// older versions are served with current defaults.
type PopupUseCase struct {
	repo       port.AdvertiserRepository
	seen       port.SeenStore
	normalizer *popup.Normalizer
	logger     *slog.Logger

	frequency  domain.PopupFrequency
	sessionTTL time.Duration
	loc        *time.Location
	now        func() time.Time
}

type PopupOption func(*PopupUseCase)

// WithSeenStore enables frequency gating. Without a store every matching
// item is returned on every request.
func WithSeenStore(s port.SeenStore, freq domain.PopupFrequency, sessionTTL time.Duration) PopupOption {
	return func(u *PopupUseCase) {
		u.seen = s
		u.frequency = freq
		u.sessionTTL = sessionTTL
	}
}

func WithPopupLogger(l *slog.Logger) PopupOption {
	return func(u *PopupUseCase) {
		if l != nil {
			u.logger = l
		}
	}
}

func WithPopupClock(now func() time.Time, loc *time.Location) PopupOption {
	return func(u *PopupUseCase) {
		if now != nil {
			u.now = now
		}
		if loc != nil {
			u.loc = loc
		}
	}
}

func NewPopupUseCase(repo port.AdvertiserRepository, normalizer *popup.Normalizer, opts ...PopupOption) *PopupUseCase {
	u := &PopupUseCase{
		repo:       repo,
		normalizer: normalizer,
		logger:     slog.Default(),
		frequency:  domain.FrequencyAlways,
		loc:        time.UTC,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *PopupUseCase) Preview(in domain.PopupSetInput) popup.Result[domain.PopupSet] {
	return u.normalizer.NormalizeSet(in)
}

// SavePopupSet normalizes in and replaces the advertiser's popup set with
// the result. The warnings are returned alongside.
func (u *PopupUseCase) SavePopupSet(ctx context.Context, advertiserID string, in domain.PopupSetInput) (popup.Result[domain.PopupSet], error) {
	res := u.normalizer.NormalizeSet(in)
	if err := u.repo.SavePopupSet(ctx, advertiserID, res.Normalized); err != nil {
		return res, err
	}
	if n := len(res.Warnings); n > 0 {
		metrics.PopupWarnings.Add(float64(n))
		u.logger.Info("popup set normalized with warnings",
			slog.String("advertiser_id", advertiserID),
			slog.Int("warnings", n))
	}
	return res, nil
}

// PopupsForPage collects the active items of live advertisers that target
// page, minus the ones visitor has already seen.
func (u *PopupUseCase) PopupsForPage(ctx context.Context, page domain.TargetPage, visitor string) ([]domain.PopupItem, error) {
	campaigns, err := u.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active campaigns: %w", err)
	}

	now := u.now().In(u.loc)
	items := []domain.PopupItem{}
	for _, c := range campaigns {
		if c.PopupSet == nil || !selector.Live(c, now) {
			continue
		}
		set := u.normalizer.NormalizeSet(c.PopupSet.Input()).Normalized
		for _, item := range set.Items {
			if !item.Active || !item.Targets(page) {
				continue
			}
			if !u.firstSight(ctx, visitor, c.ID, item.ID, now) {
				continue
			}
			items = append(items, item)
		}
	}
	return items, nil
}

// firstSight reports whether the item should be shown and marks it seen.
// Store failures never hide an item.
func (u *PopupUseCase) firstSight(ctx context.Context, visitor, campaignID, itemID string, now time.Time) bool {
	if u.seen == nil || visitor == "" || u.frequency == domain.FrequencyAlways {
		return true
	}

	key := fmt.Sprintf("%s:%s:%s:%s", seenKeyPrefix, visitor, campaignID, itemID)
	ttl := u.sessionTTL
	if u.frequency == domain.FrequencyOncePerDay {
		key += ":" + now.Format(time.DateOnly)
		ttl = 24 * time.Hour
	}

	_, found, err := u.seen.Get(ctx, key)
	if err != nil {
		u.logger.Warn("seen store read failed", slog.String("key", key), slog.Any("error", err))
		return true
	}
	if found {
		return false
	}
	if err = u.seen.Set(ctx, key, now.Format(time.RFC3339), ttl); err != nil {
		u.logger.Warn("seen store write failed", slog.String("key", key), slog.Any("error", err))
	}
	return true
}
