package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portal-ads/internal/adapter/memory"
	"portal-ads/internal/core/domain"
	"portal-ads/internal/core/popup"
	"portal-ads/internal/core/port/mocks"
)

func str(s string) *string { return &s }

func sequentialIDs() popup.Option {
	i := 0
	return popup.WithIDGenerator(func() string {
		i++
		return fmt.Sprintf("id-%d", i)
	})
}

func item(id string, active bool, pages ...domain.TargetPage) domain.PopupItem {
	it := popup.NewNormalizer().NormalizeItem(domain.PopupItemInput{ID: str(id)}).Normalized
	it.Active = active
	it.TargetPages = pages
	return it
}

func TestPreviewDoesNotStore(t *testing.T) {
	repo := mocks.NewMockAdvertiserRepository(t)
	svc := NewPopupUseCase(repo, popup.NewNormalizer(sequentialIDs()))

	res := svc.Preview(domain.PopupSetInput{Items: []domain.PopupItemInput{{Title: str("Oferta")}}})

	require.Len(t, res.Normalized.Items, 1)
	assert.Equal(t, "id-1", res.Normalized.Items[0].ID)
	assert.Equal(t, "Oferta", res.Normalized.Items[0].Title)
}

func TestSavePopupSetStoresNormalizedSet(t *testing.T) {
	repo := mocks.NewMockAdvertiserRepository(t)
	var stored domain.PopupSet
	repo.EXPECT().
		SavePopupSet(mock.Anything, "adv-1", mock.AnythingOfType("domain.PopupSet")).
		Run(func(ctx context.Context, id string, set domain.PopupSet) { stored = set }).
		Return(nil)

	svc := NewPopupUseCase(repo, popup.NewNormalizer(sequentialIDs()), WithPopupLogger(discard))

	res, err := svc.SavePopupSet(context.Background(), "adv-1", domain.PopupSetInput{
		Items: []domain.PopupItemInput{{CTAURL: str("javascript:alert(1)")}},
	})
	require.NoError(t, err)

	assert.Equal(t, res.Normalized, stored)
	assert.Empty(t, stored.Items[0].CTAURL)
	assert.NotEmpty(t, res.Warnings)
}

func TestSavePopupSetUnknownAdvertiser(t *testing.T) {
	repo := mocks.NewMockAdvertiserRepository(t)
	notFound := errors.New("not found")
	repo.EXPECT().SavePopupSet(mock.Anything, "x", mock.Anything).Return(notFound)

	svc := NewPopupUseCase(repo, popup.NewNormalizer())

	_, err := svc.SavePopupSet(context.Background(), "x", domain.PopupSetInput{})
	assert.ErrorIs(t, err, notFound)
}

func TestPopupsForPage(t *testing.T) {
	repo := mocks.NewMockAdvertiserRepository(t)
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	campaigns := []domain.Campaign{
		{
			ID: "live", Plan: domain.PlanPremium, IsActive: true,
			PopupSet: &domain.PopupSet{Items: []domain.PopupItem{
				item("home", true, domain.PageHome),
				item("all", true, domain.PageAll),
				item("off", false, domain.PageHome),
				item("jobs", true, domain.PageJobsBoard),
			}},
		},
		{
			ID: "expired", Plan: domain.PlanPremium, IsActive: true, EndDate: day(2025, 6, 1),
			PopupSet: &domain.PopupSet{Items: []domain.PopupItem{item("late", true, domain.PageHome)}},
		},
		{ID: "no-popups", Plan: domain.PlanStandard, IsActive: true},
	}
	repo.EXPECT().ListActive(mock.Anything).Return(campaigns, nil)

	svc := NewPopupUseCase(repo, popup.NewNormalizer(),
		WithPopupClock(func() time.Time { return now }, time.UTC))

	items, err := svc.PopupsForPage(context.Background(), domain.PageHome, "")
	require.NoError(t, err)

	ids := []string{}
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"home", "all"}, ids)
}

func TestPopupsForPageRenormalizesStoredItems(t *testing.T) {
	repo := mocks.NewMockAdvertiserRepository(t)
	stale := item("s", true, domain.PageHome)
	stale.FilterID = "neon"
	stale.CTAURL = "data:text/html,x"
	repo.EXPECT().ListActive(mock.Anything).Return([]domain.Campaign{
		{ID: "c", Plan: domain.PlanMaster, IsActive: true, PopupSet: &domain.PopupSet{Items: []domain.PopupItem{stale}}},
	}, nil)

	svc := NewPopupUseCase(repo, popup.NewNormalizer())

	items, err := svc.PopupsForPage(context.Background(), domain.PageHome, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, domain.FilterNone, items[0].FilterID)
	assert.Empty(t, items[0].CTAURL)
}

func TestPopupsForPageFrequency(t *testing.T) {
	campaigns := []domain.Campaign{
		{ID: "c", Plan: domain.PlanMaster, IsActive: true, PopupSet: &domain.PopupSet{
			Items: []domain.PopupItem{item("p1", true, domain.PageHome)},
		}},
	}

	tests := []struct {
		name      string
		freq      domain.PopupFrequency
		visitor   string
		nextDay   bool
		wantCalls []int
	}{
		{name: "once per session", freq: domain.FrequencyOncePerSession, visitor: "v1", wantCalls: []int{1, 0}},
		{name: "once per day resets", freq: domain.FrequencyOncePerDay, visitor: "v1", nextDay: true, wantCalls: []int{1, 0, 1}},
		{name: "always", freq: domain.FrequencyAlways, visitor: "v1", wantCalls: []int{1, 1}},
		{name: "anonymous visitor", freq: domain.FrequencyOncePerSession, visitor: "", wantCalls: []int{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockAdvertiserRepository(t)
			repo.EXPECT().ListActive(mock.Anything).Return(campaigns, nil)

			now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
			svc := NewPopupUseCase(repo, popup.NewNormalizer(),
				WithSeenStore(memory.NewSeenStore(), tt.freq, time.Hour),
				WithPopupClock(func() time.Time { return now }, time.UTC),
				WithPopupLogger(discard))

			for i, want := range tt.wantCalls {
				if tt.nextDay && i == len(tt.wantCalls)-1 {
					now = now.Add(24 * time.Hour)
				}
				items, err := svc.PopupsForPage(context.Background(), domain.PageHome, tt.visitor)
				require.NoError(t, err)
				assert.Len(t, items, want, "request %d", i+1)
			}
		})
	}
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("down")
}

func (failingStore) Set(context.Context, string, string, time.Duration) error {
	return errors.New("down")
}

func TestPopupsForPageShowsItemsWhenStoreFails(t *testing.T) {
	repo := mocks.NewMockAdvertiserRepository(t)
	repo.EXPECT().ListActive(mock.Anything).Return([]domain.Campaign{
		{ID: "c", Plan: domain.PlanMaster, IsActive: true, PopupSet: &domain.PopupSet{
			Items: []domain.PopupItem{item("p1", true, domain.PageAll)},
		}},
	}, nil)

	svc := NewPopupUseCase(repo, popup.NewNormalizer(),
		WithSeenStore(failingStore{}, domain.FrequencyOncePerSession, time.Hour),
		WithPopupLogger(discard))

	items, err := svc.PopupsForPage(context.Background(), domain.PageNewsDetail, "v1")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestPopupsForPageSeenPerCampaign(t *testing.T) {
	repo := mocks.NewMockAdvertiserRepository(t)
	repo.EXPECT().ListActive(mock.Anything).Return([]domain.Campaign{
		{ID: "a", Plan: domain.PlanMaster, IsActive: true, PopupSet: &domain.PopupSet{
			Items: []domain.PopupItem{item("slide1", true, domain.PageHome)},
		}},
		{ID: "b", Plan: domain.PlanMaster, IsActive: true, PopupSet: &domain.PopupSet{
			Items: []domain.PopupItem{item("slide1", true, domain.PageHome)},
		}},
	}, nil)

	svc := NewPopupUseCase(repo, popup.NewNormalizer(),
		WithSeenStore(memory.NewSeenStore(), domain.FrequencyOncePerSession, time.Hour),
		WithPopupLogger(discard))

	items, err := svc.PopupsForPage(context.Background(), domain.PageHome, "v1")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = svc.PopupsForPage(context.Background(), domain.PageHome, "v1")
	require.NoError(t, err)
	assert.Empty(t, items)
}
