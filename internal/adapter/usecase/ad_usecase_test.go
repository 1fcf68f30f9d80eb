package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portal-ads/internal/core/domain"
	"portal-ads/internal/core/port"
	"portal-ads/internal/core/port/mocks"
	"portal-ads/internal/core/selector"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// recorder collects analytics signals in memory.
type recorder struct {
	mu     sync.Mutex
	views  []string
	clicks []string
}

func (r *recorder) RecordView(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views = append(r.views, id)
}

func (r *recorder) RecordClick(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clicks = append(r.clicks, id)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixedClock(t time.Time) AdOption {
	return WithClock(func() time.Time { return t })
}

func TestSlotAdsReturnsLiveCampaignsAndRecordsViews(t *testing.T) {
	repo := mocks.NewMockAdvertiserRepository(t)
	rec := &recorder{}
	now := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)

	roster := []domain.Campaign{
		{ID: "a", Plan: domain.PlanPremium, IsActive: true, StartDate: day(2025, 6, 1), EndDate: day(2025, 6, 15)},
		{ID: "b", Plan: domain.PlanPremium, IsActive: true},
		{ID: "c", Plan: domain.PlanPremium, IsActive: false},
		{ID: "d", Plan: domain.PlanPremium, IsActive: true, StartDate: day(2025, 6, 16)},
	}
	repo.EXPECT().ListByPlan(mock.Anything, domain.PlanPremium).Return(roster, nil)

	svc := NewAdUseCase(repo, rec, WithLogger(discard), fixedClock(now),
		WithSelectorOptions(selector.WithRand(rand.New(rand.NewPCG(1, 2)))))

	ads, err := svc.SlotAds(context.Background(), domain.PlanPremium)
	require.NoError(t, err)

	ids := make([]string, 0, len(ads))
	for _, c := range ads {
		ids = append(ids, c.ID)
	}
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
	assert.ElementsMatch(t, []string{"a", "b"}, rec.views)
}

func TestSlotAdsRejectsUnknownSlot(t *testing.T) {
	repo := mocks.NewMockAdvertiserRepository(t)

	svc := NewAdUseCase(repo, &recorder{}, WithLogger(discard))

	_, err := svc.SlotAds(context.Background(), domain.PlanTier("gold"))
	assert.ErrorIs(t, err, port.ErrInvalidPlan)
}

func TestSlotAdsPropagatesRepositoryError(t *testing.T) {
	repo := mocks.NewMockAdvertiserRepository(t)
	boom := errors.New("boom")
	repo.EXPECT().ListByPlan(mock.Anything, domain.PlanMaster).Return(nil, boom)

	svc := NewAdUseCase(repo, &recorder{}, WithLogger(discard))

	_, err := svc.SlotAds(context.Background(), domain.PlanMaster)
	assert.ErrorIs(t, err, boom)
}

func TestSlotAdsUsesConfiguredTimeZone(t *testing.T) {
	repo := mocks.NewMockAdvertiserRepository(t)
	loc := time.FixedZone("BRT", -3*60*60)
	// 01:00 UTC on the 16th is still the 15th in BRT.
	now := time.Date(2025, 6, 16, 1, 0, 0, 0, time.UTC)

	roster := []domain.Campaign{
		{ID: "a", Plan: domain.PlanStandard, IsActive: true, EndDate: time.Date(2025, 6, 15, 0, 0, 0, 0, loc)},
	}
	repo.EXPECT().ListByPlan(mock.Anything, domain.PlanStandard).Return(roster, nil)

	svc := NewAdUseCase(repo, &recorder{}, WithLogger(discard), fixedClock(now), WithLocation(loc))

	ads, err := svc.SlotAds(context.Background(), domain.PlanStandard)
	require.NoError(t, err)
	assert.Len(t, ads, 1)
}

func TestExpiredCampaignIsDeactivated(t *testing.T) {
	repo := mocks.NewMockAdvertiserRepository(t)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	roster := []domain.Campaign{
		{ID: "old", Plan: domain.PlanMaster, IsActive: true, EndDate: day(2025, 6, 14)},
	}
	repo.EXPECT().ListByPlan(mock.Anything, domain.PlanMaster).Return(roster, nil)

	done := make(chan struct{})
	repo.EXPECT().
		Deactivate(mock.Anything, "old").
		Run(func(ctx context.Context, id string) { close(done) }).
		Return(nil).
		Once()

	svc := NewAdUseCase(repo, &recorder{}, WithLogger(discard), fixedClock(now), WithAutoDeactivate(true))

	ads, err := svc.SlotAds(context.Background(), domain.PlanMaster)
	require.NoError(t, err)
	assert.Empty(t, ads)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expired campaign was not deactivated")
	}
}

func TestExpiredCampaignKeptWhenAutoDeactivateOff(t *testing.T) {
	repo := mocks.NewMockAdvertiserRepository(t)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	roster := []domain.Campaign{
		{ID: "old", Plan: domain.PlanMaster, IsActive: true, EndDate: day(2025, 6, 14)},
	}
	repo.EXPECT().ListByPlan(mock.Anything, domain.PlanMaster).Return(roster, nil)

	svc := NewAdUseCase(repo, &recorder{}, WithLogger(discard), fixedClock(now))

	ads, err := svc.SlotAds(context.Background(), domain.PlanMaster)
	require.NoError(t, err)
	assert.Empty(t, ads)
	repo.AssertNotCalled(t, "Deactivate", mock.Anything, mock.Anything)
}

func TestRegisterClick(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{name: "safe url", url: "https://loja.example/promo", expected: "https://loja.example/promo"},
		{name: "no url", url: "", expected: ""},
		{name: "unsafe url", url: "javascript:alert(1)", expected: ""},
		{name: "padded url", url: "  https://loja.example \n", expected: "https://loja.example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockAdvertiserRepository(t)
			rec := &recorder{}
			repo.EXPECT().
				GetCampaign(mock.Anything, "c1").
				Return(&domain.Campaign{ID: "c1", ExternalURL: tt.url}, nil)

			svc := NewAdUseCase(repo, rec, WithLogger(discard))

			got, err := svc.RegisterClick(context.Background(), "c1")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, []string{"c1"}, rec.clicks)
		})
	}
}

func TestRegisterClickUnknownCampaign(t *testing.T) {
	repo := mocks.NewMockAdvertiserRepository(t)
	rec := &recorder{}
	repo.EXPECT().GetCampaign(mock.Anything, "nope").Return(nil, nil)

	svc := NewAdUseCase(repo, rec, WithLogger(discard))

	_, err := svc.RegisterClick(context.Background(), "nope")
	assert.ErrorIs(t, err, port.ErrNotFound)
	assert.Empty(t, rec.clicks)
}

func TestRegisterView(t *testing.T) {
	rec := &recorder{}
	svc := NewAdUseCase(mocks.NewMockAdvertiserRepository(t), rec, WithLogger(discard))

	svc.RegisterView("x")
	svc.RegisterView("")

	assert.Equal(t, []string{"x"}, rec.views)
}

func TestSaveCampaign(t *testing.T) {
	repo := mocks.NewMockAdvertiserRepository(t)
	repo.EXPECT().
		SaveCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Return(nil)

	svc := NewAdUseCase(repo, &recorder{}, WithLogger(discard))

	c := &domain.Campaign{
		Name:        " Padaria\x00 Central ",
		Plan:        domain.PlanStandard,
		StartDate:   day(2025, 1, 1),
		EndDate:     day(2025, 1, 31),
		ExternalURL: " https://padaria.example ",
	}
	require.NoError(t, svc.SaveCampaign(context.Background(), c))

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Padaria Central", c.Name)
	assert.Equal(t, "https://padaria.example", c.ExternalURL)
}

func TestSaveCampaignValidation(t *testing.T) {
	svc := NewAdUseCase(mocks.NewMockAdvertiserRepository(t), &recorder{}, WithLogger(discard))

	err := svc.SaveCampaign(context.Background(), &domain.Campaign{Plan: "gold"})
	assert.ErrorIs(t, err, port.ErrInvalidPlan)

	err = svc.SaveCampaign(context.Background(), &domain.Campaign{
		Plan:      domain.PlanPremium,
		StartDate: day(2025, 2, 1),
		EndDate:   day(2025, 1, 1),
	})
	assert.ErrorIs(t, err, port.ErrInvalidWindow)
}

func TestGetStats(t *testing.T) {
	repo := mocks.NewMockAdvertiserRepository(t)
	id := "c1"
	want := &port.StatsResp{Advertisers: 1, Live: 1, Views: 10, Clicks: 2}
	repo.EXPECT().GetStats(mock.Anything, port.StatsReq{AdvertiserID: &id}).Return(want, nil)

	svc := NewAdUseCase(repo, &recorder{}, WithLogger(discard))

	got, err := svc.GetStats(context.Background(), port.StatsReq{AdvertiserID: &id})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
