package db

import (
	"context"
	"fmt"
	"time"

	"portal-ads/internal/core/domain"
	"portal-ads/internal/core/mapper"
	"portal-ads/internal/core/popup"
)

// CampaignWriter is the part of the advertiser repository Seed needs.
type CampaignWriter interface {
	SaveCampaign(ctx context.Context, c *domain.Campaign) error
	SavePopupSet(ctx context.Context, id string, set domain.PopupSet) error
}

// RowWriter is the part of the content repository Seed needs.
type RowWriter interface {
	UpsertRow(ctx context.Context, row mapper.Row) error
}

// Seed writes demo advertisers, one popup set and a few articles. Ids are
// fixed so running it again updates the same rows.
func Seed(ctx context.Context, ads CampaignWriter, news RowWriter, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	campaigns := []domain.Campaign{
		{Name: "Padaria Central", Category: "alimentacao", Plan: domain.PlanStandard},
		{Name: "Auto Peças Norte", Category: "automotivo", Plan: domain.PlanStandard},
		{Name: "Clínica Vida", Category: "saude", Plan: domain.PlanPremium},
		{Name: "Imobiliária Horizonte", Category: "imoveis", Plan: domain.PlanPremium},
		{Name: "Supermercado Bom Preço", Category: "alimentacao", Plan: domain.PlanMaster},
		{Name: "Construtora Alfa", Category: "construcao", Plan: domain.PlanMaster},
	}
	for i := range campaigns {
		c := &campaigns[i]
		c.ID = fmt.Sprintf("00000000-0000-4000-8000-%012d", i+1)
		c.IsActive = true
		c.StartDate = today.AddDate(0, 0, -7)
		c.EndDate = today.AddDate(0, 1, 0)
		c.ExternalURL = fmt.Sprintf("https://example.com/anunciante/%d", i+1)
		if err := ads.SaveCampaign(ctx, c); err != nil {
			return fmt.Errorf("seed campaign %s: %w", c.Name, err)
		}
	}

	// one expired campaign that is still flagged active
	expired := &domain.Campaign{
		ID:        "00000000-0000-4000-8000-000000000099",
		Name:      "Promoção de Verão",
		Category:  "varejo",
		Plan:      domain.PlanPremium,
		IsActive:  true,
		StartDate: today.AddDate(0, -2, 0),
		EndDate:   today.AddDate(0, 0, -1),
	}
	if err := ads.SaveCampaign(ctx, expired); err != nil {
		return fmt.Errorf("seed campaign %s: %w", expired.Name, err)
	}

	title, body, cta, link := "Ofertas da semana", "Descontos em toda a loja até domingo.", "Ver ofertas", "https://example.com/ofertas"
	set := popup.NewNormalizer().NormalizeSet(domain.PopupSetInput{Items: []domain.PopupItemInput{{
		Title:       &title,
		Body:        &body,
		CTAText:     &cta,
		CTAURL:      &link,
		TargetPages: []string{string(domain.PageHome), string(domain.PageNewsDetail)},
		Media:       &domain.MediaInput{Images: []string{"https://example.com/img/ofertas.jpg"}},
	}}}).Normalized
	if err := ads.SavePopupSet(ctx, campaigns[4].ID, set); err != nil {
		return fmt.Errorf("seed popup set: %w", err)
	}

	articles := []domain.ContentRecord{
		{Title: "Prefeitura anuncia obras na avenida principal", Category: "cidade", Tags: []string{"obras", "transito"}},
		{Title: "Time local vence clássico regional", Category: "esportes", Tags: []string{"futebol"}, IsFeatured: ptr(true), FeaturedPriority: 1},
		{Title: "Frente fria derruba temperaturas", Category: "clima", IsBreaking: ptr(true)},
	}
	for i, rec := range articles {
		rec.ID = fmt.Sprintf("00000000-0000-4000-9000-%012d", i+1)
		rec.Status = domain.StatusPublished
		rec.Author = "Redação"
		rec.Lead = rec.Title
		rec.SEO = domain.SEO{MetaTitle: rec.Title}
		if err := news.UpsertRow(ctx, mapper.ToRow(rec).Strip()); err != nil {
			return fmt.Errorf("seed news %d: %w", i+1, err)
		}
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
