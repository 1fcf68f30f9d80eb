package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portal-ads/internal/core/domain"
	"portal-ads/internal/core/port"
)

const campaignColumns = `id, name, category, plan, start_date, end_date, is_active,
    views, clicks, external_url, popup_set, created_at, updated_at`

// AdvertiserRepository implements port.AdvertiserRepository and
// port.EventCounter using pgxpool for PostgreSQL.
type AdvertiserRepository struct {
	pool *pgxpool.Pool
	loc  *time.Location
}

// NewAdvertiserRepository returns a new repository instance. loc is the
// time zone used to decide which campaigns are live in GetStats.
func NewAdvertiserRepository(pool *pgxpool.Pool, loc *time.Location) *AdvertiserRepository {
	if loc == nil {
		loc = time.UTC
	}
	return &AdvertiserRepository{pool: pool, loc: loc}
}

func (r *AdvertiserRepository) ListByPlan(ctx context.Context, plan domain.PlanTier) ([]domain.Campaign, error) {
	return r.list(ctx, `SELECT `+campaignColumns+` FROM advertisers WHERE plan = $1 ORDER BY created_at`, string(plan))
}

func (r *AdvertiserRepository) ListActive(ctx context.Context) ([]domain.Campaign, error) {
	return r.list(ctx, `SELECT `+campaignColumns+` FROM advertisers WHERE is_active ORDER BY created_at`)
}

func (r *AdvertiserRepository) list(ctx context.Context, query string, args ...any) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// GetCampaign returns a campaign by id.
func (r *AdvertiserRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM advertisers WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SaveCampaign inserts the campaign or updates its editable fields.
func (r *AdvertiserRepository) SaveCampaign(ctx context.Context, c *domain.Campaign) error {
	return r.pool.QueryRow(ctx, `INSERT INTO advertisers
    (id, name, category, plan, start_date, end_date, is_active, external_url)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    category = EXCLUDED.category,
    plan = EXCLUDED.plan,
    start_date = EXCLUDED.start_date,
    end_date = EXCLUDED.end_date,
    is_active = EXCLUDED.is_active,
    external_url = EXCLUDED.external_url,
    updated_at = now()
RETURNING views, clicks, created_at, updated_at`,
		c.ID, c.Name, c.Category, string(c.Plan), date(c.StartDate), date(c.EndDate), c.IsActive, c.ExternalURL,
	).Scan(&c.Views, &c.Clicks, &c.CreatedAt, &c.UpdatedAt)
}

func (r *AdvertiserRepository) Deactivate(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE advertisers SET is_active = false, updated_at = now() WHERE id = $1 AND is_active`, id)
	return err
}

func (r *AdvertiserRepository) SavePopupSet(ctx context.Context, id string, set domain.PopupSet) error {
	raw, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("encode popup set: %w", err)
	}
	tag, err := r.pool.Exec(ctx, `UPDATE advertisers SET popup_set = $2, updated_at = now() WHERE id = $1`, id, raw)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// IncrementViews adds one view. Unknown ids are ignored.
func (r *AdvertiserRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE advertisers SET views = views + 1 WHERE id = $1`, id)
	return err
}

// IncrementClicks adds one click. Unknown ids are ignored.
func (r *AdvertiserRepository) IncrementClicks(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE advertisers SET clicks = clicks + 1 WHERE id = $1`, id)
	return err
}

// GetStats returns aggregated counters for all advertisers or one of them.
func (r *AdvertiserRepository) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []any{time.Now().In(r.loc).Format(time.DateOnly)}
	whereAdvertiser := ""
	if req.AdvertiserID != nil {
		whereAdvertiser = "WHERE id = $2"
		args = append(args, *req.AdvertiserID)
	}
	query := fmt.Sprintf(`SELECT
    count(*),
    count(*) FILTER (WHERE is_active
        AND (start_date IS NULL OR start_date <= $1::date)
        AND (end_date IS NULL OR end_date >= $1::date)),
    COALESCE(sum(views), 0),
    COALESCE(sum(clicks), 0)
FROM advertisers %s`, whereAdvertiser)

	var resp port.StatsResp
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&resp.Advertisers, &resp.Live, &resp.Views, &resp.Clicks); err != nil {
		return nil, err
	}
	return &resp, nil
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c          domain.Campaign
		plan       string
		start, end *time.Time
		popupRaw   []byte
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Category,
		&plan,
		&start,
		&end,
		&c.IsActive,
		&c.Views,
		&c.Clicks,
		&c.ExternalURL,
		&popupRaw,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}
	c.Plan = domain.PlanTier(plan)
	if start != nil {
		c.StartDate = *start
	}
	if end != nil {
		c.EndDate = *end
	}
	// a malformed popup set is served as no popups
	if len(popupRaw) > 0 {
		var set domain.PopupSet
		if json.Unmarshal(popupRaw, &set) == nil {
			c.PopupSet = &set
		}
	}
	return c, nil
}

// date maps an open bound to NULL.
func date(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.DateOnly)
}
