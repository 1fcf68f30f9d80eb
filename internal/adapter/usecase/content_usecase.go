package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"portal-ads/internal/core/domain"
	"portal-ads/internal/core/mapper"
	"portal-ads/internal/core/port"
)

// ContentUseCase reads and writes news articles through the row mapper.
type ContentUseCase struct {
	repo port.ContentRepository
}

func NewContentUseCase(repo port.ContentRepository) *ContentUseCase {
	return &ContentUseCase{repo: repo}
}

func (u *ContentUseCase) Get(ctx context.Context, id string) (*domain.ContentRecord, error) {
	row, err := u.repo.GetRow(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get news %s: %w", id, err)
	}
	if row == nil {
		return nil, port.ErrNotFound
	}
	rec := mapper.ToDomain(row)
	return &rec, nil
}

// Save upserts rec. Unset optional fields are not written, so they keep
// their stored value on update.
func (u *ContentUseCase) Save(ctx context.Context, rec *domain.ContentRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	return u.repo.UpsertRow(ctx, mapper.ToRow(*rec).Strip())
}

var (
	_ port.AdUseCase      = (*AdUseCase)(nil)
	_ port.PopupUseCase   = (*PopupUseCase)(nil)
	_ port.ContentUseCase = (*ContentUseCase)(nil)
)
