package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"portal-ads/internal/core/mapper"
)

// jsonb columns of the news table. Everything else is sent as is.
var jsonColumns = map[string]bool{
	"seo":                      true,
	"blocks":                   true,
	"social_distribution":      true,
	"banner_effects":           true,
	"banner_youtube_metadata":  true,
	"banner_playback_segments": true,
}

// ContentRepository implements port.ContentRepository on the news table.
// Rows are read back as JSON so the mapper sees the same shape whatever the
// column types are.
type ContentRepository struct {
	pool *pgxpool.Pool
}

func NewContentRepository(pool *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{pool: pool}
}

func (r *ContentRepository) GetRow(ctx context.Context, id string) (mapper.Row, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx, `SELECT to_jsonb(n) FROM news n WHERE n.id = $1`, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var row mapper.Row
	if err = json.Unmarshal(raw, &row); err != nil {
		return nil, fmt.Errorf("decode news row: %w", err)
	}
	return row, nil
}

// UpsertRow inserts row or updates the columns it carries.
func (r *ContentRepository) UpsertRow(ctx context.Context, row mapper.Row) error {
	query, args, err := upsertQuery("news", row)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, query, args...)
	return err
}

// upsertQuery builds an INSERT ... ON CONFLICT (id) statement over the
// columns present in row, in sorted order.
func upsertQuery(table string, row mapper.Row) (string, []any, error) {
	if _, ok := row["id"]; !ok {
		return "", nil, errors.New("upsert without id")
	}

	cols := make([]string, 0, len(row))
	for k := range row {
		cols = append(cols, k)
	}
	slices.Sort(cols)

	var (
		quoted       = make([]string, len(cols))
		placeholders = make([]string, len(cols))
		updates      = make([]string, 0, len(cols))
		args         = make([]any, len(cols))
	)
	for i, col := range cols {
		q := pq.QuoteIdentifier(col)
		quoted[i] = q
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		if col != "id" && col != "created_at" {
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", q, q))
		}

		v := row[col]
		if jsonColumns[col] {
			raw, err := json.Marshal(v)
			if err != nil {
				return "", nil, fmt.Errorf("encode %s: %w", col, err)
			}
			v = raw
		}
		args[i] = v
	}

	conflict := "DO NOTHING"
	if len(updates) > 0 {
		conflict = "DO UPDATE SET " + strings.Join(updates, ", ")
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (id) %s",
		pq.QuoteIdentifier(table), strings.Join(quoted, ", "), strings.Join(placeholders, ", "), conflict)
	return query, args, nil
}
