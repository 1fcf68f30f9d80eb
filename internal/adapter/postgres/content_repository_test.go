package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-ads/internal/core/domain"
	"portal-ads/internal/core/mapper"
)

func TestUpsertQuery(t *testing.T) {
	row := mapper.Row{
		"title": "Obra na avenida",
		"id":    "n1",
		"seo":   domain.SEO{Slug: "obra"},
		"tags":  []string{"cidade"},
	}

	query, args, err := upsertQuery("news", row)
	require.NoError(t, err)

	assert.Equal(t,
		`INSERT INTO "news" ("id", "seo", "tags", "title") VALUES ($1, $2, $3, $4) `+
			`ON CONFLICT (id) DO UPDATE SET "seo" = EXCLUDED."seo", "tags" = EXCLUDED."tags", "title" = EXCLUDED."title"`,
		query)
	require.Len(t, args, 4)
	assert.Equal(t, "n1", args[0])
	assert.JSONEq(t, `{"slug":"obra"}`, string(args[1].([]byte)))
	assert.Equal(t, []string{"cidade"}, args[2])
	assert.Equal(t, "Obra na avenida", args[3])
}

func TestUpsertQueryIDOnly(t *testing.T) {
	query, _, err := upsertQuery("news", mapper.Row{"id": "n1"})
	require.NoError(t, err)
	assert.Contains(t, query, "ON CONFLICT (id) DO NOTHING")
}

func TestUpsertQueryQuotesColumns(t *testing.T) {
	query, _, err := upsertQuery("news", mapper.Row{"id": "n1", `x"; DROP TABLE news; --`: 1})
	require.NoError(t, err)
	assert.Contains(t, query, `"x""; DROP TABLE news; --"`)
}

func TestUpsertQueryRequiresID(t *testing.T) {
	_, _, err := upsertQuery("news", mapper.Row{"title": "x"})
	assert.Error(t, err)
}
