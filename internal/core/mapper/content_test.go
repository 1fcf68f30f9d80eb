package mapper

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-ads/internal/core/domain"
)

func ptr[T any](v T) *T { return &v }

func fullRecord() domain.ContentRecord {
	created := time.Date(2025, 2, 1, 12, 30, 0, 0, time.UTC)
	return domain.ContentRecord{
		ID:               "6f1c2c1e-8c0a-4a39-9b53-0f7f3c6c1a11",
		Title:            "Chuva forte atinge a região",
		Lead:             "Defesa Civil emite alerta",
		Content:          "<p>texto</p>",
		Category:         "cidade",
		Status:           domain.StatusPublished,
		Author:           "Redação",
		AuthorID:         "a-1",
		Source:           "rss_automation",
		ImageURL:         "https://cdn.example/capa.jpg",
		ImageCredits:     ptr("Foto: Ana"),
		MediaType:        "video",
		Views:            42,
		Tags:             []string{"clima", "alerta"},
		Region:           "norte",
		City:             "Maringá",
		IsBreaking:       ptr(true),
		IsFeatured:       ptr(true),
		FeaturedPriority: 2,
		SEO:              domain.SEO{Slug: "chuva-forte", MetaTitle: "Chuva"},
		Blocks: []domain.ContentBlock{
			{ID: "b1", Type: "paragraph", Content: json.RawMessage(`"olá"`), Settings: json.RawMessage(`{"align":"left"}`)},
		},
		SocialDistribution: []domain.SocialDistribution{
			{Platform: "facebook", Content: "post", Status: "pending"},
		},
		BannerImages:           []string{"https://cdn.example/1.jpg"},
		BannerImageLayout:      ptr("carousel"),
		BannerEffects:          []domain.ImageEffects{{Brightness: 100, Contrast: 90, Opacity: 100}},
		BannerVideoSource:      ptr("youtube"),
		BannerVideoURL:         ptr("https://youtube.com/embed/x"),
		BannerYoutubeVideoID:   ptr("x"),
		BannerYoutubeStatus:    ptr("ready"),
		BannerYoutubeMetadata:  domain.YoutubeMetadata{Title: "Chuva", Privacy: "public", Tags: []string{"a"}},
		BannerSmartPlayback:    ptr(false),
		BannerPlaybackSegments: []domain.PlaybackSegment{{Start: 0, End: 10}},
		BannerSegmentDuration:  ptr(10),
		BannerTransition:       ptr("fade"),
		BannerDuration:         ptr(6),
		VideoStart:             ptr(3),
		VideoEnd:               ptr(0),
		CreatedAt:              &created,
		UpdatedAt:              &created,
	}
}

func TestToRowUsesSnakeCase(t *testing.T) {
	row := ToRow(fullRecord())

	assert.Equal(t, "a-1", row["author_id"])
	assert.Equal(t, "https://cdn.example/capa.jpg", row["image_url"])
	assert.Equal(t, true, row["is_breaking"])
	assert.Equal(t, 10, row["banner_segment_duration"])
	assert.Equal(t, "published", row["status"])
	for k := range row {
		assert.NotRegexp(t, `[A-Z]`, k)
	}
}

func TestToRowUnsetFieldsAreNil(t *testing.T) {
	row := ToRow(domain.ContentRecord{ID: "1", Title: "t"})

	for _, col := range []string{"image_credits", "banner_video_url", "banner_effects", "video_start", "created_at", "tags", "blocks"} {
		v, ok := row[col]
		assert.True(t, ok, col)
		assert.Nil(t, v, col)
	}
	assert.Equal(t, "image", row["media_type"])
	assert.Equal(t, "site", row["source"])

	stripped := row.Strip()
	assert.NotContains(t, stripped, "video_start")
	assert.Equal(t, "t", stripped["title"])
	assert.Contains(t, row, "video_start", "Strip must not modify the receiver")
}

func TestToRowPartialRecordKeepsStoredColumns(t *testing.T) {
	row := ToRow(domain.ContentRecord{ID: "n1", Title: "edited"}).Strip()

	assert.Equal(t, Row{
		"id":         "n1",
		"title":      "edited",
		"media_type": "image",
		"source":     "site",
	}, row)
}

func TestToRowWritesExplicitFalse(t *testing.T) {
	row := ToRow(domain.ContentRecord{ID: "n1", IsFeatured: ptr(false)}).Strip()

	assert.Equal(t, false, row["is_featured"])
	assert.NotContains(t, row, "is_breaking")
}

func TestRoundTrip(t *testing.T) {
	rec := fullRecord()
	assert.Equal(t, rec, ToDomain(ToRow(rec)))
}

// Rows come back from the database as decoded JSON: numbers are float64,
// objects are maps and timestamps are strings.
func TestRoundTripThroughJSON(t *testing.T) {
	rec := fullRecord()

	raw, err := json.Marshal(ToRow(rec).Strip())
	require.NoError(t, err)
	var row Row
	require.NoError(t, json.Unmarshal(raw, &row))

	assert.Equal(t, rec, ToDomain(row))
}

func TestToDomainPrefersSnakeCase(t *testing.T) {
	row := Row{
		"image_url":         "https://snake.png",
		"imageUrl":          "https://camel.png",
		"authorId":          "camel-author",
		"isBreaking":        true,
		"bannerYoutubeMeta": map[string]any{"title": "legacy"},
		"video_start":       float64(12),
		"createdAt":         "2024-05-01T10:00:00.5+00:00",
	}

	rec := ToDomain(row)

	assert.Equal(t, "https://snake.png", rec.ImageURL)
	assert.Equal(t, "camel-author", rec.AuthorID)
	require.NotNil(t, rec.IsBreaking)
	assert.True(t, *rec.IsBreaking)
	assert.Equal(t, "legacy", rec.BannerYoutubeMetadata.Title)
	require.NotNil(t, rec.VideoStart)
	assert.Equal(t, 12, *rec.VideoStart)
	require.NotNil(t, rec.CreatedAt)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 500_000_000, time.UTC), rec.CreatedAt.UTC())
}

func TestToDomainNullFallsBackToCamelCase(t *testing.T) {
	rec := ToDomain(Row{"image_url": nil, "imageUrl": "https://camel.png"})
	assert.Equal(t, "https://camel.png", rec.ImageURL)
}

func TestToDomainDefaults(t *testing.T) {
	rec := ToDomain(Row{"id": "1"})

	assert.Equal(t, "image", rec.MediaType)
	assert.Equal(t, "site", rec.Source)
	assert.Equal(t, []string{}, rec.Tags)
	assert.Equal(t, []string{}, rec.BannerImages)
	assert.Equal(t, []domain.ContentBlock{}, rec.Blocks)
	assert.Equal(t, []domain.SocialDistribution{}, rec.SocialDistribution)
	assert.Equal(t, domain.SEO{}, rec.SEO)
	assert.Nil(t, rec.BannerEffects)
	assert.Nil(t, rec.ImageCredits)
	assert.Nil(t, rec.CreatedAt)
}

func TestToDomainToleratesWrongTypes(t *testing.T) {
	rec := ToDomain(Row{"views": "many", "tags": 7, "title": 3})

	assert.Zero(t, rec.Views)
	assert.Equal(t, []string{}, rec.Tags)
	assert.Empty(t, rec.Title)
}
