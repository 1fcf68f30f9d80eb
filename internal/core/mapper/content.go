// Package mapper converts news articles between their in-memory shape and
// the persisted snake_case row. It does not validate.
package mapper

import (
	"encoding/json"
	"reflect"
	"time"

	"portal-ads/internal/core/domain"
)

const (
	defaultMediaType = "image"
	defaultSource    = "site"
)

// Row is a persisted article keyed by column name. A nil value means the
// column is unset and must not be written.
type Row map[string]any

// Strip returns a copy of r without unset columns. Persistence callers use
// it before a partial upsert.
func (r Row) Strip() Row {
	out := make(Row, len(r))
	for k, v := range r {
		if v != nil {
			out[k] = v
		}
	}
	return out
}

// lookup returns the first non-nil value among keys.
func (r Row) lookup(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// ToDomain builds a record from a row. Each field is read from its
// snake_case column, falling back to the camelCase key written by older
// clients. Collection fields default to empty values.
func ToDomain(row Row) domain.ContentRecord {
	rec := domain.ContentRecord{
		ID:               field[string](row, "id"),
		Title:            field[string](row, "title"),
		Lead:             field[string](row, "lead"),
		Content:          field[string](row, "content"),
		Category:         field[string](row, "category"),
		Status:           field[domain.ContentStatus](row, "status"),
		Author:           field[string](row, "author"),
		AuthorID:         field[string](row, "author_id", "authorId"),
		Source:           field[string](row, "source"),
		ImageURL:         field[string](row, "image_url", "imageUrl"),
		ImageCredits:     optional[string](row, "image_credits", "imageCredits"),
		MediaType:        field[string](row, "media_type", "mediaType"),
		Views:            field[int64](row, "views"),
		Tags:             field[[]string](row, "tags"),
		Region:           field[string](row, "region"),
		City:             field[string](row, "city"),
		IsBreaking:       optional[bool](row, "is_breaking", "isBreaking"),
		IsFeatured:       optional[bool](row, "is_featured", "isFeatured"),
		FeaturedPriority: field[int](row, "featured_priority", "featuredPriority"),
		SEO:              field[domain.SEO](row, "seo"),

		Blocks:             field[[]domain.ContentBlock](row, "blocks"),
		SocialDistribution: field[[]domain.SocialDistribution](row, "social_distribution", "socialDistribution"),

		BannerImages:           field[[]string](row, "banner_images", "bannerImages"),
		BannerImageLayout:      optional[string](row, "banner_image_layout", "bannerImageLayout"),
		BannerEffects:          field[[]domain.ImageEffects](row, "banner_effects", "bannerEffects"),
		BannerVideoSource:      optional[string](row, "banner_video_source", "bannerVideoSource"),
		BannerVideoURL:         optional[string](row, "banner_video_url", "bannerVideoUrl"),
		BannerYoutubeVideoID:   optional[string](row, "banner_youtube_video_id", "bannerYoutubeVideoId"),
		BannerYoutubeStatus:    optional[string](row, "banner_youtube_status", "bannerYoutubeStatus"),
		BannerYoutubeMetadata:  field[domain.YoutubeMetadata](row, "banner_youtube_metadata", "bannerYoutubeMetadata", "bannerYoutubeMeta"),
		BannerSmartPlayback:    optional[bool](row, "banner_smart_playback", "bannerSmartPlayback"),
		BannerPlaybackSegments: field[[]domain.PlaybackSegment](row, "banner_playback_segments", "bannerPlaybackSegments"),
		BannerSegmentDuration:  optional[int](row, "banner_segment_duration", "bannerSegmentDuration"),
		BannerTransition:       optional[string](row, "banner_transition", "bannerTransition"),
		BannerDuration:         optional[int](row, "banner_duration", "bannerDuration"),
		VideoStart:             optional[int](row, "video_start", "videoStart"),
		VideoEnd:               optional[int](row, "video_end", "videoEnd"),

		CreatedAt: optional[time.Time](row, "created_at", "createdAt"),
		UpdatedAt: optional[time.Time](row, "updated_at", "updatedAt"),
	}

	if rec.MediaType == "" {
		rec.MediaType = defaultMediaType
	}
	if rec.Source == "" {
		rec.Source = defaultSource
	}
	if rec.Tags == nil {
		rec.Tags = []string{}
	}
	if rec.BannerImages == nil {
		rec.BannerImages = []string{}
	}
	if rec.Blocks == nil {
		rec.Blocks = []domain.ContentBlock{}
	}
	if rec.SocialDistribution == nil {
		rec.SocialDistribution = []domain.SocialDistribution{}
	}
	return rec
}

// ToRow projects a record onto its canonical snake_case columns. Unset
// optional fields and zero values map to nil, so a partial record never
// overwrites stored columns once stripped. Source and media type always carry
// their defaults.
func ToRow(rec domain.ContentRecord) Row {
	mediaType := rec.MediaType
	if mediaType == "" {
		mediaType = defaultMediaType
	}
	source := rec.Source
	if source == "" {
		source = defaultSource
	}

	return Row{
		"id":                rec.ID,
		"title":             nonZero(rec.Title),
		"lead":              nonZero(rec.Lead),
		"content":           nonZero(rec.Content),
		"category":          nonZero(rec.Category),
		"status":            nonZero(string(rec.Status)),
		"author":            nonZero(rec.Author),
		"author_id":         nonZero(rec.AuthorID),
		"source":            source,
		"image_url":         nonZero(rec.ImageURL),
		"image_credits":     value(rec.ImageCredits),
		"media_type":        mediaType,
		"views":             nonZero(rec.Views),
		"tags":              list(rec.Tags),
		"region":            nonZero(rec.Region),
		"city":              nonZero(rec.City),
		"is_breaking":       value(rec.IsBreaking),
		"is_featured":       value(rec.IsFeatured),
		"featured_priority": nonZero(rec.FeaturedPriority),
		"seo":               nonZero(rec.SEO),

		"blocks":              list(rec.Blocks),
		"social_distribution": list(rec.SocialDistribution),

		"banner_images":            list(rec.BannerImages),
		"banner_image_layout":      value(rec.BannerImageLayout),
		"banner_effects":           list(rec.BannerEffects),
		"banner_video_source":      value(rec.BannerVideoSource),
		"banner_video_url":         value(rec.BannerVideoURL),
		"banner_youtube_video_id":  value(rec.BannerYoutubeVideoID),
		"banner_youtube_status":    value(rec.BannerYoutubeStatus),
		"banner_youtube_metadata":  nonZero(rec.BannerYoutubeMetadata),
		"banner_smart_playback":    value(rec.BannerSmartPlayback),
		"banner_playback_segments": list(rec.BannerPlaybackSegments),
		"banner_segment_duration":  value(rec.BannerSegmentDuration),
		"banner_transition":        value(rec.BannerTransition),
		"banner_duration":          value(rec.BannerDuration),
		"video_start":              value(rec.VideoStart),
		"video_end":                value(rec.VideoEnd),

		"created_at": value(rec.CreatedAt),
		"updated_at": value(rec.UpdatedAt),
	}
}

// field reads the first present key and converts it to T. Values already of
// type T are used as is; anything else (decoded JSON, driver types) goes
// through a JSON round trip. Unconvertible values yield the zero value.
func field[T any](row Row, keys ...string) T {
	var out T
	v, ok := row.lookup(keys...)
	if !ok {
		return out
	}
	if t, ok := v.(T); ok {
		return t
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return out
	}
	var decoded T
	if err = json.Unmarshal(raw, &decoded); err != nil {
		return out
	}
	return decoded
}

func optional[T any](row Row, keys ...string) *T {
	if _, ok := row.lookup(keys...); !ok {
		return nil
	}
	v := field[T](row, keys...)
	return &v
}

// value dereferences p so the row holds either a plain value or an untyped
// nil, never a typed nil pointer.
func value[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// nonZero maps the zero value of v to an untyped nil.
func nonZero(v any) any {
	if reflect.ValueOf(v).IsZero() {
		return nil
	}
	return v
}

func list[T any](s []T) any {
	if s == nil {
		return nil
	}
	return s
}
