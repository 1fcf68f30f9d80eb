package domain

import (
	"encoding/json"
	"time"
)

// ContentStatus is the editorial status of a news article.
type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusInReview  ContentStatus = "in_review"
	StatusPublished ContentStatus = "published"
	StatusArchived  ContentStatus = "archived"
)

// ContentRecord is a news article in its in-memory shape. Pointer and nil
// slice fields are optional: nil means the value was never set.
type ContentRecord struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Lead             string        `json:"lead"`
	Content          string        `json:"content"`
	Category         string        `json:"category"`
	Status           ContentStatus `json:"status"`
	Author           string        `json:"author"`
	AuthorID         string        `json:"authorId"`
	Source           string        `json:"source"`
	ImageURL         string        `json:"imageUrl"`
	ImageCredits     *string       `json:"imageCredits,omitempty"`
	MediaType        string        `json:"mediaType"`
	Views            int64         `json:"views"`
	Tags             []string      `json:"tags"`
	Region           string        `json:"region"`
	City             string        `json:"city"`
	IsBreaking       *bool         `json:"isBreaking,omitempty"`
	IsFeatured       *bool         `json:"isFeatured,omitempty"`
	FeaturedPriority int           `json:"featuredPriority"`
	SEO              SEO           `json:"seo"`

	Blocks             []ContentBlock       `json:"blocks"`
	SocialDistribution []SocialDistribution `json:"socialDistribution"`

	BannerImages           []string          `json:"bannerImages"`
	BannerImageLayout      *string           `json:"bannerImageLayout,omitempty"`
	BannerEffects          []ImageEffects    `json:"bannerEffects,omitempty"`
	BannerVideoSource      *string           `json:"bannerVideoSource,omitempty"`
	BannerVideoURL         *string           `json:"bannerVideoUrl,omitempty"`
	BannerYoutubeVideoID   *string           `json:"bannerYoutubeVideoId,omitempty"`
	BannerYoutubeStatus    *string           `json:"bannerYoutubeStatus,omitempty"`
	BannerYoutubeMetadata  YoutubeMetadata   `json:"bannerYoutubeMetadata"`
	BannerSmartPlayback    *bool             `json:"bannerSmartPlayback,omitempty"`
	BannerPlaybackSegments []PlaybackSegment `json:"bannerPlaybackSegments,omitempty"`
	BannerSegmentDuration  *int              `json:"bannerSegmentDuration,omitempty"`
	BannerTransition       *string           `json:"bannerTransition,omitempty"`
	BannerDuration         *int              `json:"bannerDuration,omitempty"`
	VideoStart             *int              `json:"videoStart,omitempty"`
	VideoEnd               *int              `json:"videoEnd,omitempty"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type SEO struct {
	Slug            string `json:"slug,omitempty"`
	MetaTitle       string `json:"metaTitle,omitempty"`
	MetaDescription string `json:"metaDescription,omitempty"`
	FocusKeyword    string `json:"focusKeyword,omitempty"`
	CanonicalURL    string `json:"canonicalUrl,omitempty"`
}

// ContentBlock is one block of the article body. Content and Settings are
// kept as raw JSON since their shape depends on Type.
type ContentBlock struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Content  json.RawMessage `json:"content,omitempty"`
	Settings json.RawMessage `json:"settings,omitempty"`
}

// SocialDistribution is the publication status on one social platform.
type SocialDistribution struct {
	Platform string `json:"platform"`
	Content  string `json:"content"`
	Status   string `json:"status"`
}

type ImageEffects struct {
	Brightness float64 `json:"brightness"`
	Contrast   float64 `json:"contrast"`
	Saturation float64 `json:"saturation"`
	Blur       float64 `json:"blur"`
	Sepia      float64 `json:"sepia"`
	Opacity    float64 `json:"opacity"`
}

type YoutubeMetadata struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Privacy     string   `json:"privacy,omitempty"`
	CategoryID  string   `json:"categoryId,omitempty"`
	MadeForKids bool     `json:"madeForKids,omitempty"`
	UploadedAt  string   `json:"uploadedAt,omitempty"`
}

// PlaybackSegment is a [Start, End] range in seconds.
type PlaybackSegment struct {
	Start int `json:"start"`
	End   int `json:"end"`
}
