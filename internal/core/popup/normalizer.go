// Package popup turns untrusted popup configuration into bounded, safe
// values. It never fails: every correction is reported as a warning.
package popup

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"portal-ads/internal/core/domain"
)

const (
	MaxItemsPerSet   = 24
	MaxImagesPerItem = 3

	MaxTitleLen   = 120
	MaxBodyLen    = 800
	MaxCTATextLen = 40

	maxIDLen    = 64
	maxStyleLen = 64

	DefaultTitle       = "Novo Destaque"
	DefaultThemePreset = "classic_default"
)

var (
	validFilters = []domain.FilterID{
		domain.FilterNone, domain.FilterGrayscale, domain.FilterSepia, domain.FilterSaturate,
		domain.FilterContrast, domain.FilterBrightness, domain.FilterBlur, domain.FilterVintage,
	}
	validPresentations = []domain.ImagePresentation{
		domain.PresentationHeroSingle, domain.PresentationSplit2Col, domain.PresentationCollage3,
		domain.PresentationStackCards, domain.PresentationMiniSlider,
	}
	validSizes = []domain.PopupSize{
		domain.SizeXS, domain.SizeSM, domain.SizeMD, domain.SizeLG, domain.SizeXL, domain.Size2XL,
		domain.SizeFullscreen, domain.SizeBannerTop, domain.SizeBannerBottom,
		domain.SizeSidebarLeft, domain.SizeSidebarRight,
	}
	validTargets = []domain.TargetPage{
		domain.PageHome, domain.PageNewsDetail, domain.PageJobsBoard, domain.PageAdvertiserPage,
		domain.PageLoginRegister, domain.PageUserProfile, domain.PageAdminArea, domain.PageAll,
	}

	fits          = []string{"cover", "contain"}
	focusPoints   = []string{"center", "top", "bottom", "left", "right"}
	radii         = []string{"none", "soft", "strong"}
	borderStyles  = []string{"none", "thin", "bold"}
	shadows       = []string{"none", "soft", "strong"}
	variants      = []string{"soft", "strong"}
	zoomMotions   = []string{"off", "soft", "strong"}
	intensities   = []string{"low", "normal", "high"}
	placements    = []string{"background", "over_media", "screen_overlay"}
	directions    = []string{"top_bottom", "bottom_top", "left_right", "right_left", "random"}
	defaultPages  = []domain.TargetPage{domain.PageHome, domain.PageNewsDetail}
	fallbackPages = []domain.TargetPage{domain.PageHome}
)

var (
	DefaultTextStyle = domain.TextStyle{
		FontFamily: "Inter, sans-serif",
		TitleSize:  "2xl",
		BodySize:   "md",
		TitleColor: "#000000",
		BodyColor:  "#4b5563",
	}
	DefaultImageStyle = domain.ImageStyle{
		Fit:           "cover",
		FocusPoint:    "center",
		BorderRadius:  "none",
		BorderStyle:   "none",
		Shadow:        "none",
		OverlayPreset: "none",
		FilterID:      domain.FilterNone,
		FilterVariant: "soft",
	}
	DefaultVideoSettings = domain.VideoSettings{
		Muted:         true,
		Loop:          true,
		Autoplay:      true,
		Fit:           "cover",
		ZoomMotion:    "off",
		BorderRadius:  "none",
		BorderStyle:   "none",
		Shadow:        "none",
		OverlayPreset: "none",
		FilterID:      domain.FilterNone,
		FilterVariant: "soft",
		FramePreset:   "clean_border",
	}
	DefaultEffectConfig = domain.EffectConfig{
		Type:      "none",
		Intensity: "normal",
		Placement: "over_media",
		Direction: "top_bottom",
		Opacity:   100,
	}
)

// Result is a normalized value plus the corrections applied to reach it.
type Result[T any] struct {
	Normalized T        `json:"normalized"`
	Warnings   []string `json:"warnings"`
}

// Normalizer normalizes popup items and sets. The zero value is not usable;
// call NewNormalizer.
type Normalizer struct {
	newID func() string
}

type Option func(*Normalizer)

// WithIDGenerator replaces the generator used for items without an id.
func WithIDGenerator(fn func() string) Option {
	return func(n *Normalizer) { n.newID = fn }
}

func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{newID: uuid.NewString}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NormalizeSet truncates the set to MaxItemsPerSet and normalizes each
// remaining item. Item warnings are prefixed with the item's position and
// resolved title.
func (n *Normalizer) NormalizeSet(in domain.PopupSetInput) Result[domain.PopupSet] {
	warnings := []string{}
	items := in.Items
	if len(items) > MaxItemsPerSet {
		warnings = append(warnings, fmt.Sprintf("popup set exceeded %d items; %d extra items were truncated",
			MaxItemsPerSet, len(items)-MaxItemsPerSet))
		items = items[:MaxItemsPerSet]
	}

	out := make([]domain.PopupItem, 0, len(items))
	for i, item := range items {
		res := n.NormalizeItem(item)
		out = append(out, res.Normalized)
		for _, w := range res.Warnings {
			warnings = append(warnings, fmt.Sprintf("item %d (%q): %s", i+1, res.Normalized.Title, w))
		}
	}
	return Result[domain.PopupSet]{Normalized: domain.PopupSet{Items: out}, Warnings: warnings}
}

// NormalizeItem fills every omitted field with its default and bounds every
// provided one.
func (n *Normalizer) NormalizeItem(in domain.PopupItemInput) Result[domain.PopupItem] {
	w := &warnings{list: []string{}}

	id, _ := ClampText(deref(in.ID), maxIDLen)
	if id == "" {
		id = n.newID()
	}

	title := w.clamp("title", deref(in.Title), MaxTitleLen)
	if title == "" {
		title = DefaultTitle
	}
	theme := styleText(in.ThemePresetID)
	if theme == "" {
		theme = DefaultThemePreset
	}

	out := domain.PopupItem{
		ID:              id,
		Active:          derefOr(in.Active, true),
		Title:           title,
		Body:            w.clamp("body", deref(in.Body), MaxBodyLen),
		CTAText:         w.clamp("call-to-action label", deref(in.CTAText), MaxCTATextLen),
		CTAURL:          w.url("call-to-action URL", in.CTAURL),
		TargetPages:     targetPages(in.TargetPages),
		FilterID:        coerce(in.FilterID, validFilters, domain.FilterNone),
		ThemePresetID:   theme,
		PopupSizePreset: coerce(in.PopupSizePreset, validSizes, domain.SizeMD),
		TextStyle:       textStyle(in.TextStyle),
		Media:           w.media(in.Media),
		EffectConfig:    effectConfig(in.EffectConfig),
	}
	return Result[domain.PopupItem]{Normalized: out, Warnings: w.list}
}

type warnings struct {
	list []string
}

func (w *warnings) add(format string, args ...any) {
	w.list = append(w.list, fmt.Sprintf(format, args...))
}

func (w *warnings) clamp(field, s string, limit int) string {
	out, cut := ClampText(s, limit)
	if cut {
		w.add("%s truncated to %d characters", field, limit)
	}
	return out
}

// url returns the sanitized URL, or "" when it is unsafe. Omitted and empty
// values are not reported.
func (w *warnings) url(field string, raw *string) string {
	u := SanitizeURL(deref(raw))
	if u == "" {
		return ""
	}
	if !IsSafeURL(u) {
		w.add("%s removed: unsafe scheme", field)
		return ""
	}
	return u
}

func (w *warnings) media(in *domain.MediaInput) domain.Media {
	if in == nil {
		in = &domain.MediaInput{}
	}

	images := in.Images
	if len(images) > MaxImagesPerItem {
		w.add("at most %d images are allowed; %d extra images were dropped",
			MaxImagesPerItem, len(images)-MaxImagesPerItem)
		images = images[:MaxImagesPerItem]
	}
	safe := make([]string, 0, len(images))
	for _, img := range images {
		if !IsSafeURL(img) {
			w.add("an image was removed: empty or unsafe URL")
			continue
		}
		safe = append(safe, SanitizeURL(img))
	}

	video := w.url("video URL", in.VideoURL)
	if video != "" && len(safe) > 0 {
		w.add("images and video are exclusive; %d images were dropped in favour of the video", len(safe))
		safe = safe[:0]
	}

	return domain.Media{
		Images:            safe,
		ImagePresentation: coerce(in.ImagePresentation, validPresentations, domain.PresentationHeroSingle),
		ImageStyle:        imageStyle(in.ImageStyle),
		VideoURL:          video,
		VideoSettings:     videoSettings(in.VideoSettings),
		VideoMuted:        derefOr(in.VideoMuted, true),
		VideoLoop:         derefOr(in.VideoLoop, true),
		VideoFit:          legacyVideoFit(in.VideoFit),
		VideoZoom:         derefOr(in.VideoZoom, false),
	}
}

// legacyVideoFit is cover unless contain was asked for.
func legacyVideoFit(fit *string) string {
	if fit != nil && *fit == "contain" {
		return "contain"
	}
	return "cover"
}

// targetPages intersects pages with the allowlist, keeping order and
// dropping duplicates. Omitted pages get the default pair; an empty result
// falls back to home.
func targetPages(pages []string) []domain.TargetPage {
	if pages == nil {
		return slices.Clone(defaultPages)
	}
	out := make([]domain.TargetPage, 0, len(pages))
	for _, p := range pages {
		t := domain.TargetPage(p)
		if slices.Contains(validTargets, t) && !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return slices.Clone(fallbackPages)
	}
	return out
}

func textStyle(in *domain.TextStyleInput) domain.TextStyle {
	d := DefaultTextStyle
	if in == nil {
		return d
	}
	return domain.TextStyle{
		FontFamily: styleOr(in.FontFamily, d.FontFamily),
		TitleSize:  styleOr(in.TitleSize, d.TitleSize),
		BodySize:   styleOr(in.BodySize, d.BodySize),
		TitleColor: styleOr(in.TitleColor, d.TitleColor),
		BodyColor:  styleOr(in.BodyColor, d.BodyColor),
	}
}

func imageStyle(in *domain.ImageStyleInput) domain.ImageStyle {
	d := DefaultImageStyle
	if in == nil {
		return d
	}
	return domain.ImageStyle{
		Fit:              coerce(in.Fit, fits, d.Fit),
		FocusPoint:       coerce(in.FocusPoint, focusPoints, d.FocusPoint),
		BorderRadius:     coerce(in.BorderRadius, radii, d.BorderRadius),
		BorderStyle:      coerce(in.BorderStyle, borderStyles, d.BorderStyle),
		Shadow:           coerce(in.Shadow, shadows, d.Shadow),
		OverlayPreset:    styleOr(in.OverlayPreset, d.OverlayPreset),
		OverlayIntensity: percent(in.OverlayIntensity, d.OverlayIntensity),
		FilterID:         coerce(in.FilterID, validFilters, d.FilterID),
		FilterVariant:    coerce(in.FilterVariant, variants, d.FilterVariant),
	}
}

func videoSettings(in *domain.VideoSettingsInput) domain.VideoSettings {
	d := DefaultVideoSettings
	if in == nil {
		return d
	}
	return domain.VideoSettings{
		Muted:         derefOr(in.Muted, d.Muted),
		Loop:          derefOr(in.Loop, d.Loop),
		Autoplay:      derefOr(in.Autoplay, d.Autoplay),
		Fit:           coerce(in.Fit, fits, d.Fit),
		ZoomMotion:    coerce(in.ZoomMotion, zoomMotions, d.ZoomMotion),
		BorderRadius:  coerce(in.BorderRadius, radii, d.BorderRadius),
		BorderStyle:   coerce(in.BorderStyle, borderStyles, d.BorderStyle),
		Shadow:        coerce(in.Shadow, shadows, d.Shadow),
		OverlayPreset: styleOr(in.OverlayPreset, d.OverlayPreset),
		FilterID:      coerce(in.FilterID, validFilters, d.FilterID),
		FilterVariant: coerce(in.FilterVariant, variants, d.FilterVariant),
		FramePreset:   styleOr(in.FramePreset, d.FramePreset),
	}
}

func effectConfig(in *domain.EffectConfigInput) domain.EffectConfig {
	d := DefaultEffectConfig
	if in == nil {
		return d
	}
	return domain.EffectConfig{
		Enabled:   derefOr(in.Enabled, d.Enabled),
		Type:      styleOr(in.Type, d.Type),
		Intensity: coerce(in.Intensity, intensities, d.Intensity),
		Placement: coerce(in.Placement, placements, d.Placement),
		Direction: coerce(in.Direction, directions, d.Direction),
		Color:     styleText(in.Color),
		Opacity:   percent(in.Opacity, d.Opacity),
	}
}

// coerce returns the value when it is in the allowlist and def otherwise.
func coerce[T ~string](raw *string, allowed []T, def T) T {
	if raw == nil {
		return def
	}
	if v := T(*raw); slices.Contains(allowed, v) {
		return v
	}
	return def
}

func percent(v *int, def int) int {
	if v == nil {
		return def
	}
	return min(max(*v, 0), 100)
}

func styleText(s *string) string {
	out, _ := ClampText(deref(s), maxStyleLen)
	return out
}

func styleOr(s *string, def string) string {
	if out := styleText(s); out != "" {
		return out
	}
	return def
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func derefOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
