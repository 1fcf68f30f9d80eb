package domain

// TargetPage is a page location where a popup may be shown.
type TargetPage string

const (
	PageHome           TargetPage = "home"
	PageNewsDetail     TargetPage = "news_detail"
	PageJobsBoard      TargetPage = "jobs_board"
	PageAdvertiserPage TargetPage = "advertiser_page"
	PageLoginRegister  TargetPage = "login_register"
	PageUserProfile    TargetPage = "user_profile"
	PageAdminArea      TargetPage = "admin_area"
	PageAll            TargetPage = "all"
)

// FilterID is a visual filter applied to popup media.
type FilterID string

const (
	FilterNone       FilterID = "none"
	FilterGrayscale  FilterID = "grayscale"
	FilterSepia      FilterID = "sepia"
	FilterSaturate   FilterID = "saturate"
	FilterContrast   FilterID = "contrast"
	FilterBrightness FilterID = "brightness"
	FilterBlur       FilterID = "blur"
	FilterVintage    FilterID = "vintage"
)

// PopupSize is the size preset of the popup container.
type PopupSize string

const (
	SizeXS           PopupSize = "xs"
	SizeSM           PopupSize = "sm"
	SizeMD           PopupSize = "md"
	SizeLG           PopupSize = "lg"
	SizeXL           PopupSize = "xl"
	Size2XL          PopupSize = "2xl"
	SizeFullscreen   PopupSize = "fullscreen"
	SizeBannerTop    PopupSize = "banner_top"
	SizeBannerBottom PopupSize = "banner_bottom"
	SizeSidebarLeft  PopupSize = "sidebar_left"
	SizeSidebarRight PopupSize = "sidebar_right"
)

// ImagePresentation is the layout used when an item carries images.
type ImagePresentation string

const (
	PresentationHeroSingle ImagePresentation = "hero_single"
	PresentationSplit2Col  ImagePresentation = "split_2col"
	PresentationCollage3   ImagePresentation = "collage_3"
	PresentationStackCards ImagePresentation = "stack_cards"
	PresentationMiniSlider ImagePresentation = "mini_slider"
)

// PopupFrequency controls how often a visitor sees the same popup item.
type PopupFrequency string

const (
	FrequencyOncePerSession PopupFrequency = "once_per_session"
	FrequencyOncePerDay     PopupFrequency = "once_per_day"
	FrequencyAlways         PopupFrequency = "always"
)

// PopupItem is one fully normalized promotional slide.
type PopupItem struct {
	ID              string       `json:"id"`
	Active          bool         `json:"active"`
	Title           string       `json:"title"`
	Body            string       `json:"body"`
	CTAText         string       `json:"ctaText"`
	CTAURL          string       `json:"ctaUrl"`
	TargetPages     []TargetPage `json:"targetPages"`
	FilterID        FilterID     `json:"filterId"`
	ThemePresetID   string       `json:"themePresetId"`
	PopupSizePreset PopupSize    `json:"popupSizePreset"`
	TextStyle       TextStyle    `json:"textStyle"`
	Media           Media        `json:"media"`
	EffectConfig    EffectConfig `json:"effectConfig"`
}

// Targets reports whether the item is meant for page.
func (p PopupItem) Targets(page TargetPage) bool {
	for _, t := range p.TargetPages {
		if t == page || t == PageAll {
			return true
		}
	}
	return false
}

type TextStyle struct {
	FontFamily string `json:"fontFamily"`
	TitleSize  string `json:"titleSize"`
	BodySize   string `json:"bodySize"`
	TitleColor string `json:"titleColor"`
	BodyColor  string `json:"bodyColor"`
}

// Media holds either images or a video URL, never both.
type Media struct {
	Images            []string          `json:"images"`
	ImagePresentation ImagePresentation `json:"imagePresentation"`
	ImageStyle        ImageStyle        `json:"imageStyle"`
	VideoURL          string            `json:"videoUrl"`
	VideoSettings     VideoSettings     `json:"videoSettings"`

	// Flags written by the first popup editor, kept next to VideoSettings.
	VideoMuted bool   `json:"videoMuted"`
	VideoLoop  bool   `json:"videoLoop"`
	VideoFit   string `json:"videoFit"`
	VideoZoom  bool   `json:"videoZoom"`
}

type ImageStyle struct {
	Fit              string   `json:"fit"`
	FocusPoint       string   `json:"focusPoint"`
	BorderRadius     string   `json:"borderRadius"`
	BorderStyle      string   `json:"borderStyle"`
	Shadow           string   `json:"shadow"`
	OverlayPreset    string   `json:"overlayPreset"`
	OverlayIntensity int      `json:"overlayIntensity"`
	FilterID         FilterID `json:"filterId"`
	FilterVariant    string   `json:"filterVariant"`
}

type VideoSettings struct {
	Muted         bool     `json:"muted"`
	Loop          bool     `json:"loop"`
	Autoplay      bool     `json:"autoplay"`
	Fit           string   `json:"fit"`
	ZoomMotion    string   `json:"zoomMotion"`
	BorderRadius  string   `json:"borderRadius"`
	BorderStyle   string   `json:"borderStyle"`
	Shadow        string   `json:"shadow"`
	OverlayPreset string   `json:"overlayPreset"`
	FilterID      FilterID `json:"filterId"`
	FilterVariant string   `json:"filterVariant"`
	FramePreset   string   `json:"framePreset"`
}

// EffectConfig describes the optional animated effect of a slide.
type EffectConfig struct {
	Enabled   bool   `json:"enabled"`
	Type      string `json:"type"`
	Intensity string `json:"intensity"`
	Placement string `json:"placement"`
	Direction string `json:"direction"`
	Color     string `json:"color,omitempty"`
	Opacity   int    `json:"opacity"`
}

// PopupSet is an ordered collection of popup items.
type PopupSet struct {
	Items []PopupItem `json:"items"`
}
