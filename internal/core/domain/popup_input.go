package domain

// PopupItemInput is the partial, untrusted shape of a popup item as sent by
// the admin editor. Nil fields are treated as omitted.
type PopupItemInput struct {
	ID              *string            `json:"id,omitempty"`
	Active          *bool              `json:"active,omitempty"`
	Title           *string            `json:"title,omitempty"`
	Body            *string            `json:"body,omitempty"`
	CTAText         *string            `json:"ctaText,omitempty"`
	CTAURL          *string            `json:"ctaUrl,omitempty"`
	TargetPages     []string           `json:"targetPages,omitempty"`
	FilterID        *string            `json:"filterId,omitempty"`
	ThemePresetID   *string            `json:"themePresetId,omitempty"`
	PopupSizePreset *string            `json:"popupSizePreset,omitempty"`
	TextStyle       *TextStyleInput    `json:"textStyle,omitempty"`
	Media           *MediaInput        `json:"media,omitempty"`
	EffectConfig    *EffectConfigInput `json:"effectConfig,omitempty"`
}

type TextStyleInput struct {
	FontFamily *string `json:"fontFamily,omitempty"`
	TitleSize  *string `json:"titleSize,omitempty"`
	BodySize   *string `json:"bodySize,omitempty"`
	TitleColor *string `json:"titleColor,omitempty"`
	BodyColor  *string `json:"bodyColor,omitempty"`
}

type MediaInput struct {
	Images            []string            `json:"images,omitempty"`
	ImagePresentation *string             `json:"imagePresentation,omitempty"`
	ImageStyle        *ImageStyleInput    `json:"imageStyle,omitempty"`
	VideoURL          *string             `json:"videoUrl,omitempty"`
	VideoSettings     *VideoSettingsInput `json:"videoSettings,omitempty"`
	VideoMuted        *bool               `json:"videoMuted,omitempty"`
	VideoLoop         *bool               `json:"videoLoop,omitempty"`
	VideoFit          *string             `json:"videoFit,omitempty"`
	VideoZoom         *bool               `json:"videoZoom,omitempty"`
}

type ImageStyleInput struct {
	Fit              *string `json:"fit,omitempty"`
	FocusPoint       *string `json:"focusPoint,omitempty"`
	BorderRadius     *string `json:"borderRadius,omitempty"`
	BorderStyle      *string `json:"borderStyle,omitempty"`
	Shadow           *string `json:"shadow,omitempty"`
	OverlayPreset    *string `json:"overlayPreset,omitempty"`
	OverlayIntensity *int    `json:"overlayIntensity,omitempty"`
	FilterID         *string `json:"filterId,omitempty"`
	FilterVariant    *string `json:"filterVariant,omitempty"`
}

type VideoSettingsInput struct {
	Muted         *bool   `json:"muted,omitempty"`
	Loop          *bool   `json:"loop,omitempty"`
	Autoplay      *bool   `json:"autoplay,omitempty"`
	Fit           *string `json:"fit,omitempty"`
	ZoomMotion    *string `json:"zoomMotion,omitempty"`
	BorderRadius  *string `json:"borderRadius,omitempty"`
	BorderStyle   *string `json:"borderStyle,omitempty"`
	Shadow        *string `json:"shadow,omitempty"`
	OverlayPreset *string `json:"overlayPreset,omitempty"`
	FilterID      *string `json:"filterId,omitempty"`
	FilterVariant *string `json:"filterVariant,omitempty"`
	FramePreset   *string `json:"framePreset,omitempty"`
}

type EffectConfigInput struct {
	Enabled   *bool   `json:"enabled,omitempty"`
	Type      *string `json:"type,omitempty"`
	Intensity *string `json:"intensity,omitempty"`
	Placement *string `json:"placement,omitempty"`
	Direction *string `json:"direction,omitempty"`
	Color     *string `json:"color,omitempty"`
	Opacity   *int    `json:"opacity,omitempty"`
}

// PopupSetInput is the untrusted form of a PopupSet.
type PopupSetInput struct {
	Items []PopupItemInput `json:"items"`
}

// Input converts a normalized item back into its input form, with every
// field present. Stored items are re-normalized through this.
func (p PopupItem) Input() PopupItemInput {
	pages := make([]string, len(p.TargetPages))
	for i, t := range p.TargetPages {
		pages[i] = string(t)
	}
	images := make([]string, len(p.Media.Images))
	copy(images, p.Media.Images)

	in := PopupItemInput{
		ID:              ref(p.ID),
		Active:          ref(p.Active),
		Title:           ref(p.Title),
		Body:            ref(p.Body),
		CTAText:         ref(p.CTAText),
		CTAURL:          ref(p.CTAURL),
		TargetPages:     pages,
		FilterID:        ref(string(p.FilterID)),
		ThemePresetID:   ref(p.ThemePresetID),
		PopupSizePreset: ref(string(p.PopupSizePreset)),
		TextStyle: &TextStyleInput{
			FontFamily: ref(p.TextStyle.FontFamily),
			TitleSize:  ref(p.TextStyle.TitleSize),
			BodySize:   ref(p.TextStyle.BodySize),
			TitleColor: ref(p.TextStyle.TitleColor),
			BodyColor:  ref(p.TextStyle.BodyColor),
		},
		Media: &MediaInput{
			Images:            images,
			ImagePresentation: ref(string(p.Media.ImagePresentation)),
			ImageStyle: &ImageStyleInput{
				Fit:              ref(p.Media.ImageStyle.Fit),
				FocusPoint:       ref(p.Media.ImageStyle.FocusPoint),
				BorderRadius:     ref(p.Media.ImageStyle.BorderRadius),
				BorderStyle:      ref(p.Media.ImageStyle.BorderStyle),
				Shadow:           ref(p.Media.ImageStyle.Shadow),
				OverlayPreset:    ref(p.Media.ImageStyle.OverlayPreset),
				OverlayIntensity: ref(p.Media.ImageStyle.OverlayIntensity),
				FilterID:         ref(string(p.Media.ImageStyle.FilterID)),
				FilterVariant:    ref(p.Media.ImageStyle.FilterVariant),
			},
			VideoURL: ref(p.Media.VideoURL),
			VideoSettings: &VideoSettingsInput{
				Muted:         ref(p.Media.VideoSettings.Muted),
				Loop:          ref(p.Media.VideoSettings.Loop),
				Autoplay:      ref(p.Media.VideoSettings.Autoplay),
				Fit:           ref(p.Media.VideoSettings.Fit),
				ZoomMotion:    ref(p.Media.VideoSettings.ZoomMotion),
				BorderRadius:  ref(p.Media.VideoSettings.BorderRadius),
				BorderStyle:   ref(p.Media.VideoSettings.BorderStyle),
				Shadow:        ref(p.Media.VideoSettings.Shadow),
				OverlayPreset: ref(p.Media.VideoSettings.OverlayPreset),
				FilterID:      ref(string(p.Media.VideoSettings.FilterID)),
				FilterVariant: ref(p.Media.VideoSettings.FilterVariant),
				FramePreset:   ref(p.Media.VideoSettings.FramePreset),
			},
			VideoMuted: ref(p.Media.VideoMuted),
			VideoLoop:  ref(p.Media.VideoLoop),
			VideoFit:   ref(p.Media.VideoFit),
			VideoZoom:  ref(p.Media.VideoZoom),
		},
		EffectConfig: &EffectConfigInput{
			Enabled:   ref(p.EffectConfig.Enabled),
			Type:      ref(p.EffectConfig.Type),
			Intensity: ref(p.EffectConfig.Intensity),
			Placement: ref(p.EffectConfig.Placement),
			Direction: ref(p.EffectConfig.Direction),
			Color:     ref(p.EffectConfig.Color),
			Opacity:   ref(p.EffectConfig.Opacity),
		},
	}
	return in
}

// Input converts every item of the set, see PopupItem.Input.
func (s PopupSet) Input() PopupSetInput {
	items := make([]PopupItemInput, len(s.Items))
	for i, it := range s.Items {
		items[i] = it.Input()
	}
	return PopupSetInput{Items: items}
}

func ref[T any](v T) *T { return &v }
