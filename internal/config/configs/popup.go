package configs

import (
	"time"

	"portal-ads/internal/core/domain"
)

// Popup configures how often the same popup is shown to a visitor.
type Popup struct {
	Frequency  string        `env:"FREQUENCY" envDefault:"once_per_session"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"30m"`
}

// PopupFrequency returns the configured frequency. Unknown values fall back
// to once per session.
func (c Popup) PopupFrequency() domain.PopupFrequency {
	switch f := domain.PopupFrequency(c.Frequency); f {
	case domain.FrequencyOncePerSession, domain.FrequencyOncePerDay, domain.FrequencyAlways:
		return f
	default:
		return domain.FrequencyOncePerSession
	}
}
