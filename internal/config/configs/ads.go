package configs

import (
	"fmt"
	"time"
)

// Ads configures ad rotation and event recording.
type Ads struct {
	// AutoDeactivate clears the activation flag of campaigns found expired
	// during rotation.
	AutoDeactivate bool `env:"AUTO_DEACTIVATE" envDefault:"false"`
	// EventBuffer is the capacity of the view/click queue. Events arriving
	// while it is full are dropped.
	EventBuffer int `env:"EVENT_BUFFER" envDefault:"1024"`
	// Timezone is the IANA zone in which campaign dates are compared.
	Timezone string `env:"TIMEZONE" envDefault:"UTC"`
}

// Location resolves Timezone.
func (c Ads) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("ads timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
