package config

import (
	"os"
	"strconv"
	"time"
)

const (
	platformEnv = "PLATFORM"
	horizonEnv  = "TRIGGER_HORIZON_WEEKS"
	timezoneEnv = "TIMEZONE"

	defaultPlatform     = PlatformAndroid
	defaultHorizonWeeks = 20
)

// Platform selects the trigger strategy once at construction. Android's
// host supports reliable weekly calendar triggers; iOS does not, so weekly
// reminders are enumerated as absolute dates over a bounded horizon.
type Platform string

const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
)

type TriggerConfig struct {
	Platform     Platform
	HorizonWeeks int
	Location     *time.Location
}

func LoadTriggerConfig() (*TriggerConfig, error) {
	platform := Platform(os.Getenv(platformEnv))
	if platform == "" {
		platform = defaultPlatform
	}
	if platform != PlatformAndroid && platform != PlatformIOS {
		return nil, ErrUnknownPlatform
	}

	horizon := defaultHorizonWeeks
	if raw := os.Getenv(horizonEnv); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, ErrInvalidHorizon
		}
		horizon = parsed
	}

	loc := time.Local
	if raw := os.Getenv(timezoneEnv); raw != "" {
		parsed, err := time.LoadLocation(raw)
		if err != nil {
			return nil, ErrInvalidTimezone
		}
		loc = parsed
	}

	return &TriggerConfig{
		Platform:     platform,
		HorizonWeeks: horizon,
		Location:     loc,
	}, nil
}
