package config

import "errors"

var (
	ErrRedisAddrMissing  = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB    = errors.New("REDIS_DB must be a valid integer")
	ErrInvalidHorizon    = errors.New("TRIGGER_HORIZON_WEEKS must be a positive integer")
	ErrUnknownPlatform   = errors.New("PLATFORM must be android or ios")
	ErrInvalidTimezone   = errors.New("TIMEZONE is not a valid IANA location")
	ErrStoreURLMissing   = errors.New("STUDENT_STORE_URL is required when resync is enabled")
	ErrInvalidResyncSpec = errors.New("RESYNC_CRON is not a valid cron expression")
)
