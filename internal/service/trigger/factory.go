package trigger

import (
	"log/slog"

	"github.com/Demma22/REMI-APP-sub000/internal/config"
)

// NewStrategy selects the trigger strategy for the configured platform.
// If cfg is nil, it defaults to the recurring calendar strategy.
func NewStrategy(cfg *config.TriggerConfig) Strategy {
	if cfg == nil {
		slog.Info("trigger config is nil, using recurring calendar strategy")
		return NewRecurringCalendarStrategy()
	}

	switch cfg.Platform {
	case config.PlatformIOS:
		slog.Info("using enumerated date trigger strategy",
			slog.Int("horizon_weeks", cfg.HorizonWeeks),
		)
		return NewEnumeratedDateStrategy(cfg.HorizonWeeks, cfg.Location)
	case config.PlatformAndroid:
		fallthrough
	default:
		slog.Info("using recurring calendar trigger strategy")
		return NewRecurringCalendarStrategy()
	}
}
