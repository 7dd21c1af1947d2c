package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string and falls back to def when it is empty or malformed.
func ParseDuration(value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		// Global logger: may run before logger.Configure.
		log.Warn().Err(err).Str("value", value).Dur("default", def).Msg("Failed to parse duration, using default")
		return def
	}
	return d
}

// NowUTC returns the current time truncated to microseconds, the resolution Postgres stores.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
