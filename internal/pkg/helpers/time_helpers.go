package helpers

import (
	"time"

	"github.com/yigit/siswa/internal/pkg/logger"
)

// DurationSetting parses the named duration setting, falling back to the given
// default and logging a warning when the value cannot be parsed.
func DurationSetting(name, value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		logger.Warn().Err(err).
			Str("setting", name).
			Str("value", value).
			Dur("fallback", fallback).
			Msg("Invalid duration setting, using default")
		return fallback
	}
	return duration
}

// FormatDate renders a timestamp the way the UI lists creation dates
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("02/01/2006 15:04")
}
