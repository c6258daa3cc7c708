package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationSetting(t *testing.T) {
	assert.Equal(t, 5*time.Second, DurationSetting("read_timeout", "5s", time.Minute))
	assert.Equal(t, time.Minute, DurationSetting("read_timeout", "soon", time.Minute))
	assert.Equal(t, time.Minute, DurationSetting("read_timeout", "", time.Minute))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "-", FormatDate(time.Time{}))
	assert.Equal(t, "23/04/2025 09:05", FormatDate(time.Date(2025, 4, 23, 9, 5, 0, 0, time.Local)))
}
