package extract

import (
	"time"

	"github.com/aexlabs/servicesync/internal/logger"
)

// WindowFormat is the source system's timestamp format: seconds
// precision, space-separated date and time, no timezone suffix. The
// source system is assumed to share the caller's local clock.
const WindowFormat = "2006-01-02 15:04:05"

// WindowStart returns the lower bound of the change window, now minus
// the lookback duration, formatted per WindowFormat in local time.
func WindowStart(lookbackHours int) string {
	formatted := windowStart(time.Now(), lookbackHours)
	logger.Info("Calculated 'updated_after' time: %s", formatted)
	return formatted
}

func windowStart(now time.Time, lookbackHours int) string {
	return now.Add(-time.Duration(lookbackHours) * time.Hour).Format(WindowFormat)
}
