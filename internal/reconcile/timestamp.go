package reconcile

import "time"

// Timestamp layouts accepted by the conversion rules. The zoned layout
// exists in two offset spellings because the source emits both ±HHMM
// and ±HH:MM.
const (
	zonedLayout        = "2006-01-02 15:04:05 -0700"
	zonedColonLayout   = "2006-01-02 15:04:05 -07:00"
	zonedNoSpaceLayout = "2006-01-02 15:04:05-0700"
	isoLayout          = "2006-01-02T15:04:05"
	dateLayout         = "2006-01-02"
)

// EpochSecondsZoned converts a "YYYY-MM-DD HH:MM:SS ±HHMM" string to a
// whole-second UTC epoch. Total: malformed input returns ok=false and
// never an error; the caller must omit the field, not send zero.
func EpochSecondsZoned(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	for _, layout := range []string{zonedLayout, zonedColonLayout, zonedNoSpaceLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Unix(), true
		}
	}
	return 0, false
}

// EpochMillisISO converts an ISO-8601 date-time string to an epoch in
// milliseconds. The millisecond unit is what the destination CRM field
// expects; it intentionally differs from the other two rules. Strings
// without an offset are interpreted in local time, date-only strings
// as local midnight. Total: malformed input returns ok=false.
func EpochMillisISO(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UnixMilli(), true
	}
	if t, err := time.ParseInLocation(isoLayout, s, time.Local); err == nil {
		return t.UnixMilli(), true
	}
	if t, err := time.ParseInLocation(dateLayout, s, time.Local); err == nil {
		return t.UnixMilli(), true
	}
	return 0, false
}

// EpochSecondsDate converts a bare "YYYY-MM-DD" string to the epoch
// second of that date's midnight UTC. Total: malformed input returns
// ok=false.
func EpochSecondsDate(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return 0, false
	}
	return t.Unix(), true
}
