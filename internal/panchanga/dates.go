// Package panchanga derives structured Hindu calendar fields for a city, date
// and time. The upstream provider supplies an HTML-formatted blob; this
// package owns the request formatting, the response extraction and the
// date-based resolution of lunar month, season and weekday names.
package panchanga

import (
	"fmt"
	"strings"
	"time"
)

// Date layouts accepted on the API surface and used toward the provider.
const (
	isoDateLayout      = "2006-01-02"
	providerDateLayout = "01/02/2006"
	providerTimeLayout = "3:04 PM"
	clockTimeLayout    = "15:04"
)

// ParseDate parses a date string in either YYYY-MM-DD or MM/DD/YYYY form.
func ParseDate(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	switch {
	case strings.Contains(trimmed, "-"):
		return time.Parse(isoDateLayout, trimmed)
	case strings.Contains(trimmed, "/"):
		return time.Parse(providerDateLayout, trimmed)
	}
	return time.Time{}, fmt.Errorf("unsupported date format %q", s)
}

// ProviderDate formats a date the way the upstream provider expects (MM/DD/YYYY).
func ProviderDate(t time.Time) string {
	return t.Format(providerDateLayout)
}

// NormalizeTime converts a time-of-day string, 24-hour "HH:MM" or "h:mm AM/PM",
// into the provider's "h:mm AM" form. Unparseable input is returned unchanged
// so a bad time string degrades at the provider rather than aborting the request.
func NormalizeTime(s string) string {
	trimmed := strings.TrimSpace(s)
	lower := strings.ToLower(trimmed)

	if strings.Contains(lower, "am") || strings.Contains(lower, "pm") {
		if t, err := time.Parse(providerTimeLayout, strings.ToUpper(trimmed)); err == nil {
			return t.Format(providerTimeLayout)
		}
		return trimmed
	}

	if t, err := time.Parse(clockTimeLayout, trimmed); err == nil {
		return t.Format(providerTimeLayout)
	}
	return trimmed
}
