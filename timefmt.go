package cellfmt

import (
	"math"
	"strings"
	"time"

	"github.com/itchyny/timefmt-go"
)

// DefaultTimePattern renders ISO-8601 with second precision in UTC.
const DefaultTimePattern = "%Y-%m-%dT%H:%M:%SZ"

// rfc2822Layouts all carry a numeric offset; named zones are rewritten by
// numericZone first.
var rfc2822Layouts = []string{
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04 -0700",
	"2 Jan 2006 15:04 -0700",
	"Mon, 2 Jan 2006 15:04:05 -0700 (MST)",
}

// obsoleteZones are the zone names RFC 2822 gives a fixed offset. Any other
// abbreviation is ambiguous and leaves the timestamp unparsable.
var obsoleteZones = map[string]string{
	"UT":  "+0000",
	"GMT": "+0000",
	"Z":   "+0000",
	"EST": "-0500",
	"EDT": "-0400",
	"CST": "-0600",
	"CDT": "-0500",
	"MST": "-0700",
	"MDT": "-0600",
	"PST": "-0800",
	"PDT": "-0700",
}

// numericZone replaces a trailing obsolete zone name with its offset.
func numericZone(s string) string {
	i := strings.LastIndexByte(s, ' ')
	if i < 0 {
		return s
	}
	if off, ok := obsoleteZones[strings.ToUpper(s[i+1:])]; ok {
		return s[:i+1] + off
	}
	return s
}

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// FormatTime renders a timestamp candidate with a strftime pattern in UTC.
// Numbers are epoch milliseconds; strings are tried as RFC 2822 and then
// ISO 8601. Empty values render as [Placeholder] and text that is not a
// recognizable timestamp is returned unchanged.
func FormatTime(v Value, pattern string) string {
	if pattern == "" {
		pattern = DefaultTimePattern
	}
	switch v.Kind {
	case KindEmpty:
		return Placeholder
	case KindArray:
		return v.String()
	}
	t, ok := ParseTime(v)
	if !ok {
		return v.Text
	}
	return timefmt.Format(t.UTC(), pattern)
}

// ParseTime resolves v to an instant.
func ParseTime(v Value) (time.Time, bool) {
	switch v.Kind {
	case KindTime:
		return v.Time, true
	case KindNumber:
		return fromEpochMillis(v.Number), true
	case KindText:
		return parseTimestamp(strings.TrimSpace(v.Text))
	default:
		return time.Time{}, false
	}
}

func fromEpochMillis(ms float64) time.Time {
	sec, frac := math.Modf(ms / 1000)
	return time.Unix(int64(sec), int64(math.Round(frac*1e9))).UTC()
}

func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	rfc := numericZone(s)
	for _, layout := range rfc2822Layouts {
		if t, err := time.Parse(layout, rfc); err == nil {
			return t, true
		}
	}
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
