package cellfmt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/cellfmt"
)

func TestFormatTimeSameInstant(t *testing.T) {
	t.Parallel()
	const want = "2018-12-01T01:00:00Z"
	ts := time.Date(2018, 12, 1, 1, 0, 0, 0, time.UTC)
	inputs := map[string]any{
		"time pointer":        &ts,
		"epoch millis":        1543626000000,
		"epoch millis float":  1543626000000.0,
		"epoch string":        "1543626000000",
		"rfc2822 gmt":         "Sat, 01 Dec 2018 01:00:00 GMT",
		"rfc2822 offset":      "Sat, 01 Dec 2018 02:00:00 +0100",
		"rfc2822 no weekday":  "1 Dec 2018 01:00:00 +0000",
		"rfc2822 single day":  "Sat, 1 Dec 2018 01:00:00 GMT",
		"rfc2822 ut":          "Sat, 01 Dec 2018 01:00:00 UT",
		"rfc2822 est":         "Fri, 30 Nov 2018 20:00:00 EST",
		"rfc2822 edt":         "Fri, 30 Nov 2018 21:00:00 EDT",
		"rfc2822 cst":         "Fri, 30 Nov 2018 19:00:00 CST",
		"rfc2822 cdt":         "Fri, 30 Nov 2018 20:00:00 CDT",
		"rfc2822 mst":         "Fri, 30 Nov 2018 18:00:00 MST",
		"rfc2822 mdt":         "Fri, 30 Nov 2018 19:00:00 MDT",
		"rfc2822 pst":         "Fri, 30 Nov 2018 17:00:00 PST",
		"rfc2822 pdt":         "Fri, 30 Nov 2018 18:00:00 PDT",
		"rfc2822 lower zone":  "Fri, 30 Nov 2018 17:00:00 pst",
		"rfc2822 comment":     "Fri, 30 Nov 2018 17:00:00 -0800 (PST)",
		"iso utc":             "2018-12-01T01:00:00Z",
		"iso offset":          "2018-12-01T02:00:00+01:00",
		"iso fraction":        "2018-12-01T01:00:00.250Z",
		"iso zoneless":        "2018-12-01T01:00:00",
		"iso space zoneless":  "2018-12-01 01:00:00",
		"time value":          time.Date(2018, 12, 1, 2, 0, 0, 0, time.FixedZone("CET", 3600)),
	}
	for name, raw := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, want, cellfmt.FormatTime(cellfmt.Coerce(raw), ""))
		})
	}
}

func TestFormatTime(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		raw     any
		pattern string
		want    string
	}{
		"nil":                  {raw: nil, want: "-"},
		"nil time pointer":     {raw: (*time.Time)(nil), want: "-"},
		"truncates fraction":   {raw: 1388556366666, want: "2014-01-01T06:06:06Z"},
		"negative epoch":       {raw: -1000, want: "1969-12-31T23:59:59Z"},
		"custom pattern":       {raw: "2018-12-01T01:00:00Z", pattern: "%Y/%m/%d %H:%M", want: "2018/12/01 01:00"},
		"date only":            {raw: "2018-12-01", want: "2018-12-01T00:00:00Z"},
		"unparsable passes":    {raw: "yesterday", want: "yesterday"},
		"ambiguous zone":       {raw: "Sat, 01 Dec 2018 01:00:00 IST", want: "Sat, 01 Dec 2018 01:00:00 IST"},
		"bool passes":          {raw: false, want: "false"},
		"array not formatted":  {raw: []any{"a", "b"}, want: "a, b"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, cellfmt.FormatTime(cellfmt.Coerce(tc.raw), tc.pattern))
		})
	}
}

func TestParseTime(t *testing.T) {
	t.Parallel()
	got, ok := cellfmt.ParseTime(cellfmt.Coerce("Sat, 01 Dec 2018 01:00:00 GMT"))
	assert.True(t, ok)
	assert.True(t, got.Equal(time.Date(2018, 12, 1, 1, 0, 0, 0, time.UTC)))

	_, ok = cellfmt.ParseTime(cellfmt.Coerce(nil))
	assert.False(t, ok)

	_, ok = cellfmt.ParseTime(cellfmt.Coerce("   "))
	assert.False(t, ok)
}
