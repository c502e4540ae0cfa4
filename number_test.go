package cellfmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/cellfmt"
)

func TestFormatNumber(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		raw      any
		unit     string
		decimals *int
		want     string
	}{
		"ms to seconds":          {raw: 1230, unit: "ms", decimals: cellfmt.Decimals(3), want: "1.230 s"},
		"ms stays ms":            {raw: 500, unit: "ms", decimals: cellfmt.Decimals(0), want: "500 ms"},
		"seconds to minutes":     {raw: 90, unit: "s", decimals: cellfmt.Decimals(1), want: "1.5 min"},
		"hours":                  {raw: 2, unit: "h", decimals: cellfmt.Decimals(0), want: "2 hour"},
		"days to years":          {raw: 730, unit: "d", decimals: cellfmt.Decimals(0), want: "2 year"},
		"zero duration":          {raw: 0, unit: "ms", decimals: cellfmt.Decimals(1), want: "0.0 s"},
		"bps scaled":             {raw: 1230, unit: "bps", decimals: cellfmt.Decimals(3), want: "1.23 kbps"},
		"bps unscaled":           {raw: 999, unit: "bps", decimals: cellfmt.Decimals(2), want: "999 bps"},
		"bps negative":           {raw: -1230, unit: "bps", decimals: cellfmt.Decimals(2), want: "-1.23 kbps"},
		"bps rounds":             {raw: 1234567, unit: "bps", decimals: cellfmt.Decimals(2), want: "1.23 Mbps"},
		"Bps":                    {raw: 2500, unit: "Bps", decimals: cellfmt.Decimals(1), want: "2.5 kBps"},
		"bytes iec":              {raw: 2048, unit: "bytes", decimals: cellfmt.Decimals(2), want: "2 KiB"},
		"decbytes si":            {raw: 1500000, unit: "decbytes", decimals: cellfmt.Decimals(1), want: "1.5 MB"},
		"kbytes":                 {raw: 1536, unit: "kbytes", decimals: cellfmt.Decimals(1), want: "1.5 MiB"},
		"short":                  {raw: 1500, unit: "short", decimals: cellfmt.Decimals(1), want: "1.5 K"},
		"short small":            {raw: 15, unit: "short", decimals: cellfmt.Decimals(1), want: "15"},
		"none fixed":             {raw: 40, unit: "none", decimals: cellfmt.Decimals(1), want: "40.0"},
		"empty unit fixed":       {raw: "2.346", unit: "", decimals: cellfmt.Decimals(2), want: "2.35"},
		"default decimals":       {raw: 1, unit: "", want: "1.000"},
		"negative decimals":      {raw: 1.6, unit: "", decimals: cellfmt.Decimals(-1), want: "2"},
		"percent":                {raw: 12.5, unit: "percent", decimals: cellfmt.Decimals(1), want: "12.5%"},
		"percentunit":            {raw: 0.5, unit: "percentunit", decimals: cellfmt.Decimals(0), want: "50%"},
		"locale":                 {raw: 1234567, unit: "locale", decimals: cellfmt.Decimals(0), want: "1,234,567"},
		"unknown unit suffix":    {raw: 12, unit: "rpm", decimals: cellfmt.Decimals(2), want: "12.00 rpm"},
		"text passes through":    {raw: "asd", unit: "ms", decimals: cellfmt.Decimals(3), want: "asd"},
		"bool passes through":    {raw: true, unit: "bps", want: "true"},
		"array passes through":   {raw: []string{"value1", "value2"}, unit: "ms", want: "value1, value2"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, cellfmt.FormatNumber(cellfmt.Coerce(tc.raw), tc.unit, tc.decimals))
		})
	}
}
