package cellfmt

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// scale is a unit family that steps through suffixes by a constant factor.
type scale struct {
	factor   float64
	suffixes []string
}

var (
	siPrefixes  = []string{"", "k", "M", "G", "T", "P", "E", "Z", "Y"}
	iecPrefixes = []string{"", "Ki", "Mi", "Gi", "Ti", "Pi", "Ei", "Zi", "Yi"}
)

func prefixed(prefixes []string, unit string, offset int) []string {
	out := make([]string, 0, len(prefixes)-offset)
	for _, p := range prefixes[offset:] {
		out = append(out, " "+p+unit)
	}
	return out
}

var scaledUnits = map[string]scale{
	"short":    {factor: 1000, suffixes: []string{"", " K", " Mil", " Bil", " Tri", " Quadr", " Quint", " Sext", " Sept"}},
	"bps":      {factor: 1000, suffixes: prefixed(siPrefixes, "bps", 0)},
	"Bps":      {factor: 1000, suffixes: prefixed(siPrefixes, "Bps", 0)},
	"pps":      {factor: 1000, suffixes: prefixed(siPrefixes, "pps", 0)},
	"bits":     {factor: 1024, suffixes: prefixed(iecPrefixes, "b", 0)},
	"bytes":    {factor: 1024, suffixes: prefixed(iecPrefixes, "B", 0)},
	"decbytes": {factor: 1000, suffixes: prefixed(siPrefixes, "B", 0)},
	"kbytes":   {factor: 1024, suffixes: prefixed(iecPrefixes, "B", 1)},
	"mbytes":   {factor: 1024, suffixes: prefixed(iecPrefixes, "B", 2)},
}

// timeStep is one magnitude of a duration unit: values below limit (in the
// unit's base) are divided by div and suffixed.
type timeStep struct {
	limit  float64
	div    float64
	suffix string
}

const (
	nsPerSec  = 1e9
	secPerMin = 60
	secPerDay = 86400
	secPerYr  = 31536000
)

// timeSteps are expressed in seconds and converted per unit by its size.
var timeSteps = []timeStep{
	{limit: 1e-6, div: 1e-9, suffix: " ns"},
	{limit: 1e-3, div: 1e-6, suffix: " µs"},
	{limit: 1, div: 1e-3, suffix: " ms"},
	{limit: secPerMin, div: 1, suffix: " s"},
	{limit: 3600, div: secPerMin, suffix: " min"},
	{limit: secPerDay, div: 3600, suffix: " hour"},
	{limit: secPerYr, div: secPerDay, suffix: " day"},
	{limit: math.Inf(1), div: secPerYr, suffix: " year"},
}

// timeUnits maps a duration unit to its size in seconds.
var timeUnits = map[string]float64{
	"ns": 1 / nsPerSec,
	"µs": 1e-6,
	"us": 1e-6,
	"ms": 1e-3,
	"s":  1,
	"m":  secPerMin,
	"h":  3600,
	"d":  secPerDay,
}

// FormatNumber renders a numeric value in unit at the given precision. Values
// that are not numbers are returned as their original text. A nil decimals
// means [DefaultDecimals].
//
// Fixed units (none, percent, durations) always show exactly decimals
// fractional digits. Scaled units (bps, bytes, short, ...) pick the largest
// prefix that keeps the value at or above one and round to at most decimals
// digits, dropping trailing zeros.
func FormatNumber(v Value, unit string, decimals *int) string {
	n, ok := v.Numeric()
	if !ok {
		return v.String()
	}
	dec := DefaultDecimals
	if decimals != nil {
		dec = *decimals
	}
	if dec < 0 {
		dec = 0
	}

	switch unit {
	case "", "none":
		return toFixed(n, dec)
	case "locale":
		return humanize.CommafWithDigits(round(n, dec), dec)
	case "percent":
		return toFixed(n, dec) + "%"
	case "percentunit":
		return toFixed(n*100, dec) + "%"
	}
	if size, ok := timeUnits[unit]; ok {
		return formatDuration(n*size, dec)
	}
	if s, ok := scaledUnits[unit]; ok {
		return formatScaled(n, dec, s)
	}
	return toFixed(n, dec) + " " + unit
}

func toFixed(n float64, dec int) string {
	return strconv.FormatFloat(n, 'f', dec, 64)
}

func round(n float64, dec int) float64 {
	p := math.Pow(10, float64(dec))
	return math.Round(n*p) / p
}

// formatDuration renders seconds in the largest magnitude that keeps the
// value below the next step.
func formatDuration(seconds float64, dec int) string {
	if seconds == 0 {
		return toFixed(0, dec) + " s"
	}
	abs := math.Abs(seconds)
	for _, step := range timeSteps {
		if abs < step.limit {
			return toFixed(seconds/step.div, dec) + step.suffix
		}
	}
	last := timeSteps[len(timeSteps)-1]
	return toFixed(seconds/last.div, dec) + last.suffix
}

func formatScaled(n float64, dec int, s scale) string {
	i := 0
	scaled := n
	for math.Abs(scaled) >= s.factor && i < len(s.suffixes)-1 {
		scaled /= s.factor
		i++
	}
	return strconv.FormatFloat(round(scaled, dec), 'f', -1, 64) + s.suffixes[i]
}
