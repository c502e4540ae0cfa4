package cellfmt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ThemeVariant selects the light or dark rendition of a named color.
type ThemeVariant string

const (
	ThemeDark  ThemeVariant = "dark"
	ThemeLight ThemeVariant = "light"
)

// ColorResolver turns a named color definition into a concrete CSS color for
// a theme variant. It reports false for unknown names.
type ColorResolver interface {
	ResolveColor(token string, variant ThemeVariant) (string, bool)
}

// Theme pairs a resolver with the active variant. The zero Theme uses
// [DefaultPalette] in its dark variant.
type Theme struct {
	Variant  ThemeVariant
	Resolver ColorResolver
}

// resolve looks token up in the theme. Unknown tokens are kept only when
// they read as a bare CSS color keyword.
func (t Theme) resolve(token string) (string, bool) {
	res := t.Resolver
	if res == nil {
		res = DefaultPalette
	}
	variant := t.Variant
	if variant == "" {
		variant = ThemeDark
	}
	if c, ok := res.ResolveColor(token, variant); ok {
		return c, true
	}
	if cssKeyword.MatchString(token) {
		return token, true
	}
	return "", false
}

// ColorFor picks the threshold color for v. Only numbers are colored: a
// value below thresholds[0] gets colors[0], a value in
// [thresholds[i-1], thresholds[i]) gets colors[i], and anything at or above
// the last threshold gets colors[len(thresholds)]. Named colors are resolved
// through theme; raw CSS colors are validated and returned normalized.
func ColorFor(v Value, thresholds []float64, colors []string, theme Theme) (string, bool) {
	n, ok := v.Numeric()
	if !ok || len(colors) == 0 {
		return "", false
	}
	i := bucket(n, thresholds)
	if i >= len(colors) || colors[i] == "" {
		return "", false
	}
	c := strings.TrimSpace(colors[i])
	if isRawCSS(c) {
		return cssColor(c)
	}
	return theme.resolve(c)
}

func bucket(n float64, thresholds []float64) int {
	for i := len(thresholds); i > 0; i-- {
		if n >= thresholds[i-1] {
			return i
		}
	}
	return 0
}

var cssFuncs = []string{"rgb(", "rgba(", "hsl(", "hsla("}

func isRawCSS(c string) bool {
	if strings.HasPrefix(c, "#") {
		return true
	}
	lower := strings.ToLower(c)
	for _, p := range cssFuncs {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

var (
	cssKeyword = regexp.MustCompile(`^[a-zA-Z]+$`)
	cssFunc    = regexp.MustCompile(`^(?i:rgba?|hsla?)\(\s*-?[\d.]+(?:deg|%)?\s*(?:,\s*-?[\d.]+%?\s*){2,3}\)$`)
)

// cssColor validates a raw hex or functional color, lower-casing hex. Anything
// else, such as trailing declarations, is rejected.
func cssColor(c string) (string, bool) {
	if strings.HasPrefix(c, "#") {
		if len(c) != 4 && len(c) != 7 {
			return "", false
		}
		if _, err := colorful.Hex(c); err != nil {
			return "", false
		}
		return strings.ToLower(c), true
	}
	if cssFunc.MatchString(c) {
		return c, true
	}
	return "", false
}

// CSSToHex converts a hex or rgb()/rgba() color to #rrggbb. It reports false
// for anything else, including hsl() and color keywords.
func CSSToHex(c string) (string, bool) {
	c = strings.TrimSpace(c)
	if strings.HasPrefix(c, "#") {
		if len(c) != 4 && len(c) != 7 {
			return "", false
		}
		col, err := colorful.Hex(c)
		if err != nil {
			return "", false
		}
		return col.Hex(), true
	}
	lower := strings.ToLower(strings.ReplaceAll(c, " ", ""))
	var r, g, b uint8
	var a float64
	if _, err := fmt.Sscanf(lower, "rgb(%d,%d,%d)", &r, &g, &b); err == nil {
		return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hex(), true
	}
	if _, err := fmt.Sscanf(lower, "rgba(%d,%d,%d,%g)", &r, &g, &b, &a); err == nil {
		return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hex(), true
	}
	return "", false
}

// Variants holds the concrete colors of a named color definition.
type Variants struct {
	Light string
	Dark  string
}

// Palette is a [ColorResolver] backed by a fixed set of named colors.
type Palette map[string]Variants

// ResolveColor implements [ColorResolver]. Lookup is case-insensitive.
func (p Palette) ResolveColor(token string, variant ThemeVariant) (string, bool) {
	v, ok := p[strings.ToLower(token)]
	if !ok {
		return "", false
	}
	if variant == ThemeLight && v.Light != "" {
		return v.Light, true
	}
	return v.Dark, true
}

// hues lists each hue's shades from lightest to darkest.
var hues = []struct {
	name   string
	shades [5]string
}{
	{"green", [5]string{"#96D98D", "#73BF69", "#56A64B", "#37872D", "#19730E"}},
	{"yellow", [5]string{"#FFEE52", "#FADE2A", "#F2CC0C", "#E0B400", "#CC9D00"}},
	{"red", [5]string{"#FF7383", "#F2495C", "#E02F44", "#C4162A", "#AD0317"}},
	{"blue", [5]string{"#8AB8FF", "#5794F2", "#3274D9", "#1F60C4", "#1250B0"}},
	{"orange", [5]string{"#FFB357", "#FF9830", "#FF780A", "#FA6400", "#E55400"}},
	{"purple", [5]string{"#CA95E5", "#B877D9", "#A352CC", "#8F3BB8", "#7C2EA3"}},
}

var shadePrefixes = [5]string{"super-light-", "light-", "", "semi-dark-", "dark-"}

// DefaultPalette holds the named colors of the classic table panel. The light
// variant of each shade is the next darker shade of the same hue, so text
// stays readable on a light background.
var DefaultPalette = buildPalette()

func buildPalette() Palette {
	p := make(Palette, len(hues)*len(shadePrefixes))
	for _, h := range hues {
		for i, prefix := range shadePrefixes {
			light := h.shades[min(i+1, len(h.shades)-1)]
			p[prefix+h.name] = Variants{Light: light, Dark: h.shades[i]}
		}
	}
	return p
}
