package cellfmt

import "fmt"

// ColumnType selects how a column's values are formatted.
type ColumnType string

const (
	TypeString ColumnType = "string"
	TypeNumber ColumnType = "number"
	TypeDate   ColumnType = "date"
	TypeHidden ColumnType = "hidden"
)

// ColorMode controls whether and where threshold colors are applied.
type ColorMode string

const (
	ColorNone  ColorMode = "none"
	ColorCell  ColorMode = "cell"  // background of the cell
	ColorValue ColorMode = "value" // foreground of the text
)

// Placeholder is rendered for missing values in date and number columns.
const Placeholder = "-"

// DefaultDecimals is the fractional precision used when a style leaves
// Decimals unset.
const DefaultDecimals = 3

// Style is the per-column style descriptor. It is supplied by the caller and
// never modified by the pipeline.
type Style struct {
	Type ColumnType
	// Pattern is a strftime pattern for date columns. Empty means
	// [DefaultTimePattern].
	Pattern  string
	Unit     string
	Decimals *int

	ColorMode  ColorMode
	Thresholds []float64
	Colors     []string

	// Mapping is nil, a [ValueMap] or a [RangeMap].
	Mapping Mapping

	Link *LinkStyle

	// Sanitize marks the column as trusted: the value is passed through the
	// renderer's Sanitizer and emitted without escaping, formatting, mapping
	// or coloring.
	Sanitize bool
}

func (s Style) hiddenType() bool { return s.Type == TypeHidden }

// colored reports whether threshold coloring is enabled.
func (s Style) colored() bool {
	return s.ColorMode == ColorCell || s.ColorMode == ColorValue
}

// Decimals returns a pointer to n, for use in [Style] literals.
func Decimals(n int) *int { return &n }

// LinkStyle makes a column render as a hyperlink. URL and Tooltip may contain
// $name or ${name} placeholders resolved against the row scope.
type LinkStyle struct {
	URL     string
	Tooltip string
}

// Column is a table column: a title, an optional unit reported by the data
// source and the style applied to its cells.
type Column struct {
	Title string `yaml:"title"`
	// Unit, when set, overrides Style.Unit.
	Unit  string `yaml:"unit"`
	Style Style  `yaml:"style"`
}

// unit returns the effective unit for the column.
func (c Column) unit() string {
	if c.Unit != "" {
		return c.Unit
	}
	return c.Style.Unit
}

// Grid is the table data: columns and rows of raw values aligned to them.
type Grid struct {
	Columns []Column `yaml:"columns"`
	Rows    [][]any  `yaml:"rows"`
}

// Titles returns the column titles in order, excluding hidden columns.
func (g Grid) Titles() []string {
	var out []string
	for _, c := range g.Columns {
		if c.Style.Type == TypeHidden {
			continue
		}
		out = append(out, c.Title)
	}
	return out
}

// Validate checks that every row has one value per column.
func (g Grid) Validate() error {
	for i, row := range g.Rows {
		if len(row) != len(g.Columns) {
			return fmt.Errorf("%w: row %d has %d values, want %d", ErrRowLength, i, len(row), len(g.Columns))
		}
	}
	return nil
}

// Link is the hyperlink attached to a rendered cell.
type Link struct {
	Href    string `json:"href"`
	Tooltip string `json:"tooltip,omitempty"`
}

// Outcome is the rendered form of a single cell, before serialization.
// Text is always safe to embed in HTML.
type Outcome struct {
	Text      string    `json:"text"`
	Color     string    `json:"color,omitempty"`
	ColorMode ColorMode `json:"colorMode,omitempty"`
	Link      *Link     `json:"link,omitempty"`
	Hidden    bool      `json:"hidden,omitempty"`
}
