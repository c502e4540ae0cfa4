package cellfmt

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
)

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
}

type tableConfig struct {
	border  BorderStyle
	profile termenv.Profile
	widths  []int
}

// TableOption configures the terminal [Table] format.
type TableOption func(*tableConfig)

// WithBorder sets the border style. Default: BorderRounded.
func WithBorder(b BorderStyle) TableOption {
	return func(c *tableConfig) { c.border = b }
}

// WithProfile sets the terminal color profile used for threshold colors.
// Default: termenv.Ascii, which writes no escape sequences.
func WithProfile(p termenv.Profile) TableOption {
	return func(c *tableConfig) { c.profile = p }
}

// WithMaxWidths truncates columns wider than the given widths with "...".
// Zero means no limit for that column.
func WithMaxWidths(widths ...int) TableOption {
	return func(c *tableConfig) { c.widths = widths }
}

// writeTable renders outcomes as a terminal table. Cell text is unescaped
// for display; widths are measured before colors are applied, so escape
// sequences never affect the layout.
func writeTable(w io.Writer, g Grid, cells [][]Outcome, opts ...TableOption) error {
	cfg := tableConfig{border: BorderRounded, profile: termenv.Ascii}
	for _, opt := range opts {
		opt(&cfg)
	}

	var visible []int
	for i, c := range g.Columns {
		if c.Style.Type != TypeHidden {
			visible = append(visible, i)
		}
	}
	if len(visible) == 0 {
		return nil
	}

	header := g.Titles()
	aligns := make([]Alignment, len(visible))
	for i, col := range visible {
		if g.Columns[col].Style.Type == TypeNumber {
			aligns[i] = AlignRight
		}
	}

	out := termenv.NewOutput(w, termenv.WithProfile(cfg.profile))
	rows := make([][]string, len(cells))
	styles := make([][]func(string) string, len(cells))
	for r, row := range cells {
		rows[r] = make([]string, len(visible))
		styles[r] = make([]func(string) string, len(visible))
		for i, col := range visible {
			cell := row[col]
			rows[r][i] = html.UnescapeString(cell.Text)
			styles[r][i] = cellStyle(out, cell)
		}
	}

	widths := computeWidths(len(visible), header, rows)
	for i, limit := range cfg.widths {
		if i < len(widths) && limit > 0 && widths[i] > limit {
			widths[i] = limit
		}
	}

	if cfg.border == BorderNone {
		return renderPlainTable(w, header, rows, widths, aligns, styles)
	}
	bc, ok := borderSets[cfg.border]
	if !ok {
		bc = borderSets[BorderRounded]
	}
	return renderBorderedTable(w, bc, header, rows, widths, aligns, styles)
}

// cellStyle returns the function that colors a padded cell, or nil.
func cellStyle(out *termenv.Output, cell Outcome) func(string) string {
	if cell.Color == "" {
		return nil
	}
	hex, ok := CSSToHex(cell.Color)
	if !ok {
		return nil
	}
	color := out.Color(hex)
	return func(s string) string {
		st := out.String(s)
		if cell.ColorMode == ColorCell {
			st = st.Background(color)
		} else {
			st = st.Foreground(color)
		}
		return st.String()
	}
}

func computeWidths(numCols int, header []string, rows [][]string) []int {
	widths := make([]int, numCols)
	for i, h := range header {
		if w := runewidth.StringWidth(h); i < numCols && w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < numCols && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// --- Plain table (BorderNone) ---

func renderPlainTable(w io.Writer, header []string, rows [][]string, widths []int, aligns []Alignment, styles [][]func(string) string) error {
	if err := writePlainRow(w, header, widths, aligns, nil); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintln(w, strings.Join(sep, "  ")); err != nil {
		return err
	}
	for r, row := range rows {
		if err := writePlainRow(w, row, widths, aligns, styles[r]); err != nil {
			return err
		}
	}
	return nil
}

func writePlainRow(w io.Writer, cells []string, widths []int, aligns []Alignment, styles []func(string) string) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = styledCell(cells, i, width, aligns[i], styles)
	}
	line := strings.TrimRight(strings.Join(parts, "  "), " ")
	_, err := fmt.Fprintln(w, line)
	return err
}

// --- Bordered table ---

func renderBorderedTable(w io.Writer, bc borderChars, header []string, rows [][]string, widths []int, aligns []Alignment, styles [][]func(string) string) error {
	if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}
	if err := drawBorderedRow(w, header, widths, aligns, bc.vertical, nil); err != nil {
		return err
	}
	if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
		return err
	}
	for r, row := range rows {
		if err := drawBorderedRow(w, row, widths, aligns, bc.vertical, styles[r]); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawBorderedRow(w io.Writer, cells []string, widths []int, aligns []Alignment, vert string, styles []func(string) string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		sb.WriteString(" ")
		sb.WriteString(styledCell(cells, i, width, aligns[i], styles))
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func styledCell(cells []string, i, width int, align Alignment, styles []func(string) string) string {
	cell := ""
	if i < len(cells) {
		cell = cells[i]
	}
	formatted := formatTableCell(cell, width, align)
	if i < len(styles) && styles[i] != nil {
		formatted = styles[i](formatted)
	}
	return formatted
}

func formatTableCell(s string, width int, align Alignment) string {
	if width > 0 && runewidth.StringWidth(s) > width {
		if width <= 3 {
			s = runewidth.Truncate(s, width, "")
		} else {
			s = runewidth.Truncate(s, width, "...")
		}
	}
	return alignCell(s, width, align)
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	if align == AlignRight {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}
