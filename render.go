package cellfmt

// Sanitizer cleans trusted markup before it is embedded unescaped.
type Sanitizer func(raw string) string

// Renderer holds the collaborators used to render cells. It carries no
// per-cell state; a Renderer value may be shared across goroutines.
type Renderer struct {
	Theme Theme
	// Substitute interpolates link templates. Nil means [Substitute].
	Substitute Substituter
	// Sanitize is applied to columns with Style.Sanitize. Nil means the raw
	// text is emitted as is.
	Sanitize Sanitizer
	// Vars are scoped variables available to every link template.
	Vars Scope
}

// RenderCell renders raw as the cell at (col, row) of g. The row supplies
// the link scope; a row index outside g.Rows renders with external vars
// only. col must index g.Columns.
func (r Renderer) RenderCell(g Grid, col, row int, raw any) Outcome {
	var values []any
	if row >= 0 && row < len(g.Rows) {
		values = g.Rows[row]
	}
	column := g.Columns[col]
	var scope Scope
	if column.Style.Link != nil && !column.Style.hiddenType() {
		scope = RowScope(r.Vars, g.Columns, values, raw)
	}
	return r.RenderValue(raw, column, scope)
}

// RenderTable renders every cell of g, row by row.
func (r Renderer) RenderTable(g Grid) ([][]Outcome, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	out := make([][]Outcome, len(g.Rows))
	for i, row := range g.Rows {
		cells := make([]Outcome, len(row))
		for j, raw := range row {
			cells[j] = r.RenderCell(g, j, i, raw)
		}
		out[i] = cells
	}
	return out, nil
}

// RenderValue runs the pipeline for a single value: coercion, formatting by
// column type, mapping, threshold coloring on the unmapped value, escaping
// and link composition. scope is only consulted for link columns.
func (r Renderer) RenderValue(raw any, column Column, scope Scope) Outcome {
	style := column.Style
	if style.hiddenType() {
		return Outcome{Hidden: true}
	}

	v := Coerce(raw)
	var out Outcome
	if style.Sanitize {
		out.Text = r.sanitize(v)
	} else {
		text := formatValue(v, column)
		if mapped, ok := MapValue(v, style.Mapping); ok {
			text = mapped
		}
		out.Text = Escape(text)
		if style.colored() {
			if c, ok := ColorFor(v, style.Thresholds, style.Colors, r.Theme); ok {
				out.Color = c
				out.ColorMode = style.ColorMode
			}
		}
	}

	if style.Link != nil {
		out.Link = ComposeLink(*style.Link, scope, r.Substitute)
	}
	return out
}

func (r Renderer) sanitize(v Value) string {
	text := v.String()
	if r.Sanitize == nil {
		return text
	}
	return r.Sanitize(text)
}

// formatValue renders v according to the column type. Arrays are never
// formatted; they show their items joined with ", ".
func formatValue(v Value, column Column) string {
	if v.Kind == KindArray {
		return v.String()
	}
	switch column.Style.Type {
	case TypeDate:
		return FormatTime(v, column.Style.Pattern)
	case TypeNumber:
		if v.Kind == KindEmpty {
			return Placeholder
		}
		return FormatNumber(v, column.unit(), column.Style.Decimals)
	default:
		return v.String()
	}
}
