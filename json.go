package cellfmt

import (
	"encoding/json"
	"io"
)

// jsonTable is the JSON shape of a rendered table.
type jsonTable struct {
	Columns []string    `json:"columns"`
	Rows    [][]Outcome `json:"rows"`
}

func writeJSON(w io.Writer, g Grid, cells [][]Outcome) error {
	titles := make([]string, len(g.Columns))
	for i, c := range g.Columns {
		titles[i] = c.Title
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(jsonTable{Columns: titles, Rows: cells})
}
