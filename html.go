package cellfmt

import (
	"fmt"
	"io"
	"strings"
)

// LinkClass is the class attribute of table cells that hold a link.
const LinkClass = "cell-link"

// HTML serializes the outcome as a table cell. Hidden outcomes serialize to
// the empty string. Text is embedded as is; it is already escaped.
func (o Outcome) HTML() string {
	if o.Hidden {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("<td")
	if o.Link != nil {
		sb.WriteString(` class="` + LinkClass + `"`)
	}
	if style := o.colorStyle(); style != "" {
		sb.WriteString(` style="` + Escape(style) + `"`)
	}
	sb.WriteString(">")
	if o.Link != nil {
		fmt.Fprintf(&sb, `<a href="%s" target="_blank" rel="noopener noreferrer"`, Escape(o.Link.Href))
		if o.Link.Tooltip != "" {
			fmt.Fprintf(&sb, ` data-link-tooltip data-original-title="%s" data-placement="right"`, Escape(o.Link.Tooltip))
		}
		sb.WriteString(">")
		sb.WriteString(o.Text)
		sb.WriteString("</a>")
	} else {
		sb.WriteString(o.Text)
	}
	sb.WriteString("</td>")
	return sb.String()
}

func (o Outcome) colorStyle() string {
	if o.Color == "" {
		return ""
	}
	if o.ColorMode == ColorCell {
		return "background-color:" + o.Color
	}
	return "color:" + o.Color
}

func writeHTML(w io.Writer, g Grid, cells [][]Outcome) error {
	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
		return err
	}
	for _, title := range g.Titles() {
		if _, err := fmt.Fprintf(w, "      <th>%s</th>\n", Escape(title)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  </thead>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for _, row := range cells {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for _, cell := range row {
			if cell.Hidden {
				continue
			}
			if _, err := fmt.Fprintf(w, "      %s\n", cell.HTML()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "</table>")
	return err
}
