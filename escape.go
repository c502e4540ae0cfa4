package cellfmt

import "html"

// Escape replaces the markup characters &, <, >, ' and " with entities.
func Escape(s string) string {
	return html.EscapeString(s)
}
